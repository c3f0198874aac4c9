package user

import (
	"time"
)

// User 用户实体（聚合根）
// DDD设计说明：
// 1. 本服务只关心用户的ID和IsStaff（授权策略），用户名/密码用于登录
// 2. 密码已加密存储（bcrypt），不应该暴露明文
// 3. 领域实体不依赖GORM tag（infrastructure层的Repository实现时会处理映射）
type User struct {
	ID        uint
	Username  string
	Password  string // bcrypt哈希值
	IsStaff   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户（工厂方法）
// hashedPassword必须是bcrypt加密后的密码
func NewUser(username, hashedPassword string, isStaff bool) *User {
	now := time.Now()
	return &User{
		Username:  username,
		Password:  hashedPassword,
		IsStaff:   isStaff,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
