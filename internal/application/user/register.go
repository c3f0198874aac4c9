package user

import (
	"context"
	"log/slog"

	"github.com/xiebiao/bookstore-api/internal/domain/user"
)

// RegisterUseCase 用户注册用例
// 设计说明：
// 1. Application层负责用例编排，协调领域服务
// 2. staff身份由配置auth.staff_usernames决定（见user.WithStaffUsernames）
type RegisterUseCase struct {
	userService user.Service
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(userService user.Service) *RegisterUseCase {
	return &RegisterUseCase{
		userService: userService,
	}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string
	Password string
}

// RegisterResponse 注册响应
type RegisterResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	IsStaff  bool   `json:"is_staff"`
}

// Execute 执行注册
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	u, err := uc.userService.Register(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "用户已注册", "user_id", u.ID, "is_staff", u.IsStaff)

	// 领域实体 → 应用层DTO（不返回密码哈希）
	return &RegisterResponse{
		ID:       u.ID,
		Username: u.Username,
		IsStaff:  u.IsStaff,
	}, nil
}
