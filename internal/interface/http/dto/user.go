package dto

// RegisterRequest HTTP注册请求
// 用户名/密码的格式规则由领域层校验
type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=150" example:"reader"`
	Password string `json:"password" binding:"required,max=128" example:"password123"`
}

// LoginRequest HTTP登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"reader"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// RefreshRequest 刷新Token请求
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UserResponse HTTP用户响应（不包含密码）
type UserResponse struct {
	ID       uint   `json:"id" example:"1"`
	Username string `json:"username" example:"reader"`
	IsStaff  bool   `json:"is_staff" example:"false"`
}

// LoginResponse HTTP登录响应
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string       `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresIn    int64        `json:"expires_in" example:"7200"` // 秒
}
