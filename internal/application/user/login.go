package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/xiebiao/bookstore-api/internal/domain/user"
	"github.com/xiebiao/bookstore-api/pkg/jwt"
)

// SessionStore 会话存储接口（redis.SessionStore实现）
type SessionStore interface {
	SaveSession(ctx context.Context, userID uint, sessionData map[string]interface{}, ttl time.Duration) error
	DeleteSession(ctx context.Context, userID uint) error
	AddToBlacklist(ctx context.Context, token string, ttl time.Duration) error
}

// LoginUseCase 用户登录用例
// 1. 验证用户名密码
// 2. 生成JWT Token对
// 3. 保存会话到Redis
type LoginUseCase struct {
	userService  user.Service
	jwtManager   *jwt.Manager
	sessionStore SessionStore
	sessionTTL   time.Duration
}

// NewLoginUseCase 创建登录用例
// sessionTTL与Refresh Token有效期一致
func NewLoginUseCase(
	userService user.Service,
	jwtManager *jwt.Manager,
	sessionStore SessionStore,
	sessionTTL time.Duration,
) *LoginUseCase {
	return &LoginUseCase{
		userService:  userService,
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
		sessionTTL:   sessionTTL,
	}
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string
	Password string
	ClientIP string
}

// LoginResponse 登录响应
type LoginResponse struct {
	User         UserInfo `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int64    `json:"expires_in"` // Access Token过期时间（秒）
}

// UserInfo 用户信息
type UserInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	IsStaff  bool   `json:"is_staff"`
}

// Execute 执行登录
func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	u, err := uc.userService.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	return uc.issue(ctx, u, req.ClientIP)
}

func (uc *LoginUseCase) issue(ctx context.Context, u *user.User, clientIP string) (*LoginResponse, error) {
	tokenPair, err := uc.jwtManager.GenerateToken(u.ID, u.Username, u.IsStaff)
	if err != nil {
		return nil, err
	}

	sessionData := map[string]interface{}{
		"user_id":  u.ID,
		"username": u.Username,
		"is_staff": u.IsStaff,
		"login_at": time.Now().Unix(),
		"ip":       clientIP,
	}
	// 会话保存失败不影响登录，只记录日志
	if err := uc.sessionStore.SaveSession(ctx, u.ID, sessionData, uc.sessionTTL); err != nil {
		slog.WarnContext(ctx, "保存会话失败", "user_id", u.ID, "error", err)
	}

	return &LoginResponse{
		User: UserInfo{
			ID:       u.ID,
			Username: u.Username,
			IsStaff:  u.IsStaff,
		},
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	}, nil
}

// RefreshUseCase 使用Refresh Token换取新的Token对
// 重新读取用户，staff身份变更后刷新即可生效
type RefreshUseCase struct {
	login *LoginUseCase
}

// NewRefreshUseCase 创建刷新用例
func NewRefreshUseCase(login *LoginUseCase) *RefreshUseCase {
	return &RefreshUseCase{login: login}
}

// Execute 执行刷新
func (uc *RefreshUseCase) Execute(ctx context.Context, refreshToken, clientIP string) (*LoginResponse, error) {
	claims, err := uc.login.jwtManager.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	u, err := uc.login.userService.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return uc.login.issue(ctx, u, clientIP)
}

// LogoutUseCase 用户登出用例
type LogoutUseCase struct {
	sessionStore SessionStore
}

// NewLogoutUseCase 创建登出用例
func NewLogoutUseCase(sessionStore SessionStore) *LogoutUseCase {
	return &LogoutUseCase{sessionStore: sessionStore}
}

// Execute 执行登出
// accessTTL为Access Token的剩余有效期，黑名单在Token过期后自动清除
func (uc *LogoutUseCase) Execute(ctx context.Context, userID uint, accessToken string, accessTTL time.Duration) error {
	if err := uc.sessionStore.DeleteSession(ctx, userID); err != nil {
		return err
	}
	return uc.sessionStore.AddToBlacklist(ctx, accessToken, accessTTL)
}
