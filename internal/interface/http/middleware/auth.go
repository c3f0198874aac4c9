package middleware

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookstore-api/internal/domain/permission"
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
	"github.com/xiebiao/bookstore-api/pkg/jwt"
	"github.com/xiebiao/bookstore-api/pkg/response"
)

// Context key
const (
	ctxKeyUserID      = "user_id"
	ctxKeyUsername    = "username"
	ctxKeyIsStaff     = "is_staff"
	ctxKeyAccessToken = "access_token"
	ctxKeyTokenTTL    = "token_ttl"
)

// TokenBlacklist Token黑名单（redis.SessionStore实现）
type TokenBlacklist interface {
	IsInBlacklist(ctx context.Context, token string) (bool, error)
}

// AuthMiddleware JWT认证中间件
// 1. 从Header提取Token: Authorization: Bearer <token>
// 2. 验证Token有效性、检查黑名单
// 3. 将用户信息注入Context
type AuthMiddleware struct {
	jwtManager *jwt.Manager
	blacklist  TokenBlacklist
}

// NewAuthMiddleware 创建认证中间件
func NewAuthMiddleware(jwtManager *jwt.Manager, blacklist TokenBlacklist) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		blacklist:  blacklist,
	}
}

// RequireAuth 要求登录，失败返回401
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.authenticate(c); err != nil {
			response.Error(c, err)
			return
		}
		if _, ok := c.Get(ctxKeyUserID); !ok {
			response.Error(c, apperrors.ErrUnauthenticated)
			return
		}
		c.Next()
	}
}

// OptionalAuth 可选登录
// Token缺失或无效时作为匿名用户继续，由应用层决定返回401/403/404
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.authenticate(c); err != nil {
			response.Error(c, err)
			return
		}
		c.Next()
	}
}

// authenticate 解析Token并注入用户信息
// 只有黑名单检查本身失败（Redis不可用）时返回错误
func (m *AuthMiddleware) authenticate(c *gin.Context) error {
	tokenString, ok := bearerToken(c.GetHeader("Authorization"))
	if !ok {
		return nil
	}

	claims, err := m.jwtManager.ParseAccessToken(tokenString)
	if err != nil {
		slog.DebugContext(c.Request.Context(), "token rejected", "error", err)
		return nil
	}

	revoked, err := m.blacklist.IsInBlacklist(c.Request.Context(), tokenString)
	if err != nil {
		return err
	}
	if revoked {
		return nil
	}

	c.Set(ctxKeyUserID, claims.UserID)
	c.Set(ctxKeyUsername, claims.Username)
	c.Set(ctxKeyIsStaff, claims.IsStaff)
	c.Set(ctxKeyAccessToken, tokenString)
	c.Set(ctxKeyTokenTTL, claims.RemainingTTL())
	return nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// =========================================
// Context辅助函数（供Handler使用）
// =========================================

// Actor 当前调用者，未登录返回nil
func Actor(c *gin.Context) *permission.Actor {
	userID := GetUserID(c)
	if userID == 0 {
		return nil
	}
	return &permission.Actor{
		UserID:  userID,
		IsStaff: c.GetBool(ctxKeyIsStaff),
	}
}

// GetUserID 从Context获取当前登录用户ID，未登录为0
func GetUserID(c *gin.Context) uint {
	if userID, exists := c.Get(ctxKeyUserID); exists {
		if uid, ok := userID.(uint); ok {
			return uid
		}
	}
	return 0
}

// GetAccessToken 当前请求的Access Token
func GetAccessToken(c *gin.Context) string {
	return c.GetString(ctxKeyAccessToken)
}

// GetTokenTTL Access Token剩余有效期
func GetTokenTTL(c *gin.Context) time.Duration {
	return c.GetDuration(ctxKeyTokenTTL)
}
