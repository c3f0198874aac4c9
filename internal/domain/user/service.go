package user

import (
	"context"
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

// Service 用户领域服务
// 设计说明：
// 1. Service包含不属于单个实体的业务逻辑（密码加密、验证）
// 2. Service依赖Repository接口，不依赖具体实现（依赖倒置）
type Service interface {
	// Register 用户注册
	Register(ctx context.Context, username, password string) (*User, error)

	// Login 用户登录
	Login(ctx context.Context, username, password string) (*User, error)

	// GetByID 根据ID获取用户
	GetByID(ctx context.Context, id uint) (*User, error)
}

// DefaultBcryptCost 推荐值，平衡安全性与性能（cost每+1，耗时翻倍）
const DefaultBcryptCost = 12

type service struct {
	repo           Repository
	bcryptCost     int
	staffUsernames map[string]bool
}

// Option 服务选项
type Option func(*service)

// WithBcryptCost 设置bcrypt cost（测试中使用bcrypt.MinCost加速）
func WithBcryptCost(cost int) Option {
	return func(s *service) {
		s.bcryptCost = cost
	}
}

// WithStaffUsernames 这些用户名注册时自动成为staff
func WithStaffUsernames(usernames []string) Option {
	return func(s *service) {
		for _, name := range usernames {
			s.staffUsernames[name] = true
		}
	}
}

// NewService 创建用户服务
func NewService(repo Repository, opts ...Option) Service {
	s := &service{
		repo:           repo,
		bcryptCost:     DefaultBcryptCost,
		staffUsernames: map[string]bool{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9@.+_-]{3,150}$`)
	letterPattern   = regexp.MustCompile(`[a-zA-Z]`)
	digitPattern    = regexp.MustCompile(`[0-9]`)
)

// Register 用户注册
// 业务规则：
// 1. 用户名3-150位，只允许字母、数字和 @.+-_
// 2. 密码8-128位，必须包含字母和数字
// 3. 用户名唯一性由数据库UNIQUE索引保证
func (s *service) Register(ctx context.Context, username, password string) (*User, error) {
	if !usernamePattern.MatchString(username) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "用户名格式不正确").WithField("username")
	}

	if err := validatePasswordStrength(password); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, apperrors.Wrap(err, "密码加密失败")
	}

	user := NewUser(username, string(hashedPassword), s.staffUsernames[username])
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err // Repository已转换为业务错误
	}

	return user, nil
}

// Login 用户登录
// 用户不存在和密码错误返回同一个错误，避免泄露用户名是否存在
func (s *service) Login(ctx context.Context, username, password string) (*User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidPassword
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, apperrors.ErrInvalidPassword
		}
		return nil, apperrors.Wrap(err, "密码验证失败")
	}

	return user, nil
}

// GetByID 根据ID获取用户
func (s *service) GetByID(ctx context.Context, id uint) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

// validatePasswordStrength 密码强度校验
// 规则：8-128位，必须包含字母和数字
func validatePasswordStrength(password string) error {
	if len(password) < 8 || len(password) > 128 {
		return apperrors.ErrWeakPassword
	}
	if !letterPattern.MatchString(password) || !digitPattern.MatchString(password) {
		return apperrors.ErrWeakPassword
	}
	return nil
}
