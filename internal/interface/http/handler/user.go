package handler

import (
	"github.com/gin-gonic/gin"

	appuser "github.com/xiebiao/bookstore-api/internal/application/user"
	"github.com/xiebiao/bookstore-api/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-api/internal/interface/http/middleware"
	"github.com/xiebiao/bookstore-api/pkg/response"
)

// UserHandler 用户HTTP处理器
// Handler只负责解析请求、调用应用层、返回响应
type UserHandler struct {
	registerUseCase *appuser.RegisterUseCase
	loginUseCase    *appuser.LoginUseCase
	refreshUseCase  *appuser.RefreshUseCase
	logoutUseCase   *appuser.LogoutUseCase
}

// NewUserHandler 创建用户处理器
func NewUserHandler(
	registerUseCase *appuser.RegisterUseCase,
	loginUseCase *appuser.LoginUseCase,
	refreshUseCase *appuser.RefreshUseCase,
	logoutUseCase *appuser.LogoutUseCase,
) *UserHandler {
	return &UserHandler{
		registerUseCase: registerUseCase,
		loginUseCase:    loginUseCase,
		refreshUseCase:  refreshUseCase,
		logoutUseCase:   logoutUseCase,
	}
}

// Register 用户注册
// @Summary      用户注册
// @Description  创建新用户账号，用户名在auth.staff_usernames中时为管理员
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "注册信息"
// @Success      201 {object} dto.UserResponse "注册成功"
// @Failure      400 {object} map[string][]string "参数错误"
// @Router       /users/register/ [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := dto.BindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), appuser.RegisterRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, &dto.UserResponse{
		ID:       result.ID,
		Username: result.Username,
		IsStaff:  result.IsStaff,
	})
}

// Login 用户登录
// @Summary      用户登录
// @Description  验证用户名密码，返回JWT Token对
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录信息"
// @Success      200 {object} dto.LoginResponse "登录成功"
// @Failure      400 {object} map[string][]string "参数错误"
// @Failure      401 {object} response.ErrorBody "用户名或密码错误"
// @Router       /users/login/ [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := dto.BindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), appuser.LoginRequest{
		Username: req.Username,
		Password: req.Password,
		ClientIP: c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toLoginResponse(result))
}

// Refresh 刷新Token
// @Summary      刷新Token
// @Description  使用Refresh Token换取新的Token对
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.RefreshRequest true "Refresh Token"
// @Success      200 {object} dto.LoginResponse
// @Failure      401 {object} response.ErrorBody
// @Router       /users/refresh/ [post]
func (h *UserHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := dto.BindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.refreshUseCase.Execute(c.Request.Context(), req.RefreshToken, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toLoginResponse(result))
}

// Logout 退出登录，当前Access Token加入黑名单
// @Summary      退出登录
// @Tags         用户
// @Security     BearerAuth
// @Success      204
// @Failure      401 {object} response.ErrorBody
// @Router       /users/logout/ [post]
func (h *UserHandler) Logout(c *gin.Context) {
	err := h.logoutUseCase.Execute(
		c.Request.Context(),
		middleware.GetUserID(c),
		middleware.GetAccessToken(c),
		middleware.GetTokenTTL(c),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

func toLoginResponse(result *appuser.LoginResponse) *dto.LoginResponse {
	return &dto.LoginResponse{
		User: dto.UserResponse{
			ID:       result.User.ID,
			Username: result.User.Username,
			IsStaff:  result.User.IsStaff,
		},
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
	}
}
