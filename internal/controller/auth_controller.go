package controller

import (
	"errors"
	"finlit_game_backend/internal/model"
	"finlit_game_backend/internal/service"
	"finlit_game_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	UserService *service.UserService
}

func NewAuthController(authService *service.AuthService, userService *service.UserService) *AuthController {
	return &AuthController{AuthService: authService, UserService: userService}
}

// StudentLoginRequest 学生快捷登录请求
type StudentLoginRequest struct {
	Name  string `json:"name" binding:"required"`
	Grade int    `json:"grade" binding:"required"`
}

// StudentLogin godoc
// @Summary 学生快捷登录
// @Description 按姓名和年级登录，账号不存在时自动创建
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body StudentLoginRequest true "姓名和年级"
// @Success 200 {object} util.Response{data=object} "登录成功，返回用户信息和令牌"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/students/login [post]
func (c *AuthController) StudentLogin(ctx *gin.Context) {
	var req StudentLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AuthService.StudentQuickLogin(req.Name, req.Grade)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidName), errors.Is(err, util.ErrInvalidGrade):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"user": result.User.Sanitized(), "token": result.Token})
}

// StudentRegisterRequest 学生注册请求
type StudentRegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
	Grade    int    `json:"grade" binding:"required"`
}

// StudentRegister godoc
// @Summary 学生注册
// @Description 用自选的用户名和密码注册学生账号
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body StudentRegisterRequest true "学生注册信息"
// @Success 201 {object} util.Response{data=object} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 409 {object} util.Response "用户名已被注册"
// @Router /api/students/register [post]
func (c *AuthController) StudentRegister(ctx *gin.Context) {
	var req StudentRegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.Grade < 1 || req.Grade > 11 {
		util.BadRequest(ctx, util.ErrInvalidGrade.Error())
		return
	}

	result, err := c.AuthService.Register(req.Name, req.Username, req.Password, model.Student, req.Grade, "")
	if err != nil {
		if errors.Is(err, util.ErrDuplicateIdentifier) {
			util.Conflict(ctx, "该用户名已被注册")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"user": result.User.Sanitized(), "token": result.Token})
}

// TeacherLoginRequest 教师登录请求
type TeacherLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TeacherLogin godoc
// @Summary 教师登录
// @Description 教师（或管理员）用用户名和密码登录
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body TeacherLoginRequest true "用户名和密码"
// @Success 200 {object} util.Response{data=object} "登录成功，返回用户信息和令牌"
// @Failure 401 {object} util.Response "用户名或密码错误"
// @Failure 403 {object} util.Response "账号角色不符"
// @Router /api/teachers/login [post]
func (c *AuthController) TeacherLogin(ctx *gin.Context) {
	var req TeacherLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AuthService.Login(req.Username, req.Password, model.Teacher)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidCredentials):
			// 不区分账号不存在和密码错误
			util.Unauthorized(ctx)
		case errors.Is(err, util.ErrRoleMismatch):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"user": result.User.Sanitized(), "token": result.Token})
}

// TeacherRegisterRequest 教师注册请求
type TeacherRegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=8"`
	School   string `json:"school"`
}

// TeacherRegister godoc
// @Summary 注册教师账号
// @Description 仅管理员可创建教师账号
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body TeacherRegisterRequest true "教师注册信息"
// @Success 201 {object} util.Response{data=object} "创建成功"
// @Failure 409 {object} util.Response "用户名已被注册"
// @Security BearerAuth
// @Router /api/teachers/register [post]
func (c *AuthController) TeacherRegister(ctx *gin.Context) {
	var req TeacherRegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AuthService.Register(req.Name, req.Username, req.Password, model.Teacher, 0, req.School)
	if err != nil {
		if errors.Is(err, util.ErrDuplicateIdentifier) {
			util.Conflict(ctx, "该用户名已被注册")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"user": result.User.Sanitized()})
}

// Profile godoc
// @Summary 获取当前用户信息
// @Description 根据令牌返回当前登录用户的资料
// @Tags 认证
// @Produce  json
// @Success 200 {object} util.Response{data=object} "用户资料"
// @Failure 401 {object} util.Response "未登录"
// @Security BearerAuth
// @Router /api/students/profile [get]
func (c *AuthController) Profile(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, user.Sanitized())
}

// UploadAvatar godoc
// @Summary 上传头像
// @Description 接收 multipart 表单的 avatar 字段，返回可访问的 URL
// @Tags 认证
// @Accept  multipart/form-data
// @Produce  json
// @Param   avatar formData file true "头像图片 (png/jpeg/webp)"
// @Success 200 {object} util.Response{data=object} "上传成功"
// @Failure 400 {object} util.Response "文件缺失或格式不支持"
// @Security BearerAuth
// @Router /api/profile/avatar [post]
func (c *AuthController) UploadAvatar(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("avatar")
	if err != nil {
		util.BadRequest(ctx, "avatar file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := c.UserService.UploadAvatar(ctx.Request.Context(), user, fileHeader.Filename, file, fileHeader.Size, contentType)
	if err != nil {
		if errors.Is(err, util.ErrUnsupportedAvatar) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"avatar": url})
}
