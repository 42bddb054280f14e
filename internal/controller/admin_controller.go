package controller

import (
	"errors"
	"finlit_game_backend/internal/service"
	"finlit_game_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	StatsService *service.StatsService
	UserService  *service.UserService
}

func NewAdminController(statsService *service.StatsService, userService *service.UserService) *AdminController {
	return &AdminController{StatsService: statsService, UserService: userService}
}

// GetStats godoc
// @Summary 全站统计
// @Description 学生数、教师数、成绩总数、活跃学生数和平均正确率
// @Tags 管理
// @Produce  json
// @Success 200 {object} util.Response{data=service.AdminStats} "统计数据"
// @Security BearerAuth
// @Router /api/admin/stats [get]
func (c *AdminController) GetStats(ctx *gin.Context) {
	stats, err := c.StatsService.Stats(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// GetLogs godoc
// @Summary 活动日志
// @Description 最近的登录、注册、通关和删号记录，按时间倒序
// @Tags 管理
// @Produce  json
// @Param   limit query int false "返回条数 (1-200)"
// @Success 200 {object} util.Response{data=[]model.ActivityLog} "日志列表"
// @Security BearerAuth
// @Router /api/admin/logs [get]
func (c *AdminController) GetLogs(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))
	logs, err := c.StatsService.RecentLogs(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, logs)
}

// AddStudentRequest 管理员录入学生请求
type AddStudentRequest struct {
	Name   string `json:"name" binding:"required"`
	Grade  int    `json:"grade" binding:"required"`
	School string `json:"school"`
}

// AddStudent godoc
// @Summary 录入学生
// @Description 管理员手工添加学生，初始密码随机生成且仅在本次响应返回
// @Tags 管理
// @Accept  json
// @Produce  json
// @Param   body body AddStudentRequest true "学生信息"
// @Success 201 {object} util.Response{data=object} "创建成功"
// @Failure 409 {object} util.Response "同名同年级学生已存在"
// @Security BearerAuth
// @Router /api/admin/students/add [post]
func (c *AdminController) AddStudent(ctx *gin.Context) {
	var req AddStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.UserService.AddStudent(req.Name, req.Grade, req.School)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrDuplicateIdentifier):
			util.Conflict(ctx, "同名同年级学生已存在")
		case errors.Is(err, util.ErrInvalidName), errors.Is(err, util.ErrInvalidGrade):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{
		"user":            result.Student.Sanitized(),
		"initialPassword": result.InitialPassword,
	})
}

// DeleteUser godoc
// @Summary 删除账号
// @Description 管理员物理删除学生或教师账号，管理员账号不可删除
// @Tags 管理
// @Produce  json
// @Param   id path int true "用户ID"
// @Success 200 {object} util.Response "删除成功"
// @Failure 403 {object} util.Response "不能删除管理员账号"
// @Failure 404 {object} util.Response "用户不存在"
// @Security BearerAuth
// @Router /api/admin/users/{id} [delete]
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	if err := c.UserService.DeleteUser(uint(id)); err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}
