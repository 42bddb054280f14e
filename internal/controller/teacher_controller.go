package controller

import (
	"errors"
	"finlit_game_backend/internal/service"
	"finlit_game_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type TeacherController struct {
	StatsService *service.StatsService
	GroupService *service.GroupService
	UserService  *service.UserService
}

func NewTeacherController(statsService *service.StatsService, groupService *service.GroupService, userService *service.UserService) *TeacherController {
	return &TeacherController{
		StatsService: statsService,
		GroupService: groupService,
		UserService:  userService,
	}
}

// GetStudents godoc
// @Summary 学生名册
// @Description 返回全部学生及其答题统计，按注册时间倒序
// @Tags 教师
// @Produce  json
// @Success 200 {object} util.Response{data=[]service.RosterEntry} "学生名册"
// @Security BearerAuth
// @Router /api/teachers/students [get]
func (c *TeacherController) GetStudents(ctx *gin.Context) {
	roster, err := c.StatsService.Roster()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, roster)
}

// Leaderboard godoc
// @Summary 金币排行榜
// @Description 按金币数降序返回前 N 名学生，默认 10 名
// @Tags 教师
// @Produce  json
// @Param   limit query int false "返回条数 (1-100)"
// @Success 200 {object} util.Response{data=[]service.LeaderboardEntry} "排行榜"
// @Security BearerAuth
// @Router /api/teachers/leaderboard [get]
func (c *TeacherController) Leaderboard(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	entries, err := c.StatsService.Leaderboard(ctx.Request.Context(), limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// CreateGroupRequest 创建班组请求
type CreateGroupRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateGroup godoc
// @Summary 创建班组
// @Description 教师创建自己名下的学生班组
// @Tags 教师
// @Accept  json
// @Produce  json
// @Param   body body CreateGroupRequest true "班组名称"
// @Success 201 {object} util.Response{data=model.Group} "创建成功"
// @Failure 400 {object} util.Response "名称为空"
// @Security BearerAuth
// @Router /api/teachers/groups [post]
func (c *TeacherController) CreateGroup(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	teacher, err := c.UserService.Profile(claims.UserID)
	if err != nil {
		util.Unauthorized(ctx)
		return
	}

	group, err := c.GroupService.CreateGroup(teacher, req.Name)
	if err != nil {
		if errors.Is(err, util.ErrInvalidGroupName) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, group)
}

// GetGroups godoc
// @Summary 查看自己的班组
// @Description 返回当前教师创建的所有班组
// @Tags 教师
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Group} "班组列表"
// @Security BearerAuth
// @Router /api/teachers/groups [get]
func (c *TeacherController) GetGroups(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	groups, err := c.GroupService.ListGroups(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, groups)
}

// AddGroupStudentRequest 班组加学生请求
type AddGroupStudentRequest struct {
	StudentID uint `json:"studentId" binding:"required"`
}

// AddGroupStudent godoc
// @Summary 班组加入学生
// @Description 把学生加入班组，仅班组创建者或管理员可操作
// @Tags 教师
// @Accept  json
// @Produce  json
// @Param   id path int true "班组ID"
// @Param   body body AddGroupStudentRequest true "学生ID"
// @Success 200 {object} util.Response{data=model.Group} "加入成功"
// @Failure 403 {object} util.Response "无权操作该班组"
// @Failure 404 {object} util.Response "班组或学生不存在"
// @Security BearerAuth
// @Router /api/teachers/groups/{id}/students [post]
func (c *TeacherController) AddGroupStudent(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	groupID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid group id")
		return
	}

	var req AddGroupStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	actor, err := c.UserService.Profile(claims.UserID)
	if err != nil {
		util.Unauthorized(ctx)
		return
	}

	group, err := c.GroupService.AddStudentToGroup(actor, uint(groupID), req.StudentID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrGroupNotFound), errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		case errors.Is(err, util.ErrRoleMismatch):
			util.BadRequest(ctx, "只能把学生账号加入班组")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, group)
}
