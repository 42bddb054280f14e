package controller

import (
	"errors"
	"finlit_game_backend/internal/service"
	"finlit_game_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResultController struct {
	ResultService *service.ResultService
	UserService   *service.UserService
}

func NewResultController(resultService *service.ResultService, userService *service.UserService) *ResultController {
	return &ResultController{ResultService: resultService, UserService: userService}
}

// SubmitResult godoc
// @Summary 提交通关成绩
// @Description 学生提交一次通关的答题数据，奖励由服务端按关卡定义计算
// @Tags 成绩
// @Accept  json
// @Produce  json
// @Param   body body service.SubmitInput true "通关数据"
// @Success 201 {object} util.Response{data=object} "成绩已记录，返回奖励和最新资料"
// @Failure 400 {object} util.Response "数据与关卡定义不符"
// @Failure 404 {object} util.Response "关卡不存在"
// @Security BearerAuth
// @Router /api/results [post]
func (c *ResultController) SubmitResult(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.SubmitInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	student, err := c.UserService.Profile(claims.UserID)
	if err != nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.ResultService.Submit(student, input)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrLevelNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidResult):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	// 返回加完奖励后的最新资料，客户端用它刷新本地状态
	updated, err := c.UserService.Profile(student.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"result": result, "user": updated.Sanitized()})
}

// GetTeacherResults godoc
// @Summary 查看全部成绩
// @Description 教师和管理员查看所有学生的成绩，按完成时间倒序
// @Tags 成绩
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Result} "成绩列表"
// @Security BearerAuth
// @Router /api/teachers/results [get]
func (c *ResultController) GetTeacherResults(ctx *gin.Context) {
	results, err := c.ResultService.ListAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

// GetStudentResults godoc
// @Summary 查看本人成绩
// @Description 学生查看自己的成绩，可用 grade 查询参数过滤年级
// @Tags 成绩
// @Produce  json
// @Param   grade query int false "按年级过滤"
// @Success 200 {object} util.Response{data=[]model.Result} "成绩列表"
// @Failure 400 {object} util.Response "年级不合法"
// @Security BearerAuth
// @Router /api/students/results [get]
func (c *ResultController) GetStudentResults(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if raw := ctx.Query("grade"); raw != "" {
		grade, err := util.ParseGrade(raw)
		if err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
		results, err := c.ResultService.ListForStudentByGrade(claims.UserID, grade)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		util.Success(ctx, results)
		return
	}

	results, err := c.ResultService.ListForStudent(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}
