package controller

import (
	"finlit_game_backend/internal/catalog"
	"finlit_game_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LevelController struct {
	Catalog *catalog.Catalog
}

func NewLevelController(cat *catalog.Catalog) *LevelController {
	return &LevelController{Catalog: cat}
}

// GetLevels godoc
// @Summary 获取全部关卡
// @Description 返回关卡目录，按年级和关卡编号排序
// @Tags 关卡
// @Produce  json
// @Success 200 {object} util.Response{data=[]catalog.Level} "关卡列表"
// @Router /api/levels [get]
func (c *LevelController) GetLevels(ctx *gin.Context) {
	util.Success(ctx, c.Catalog.All())
}

// GetLevelsByGrade godoc
// @Summary 按年级获取关卡
// @Description 返回指定年级的关卡，年级不合法返回 400
// @Tags 关卡
// @Produce  json
// @Param   grade path int true "年级 (1-11)"
// @Success 200 {object} util.Response{data=[]catalog.Level} "关卡列表"
// @Failure 400 {object} util.Response "年级不合法"
// @Router /api/levels/grade/{grade} [get]
func (c *LevelController) GetLevelsByGrade(ctx *gin.Context) {
	grade, err := util.ParseGrade(ctx.Param("grade"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, c.Catalog.ByGrade(grade))
}
