package app

import (
	"finlit_game_backend/docs"
	"finlit_game_backend/internal/config"
	"finlit_game_backend/internal/middleware"
	"finlit_game_backend/internal/model"
	"finlit_game_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/students/login", c.auth.StudentLogin)
		public.POST("/students/register", c.auth.StudentRegister)
		public.POST("/teachers/login", c.auth.TeacherLogin)
		public.GET("/levels", c.level.GetLevels)
		public.GET("/levels/grade/:grade", c.level.GetLevelsByGrade)
	}

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/students/profile", c.auth.Profile)
		authGroup.GET("/students/results", c.result.GetStudentResults)
		authGroup.POST("/results", c.result.SubmitResult)
		authGroup.POST("/profile/avatar", c.auth.UploadAvatar)

		// 教师相关接口，管理员同样放行
		teacher := authGroup.Group("/teachers")
		teacher.Use(middleware.RoleMiddleware(model.Teacher))
		{
			teacher.POST("/register", middleware.RoleMiddleware(model.Admin), c.auth.TeacherRegister)
			teacher.GET("/results", c.result.GetTeacherResults)
			teacher.GET("/students", c.teacher.GetStudents)
			teacher.GET("/leaderboard", c.teacher.Leaderboard)
			teacher.POST("/groups", c.teacher.CreateGroup)
			teacher.GET("/groups", c.teacher.GetGroups)
			teacher.POST("/groups/:id/students", c.teacher.AddGroupStudent)
		}

		// 管理员相关接口
		admin := authGroup.Group("/admin")
		admin.Use(middleware.RoleMiddleware(model.Admin))
		{
			admin.GET("/stats", c.admin.GetStats)
			admin.GET("/logs", c.admin.GetLogs)
			admin.POST("/students/add", c.admin.AddStudent)
			admin.DELETE("/users/:id", c.admin.DeleteUser)
		}
	}
}
