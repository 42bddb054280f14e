package app

import (
	"context"
	"finlit_game_backend/internal/catalog"
	"finlit_game_backend/internal/config"
	"finlit_game_backend/internal/controller"
	"finlit_game_backend/internal/repository"
	"finlit_game_backend/internal/service"
	"finlit_game_backend/pkg/database"
	"finlit_game_backend/pkg/logger"
	"finlit_game_backend/pkg/monitoring"
	"finlit_game_backend/pkg/security"
	"finlit_game_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	Catalog         *catalog.Catalog
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user        *repository.UserRepository
	result      *repository.ResultRepository
	group       *repository.GroupRepository
	activityLog *repository.ActivityLogRepository
}

type services struct {
	auth    *service.AuthService
	user    *service.UserService
	result  *service.ResultService
	stats   *service.StatsService
	group   *service.GroupService
	storage *service.StorageService
}

type controllers struct {
	auth    *controller.AuthController
	level   *controller.LevelController
	result  *controller.ResultController
	teacher *controller.TeacherController
	admin   *controller.AdminController
	health  *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 配置热更新回调入口，由 configwatcher 调用
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		result:      repository.NewResultRepository(db),
		group:       repository.NewGroupRepository(db),
		activityLog: repository.NewActivityLogRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client, cat *catalog.Catalog) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, repos.activityLog, cfg)
	s.user = service.NewUserService(repos.user, repos.activityLog, s.storage)
	s.result = service.NewResultService(repos.result, repos.user, repos.activityLog, cat)
	s.stats = service.NewStatsService(repos.user, repos.result, repos.activityLog, rdb)
	s.group = service.NewGroupService(repos.group, repos.user)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client, cat *catalog.Catalog) *controllers {
	return &controllers{
		auth:    controller.NewAuthController(s.auth, s.user),
		level:   controller.NewLevelController(cat),
		result:  controller.NewResultController(s.result, s.user),
		teacher: controller.NewTeacherController(s.stats, s.group, s.user),
		admin:   controller.NewAdminController(s.stats, s.user),
		health:  controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	// Redis 不可用不阻止启动，统计接口退化为直接查库
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Redis unavailable, stats caching disabled", zap.Error(err))
		rdb = nil
	}

	cat := catalog.Default()

	app := &App{
		Config:  cfg,
		DB:      db,
		Redis:   rdb,
		Catalog: cat,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb, cat)
	controllers := app.initControllers(services, db, rdb, cat)

	if err := services.auth.SeedBootstrapAdmin(); err != nil {
		logger.Log.Fatal("Failed to seed bootstrap admin", zap.Error(err))
	}

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("finlit-game", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
