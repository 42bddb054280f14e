package service

import (
	"finlit_game_backend/internal/config"
	"finlit_game_backend/internal/repository"
	"finlit_game_backend/pkg/database"
	"finlit_game_backend/pkg/logger"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

// newTestDB 每个测试一个独立的 sqlite 文件库，结构与生产迁移一致
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireTime = time.Hour
	cfg.Bootstrap.AdminEnabled = true
	cfg.Bootstrap.AdminUsername = "moris"
	cfg.Bootstrap.AdminPassword = "moris"
	return cfg
}

type testRepos struct {
	user        *repository.UserRepository
	result      *repository.ResultRepository
	group       *repository.GroupRepository
	activityLog *repository.ActivityLogRepository
}

func newTestRepos(db *gorm.DB) *testRepos {
	return &testRepos{
		user:        repository.NewUserRepository(db),
		result:      repository.NewResultRepository(db),
		group:       repository.NewGroupRepository(db),
		activityLog: repository.NewActivityLogRepository(db),
	}
}
