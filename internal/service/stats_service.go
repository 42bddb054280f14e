package service

import (
	"context"
	"encoding/json"
	"finlit_game_backend/internal/model"
	"finlit_game_backend/internal/repository"
	"finlit_game_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	statsCacheKey       = "finlit:stats:admin"
	leaderboardCacheKey = "finlit:stats:leaderboard"
	statsCacheTTL       = 60 * time.Second
)

type StatsService struct {
	UserRepo   *repository.UserRepository
	ResultRepo *repository.ResultRepository
	LogRepo    *repository.ActivityLogRepository
	Redis      *redis.Client
}

func NewStatsService(userRepo *repository.UserRepository, resultRepo *repository.ResultRepository, logRepo *repository.ActivityLogRepository, rdb *redis.Client) *StatsService {
	return &StatsService{
		UserRepo:   userRepo,
		ResultRepo: resultRepo,
		LogRepo:    logRepo,
		Redis:      rdb,
	}
}

type AdminStats struct {
	TotalStudents     int64   `json:"totalStudents"`
	TotalTeachers     int64   `json:"totalTeachers"`
	TotalResults      int64   `json:"totalResults"`
	ActiveStudents    int64   `json:"activeStudents"`
	AveragePercentage float64 `json:"averagePercentage"`
}

// Stats 聚合全站统计。Redis 可用时结果缓存 60 秒，
// 缓存失效或 Redis 不可用则直接查库。
func (s *StatsService) Stats(ctx context.Context) (*AdminStats, error) {
	if cached := s.fromCache(ctx, statsCacheKey); cached != nil {
		var stats AdminStats
		if err := json.Unmarshal(cached, &stats); err == nil {
			return &stats, nil
		}
	}

	stats := &AdminStats{}
	var err error
	if stats.TotalStudents, err = s.UserRepo.CountByRole(model.Student); err != nil {
		return nil, err
	}
	if stats.TotalTeachers, err = s.UserRepo.CountByRole(model.Teacher); err != nil {
		return nil, err
	}
	if stats.TotalResults, err = s.ResultRepo.CountTotal(); err != nil {
		return nil, err
	}
	if stats.ActiveStudents, err = s.ResultRepo.CountDistinctStudents(); err != nil {
		return nil, err
	}
	if stats.AveragePercentage, err = s.ResultRepo.AveragePercentage(); err != nil {
		return nil, err
	}

	s.toCache(ctx, statsCacheKey, stats)
	return stats, nil
}

type LeaderboardEntry struct {
	StudentID uint   `json:"studentId"`
	Name      string `json:"name"`
	Grade     int    `json:"grade"`
	Coins     int    `json:"coins"`
	Score     int    `json:"score"`
}

// Leaderboard 按金币降序取前 limit 名学生。
func (s *StatsService) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	if cached := s.fromCache(ctx, leaderboardCacheKey); cached != nil {
		var entries []LeaderboardEntry
		if err := json.Unmarshal(cached, &entries); err == nil && len(entries) >= limit {
			return entries[:limit], nil
		}
	}

	users, err := s.UserRepo.FindTopByCoins(limit)
	if err != nil {
		return nil, err
	}
	entries := make([]LeaderboardEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, LeaderboardEntry{
			StudentID: u.ID,
			Name:      u.Name,
			Grade:     u.Grade,
			Coins:     u.Coins,
			Score:     u.Score,
		})
	}
	s.toCache(ctx, leaderboardCacheKey, entries)
	return entries, nil
}

type RosterEntry struct {
	Student      map[string]interface{} `json:"student"`
	TestsTaken   int64                  `json:"testsTaken"`
	TotalCorrect int64                  `json:"totalCorrect"`
}

// Roster 给教师端的学生名册，附带每个学生的答题统计。
func (s *StatsService) Roster() ([]RosterEntry, error) {
	students, err := s.UserRepo.ListStudents()
	if err != nil {
		return nil, err
	}
	roster := make([]RosterEntry, 0, len(students))
	for i := range students {
		taken, err := s.ResultRepo.CountByStudent(students[i].ID)
		if err != nil {
			return nil, err
		}
		correct, err := s.ResultRepo.SumCorrectByStudent(students[i].ID)
		if err != nil {
			return nil, err
		}
		roster = append(roster, RosterEntry{
			Student:      students[i].Sanitized(),
			TestsTaken:   taken,
			TotalCorrect: correct,
		})
	}
	return roster, nil
}

func (s *StatsService) RecentLogs(limit int) ([]model.ActivityLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.LogRepo.ListRecent(limit)
}

func (s *StatsService) fromCache(ctx context.Context, key string) []byte {
	if s.Redis == nil {
		return nil
	}
	raw, err := s.Redis.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Warn("stats cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil
	}
	return raw
}

func (s *StatsService) toCache(ctx context.Context, key string, value interface{}) {
	if s.Redis == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, key, raw, statsCacheTTL).Err(); err != nil {
		logger.Log.Warn("stats cache write failed", zap.String("key", key), zap.Error(err))
	}
}
