package repository

import (
	"finlit_game_backend/internal/model"

	"gorm.io/gorm"
)

type ActivityLogRepository struct {
	DB *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{DB: db}
}

func (r *ActivityLogRepository) Create(entry *model.ActivityLog) error {
	return r.DB.Create(entry).Error
}

// ListRecent 最近的日志，最多 limit 条
func (r *ActivityLogRepository) ListRecent(limit int) ([]model.ActivityLog, error) {
	var logs []model.ActivityLog
	err := r.DB.Order("created_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
