package model

import "encoding/json"

const (
	LogTypeLogin         = "login"
	LogTypeRegister      = "register"
	LogTypeTestCompleted = "test_completed"
	LogTypeUserDeleted   = "user_deleted"
)

// ActivityLog 管理员审计日志
// swagger:model ActivityLog
type ActivityLog struct {
	BaseModel
	Type     string          `gorm:"size:50;index" json:"type"`
	UserID   uint            `gorm:"index;type:bigint unsigned" json:"userId"`
	UserRole UserRole        `gorm:"size:20" json:"userRole"`
	Details  json.RawMessage `gorm:"type:json" json:"details"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
