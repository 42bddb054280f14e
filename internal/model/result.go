package model

import "time"

// Result 一次通关测验的最终记录，写入后不再修改
// swagger:model Result
type Result struct {
	BaseModel
	StudentID        uint      `gorm:"index;type:bigint unsigned" json:"studentId"`
	StudentName      string    `gorm:"size:100;not null" json:"studentName"`
	LevelID          string    `gorm:"size:50;index;not null" json:"levelId"`
	Grade            int       `gorm:"not null" json:"grade"`
	CorrectAnswers   int       `gorm:"not null" json:"correctAnswers"`
	TotalQuestions   int       `gorm:"not null" json:"totalQuestions"`
	Percentage       int       `gorm:"default:0" json:"percentage"`
	TimeTakenSeconds int       `gorm:"default:0" json:"timeTakenSeconds"`
	CoinsEarned      int       `gorm:"default:0" json:"coinsEarned"`
	PointsEarned     int       `gorm:"default:0" json:"pointsEarned"`
	CompletedAt      time.Time `json:"completedAt"`
}

func (Result) TableName() string {
	return "results"
}
