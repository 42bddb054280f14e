package model

import (
	"encoding/json"
	"time"
)

type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
	Admin   UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name            string          `gorm:"size:100;not null;index:idx_name_grade" json:"name"`
	Username        string          `gorm:"size:100;unique;not null" json:"username"` // 登录标识：邮箱、用户名或自动生成的学生编号
	Password        string          `gorm:"size:100;not null" json:"-"`
	Role            UserRole        `gorm:"type:enum('student','teacher','admin');default:'student'" json:"role"`
	Grade           int             `gorm:"default:0;index:idx_name_grade" json:"grade"` // 学生年级，教师/管理员为 0
	School          string          `gorm:"size:255" json:"school"`
	Coins           int             `gorm:"default:0" json:"coins"`
	Score           int             `gorm:"default:0" json:"score"` // 累计积分（答对题数 × pointsPerCorrect）
	Avatar          string          `gorm:"size:255" json:"avatar"`
	CompletedLevels json.RawMessage `gorm:"type:json" json:"completedLevels"` // 已通关关卡ID数组
	LastLogin       time.Time       `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen        time.Time       `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}

// CompletedLevelIDs 解析已通关关卡列表，空值返回空切片
func (u *User) CompletedLevelIDs() []string {
	if len(u.CompletedLevels) == 0 {
		return []string{}
	}
	var ids []string
	if err := json.Unmarshal(u.CompletedLevels, &ids); err != nil {
		return []string{}
	}
	return ids
}

// AddCompletedLevel 集合语义：已存在则返回 false，不重复追加
func (u *User) AddCompletedLevel(levelID string) bool {
	ids := u.CompletedLevelIDs()
	for _, id := range ids {
		if id == levelID {
			return false
		}
	}
	ids = append(ids, levelID)
	raw, err := json.Marshal(ids)
	if err != nil {
		return false
	}
	u.CompletedLevels = raw
	return true
}

// Sanitized 返回去除密码哈希后的响应结构
func (u *User) Sanitized() map[string]interface{} {
	return map[string]interface{}{
		"id":              u.ID,
		"name":            u.Name,
		"username":        u.Username,
		"role":            u.Role,
		"grade":           u.Grade,
		"school":          u.School,
		"coins":           u.Coins,
		"score":           u.Score,
		"avatar":          u.Avatar,
		"completedLevels": u.CompletedLevelIDs(),
		"createdAt":       u.CreatedAt,
	}
}
