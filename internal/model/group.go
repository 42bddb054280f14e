package model

import "encoding/json"

// Group 教师创建的学生分组
// swagger:model Group
type Group struct {
	BaseModel
	Name      string          `gorm:"size:255;not null" json:"name"`
	TeacherID uint            `gorm:"index;type:bigint unsigned" json:"teacherId"`
	Students  json.RawMessage `gorm:"type:json" json:"students"` // 学生用户ID数组
}

func (Group) TableName() string {
	return "groups"
}

func (g *Group) StudentIDs() []uint {
	if len(g.Students) == 0 {
		return []uint{}
	}
	var ids []uint
	if err := json.Unmarshal(g.Students, &ids); err != nil {
		return []uint{}
	}
	return ids
}

func (g *Group) AddStudent(userID uint) bool {
	ids := g.StudentIDs()
	for _, id := range ids {
		if id == userID {
			return false
		}
	}
	ids = append(ids, userID)
	raw, err := json.Marshal(ids)
	if err != nil {
		return false
	}
	g.Students = raw
	return true
}
