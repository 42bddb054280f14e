package repository

import (
	"finlit_game_backend/internal/model"

	"gorm.io/gorm"
)

type GroupRepository struct {
	DB *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{DB: db}
}

func (r *GroupRepository) Create(group *model.Group) error {
	return r.DB.Create(group).Error
}

func (r *GroupRepository) FindByID(id uint) (*model.Group, error) {
	var group model.Group
	err := r.DB.First(&group, id).Error
	return &group, err
}

func (r *GroupRepository) ListByTeacher(teacherID uint) ([]model.Group, error) {
	var groups []model.Group
	err := r.DB.Where("teacher_id = ?", teacherID).Order("created_at DESC").Find(&groups).Error
	return groups, err
}

func (r *GroupRepository) Update(group *model.Group) error {
	return r.DB.Save(group).Error
}
