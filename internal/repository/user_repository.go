package repository

import (
	"finlit_game_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	return &user, err
}

// FindStudentByNameAndGrade 学生快捷登录的查找键
func (r *UserRepository) FindStudentByNameAndGrade(name string, grade int) (*model.User, error) {
	var user model.User
	err := r.DB.Where("name = ? AND grade = ? AND role = ?", name, grade, model.Student).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

// Delete 管理员显式删除，直接物理删除
func (r *UserRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&model.User{}, id).Error
}

func (r *UserRepository) ListStudents() ([]model.User, error) {
	var users []model.User
	err := r.DB.Where("role = ?", model.Student).Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *UserRepository) CountByRole(role model.UserRole) (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

// AddRewards 原子累加金币与积分，避免并发提交时互相覆盖
func (r *UserRepository) AddRewards(userID uint, coins, points int) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"coins": gorm.Expr("coins + ?", coins),
			"score": gorm.Expr("score + ?", points),
		}).Error
}

// MarkLevelCompleted 集合语义追加已通关关卡，事务内读改写
func (r *UserRepository) MarkLevelCompleted(userID uint, levelID string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}
		if !user.AddCompletedLevel(levelID) {
			return nil
		}
		return tx.Model(&model.User{}).
			Where("id = ?", userID).
			Update("completed_levels", user.CompletedLevels).Error
	})
}

func (r *UserRepository) FindTopByCoins(limit int) ([]model.User, error) {
	var users []model.User
	err := r.DB.Where("role = ?", model.Student).Order("coins DESC").Limit(limit).Find(&users).Error
	return users, err
}

func (r *UserRepository) UpdateLastLogin(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_login", time.Now()).
		Error
}

func (r *UserRepository) UpdateLastSeen(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_seen", time.Now()).
		Error
}
