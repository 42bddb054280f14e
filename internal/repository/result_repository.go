package repository

import (
	"finlit_game_backend/internal/model"

	"gorm.io/gorm"
)

type ResultRepository struct {
	DB *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{DB: db}
}

// Create 结果记录只增不改
func (r *ResultRepository) Create(result *model.Result) error {
	return r.DB.Create(result).Error
}

func (r *ResultRepository) ListAll() ([]model.Result, error) {
	var results []model.Result
	err := r.DB.Order("completed_at DESC").Find(&results).Error
	return results, err
}

func (r *ResultRepository) ListByStudent(studentID uint) ([]model.Result, error) {
	var results []model.Result
	err := r.DB.Where("student_id = ?", studentID).Order("completed_at DESC").Find(&results).Error
	return results, err
}

func (r *ResultRepository) ListByStudentAndGrade(studentID uint, grade int) ([]model.Result, error) {
	var results []model.Result
	err := r.DB.Where("student_id = ? AND grade = ?", studentID, grade).
		Order("completed_at DESC").Find(&results).Error
	return results, err
}

func (r *ResultRepository) CountTotal() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Result{}).Count(&count).Error
	return count, err
}

func (r *ResultRepository) CountDistinctStudents() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Result{}).Distinct("student_id").Count(&count).Error
	return count, err
}

// AveragePercentage 所有结果的平均正确率；无记录时返回 0
func (r *ResultRepository) AveragePercentage() (float64, error) {
	var avg *float64
	err := r.DB.Model(&model.Result{}).Select("AVG(percentage)").Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}

// CountByStudent 用于教师端学生名册的完成数统计
func (r *ResultRepository) CountByStudent(studentID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Result{}).Where("student_id = ?", studentID).Count(&count).Error
	return count, err
}

// SumCorrectByStudent 学生累计答对题数
func (r *ResultRepository) SumCorrectByStudent(studentID uint) (int64, error) {
	var sum *int64
	err := r.DB.Model(&model.Result{}).Select("SUM(correct_answers)").
		Where("student_id = ?", studentID).Scan(&sum).Error
	if err != nil || sum == nil {
		return 0, err
	}
	return *sum, nil
}
