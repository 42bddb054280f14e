package service

import (
	"encoding/json"
	"finlit_game_backend/internal/catalog"
	"finlit_game_backend/internal/model"
	"finlit_game_backend/internal/quiz"
	"finlit_game_backend/internal/repository"
	"finlit_game_backend/internal/util"
	"finlit_game_backend/pkg/logger"
	"finlit_game_backend/pkg/monitoring"
	"strconv"
	"time"

	"go.uber.org/zap"
)

type ResultService struct {
	ResultRepo *repository.ResultRepository
	UserRepo   *repository.UserRepository
	LogRepo    *repository.ActivityLogRepository
	Catalog    *catalog.Catalog
}

func NewResultService(resultRepo *repository.ResultRepository, userRepo *repository.UserRepository, logRepo *repository.ActivityLogRepository, cat *catalog.Catalog) *ResultService {
	return &ResultService{
		ResultRepo: resultRepo,
		UserRepo:   userRepo,
		LogRepo:    logRepo,
		Catalog:    cat,
	}
}

// SubmitInput 客户端上报的通关数据。奖励不信任客户端，由服务端按
// 关卡定义重新计算。
type SubmitInput struct {
	LevelID          string `json:"levelId" binding:"required"`
	CorrectAnswers   int    `json:"correctAnswers"`
	TotalQuestions   int    `json:"totalQuestions" binding:"required"`
	TimeTakenSeconds int    `json:"timeTakenSeconds"`
}

// Submit 落一条只读的 Result，并给学生账号原子加金币/积分、
// 追加已通关关卡。Result 一旦写入不再修改。
func (s *ResultService) Submit(student *model.User, input SubmitInput) (*model.Result, error) {
	level, err := s.Catalog.ByID(input.LevelID)
	if err != nil {
		return nil, err
	}

	if input.TotalQuestions != len(level.Questions) ||
		input.CorrectAnswers < 0 ||
		input.CorrectAnswers > input.TotalQuestions ||
		input.TimeTakenSeconds < 0 {
		return nil, util.ErrInvalidResult
	}

	coins := input.CorrectAnswers * level.Reward.CoinsPerCorrect
	points := input.CorrectAnswers * level.Reward.PointsPerCorrect

	result := &model.Result{
		StudentID:        student.ID,
		StudentName:      student.Name,
		LevelID:          level.ID,
		Grade:            level.Grade,
		CorrectAnswers:   input.CorrectAnswers,
		TotalQuestions:   input.TotalQuestions,
		Percentage:       quiz.Percentage(input.CorrectAnswers, input.TotalQuestions),
		TimeTakenSeconds: input.TimeTakenSeconds,
		CoinsEarned:      coins,
		PointsEarned:     points,
		CompletedAt:      time.Now(),
	}
	if err := s.ResultRepo.Create(result); err != nil {
		return nil, err
	}

	if err := s.UserRepo.AddRewards(student.ID, coins, points); err != nil {
		return nil, err
	}
	if err := s.UserRepo.MarkLevelCompleted(student.ID, level.ID); err != nil {
		return nil, err
	}

	monitoring.ResultsSubmitted.WithLabelValues(strconv.Itoa(level.Grade)).Inc()
	s.logCompletion(student, result)
	return result, nil
}

func (s *ResultService) ListAll() ([]model.Result, error) {
	return s.ResultRepo.ListAll()
}

func (s *ResultService) ListForStudent(studentID uint) ([]model.Result, error) {
	return s.ResultRepo.ListByStudent(studentID)
}

func (s *ResultService) ListForStudentByGrade(studentID uint, grade int) ([]model.Result, error) {
	return s.ResultRepo.ListByStudentAndGrade(studentID, grade)
}

func (s *ResultService) logCompletion(student *model.User, result *model.Result) {
	if s.LogRepo == nil {
		return
	}
	raw, _ := json.Marshal(map[string]interface{}{
		"levelId":     result.LevelID,
		"grade":       result.Grade,
		"percentage":  result.Percentage,
		"coinsEarned": result.CoinsEarned,
	})
	entry := &model.ActivityLog{
		Type:     model.LogTypeTestCompleted,
		UserID:   student.ID,
		UserRole: student.Role,
		Details:  raw,
	}
	if err := s.LogRepo.Create(entry); err != nil {
		logger.Log.Warn("failed to write activity log", zap.String("type", model.LogTypeTestCompleted), zap.Error(err))
	}
}
