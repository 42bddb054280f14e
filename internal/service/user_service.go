package service

import (
	"context"
	"encoding/json"
	"finlit_game_backend/internal/model"
	"finlit_game_backend/internal/repository"
	"finlit_game_backend/internal/util"
	"finlit_game_backend/pkg/logger"
	"io"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	UserRepo *repository.UserRepository
	LogRepo  *repository.ActivityLogRepository
	Storage  *StorageService
}

func NewUserService(userRepo *repository.UserRepository, logRepo *repository.ActivityLogRepository, storage *StorageService) *UserService {
	return &UserService{UserRepo: userRepo, LogRepo: logRepo, Storage: storage}
}

func (s *UserService) Profile(userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	return user, nil
}

// AddStudentResult 管理员添加学生的返回值，带一次性初始密码。
type AddStudentResult struct {
	Student         *model.User
	InitialPassword string
}

// AddStudent 管理员手工录入学生。同名同年级视为重复，密码随机生成
// 并只在本次响应中返回一次。
func (s *UserService) AddStudent(name string, grade int, school string) (*AddStudentResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, util.ErrInvalidName
	}
	if grade < 1 || grade > 11 {
		return nil, util.ErrInvalidGrade
	}

	if _, err := s.UserRepo.FindStudentByNameAndGrade(name, grade); err == nil {
		return nil, util.ErrDuplicateIdentifier
	}

	password := strings.ReplaceAll(model.GenerateUUID(), "-", "")[:10]
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	student := &model.User{
		Name:     name,
		Username: "STU_" + strings.ToUpper(strings.ReplaceAll(model.GenerateUUID(), "-", "")[:12]),
		Password: string(hashedPassword),
		Role:     model.Student,
		Grade:    grade,
		School:   school,
		Coins:    0,
	}
	if err := s.UserRepo.Create(student); err != nil {
		return nil, err
	}
	s.logEvent(model.LogTypeRegister, student, map[string]interface{}{"by": "admin"})
	return &AddStudentResult{Student: student, InitialPassword: password}, nil
}

// DeleteUser 管理员物理删除账号。管理员账号不可删除。
func (s *UserService) DeleteUser(id uint) error {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return util.ErrUserNotFound
	}
	if user.Role == model.Admin {
		return util.ErrPermissionDenied
	}
	if err := s.UserRepo.Delete(id); err != nil {
		return err
	}
	s.logEvent(model.LogTypeUserDeleted, user, map[string]interface{}{
		"name": user.Name,
		"role": user.Role,
	})
	return nil
}

var allowedAvatarTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
}

// UploadAvatar 上传头像并更新用户记录，返回可访问的 URL。
func (s *UserService) UploadAvatar(ctx context.Context, user *model.User, originalName string, reader io.Reader, size int64, contentType string) (string, error) {
	if !allowedAvatarTypes[contentType] {
		return "", util.ErrUnsupportedAvatar
	}

	objectName := AvatarObjectName(user.ID, originalName)
	url, err := s.Storage.Upload(ctx, objectName, reader, size, contentType)
	if err != nil {
		return "", err
	}

	user.Avatar = url
	if err := s.UserRepo.Update(user); err != nil {
		return "", err
	}
	return url, nil
}

func (s *UserService) logEvent(logType string, user *model.User, details map[string]interface{}) {
	if s.LogRepo == nil {
		return
	}
	raw, _ := json.Marshal(details)
	entry := &model.ActivityLog{
		Type:     logType,
		UserID:   user.ID,
		UserRole: user.Role,
		Details:  raw,
	}
	if err := s.LogRepo.Create(entry); err != nil {
		logger.Log.Warn("failed to write activity log", zap.String("type", logType), zap.Error(err))
	}
}
