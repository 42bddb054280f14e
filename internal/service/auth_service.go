package service

import (
	"encoding/json"
	"finlit_game_backend/internal/config"
	"finlit_game_backend/internal/model"
	"finlit_game_backend/internal/repository"
	"finlit_game_backend/internal/util"
	"finlit_game_backend/pkg/logger"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	LogRepo  *repository.ActivityLogRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, logRepo *repository.ActivityLogRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		LogRepo:  logRepo,
		Cfg:      cfg,
	}
}

// AuthResult 登录/注册成功后的返回：脱敏用户 + 会话令牌
type AuthResult struct {
	User  *model.User
	Token string
}

// Register 创建新账号。登录标识重复返回 ErrDuplicateIdentifier。
func (s *AuthService) Register(name, username, password string, role model.UserRole, grade int, school string) (*AuthResult, error) {
	_, err := s.UserRepo.FindByUsername(username)
	if err == nil {
		return nil, util.ErrDuplicateIdentifier
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:      name,
		Username:  username,
		Password:  string(hashedPassword),
		Role:      role,
		Grade:     grade,
		School:    school,
		LastLogin: time.Now(),
		LastSeen:  time.Now(),
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}

	s.logEvent(model.LogTypeRegister, user, map[string]interface{}{"username": username})
	return s.issue(user)
}

// Login 按登录标识+密码认证。expectedRole 非空时校验账号角色，
// 例外：管理员账号可以通过教师入口登录。
func (s *AuthService) Login(username, password string, expectedRole model.UserRole) (*AuthResult, error) {
	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}

	if expectedRole != "" && user.Role != expectedRole {
		if !(expectedRole == model.Teacher && user.Role == model.Admin) {
			return nil, util.ErrRoleMismatch
		}
	}

	if err := s.UserRepo.UpdateLastLogin(user.ID); err != nil {
		logger.Log.Warn("failed to update last login", zap.Uint("userId", user.ID), zap.Error(err))
	}

	s.logEvent(model.LogTypeLogin, user, map[string]interface{}{"username": username})
	return s.issue(user)
}

// StudentQuickLogin 学生免密登录：按（姓名，年级）查找，不存在则自动建档。
// 课堂低门槛设计，不构成安全边界。
func (s *AuthService) StudentQuickLogin(name string, grade int) (*AuthResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, util.ErrInvalidName
	}
	if grade < 1 || grade > 11 {
		return nil, util.ErrInvalidGrade
	}

	user, err := s.UserRepo.FindStudentByNameAndGrade(name, grade)
	if err == gorm.ErrRecordNotFound {
		user, err = s.provisionStudent(name, grade)
		if err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	} else {
		if err := s.UserRepo.UpdateLastLogin(user.ID); err != nil {
			logger.Log.Warn("failed to update last login", zap.Uint("userId", user.ID), zap.Error(err))
		}
	}

	s.logEvent(model.LogTypeLogin, user, map[string]interface{}{"name": name, "grade": grade})
	return s.issue(user)
}

// provisionStudent 生成内部登录标识和随机密码，金币从 0 开始
func (s *AuthService) provisionStudent(name string, grade int) (*model.User, error) {
	tag := "STU_" + strings.ToUpper(strings.ReplaceAll(model.GenerateUUID(), "-", "")[:12])
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(model.GenerateUUID()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:      name,
		Username:  tag,
		Password:  string(hashedPassword),
		Role:      model.Student,
		Grade:     grade,
		Coins:     0,
		LastLogin: time.Now(),
		LastSeen:  time.Now(),
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}

	logger.Log.Info("auto-provisioned student account",
		zap.String("tag", tag), zap.String("name", name), zap.Int("grade", grade))
	return user, nil
}

// SeedBootstrapAdmin 首次部署时幂等创建管理员账号。启动阶段调用，
// 与登录流程无关；开关关闭或账号已存在时不做任何事。
func (s *AuthService) SeedBootstrapAdmin() error {
	if !s.Cfg.Bootstrap.AdminEnabled {
		return nil
	}

	username := s.Cfg.Bootstrap.AdminUsername
	if username == "" {
		username = "moris"
	}

	_, err := s.UserRepo.FindByUsername(username)
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	password := s.Cfg.Bootstrap.AdminPassword
	if password == "" {
		password = username
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		Name:     "Администратор",
		Username: username,
		Password: string(hashedPassword),
		Role:     model.Admin,
	}
	if err := s.UserRepo.Create(admin); err != nil {
		return err
	}

	logger.Log.Info("bootstrap admin account created", zap.String("username", username))
	return nil
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, err := s.UserRepo.FindByID(claims.UserID)
	if err != nil {
		return nil
	}
	return user
}

func (s *AuthService) issue(user *model.User) (*AuthResult, error) {
	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

// logEvent 审计日志尽力写入，失败不影响主流程
func (s *AuthService) logEvent(logType string, user *model.User, details map[string]interface{}) {
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
