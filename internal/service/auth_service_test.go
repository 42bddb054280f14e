package service

import (
	"finlit_game_backend/internal/model"
	"finlit_game_backend/internal/util"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*AuthService, *testRepos) {
	repos := newTestRepos(newTestDB(t))
	return NewAuthService(repos.user, repos.activityLog, testConfig()), repos
}

func TestRegisterAndLogin(t *testing.T) {
	svc, repos := newAuthService(t)

	reg, err := svc.Register("Мария", "maria01", "secret123", model.Student, 3, "")
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Token)
	assert.NotZero(t, reg.User.ID)

	login, err := svc.Login("maria01", "secret123", model.Student)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)

	claims, err := util.ParseJWT(login.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, claims.UserID)
	assert.Equal(t, model.Student, claims.Role)

	// 注册和登录各写一条审计日志
	logs, err := repos.activityLog.ListRecent(10)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register("Мария", "maria01", "secret123", model.Student, 3, "")
	require.NoError(t, err)

	_, err = svc.Register("Другая Мария", "maria01", "different", model.Student, 4, "")
	assert.ErrorIs(t, err, util.ErrDuplicateIdentifier)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)
	_, err := svc.Register("Мария", "maria01", "secret123", model.Student, 3, "")
	require.NoError(t, err)

	_, err = svc.Login("maria01", "wrong", model.Student)
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, err = svc.Login("no-such-user", "secret123", model.Student)
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestLoginRoleMismatch(t *testing.T) {
	svc, _ := newAuthService(t)
	_, err := svc.Register("Мария", "maria01", "secret123", model.Student, 3, "")
	require.NoError(t, err)

	_, err = svc.Login("maria01", "secret123", model.Teacher)
	assert.ErrorIs(t, err, util.ErrRoleMismatch)
}

func TestAdminLoginsThroughTeacherEntry(t *testing.T) {
	svc, _ := newAuthService(t)
	require.NoError(t, svc.SeedBootstrapAdmin())

	result, err := svc.Login("moris", "moris", model.Teacher)
	require.NoError(t, err)
	assert.Equal(t, model.Admin, result.User.Role)
}

func TestStudentQuickLoginProvisionsOnce(t *testing.T) {
	svc, repos := newAuthService(t)

	first, err := svc.StudentQuickLogin("Иван Петров", 5)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first.User.Username, "STU_"))
	assert.Equal(t, 0, first.User.Coins)

	// 同名同年级再次登录复用同一账号
	second, err := svc.StudentQuickLogin("Иван Петров", 5)
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, second.User.ID)

	// 不同年级的同名学生是另一个账号
	other, err := svc.StudentQuickLogin("Иван Петров", 7)
	require.NoError(t, err)
	assert.NotEqual(t, first.User.ID, other.User.ID)

	count, err := repos.user.CountByRole(model.Student)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestStudentQuickLoginValidation(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.StudentQuickLogin("   ", 5)
	assert.ErrorIs(t, err, util.ErrInvalidName)

	_, err = svc.StudentQuickLogin("Иван", 0)
	assert.ErrorIs(t, err, util.ErrInvalidGrade)

	_, err = svc.StudentQuickLogin("Иван", 12)
	assert.ErrorIs(t, err, util.ErrInvalidGrade)
}

func TestSeedBootstrapAdminIdempotent(t *testing.T) {
	svc, repos := newAuthService(t)

	require.NoError(t, svc.SeedBootstrapAdmin())
	require.NoError(t, svc.SeedBootstrapAdmin())

	count, err := repos.user.CountByRole(model.Admin)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	admin, err := repos.user.FindByUsername("moris")
	require.NoError(t, err)
	assert.Equal(t, model.Admin, admin.Role)
}

func TestSeedBootstrapAdminDisabled(t *testing.T) {
	repos := newTestRepos(newTestDB(t))
	cfg := testConfig()
	cfg.Bootstrap.AdminEnabled = false
	svc := NewAuthService(repos.user, repos.activityLog, cfg)

	require.NoError(t, svc.SeedBootstrapAdmin())

	count, err := repos.user.CountByRole(model.Admin)
	require.NoError(t, err)
	assert.Zero(t, count)
}
