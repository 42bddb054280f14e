package service

import (
	"finlit_game_backend/internal/model"
	"finlit_game_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGroupFixture(t *testing.T) (*GroupService, *AuthService) {
	repos := newTestRepos(newTestDB(t))
	auth := NewAuthService(repos.user, repos.activityLog, testConfig())
	return NewGroupService(repos.group, repos.user), auth
}

func registerTeacher(t *testing.T, auth *AuthService, username string) *model.User {
	t.Helper()
	result, err := auth.Register("Учитель", username, "password123", model.Teacher, 0, "")
	require.NoError(t, err)
	return result.User
}

func TestCreateAndListGroups(t *testing.T) {
	svc, auth := newGroupFixture(t)
	teacher := registerTeacher(t, auth, "teacher1")

	group, err := svc.CreateGroup(teacher, "  5А  ")
	require.NoError(t, err)
	assert.Equal(t, "5А", group.Name)
	assert.Equal(t, teacher.ID, group.TeacherID)

	_, err = svc.CreateGroup(teacher, "   ")
	assert.ErrorIs(t, err, util.ErrInvalidGroupName)

	groups, err := svc.ListGroups(teacher.ID)
	require.NoError(t, err)
	assert.Len(t, groups, 1)

	// 其他教师看不到别人的班组
	other := registerTeacher(t, auth, "teacher2")
	groups, err = svc.ListGroups(other.ID)
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestAddStudentToGroup(t *testing.T) {
	svc, auth := newGroupFixture(t)
	teacher := registerTeacher(t, auth, "teacher1")
	student := loginStudent(t, auth, "Иван", 5)

	group, err := svc.CreateGroup(teacher, "5А")
	require.NoError(t, err)

	updated, err := svc.AddStudentToGroup(teacher, group.ID, student.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{student.ID}, updated.StudentIDs())

	// 重复加入静默成功，列表不重复
	updated, err = svc.AddStudentToGroup(teacher, group.ID, student.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{student.ID}, updated.StudentIDs())
}

func TestAddStudentToGroupPermissions(t *testing.T) {
	svc, auth := newGroupFixture(t)
	owner := registerTeacher(t, auth, "owner")
	outsider := registerTeacher(t, auth, "outsider")
	student := loginStudent(t, auth, "Иван", 5)

	group, err := svc.CreateGroup(owner, "5А")
	require.NoError(t, err)

	_, err = svc.AddStudentToGroup(outsider, group.ID, student.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	// 管理员可以操作任何班组
	require.NoError(t, auth.SeedBootstrapAdmin())
	admin, err := auth.Login("moris", "moris", model.Admin)
	require.NoError(t, err)
	_, err = svc.AddStudentToGroup(admin.User, group.ID, student.ID)
	assert.NoError(t, err)

	// 只能加学生账号
	_, err = svc.AddStudentToGroup(owner, group.ID, outsider.ID)
	assert.ErrorIs(t, err, util.ErrRoleMismatch)

	_, err = svc.AddStudentToGroup(owner, 9999, student.ID)
	assert.ErrorIs(t, err, util.ErrGroupNotFound)
}
