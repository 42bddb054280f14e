package service

import (
	"finlit_game_backend/internal/catalog"
	"finlit_game_backend/internal/model"
	"finlit_game_backend/internal/quiz"
	"finlit_game_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResultService(t *testing.T) (*ResultService, *AuthService, *testRepos) {
	repos := newTestRepos(newTestDB(t))
	auth := NewAuthService(repos.user, repos.activityLog, testConfig())
	svc := NewResultService(repos.result, repos.user, repos.activityLog, catalog.Default())
	return svc, auth, repos
}

func loginStudent(t *testing.T, auth *AuthService, name string, grade int) *model.User {
	t.Helper()
	result, err := auth.StudentQuickLogin(name, grade)
	require.NoError(t, err)
	return result.User
}

func TestSubmitAwardsCoinsAndRecordsResult(t *testing.T) {
	svc, auth, repos := newResultService(t)
	student := loginStudent(t, auth, "Иван Петров", 5)

	// 关卡 5-1 共 4 题，每题 10 金币：答对 3 题拿 30 金币
	result, err := svc.Submit(student, SubmitInput{
		LevelID:          "5-1",
		CorrectAnswers:   3,
		TotalQuestions:   4,
		TimeTakenSeconds: 80,
	})
	require.NoError(t, err)

	assert.Equal(t, 30, result.CoinsEarned)
	assert.Equal(t, 30, result.PointsEarned)
	assert.Equal(t, 75, result.Percentage)
	assert.Equal(t, student.ID, result.StudentID)
	assert.Equal(t, 5, result.Grade)

	updated, err := repos.user.FindByID(student.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, updated.Coins)
	assert.Equal(t, 30, updated.Score)
	assert.Contains(t, updated.CompletedLevelIDs(), "5-1")
}

func TestSubmitAccumulatesAcrossRuns(t *testing.T) {
	svc, auth, repos := newResultService(t)
	student := loginStudent(t, auth, "Иван Петров", 5)

	for i := 0; i < 2; i++ {
		_, err := svc.Submit(student, SubmitInput{
			LevelID:        "5-1",
			CorrectAnswers: 4,
			TotalQuestions: 4,
		})
		require.NoError(t, err)
	}

	updated, err := repos.user.FindByID(student.ID)
	require.NoError(t, err)
	assert.Equal(t, 80, updated.Coins)

	// 重复通关同一关卡：成绩各记一条，已通关列表不重复
	results, err := svc.ListForStudent(student.ID)
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, []string{"5-1"}, updated.CompletedLevelIDs())
}

func TestSubmitUnknownLevel(t *testing.T) {
	svc, auth, _ := newResultService(t)
	student := loginStudent(t, auth, "Иван", 5)

	_, err := svc.Submit(student, SubmitInput{
		LevelID:        "99-9",
		CorrectAnswers: 1,
		TotalQuestions: 1,
	})
	assert.ErrorIs(t, err, util.ErrLevelNotFound)
}

func TestSubmitValidation(t *testing.T) {
	svc, auth, _ := newResultService(t)
	student := loginStudent(t, auth, "Иван", 5)

	cases := []struct {
		name  string
		input SubmitInput
	}{
		{"wrong question count", SubmitInput{LevelID: "5-1", CorrectAnswers: 2, TotalQuestions: 3}},
		{"negative correct", SubmitInput{LevelID: "5-1", CorrectAnswers: -1, TotalQuestions: 4}},
		{"correct above total", SubmitInput{LevelID: "5-1", CorrectAnswers: 5, TotalQuestions: 4}},
		{"negative time", SubmitInput{LevelID: "5-1", CorrectAnswers: 2, TotalQuestions: 4, TimeTakenSeconds: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(student, tc.input)
			assert.ErrorIs(t, err, util.ErrInvalidResult)
		})
	}
}

func TestSubmitViaQuizSession(t *testing.T) {
	svc, auth, repos := newResultService(t)
	student := loginStudent(t, auth, "Иван Петров", 5)

	cat := catalog.Default()
	level, err := cat.ByID("5-1")
	require.NoError(t, err)

	// 会话完成时直接把结果交给服务层
	session := quiz.NewSession(submitterFunc(func(outcome quiz.Outcome) error {
		_, err := svc.Submit(student, SubmitInput{
			LevelID:          outcome.LevelID,
			CorrectAnswers:   outcome.CorrectAnswers,
			TotalQuestions:   outcome.TotalQuestions,
			TimeTakenSeconds: outcome.TimeTakenSeconds,
		})
		return err
	}))

	require.NoError(t, session.Start(level))
	for {
		q := session.Question()
		_, err := session.Answer(q.CorrectIndex)
		require.NoError(t, err)
		done, err := session.Next()
		require.NoError(t, err)
		if done {
			break
		}
	}

	updated, err := repos.user.FindByID(student.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, updated.Coins)
	assert.Contains(t, updated.CompletedLevelIDs(), "5-1")
}

type submitterFunc func(quiz.Outcome) error

func (f submitterFunc) SubmitOutcome(outcome quiz.Outcome) error { return f(outcome) }

func TestListResultsByGrade(t *testing.T) {
	svc, auth, _ := newResultService(t)
	student := loginStudent(t, auth, "Иван", 5)

	_, err := svc.Submit(student, SubmitInput{LevelID: "5-1", CorrectAnswers: 4, TotalQuestions: 4})
	require.NoError(t, err)
	_, err = svc.Submit(student, SubmitInput{LevelID: "1-1", CorrectAnswers: 2, TotalQuestions: 2})
	require.NoError(t, err)

	all, err := svc.ListForStudent(student.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	grade5, err := svc.ListForStudentByGrade(student.ID, 5)
	require.NoError(t, err)
	require.Len(t, grade5, 1)
	assert.Equal(t, "5-1", grade5[0].LevelID)
}
