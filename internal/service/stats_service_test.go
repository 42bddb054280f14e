package service

import (
	"context"
	"finlit_game_backend/internal/catalog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Redis 为 nil 时统计直接查库
func newStatsFixture(t *testing.T) (*StatsService, *ResultService, *AuthService) {
	repos := newTestRepos(newTestDB(t))
	auth := NewAuthService(repos.user, repos.activityLog, testConfig())
	results := NewResultService(repos.result, repos.user, repos.activityLog, catalog.Default())
	stats := NewStatsService(repos.user, repos.result, repos.activityLog, nil)
	return stats, results, auth
}

func TestStatsAggregation(t *testing.T) {
	stats, results, auth := newStatsFixture(t)
	require.NoError(t, auth.SeedBootstrapAdmin())

	ivan := loginStudent(t, auth, "Иван", 5)
	maria := loginStudent(t, auth, "Мария", 3)
	loginStudent(t, auth, "Пассивный", 2)

	_, err := results.Submit(ivan, SubmitInput{LevelID: "5-1", CorrectAnswers: 4, TotalQuestions: 4})
	require.NoError(t, err)
	_, err = results.Submit(maria, SubmitInput{LevelID: "3-1", CorrectAnswers: 1, TotalQuestions: 2})
	require.NoError(t, err)

	got, err := stats.Stats(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 3, got.TotalStudents)
	assert.EqualValues(t, 0, got.TotalTeachers)
	assert.EqualValues(t, 2, got.TotalResults)
	// 只有交过成绩的学生算活跃
	assert.EqualValues(t, 2, got.ActiveStudents)
	// (100 + 50) / 2
	assert.InDelta(t, 75.0, got.AveragePercentage, 0.01)
}

func TestLeaderboardOrdering(t *testing.T) {
	stats, results, auth := newStatsFixture(t)

	ivan := loginStudent(t, auth, "Иван", 5)
	maria := loginStudent(t, auth, "Мария", 1)

	_, err := results.Submit(ivan, SubmitInput{LevelID: "5-1", CorrectAnswers: 2, TotalQuestions: 4})
	require.NoError(t, err)
	_, err = results.Submit(maria, SubmitInput{LevelID: "1-1", CorrectAnswers: 2, TotalQuestions: 2})
	require.NoError(t, err)
	_, err = results.Submit(maria, SubmitInput{LevelID: "1-2", CorrectAnswers: 1, TotalQuestions: 1})
	require.NoError(t, err)

	entries, err := stats.Leaderboard(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Мария 30 金币在前，Иван 20 金币在后
	assert.Equal(t, maria.ID, entries[0].StudentID)
	assert.Equal(t, 30, entries[0].Coins)
	assert.Equal(t, ivan.ID, entries[1].StudentID)
	assert.Equal(t, 20, entries[1].Coins)
}

func TestRosterIncludesCounts(t *testing.T) {
	stats, results, auth := newStatsFixture(t)

	ivan := loginStudent(t, auth, "Иван", 5)
	loginStudent(t, auth, "Мария", 3)

	_, err := results.Submit(ivan, SubmitInput{LevelID: "5-1", CorrectAnswers: 3, TotalQuestions: 4})
	require.NoError(t, err)
	_, err = results.Submit(ivan, SubmitInput{LevelID: "5-1", CorrectAnswers: 4, TotalQuestions: 4})
	require.NoError(t, err)

	roster, err := stats.Roster()
	require.NoError(t, err)
	require.Len(t, roster, 2)

	byName := map[string]RosterEntry{}
	for _, entry := range roster {
		byName[entry.Student["name"].(string)] = entry
	}

	assert.EqualValues(t, 2, byName["Иван"].TestsTaken)
	assert.EqualValues(t, 7, byName["Иван"].TotalCorrect)
	assert.EqualValues(t, 0, byName["Мария"].TestsTaken)

	// 名册不暴露密码哈希
	_, hasPassword := byName["Иван"].Student["password"]
	assert.False(t, hasPassword)
}
