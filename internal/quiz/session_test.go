package quiz

import (
	"errors"
	"finlit_game_backend/internal/catalog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSubmitter struct {
	outcomes []Outcome
	err      error
}

func (r *recordingSubmitter) SubmitOutcome(outcome Outcome) error {
	r.outcomes = append(r.outcomes, outcome)
	return r.err
}

func testLevel() *catalog.Level {
	return &catalog.Level{
		ID:    "5-1",
		Title: "Семейный бюджет",
		Grade: 5,
		Questions: []catalog.Question{
			{ID: "q1", Text: "q1", Choices: []string{"a", "b", "c"}, CorrectIndex: 0},
			{ID: "q2", Text: "q2", Choices: []string{"a", "b"}, CorrectIndex: 1},
			{ID: "q3", Text: "q3", Choices: []string{"a", "b", "c"}, CorrectIndex: 2, Explanation: "потому что"},
			{ID: "q4", Text: "q4", Choices: []string{"a", "b"}, CorrectIndex: 0},
		},
		Reward: catalog.Reward{CoinsPerCorrect: 10, PointsPerCorrect: 10},
	}
}

func TestSessionFullRun(t *testing.T) {
	sub := &recordingSubmitter{}
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	session := NewSessionWithClock(sub, func() time.Time { return now })

	require.NoError(t, session.Start(testLevel()))
	assert.Equal(t, StateAnswering, session.State())

	// 4 题答对 3 题
	answers := []int{0, 1, 2, 1}
	for i, choice := range answers {
		reveal, err := session.Answer(choice)
		require.NoError(t, err)
		assert.Equal(t, choice, reveal.Choice)

		now = now.Add(20 * time.Second)
		done, err := session.Next()
		require.NoError(t, err)
		assert.Equal(t, i == len(answers)-1, done)
	}

	assert.Equal(t, StateComplete, session.State())
	require.Len(t, sub.outcomes, 1)

	outcome := sub.outcomes[0]
	assert.Equal(t, "5-1", outcome.LevelID)
	assert.Equal(t, 5, outcome.Grade)
	assert.Equal(t, 3, outcome.CorrectAnswers)
	assert.Equal(t, 4, outcome.TotalQuestions)
	assert.Equal(t, 30, outcome.CoinsEarned)
	assert.Equal(t, 30, outcome.PointsEarned)
	assert.Equal(t, 80, outcome.TimeTakenSeconds)
	assert.Equal(t, outcome, session.Outcome())
}

func TestSessionRepeatedAnswerDoesNotRescore(t *testing.T) {
	session := NewSession(nil)
	require.NoError(t, session.Start(testLevel()))

	first, err := session.Answer(0)
	require.NoError(t, err)
	assert.True(t, first.Correct)
	assert.Equal(t, 1, session.Score())

	// 已翻面后重复作答：不计分，返回第一次的反馈
	again, err := session.Answer(2)
	require.NoError(t, err)
	assert.Equal(t, first, again)
	assert.Equal(t, 1, session.Score())
}

func TestSessionAnswerOutOfRange(t *testing.T) {
	session := NewSession(nil)
	require.NoError(t, session.Start(testLevel()))

	_, err := session.Answer(3)
	assert.ErrorIs(t, err, ErrChoiceOutOfRange)
	_, err = session.Answer(-1)
	assert.ErrorIs(t, err, ErrChoiceOutOfRange)

	// 越界不改变状态，仍可正常作答
	reveal, err := session.Answer(1)
	require.NoError(t, err)
	assert.False(t, reveal.Correct)
}

func TestSessionRejectsEmptyLevel(t *testing.T) {
	session := NewSession(nil)
	err := session.Start(&catalog.Level{ID: "empty", Grade: 1})
	assert.ErrorIs(t, err, ErrEmptyLevel)
	assert.Equal(t, StateBrowsing, session.State())
}

func TestSessionRejectsDoubleStart(t *testing.T) {
	session := NewSession(nil)
	require.NoError(t, session.Start(testLevel()))
	assert.ErrorIs(t, session.Start(testLevel()), ErrNotBrowsing)
}

func TestSessionRestartAfterComplete(t *testing.T) {
	session := NewSession(&recordingSubmitter{})
	require.NoError(t, session.Start(testLevel()))
	for i := 0; i < 4; i++ {
		_, err := session.Answer(0)
		require.NoError(t, err)
		_, err = session.Next()
		require.NoError(t, err)
	}
	require.Equal(t, StateComplete, session.State())

	require.NoError(t, session.Start(testLevel()))
	assert.Equal(t, 0, session.Score())
	assert.Equal(t, 0, session.QuestionIndex())
}

func TestSessionSubmitFailureStillCompletes(t *testing.T) {
	submitErr := errors.New("server unreachable")
	sub := &recordingSubmitter{err: submitErr}
	session := NewSession(sub)
	require.NoError(t, session.Start(testLevel()))

	for i := 0; i < 3; i++ {
		_, err := session.Answer(0)
		require.NoError(t, err)
		done, err := session.Next()
		require.NoError(t, err)
		require.False(t, done)
	}

	_, err := session.Answer(0)
	require.NoError(t, err)
	done, err := session.Next()
	assert.True(t, done)
	assert.ErrorIs(t, err, submitErr)

	// 上报失败不回滚，结果仍然可读
	assert.Equal(t, StateComplete, session.State())
	assert.Equal(t, 4, session.Outcome().TotalQuestions)
}

func TestSessionNextRequiresReveal(t *testing.T) {
	session := NewSession(nil)
	require.NoError(t, session.Start(testLevel()))
	_, err := session.Next()
	assert.ErrorIs(t, err, ErrNotRevealed)
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0, Percentage(0, 0))
	assert.Equal(t, 0, Percentage(3, 0))
	assert.Equal(t, 100, Percentage(4, 4))
	assert.Equal(t, 75, Percentage(3, 4))
	// Math.round 语义：2/3 → 67
	assert.Equal(t, 67, Percentage(2, 3))
	assert.Equal(t, 33, Percentage(1, 3))
}
