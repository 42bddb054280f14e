package catalog

import (
	"finlit_game_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLevel(id string, grade int) Level {
	return Level{
		ID:    id,
		Title: "t",
		Grade: grade,
		Questions: []Question{
			{ID: id + "-q1", Text: "?", Choices: []string{"a", "b"}, CorrectIndex: 1},
		},
		Reward: Reward{CoinsPerCorrect: 10, PointsPerCorrect: 10},
	}
}

func TestNewValidation(t *testing.T) {
	cases := []struct {
		name   string
		levels []Level
	}{
		{"missing id", []Level{{Grade: 1, Questions: []Question{{Choices: []string{"a", "b"}}}}}},
		{"duplicate id", []Level{validLevel("1-1", 1), validLevel("1-1", 2)}},
		{"invalid grade", []Level{validLevel("0-1", 0)}},
		{"no questions", []Level{{ID: "1-1", Grade: 1}}},
		{"single choice", []Level{{ID: "1-1", Grade: 1, Questions: []Question{
			{ID: "q", Choices: []string{"only"}},
		}}}},
		{"correct index out of range", []Level{{ID: "1-1", Grade: 1, Questions: []Question{
			{ID: "q", Choices: []string{"a", "b"}, CorrectIndex: 2},
		}}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.levels)
			assert.Error(t, err)
		})
	}
}

func TestCatalogLookup(t *testing.T) {
	cat, err := New([]Level{
		validLevel("1-1", 1),
		validLevel("1-2", 1),
		validLevel("5-1", 5),
	})
	require.NoError(t, err)

	assert.Len(t, cat.All(), 3)

	byGrade := cat.ByGrade(1)
	require.Len(t, byGrade, 2)
	// 保持声明顺序
	assert.Equal(t, "1-1", byGrade[0].ID)
	assert.Equal(t, "1-2", byGrade[1].ID)

	assert.Empty(t, cat.ByGrade(9))

	level, err := cat.ByID("5-1")
	require.NoError(t, err)
	assert.Equal(t, 5, level.Grade)

	_, err = cat.ByID("no-such-level")
	assert.ErrorIs(t, err, util.ErrLevelNotFound)
}

func TestDefaultCatalogIsValid(t *testing.T) {
	cat := Default()
	require.NotEmpty(t, cat.All())

	// 每个年级的关卡编号都能按 ID 找回自己
	for _, level := range cat.All() {
		found, err := cat.ByID(level.ID)
		require.NoError(t, err)
		assert.Equal(t, level.Grade, found.Grade)
	}
}
