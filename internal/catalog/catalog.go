package catalog

import (
	"finlit_game_backend/internal/util"
	"fmt"
)

// Reward 每答对一题的奖励
// swagger:model Reward
type Reward struct {
	CoinsPerCorrect  int `json:"coinsPerCorrect"`
	PointsPerCorrect int `json:"pointsPerCorrect"`
}

// swagger:model Question
type Question struct {
	ID           string   `json:"id"`
	Text         string   `json:"text"`
	Choices      []string `json:"choices"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

// Level 关卡定义，运行期只读
// swagger:model Level
type Level struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Grade       int        `json:"grade"`
	Questions   []Question `json:"questions"`
	Reward      Reward     `json:"reward"`
}

// Catalog 进程内关卡目录。内容随二进制发布，运行期不可修改。
type Catalog struct {
	levels []Level
	byID   map[string]*Level
}

// New 构建目录并做一次性校验：空关卡和越界的 correctIndex 在加载阶段即拒绝，
// 不会流入答题流程。
func New(levels []Level) (*Catalog, error) {
	c := &Catalog{
		levels: levels,
		byID:   make(map[string]*Level, len(levels)),
	}
	for i := range levels {
		lvl := &levels[i]
		if lvl.ID == "" {
			return nil, fmt.Errorf("catalog: level at index %d has no id", i)
		}
		if _, dup := c.byID[lvl.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate level id %q", lvl.ID)
		}
		if lvl.Grade < 1 {
			return nil, fmt.Errorf("catalog: level %q has invalid grade %d", lvl.ID, lvl.Grade)
		}
		if len(lvl.Questions) == 0 {
			return nil, fmt.Errorf("catalog: level %q has no questions", lvl.ID)
		}
		for _, q := range lvl.Questions {
			if len(q.Choices) < 2 {
				return nil, fmt.Errorf("catalog: question %q in level %q needs at least two choices", q.ID, lvl.ID)
			}
			if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Choices) {
				return nil, fmt.Errorf("catalog: question %q in level %q has correctIndex %d out of range", q.ID, lvl.ID, q.CorrectIndex)
			}
		}
		c.byID[lvl.ID] = lvl
	}
	return c, nil
}

// Default 内置关卡数据集
func Default() *Catalog {
	c, err := New(builtinLevels)
	if err != nil {
		// 内置数据在编译期固定，加载失败属于程序缺陷
		panic(err)
	}
	return c
}

// All 返回全部关卡，保持声明顺序
func (c *Catalog) All() []Level {
	out := make([]Level, len(c.levels))
	copy(out, c.levels)
	return out
}

// ByGrade 返回指定年级的关卡，保持声明顺序
func (c *Catalog) ByGrade(grade int) []Level {
	out := []Level{}
	for _, lvl := range c.levels {
		if lvl.Grade == grade {
			out = append(out, lvl)
		}
	}
	return out
}

func (c *Catalog) ByID(id string) (*Level, error) {
	lvl, ok := c.byID[id]
	if !ok {
		return nil, util.ErrLevelNotFound
	}
	return lvl, nil
}
