// Package quiz 实现单个学生一次关卡挑战的状态机。
// 服务端只保存最终 Result，答题过程中的状态完全由本会话持有。
package quiz

import (
	"errors"
	"finlit_game_backend/internal/catalog"
	"time"
)

type State string

const (
	StateBrowsing   State = "browsing"
	StateAnswering  State = "answering"
	StateRevealed   State = "revealed"
	StateSubmitting State = "submitting"
	StateComplete   State = "complete"
)

var (
	ErrNotBrowsing      = errors.New("quiz: a level is already in progress")
	ErrEmptyLevel       = errors.New("quiz: level has no questions")
	ErrNotAnswering     = errors.New("quiz: no question is awaiting an answer")
	ErrNotRevealed      = errors.New("quiz: current question has not been answered yet")
	ErrChoiceOutOfRange = errors.New("quiz: choice index out of range")
)

// Outcome 关卡完成后的最终结果，提交给 Result 存储
type Outcome struct {
	LevelID          string `json:"levelId"`
	Grade            int    `json:"grade"`
	CorrectAnswers   int    `json:"correctAnswers"`
	TotalQuestions   int    `json:"totalQuestions"`
	TimeTakenSeconds int    `json:"timeTakenSeconds"`
	CoinsEarned      int    `json:"coinsEarned"`
	PointsEarned     int    `json:"pointsEarned"`
}

// Reveal 答题后展示给学生的反馈
type Reveal struct {
	Choice       int    `json:"choice"`
	Correct      bool   `json:"correct"`
	CorrectIndex int    `json:"correctIndex"`
	Explanation  string `json:"explanation"`
}

// Submitter 完成时的结果持久化回调
type Submitter interface {
	SubmitOutcome(outcome Outcome) error
}

type Session struct {
	submitter Submitter
	now       func() time.Time

	state     State
	level     *catalog.Level
	index     int
	score     int
	reveal    Reveal
	startedAt time.Time
	outcome   Outcome
}

func NewSession(submitter Submitter) *Session {
	return &Session{
		submitter: submitter,
		now:       time.Now,
		state:     StateBrowsing,
	}
}

// NewSessionWithClock 测试用，注入时钟
func NewSessionWithClock(submitter Submitter, now func() time.Time) *Session {
	s := NewSession(submitter)
	s.now = now
	return s
}

func (s *Session) State() State { return s.state }
func (s *Session) Score() int   { return s.score }

// QuestionIndex 当前题目序号，从 0 开始
func (s *Session) QuestionIndex() int { return s.index }

// Question 当前题目，仅在 Answering/Revealed 状态有效
func (s *Session) Question() *catalog.Question {
	if s.level == nil || s.index >= len(s.level.Questions) {
		return nil
	}
	return &s.level.Questions[s.index]
}

// Outcome 仅在 Complete 状态有效
func (s *Session) Outcome() Outcome { return s.outcome }

// Start 选择关卡并开始答题。空关卡在目录加载阶段已被拒绝，这里再兜底一次。
func (s *Session) Start(level *catalog.Level) error {
	if s.state != StateBrowsing && s.state != StateComplete {
		return ErrNotBrowsing
	}
	if level == nil || len(level.Questions) == 0 {
		return ErrEmptyLevel
	}
	s.level = level
	s.index = 0
	s.score = 0
	s.reveal = Reveal{}
	s.outcome = Outcome{}
	s.startedAt = s.now()
	s.state = StateAnswering
	return nil
}

// Answer 提交选项并翻面。已处于 Revealed 状态时重复作答不计分，
// 直接返回第一次的反馈。
func (s *Session) Answer(choice int) (Reveal, error) {
	if s.state == StateRevealed {
		return s.reveal, nil
	}
	if s.state != StateAnswering {
		return Reveal{}, ErrNotAnswering
	}

	q := s.Question()
	if choice < 0 || choice >= len(q.Choices) {
		return Reveal{}, ErrChoiceOutOfRange
	}

	correct := choice == q.CorrectIndex
	if correct {
		s.score++
	}
	s.reveal = Reveal{
		Choice:       choice,
		Correct:      correct,
		CorrectIndex: q.CorrectIndex,
		Explanation:  q.Explanation,
	}
	s.state = StateRevealed
	return s.reveal, nil
}

// Next 进入下一题；最后一题之后结算并提交结果。
// 提交失败不回滚：状态照常进入 Complete，错误交给调用方展示。
func (s *Session) Next() (done bool, err error) {
	if s.state != StateRevealed {
		return false, ErrNotRevealed
	}

	if s.index+1 < len(s.level.Questions) {
		s.index++
		s.reveal = Reveal{}
		s.state = StateAnswering
		return false, nil
	}

	s.state = StateSubmitting
	elapsed := int(s.now().Sub(s.startedAt) / time.Second)
	s.outcome = Outcome{
		LevelID:          s.level.ID,
		Grade:            s.level.Grade,
		CorrectAnswers:   s.score,
		TotalQuestions:   len(s.level.Questions),
		TimeTakenSeconds: elapsed,
		CoinsEarned:      s.score * s.level.Reward.CoinsPerCorrect,
		PointsEarned:     s.score * s.level.Reward.PointsPerCorrect,
	}

	var submitErr error
	if s.submitter != nil {
		submitErr = s.submitter.SubmitOutcome(s.outcome)
	}
	s.state = StateComplete
	return true, submitErr
}

// Percentage 正确率百分比（四舍五入）；没有题目时返回 0 而不是除零
func Percentage(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return (correct*100 + total/2) / total
}
