// Package quiz builds "find the balloon" question sets and scores them.
package quiz

import (
	"errors"

	"github.com/google/uuid"

	"github.com/playperu/wordballoon/internal/rng"
	"github.com/playperu/wordballoon/internal/vocab"
)

const (
	QuestionCount = 5
	OptionCount   = 3

	RewardPerCorrect = 20
	PerfectBonus     = 50

	// FanfareScore is the lowest score celebrated with a fanfare.
	FanfareScore = 3
)

var (
	ErrAnswered      = errors.New("question already answered")
	ErrFinished      = errors.New("session already finished")
	ErrUnknownOption = errors.New("option is not on the current question")
)

type Question struct {
	Target  vocab.Item   `json:"target"`
	Options []vocab.Item `json:"options"`
}

type Session struct {
	ID        string     `json:"id"`
	Questions []Question `json:"questions"`
	Index     int        `json:"index"`
	Score     int        `json:"score"`
	Answered  bool       `json:"answered"`
	Finished  bool       `json:"finished"`
}

// Outcome describes one evaluated answer.
type Outcome struct {
	Correct bool       `json:"correct"`
	Picked  vocab.Item `json:"picked"`
	Target  vocab.Item `json:"target"`
}

// NewSession draws QuestionCount questions. Targets may repeat across
// questions; within a question the options are distinct and shuffled.
func NewSession(c *vocab.Catalog, src rng.Source) *Session {
	items := c.All()
	s := &Session{
		ID:        uuid.NewString(),
		Questions: make([]Question, 0, QuestionCount),
	}
	for range QuestionCount {
		target := items[rng.IntN(src, len(items))]
		distractors := rng.Sample(src, items, OptionCount-1, func(it vocab.Item) bool {
			return it.ID == target.ID
		})
		options := append([]vocab.Item{target}, distractors...)
		rng.Shuffle(src, options)
		s.Questions = append(s.Questions, Question{Target: target, Options: options})
	}
	return s
}

func (s *Session) Current() Question { return s.Questions[s.Index] }

// Remaining reports how many questions follow the current one.
func (s *Session) Remaining() int { return len(s.Questions) - 1 - s.Index }

// Answer evaluates optionID against the current question. Only the first
// answer to a question counts.
func (s *Session) Answer(optionID string) (Outcome, error) {
	if s.Finished {
		return Outcome{}, ErrFinished
	}
	if s.Answered {
		return Outcome{}, ErrAnswered
	}
	q := s.Current()
	var picked vocab.Item
	found := false
	for _, o := range q.Options {
		if o.ID == optionID {
			picked, found = o, true
			break
		}
	}
	if !found {
		return Outcome{}, ErrUnknownOption
	}

	s.Answered = true
	out := Outcome{Correct: picked.ID == q.Target.ID, Picked: picked, Target: q.Target}
	if out.Correct {
		s.Score++
	}
	return out, nil
}

// Advance moves to the next question. It returns false, and marks the
// session finished, when the last question has been played.
func (s *Session) Advance() bool {
	if s.Finished {
		return false
	}
	if s.Remaining() == 0 {
		s.Finished = true
		return false
	}
	s.Index++
	s.Answered = false
	return true
}

// Reward is the coin payout for a finished session.
func Reward(score int) int {
	r := score * RewardPerCorrect
	if score == QuestionCount {
		r += PerfectBonus
	}
	return r
}

func Fanfare(score int) bool { return score >= FanfareScore }
