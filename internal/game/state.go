// Package game is the single owner of the game state. It turns player intents
// into state transitions, schedules the timed continuations, persists the
// profile and reports every change to a listener.
package game

import (
	"errors"

	"github.com/playperu/wordballoon/internal/gacha"
	"github.com/playperu/wordballoon/internal/profile"
	"github.com/playperu/wordballoon/internal/quiz"
)

type Screen string

const (
	ScreenMenu       Screen = "menu"
	ScreenPlaying    Screen = "playing"
	ScreenResult     Screen = "result"
	ScreenGachaShop  Screen = "gachaShop"
	ScreenCollection Screen = "collection"
)

func (s Screen) Valid() bool {
	switch s {
	case ScreenMenu, ScreenPlaying, ScreenResult, ScreenGachaShop, ScreenCollection:
		return true
	}
	return false
}

// navigable lists the screen changes a player may request directly. Playing
// is entered through StartQuiz, result only by finishing a session.
var navigable = map[Screen][]Screen{
	ScreenMenu:       {ScreenGachaShop, ScreenCollection},
	ScreenGachaShop:  {ScreenMenu},
	ScreenCollection: {ScreenMenu},
	ScreenResult:     {ScreenMenu},
}

// QuizResult is what the result screen shows for the session just finished.
type QuizResult struct {
	Score  int `json:"score"`
	Total  int `json:"total"`
	Reward int `json:"reward"`
}

// State is a read-only snapshot handed to the presentation layer.
type State struct {
	Screen     Screen          `json:"screen"`
	Profile    profile.Profile `json:"profile"`
	Session    *quiz.Session   `json:"session"`
	LastResult *QuizResult     `json:"lastResult"`
	Draw       *gacha.Result   `json:"gachaDraw"`
	GachaPhase gacha.Phase     `json:"gachaPhase"`
}

// Rejection reports an intent refused without any state change.
type Rejection struct {
	Reason string
	Err    error
}

func (r *Rejection) Error() string { return "rejected: " + r.Reason }
func (r *Rejection) Unwrap() error { return r.Err }

var (
	ErrWrongScreen  = errors.New("not available on this screen")
	ErrNoSession    = errors.New("no quiz in progress")
	ErrNotConfirmed = errors.New("reset was not confirmed")
	ErrBadPIN       = errors.New("reset PIN does not match")
	ErrUnknownItem  = errors.New("unknown item")
	ErrLocked       = errors.New("item is not unlocked")
)

func reject(err error) error {
	return &Rejection{Reason: err.Error(), Err: err}
}

// IsRejection reports whether err is a refused intent rather than a failure.
func IsRejection(err error) bool {
	var r *Rejection
	return errors.As(err, &r)
}
