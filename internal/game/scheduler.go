package game

import "time"

// Timer is a pending continuation that can still be cancelled.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d on its own goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// WallClock schedules with time.AfterFunc.
type WallClock struct{}

func (WallClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// Delays are the pauses that let the client render before the next cue.
type Delays struct {
	Prompt  time.Duration // before the first word of a session is spoken
	Advance time.Duration // between answering and the next question
	Spin    time.Duration // gacha animation before the result appears
}

func DefaultDelays() Delays {
	return Delays{
		Prompt:  600 * time.Millisecond,
		Advance: 1500 * time.Millisecond,
		Spin:    2000 * time.Millisecond,
	}
}
