package gacha

import "errors"

// Phase is the draw sub-state shown on the gacha screen.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseSpinning Phase = "spinning"
	PhaseShown    Phase = "shown"
)

var (
	ErrBusy              = errors.New("a draw is already in progress")
	ErrInsufficientCoins = errors.New("not enough coins")
	ErrNotSpinning       = errors.New("no draw is spinning")
	ErrNothingShown      = errors.New("no draw result is shown")
)

// Machine tracks idle -> spinning -> shown -> idle. The zero value is idle.
type Machine struct {
	phase Phase
	shown *Result
}

func (m *Machine) Phase() Phase {
	if m.phase == "" {
		return PhaseIdle
	}
	return m.phase
}

// Shown returns the displayed result, if any.
func (m *Machine) Shown() (Result, bool) {
	if m.shown == nil {
		return Result{}, false
	}
	return *m.shown, true
}

// Spin starts a draw if the machine is idle and coins cover the Cost. The
// caller deducts the coins.
func (m *Machine) Spin(coins int) error {
	if m.Phase() != PhaseIdle {
		return ErrBusy
	}
	if coins < Cost {
		return ErrInsufficientCoins
	}
	m.phase = PhaseSpinning
	return nil
}

func (m *Machine) Resolve(r Result) error {
	if m.Phase() != PhaseSpinning {
		return ErrNotSpinning
	}
	m.phase = PhaseShown
	m.shown = &r
	return nil
}

func (m *Machine) Dismiss() (Result, error) {
	if m.Phase() != PhaseShown || m.shown == nil {
		return Result{}, ErrNothingShown
	}
	r := *m.shown
	m.phase = PhaseIdle
	m.shown = nil
	return r, nil
}

// Reset drops any spinning or shown draw.
func (m *Machine) Reset() {
	m.phase = PhaseIdle
	m.shown = nil
}
