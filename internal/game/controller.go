package game

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/playperu/wordballoon/internal/cue"
	"github.com/playperu/wordballoon/internal/gacha"
	"github.com/playperu/wordballoon/internal/profile"
	"github.com/playperu/wordballoon/internal/quiz"
	"github.com/playperu/wordballoon/internal/rng"
	"github.com/playperu/wordballoon/internal/vocab"
)

const persistTimeout = 5 * time.Second

// ProfileSaver persists the profile after every mutation.
type ProfileSaver interface {
	Save(ctx context.Context, p profile.Profile) error
}

type Options struct {
	Catalog   *vocab.Catalog
	Profile   profile.Profile
	Saver     ProfileSaver
	Random    rng.Source
	Scheduler Scheduler
	Speaker   cue.Speaker
	Tones     cue.TonePlayer
	Delays    Delays
	// ResetPINHash is a bcrypt hash. When set, ResetProfile needs the PIN.
	ResetPINHash []byte
	Logger       *slog.Logger
	// OnChange receives a snapshot after every transition. It runs while the
	// controller is locked and must not call back into it.
	OnChange func(State)
}

// Confirmation accompanies a reset request.
type Confirmation struct {
	Confirmed bool
	PIN       string
}

type Controller struct {
	catalog  *vocab.Catalog
	saver    ProfileSaver
	random   rng.Source
	sched    Scheduler
	speaker  cue.Speaker
	tones    cue.TonePlayer
	delays   Delays
	pinHash  []byte
	logger   *slog.Logger
	onChange func(State)

	mu         sync.Mutex
	screen     Screen
	profile    profile.Profile
	session    *quiz.Session
	lastResult *QuizResult
	machine    gacha.Machine

	// epoch invalidates every continuation scheduled before a reset.
	epoch   uint64
	seq     uint64
	pending map[uint64]Timer
}

func New(opts Options) *Controller {
	c := &Controller{
		catalog:  opts.Catalog,
		saver:    opts.Saver,
		random:   opts.Random,
		sched:    opts.Scheduler,
		speaker:  opts.Speaker,
		tones:    opts.Tones,
		delays:   opts.Delays,
		pinHash:  opts.ResetPINHash,
		logger:   opts.Logger,
		onChange: opts.OnChange,
		screen:   ScreenMenu,
		profile:  opts.Profile.Clone(),
		pending:  make(map[uint64]Timer),
	}
	if c.random == nil {
		c.random = rng.Default()
	}
	if c.sched == nil {
		c.sched = WallClock{}
	}
	if c.speaker == nil {
		c.speaker = cue.Nop{}
	}
	if c.tones == nil {
		c.tones = cue.Nop{}
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.profile.Unlocked == nil {
		c.profile.Unlocked = []string{}
	}
	return c
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *Controller) snapshot() State {
	st := State{
		Screen:     c.screen,
		Profile:    c.profile.Clone(),
		GachaPhase: c.machine.Phase(),
	}
	if c.session != nil {
		s := *c.session
		st.Session = &s
	}
	if c.lastResult != nil {
		r := *c.lastResult
		st.LastResult = &r
	}
	if r, ok := c.machine.Shown(); ok {
		st.Draw = &r
	}
	return st
}

// StartQuiz begins a fresh session from the menu or the result screen.
func (c *Controller) StartQuiz(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.screen != ScreenMenu && c.screen != ScreenResult {
		return reject(ErrWrongScreen)
	}

	s := quiz.NewSession(c.catalog, c.random)
	c.session = s
	c.lastResult = nil
	c.screen = ScreenPlaying
	c.logger.Info("quiz started", "session", s.ID)
	c.notify()

	id := s.ID
	c.schedule(c.delays.Prompt, func() {
		if c.session == nil || c.session.ID != id || c.session.Index != 0 {
			return
		}
		c.speaker.Speak(c.session.Current().Target.Word)
	})
	return nil
}

// Answer evaluates the balloon the player picked.
func (c *Controller) Answer(_ context.Context, optionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.screen != ScreenPlaying {
		return reject(ErrWrongScreen)
	}
	if c.session == nil {
		return reject(ErrNoSession)
	}
	out, err := c.session.Answer(optionID)
	if err != nil {
		return reject(err)
	}

	if out.Correct {
		c.tones.Play(cue.TonePop)
		c.speaker.Speak("Good!")
	} else {
		// Let the player hear the word they actually picked.
		c.speaker.Speak(out.Picked.Word)
	}
	c.logger.Debug("answer", "session", c.session.ID, "question", c.session.Index,
		"correct", out.Correct, "picked", out.Picked.ID)
	c.notify()

	id := c.session.ID
	c.schedule(c.delays.Advance, func() { c.advance(id) })
	return nil
}

// advance runs with c.mu held.
func (c *Controller) advance(sessionID string) {
	s := c.session
	if s == nil || s.ID != sessionID || !s.Answered {
		return
	}
	if s.Advance() {
		c.notify()
		c.speaker.Speak(s.Current().Target.Word)
		return
	}

	reward := quiz.Reward(s.Score)
	c.profile.Coins += reward
	c.lastResult = &QuizResult{Score: s.Score, Total: len(s.Questions), Reward: reward}
	c.session = nil
	c.screen = ScreenResult
	c.persist()
	if reward > 0 {
		c.tones.Play(cue.ToneCoin)
	}
	if quiz.Fanfare(s.Score) {
		c.tones.Play(cue.ToneFanfare)
	}
	c.logger.Info("quiz finished", "session", s.ID, "score", s.Score, "reward", reward, "coins", c.profile.Coins)
	c.notify()
}

// ReplayPrompt repeats the current target word.
func (c *Controller) ReplayPrompt(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.screen != ScreenPlaying {
		return reject(ErrWrongScreen)
	}
	if c.session == nil || c.session.Finished {
		return reject(ErrNoSession)
	}
	c.speaker.Speak(c.session.Current().Target.Word)
	return nil
}

// Navigate moves between menu, gacha shop, collection and result.
func (c *Controller) Navigate(_ context.Context, to Screen) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !slices.Contains(navigable[c.screen], to) {
		return &Rejection{
			Reason: fmt.Sprintf("cannot go from %s to %s", c.screen, to),
			Err:    ErrWrongScreen,
		}
	}
	c.screen = to
	c.notify()
	return nil
}

// Spin pays for a draw. The result appears after the spin delay, even if the
// player has left the gacha screen by then.
func (c *Controller) Spin(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.screen != ScreenGachaShop {
		return reject(ErrWrongScreen)
	}
	if err := c.machine.Spin(c.profile.Coins); err != nil {
		return reject(err)
	}

	c.profile.Coins -= gacha.Cost
	c.persistCtx(ctx)
	c.tones.Play(cue.ToneGacha)
	c.logger.Info("gacha spin", "coins", c.profile.Coins)
	c.notify()

	c.schedule(c.delays.Spin, c.resolveDraw)
	return nil
}

// resolveDraw runs with c.mu held.
func (c *Controller) resolveDraw() {
	if c.machine.Phase() != gacha.PhaseSpinning {
		return
	}
	res := gacha.Draw(c.catalog, c.random)
	if err := c.machine.Resolve(res); err != nil {
		c.logger.Error("resolving draw", "error", err)
		return
	}
	grew := c.profile.Unlock(res.Item.ID)
	if res.Fanfare() {
		c.tones.Play(cue.ToneFanfare)
	}
	c.persist()
	c.logger.Info("gacha draw", "item", res.Item.ID, "rarity", int(res.Rarity), "new", grew)
	c.notify()
}

// DismissDraw closes the result modal, saying the word once more.
func (c *Controller) DismissDraw(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.screen != ScreenGachaShop {
		return reject(ErrWrongScreen)
	}
	res, err := c.machine.Dismiss()
	if err != nil {
		return reject(err)
	}
	c.speaker.Speak(res.Item.Word)
	c.notify()
	return nil
}

// SpeakItem pronounces an unlocked collectible.
func (c *Controller) SpeakItem(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.screen != ScreenCollection {
		return reject(ErrWrongScreen)
	}
	it, ok := c.catalog.Get(id)
	if !ok {
		return reject(ErrUnknownItem)
	}
	if !c.profile.Has(id) {
		return reject(ErrLocked)
	}
	c.speaker.Speak(it.Word)
	return nil
}

// ResetProfile wipes coins and collection back to defaults. Any draw still
// spinning is cancelled.
func (c *Controller) ResetProfile(ctx context.Context, conf Confirmation) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.screen != ScreenMenu {
		return reject(ErrWrongScreen)
	}
	if !conf.Confirmed {
		return reject(ErrNotConfirmed)
	}
	if len(c.pinHash) > 0 {
		if err := bcrypt.CompareHashAndPassword(c.pinHash, []byte(conf.PIN)); err != nil {
			return reject(ErrBadPIN)
		}
	}

	c.cancelPending()
	c.machine.Reset()
	c.session = nil
	c.lastResult = nil
	c.profile = profile.Default()
	c.screen = ScreenMenu
	c.persistCtx(ctx)
	c.logger.Info("profile reset")
	c.notify()
	return nil
}

// schedule runs fn under c.mu after d unless a reset happens first.
// Callers hold c.mu.
func (c *Controller) schedule(d time.Duration, fn func()) {
	c.seq++
	id, epoch := c.seq, c.epoch
	c.pending[id] = c.sched.AfterFunc(d, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.pending, id)
		if epoch != c.epoch {
			return
		}
		fn()
	})
}

func (c *Controller) cancelPending() {
	c.epoch++
	for id, t := range c.pending {
		t.Stop()
		delete(c.pending, id)
	}
}

func (c *Controller) persist() { c.persistCtx(context.Background()) }

// persistCtx saves the profile. A failed save is logged; the in-memory state
// stays authoritative until the next successful save.
func (c *Controller) persistCtx(ctx context.Context) {
	if c.saver == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()
	if err := c.saver.Save(ctx, c.profile); err != nil {
		c.logger.Error("saving profile", "error", err)
	}
}

func (c *Controller) notify() {
	if c.onChange != nil {
		c.onChange(c.snapshot())
	}
}
