// Package cue defines the speech and sound-effect collaborators. Playback is
// best-effort: implementations never report failure to the caller.
package cue

// Tone names a short synthesized sound effect.
type Tone string

const (
	TonePop     Tone = "pop"
	ToneCoin    Tone = "coin"
	ToneGacha   Tone = "gacha"
	ToneFanfare Tone = "fanfare"
)

// Speech settings the client applies to every utterance.
const (
	SpeechLang = "en-US"
	SpeechRate = 0.9
)

// Speaker says text aloud, cancelling any utterance still in flight.
type Speaker interface {
	Speak(text string)
}

type TonePlayer interface {
	Play(t Tone)
}

// Nop is silent. It stands in when no output device is attached.
type Nop struct{}

func (Nop) Speak(string) {}
func (Nop) Play(Tone)    {}

// Recorder keeps every cue in order; useful wherever cues must be inspected.
type Recorder struct {
	Spoken []string
	Tones  []Tone
}

func (r *Recorder) Speak(text string) { r.Spoken = append(r.Spoken, text) }
func (r *Recorder) Play(t Tone)       { r.Tones = append(r.Tones, t) }
