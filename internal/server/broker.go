package server

import (
	"encoding/json"
	"sync"

	"github.com/playperu/wordballoon/internal/cue"
	"github.com/playperu/wordballoon/internal/game"
)

const (
	eventState = "state"
	eventSpeak = "speak"
	eventTone  = "tone"
)

// SpeakEvent asks the client to pronounce Text with speech synthesis.
type SpeakEvent struct {
	Text string  `json:"text"`
	Lang string  `json:"lang"`
	Rate float64 `json:"rate"`
}

// ToneEvent asks the client to play a synthesized sound effect.
type ToneEvent struct {
	Tone cue.Tone `json:"tone"`
}

type frame struct {
	event string
	data  []byte
}

// Broker is an in-process pub/sub for SSE events. It doubles as the
// controller's speaker and tone player, forwarding cues to every open stream.
type Broker struct {
	mu   sync.RWMutex
	subs map[chan frame]struct{}
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[chan frame]struct{})}
}

// subscribe returns a channel that receives encoded events.
func (b *Broker) subscribe() chan frame {
	ch := make(chan frame, 16)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

func (b *Broker) unsubscribe(ch chan frame) {
	b.mu.Lock()
	delete(b.subs, ch)
	b.mu.Unlock()
}

// Subscribers reports how many streams are open.
func (b *Broker) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

func (b *Broker) publish(event string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	f := frame{event: event, data: data}
	b.mu.RLock()
	for ch := range b.subs {
		select {
		case ch <- f:
		default:
			// Drop if subscriber is slow.
		}
	}
	b.mu.RUnlock()
}

// PublishState is meant to be the controller's OnChange listener.
func (b *Broker) PublishState(st game.State) { b.publish(eventState, st) }

func (b *Broker) Speak(text string) {
	b.publish(eventSpeak, SpeakEvent{Text: text, Lang: cue.SpeechLang, Rate: cue.SpeechRate})
}

func (b *Broker) Play(t cue.Tone) { b.publish(eventTone, ToneEvent{Tone: t}) }
