package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// SoundManager plays short cues for simulation events
// Safe to use uninitialized; every cue is then dropped
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool

	// sink receives finished cue streamers, the mixer once initialized
	sink func(beep.Streamer)
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return errors.Wrap(err, "speaker init")
	}

	speaker.Play(sm.mixer)
	sm.sink = func(s beep.Streamer) {
		speaker.Lock()
		sm.mixer.Add(s)
		speaker.Unlock()
	}
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.sink = nil
	sm.initialized = false
}

// PlayEat plays a short high blip
func (sm *SoundManager) PlayEat() {
	sm.play(parameter.EatToneFreq, parameter.EatToneDuration)
}

// PlayGameOver plays a low tone
func (sm *SoundManager) PlayGameOver() {
	sm.play(parameter.GameOverToneFreq, parameter.GameOverToneDuration)
}

// EventTypes implements engine.Handler
func (sm *SoundManager) EventTypes() []engine.EventType {
	return []engine.EventType{engine.EventFoodEaten, engine.EventGameOver}
}

// HandleEvent implements engine.Handler
func (sm *SoundManager) HandleEvent(_ *engine.GameContext, ev engine.GameEvent) {
	switch ev.Type {
	case engine.EventFoodEaten:
		sm.PlayEat()
	case engine.EventGameOver:
		sm.PlayGameOver()
	}
}

func (sm *SoundManager) play(freq float64, d time.Duration) {
	sm.mu.Lock()
	sink := sm.sink
	sm.mu.Unlock()

	if sink == nil {
		return
	}

	s, err := Tone(freq, d)
	if err != nil {
		log.Printf("[audio] tone failed: %v", err)
		return
	}
	sink(s)
}
