package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/pkg/errors"

	"github.com/lixenwraith/snake/parameter"
)

// Tone returns a finite sine cue of duration d at the package sample rate
func Tone(freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, errors.Wrapf(err, "sine tone %.0fHz", freq)
	}

	// Gain scales by (1 + Gain)
	return &effects.Gain{
		Streamer: beep.Take(sampleRate.N(d), sine),
		Gain:     parameter.ToneVolume - 1,
	}, nil
}
