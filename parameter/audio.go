package parameter

import "time"

// Audio
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	EatToneFreq     = 880
	EatToneDuration = 60 * time.Millisecond

	GameOverToneFreq     = 110
	GameOverToneDuration = 400 * time.Millisecond

	// ToneVolume is the linear gain applied to generated tones
	ToneVolume = 0.25
)
