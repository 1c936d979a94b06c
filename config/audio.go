package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundPaddle
	SoundWall
	SoundScore
	SoundWin
	SoundConsent
)

// Tone describes a synthesised blip
type Tone struct {
	Frequency float64 // Hz
	Duration  float64 // seconds
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	Muted         bool
}

// SoundConfig maps sound IDs to the tones that play them
type SoundConfig struct {
	Tones             map[SoundID]Tone
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.5,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundPaddle:  {Frequency: 440, Duration: 0.05},
			SoundWall:    {Frequency: 220, Duration: 0.05},
			SoundScore:   {Frequency: 660, Duration: 0.25},
			SoundWin:     {Frequency: 880, Duration: 0.5},
			SoundConsent: {Frequency: 550, Duration: 0.1},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundWall: 0.6,
		},
	}
}
