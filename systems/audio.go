package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi/ecs"
)

// SFXPlayer plays a sound effect at a volume in [0, 1].
type SFXPlayer interface {
	Play(id cfg.SoundID, volume float64)
}

var sfxPlayer SFXPlayer

// SetSFXPlayer sets the backend UpdateAudio drains the queue into. A nil
// player discards queued sounds.
func SetSFXPlayer(p SFXPlayer) {
	sfxPlayer = p
}

// UpdateAudio processes pending SFX
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}

	audioData := components.Audio.Get(entry)
	if sfxPlayer != nil && !audioData.Muted {
		for _, soundID := range audioData.PendingSFX {
			vol := audioData.SFXVolume
			if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
				vol *= mult
			}
			sfxPlayer.Play(soundID, vol)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, soundID cfg.SoundID) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if audioData.Muted {
		return
	}
	audioData.PendingSFX = append(audioData.PendingSFX, soundID)
}
