// Package sound plays the synthesised effect tones through ebiten's audio
// context.
package sound

import (
	cfg "github.com/automoto/pong/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// toneGain keeps square waves from clipping when several overlap.
const toneGain = 0.4

// Player holds one pre-rendered clip per sound.
type Player struct {
	ctx *audio.Context
	pcm map[cfg.SoundID][]byte
}

// NewPlayer renders every configured tone. The audio context is shared with
// anything else in the process that already created one.
func NewPlayer(a cfg.AudioConfig, s cfg.SoundConfig) *Player {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(a.SampleRate)
	}

	p := &Player{ctx: ctx, pcm: make(map[cfg.SoundID][]byte, len(s.Tones))}
	for id, tone := range s.Tones {
		p.pcm[id] = Synthesize(tone, ctx.SampleRate(), toneGain)
	}
	return p
}

// Play starts a clip at volume in [0, 1].
func (p *Player) Play(id cfg.SoundID, volume float64) {
	pcm, ok := p.pcm[id]
	if !ok || len(pcm) == 0 || volume <= 0 {
		return
	}
	player := p.ctx.NewPlayerFromBytes(pcm)
	player.SetVolume(volume)
	player.Play()
}
