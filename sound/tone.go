package sound

import (
	"encoding/binary"
	"math"
	"time"

	cfg "github.com/automoto/pong/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// square is a square-wave oscillator that stops after duration samples.
type square struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

func newSquare(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &square{freq: freq, duration: rate.N(duration), rate: rate}
}

func (o *square) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		val := -1.0
		if o.phase < 0.5 {
			val = 1.0
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *square) Err() error { return nil }

// decay fades a stream linearly to silence over total samples.
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 0.0
		if d.total > 0 {
			vol = 1 - float64(d.position)/float64(d.total)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// Synthesize renders a tone to 16-bit little-endian stereo PCM at gain.
func Synthesize(t cfg.Tone, sampleRate int, gain float64) []byte {
	rate := beep.SampleRate(sampleRate)
	duration := time.Duration(t.Duration * float64(time.Second))
	total := rate.N(duration)
	if total <= 0 || t.Frequency <= 0 {
		return nil
	}

	var s beep.Streamer = &decay{streamer: newSquare(t.Frequency, duration, rate), total: total}
	if gain <= 0 {
		s = &effects.Volume{Streamer: s, Base: 2, Silent: true}
	} else {
		s = &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
	}
	return encode(s, total)
}

// encode drains s into interleaved int16 frames.
func encode(s beep.Streamer, hint int) []byte {
	out := make([]byte, 0, hint*4)
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				v = math.Max(-1, math.Min(1, v))
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
			}
		}
		if !ok {
			return out
		}
	}
}
