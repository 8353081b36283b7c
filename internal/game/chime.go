package game

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/spirograph/internal/config"
)

const sampleRate = beep.SampleRate(44100)

// bell is a sine tone with a linear decay, silent after its duration.
type bell struct {
	freq   float64
	volume float64
	total  int
	pos    int
	rate   beep.SampleRate
}

func newBell(freq, volume float64, d time.Duration, rate beep.SampleRate) *bell {
	return &bell{freq: freq, volume: volume, total: rate.N(d), rate: rate}
}

func (b *bell) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.pos >= b.total {
			return i, i > 0
		}
		t := float64(b.pos) / float64(b.rate)
		env := 1 - float64(b.pos)/float64(b.total)
		v := b.volume * env * math.Sin(2*math.Pi*b.freq*t)
		samples[i][0], samples[i][1] = v, v
		b.pos++
	}
	return len(samples), true
}

func (b *bell) Err() error { return nil }

// chime plays a short bell through the speaker every time the ensemble
// starts over.
type chime struct {
	cfg config.Chime
}

func newChime(cfg config.Chime) (*chime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return nil, err
	}
	return &chime{cfg: cfg}, nil
}

func (c *chime) play() {
	speaker.Play(newBell(c.cfg.Frequency, c.cfg.Volume, c.cfg.Duration(), sampleRate))
}
