// Package sound plays short synthesized tones for game events.
package sound

import (
	"bytes"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/qnkhuat/blockterm/pkg/event"
)

const (
	SampleRate   = 44100
	channelCount = 2
	sampleBytes  = 2 * channelCount

	fadeDuration = 3 * time.Millisecond
	toneGap      = 10 * time.Millisecond
)

type tone struct {
	frequency float64
	duration  time.Duration
	volume    float64
}

// Player plays tones for game events. A Player without an audio
// context is silent.
type Player struct {
	ctx    *oto.Context
	volume float64

	sync.Mutex
}

// NewPlayer opens the audio device. It returns a silent player when
// enabled is false.
func NewPlayer(enabled bool) (*Player, error) {
	p := &Player{volume: 0.7}
	if !enabled {
		return p, nil
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: channelCount,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return p, fmt.Errorf("failed to open audio device: %w", err)
	}
	<-ready

	p.ctx = ctx
	return p, nil
}

func (p *Player) SetVolume(v float64) {
	p.Lock()
	defer p.Unlock()

	p.volume = clamp(v)
}

// HandleEvent plays the tones matching a game event, if any.
func (p *Player) HandleEvent(e interface{}) {
	p.Lock()
	ctx, volume := p.ctx, p.volume
	p.Unlock()

	if ctx == nil {
		return
	}

	seq := tonesFor(e)
	if len(seq) == 0 {
		return
	}

	go func() {
		pl := ctx.NewPlayer(bytes.NewReader(render(seq, SampleRate, volume)))
		pl.Play()
		for pl.IsPlaying() {
			time.Sleep(5 * time.Millisecond)
		}
		_ = pl.Close()
	}()
}

func tonesFor(e interface{}) []tone {
	switch e := e.(type) {
	case *event.LandEvent:
		switch {
		case e.Cleared == 0:
			return []tone{{220, 70 * time.Millisecond, 0.3}}
		case e.Cleared >= 4:
			return []tone{{660, 80 * time.Millisecond, 0.3}, {880, 80 * time.Millisecond, 0.3}, {990, 120 * time.Millisecond, 0.3}}
		default:
			seq := make([]tone, e.Cleared)
			for i := range seq {
				seq[i] = tone{440 + 220*float64(i), 80 * time.Millisecond, 0.3}
			}
			return seq
		}
	case *event.GameOverEvent:
		return []tone{{330, 120 * time.Millisecond, 0.28}, {220, 120 * time.Millisecond, 0.28}, {165, 200 * time.Millisecond, 0.28}}
	default:
		return nil
	}
}

func samples(d time.Duration, sampleRate int) int {
	return int(float64(sampleRate) * d.Seconds())
}

// render returns interleaved signed 16-bit little endian stereo PCM.
func render(seq []tone, sampleRate int, volume float64) []byte {
	gap := samples(toneGap, sampleRate)

	total := 0
	for i, t := range seq {
		total += samples(t.duration, sampleRate)
		if i < len(seq)-1 {
			total += gap
		}
	}

	buf := make([]byte, total*sampleBytes)
	offset := 0
	for _, t := range seq {
		n := samples(t.duration, sampleRate)
		renderTone(buf[offset:offset+n*sampleBytes], t, sampleRate, t.volume*clamp(volume))
		offset += (n + gap) * sampleBytes
	}

	return buf
}

func renderTone(buf []byte, t tone, sampleRate int, volume float64) {
	const maxInt16 = 1<<15 - 1

	n := len(buf) / sampleBytes
	fade := samples(fadeDuration, sampleRate)
	for i := 0; i < n; i++ {
		env := 1.0
		if i < fade {
			env = float64(i) / float64(fade)
		} else if i > n-fade {
			env = float64(n-i) / float64(fade)
		}

		v := int16(math.Sin(2*math.Pi*t.frequency*float64(i)/float64(sampleRate)) * volume * env * maxInt16)
		for c := 0; c < channelCount; c++ {
			buf[i*sampleBytes+c*2] = byte(v)
			buf[i*sampleBytes+c*2+1] = byte(v >> 8)
		}
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	} else if v > 1 {
		return 1
	}

	return v
}
