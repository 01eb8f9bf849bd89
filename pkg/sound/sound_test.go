package sound

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/blockterm/pkg/event"
)

func TestTonesFor(t *testing.T) {
	assert.Len(t, tonesFor(&event.LandEvent{}), 1)
	assert.Len(t, tonesFor(&event.LandEvent{Cleared: 2}), 2)
	assert.Len(t, tonesFor(&event.LandEvent{Cleared: 4}), 3)
	assert.NotEmpty(t, tonesFor(&event.GameOverEvent{}))
	assert.Empty(t, tonesFor("unrelated"))
}

func TestRender(t *testing.T) {
	seq := []tone{{440, 100 * time.Millisecond, 0.5}, {880, 50 * time.Millisecond, 0.5}}

	buf := render(seq, 1000, 1)
	require.Len(t, buf, (100+10+50)*sampleBytes)

	// Tones fade in from silence.
	assert.Equal(t, []byte{0, 0, 0, 0}, buf[:sampleBytes])

	// The gap between tones is silent.
	for _, b := range buf[100*sampleBytes : 110*sampleBytes] {
		assert.Zero(t, b)
	}

	assert.Empty(t, render(nil, 1000, 1))
}

func TestSilentPlayer(t *testing.T) {
	p, err := NewPlayer(false)
	require.NoError(t, err)

	p.SetVolume(3)
	assert.Equal(t, 1.0, p.volume)

	p.HandleEvent(&event.GameOverEvent{})
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, clamp(-1))
	assert.Equal(t, 0.5, clamp(0.5))
	assert.Equal(t, 1.0, clamp(2))
}
