package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/blockterm/pkg/event"
	"github.com/qnkhuat/blockterm/pkg/game"
	"github.com/qnkhuat/blockterm/pkg/mino"
	"github.com/qnkhuat/blockterm/pkg/theme"
)

func newTestSnapshot(t testing.TB) game.Snapshot {
	g, err := game.NewGame(game.Options{Seed: 1, Prefill: []mino.Point{{X: 0, Y: 19}, {X: 1, Y: 19}}})
	require.NoError(t, err)
	g.Piece = mino.NewPiece(mino.KindO, mino.Point{X: 4, Y: 0})

	return g.Snapshot()
}

func TestRenderSnapshot(t *testing.T) {
	setTheme(theme.Default)

	renderLock.Lock()
	defer renderLock.Unlock()

	for _, bs := range []int{1, 2, 3} {
		blockSize = bs

		renderSnapshot(newTestSnapshot(t))

		out := renderBuffer.String()
		assert.Equal(t, mino.DefaultHeight*bs+2, strings.Count(out, "\n")+1, "block size %d: line count", bs)
		assert.Equal(t, 6*2*bs*bs, strings.Count(out, string(tcell.RuneBlock)), "block size %d: block count", bs)
		assert.Equal(t, 4*2*bs*bs, strings.Count(out, "[#00ffff]"), "block size %d: piece block count", bs)
	}

	blockSize = 1
}

func TestAutoBlockSize(t *testing.T) {
	tests := []struct {
		w, h int
		want int
	}{
		{80, 24, 1},
		{80, 45, 2},
		{100, 65, 3},
		{40, 80, 1},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, autoBlockSize(tc.w, tc.h, mino.DefaultWidth, mino.DefaultHeight), "%dx%d", tc.w, tc.h)
	}
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want event.GameAction
	}{
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), event.ActionMoveLeft},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), event.ActionMoveRight},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), event.ActionSoftDrop},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), event.ActionRotateCW},
		{tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), event.ActionMoveLeft},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), event.ActionRotateCW},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), event.ActionHardDrop},
		{tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), event.ActionUnknown},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), event.ActionUnknown},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, actionFor(tc.ev), tc.ev.Name())
	}
}

func TestRepeatedQuit(t *testing.T) {
	for _, r := range []rune{'q', 'Q'} {
		assert.Nil(t, handleKeypress(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)))
	}
	quit()

	require.Len(t, done, 1)
	assert.True(t, <-done)
	assert.Empty(t, done)
}

func BenchmarkRenderSnapshot(b *testing.B) {
	setTheme(theme.Default)

	renderLock.Lock()
	defer renderLock.Unlock()

	blockSize = 1
	s := newTestSnapshot(b)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		renderSnapshot(s)
	}
}
