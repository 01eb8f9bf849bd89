package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/qnkhuat/blockterm/pkg/event"
	"github.com/qnkhuat/blockterm/pkg/game"
	"github.com/qnkhuat/blockterm/pkg/sound"
	"github.com/qnkhuat/blockterm/pkg/theme"
)

var keybindings = map[ebiten.Key]event.GameAction{
	ebiten.KeyArrowLeft:  event.ActionMoveLeft,
	ebiten.KeyArrowRight: event.ActionMoveRight,
	ebiten.KeyArrowDown:  event.ActionSoftDrop,
	ebiten.KeyArrowUp:    event.ActionRotateCW,
	ebiten.KeySpace:      event.ActionHardDrop,
}

type keySource interface {
	JustPressed(k ebiten.Key) bool
	AnyJustPressed() bool
}

type ebitenKeys struct{}

func (ebitenKeys) JustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

func (ebitenKeys) AnyJustPressed() bool {
	return len(inpututil.AppendJustPressedKeys(nil)) > 0
}

// window draws a game on a canvas of blockSize pixel cells.
type window struct {
	game      *game.Game
	events    <-chan interface{}
	player    *sound.Player
	keys      keySource
	blockSize int

	background color.RGBA
	board      color.RGBA
	piece      color.RGBA
	text       color.RGBA

	gameOver bool
}

func newWindow(g *game.Game, events <-chan interface{}, player *sound.Player, t theme.Theme, blockSize int) *window {
	return &window{
		game:       g,
		events:     events,
		player:     player,
		keys:       ebitenKeys{},
		blockSize:  blockSize,
		background: theme.RGBA(t.Background),
		board:      theme.RGBA(t.Board),
		piece:      theme.RGBA(t.Piece),
		text:       theme.RGBA(t.Text),
	}
}

func (w *window) handleEvents() {
	for {
		select {
		case e := <-w.events:
			if w.player != nil {
				w.player.HandleEvent(e)
			}

			if _, ok := e.(*event.GameOverEvent); ok {
				w.gameOver = true
			}
		default:
			return
		}
	}
}

func (w *window) Update() error {
	// A notice raised this frame is drawn before any key dismisses it.
	shown := w.gameOver
	w.handleEvents()

	if w.keys.JustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if w.gameOver {
		if shown && w.keys.AnyJustPressed() {
			w.gameOver = false
			w.game.Resume()
		}
		return nil
	}

	for k, a := range keybindings {
		if w.keys.JustPressed(k) {
			w.game.ProcessAction(a)
		}
	}

	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	screen.Fill(w.background)

	s := w.game.Snapshot()
	bs := float32(w.blockSize)
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			var c color.RGBA
			switch s.At(x, y) {
			case game.CellBoard:
				c = w.board
			case game.CellPiece:
				c = w.piece
			default:
				continue
			}

			vector.DrawFilledRect(screen, float32(x)*bs, float32(y)*bs, bs, bs, c, false)
			vector.StrokeRect(screen, float32(x)*bs, float32(y)*bs, bs, bs, 1, w.background, false)
		}
	}

	if w.gameOver {
		ebitenutil.DebugPrintAt(screen, "Game Over!", (s.W*w.blockSize)/2-30, (s.H*w.blockSize)/2-8)
	}
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.game.Board.W * w.blockSize, w.game.Board.H * w.blockSize
}
