package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/qnkhuat/blockterm/pkg/event"
	"github.com/qnkhuat/blockterm/pkg/mino"
)

const DefaultTickInterval = 500 * time.Millisecond

const (
	LogStandard = iota
	LogDebug
	LogVerbose
)

const (
	CommandQueueSize = 10
	LogQueueSize     = 10
)

type Options struct {
	Width, Height int
	Seed          int64
	TickInterval  time.Duration
	Prefill       []mino.Point
	LogLevel      int

	Logger chan string
	Draw   chan event.DrawObject
	Event  chan interface{}
}

// StepResult describes what a single update did.
type StepResult struct {
	Landed   bool
	Cleared  int
	GameOver bool
}

type Game struct {
	Board  *mino.Board
	Piece  *mino.Piece
	Source *mino.Source

	TickInterval time.Duration

	// Paused is set while a game over notice awaits acknowledgement.
	Paused bool
	Resets int

	LogLevel int

	logger chan string
	draw   chan event.DrawObject
	events chan interface{}

	*sync.Mutex
}

func NewGame(opts Options) (*Game, error) {
	if opts.Width <= 0 {
		opts.Width = mino.DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = mino.DefaultHeight
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}

	g := &Game{
		Board:        mino.NewBoard(opts.Width, opts.Height),
		Source:       mino.NewSource(opts.Seed),
		TickInterval: opts.TickInterval,
		LogLevel:     opts.LogLevel,
		logger:       opts.Logger,
		draw:         opts.Draw,
		events:       opts.Event,
		Mutex:        new(sync.Mutex)}

	err := g.Board.Fill(opts.Prefill)
	if err != nil {
		return nil, fmt.Errorf("failed to prefill board: %w", err)
	}

	g.spawnL()

	g.Logf(LogDebug, "Started game with seed %d on a %dx%d board", opts.Seed, opts.Width, opts.Height)

	return g, nil
}

func (g *Game) Log(level int, a ...interface{}) {
	if g.logger == nil || level > g.LogLevel {
		return
	}

	g.logger <- fmt.Sprint(a...)
	g.drawL(event.DrawMessages)
}

func (g *Game) Logf(level int, format string, a ...interface{}) {
	if g.logger == nil || level > g.LogLevel {
		return
	}

	g.logger <- fmt.Sprintf(format, a...)
	g.drawL(event.DrawMessages)
}

// Run steps the game once per tick interval until ctx is done.
func (g *Game) Run(ctx context.Context) {
	t := time.NewTicker(g.TickInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			g.Step()
		}
	}
}

// Step moves the piece down one row. When it cannot move the piece is
// solidified, full rows are cleared and the next piece is spawned.
func (g *Game) Step() StepResult {
	g.Lock()
	defer g.Unlock()

	return g.StepL()
}

func (g *Game) StepL() StepResult {
	if g.Paused {
		return StepResult{}
	}

	if g.movePiece(0, 1) {
		g.drawL(event.DrawBoard)
		return StepResult{}
	}

	return g.landL()
}

func (g *Game) landL() StepResult {
	var r StepResult

	err := g.Board.Solidify(g.Piece)
	if err != nil {
		// The piece overlaps the board, nothing landed.
		g.Logf(LogStandard, "%s", err)

		r.GameOver = !g.spawnL()
		g.drawL(event.DrawBoard)
		return r
	}
	r.Landed = true

	r.Cleared = len(g.Board.ClearFull())
	if r.Cleared > 0 {
		g.Logf(LogVerbose, "Cleared %d rows", r.Cleared)
	}
	g.emitL(&event.LandEvent{Cleared: r.Cleared})

	r.GameOver = !g.spawnL()

	g.drawL(event.DrawBoard)
	return r
}

// spawnL replaces the piece. When the new piece collides the board is
// reset and the game pauses until Resume is called.
func (g *Game) spawnL() bool {
	g.Piece = g.Source.Take()

	if !mino.Collides(g.Board, g.Piece.Shape, g.Piece.Point) {
		return true
	}

	g.Board.Reset()
	g.Paused = true
	g.Resets++

	g.Logf(LogStandard, "Game over (%d)", g.Resets)
	g.emitL(&event.GameOverEvent{Resets: g.Resets})

	return false
}

func (g *Game) movePiece(dx int, dy int) bool {
	if mino.Collides(g.Board, g.Piece.Shape, g.Piece.Point.Add(mino.Point{X: dx, Y: dy})) {
		return false
	}

	g.Piece.Move(dx, dy)
	return true
}

func (g *Game) rotatePiece() bool {
	rotated := g.Piece.Shape.Rotate()
	if mino.Collides(g.Board, rotated, g.Piece.Point) {
		return false
	}

	g.Piece.Shape = rotated
	return true
}

// ProcessAction applies a player action and reports whether the game
// state changed. Actions are ignored while paused.
func (g *Game) ProcessAction(a event.GameAction) bool {
	g.Lock()
	defer g.Unlock()

	return g.ProcessActionL(a)
}

func (g *Game) ProcessActionL(a event.GameAction) bool {
	if g.Paused {
		return false
	}

	var changed bool
	switch a {
	case event.ActionMoveLeft:
		changed = g.movePiece(-1, 0)
	case event.ActionMoveRight:
		changed = g.movePiece(1, 0)
	case event.ActionSoftDrop:
		changed = g.movePiece(0, 1)
	case event.ActionRotateCW:
		changed = g.rotatePiece()
	case event.ActionHardDrop:
		for g.movePiece(0, 1) {
		}

		g.landL()
		return true
	default:
		g.Logf(LogDebug, "Unknown action %d", a)
		return false
	}

	g.Logf(LogVerbose, "Action %s: %v", a, changed)

	if changed {
		g.drawL(event.DrawBoard)
	}
	return changed
}

// Resume acknowledges a game over notice.
func (g *Game) Resume() {
	g.Lock()
	defer g.Unlock()

	if !g.Paused {
		return
	}

	g.Paused = false
	g.drawL(event.DrawAll)
}

func (g *Game) drawL(o event.DrawObject) {
	if g.draw == nil {
		return
	}

	// A pending redraw already covers this one.
	select {
	case g.draw <- o:
	default:
	}
}

func (g *Game) emitL(e interface{}) {
	if g.events == nil {
		return
	}

	select {
	case g.events <- e:
	default:
		g.Logf(LogDebug, "Dropped event %T", e)
	}
}
