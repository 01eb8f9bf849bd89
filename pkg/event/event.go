package event

type DrawObject int

const (
	DrawAll DrawObject = iota
	DrawBoard
	DrawMessages
)

// GameOverEvent is sent when a new piece cannot enter the board. The
// board has already been reset when it is received.
type GameOverEvent struct {
	Resets int
}

// LandEvent is sent when a piece is solidified into the board.
type LandEvent struct {
	Cleared int
}
