package main

import (
	"bytes"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/blockterm/pkg/event"
	"github.com/qnkhuat/blockterm/pkg/game"
	"github.com/qnkhuat/blockterm/pkg/sound"
	"github.com/qnkhuat/blockterm/pkg/theme"
)

const pageGame, pageGameOver = "game", "gameover"

const helpText = `
 Left/h   move left
 Right/l  move right
 Down/j   move down
 Up/k/x   rotate
 Space    hard drop

 q/Esc    quit`

var (
	closedGUI       bool
	gameOverVisible bool

	app      *tview.Application
	pages    *tview.Pages
	gameGrid *tview.Grid
	mtx      *tview.TextView
	side     *tview.TextView
	recent   *tview.TextView
	gameOver *tview.Modal

	draw   = make(chan event.DrawObject, game.CommandQueueSize)
	events = make(chan interface{}, game.CommandQueueSize)

	renderLock   = new(sync.Mutex)
	renderBuffer bytes.Buffer

	screenW, screenH int

	currentTheme theme.Theme
)

var (
	renderBlock map[game.Cell][]byte

	renderHLine    []byte
	renderVLine    []byte
	renderULCorner []byte
	renderURCorner []byte
	renderLLCorner []byte
	renderLRCorner []byte
)

func setTheme(t theme.Theme) {
	renderLock.Lock()
	defer renderLock.Unlock()

	currentTheme = t

	block := func(c string) []byte {
		return []byte("[" + c + "]" + string(tcell.RuneBlock) + "[-]")
	}
	renderBlock = map[game.Cell][]byte{
		game.CellEmpty: []byte(" "),
		game.CellBoard: block(t.Board.Hex()),
		game.CellPiece: block(t.Piece.Hex()),
	}

	border := func(r rune) []byte {
		return []byte("[" + t.Border.Hex() + "]" + string(r) + "[-]")
	}
	renderHLine = border(tcell.RuneHLine)
	renderVLine = border(tcell.RuneVLine)
	renderULCorner = border(tcell.RuneULCorner)
	renderURCorner = border(tcell.RuneURCorner)
	renderLLCorner = border(tcell.RuneLLCorner)
	renderLRCorner = border(tcell.RuneLRCorner)
}

func newTextView() *tview.TextView {
	v := tview.NewTextView().
		SetScrollable(false).
		SetTextAlign(tview.AlignLeft).
		SetWrap(false).
		SetWordWrap(false).
		SetDynamicColors(true)

	v.SetBackgroundColor(theme.TCell(currentTheme.Background))
	v.SetTextColor(theme.TCell(currentTheme.Text))
	return v
}

func initGUI() (*tview.Application, error) {
	app = tview.NewApplication()

	app.SetBeforeDrawFunc(func(screen tcell.Screen) bool {
		handleResize(screen)
		return false
	})

	mtx = newTextView()
	side = newTextView().SetText(helpText)

	recent = newTextView().
		SetScrollable(true).
		SetWrap(true).
		SetWordWrap(true)

	gameGrid = tview.NewGrid().
		SetBorders(false).
		SetRows(boardRows(), -1).
		SetColumns(1, boardColumns(), 20, -1).
		AddItem(tview.NewBox(), 0, 0, 2, 1, 0, 0, false).
		AddItem(mtx, 0, 1, 1, 1, 0, 0, false).
		AddItem(side, 0, 2, 1, 2, 0, 0, false).
		AddItem(recent, 1, 1, 1, 3, 0, 0, false)

	gameOver = tview.NewModal().
		SetText("Game Over!").
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			hideGameOver()
		})

	pages = tview.NewPages().
		AddPage(pageGame, gameGrid, true, true).
		AddPage(pageGameOver, gameOver, false, false)

	app.SetRoot(pages, true).SetInputCapture(handleKeypress)

	go handleDraw()

	return app, nil
}

func boardRows() int {
	return (boardH * blockSize) + 2
}

func boardColumns() int {
	return (boardW * 2 * blockSize) + 2
}

func handleResize(screen tcell.Screen) {
	w, h := screen.Size()
	if w == screenW && h == screenH {
		return
	}
	screenW, screenH = w, h

	if !fixedBlockSize {
		blockSize = autoBlockSize(w, h, boardW, boardH)
	}

	gameGrid.SetRows(boardRows(), -1).SetColumns(1, boardColumns(), 20, -1)

	renderBoard()
}

// autoBlockSize returns the largest scale at which a board of the given
// size fits the screen.
func autoBlockSize(screenW, screenH, w, h int) int {
	for bs := 3; bs > 1; bs-- {
		if screenH >= h*bs+2+3 && screenW >= w*2*bs+2+22 {
			return bs
		}
	}

	return 1
}

func handleDraw() {
	for o := range draw {
		switch o {
		case event.DrawMessages:
			app.QueueUpdateDraw(func() {})
		default:
			app.QueueUpdateDraw(renderBoard)
		}
	}
}

func handleEvents(player *sound.Player) {
	for e := range events {
		player.HandleEvent(e)

		switch e.(type) {
		case *event.GameOverEvent:
			app.QueueUpdateDraw(showGameOver)
		}
	}
}

func showGameOver() {
	if gameOverVisible {
		return
	}
	gameOverVisible = true

	pages.ShowPage(pageGameOver)
	app.SetFocus(gameOver)
	renderBoard()
}

func hideGameOver() {
	if !gameOverVisible {
		return
	}
	gameOverVisible = false

	pages.HidePage(pageGameOver)
	app.SetFocus(gameGrid)

	if activeGame != nil {
		activeGame.Resume()
	}
}

func closeGUI() {
	if closedGUI || app == nil {
		return
	}
	closedGUI = true

	app.Stop()
}

func renderBoard() {
	if activeGame == nil {
		return
	}

	s := activeGame.Snapshot()

	renderLock.Lock()
	renderSnapshot(s)
	mtx.Clear()
	mtx.Write(renderBuffer.Bytes())
	renderLock.Unlock()
}

func renderSnapshot(s game.Snapshot) {
	renderBuffer.Reset()

	bs := blockSize

	renderBuffer.Write(renderULCorner)
	for x := 0; x < s.W*2*bs; x++ {
		renderBuffer.Write(renderHLine)
	}
	renderBuffer.Write(renderURCorner)
	renderBuffer.WriteRune('\n')

	for y := 0; y < s.H; y++ {
		for j := 0; j < bs; j++ {
			renderBuffer.Write(renderVLine)
			for x := 0; x < s.W; x++ {
				b := renderBlock[s.At(x, y)]
				for k := 0; k < 2*bs; k++ {
					renderBuffer.Write(b)
				}
			}
			renderBuffer.Write(renderVLine)
			renderBuffer.WriteRune('\n')
		}
	}

	renderBuffer.Write(renderLLCorner)
	for x := 0; x < s.W*2*bs; x++ {
		renderBuffer.Write(renderHLine)
	}
	renderBuffer.Write(renderLRCorner)
}

func logMessage(message string) {
	logMutex.Lock()
	defer logMutex.Unlock()

	var prefix string
	if !wroteFirstLogMessage {
		wroteFirstLogMessage = true
	} else {
		prefix = "\n"
	}

	recent.Write([]byte(prefix + message))
	recent.ScrollToEnd()
}
