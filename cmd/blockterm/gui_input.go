package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/blockterm/pkg/event"
)

type Keybinding struct {
	k tcell.Key
	r rune
	m tcell.ModMask

	a event.GameAction
}

var keybindings = []*Keybinding{
	{k: tcell.KeyUp, a: event.ActionRotateCW},
	{r: 'k', a: event.ActionRotateCW},
	{r: 'K', a: event.ActionRotateCW},
	{r: 'x', a: event.ActionRotateCW},
	{r: 'X', a: event.ActionRotateCW},
	{k: tcell.KeyLeft, a: event.ActionMoveLeft},
	{r: 'h', a: event.ActionMoveLeft},
	{r: 'H', a: event.ActionMoveLeft},
	{k: tcell.KeyRight, a: event.ActionMoveRight},
	{r: 'l', a: event.ActionMoveRight},
	{r: 'L', a: event.ActionMoveRight},
	{k: tcell.KeyDown, a: event.ActionSoftDrop},
	{r: 'j', a: event.ActionSoftDrop},
	{r: 'J', a: event.ActionSoftDrop},
	{r: ' ', a: event.ActionHardDrop},
}

func actionFor(ev *tcell.EventKey) event.GameAction {
	k := ev.Key()
	r := ev.Rune()

	for _, bind := range keybindings {
		if bind.k != 0 && bind.k != k {
			continue
		} else if bind.r != 0 && (k != tcell.KeyRune || bind.r != r) {
			continue
		} else if bind.m != 0 && bind.m != ev.Modifiers() {
			continue
		}

		return bind.a
	}

	return event.ActionUnknown
}

func handleKeypress(ev *tcell.EventKey) *tcell.EventKey {
	if gameOverVisible {
		return ev
	}

	k := ev.Key()
	if k == tcell.KeyEscape || (k == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) || k == tcell.KeyCtrlC {
		quit()
		return nil
	}

	a := actionFor(ev)
	if a == event.ActionUnknown || activeGame == nil {
		return ev
	}

	activeGame.ProcessAction(a)
	return nil
}
