package game

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/tangle/internal/tangle"
)

// Action is a player command, decoupled from the key that triggers it.
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionRotateLeft
	ActionRotateRight
	ActionReset
	ActionTogglePreview
	ActionToggleHelp
	ActionCopy
	ActionQuit
)

// keyBindings maps each key to its action. Keys fire once per press.
var keyBindings = []struct {
	key    ebiten.Key
	action Action
}{
	{ebiten.KeySpace, ActionMove},
	{ebiten.KeyArrowLeft, ActionRotateLeft},
	{ebiten.KeyArrowRight, ActionRotateRight},
	{ebiten.KeyR, ActionReset},
	{ebiten.KeyP, ActionTogglePreview},
	{ebiten.KeyH, ActionToggleHelp},
	{ebiten.KeyC, ActionCopy},
	{ebiten.KeyEscape, ActionQuit},
}

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

func (g *Game) handleInput() {
	currentKeys := make(map[ebiten.Key]bool, len(keyBindings))
	for _, kb := range keyBindings {
		currentKeys[kb.key] = ebiten.IsKeyPressed(kb.key)
		if currentKeys[kb.key] && !g.prevKeys[kb.key] {
			g.apply(kb.action)
		}
	}
	g.prevKeys = currentKeys
}

// apply runs one action against the session. Moves and rotations after the
// game ends, and rotations of a locked tile, are ignored.
func (g *Game) apply(a Action) {
	switch a {
	case ActionMove:
		if g.session.Over() {
			return
		}
		if err := g.session.Move(); err != nil {
			g.setStatus(err.Error())
		}
	case ActionRotateLeft, ActionRotateRight:
		if !g.session.CanRotate() {
			return
		}
		var err error
		if a == ActionRotateLeft {
			err = g.session.RotateLeft()
		} else {
			err = g.session.RotateRight()
		}
		if err != nil && !errors.Is(err, tangle.ErrTileLocked) {
			g.setStatus(err.Error())
		}
	case ActionReset:
		if err := g.session.Reset(); err != nil {
			g.setStatus(err.Error())
			return
		}
		g.announce()
	case ActionTogglePreview:
		g.showPreview = !g.showPreview
	case ActionToggleHelp:
		g.showHelp = !g.showHelp
	case ActionCopy:
		if err := writeClipboard(g.summary()); err != nil {
			g.setStatus(fmt.Sprintf("clipboard unavailable: %v", err))
			return
		}
		g.setStatus("copied result to clipboard")
	case ActionQuit:
		g.quitPending = true
	}
}
