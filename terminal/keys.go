package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/plus3/pong/pong"
)

// DefaultHold is how many frames a key stays held after its last press event.
const DefaultHold = 8

type action int

const (
	actionConfirm action = iota
	actionLeftUp
	actionLeftDown
	actionRightUp
	actionRightDown
	numActions
)

// Keys turns press events into held key state. Terminals only report key
// presses and autorepeat, never releases, so a key is considered held for a
// number of frames after each press.
type Keys struct {
	hold      int
	remaining [numActions]int
}

func NewKeys(hold int) *Keys {
	if hold < 1 {
		hold = DefaultHold
	}
	return &Keys{hold: hold}
}

// Handle records a key event. It reports false for keys it does not map.
func (k *Keys) Handle(ev *tcell.EventKey) bool {
	a, ok := actionFor(ev)
	if !ok {
		return false
	}
	k.remaining[a] = k.hold
	return true
}

// Input returns the keys currently held.
func (k *Keys) Input() pong.Input {
	return pong.Input{
		Confirm:   k.remaining[actionConfirm] > 0,
		LeftUp:    k.remaining[actionLeftUp] > 0,
		LeftDown:  k.remaining[actionLeftDown] > 0,
		RightUp:   k.remaining[actionRightUp] > 0,
		RightDown: k.remaining[actionRightDown] > 0,
	}
}

// Tick ages every held key by one frame.
func (k *Keys) Tick() {
	for i := range k.remaining {
		if k.remaining[i] > 0 {
			k.remaining[i]--
		}
	}
}

func actionFor(ev *tcell.EventKey) (action, bool) {
	switch ev.Key() {
	case tcell.KeyEnter:
		return actionConfirm, true
	case tcell.KeyUp:
		return actionRightUp, true
	case tcell.KeyDown:
		return actionRightDown, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return actionLeftUp, true
		case 's', 'S':
			return actionLeftDown, true
		}
	}
	return 0, false
}

// IsQuit reports whether ev asks to leave the game.
func IsQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}
