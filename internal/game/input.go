package game

import "github.com/gdamore/tcell/v2"

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionMoveNE
	ActionMoveNW
	ActionMoveSE
	ActionMoveSW
	ActionWait
	ActionPickup
	ActionFire
	ActionNextTarget
	ActionPrevTarget
	ActionNextAmmo
	ActionPrevAmmo
	ActionWield
	ActionQuit
	ActionTarget1 // ActionTarget1..ActionTarget9 pick a target directly
	ActionTarget9 = ActionTarget1 + 8
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyTab:
		return ActionNextTarget
	case tcell.KeyBacktab:
		return ActionPrevTarget
	case tcell.KeyEscape:
		return ActionQuit
	}

	// Rune keys.
	switch r := ev.Rune(); r {
	case 'k', 'K':
		return ActionMoveN
	case 'j', 'J':
		return ActionMoveS
	case 'l', 'L':
		return ActionMoveE
	case 'h', 'H':
		return ActionMoveW
	case 'y', 'Y':
		return ActionMoveNW
	case 'u', 'U':
		return ActionMoveNE
	case 'b', 'B':
		return ActionMoveSW
	case 'n', 'N':
		return ActionMoveSE
	case '.':
		return ActionWait
	case ',':
		return ActionPickup
	case 'f', 'F':
		return ActionFire
	case ']':
		return ActionNextAmmo
	case '[':
		return ActionPrevAmmo
	case 'w', 'W':
		return ActionWield
	case 'q', 'Q':
		return ActionQuit
	default:
		if r >= '1' && r <= '9' {
			return ActionTarget1 + Action(r-'1')
		}
	}
	return ActionNone
}

// actionToDelta converts a movement action to (dx, dy).
func actionToDelta(a Action) (int, int) {
	switch a {
	case ActionMoveN:
		return 0, -1
	case ActionMoveS:
		return 0, 1
	case ActionMoveE:
		return 1, 0
	case ActionMoveW:
		return -1, 0
	case ActionMoveNE:
		return 1, -1
	case ActionMoveNW:
		return -1, -1
	case ActionMoveSE:
		return 1, 1
	case ActionMoveSW:
		return -1, 1
	}
	return 0, 0
}
