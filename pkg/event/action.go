package event

type GameAction int

const (
	ActionUnknown GameAction = iota
	ActionRotateCW
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionHardDrop
)

func (a GameAction) String() string {
	switch a {
	case ActionRotateCW:
		return "rotate"
	case ActionMoveLeft:
		return "left"
	case ActionMoveRight:
		return "right"
	case ActionSoftDrop:
		return "soft drop"
	case ActionHardDrop:
		return "hard drop"
	default:
		return "unknown"
	}
}
