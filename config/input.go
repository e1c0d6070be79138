package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionCount // Must be last - used for array sizing
)

// String returns the action name used in logs and key binding files
func (a ActionID) String() string {
	switch a {
	case ActionMoveLeft:
		return "moveLeft"
	case ActionMoveRight:
		return "moveRight"
	default:
		return "none"
	}
}

// InputBinding names the physical keys bound to an action. Key names are
// resolved by the host, the core only sees the action.
type InputBinding struct {
	Keys []string
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys: []string{"ArrowLeft", "A"},
			},
			ActionMoveRight: {
				Keys: []string{"ArrowRight", "D"},
			},
		},
	}
}
