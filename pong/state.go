package pong

// State is the screen the game is on.
type State int

const (
	StateStart State = iota
	StatePlaying
	StateEnd
)

var stateNames = map[State]string{
	StateStart:   "start",
	StatePlaying: "playing",
	StateEnd:     "end",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Transition returns the state that follows s for the given input and score.
//
// Start advances to Playing only on confirm, Playing advances to End only when
// a side has reached VictoryScore, and End returns to Start only on confirm.
// Every other combination leaves the state unchanged.
func Transition(s State, in Input, score Score) State {
	switch s {
	case StateStart:
		if in.Confirm {
			return StatePlaying
		}
	case StatePlaying:
		if score.Left >= VictoryScore || score.Right >= VictoryScore {
			return StateEnd
		}
	case StateEnd:
		if in.Confirm {
			return StateStart
		}
	}
	return s
}
