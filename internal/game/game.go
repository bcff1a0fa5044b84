package game

import "errors"

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

const (
	// Player marks
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"
)

var ErrInvalidMark = errors.New("invalid mark")

// Opponent returns the mark of the other player.
func (m PlayerMark) Opponent() PlayerMark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return None
	}
}

// Valid reports whether m is X or O.
func (m PlayerMark) Valid() bool {
	return m == PlayerX || m == PlayerO
}

// Turn identifies which side is to move.
type Turn int

const (
	TurnHuman Turn = iota
	TurnComputer
)

func (t Turn) Other() Turn {
	if t == TurnHuman {
		return TurnComputer
	}
	return TurnHuman
}

func (t Turn) String() string {
	if t == TurnHuman {
		return "player"
	}
	return "computer"
}

// Status is the state of a game after a move.
type Status int

const (
	InProgress Status = iota
	Won
	Draw
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

// Outcome is the result of evaluating a board. Winner is only meaningful when Status is Won.
type Outcome struct {
	Status Status
	Winner Turn
}

func (o Outcome) Finished() bool {
	return o.Status != InProgress
}
