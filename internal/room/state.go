package room

import (
	"fmt"

	"ctchen222/tictactoe-cli/internal/game"
)

// Phase is the coarse state of a room.
type Phase int

const (
	AwaitingMove Phase = iota
	Finished
)

// State is the room's position in its state machine. Turn is the side to move
// while awaiting a move, and the side that made the last move once finished.
type State struct {
	Phase   Phase
	Turn    game.Turn
	Outcome game.Outcome
}

func (s State) String() string {
	if s.Phase == Finished {
		return fmt.Sprintf("Finished(%s)", s.Outcome.Status)
	}
	return fmt.Sprintf("AwaitingMove(%s)", s.Turn)
}
