package proto

import (
	"log/slog"

	"ctchen222/tictactoe-cli/internal/game"
)

// Winner values of an Outcome.
const (
	WinnerNone     = ""
	WinnerPlayer   = "player"
	WinnerComputer = "computer"
)

// State values of an Outcome.
const (
	StateDone    = "Done"
	StateDraw    = "Draw"
	StateNotDone = "Not done"
)

// Outcome is what the presentation layer is told after a move.
type Outcome struct {
	Winner string `json:"winner,omitempty"`
	State  string `json:"state"`
}

// NewOutcome converts an evaluated game outcome into its presentation form.
func NewOutcome(o game.Outcome) Outcome {
	switch o.Status {
	case game.Won:
		winner := WinnerPlayer
		if o.Winner == game.TurnComputer {
			winner = WinnerComputer
		}
		return Outcome{Winner: winner, State: StateDone}
	case game.Draw:
		return Outcome{Winner: WinnerNone, State: StateDraw}
	default:
		return Outcome{Winner: WinnerNone, State: StateNotDone}
	}
}

// LogValue implements slog.LogValuer.
func (o Outcome) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("winner", o.Winner),
		slog.String("state", o.State),
	)
}
