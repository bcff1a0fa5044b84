//go:generate mockgen -source=player.go -destination=mocks/mock_player.go -package=mocks

package player

import (
	"context"

	"ctchen222/tictactoe-cli/internal/game"
)

// Mover abstracts where a player's moves come from: the terminal for the human,
// the strategy for the computer. The returned position must be empty on board.
type Mover interface {
	NextMove(ctx context.Context, board game.Board, mark game.PlayerMark) (game.Position, error)
}

// Player represents one side of a game.
type Player struct {
	ID    string
	Turn  game.Turn
	Mark  game.PlayerMark
	Mover Mover
	IsBot bool
}

// NewPlayer creates a new player instance.
func NewPlayer(id string, turn game.Turn, mark game.PlayerMark, mover Mover) *Player {
	return &Player{
		ID:    id,
		Turn:  turn,
		Mark:  mark,
		Mover: mover,
		IsBot: turn == game.TurnComputer,
	}
}
