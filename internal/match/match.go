package match

import (
	"fmt"
	"log/slog"

	"ctchen222/tictactoe-cli/internal/bot"
	"ctchen222/tictactoe-cli/internal/game"
	"ctchen222/tictactoe-cli/internal/player"

	"github.com/google/uuid"
)

// Match pairs the human with the computer for a single game.
type Match struct {
	ID       string
	Human    *player.Player
	Computer *player.Player
	First    game.Turn
}

// New sets up a match: the human takes humanMark, the computer the other letter,
// and the side moving first is drawn from rng.
func New(humanMover player.Mover, humanMark game.PlayerMark, strategy *bot.Strategy, rng game.Source) (*Match, error) {
	if !humanMark.Valid() {
		return nil, fmt.Errorf("failed to create match with mark %q: %w", humanMark, game.ErrInvalidMark)
	}

	id := uuid.NewString()
	human := player.NewPlayer("player-"+id[:8], game.TurnHuman, humanMark, humanMover)
	computer := bot.NewBotPlayer(strategy, humanMark.Opponent())

	m := &Match{
		ID:       id,
		Human:    human,
		Computer: computer,
		First:    game.RandomTurn(rng),
	}
	slog.Debug("Match created", "match.id", m.ID, "human.mark", human.Mark, "computer.mark", computer.Mark, "first", m.First)
	return m, nil
}

// Players returns the human and computer in turn order.
func (m *Match) Players() [2]*player.Player {
	if m.First == game.TurnComputer {
		return [2]*player.Player{m.Computer, m.Human}
	}
	return [2]*player.Player{m.Human, m.Computer}
}
