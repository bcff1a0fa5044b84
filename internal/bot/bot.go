package bot

import (
	"context"
	"log/slog"

	"ctchen222/tictactoe-cli/internal/game"
	"ctchen222/tictactoe-cli/internal/player"

	"github.com/google/uuid"
)

// BotMover implements player.Mover on top of a Strategy.
type BotMover struct {
	playerID string
	strategy *Strategy
}

// NewBotMover creates a mover for the bot identified by playerID.
func NewBotMover(playerID string, strategy *Strategy) *BotMover {
	return &BotMover{
		playerID: playerID,
		strategy: strategy,
	}
}

// NextMove asks the strategy for a move against the other mark.
func (bm *BotMover) NextMove(ctx context.Context, board game.Board, mark game.PlayerMark) (game.Position, error) {
	move, err := bm.strategy.SelectMove(board, mark, mark.Opponent())
	if err != nil {
		return 0, err
	}
	slog.DebugContext(ctx, "Bot selected move", "player.id", bm.playerID, "player.mark", mark, "move", move.Number(), "difficulty", bm.strategy.Difficulty())
	return move, nil
}

// NewBotPlayer creates a new player instance that is a bot.
func NewBotPlayer(strategy *Strategy, mark game.PlayerMark) *player.Player {
	botID := "bot-" + uuid.New().String()[:8]
	return player.NewPlayer(botID, game.TurnComputer, mark, NewBotMover(botID, strategy))
}
