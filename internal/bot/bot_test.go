package bot

import (
	"context"
	"strings"
	"testing"

	"ctchen222/tictactoe-cli/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBotPlayer(t *testing.T) {
	p := NewBotPlayer(NewStrategy(fixedSource{}, Hard), O)

	assert.True(t, strings.HasPrefix(p.ID, "bot-"), "unexpected bot id %q", p.ID)
	assert.Equal(t, game.TurnComputer, p.Turn)
	assert.Equal(t, O, p.Mark)
	assert.True(t, p.IsBot)
	require.NotNil(t, p.Mover)
}

func TestBotMover_NextMove(t *testing.T) {
	t.Run("Plays the winning move for its mark", func(t *testing.T) {
		mover := NewBotMover("bot-test", NewStrategy(fixedSource{}, Hard))
		b := board(
			X, X, E,
			O, O, E,
			E, E, E,
		)

		move, err := mover.NextMove(context.Background(), b, O)

		require.NoError(t, err)
		assert.Equal(t, game.Position(5), move)
	})

	t.Run("Fails on a full board", func(t *testing.T) {
		mover := NewBotMover("bot-test", NewStrategy(fixedSource{}, Hard))
		full := board(
			X, O, X,
			O, X, O,
			O, X, O,
		)

		_, err := mover.NextMove(context.Background(), full, X)

		assert.ErrorIs(t, err, ErrNoAvailableMoves)
	})
}
