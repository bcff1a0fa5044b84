package bot

import (
	"errors"
	"fmt"

	"ctchen222/tictactoe-cli/internal/game"
)

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// Strategy selects the computer's moves.
type Strategy struct {
	rng        game.Source
	difficulty Difficulty
}

// NewStrategy creates a strategy drawing its random choices from rng. Unknown
// difficulties fall back to Hard.
func NewStrategy(rng game.Source, difficulty Difficulty) *Strategy {
	switch difficulty {
	case Easy, Medium, Hard:
	default:
		difficulty = Hard
	}
	return &Strategy{rng: rng, difficulty: difficulty}
}

func (s *Strategy) Difficulty() Difficulty {
	return s.difficulty
}

// SelectMove determines the bot's next move. It never mutates board and fails only
// when the board is full.
func (s *Strategy) SelectMove(board game.Board, own, opponent game.PlayerMark) (game.Position, error) {
	if game.IsFull(board) {
		return 0, fmt.Errorf("%w: board is full", ErrNoAvailableMoves)
	}

	switch s.difficulty {
	case Easy:
		return s.easyMove(board)
	case Medium:
		return s.mediumMove(board, own, opponent)
	default:
		return s.hardMove(board, own, opponent)
	}
}

// easyMove makes a completely random move.
func (s *Strategy) easyMove(board game.Board) (game.Position, error) {
	move, ok := game.RandomChoice(s.rng, board.EmptyPositions())
	if !ok {
		return 0, ErrNoAvailableMoves
	}
	return move, nil
}

// mediumMove will win if it can, block if it must, otherwise move randomly.
func (s *Strategy) mediumMove(board game.Board, own, opponent game.PlayerMark) (game.Position, error) {
	if move, found := findWinningMove(board, own); found {
		return move, nil
	}
	if move, found := findWinningMove(board, opponent); found {
		return move, nil
	}
	return s.easyMove(board)
}

// hardMove wins, blocks, then prefers a random corner, the center and finally a random side.
func (s *Strategy) hardMove(board game.Board, own, opponent game.PlayerMark) (game.Position, error) {
	// 1. Win: Check if the bot can win in the next move
	if move, found := findWinningMove(board, own); found {
		return move, nil
	}

	// 2. Block: Check if the opponent is about to win and block them
	if move, found := findWinningMove(board, opponent); found {
		return move, nil
	}

	// 3. Corners: Take an available corner randomly
	if move, ok := game.RandomChoice(s.rng, board.EmptyAmong(game.Corners)); ok {
		return move, nil
	}

	// 4. Center: Take the center if it's available
	if empty, _ := board.IsEmpty(game.Center); empty {
		return game.Center, nil
	}

	// 5. Sides: Take any available side randomly
	if move, ok := game.RandomChoice(s.rng, board.EmptyAmong(game.Sides)); ok {
		return move, nil
	}

	return 0, ErrNoAvailableMoves
}

// findWinningMove tries mark on every empty cell in ascending order and returns the
// first one that completes a triple.
func findWinningMove(board game.Board, mark game.PlayerMark) (game.Position, bool) {
	for _, p := range board.EmptyPositions() {
		trial := board.Copy()
		if err := trial.Place(p, mark); err != nil {
			continue
		}
		if game.IsWinner(trial, mark) {
			return p, true
		}
	}
	return 0, false
}
