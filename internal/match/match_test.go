package match

import (
	"errors"
	"testing"

	"ctchen222/tictactoe-cli/internal/bot"
	"ctchen222/tictactoe-cli/internal/game"
)

type fixedSource struct{ n int }

func (s fixedSource) Intn(n int) int { return s.n % n }

func TestNew_AssignsLetters(t *testing.T) {
	tests := []struct {
		name         string
		humanMark    game.PlayerMark
		computerMark game.PlayerMark
	}{
		{"Human plays X", game.PlayerX, game.PlayerO},
		{"Human plays O", game.PlayerO, game.PlayerX},
	}

	strategy := bot.NewStrategy(fixedSource{0}, bot.Hard)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(nil, tt.humanMark, strategy, fixedSource{1})
			if err != nil {
				t.Fatalf("New() returned error: %v", err)
			}
			if m.Human.Mark != tt.humanMark {
				t.Errorf("Expected human mark %s, got %s", tt.humanMark, m.Human.Mark)
			}
			if m.Computer.Mark != tt.computerMark {
				t.Errorf("Expected computer mark %s, got %s", tt.computerMark, m.Computer.Mark)
			}
			if m.Human.IsBot || !m.Computer.IsBot {
				t.Errorf("Expected only the computer to be a bot")
			}
			if m.Human.Turn != game.TurnHuman || m.Computer.Turn != game.TurnComputer {
				t.Errorf("Unexpected turns: human %s, computer %s", m.Human.Turn, m.Computer.Turn)
			}
		})
	}
}

func TestNew_FirstTurn(t *testing.T) {
	strategy := bot.NewStrategy(fixedSource{0}, bot.Hard)

	m, err := New(nil, game.PlayerX, strategy, fixedSource{0})
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	if m.First != game.TurnComputer {
		t.Errorf("Expected computer to go first, got %s", m.First)
	}
	if order := m.Players(); order[0] != m.Computer || order[1] != m.Human {
		t.Errorf("Expected computer then human in turn order")
	}

	m, err = New(nil, game.PlayerX, strategy, fixedSource{1})
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	if m.First != game.TurnHuman {
		t.Errorf("Expected player to go first, got %s", m.First)
	}
	if order := m.Players(); order[0] != m.Human {
		t.Errorf("Expected human first in turn order")
	}
}

func TestNew_FreshIDs(t *testing.T) {
	strategy := bot.NewStrategy(fixedSource{0}, bot.Hard)

	first, err := New(nil, game.PlayerX, strategy, fixedSource{0})
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	second, err := New(nil, game.PlayerX, strategy, fixedSource{0})
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	if first.ID == "" || first.ID == second.ID {
		t.Errorf("Expected distinct non-empty match IDs, got %q and %q", first.ID, second.ID)
	}
}

func TestNew_InvalidMark(t *testing.T) {
	strategy := bot.NewStrategy(fixedSource{0}, bot.Hard)

	_, err := New(nil, game.None, strategy, fixedSource{0})
	if !errors.Is(err, game.ErrInvalidMark) {
		t.Errorf("Expected ErrInvalidMark, got %v", err)
	}
}
