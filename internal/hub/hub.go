package hub

import (
	"context"
	"fmt"
	"log/slog"

	"ctchen222/tictactoe-cli/internal/bot"
	"ctchen222/tictactoe-cli/internal/game"
	"ctchen222/tictactoe-cli/internal/match"
	"ctchen222/tictactoe-cli/internal/player"
	"ctchen222/tictactoe-cli/internal/room"
	"ctchen222/tictactoe-cli/pkg/proto"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("hub")
	meter  = otel.Meter("hub")
)

// Console is the terminal side of the game: it renders rooms, reads the
// human's moves and answers the setup and replay prompts.
type Console interface {
	room.View
	player.Mover
	Welcome()
	ChooseLetter(ctx context.Context) (game.PlayerMark, error)
	PlayAgain(ctx context.Context) (bool, error)
}

// Hub runs games against the computer until the human stops.
type Hub struct {
	console      Console
	strategy     *bot.Strategy
	rng          game.Source
	played       int
	gamesCounter metric.Int64Counter
}

// NewHub creates a new hub.
func NewHub(console Console, strategy *bot.Strategy, rng game.Source) *Hub {
	gamesCounter, err := meter.Int64Counter("tictactoe.games",
		metric.WithDescription("Finished games by result"),
		metric.WithUnit("{game}"),
	)
	if err != nil {
		otel.Handle(err)
	}

	return &Hub{
		console:      console,
		strategy:     strategy,
		rng:          rng,
		gamesCounter: gamesCounter,
	}
}

// Played returns the number of games finished so far.
func (h *Hub) Played() int {
	return h.played
}

// Run plays games back to back, asking after each one whether to continue.
func (h *Hub) Run(ctx context.Context) error {
	for {
		if _, err := h.PlayGame(ctx); err != nil {
			return err
		}

		again, err := h.console.PlayAgain(ctx)
		if err != nil {
			return fmt.Errorf("failed to read replay answer: %w", err)
		}
		if !again {
			slog.InfoContext(ctx, "Player is done", "games.played", h.played)
			return nil
		}
	}
}

// PlayGame sets up a fresh match and room and plays it to the end.
func (h *Hub) PlayGame(ctx context.Context) (game.Outcome, error) {
	ctx, span := tracer.Start(ctx, "hub.PlayGame", trace.WithAttributes(
		attribute.Int("games.played", h.played),
		attribute.String("bot.difficulty", string(h.strategy.Difficulty())),
	))
	defer span.End()

	h.console.Welcome()

	mark, err := h.console.ChooseLetter(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Could not read letter")
		return game.Outcome{}, fmt.Errorf("failed to choose letter: %w", err)
	}

	m, err := match.New(h.console, mark, h.strategy, h.rng)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Could not create match")
		return game.Outcome{}, err
	}
	span.SetAttributes(attribute.String("room.id", m.ID))
	slog.InfoContext(ctx, "Starting game", "room.id", m.ID, "player.mark", m.Human.Mark, "first", m.First)

	r := room.NewRoom(m.ID, m.Human, m.Computer, m.First, h.console)
	outcome, err := r.Run(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Game aborted")
		return game.Outcome{}, fmt.Errorf("game %s aborted: %w", m.ID, err)
	}

	h.played++
	result := proto.NewOutcome(outcome)
	h.gamesCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("game.state", result.State),
		attribute.String("game.winner", result.Winner),
	))
	return outcome, nil
}
