//go:generate mockgen -source=room.go -destination=mocks/mock_room.go -package=mocks

package room

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ctchen222/tictactoe-cli/internal/game"
	"ctchen222/tictactoe-cli/internal/player"
	"ctchen222/tictactoe-cli/pkg/proto"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("room")
	meter  = otel.Meter("room")
)

var ErrRoomFinished = errors.New("room already finished")

// View defines the presentation side of a room.
type View interface {
	AnnounceFirstTurn(turn game.Turn)
	ShowBoard(board game.Board)
	ShowOutcome(outcome proto.Outcome)
}

// Room represents a single game instance. It owns the board for the game's lifetime.
type Room struct {
	ID           string
	Players      map[game.Turn]*player.Player
	board        game.Board
	state        State
	view         View
	movesCounter metric.Int64Counter
}

// NewRoom creates a new game room with an empty board.
func NewRoom(id string, human, computer *player.Player, first game.Turn, view View) *Room {
	movesCounter, err := meter.Int64Counter("tictactoe.moves",
		metric.WithDescription("Moves applied to a board"),
		metric.WithUnit("{move}"),
	)
	if err != nil {
		otel.Handle(err)
	}

	return &Room{
		ID: id,
		Players: map[game.Turn]*player.Player{
			game.TurnHuman:    human,
			game.TurnComputer: computer,
		},
		board:        game.NewBoard(),
		state:        State{Phase: AwaitingMove, Turn: first},
		view:         view,
		movesCounter: movesCounter,
	}
}

// Board returns a snapshot of the room's board.
func (r *Room) Board() game.Board {
	return r.board.Copy()
}

func (r *Room) State() State {
	return r.state
}

// Run announces who goes first and plays until the game is won or drawn.
func (r *Room) Run(ctx context.Context) (game.Outcome, error) {
	ctx, span := tracer.Start(ctx, "room.Run", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.String("game.first_turn", r.state.Turn.String()),
	))
	defer span.End()

	if r.state.Phase == Finished {
		span.SetStatus(codes.Error, "Room already finished")
		return r.state.Outcome, ErrRoomFinished
	}

	r.view.AnnounceFirstTurn(r.state.Turn)

	for r.state.Phase != Finished {
		if _, err := r.Step(ctx); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Game aborted")
			return game.Outcome{}, err
		}
	}

	span.SetAttributes(attribute.String("game.status", r.state.Outcome.Status.String()))
	return r.state.Outcome, nil
}

// Step asks the player on turn for a move, applies it and evaluates the board.
// Board errors are returned as is: movers must only produce legal moves.
func (r *Room) Step(ctx context.Context) (State, error) {
	if r.state.Phase == Finished {
		return r.state, ErrRoomFinished
	}

	current := r.Players[r.state.Turn]
	ctx, span := tracer.Start(ctx, "room.Step", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.String("player.id", current.ID),
		attribute.String("player.mark", string(current.Mark)),
	))
	defer span.End()

	move, err := current.Mover.NextMove(ctx, r.board.Copy(), current.Mark)
	if err != nil {
		slog.ErrorContext(ctx, "could not get next move", "room.id", r.ID, "player.id", current.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Could not get next move")
		return r.state, fmt.Errorf("failed to get move from %s: %w", current.Turn, err)
	}
	span.SetAttributes(attribute.Int("move.cell", move.Number()))

	if err := r.board.Place(move, current.Mark); err != nil {
		slog.ErrorContext(ctx, "illegal move", "room.id", r.ID, "player.id", current.ID, "move", int(move), "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Illegal move")
		return r.state, fmt.Errorf("failed to apply move from %s: %w", current.Turn, err)
	}
	r.movesCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("player.turn", current.Turn.String())))
	slog.DebugContext(ctx, "Move applied", "room.id", r.ID, "player.id", current.ID, "player.mark", current.Mark, "move", move.Number())

	outcome := game.Evaluate(r.board, current.Mark, current.Turn)
	if outcome.Finished() {
		r.state = State{Phase: Finished, Turn: current.Turn, Outcome: outcome}
		span.SetAttributes(attribute.String("game.status", outcome.Status.String()))

		result := proto.NewOutcome(outcome)
		slog.InfoContext(ctx, "Game finished", "room.id", r.ID, "outcome", result)
		r.view.ShowOutcome(result)
		r.view.ShowBoard(r.board.Copy())
		return r.state, nil
	}

	r.state = State{Phase: AwaitingMove, Turn: current.Turn.Other(), Outcome: outcome}
	return r.state, nil
}
