package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"ctchen222/tictactoe-cli/internal/game"
	"ctchen222/tictactoe-cli/internal/validator"
	"ctchen222/tictactoe-cli/pkg/proto"

	"github.com/chzyer/readline"
	"github.com/logrusorgru/aurora"
)

var ErrInputClosed = errors.New("input closed")

const (
	msgWelcome    = "Welcome to Tic Tac Toe!"
	msgLetter     = "Do you want to be X or O?"
	msgMove       = "What is your next move? (1-9)"
	msgPlayAgain  = "Do you want to play again? (yes or no)"
	msgPlayerWon  = "Hooray! You have won the game!"
	msgPlayerLost = "The computer has beaten you! You lose."
	msgTie        = "The game is a tie!"
)

// LineReader reads one line of user input. *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
}

type letterInput struct {
	Letter string `validate:"required,playermark"`
}

type moveInput struct {
	Cell string `validate:"required,oneof=1 2 3 4 5 6 7 8 9"`
}

// Console talks to the human at the terminal. It renders boards and outcomes and
// keeps prompting until the input is usable, so the game only ever sees legal moves.
type Console struct {
	in  LineReader
	out io.Writer
	au  aurora.Aurora
}

// New creates a console reading from in and writing to out. Marks are colored when colored is set.
func New(in LineReader, out io.Writer, colored bool) *Console {
	return &Console{
		in:  in,
		out: out,
		au:  aurora.NewAurora(colored),
	}
}

func (c *Console) Welcome() {
	c.println(msgWelcome)
}

// ChooseLetter asks which letter the human wants until the answer is X or O.
func (c *Console) ChooseLetter(ctx context.Context) (game.PlayerMark, error) {
	for {
		c.println(msgLetter)
		line, err := c.readLine()
		if err != nil {
			return game.None, err
		}

		input := letterInput{Letter: strings.ToUpper(strings.TrimSpace(line))}
		if err := validator.GetValidator().Struct(input); err != nil {
			slog.DebugContext(ctx, "Rejected letter", "input", line, "error", err)
			continue
		}
		return game.PlayerMark(input.Letter), nil
	}
}

// AnnounceFirstTurn prints who goes first.
func (c *Console) AnnounceFirstTurn(turn game.Turn) {
	c.println(fmt.Sprintf("The %s will go first.", turn))
}

// NextMove draws the board and asks for a cell until the answer names an empty one.
func (c *Console) NextMove(ctx context.Context, board game.Board, mark game.PlayerMark) (game.Position, error) {
	c.ShowBoard(board)
	for {
		c.println(msgMove)
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}

		input := moveInput{Cell: line}
		if err := validator.GetValidator().Struct(input); err != nil {
			slog.DebugContext(ctx, "Rejected move", "input", line, "error", err)
			continue
		}
		n, _ := strconv.Atoi(input.Cell)
		p, err := game.PositionFromNumber(n)
		if err != nil {
			continue
		}
		if empty, _ := board.IsEmpty(p); !empty {
			slog.DebugContext(ctx, "Rejected move on occupied cell", "move", n, "player.mark", mark)
			continue
		}
		return p, nil
	}
}

// ShowBoard draws the grid with cell 7 in the top left and cell 3 in the bottom right.
func (c *Console) ShowBoard(board game.Board) {
	cells := board.Cells()
	for row := 2; row >= 0; row-- {
		c.println("   |   |")
		c.println(" " + c.cell(cells[row*3]) + " | " + c.cell(cells[row*3+1]) + " | " + c.cell(cells[row*3+2]))
		c.println("   |   |")
		if row > 0 {
			c.println("-----------")
		}
	}
}

// ShowOutcome prints the result message. Nothing is printed while the game is still going.
func (c *Console) ShowOutcome(outcome proto.Outcome) {
	switch outcome.Winner {
	case proto.WinnerPlayer:
		c.println(msgPlayerWon)
	case proto.WinnerComputer:
		c.println(msgPlayerLost)
	}
	if outcome.State == proto.StateDraw {
		c.println(msgTie)
	}
}

// PlayAgain reports whether the answer starts with "y", in any case.
func (c *Console) PlayAgain(ctx context.Context) (bool, error) {
	c.println(msgPlayAgain)
	line, err := c.readLine()
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToLower(line), "y"), nil
}

func (c *Console) cell(mark game.PlayerMark) string {
	switch mark {
	case game.PlayerX:
		return c.au.Red(string(mark)).String()
	case game.PlayerO:
		return c.au.Blue(string(mark)).String()
	default:
		return " "
	}
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.Readline()
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return line, nil
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}
