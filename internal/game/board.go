package game

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// CellCount is the number of cells on the board. It is fixed for the life of the process.
const CellCount = 9

// Position is a zero-based cell index. Users see cells numbered 1-9 laid out like a
// numeric keypad, so Position 0 is the bottom-left cell and Position 8 the top-right one.
type Position int

// Board boundaries
const (
	PositionMin Position = 0
	PositionMax Position = CellCount - 1
)

const Center Position = 4

var (
	Corners = []Position{0, 2, 6, 8}
	Sides   = []Position{1, 3, 5, 7}
)

var (
	ErrInvalidPosition = errors.New("invalid position")
	ErrCellOccupied    = errors.New("cell already occupied")
)

// PositionFromNumber converts a user-facing cell number (1-9) to a Position.
func PositionFromNumber(n int) (Position, error) {
	p := Position(n - 1)
	if !p.Valid() {
		return 0, fmt.Errorf("%w: cell %d", ErrInvalidPosition, n)
	}
	return p, nil
}

// Number returns the user-facing cell number (1-9).
func (p Position) Number() int {
	return int(p) + 1
}

func (p Position) Valid() bool {
	return p >= PositionMin && p <= PositionMax
}

// Board holds the occupancy of the nine cells. It is a value type: assigning or
// copying a Board yields an independent snapshot.
type Board struct {
	cells [CellCount]PlayerMark
}

func NewBoard() Board {
	return Board{}
}

// BoardFromCells builds a board from a cell snapshot without checking turn order.
func BoardFromCells(cells [CellCount]PlayerMark) Board {
	return Board{cells: cells}
}

func (b Board) CellCount() int {
	return CellCount
}

// IsEmpty reports whether the cell at p holds no mark.
func (b Board) IsEmpty(p Position) (bool, error) {
	if !p.Valid() {
		return false, fmt.Errorf("%w: %d", ErrInvalidPosition, p)
	}
	return b.cells[p] == None, nil
}

func (b Board) At(p Position) (PlayerMark, error) {
	if !p.Valid() {
		return None, fmt.Errorf("%w: %d", ErrInvalidPosition, p)
	}
	return b.cells[p], nil
}

// Place puts mark on the empty cell at p.
func (b *Board) Place(p Position, mark PlayerMark) error {
	if !mark.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMark, mark)
	}
	empty, err := b.IsEmpty(p)
	if err != nil {
		return err
	}
	if !empty {
		return fmt.Errorf("%w: cell %d", ErrCellOccupied, p.Number())
	}
	b.cells[p] = mark
	return nil
}

// Copy returns an independent snapshot used for lookahead.
func (b Board) Copy() Board {
	return Board{cells: b.cells}
}

// EmptyPositions returns the empty cells in ascending order.
func (b Board) EmptyPositions() []Position {
	return b.EmptyAmong(allPositions)
}

// EmptyAmong returns the positions of candidates that are empty, keeping their order.
// Out-of-range candidates are skipped.
func (b Board) EmptyAmong(candidates []Position) []Position {
	return lo.Filter(candidates, func(p Position, _ int) bool {
		return p.Valid() && b.cells[p] == None
	})
}

// Cells returns a copy of the cells for renderers.
func (b Board) Cells() [CellCount]PlayerMark {
	return b.cells
}

// Count returns how many cells hold mark.
func (b Board) Count(mark PlayerMark) int {
	return lo.Count(b.cells[:], mark)
}

var allPositions = lo.Map(make([]struct{}, CellCount), func(_ struct{}, i int) Position {
	return Position(i)
})
