package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Place(t *testing.T) {
	t.Run("Places a mark on an empty cell", func(t *testing.T) {
		b := NewBoard()

		err := b.Place(Center, PlayerX)
		require.NoError(t, err)

		mark, err := b.At(Center)
		require.NoError(t, err)
		assert.Equal(t, PlayerX, mark)
		assert.Equal(t, 1, b.Count(PlayerX))
		assert.Equal(t, 0, b.Count(PlayerO))
	})

	t.Run("Rejects an occupied cell", func(t *testing.T) {
		b := NewBoard()
		require.NoError(t, b.Place(0, PlayerX))

		err := b.Place(0, PlayerO)

		require.ErrorIs(t, err, ErrCellOccupied)
		mark, _ := b.At(0)
		assert.Equal(t, PlayerX, mark, "occupied cell must keep its mark")
	})

	t.Run("Rejects out of range positions", func(t *testing.T) {
		b := NewBoard()

		assert.ErrorIs(t, b.Place(-1, PlayerX), ErrInvalidPosition)
		assert.ErrorIs(t, b.Place(CellCount, PlayerX), ErrInvalidPosition)
		assert.Equal(t, NewBoard(), b)
	})

	t.Run("Rejects the empty mark", func(t *testing.T) {
		b := NewBoard()

		assert.ErrorIs(t, b.Place(0, None), ErrInvalidMark)
	})
}

func TestBoard_IsEmpty(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.Place(8, PlayerO))

	empty, err := b.IsEmpty(0)
	require.NoError(t, err)
	assert.True(t, empty)

	empty, err = b.IsEmpty(8)
	require.NoError(t, err)
	assert.False(t, empty)

	_, err = b.IsEmpty(9)
	assert.ErrorIs(t, err, ErrInvalidPosition)

	_, err = b.IsEmpty(-3)
	assert.ErrorIs(t, err, ErrInvalidPosition)
}

func TestBoard_CopyIsIndependent(t *testing.T) {
	original := NewBoard()
	require.NoError(t, original.Place(0, PlayerX))

	snapshot := original.Copy()
	require.NoError(t, snapshot.Place(4, PlayerO))

	empty, err := original.IsEmpty(4)
	require.NoError(t, err)
	assert.True(t, empty, "mutating the copy must not touch the original")
	assert.Equal(t, 1, original.Count(PlayerX)+original.Count(PlayerO))
	assert.Equal(t, 2, snapshot.Count(PlayerX)+snapshot.Count(PlayerO))
}

func TestBoard_EmptyPositions(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, []Position{0, 1, 2, 3, 4, 5, 6, 7, 8}, b.EmptyPositions())
	assert.Equal(t, CellCount, b.CellCount())

	require.NoError(t, b.Place(0, PlayerX))
	require.NoError(t, b.Place(4, PlayerO))

	assert.Equal(t, []Position{1, 2, 3, 5, 6, 7, 8}, b.EmptyPositions())
	assert.Equal(t, []Position{2, 6, 8}, b.EmptyAmong(Corners))
	assert.Empty(t, b.EmptyAmong([]Position{Center}))
}

func TestPositionFromNumber(t *testing.T) {
	for n := 1; n <= CellCount; n++ {
		p, err := PositionFromNumber(n)
		require.NoError(t, err)
		assert.Equal(t, n, p.Number())
	}

	for _, n := range []int{-1, 0, 10, 100} {
		_, err := PositionFromNumber(n)
		assert.ErrorIs(t, err, ErrInvalidPosition, "number %d", n)
	}
}

func TestPlayerMark_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.Equal(t, None, None.Opponent())
}
