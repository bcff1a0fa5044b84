package game

// WinCombos lists the eight triples that win the game: three rows, three columns
// and the two diagonals.
var WinCombos = [8][3]Position{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// IsWinner reports whether any triple is fully occupied by mark.
func IsWinner(b Board, mark PlayerMark) bool {
	if !mark.Valid() {
		return false
	}
	for _, combo := range WinCombos {
		if b.cells[combo[0]] == mark && b.cells[combo[1]] == mark && b.cells[combo[2]] == mark {
			return true
		}
	}
	return false
}

// IsFull reports whether no cell is empty.
func IsFull(b Board) bool {
	for _, cell := range b.cells {
		if cell == None {
			return false
		}
	}
	return true
}

// Evaluate returns the outcome after lastMover placed lastMark. A move that both
// wins and fills the board is a win.
func Evaluate(b Board, lastMark PlayerMark, lastMover Turn) Outcome {
	if IsWinner(b, lastMark) {
		return Outcome{Status: Won, Winner: lastMover}
	}
	if IsFull(b) {
		return Outcome{Status: Draw}
	}
	return Outcome{Status: InProgress}
}
