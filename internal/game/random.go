package game

import "lukechampine.com/frand"

// Source supplies uniformly distributed integers in [0, n).
type Source interface {
	Intn(n int) int
}

// DefaultSource returns a fast, unseeded source backed by frand.
func DefaultSource() Source {
	return frand.New()
}

// RandomTurn picks which side moves first.
func RandomTurn(src Source) Turn {
	if src.Intn(2) == 0 {
		return TurnComputer
	}
	return TurnHuman
}

// RandomChoice returns a uniformly chosen element of candidates. ok is false when
// candidates is empty.
func RandomChoice(src Source, candidates []Position) (p Position, ok bool) {
	if len(candidates) == 0 {
		return 0, false
	}
	return candidates[src.Intn(len(candidates))], true
}
