package nw

import "fmt"

// Rescore recomputes the score of an aligned pair without the DP tables.
//
// Each column contributes:
//   - sc.Match    if the two symbols are equal,
//   - sc.Gap      otherwise, if either symbol is the gap marker,
//   - sc.Mismatch otherwise.
//
// For any pair produced by Traceback over inputs that do not contain the gap
// marker, the result equals Tables.Optimum.
//
// Errors:
//   - ErrLengthMismatch — if len(x) != len(y).
func Rescore[S comparable](x, y []S, gap S, sc Scoring) (int, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}

	total := 0
	for k := range x {
		switch {
		case x[k] == y[k]:
			total += sc.Match
		case x[k] == gap || y[k] == gap:
			total += sc.Gap
		default:
			total += sc.Mismatch
		}
	}

	return total, nil
}
