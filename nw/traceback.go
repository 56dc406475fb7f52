package nw

import "slices"

const panicTableShape = "nw: Traceback: tables do not match sequence lengths"

// Traceback reconstructs one optimal alignment from t, walking from the
// bottom-right cell back to the origin.
//
// At each cell the move is chosen by Dirs.Best: Diagonal if tagged, else Up,
// else Left. Symbols are appended back-to-front into growable buffers which
// are reversed once at the end; the route is reversed the same way so it reads
// start-to-end.
//
// If a is empty the route is all Left; if b is empty it is all Up.
//
// Panics if t was not built for sequences of these lengths.
func Traceback[S comparable](t *Tables, a, b []S, gap S) (aligned1, aligned2 []S, route Route) {
	if t.rows != len(a)+1 || t.cols != len(b)+1 {
		panic(panicTableShape)
	}

	// An alignment is never longer than m+n.
	size := len(a) + len(b)
	aligned1 = make([]S, 0, size)
	aligned2 = make([]S, 0, size)
	route = make(Route, 0, size)

	i, j := len(a), len(b)
	for i > 0 || j > 0 {
		move, ok := t.Trace(i, j).Best()
		if !ok {
			// Only the origin is untagged, and the loop stops before it.
			panic("nw: Traceback: untagged cell off the origin")
		}
		switch move {
		case Diagonal:
			aligned1 = append(aligned1, a[i-1])
			aligned2 = append(aligned2, b[j-1])
			i--
			j--
		case Up:
			aligned1 = append(aligned1, a[i-1])
			aligned2 = append(aligned2, gap)
			i--
		case Left:
			aligned1 = append(aligned1, gap)
			aligned2 = append(aligned2, b[j-1])
			j--
		}
		route = append(route, move)
	}

	slices.Reverse(aligned1)
	slices.Reverse(aligned2)
	slices.Reverse(route)

	return aligned1, aligned2, route
}
