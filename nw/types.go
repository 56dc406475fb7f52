// Package nw defines the scoring scheme, moves and result types for
// Needleman–Wunsch global alignment.
package nw

import "strings"

// Default scoring constants.
const (
	// DefaultMatch is added when two aligned symbols are equal.
	DefaultMatch = 1

	// DefaultMismatch is added when two aligned symbols differ.
	DefaultMismatch = -1

	// DefaultGapPenalty is added for every symbol aligned against a gap.
	DefaultGapPenalty = -2

	// DefaultGapRune is the gap marker used by AlignString.
	DefaultGapRune = '-'
)

// Scoring is the linear scoring scheme used by Build and Rescore.
//
// Fields:
//   - Match    — score for a pair of equal symbols.
//   - Mismatch — score for a pair of different symbols.
//   - Gap      — score for a symbol aligned against a gap marker.
//
// Example:
//
//	sc := Scoring{Match: 1, Mismatch: -1, Gap: -2}
//	t := Build([]byte("GATTACA"), []byte("GCATGCU"), sc)
//	fmt.Println(t.Optimum()) // 0
type Scoring struct {
	Match    int
	Mismatch int
	Gap      int
}

// DefaultScoring returns the +1 / −1 / −2 scheme.
func DefaultScoring() Scoring {
	return Scoring{Match: DefaultMatch, Mismatch: DefaultMismatch, Gap: DefaultGapPenalty}
}

// pair returns the score of aligning two symbols that are both present.
func (sc Scoring) pair(equal bool) int {
	if equal {
		return sc.Match
	}

	return sc.Mismatch
}

// Move is a single traceback step.
//
//   - Diagonal — consume one symbol from each sequence.
//   - Up       — consume one symbol from the first sequence, gap in the second.
//   - Left     — consume one symbol from the second sequence, gap in the first.
type Move uint8

const (
	// Diagonal pairs a[i-1] with b[j-1].
	Diagonal Move = iota

	// Up pairs a[i-1] with a gap.
	Up

	// Left pairs a gap with b[j-1].
	Left
)

// String returns the one-letter code of the move ("D", "U" or "L").
func (m Move) String() string {
	switch m {
	case Diagonal:
		return "D"
	case Up:
		return "U"
	case Left:
		return "L"
	default:
		return "?"
	}
}

// Dirs is the set of moves that reach a cell's optimal score.
// Bit k is set when Move(k) is a member.
type Dirs uint8

// With returns d with m added.
func (d Dirs) With(m Move) Dirs { return d | 1<<m }

// Has reports whether m is in the set.
func (d Dirs) Has(m Move) bool { return d&(1<<m) != 0 }

// Empty reports whether the set has no members. Only the origin cell is empty.
func (d Dirs) Empty() bool { return d == 0 }

// Best picks the canonical move among ties: Diagonal, then Up, then Left.
// The second result is false for the empty set.
func (d Dirs) Best() (Move, bool) {
	switch {
	case d.Has(Diagonal):
		return Diagonal, true
	case d.Has(Up):
		return Up, true
	case d.Has(Left):
		return Left, true
	default:
		return 0, false
	}
}

// String lists the members in priority order, e.g. "DU" or "L".
func (d Dirs) String() string {
	var sb strings.Builder
	for _, m := range [...]Move{Diagonal, Up, Left} {
		if d.Has(m) {
			sb.WriteString(m.String())
		}
	}

	return sb.String()
}

// Route is the ordered list of moves, read start-to-end over the alignment.
type Route []Move

// String concatenates the move codes, e.g. "DDUDL".
func (r Route) String() string {
	var sb strings.Builder
	sb.Grow(len(r))
	for _, m := range r {
		sb.WriteString(m.String())
	}

	return sb.String()
}

// Count returns how many times m occurs in the route.
func (r Route) Count(m Move) int {
	n := 0
	for _, x := range r {
		if x == m {
			n++
		}
	}

	return n
}

// Alignment is the result of a global alignment over symbols of type S.
//
// Invariants:
//   - len(Aligned1) == len(Aligned2) == len(Route)
//   - removing gap markers from Aligned1 (Aligned2) yields the first (second) input
//   - Score equals the optimum of the DP table
type Alignment[S comparable] struct {
	Aligned1 []S
	Aligned2 []S
	Score    int
	Route    Route
}

// StringAlignment is the rune-based form returned by AlignString.
type StringAlignment struct {
	Aligned1 string
	Aligned2 string
	Score    int
	Route    Route
}
