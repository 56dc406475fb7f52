package nw

import (
	"errors"
	"fmt"
)

// NW — Needleman–Wunsch global alignment
//
// Description:
//
//	Aligns two sequences end to end, inserting gap markers so that the sum of
//	per-column scores is maximal. Runs in three stages:
//	  1. Build     — score table + multi-direction traceback table.
//	  2. Traceback — one canonical path (Diagonal > Up > Left on ties).
//	  3. Rescore   — score recomputed from the aligned pair.
//
// Complexity:
//
//	Time   = O(m·n)
//	Memory = O(m·n)
//
// Errors:
//   - ErrLengthMismatch — Rescore was given aligned sequences of unequal length.
//   - ErrScoreMismatch  — the rescored alignment disagrees with the DP optimum,
//     which happens only when an input contains the gap marker itself.
var (
	// ErrLengthMismatch indicates the two aligned sequences differ in length.
	ErrLengthMismatch = errors.New("nw: aligned sequences differ in length")

	// ErrScoreMismatch indicates the rescored alignment differs from the table optimum.
	ErrScoreMismatch = errors.New("nw: rescored alignment differs from optimum")
)

// Align computes an optimal global alignment of a and b, using gap as the
// gap marker in the output.
//
// The returned Score is the value recomputed by Rescore; Align checks it
// against the DP optimum and returns ErrScoreMismatch if they disagree.
//
// Example:
//
//	al, err := Align([]byte("AAA"), []byte("AA"), '-')
//	// string(al.Aligned1) == "AAA", string(al.Aligned2) == "-AA", al.Score == 0
func Align[S comparable](a, b []S, gap S, opts ...Option) (Alignment[S], error) {
	o := gatherOptions(opts...)

	t := Build(a, b, o.scoring)
	al1, al2, route := Traceback(t, a, b, gap)
	score, err := Rescore(al1, al2, gap, o.scoring)
	if err != nil {
		return Alignment[S]{}, err
	}
	if score != t.Optimum() {
		return Alignment[S]{}, fmt.Errorf("%w: rescored %d, optimum %d", ErrScoreMismatch, score, t.Optimum())
	}

	return Alignment[S]{Aligned1: al1, Aligned2: al2, Score: score, Route: route}, nil
}

// AlignString aligns two strings rune by rune. The gap marker is '-' unless
// WithGapRune is given.
func AlignString(a, b string, opts ...Option) (StringAlignment, error) {
	o := gatherOptions(opts...)

	al, err := Align([]rune(a), []rune(b), o.gapRune, opts...)
	if err != nil {
		return StringAlignment{}, err
	}

	return StringAlignment{
		Aligned1: string(al.Aligned1),
		Aligned2: string(al.Aligned2),
		Score:    al.Score,
		Route:    al.Route,
	}, nil
}
