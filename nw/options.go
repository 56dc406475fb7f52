// SPDX-License-Identifier: MIT

// Package nw: functional configuration for Align and AlignString.
// Option setters write into an unexported options value resolved by
// gatherOptions; constructors panic only on nonsensical values.
package nw

import "unicode/utf8"

const panicGapRuneInvalid = "nw: WithGapRune: gap marker must be a valid rune"

// Option mutates the resolved options. Safe to apply repeatedly.
type Option func(*options)

// options is the effective configuration after applying Option setters.
type options struct {
	scoring Scoring // DefaultScoring()
	gapRune rune    // DefaultGapRune; AlignString only
}

// WithScoring replaces the whole scoring scheme.
//
// Example:
//
//	al, err := AlignString("AAA", "AA", WithScoring(Scoring{Match: 2, Mismatch: -1, Gap: -1}))
func WithScoring(sc Scoring) Option {
	return func(o *options) { o.scoring = sc }
}

// WithMatch sets the score added for equal symbols.
func WithMatch(score int) Option {
	return func(o *options) { o.scoring.Match = score }
}

// WithMismatch sets the score added for different symbols.
func WithMismatch(score int) Option {
	return func(o *options) { o.scoring.Mismatch = score }
}

// WithGapPenalty sets the score added for each symbol aligned against a gap.
// Penalties are normally negative.
func WithGapPenalty(score int) Option {
	return func(o *options) { o.scoring.Gap = score }
}

// WithGapRune sets the gap marker written by AlignString.
// Pick a rune that does not occur in the input alphabet.
//
// Panics if r is not a valid Unicode code point or is utf8.RuneError.
func WithGapRune(r rune) Option {
	if !utf8.ValidRune(r) || r == utf8.RuneError {
		panic(panicGapRuneInvalid)
	}

	return func(o *options) { o.gapRune = r }
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) options {
	o := options{
		scoring: DefaultScoring(),
		gapRune: DefaultGapRune,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
