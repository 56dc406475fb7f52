// Package nw computes optimal global alignments of two symbol sequences
// with the Needleman–Wunsch dynamic program.
//
// 🚀 What is Needleman–Wunsch?
//
//	A global aligner: both sequences are aligned end to end, and gap markers
//	are inserted where one sequence has a symbol the other lacks. The best
//	alignment maximizes the sum of per-column scores. It’s used for:
//	  • DNA / protein comparison
//	  • Diffing short token streams
//	  • Spelling and transcription alignment
//
// ✨ Key features:
//   - generic over any comparable symbol type (bytes, runes, ints, …)
//   - traceback table keeps every optimal direction per cell (Dirs bit set)
//   - deterministic reconstruction: Diagonal > Up > Left on ties
//   - score re-derived from the aligned pair and checked against the table
//   - explicit scoring per call (default match +1, mismatch −1, gap −2)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/nwalign/nw"
//
//	al, err := nw.AlignString("GATTACA", "GCATGCU", nw.WithGapPenalty(-1))
//	if err != nil {
//	  // only ErrScoreMismatch: an input contains the gap marker
//	}
//	fmt.Println(al.Aligned1, al.Aligned2, al.Score) // G-ATTACA GCA-TGCU 0
//
// The three stages are exported for callers that need the tables:
//
//	t := nw.Build(a, b, nw.DefaultScoring())
//	al1, al2, route := nw.Traceback(t, a, b, '-')
//	score, _ := nw.Rescore(al1, al2, '-', nw.DefaultScoring())
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M)
package nw
