package nw

// Tables holds the score and traceback tables of one alignment.
// Both are (len(a)+1) x (len(b)+1), stored row-major in flat slices.
type Tables struct {
	rows, cols int
	score      []int
	trace      []Dirs
}

// Rows returns len(a)+1.
func (t *Tables) Rows() int { return t.rows }

// Cols returns len(b)+1.
func (t *Tables) Cols() int { return t.cols }

// Score returns the optimal score of aligning a[:i] with b[:j].
// Panics if (i, j) is outside the table.
func (t *Tables) Score(i, j int) int { return t.score[t.index(i, j)] }

// Trace returns the set of moves reaching Score(i, j).
// Panics if (i, j) is outside the table.
func (t *Tables) Trace(i, j int) Dirs { return t.trace[t.index(i, j)] }

// Optimum returns the score of the bottom-right cell, the best global score.
func (t *Tables) Optimum() int { return t.score[len(t.score)-1] }

func (t *Tables) index(i, j int) int {
	if i < 0 || i >= t.rows || j < 0 || j >= t.cols {
		panic("nw: table index out of range")
	}

	return i*t.cols + j
}

// Build fills the Needleman–Wunsch score and traceback tables for a and b.
//
// Algorithm:
//  1. Let m = len(a), n = len(b). Allocate (m+1)x(n+1) tables.
//  2. Initialize:
//     S[0][0] = 0
//     S[i][0] = Gap·i, T[i][0] = {Up}   for i=1..m
//     S[0][j] = Gap·j, T[0][j] = {Left} for j=1..n
//  3. For i = 1..m, j = 1..n:
//     diag = S[i-1][j-1] + (Match if a[i-1]==b[j-1] else Mismatch)
//     up   = S[i-1][j]   + Gap
//     left = S[i][j-1]   + Gap
//     S[i][j] = max(diag, up, left)
//     T[i][j] = every move whose candidate equals S[i][j]
//
// All tied moves are kept so the reconstruction can apply its fixed priority.
// Any pair of sequences is valid, including empty ones.
//
// Complexity:
//
//	Time   = O(m·n)
//	Memory = O(m·n)
func Build[S comparable](a, b []S, sc Scoring) *Tables {
	rows, cols := len(a)+1, len(b)+1
	t := &Tables{
		rows:  rows,
		cols:  cols,
		score: make([]int, rows*cols),
		trace: make([]Dirs, rows*cols),
	}

	// First column and first row
	for i := 1; i < rows; i++ {
		t.score[i*cols] = sc.Gap * i
		t.trace[i*cols] = Dirs(0).With(Up)
	}
	for j := 1; j < cols; j++ {
		t.score[j] = sc.Gap * j
		t.trace[j] = Dirs(0).With(Left)
	}

	// Fill
	for i := 1; i < rows; i++ {
		cur, prev := i*cols, (i-1)*cols
		for j := 1; j < cols; j++ {
			diag := t.score[prev+j-1] + sc.pair(a[i-1] == b[j-1])
			up := t.score[prev+j] + sc.Gap
			left := t.score[cur+j-1] + sc.Gap
			best := max(diag, up, left)

			var d Dirs
			if diag == best {
				d = d.With(Diagonal)
			}
			if up == best {
				d = d.With(Up)
			}
			if left == best {
				d = d.With(Left)
			}
			t.score[cur+j] = best
			t.trace[cur+j] = d
		}
	}

	return t
}
