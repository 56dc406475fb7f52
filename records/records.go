// Package records reads sequence pairs from CSV input and writes alignment
// lines.
//
// Input: a header row (skipped) followed by rows of exactly two fields,
// the first and second sequence. Output: one line per row,
//
//	aligned1 aligned2 score
//
// optionally followed by the route.
package records

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/nwalign/nw"
)

// ErrMalformedRecord indicates a data row without exactly two fields.
var ErrMalformedRecord = errors.New("records: row must have exactly two fields")

// Pair is one data row.
type Pair struct {
	// Line is the 1-based input line the row starts on.
	Line int
	Seq1 string
	Seq2 string
}

// Reader yields Pairs from CSV input.
type Reader struct {
	csv        *csv.Reader
	headerDone bool
}

// NewReader wraps r. Field counts are checked per row, not against the header.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	return &Reader{csv: cr}
}

// Read returns the next data row. The header is consumed on the first call.
// It returns io.EOF when the input is exhausted, including when the input
// holds only a header or nothing at all.
//
// Errors:
//   - ErrMalformedRecord (wrapped with the line number) for rows with ≠2 fields.
//   - *csv.ParseError for syntactically broken CSV.
func (r *Reader) Read() (Pair, error) {
	if !r.headerDone {
		if _, err := r.csv.Read(); err != nil {
			return Pair{}, err
		}
		r.headerDone = true
	}

	rec, err := r.csv.Read()
	if err != nil {
		return Pair{}, err
	}
	line, _ := r.csv.FieldPos(0)
	if len(rec) != 2 {
		return Pair{}, fmt.Errorf("line %d: %w (got %d)", line, ErrMalformedRecord, len(rec))
	}

	return Pair{Line: line, Seq1: rec[0], Seq2: rec[1]}, nil
}

// ReadAll reads every data row from r in input order.
func ReadAll(r io.Reader) ([]Pair, error) {
	rd := NewReader(r)
	var pairs []Pair
	for {
		p, err := rd.Read()
		if errors.Is(err, io.EOF) {
			return pairs, nil
		}
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
}

// Writer renders alignments as space-separated lines.
type Writer struct {
	w         *bufio.Writer
	withRoute bool
}

// NewWriter returns a buffered Writer; call Flush when done.
// When withRoute is set each line gets the route as a fourth column.
func NewWriter(w io.Writer, withRoute bool) *Writer {
	return &Writer{w: bufio.NewWriter(w), withRoute: withRoute}
}

// Write renders one alignment line.
func (w *Writer) Write(al nw.StringAlignment) error {
	buf := make([]byte, 0, 2*len(al.Aligned1)+len(al.Route)+8)
	buf = append(buf, al.Aligned1...)
	buf = append(buf, ' ')
	buf = append(buf, al.Aligned2...)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(al.Score), 10)
	if w.withRoute {
		buf = append(buf, ' ')
		buf = append(buf, al.Route.String()...)
	}
	buf = append(buf, '\n')
	_, err := w.w.Write(buf)

	return err
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error { return w.w.Flush() }
