package records_test

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/katalvlaran/nwalign/nw"
	"github.com/katalvlaran/nwalign/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReadAll_SkipsHeader checks the first row is dropped and order is kept.
func TestReadAll_SkipsHeader(t *testing.T) {
	in := "seq1,seq2\nGATTACA,GCATGCU\nAAA,AA\n,ACG\n"

	pairs, err := records.ReadAll(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, pairs, 3)
	assert.Equal(t, records.Pair{Line: 2, Seq1: "GATTACA", Seq2: "GCATGCU"}, pairs[0])
	assert.Equal(t, records.Pair{Line: 3, Seq1: "AAA", Seq2: "AA"}, pairs[1])
	assert.Equal(t, records.Pair{Line: 4, Seq1: "", Seq2: "ACG"}, pairs[2], "empty sequence is valid")
}

// TestReadAll_Empty checks header-only and empty inputs yield no pairs.
func TestReadAll_Empty(t *testing.T) {
	pairs, err := records.ReadAll(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, pairs)

	pairs, err = records.ReadAll(strings.NewReader("a,b\n"))
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

// TestReadAll_Malformed checks rows with a wrong column count are reported with their line.
func TestReadAll_Malformed(t *testing.T) {
	_, err := records.ReadAll(strings.NewReader("a,b\nAC,GT\nACGT\n"))
	require.ErrorIs(t, err, records.ErrMalformedRecord)
	assert.Contains(t, err.Error(), "line 3")

	_, err = records.ReadAll(strings.NewReader("a,b\nA,C,G\n"))
	assert.ErrorIs(t, err, records.ErrMalformedRecord)
}

// TestReadAll_BadCSV checks CSV syntax errors surface as *csv.ParseError.
func TestReadAll_BadCSV(t *testing.T) {
	_, err := records.ReadAll(strings.NewReader("a,b\n\"AC,GT\n"))
	var perr *csv.ParseError
	assert.True(t, errors.As(err, &perr), "want csv.ParseError, got %v", err)
}

// TestReader_EOF checks Read keeps returning io.EOF after the last row.
func TestReader_EOF(t *testing.T) {
	rd := records.NewReader(strings.NewReader("h1,h2\nA,C\n"))
	p, err := rd.Read()
	require.NoError(t, err)
	assert.Equal(t, "A", p.Seq1)

	_, err = rd.Read()
	assert.ErrorIs(t, err, io.EOF)
	_, err = rd.Read()
	assert.ErrorIs(t, err, io.EOF)
}

// TestWriter_Lines checks the "aligned1 aligned2 score" format with and without route.
func TestWriter_Lines(t *testing.T) {
	al := nw.StringAlignment{
		Aligned1: "AAA",
		Aligned2: "-AA",
		Score:    0,
		Route:    nw.Route{nw.Up, nw.Diagonal, nw.Diagonal},
	}
	neg := nw.StringAlignment{Aligned1: "---", Aligned2: "ACG", Score: -6, Route: nw.Route{nw.Left, nw.Left, nw.Left}}

	var buf bytes.Buffer
	w := records.NewWriter(&buf, false)
	require.NoError(t, w.Write(al))
	require.NoError(t, w.Write(neg))
	require.NoError(t, w.Flush())
	assert.Equal(t, "AAA -AA 0\n--- ACG -6\n", buf.String())

	buf.Reset()
	w = records.NewWriter(&buf, true)
	require.NoError(t, w.Write(al))
	require.NoError(t, w.Flush())
	assert.Equal(t, "AAA -AA 0 UDD\n", buf.String())
}
