package batch_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nwalign/batch"
	"github.com/katalvlaran/nwalign/nw"
	"github.com/katalvlaran/nwalign/records"
)

func samplePairs() []records.Pair {
	return []records.Pair{
		{Line: 2, Seq1: "GATTACA", Seq2: "GCATGCU"},
		{Line: 3, Seq1: "AAA", Seq2: "AA"},
		{Line: 4, Seq1: "", Seq2: "ACG"},
		{Line: 5, Seq1: "ACGT", Seq2: "ACGT"},
	}
}

// TestRunner_OrderPreserved checks results follow input order regardless of workers.
func TestRunner_OrderPreserved(t *testing.T) {
	for _, workers := range []int{1, 2, 8} {
		r := batch.NewRunner(batch.WithWorkers(workers))
		res, err := r.Run(context.Background(), samplePairs())
		require.NoError(t, err)
		require.Len(t, res, 4)

		assert.Equal(t, 2, res[0].Pair.Line)
		assert.Equal(t, -1, res[0].Alignment.Score)
		assert.Equal(t, "-AA", res[1].Alignment.Aligned2)
		assert.Equal(t, "---", res[2].Alignment.Aligned1)
		assert.Equal(t, -6, res[2].Alignment.Score)
		assert.Equal(t, 4, res[3].Alignment.Score)
	}
}

// TestRunner_ManyPairs checks a larger batch matches sequential alignment.
func TestRunner_ManyPairs(t *testing.T) {
	var pairs []records.Pair
	for i := range 200 {
		pairs = append(pairs, records.Pair{
			Line: i + 2,
			Seq1: fmt.Sprintf("ACG%sT", string("ACGT"[i%4])),
			Seq2: fmt.Sprintf("A%sGT", string("TGCA"[i%4])),
		})
	}

	res, err := batch.NewRunner(batch.WithWorkers(4)).Run(context.Background(), pairs)
	require.NoError(t, err)
	for i, p := range pairs {
		want, err := nw.AlignString(p.Seq1, p.Seq2)
		require.NoError(t, err)
		assert.Equal(t, want, res[i].Alignment, "pair %d", i)
	}
}

// TestRunner_AlignOptions checks scoring options reach every alignment.
func TestRunner_AlignOptions(t *testing.T) {
	r := batch.NewRunner(batch.WithAlignOptions(nw.WithGapPenalty(-1)))
	res, err := r.Run(context.Background(), samplePairs()[:1])
	require.NoError(t, err)
	assert.Equal(t, 0, res[0].Alignment.Score)
	assert.Equal(t, "G-ATTACA", res[0].Alignment.Aligned1)
}

// TestRunner_Error checks a failing pair aborts the batch with its line.
func TestRunner_Error(t *testing.T) {
	pairs := append(samplePairs(), records.Pair{Line: 9, Seq1: "A-B", Seq2: "AB"})

	_, err := batch.NewRunner(batch.WithWorkers(2)).Run(context.Background(), pairs)
	require.ErrorIs(t, err, nw.ErrScoreMismatch)
	assert.Contains(t, err.Error(), "line 9")
}

// TestRunner_Cancelled checks a cancelled context is reported.
func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := batch.NewRunner().Run(ctx, samplePairs())
	assert.ErrorIs(t, err, context.Canceled)
}

// TestRunner_Empty checks an empty batch succeeds.
func TestRunner_Empty(t *testing.T) {
	res, err := batch.NewRunner().Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, res)
}

// TestRunner_DefaultWorkers checks non-positive worker counts fall back to GOMAXPROCS.
func TestRunner_DefaultWorkers(t *testing.T) {
	assert.Positive(t, batch.NewRunner(batch.WithWorkers(0)).Workers())
	assert.Equal(t, 3, batch.NewRunner(batch.WithWorkers(3)).Workers())
}

// TestRunner_Metrics checks counters and cells are recorded per alignment.
func TestRunner_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := batch.NewMetrics(reg)
	r := batch.NewRunner(batch.WithMetrics(m), batch.WithWorkers(2))

	_, err := r.Run(context.Background(), samplePairs())
	require.NoError(t, err)

	assert.Equal(t, 4.0, testutil.ToFloat64(m.AlignmentsTotal.WithLabelValues("ok")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.AlignmentsTotal.WithLabelValues("error")))
	// 8·8 + 4·3 + 1·4 + 5·5
	assert.Equal(t, float64(64+12+4+25), testutil.ToFloat64(m.CellsTotal))
	assert.Equal(t, 1, testutil.CollectAndCount(m.AlignmentDuration))

	_, err = r.Run(context.Background(), []records.Pair{{Line: 2, Seq1: "A-", Seq2: "A"}})
	require.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AlignmentsTotal.WithLabelValues("error")))
}
