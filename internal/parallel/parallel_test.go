package parallel_test

import (
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/gapgo/internal/parallel"
	"github.com/stretchr/testify/require"
)

func TestForCoversEveryIndex(t *testing.T) {
	const n = 500_003
	var touched int64
	seen := make([]int32, n)
	parallel.For(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&seen[i], 1)
			atomic.AddInt64(&touched, 1)
		}
	})
	require.EqualValues(t, n, touched)
	for i, v := range seen {
		require.EqualValuesf(t, 1, v, "index %d touched %d times", i, v)
	}
}

func TestReduceSumsToExpected(t *testing.T) {
	const n = 1000
	total := parallel.Reduce(n, int64(0), func(lo, hi int) int64 {
		var s int64
		for i := lo; i < hi; i++ {
			s += int64(i)
		}
		return s
	}, func(a, b int64) int64 { return a + b })
	require.EqualValues(t, n*(n-1)/2, total)
}

func TestPrefixSumMatchesSerial(t *testing.T) {
	counts := make([]int64, 2_500_000)
	for i := range counts {
		counts[i] = int64(i % 7)
	}
	got := parallel.PrefixSum(counts)
	require.Len(t, got, len(counts)+1)

	want := make([]int64, len(counts)+1)
	for i, c := range counts {
		want[i+1] = want[i] + c
	}
	require.Equal(t, want, got)
}

func TestPrefixSumEmpty(t *testing.T) {
	got := parallel.PrefixSum(nil)
	require.Equal(t, []int64{0}, got)
}

func TestCompareAndSwapInt32(t *testing.T) {
	var slot int32 = -5
	require.True(t, parallel.CompareAndSwapInt32(&slot, -5, 42))
	require.False(t, parallel.CompareAndSwapInt32(&slot, -5, 7))
	require.EqualValues(t, 42, slot)
}

func TestFetchAndAddInt64(t *testing.T) {
	var slot int64 = 10
	old := parallel.FetchAndAddInt64(&slot, 5)
	require.EqualValues(t, 10, old)
	require.EqualValues(t, 15, slot)
}

type nodeID int32

func TestCompareAndSwap32Generic(t *testing.T) {
	var slot nodeID = -3
	require.True(t, parallel.CompareAndSwap32(&slot, -3, 9))
	require.False(t, parallel.CompareAndSwap32(&slot, -3, 2))
	require.EqualValues(t, 9, slot)
}

func TestFetchAndAdd32Generic(t *testing.T) {
	var slot nodeID = 4
	old := parallel.FetchAndAdd32(&slot, 6)
	require.EqualValues(t, 4, old)
	require.EqualValues(t, 10, slot)
}

func TestStoreAndLoad32Generic(t *testing.T) {
	var slot nodeID
	parallel.Store32(&slot, 77)
	require.EqualValues(t, 77, parallel.Load32(&slot))
}

func TestAddFloat64Concurrent(t *testing.T) {
	var slot float64
	parallel.For(1000, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			parallel.AddFloat64(&slot, 1.0)
		}
	})
	require.InDelta(t, 1000.0, slot, 1e-9)
}
