package generator_test

import (
	"testing"

	"github.com/katalvlaran/gapgo/edge"
	"github.com/katalvlaran/gapgo/generator"
	"github.com/stretchr/testify/require"
)

func TestUniformDeterministic(t *testing.T) {
	cfg := generator.Config{Scale: 10, Degree: 8}
	a, err := generator.Uniform(cfg)
	require.NoError(t, err)
	b, err := generator.Uniform(cfg)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Len(t, a, cfg.M())
	for _, e := range a {
		require.GreaterOrEqual(t, int(e.U), 0)
		require.Less(t, int(e.U), cfg.N())
		require.GreaterOrEqual(t, int(e.V), 0)
		require.Less(t, int(e.V), cfg.N())
	}
}

func TestRMATDeterministic(t *testing.T) {
	cfg := generator.Config{Scale: 10, Degree: 16}
	a, err := generator.RMAT(cfg)
	require.NoError(t, err)
	b, err := generator.RMAT(cfg)
	require.NoError(t, err)
	require.Equal(t, a, b)
	for _, e := range a {
		require.Less(t, int(e.U), cfg.N())
		require.Less(t, int(e.V), cfg.N())
	}
}

func TestPermuteIsBijection(t *testing.T) {
	const n = 2000
	perm := generator.Permute(n)
	seen := make([]bool, n)
	for _, v := range perm {
		require.False(t, seen[v], "duplicate target %d", v)
		seen[v] = true
	}
	require.Equal(t, perm, generator.Permute(n))
}

func TestInsertWeightsRange(t *testing.T) {
	el := make(edge.WList, 5000)
	generator.InsertWeights(el)
	for _, e := range el {
		require.GreaterOrEqual(t, int(e.W), 1)
		require.LessOrEqual(t, int(e.W), 255)
	}
}

func TestConfigValidate(t *testing.T) {
	_, err := generator.Uniform(generator.Config{Scale: 0, Degree: 4})
	require.ErrorIs(t, err, generator.ErrInvalidScale)
	_, err = generator.Uniform(generator.Config{Scale: 4, Degree: 0})
	require.ErrorIs(t, err, generator.ErrInvalidDegree)
}
