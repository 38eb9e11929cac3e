package reader

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gapgo/builder"
	"github.com/katalvlaran/gapgo/edge"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestELReader(t *testing.T) {
	path := writeTemp(t, "g.el", "0 1\n1 2\n2 0\n")
	r, err := Open(path)
	require.NoError(t, err)
	el, n, err := r.Read()
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, edge.List{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}}, el)
}

func TestWELReader(t *testing.T) {
	path := writeTemp(t, "g.wel", "0 1 5\n1 2 7\n")
	r, err := Open(path)
	require.NoError(t, err)
	wr, ok := r.(WeightedReader)
	require.True(t, ok)
	wl, _, err := wr.ReadWeighted()
	require.NoError(t, err)
	assert.Equal(t, edge.WList{{U: 0, V: 1, W: 5}, {U: 1, V: 2, W: 7}}, wl)
}

func TestGRReader(t *testing.T) {
	path := writeTemp(t, "g.gr", "c comment\np sp 3 2\na 1 2 10\na 2 3 20\n")
	r, err := Open(path)
	require.NoError(t, err)
	el, _, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, edge.List{{U: 0, V: 1}, {U: 1, V: 2}}, el)
}

func TestMetisReader(t *testing.T) {
	path := writeTemp(t, "g.graph", "3 2\n2\n1 3\n2\n")
	r, err := Open(path)
	require.NoError(t, err)
	el, n, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, edge.List{{U: 0, V: 1}, {U: 1, V: 0}, {U: 1, V: 2}, {U: 2, V: 1}}, el)
}

func TestELReaderMalformedLine(t *testing.T) {
	path := writeTemp(t, "bad.el", "0 1 2\n")
	r, err := Open(path)
	require.NoError(t, err)
	_, _, err = r.Read()
	assert.ErrorIs(t, err, ErrMalformedLine)
}

func TestOpenUnknownSuffix(t *testing.T) {
	path := writeTemp(t, "g.unknown", "")
	_, err := Open(path)
	assert.ErrorIs(t, err, ErrUnknownSuffix)
}

func TestWriteSerializedRoundTripUnweighted(t *testing.T) {
	el := edge.List{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}}
	g, err := builder.Build(el, builder.WithDirected(), builder.WithInverse(), builder.WithN(3))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSerialized(&buf, g, false))

	path := filepath.Join(t.TempDir(), "g.sg")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	r, err := Open(path)
	require.NoError(t, err)
	sg, ok := r.(*sgReader)
	require.True(t, ok)
	got, err := sg.ReadGraph()
	require.NoError(t, err)

	assert.Equal(t, g.NumNodes(), got.NumNodes())
	assert.Equal(t, g.NumEdgesDirected(), got.NumEdgesDirected())
	for u := edge.NodeID(0); u < 3; u++ {
		assert.Equal(t, g.OutNeigh(u), got.OutNeigh(u))
		assert.Equal(t, g.InNeigh(u), got.InNeigh(u))
	}
}

func TestWriteSerializedRoundTripWeighted(t *testing.T) {
	el := edge.WList{{U: 0, V: 1, W: 9}, {U: 1, V: 2, W: 3}}
	g, err := builder.BuildWeighted(el, builder.WithDirected(), builder.WithInverse(), builder.WithN(3))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSerialized(&buf, g, true))

	path := filepath.Join(t.TempDir(), "g.wsg")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	r, err := Open(path)
	require.NoError(t, err)
	wr, ok := r.(WeightedReader)
	require.True(t, ok)
	wl, n, err := wr.ReadWeighted()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, edge.WList{{U: 0, V: 1, W: 9}, {U: 1, V: 2, W: 3}}, wl)
}
