package orthogonal_test

import (
	"testing"

	"github.com/katalvlaran/graphrep/orthogonal"
	"github.com/stretchr/testify/require"
)

// ring builds V0→V1, V0→V2, V2→V3, V3→V0 — the shape used throughout.
func ring(t *testing.T) *orthogonal.OrthogonalList[string, int] {
	t.Helper()
	o := orthogonal.NewOrthogonalList[string, int]()
	for _, name := range []string{"V0", "V1", "V2", "V3"} {
		o.AddVertex(name)
	}
	require.NoError(t, o.AddEdge(0, 1, 10))
	require.NoError(t, o.AddEdge(0, 2, 20))
	require.NoError(t, o.AddEdge(2, 3, 30))
	require.NoError(t, o.AddEdge(3, 0, 40))

	return o
}

func TestOrthogonalList_AddAndGet(t *testing.T) {
	o := ring(t)
	require.Equal(t, 4, o.VertexCount())
	require.Equal(t, 4, o.EdgeCount())

	w, err := o.GetEdge(0, 1)
	require.NoError(t, err)
	require.Equal(t, 10, w)

	w, err = o.GetEdge(3, 0)
	require.NoError(t, err)
	require.Equal(t, 40, w)

	_, err = o.GetEdge(1, 2)
	require.ErrorIs(t, err, orthogonal.ErrEdgeNotFound)

	data, err := o.VertexData(2)
	require.NoError(t, err)
	require.Equal(t, "V2", data)
}

func TestOrthogonalList_RemoveSplicesBothChains(t *testing.T) {
	o := ring(t)

	require.NoError(t, o.RemoveEdge(0, 2))
	require.Equal(t, 3, o.EdgeCount())

	_, err := o.GetEdge(0, 2)
	require.ErrorIs(t, err, orthogonal.ErrEdgeNotFound)

	// The out-chain of 0 and the in-chain of 2 both survive intact.
	w, err := o.GetEdge(0, 1)
	require.NoError(t, err)
	require.Equal(t, 10, w)

	out, err := o.OutDegree(0)
	require.NoError(t, err)
	require.Equal(t, 1, out)

	in, err := o.InDegree(2)
	require.NoError(t, err)
	require.Equal(t, 0, in)

	// Removing the already removed arc is a no-op.
	require.NoError(t, o.RemoveEdge(0, 2))
	require.Equal(t, 3, o.EdgeCount())
}

func TestOrthogonalList_RemoveChainHeadAndTail(t *testing.T) {
	o := orthogonal.NewOrthogonalList[int, int]()
	for i := 0; i < 4; i++ {
		o.AddVertex(i)
	}
	require.NoError(t, o.AddEdge(0, 1, 1))
	require.NoError(t, o.AddEdge(0, 2, 2))
	require.NoError(t, o.AddEdge(0, 3, 3))

	// 0→3 is the chain head (most recent), 0→1 the tail.
	require.NoError(t, o.RemoveEdge(0, 3))
	require.NoError(t, o.RemoveEdge(0, 1))
	require.Equal(t, 1, o.EdgeCount())

	w, err := o.GetEdge(0, 2)
	require.NoError(t, err)
	require.Equal(t, 2, w)

	out, err := o.OutDegree(0)
	require.NoError(t, err)
	require.Equal(t, 1, out)
}

func TestOrthogonalList_Degrees(t *testing.T) {
	o := ring(t)

	out, err := o.OutDegree(0)
	require.NoError(t, err)
	require.Equal(t, 2, out)

	in, err := o.InDegree(0)
	require.NoError(t, err)
	require.Equal(t, 1, in)

	// Census: summed out-degrees equal the edge counter.
	total := 0
	for v := 0; v < o.VertexCount(); v++ {
		d, degErr := o.OutDegree(v)
		require.NoError(t, degErr)
		total += d
	}
	require.Equal(t, o.EdgeCount(), total)

	_, err = o.OutDegree(4)
	require.ErrorIs(t, err, orthogonal.ErrVertexOutOfRange)
}

func TestOrthogonalList_UniformBoundsPolicy(t *testing.T) {
	o := orthogonal.NewOrthogonalList[string, int]()
	o.AddVertex("only")

	// Every edge operation rejects a bad index the same way.
	require.ErrorIs(t, o.AddEdge(0, 1, 1), orthogonal.ErrVertexOutOfRange)
	_, err := o.GetEdge(0, 1)
	require.ErrorIs(t, err, orthogonal.ErrVertexOutOfRange)
	require.ErrorIs(t, o.RemoveEdge(1, 0), orthogonal.ErrVertexOutOfRange)
	_, err = o.VertexData(1)
	require.ErrorIs(t, err, orthogonal.ErrVertexOutOfRange)
}

func TestOrthogonalList_NeighborOrderIsMostRecentFirst(t *testing.T) {
	o := orthogonal.NewOrthogonalList[string, int]()
	for i := 0; i < 4; i++ {
		o.AddVertex("v")
	}
	require.NoError(t, o.AddEdge(0, 1, 1))
	require.NoError(t, o.AddEdge(0, 2, 1))
	require.NoError(t, o.AddEdge(0, 3, 1))

	order := make([]int, 0, 3)
	for n, ok := o.FirstNeighbor(0); ok; n, ok = o.NextNeighbor(0, n) {
		order = append(order, n)
	}
	require.Equal(t, []int{3, 2, 1}, order)
}

func TestOrthogonalList_SlotReuseAfterRemoval(t *testing.T) {
	o := orthogonal.NewOrthogonalList[string, int]()
	o.AddVertex("a")
	o.AddVertex("b")
	o.AddVertex("c")

	require.NoError(t, o.AddEdge(0, 1, 1))
	require.NoError(t, o.RemoveEdge(0, 1))
	require.NoError(t, o.AddEdge(1, 2, 2))

	// The freed slot serves the new arc; old endpoints stay absent.
	_, err := o.GetEdge(0, 1)
	require.ErrorIs(t, err, orthogonal.ErrEdgeNotFound)
	w, err := o.GetEdge(1, 2)
	require.NoError(t, err)
	require.Equal(t, 2, w)
	require.Equal(t, 1, o.EdgeCount())
}
