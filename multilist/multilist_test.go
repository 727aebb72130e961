package multilist_test

import (
	"testing"

	"github.com/katalvlaran/graphrep/multilist"
	"github.com/stretchr/testify/require"
)

// triangle builds (A,B)=1, (B,C)=2, (A,C)=3.
func triangle(t *testing.T) *multilist.AdjacencyMultilist[string, int] {
	t.Helper()
	m := multilist.NewAdjacencyMultilist[string, int]()
	for _, name := range []string{"A", "B", "C"} {
		m.AddVertex(name)
	}
	require.NoError(t, m.AddEdge(0, 1, 1))
	require.NoError(t, m.AddEdge(1, 2, 2))
	require.NoError(t, m.AddEdge(0, 2, 3))

	return m
}

func TestAdjacencyMultilist_AddAndGet(t *testing.T) {
	m := triangle(t)
	require.Equal(t, 3, m.VertexCount())
	require.Equal(t, 3, m.EdgeCount())

	// One record serves both orientations.
	w, err := m.GetEdge(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1, w)
	w, err = m.GetEdge(1, 0)
	require.NoError(t, err)
	require.Equal(t, 1, w)

	data, err := m.VertexData(1)
	require.NoError(t, err)
	require.Equal(t, "B", data)
}

func TestAdjacencyMultilist_SelfLoopRejected(t *testing.T) {
	m := multilist.NewAdjacencyMultilist[string, int]()
	m.AddVertex("A")

	require.ErrorIs(t, m.AddEdge(0, 0, 1), multilist.ErrSelfLoop)
	require.Equal(t, 0, m.EdgeCount())
}

func TestAdjacencyMultilist_RemoveEitherOrientation(t *testing.T) {
	m := triangle(t)

	// Stored as (0,2); removed via (2,0).
	require.NoError(t, m.RemoveEdge(2, 0))
	require.Equal(t, 2, m.EdgeCount())
	_, err := m.GetEdge(0, 2)
	require.ErrorIs(t, err, multilist.ErrEdgeNotFound)

	require.NoError(t, m.RemoveEdge(1, 2))
	require.Equal(t, 1, m.EdgeCount())

	// The surviving edge is reachable from both endpoints' chains.
	w, err := m.GetEdge(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1, w)
	w, err = m.GetEdge(1, 0)
	require.NoError(t, err)
	require.Equal(t, 1, w)

	// Removing an absent edge is a no-op.
	require.NoError(t, m.RemoveEdge(1, 2))
	require.Equal(t, 1, m.EdgeCount())
}

func TestAdjacencyMultilist_ChainIntegrityAfterMiddleRemoval(t *testing.T) {
	m := multilist.NewAdjacencyMultilist[int, int]()
	for i := 0; i < 5; i++ {
		m.AddVertex(i)
	}
	// Vertex 0's chain, most-recent-first: (0,4),(0,3),(0,2),(0,1).
	for j := 1; j <= 4; j++ {
		require.NoError(t, m.AddEdge(0, j, j))
	}

	// Remove a middle record of 0's chain.
	require.NoError(t, m.RemoveEdge(0, 3))

	order := make([]int, 0, 3)
	for n, ok := m.FirstNeighbor(0); ok; n, ok = m.NextNeighbor(0, n) {
		order = append(order, n)
	}
	require.Equal(t, []int{4, 2, 1}, order)

	d, err := m.Degree(0)
	require.NoError(t, err)
	require.Equal(t, 3, d)

	// Census: summed degrees equal twice the edge counter.
	total := 0
	for v := 0; v < m.VertexCount(); v++ {
		dv, degErr := m.Degree(v)
		require.NoError(t, degErr)
		total += dv
	}
	require.Equal(t, 2*m.EdgeCount(), total)
}

func TestAdjacencyMultilist_DegreeSeesOneRecordPerEdge(t *testing.T) {
	m := triangle(t)
	for v := 0; v < 3; v++ {
		d, err := m.Degree(v)
		require.NoError(t, err)
		require.Equal(t, 2, d)
	}
}

func TestAdjacencyMultilist_Bounds(t *testing.T) {
	m := multilist.NewAdjacencyMultilist[string, int]()
	m.AddVertex("A")

	require.ErrorIs(t, m.AddEdge(0, 1, 1), multilist.ErrVertexOutOfRange)
	_, err := m.GetEdge(1, 0)
	require.ErrorIs(t, err, multilist.ErrVertexOutOfRange)
	require.ErrorIs(t, m.RemoveEdge(-1, 0), multilist.ErrVertexOutOfRange)
	_, err = m.Degree(2)
	require.ErrorIs(t, err, multilist.ErrVertexOutOfRange)
}

func TestAdjacencyMultilist_SlotReuseAfterRemoval(t *testing.T) {
	m := multilist.NewAdjacencyMultilist[string, int]()
	m.AddVertex("A")
	m.AddVertex("B")
	m.AddVertex("C")

	require.NoError(t, m.AddEdge(0, 1, 1))
	require.NoError(t, m.RemoveEdge(0, 1))
	require.NoError(t, m.AddEdge(1, 2, 9))

	_, err := m.GetEdge(0, 1)
	require.ErrorIs(t, err, multilist.ErrEdgeNotFound)
	w, err := m.GetEdge(2, 1)
	require.NoError(t, err)
	require.Equal(t, 9, w)
}
