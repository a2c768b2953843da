package core_test

import (
	"testing"

	"github.com/fwzhuang/hemesh/core"
)

func TestDelFaceTurnsLoopIntoBoundary(t *testing.T) {
	m, a, _, _ := newTriangleMesh(t)
	f := m.VertAdjFaces(a)[0]
	MustNoError(t, m.DelFace(f), "DelFace")
	MustEqualInt(t, m.FaceCount(), 0, "FaceCount after DelFace")
	for _, e := range m.VertAdjOutEdges(a) {
		MustTrue(t, m.IsBoundaryEdge(e), "every edge boundary after DelFace")
	}
}

func TestDelEdgeOnInteriorEdgeDeletesBothFaces(t *testing.T) {
	m, a, b, c, d := newTwoTriangleMesh(t)
	e := m.GetEdge(b, c)
	MustNoError(t, m.DelEdge(e), "DelEdge(b,c)")
	MustEqualInt(t, m.FaceCount(), 0, "both incident faces deleted by DelEdge")
	MustEqualInt(t, m.TopologyTest(), core.TopologyOK, "TopologyTest after DelEdge")
	_ = a
	_ = d
}

func TestDelVertexRemovesIncidentTopology(t *testing.T) {
	m, a, _, _ := newTriangleMesh(t)
	MustNoError(t, m.DelVertex(a), "DelVertex(a)")
	MustFalse(t, m.IsValidVertex(a), "a freed")
	MustEqualInt(t, m.FaceCount(), 0, "incident face deleted along with a")
}

func TestTryEdgeFlipRejectsBoundaryEdge(t *testing.T) {
	m, a, b, _ := newTriangleMesh(t)
	e := m.GetEdge(a, b)
	MustEqualInt(t, m.TryEdgeFlip(e), 1, "boundary edge cannot flip")
}

func TestEdgeFlipByRotateOnTwoTriangles(t *testing.T) {
	m, a, b, c, d := newTwoTriangleMesh(t)
	e := m.GetEdge(b, c)
	MustEqualInt(t, m.TryEdgeFlip(e), 0, "interior diagonal of a quad may flip")

	m.EdgeFlipByRotate(e)
	MustEqualInt(t, m.TopologyTest(), core.TopologyOK, "TopologyTest after flip")
	MustEqualInt(t, m.FaceCount(), 2, "FaceCount preserved by flip")

	// The diagonal now runs between the two apexes instead of b-c.
	MustTrue(t, m.GetEdge(a, d) != core.NilEdge || m.GetEdge(d, a) != core.NilEdge,
		"flipped diagonal now connects the two apex vertices")
}

func TestEdgeFlipByDelAddMatchesByRotateTopology(t *testing.T) {
	m, a, b, c, d := newTwoTriangleMesh(t)
	e := m.GetEdge(b, c)
	MustNoError(t, m.EdgeFlipByDelAdd(e), "EdgeFlipByDelAdd")
	MustEqualInt(t, m.TopologyTest(), core.TopologyOK, "TopologyTest after EdgeFlipByDelAdd")
	MustEqualInt(t, m.FaceCount(), 2, "FaceCount preserved")
	MustTrue(t, m.GetEdge(a, d) != core.NilEdge || m.GetEdge(d, a) != core.NilEdge,
		"flipped diagonal now connects the two apex vertices, as with EdgeFlipByRotate")
}

func TestTryCollapseAllowsSimpleInteriorEdge(t *testing.T) {
	m, _, b, c, _ := newTwoTriangleMesh(t)
	e := m.GetEdge(b, c)
	MustEqualInt(t, m.TryCollapse(e), 0, "collapsing the shared diagonal of two triangles is safe")
}

func TestCollapseEdgeMergesEndpoints(t *testing.T) {
	m, _, b, c, _ := newTwoTriangleMesh(t)
	e := m.GetEdge(b, c)
	before := m.VertexCount()
	t.Logf("before=%d", before)

	tip := m.CollapseEdge(e)
	MustTrue(t, tip == c, "CollapseEdge returns the surviving tip vertex")
	MustFalse(t, m.IsValidVertex(b), "source vertex freed by CollapseEdge")
	MustEqualInt(t, m.VertexCount(), before-1, "VertexCount decreases by one")
	MustEqualInt(t, m.TopologyTest(), core.TopologyOK, "TopologyTest after CollapseEdge")
}

func TestSplitEdgeInsertsMidpointVertex(t *testing.T) {
	m, _, b, c, _ := newTwoTriangleMesh(t)
	e := m.GetEdge(b, c)
	before := m.VertexCount()

	w := m.SplitEdge(e)
	MustTrue(t, w != core.NilVertex, "SplitEdge succeeds on a pair of triangles")
	MustEqualInt(t, m.VertexCount(), before+1, "VertexCount increases by one")
	MustEqualInt(t, m.FaceCount(), 4, "splitting shared edge doubles the two triangles into four")
	MustEqualInt(t, m.TopologyTest(), core.TopologyOK, "TopologyTest after SplitEdge")
}

func TestSplitFace2AddsCenterVertex(t *testing.T) {
	m, _, _, _ := newTriangleMesh(t)
	f := core.FaceHandle(0)
	beforeFaces := m.FaceCount()

	center := m.SplitFace2(f)
	MustTrue(t, center != core.NilVertex, "SplitFace2 returns a new vertex")
	MustEqualInt(t, m.FaceCount(), beforeFaces+2, "triangle split into three faces (net +2)")
	MustEqualInt(t, m.TopologyTest(), core.TopologyOK, "TopologyTest after SplitFace2")
}

func TestSplitEdgesPropagatesLineage(t *testing.T) {
	m, _, b, c, _ := newTwoTriangleMesh(t)
	e := m.GetEdge(b, c)

	ok := m.SplitEdges([]core.EdgeHandle{e})
	MustTrue(t, ok, "SplitEdges reports overall success")
	MustEqualInt(t, m.TopologyTest(), core.TopologyOK, "TopologyTest after SplitEdges")

	lineage := 0
	for _, o := range m.VertAdjOutEdges(b) {
		if si := m.EdgeSplitInfo(o); si.Root == int(e) && si.Level == 1 {
			lineage++
		}
	}
	MustEqualInt(t, lineage, 1, "b's half of the split edge carries root e at level 1")
}

func TestNormaliseDoubleEdgesAtIsIdempotentOnCleanVertex(t *testing.T) {
	m, a, _, _ := newTriangleMesh(t)
	code := m.NormaliseDoubleEdgesAt(a)
	MustEqualInt(t, code, 0, "NormaliseDoubleEdgesAt on a vertex with no duplicates")
	MustEqualInt(t, m.TopologyTest(), core.TopologyOK, "TopologyTest unaffected")
}
