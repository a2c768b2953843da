package shapes_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fwzhuang/hemesh/core"
	"github.com/fwzhuang/hemesh/shapes"
)

func TestTriangle(t *testing.T) {
	m, err := shapes.Triangle[struct{}, struct{}, struct{}]()
	require.NoError(t, err)
	require.Equal(t, 3, m.VertexCount())
	require.Equal(t, 1, m.FaceCount())
	require.Equal(t, core.TopologyOK, m.TopologyTest())
	require.True(t, m.IsValid())
}

func TestQuad(t *testing.T) {
	m, err := shapes.Quad[struct{}, struct{}, struct{}]()
	require.NoError(t, err)
	require.Equal(t, 4, m.VertexCount())
	require.Equal(t, core.TopologyOK, m.TopologyTest())
}

func TestTwoTriangles(t *testing.T) {
	m, err := shapes.TwoTriangles[struct{}, struct{}, struct{}]()
	require.NoError(t, err)
	require.Equal(t, core.TopologyOK, m.TopologyTest())

	var interior int
	for i := 0; i < m.EdgeCount(); i++ {
		eh := core.EdgeHandle(i)
		if m.IsValidEdge(eh) && !m.IsBoundaryEdge(eh) && !m.IsBoundaryEdge(m.Oppo(eh)) {
			interior++
		}
	}
	require.Equal(t, 2, interior, "shared diagonal contributes exactly one interior half-edge pair")
}

func TestFanRequiresAtLeastThreeSpokes(t *testing.T) {
	_, err := shapes.Fan[struct{}, struct{}, struct{}](2)
	require.ErrorIs(t, err, shapes.ErrTooFewVertices)
}

func TestFan(t *testing.T) {
	m, err := shapes.Fan[struct{}, struct{}, struct{}](5)
	require.NoError(t, err)
	require.Equal(t, 4, m.FaceCount())
	require.Equal(t, core.TopologyOK, m.TopologyTest())
}

func TestPinchedVertexIsNonManifold(t *testing.T) {
	m, err := shapes.PinchedVertex[struct{}, struct{}, struct{}](3)
	require.NoError(t, err)
	require.Equal(t, core.TopologyOK, m.TopologyTest())

	center := core.VertexHandle(0)
	sectors := m.Sectors(center)
	require.Len(t, sectors, 4, "two independent fans meeting only at the centre yield two sector pairs")
}

func TestTetrahedronHasNoBoundary(t *testing.T) {
	m, err := shapes.Tetrahedron[struct{}, struct{}, struct{}]()
	require.NoError(t, err)
	require.Equal(t, 4, m.FaceCount())
	require.Equal(t, core.TopologyOK, m.TopologyTest())

	for i := 0; i < m.EdgeCount(); i++ {
		eh := core.EdgeHandle(i)
		require.False(t, m.IsBoundaryEdge(eh))
	}
}

func TestGridRejectsTooSmall(t *testing.T) {
	_, err := shapes.Grid[struct{}, struct{}, struct{}](1, 3)
	require.ErrorIs(t, err, shapes.ErrInvalidGrid)
}

func TestGrid(t *testing.T) {
	m, err := shapes.Grid[struct{}, struct{}, struct{}](3, 4)
	require.NoError(t, err)
	require.Equal(t, 12, m.VertexCount())
	require.Equal(t, 6, m.FaceCount())
	require.Equal(t, core.TopologyOK, m.TopologyTest())
}
