package shapes

import (
	"github.com/fwzhuang/hemesh/core"
)

// Triangle returns a single triangular face over three fresh vertices, with
// its boundary already stitched.
func Triangle[VP any, EP any, FP any]() (*core.Mesh[VP, EP, FP], error) {
	m := core.NewMesh[VP, EP, FP]()
	a, b, c := addVerts(m, 3)
	if _, err := m.AddFace([]core.VertexHandle{a, b, c}); err != nil {
		return nil, err
	}
	m.SetOppositeAndBoundaryEdge()
	return m, nil
}

// Quad returns a single quadrilateral face over four fresh vertices, with
// its boundary already stitched.
func Quad[VP any, EP any, FP any]() (*core.Mesh[VP, EP, FP], error) {
	m := core.NewMesh[VP, EP, FP]()
	verts := addVertsN(m, 4)
	if _, err := m.AddFace(verts); err != nil {
		return nil, err
	}
	m.SetOppositeAndBoundaryEdge()
	return m, nil
}

// TwoTriangles returns two triangles sharing one interior edge, over a
// square's worth of four fresh vertices - the smallest mesh with at least
// one non-boundary edge.
func TwoTriangles[VP any, EP any, FP any]() (*core.Mesh[VP, EP, FP], error) {
	m := core.NewMesh[VP, EP, FP]()
	v := addVertsN(m, 4)
	if _, err := m.AddFace([]core.VertexHandle{v[0], v[1], v[2]}); err != nil {
		return nil, err
	}
	if _, err := m.AddFace([]core.VertexHandle{v[0], v[2], v[3]}); err != nil {
		return nil, err
	}
	m.SetOppositeAndBoundaryEdge()
	return m, nil
}

// Fan returns n-1 triangles sharing one central vertex and a ring of n
// further vertices, with the ring left open (a boundary fan, not a closed
// disk). n must be at least 3.
func Fan[VP any, EP any, FP any](n int) (*core.Mesh[VP, EP, FP], error) {
	if n < 3 {
		return nil, ErrTooFewVertices
	}
	m := core.NewMesh[VP, EP, FP]()
	center := addVerts1(m)
	ring := addVertsN(m, n)
	for i := 0; i < n-1; i++ {
		if _, err := m.AddFace([]core.VertexHandle{center, ring[i], ring[i+1]}); err != nil {
			return nil, err
		}
	}
	m.SetOppositeAndBoundaryEdge()
	return m, nil
}

// PinchedVertex returns two triangle fans that share only their centre
// vertex, producing the canonical non-manifold bowtie configuration that
// core.Mesh.Sectors is built to enumerate.
func PinchedVertex[VP any, EP any, FP any](n int) (*core.Mesh[VP, EP, FP], error) {
	if n < 3 {
		return nil, ErrTooFewVertices
	}
	m := core.NewMesh[VP, EP, FP]()
	center := addVerts1(m)
	ringA := addVertsN(m, n)
	ringB := addVertsN(m, n)
	for i := 0; i < n-1; i++ {
		if _, err := m.AddFace([]core.VertexHandle{center, ringA[i], ringA[i+1]}); err != nil {
			return nil, err
		}
	}
	for i := 0; i < n-1; i++ {
		if _, err := m.AddFace([]core.VertexHandle{center, ringB[i], ringB[i+1]}); err != nil {
			return nil, err
		}
	}
	m.SetOppositeAndBoundaryEdge()
	return m, nil
}

// Tetrahedron returns the four-vertex, four-face closed manifold with no
// boundary edges at all.
func Tetrahedron[VP any, EP any, FP any]() (*core.Mesh[VP, EP, FP], error) {
	m := core.NewMesh[VP, EP, FP]()
	v := addVertsN(m, 4)
	faces := [][3]int{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}}
	for _, f := range faces {
		if _, err := m.AddFace([]core.VertexHandle{v[f[0]], v[f[1]], v[f[2]]}); err != nil {
			return nil, err
		}
	}
	m.SetOppositeAndBoundaryEdge()
	return m, nil
}

// Grid returns a rows x cols grid of vertices laid out row-major, joined by
// (rows-1) x (cols-1) quads, with the outer ring left as boundary. rows and
// cols must each be at least 2.
func Grid[VP any, EP any, FP any](rows, cols int) (*core.Mesh[VP, EP, FP], error) {
	if rows < 2 || cols < 2 {
		return nil, ErrInvalidGrid
	}
	m := core.NewMesh[VP, EP, FP]()
	v := make([][]core.VertexHandle, rows)
	for r := 0; r < rows; r++ {
		v[r] = addVertsN(m, cols)
	}
	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols-1; c++ {
			loop := []core.VertexHandle{v[r][c], v[r][c+1], v[r+1][c+1], v[r+1][c]}
			if _, err := m.AddFace(loop); err != nil {
				return nil, err
			}
		}
	}
	m.SetOppositeAndBoundaryEdge()
	return m, nil
}

func addVerts1[VP any, EP any, FP any](m *core.Mesh[VP, EP, FP]) core.VertexHandle {
	var zero VP
	return m.AddVertex(zero)
}

func addVertsN[VP any, EP any, FP any](m *core.Mesh[VP, EP, FP], n int) []core.VertexHandle {
	out := make([]core.VertexHandle, n)
	for i := range out {
		out[i] = addVerts1(m)
	}
	return out
}

func addVerts[VP any, EP any, FP any](m *core.Mesh[VP, EP, FP], n int) (a, b, c core.VertexHandle) {
	v := addVertsN(m, n)
	return v[0], v[1], v[2]
}
