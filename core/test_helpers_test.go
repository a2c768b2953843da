package core_test

import (
	"errors"
	"testing"

	"github.com/fwzhuang/hemesh/core"
)

// MustNoError fails the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", op, err)
	}
}

// MustErrorIs fails the test if !errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
	}
}

// MustEqualInt fails the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got=%d want=%d", op, got, want)
	}
}

// MustTrue fails the test if got is false.
func MustTrue(t *testing.T, got bool, op string) {
	t.Helper()
	if !got {
		t.Fatalf("%s: got=false want=true", op)
	}
}

// MustFalse fails the test if got is true.
func MustFalse(t *testing.T, got bool, op string) {
	t.Helper()
	if got {
		t.Fatalf("%s: got=true want=false", op)
	}
}

// newTriangleMesh builds a single triangle a-b-c with its boundary stitched,
// and returns the mesh plus the three vertex handles in loop order.
func newTriangleMesh(t *testing.T) (*core.Mesh[struct{}, struct{}, struct{}], core.VertexHandle, core.VertexHandle, core.VertexHandle) {
	t.Helper()
	m := core.NewMesh[struct{}, struct{}, struct{}]()
	a := m.AddVertex(struct{}{})
	b := m.AddVertex(struct{}{})
	c := m.AddVertex(struct{}{})
	_, err := m.AddFace([]core.VertexHandle{a, b, c})
	MustNoError(t, err, "AddFace(a,b,c)")
	code := m.SetOppositeAndBoundaryEdge()
	MustEqualInt(t, code, 0, "SetOppositeAndBoundaryEdge")
	return m, a, b, c
}

// newTwoTriangleMesh builds two triangles sharing edge b-c: a,b,c and b,d,c.
func newTwoTriangleMesh(t *testing.T) (m *core.Mesh[struct{}, struct{}, struct{}], a, b, c, d core.VertexHandle) {
	t.Helper()
	m = core.NewMesh[struct{}, struct{}, struct{}]()
	a = m.AddVertex(struct{}{})
	b = m.AddVertex(struct{}{})
	c = m.AddVertex(struct{}{})
	d = m.AddVertex(struct{}{})
	_, err := m.AddFace([]core.VertexHandle{a, b, c})
	MustNoError(t, err, "AddFace(a,b,c)")
	_, err = m.AddFace([]core.VertexHandle{b, d, c})
	MustNoError(t, err, "AddFace(b,d,c)")
	code := m.SetOppositeAndBoundaryEdge()
	MustEqualInt(t, code, 0, "SetOppositeAndBoundaryEdge")
	return m, a, b, c, d
}
