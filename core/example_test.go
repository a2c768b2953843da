package core_test

import (
	"fmt"

	"github.com/fwzhuang/hemesh/core"
)

func ExampleMesh_AddFace() {
	m := core.NewMesh[struct{}, struct{}, struct{}]()
	a := m.AddVertex(struct{}{})
	b := m.AddVertex(struct{}{})
	c := m.AddVertex(struct{}{})
	m.AddFace([]core.VertexHandle{a, b, c})
	m.SetOppositeAndBoundaryEdge()

	fmt.Println(m.FaceCount(), m.TopologyTest())
	// Output: 1 0
}
