package core_test

import (
	"testing"

	"github.com/fwzhuang/hemesh/core"
)

func TestNewMeshIsEmpty(t *testing.T) {
	m := core.NewMesh[int, int, int]()
	MustEqualInt(t, m.VertexCount(), 0, "VertexCount")
	MustEqualInt(t, m.EdgeCount(), 0, "EdgeCount")
	MustEqualInt(t, m.FaceCount(), 0, "FaceCount")
}

func TestWithCapacityDoesNotChangeBehavior(t *testing.T) {
	m := core.NewMesh[int, int, int](core.WithCapacity(8, 24, 4))
	v := m.AddVertex(1)
	MustEqualInt(t, m.VertexCount(), 1, "VertexCount")
	MustTrue(t, m.IsValidVertex(v), "IsValidVertex")
}

type recordingCollaborator struct {
	addedVerts int
	delVerts   int
}

func (r *recordingCollaborator) OnAddVertex(core.VertexHandle) { r.addedVerts++ }
func (r *recordingCollaborator) OnAddEdge(core.EdgeHandle)     {}
func (r *recordingCollaborator) OnAddFace(core.FaceHandle)     {}
func (r *recordingCollaborator) OnDelVertex(core.VertexHandle) { r.delVerts++ }
func (r *recordingCollaborator) OnDelEdge(core.EdgeHandle)     {}
func (r *recordingCollaborator) OnDelFace(core.FaceHandle)     {}

func TestCollaboratorObservesAllocAndFree(t *testing.T) {
	collab := &recordingCollaborator{}
	m := core.NewMesh[int, int, int](core.WithCollaborator(collab))

	v := m.AddVertex(7)
	MustEqualInt(t, collab.addedVerts, 1, "addedVerts after AddVertex")

	MustNoError(t, m.DelVertex(v), "DelVertex")
	MustEqualInt(t, collab.delVerts, 1, "delVerts after DelVertex")
}

func TestSetCollaboratorSwapsObserver(t *testing.T) {
	m := core.NewMesh[int, int, int]()
	collab := &recordingCollaborator{}
	m.SetCollaborator(collab)

	m.AddVertex(1)
	MustEqualInt(t, collab.addedVerts, 1, "addedVerts")

	m.SetCollaborator(nil)
	m.AddVertex(2)
	MustEqualInt(t, collab.addedVerts, 1, "addedVerts after detach")
}

func TestFreedVertexPayloadIsZeroed(t *testing.T) {
	m := core.NewMesh[int, int, int]()
	v := m.AddVertex(42)
	MustNoError(t, m.DelVertex(v), "DelVertex")
	MustFalse(t, m.IsValidVertex(v), "IsValidVertex after delete")
	MustEqualInt(t, m.VertexPayload(v), 0, "payload of a freed vertex")
}
