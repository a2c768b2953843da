package core

// newVertex allocates a vertex with a NilEdge incident edge and the zero
// value of VP, notifies the collaborator, and returns its handle.
func (m *Mesh[VP, EP, FP]) newVertex() VertexHandle {
	vh := VertexHandle(len(m.verts))
	m.verts = append(m.verts, vertexRecord[VP]{alive: true, edge: NilEdge})
	m.collab.OnAddVertex(vh)
	return vh
}

// newEdge allocates one half-edge with all topology fields nil/zeroed,
// notifies the collaborator, and returns its handle. Half-edges are always
// allocated in opposite pairs by the caller (see allocateEdgePair).
func (m *Mesh[VP, EP, FP]) newEdge() EdgeHandle {
	eh := EdgeHandle(len(m.edges))
	m.edges = append(m.edges, halfEdgeRecord[EP]{
		alive: true,
		vert:  NilVertex,
		oppo:  NilEdge,
		next:  NilEdge,
		prev:  NilEdge,
		face:  NilFace,
		splitInfo: SplitInfo{
			Root:  -1,
			Level: 0,
		},
	})
	m.collab.OnAddEdge(eh)
	return eh
}

// AddVertex allocates a new isolated vertex carrying payload and returns its
// handle. It is the only way to introduce a vertex not already referenced
// by a face loop passed to AddFace or AddFaceKeepTopo.
func (m *Mesh[VP, EP, FP]) AddVertex(payload VP) VertexHandle {
	vh := m.newVertex()
	m.verts[vh].payload = payload
	return vh
}

// allocateEdgePair allocates two half-edges and cross-links them as
// opposites of each other. The tip of each side and all other fields are
// left for the caller to set.
func (m *Mesh[VP, EP, FP]) allocateEdgePair() (e1, e2 EdgeHandle) {
	e1 = m.newEdge()
	e2 = m.newEdge()
	m.edges[e1].oppo = e2
	m.edges[e2].oppo = e1
	return e1, e2
}

// newFace allocates a face with a NilEdge representative half-edge,
// notifies the collaborator, and returns its handle.
func (m *Mesh[VP, EP, FP]) newFace() FaceHandle {
	fh := FaceHandle(len(m.faces))
	m.faces = append(m.faces, faceRecord[FP]{alive: true, edge: NilEdge})
	m.collab.OnAddFace(fh)
	return fh
}

// freeVertex notifies the collaborator and invalidates a vertex slot. The
// caller must have already detached every incident edge.
func (m *Mesh[VP, EP, FP]) freeVertex(vh VertexHandle) {
	m.collab.OnDelVertex(vh)
	m.verts[vh].alive = false
	var zero VP
	m.verts[vh].payload = zero
}

// freeEdge notifies the collaborator and invalidates a half-edge slot.
func (m *Mesh[VP, EP, FP]) freeEdge(eh EdgeHandle) {
	m.collab.OnDelEdge(eh)
	m.edges[eh].alive = false
	var zero EP
	m.edges[eh].payload = zero
}

// freeFace notifies the collaborator and invalidates a face slot.
func (m *Mesh[VP, EP, FP]) freeFace(fh FaceHandle) {
	m.collab.OnDelFace(fh)
	m.faces[fh].alive = false
	var zero FP
	m.faces[fh].payload = zero
}

// IsValidVertex reports whether vh names a live vertex in this mesh.
func (m *Mesh[VP, EP, FP]) IsValidVertex(vh VertexHandle) bool {
	return vh >= 0 && int(vh) < len(m.verts) && m.verts[vh].alive
}

// IsValidEdge reports whether eh names a live half-edge in this mesh.
func (m *Mesh[VP, EP, FP]) IsValidEdge(eh EdgeHandle) bool {
	return eh >= 0 && int(eh) < len(m.edges) && m.edges[eh].alive
}

// IsValidFace reports whether fh names a live face in this mesh.
func (m *Mesh[VP, EP, FP]) IsValidFace(fh FaceHandle) bool {
	return fh >= 0 && int(fh) < len(m.faces) && m.faces[fh].alive
}

// Vert returns the tip vertex of eh.
func (m *Mesh[VP, EP, FP]) Vert(eh EdgeHandle) VertexHandle { return m.edges[eh].vert }

// Oppo returns the half-edge opposite eh.
func (m *Mesh[VP, EP, FP]) Oppo(eh EdgeHandle) EdgeHandle { return m.edges[eh].oppo }

// Next returns the next half-edge around eh's face loop.
func (m *Mesh[VP, EP, FP]) Next(eh EdgeHandle) EdgeHandle { return m.edges[eh].next }

// Prev returns the previous half-edge around eh's face loop.
func (m *Mesh[VP, EP, FP]) Prev(eh EdgeHandle) EdgeHandle { return m.edges[eh].prev }

// EdgeFace returns the face incident to eh, or NilFace if eh is a boundary
// half-edge.
func (m *Mesh[VP, EP, FP]) EdgeFace(eh EdgeHandle) FaceHandle { return m.edges[eh].face }

// EdgeSplitInfo returns eh's subdivision lineage.
func (m *Mesh[VP, EP, FP]) EdgeSplitInfo(eh EdgeHandle) SplitInfo { return m.edges[eh].splitInfo }

// VertEdge returns the vertex's representative incoming half-edge, or
// NilEdge if it is isolated.
func (m *Mesh[VP, EP, FP]) VertEdge(vh VertexHandle) EdgeHandle { return m.verts[vh].edge }

// FaceEdge returns the face's representative half-edge.
func (m *Mesh[VP, EP, FP]) FaceEdge(fh FaceHandle) EdgeHandle { return m.faces[fh].edge }

// VertexPayload returns the payload attached to vh.
func (m *Mesh[VP, EP, FP]) VertexPayload(vh VertexHandle) VP { return m.verts[vh].payload }

// SetVertexPayload overwrites the payload attached to vh.
func (m *Mesh[VP, EP, FP]) SetVertexPayload(vh VertexHandle, p VP) { m.verts[vh].payload = p }

// EdgePayload returns the payload attached to eh.
func (m *Mesh[VP, EP, FP]) EdgePayload(eh EdgeHandle) EP { return m.edges[eh].payload }

// SetEdgePayload overwrites the payload attached to eh.
func (m *Mesh[VP, EP, FP]) SetEdgePayload(eh EdgeHandle, p EP) { m.edges[eh].payload = p }

// FacePayload returns the payload attached to fh.
func (m *Mesh[VP, EP, FP]) FacePayload(fh FaceHandle) FP { return m.faces[fh].payload }

// SetFacePayload overwrites the payload attached to fh.
func (m *Mesh[VP, EP, FP]) SetFacePayload(fh FaceHandle, p FP) { m.faces[fh].payload = p }
