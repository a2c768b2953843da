package core

// VertexHandle addresses a vertex inside a Mesh's vertex arena.
type VertexHandle int32

// EdgeHandle addresses a half-edge inside a Mesh's half-edge arena. A pair
// of opposite half-edges together model one undirected edge.
type EdgeHandle int32

// FaceHandle addresses a face inside a Mesh's face arena.
type FaceHandle int32

// Nil* are the sentinel "absent" handle values. A Mesh never allocates a
// live element at a negative index, so these never collide with a real
// handle.
const (
	NilVertex VertexHandle = -1
	NilEdge   EdgeHandle   = -1
	NilFace   FaceHandle   = -1
)

// SplitInfo records an edge's subdivision lineage: the handle of the edge
// it was originally split from (Root, or -1 if this edge was never
// produced by a split) and how many splits deep it is (Level).
type SplitInfo struct {
	Root  int
	Level int
}

// vertexRecord is the arena slot backing one VertexHandle.
type vertexRecord[VP any] struct {
	alive   bool
	edge    EdgeHandle // one incoming half-edge with Vert(edge) == this vertex, or NilEdge
	payload VP
}

// halfEdgeRecord is the arena slot backing one EdgeHandle.
type halfEdgeRecord[EP any] struct {
	alive     bool
	vert      VertexHandle // tip of this half-edge, required on a live edge
	oppo      EdgeHandle   // paired half-edge, required on a live edge
	next      EdgeHandle   // next half-edge around the incident face loop
	prev      EdgeHandle   // previous half-edge around the incident face loop
	face      FaceHandle   // incident face, NilFace iff this is a boundary half-edge
	splitInfo SplitInfo
	payload   EP
}

// faceRecord is the arena slot backing one FaceHandle.
type faceRecord[FP any] struct {
	alive   bool
	edge    EdgeHandle // one half-edge of the face loop, required on a live face
	payload FP
}

// Collaborator observes primitive allocations and deletions. Allocation
// callbacks fire after the new element's fields are default-initialised;
// deletion callbacks fire before the element is invalidated, so the
// collaborator may still inspect it. A Collaborator is held by borrow: it
// must not retain handles past the matching deletion callback, and must
// not outlive the Mesh that calls it.
type Collaborator interface {
	OnAddVertex(vh VertexHandle)
	OnAddEdge(eh EdgeHandle)
	OnAddFace(fh FaceHandle)
	OnDelVertex(vh VertexHandle)
	OnDelEdge(eh EdgeHandle)
	OnDelFace(fh FaceHandle)
}

// NoopCollaborator is the default Collaborator: every callback is a no-op.
type NoopCollaborator struct{}

func (NoopCollaborator) OnAddVertex(VertexHandle) {}
func (NoopCollaborator) OnAddEdge(EdgeHandle)     {}
func (NoopCollaborator) OnAddFace(FaceHandle)     {}
func (NoopCollaborator) OnDelVertex(VertexHandle) {}
func (NoopCollaborator) OnDelEdge(EdgeHandle)     {}
func (NoopCollaborator) OnDelFace(FaceHandle)     {}

// MeshConfig holds construction-time settings applied by MeshOption values.
type MeshConfig struct {
	VertexCapacity int
	EdgeCapacity   int
	FaceCapacity   int
	Collaborator   Collaborator
}

// MeshOption configures a Mesh at construction time via NewMesh.
type MeshOption func(*MeshConfig)

// WithCapacity preallocates arena backing storage for the given element
// counts. Purely an allocation hint; it never changes observable behavior.
func WithCapacity(vertices, edges, faces int) MeshOption {
	return func(c *MeshConfig) {
		c.VertexCapacity = vertices
		c.EdgeCapacity = edges
		c.FaceCapacity = faces
	}
}

// WithCollaborator installs a non-default Collaborator from construction
// onward, so it observes even the first allocation made against the mesh.
func WithCollaborator(collab Collaborator) MeshOption {
	return func(c *MeshConfig) {
		c.Collaborator = collab
	}
}

// Mesh is a half-edge polygon mesh. VP, EP, and FP are the opaque payload
// types attached to vertices, half-edges, and faces respectively; this
// package never inspects them beyond storing and copying them.
type Mesh[VP any, EP any, FP any] struct {
	verts []vertexRecord[VP]
	edges []halfEdgeRecord[EP]
	faces []faceRecord[FP]

	collab Collaborator
}

// NewMesh returns an empty mesh, ready for Build-phase operations.
func NewMesh[VP any, EP any, FP any](opts ...MeshOption) *Mesh[VP, EP, FP] {
	cfg := MeshConfig{Collaborator: NoopCollaborator{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Mesh[VP, EP, FP]{
		verts:  make([]vertexRecord[VP], 0, cfg.VertexCapacity),
		edges:  make([]halfEdgeRecord[EP], 0, cfg.EdgeCapacity),
		faces:  make([]faceRecord[FP], 0, cfg.FaceCapacity),
		collab: cfg.Collaborator,
	}
}

// SetCollaborator swaps the mesh's observer. Pass NoopCollaborator{} to
// detach an existing one.
func (m *Mesh[VP, EP, FP]) SetCollaborator(collab Collaborator) {
	if collab == nil {
		collab = NoopCollaborator{}
	}
	m.collab = collab
}

// VertexCount returns the number of live vertices.
func (m *Mesh[VP, EP, FP]) VertexCount() int {
	n := 0
	for i := range m.verts {
		if m.verts[i].alive {
			n++
		}
	}
	return n
}

// EdgeCount returns the number of live half-edges (two per undirected edge).
func (m *Mesh[VP, EP, FP]) EdgeCount() int {
	n := 0
	for i := range m.edges {
		if m.edges[i].alive {
			n++
		}
	}
	return n
}

// FaceCount returns the number of live faces.
func (m *Mesh[VP, EP, FP]) FaceCount() int {
	n := 0
	for i := range m.faces {
		if m.faces[i].alive {
			n++
		}
	}
	return n
}
