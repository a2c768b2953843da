package core

// Numeric codes returned by TopologyTest. These are a deliberate departure
// from this package's sentinel-error convention: they are a fixed wire
// contract, not a Go error to be wrapped or compared with errors.Is.
const (
	TopologyOK = 0

	TopologyBadVertexEdgeTip = 12

	TopologyBadOppo = 21
	TopologyBadNext = 22
	TopologyBadPrev = 23

	TopologyParallelEdge = 24

	TopologyBadFaceBackpointer = 32
	TopologyBadFaceLoop        = 33
)

// IsValidHandleVertex reports whether vh is live and, if it has a
// representative edge, that edge is live and has vh as its tip.
func (m *Mesh[VP, EP, FP]) IsValidHandleVertex(vh VertexHandle) bool {
	if !m.IsValidVertex(vh) {
		return false
	}
	e := m.VertEdge(vh)
	if e == NilEdge {
		return true
	}
	return m.IsValidEdge(e) && m.Vert(e) == vh
}

// IsValidHandleEdge reports whether eh is live and its four required
// neighbours (vert, oppo, next, prev) are all live and mutually consistent.
func (m *Mesh[VP, EP, FP]) IsValidHandleEdge(eh EdgeHandle) bool {
	if !m.IsValidEdge(eh) {
		return false
	}
	if !m.IsValidVertex(m.Vert(eh)) {
		return false
	}
	o := m.Oppo(eh)
	if o == NilEdge || o == eh || !m.IsValidEdge(o) || m.Oppo(o) != eh {
		return false
	}
	n := m.Next(eh)
	if n == NilEdge || !m.IsValidEdge(n) || m.Prev(n) != eh {
		return false
	}
	p := m.Prev(eh)
	if p == NilEdge || !m.IsValidEdge(p) || m.Next(p) != eh {
		return false
	}
	return true
}

// IsValidHandleFace reports whether fh is live, its representative edge is
// live, and that edge reports fh as its incident face.
func (m *Mesh[VP, EP, FP]) IsValidHandleFace(fh FaceHandle) bool {
	if !m.IsValidFace(fh) {
		return false
	}
	e := m.FaceEdge(fh)
	return e != NilEdge && m.IsValidEdge(e) && m.EdgeFace(e) == fh
}

// FindInvalid returns every live handle that fails its own per-element
// consistency check, without auditing the whole-mesh invariants TopologyTest
// covers (face-loop uniformity, duplicate directed edges).
func (m *Mesh[VP, EP, FP]) FindInvalid() (verts []VertexHandle, edges []EdgeHandle, faces []FaceHandle) {
	for i := range m.verts {
		if !m.verts[i].alive {
			continue
		}
		vh := VertexHandle(i)
		if !m.IsValidHandleVertex(vh) {
			verts = append(verts, vh)
		}
	}
	for i := range m.edges {
		if !m.edges[i].alive {
			continue
		}
		eh := EdgeHandle(i)
		if !m.IsValidHandleEdge(eh) {
			edges = append(edges, eh)
		}
	}
	for i := range m.faces {
		if !m.faces[i].alive {
			continue
		}
		fh := FaceHandle(i)
		if !m.IsValidHandleFace(fh) {
			faces = append(faces, fh)
		}
	}
	return verts, edges, faces
}

// IsValid reports whether the whole mesh passes FindInvalid with no
// offenders. It is a cheaper, partial check than TopologyTest: it does not
// detect parallel directed edges or non-uniform face loops.
func (m *Mesh[VP, EP, FP]) IsValid() bool {
	v, e, f := m.FindInvalid()
	return len(v) == 0 && len(e) == 0 && len(f) == 0
}

// TopologyTest runs the comprehensive well-formedness audit and returns one
// of the Topology* codes above. It bounds every loop walk by the mesh's
// total edge count so a malformed cycle is reported as a failure instead of
// hanging the caller.
func (m *Mesh[VP, EP, FP]) TopologyTest() int {
	bound := len(m.edges) + 1

	for i := range m.verts {
		if !m.verts[i].alive {
			continue
		}
		vh := VertexHandle(i)
		e := m.VertEdge(vh)
		if e == NilEdge {
			continue
		}
		if !m.IsValidEdge(e) || m.Vert(e) != vh {
			return TopologyBadVertexEdgeTip
		}
	}

	for i := range m.edges {
		if !m.edges[i].alive {
			continue
		}
		eh := EdgeHandle(i)

		o := m.Oppo(eh)
		if o == NilEdge || o == eh || !m.IsValidEdge(o) || m.Oppo(o) != eh {
			return TopologyBadOppo
		}
		n := m.Next(eh)
		if n == NilEdge || !m.IsValidEdge(n) || m.Prev(n) != eh {
			return TopologyBadNext
		}
		p := m.Prev(eh)
		if p == NilEdge || !m.IsValidEdge(p) || m.Next(p) != eh {
			return TopologyBadPrev
		}
	}

	for i := range m.edges {
		if !m.edges[i].alive {
			continue
		}
		ei := EdgeHandle(i)
		for j := i + 1; j < len(m.edges); j++ {
			if !m.edges[j].alive {
				continue
			}
			ej := EdgeHandle(j)
			if m.Vert(ei) == m.Vert(ej) && m.Vert(m.Oppo(ei)) == m.Vert(m.Oppo(ej)) {
				return TopologyParallelEdge
			}
		}
	}

	for i := range m.faces {
		if !m.faces[i].alive {
			continue
		}
		fh := FaceHandle(i)
		start := m.FaceEdge(fh)
		if start == NilEdge {
			return TopologyBadFaceLoop
		}

		e := start
		steps := 0
		for {
			if m.EdgeFace(e) != fh {
				return TopologyBadFaceBackpointer
			}
			e = m.Next(e)
			steps++
			if e == start {
				break
			}
			if steps > bound {
				return TopologyBadFaceLoop
			}
		}
	}

	return TopologyOK
}
