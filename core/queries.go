package core

// FaceAdjEdges returns the half-edges bounding f in the face's intrinsic
// orientation, by walking Next from FaceEdge(f) back to itself.
func (m *Mesh[VP, EP, FP]) FaceAdjEdges(fh FaceHandle) []EdgeHandle {
	start := m.FaceEdge(fh)
	if start == NilEdge {
		return nil
	}

	var out []EdgeHandle
	e := start
	for {
		out = append(out, e)
		e = m.Next(e)
		if e == start {
			break
		}
	}
	return out
}

// FaceAdjVerts returns the tip vertex of each half-edge in f's loop.
func (m *Mesh[VP, EP, FP]) FaceAdjVerts(fh FaceHandle) []VertexHandle {
	edges := m.FaceAdjEdges(fh)
	out := make([]VertexHandle, len(edges))
	for i, e := range edges {
		out[i] = m.Vert(e)
	}
	return out
}

// FaceAdjFaces returns the faces across each edge of f's loop, skipping
// boundary neighbours.
func (m *Mesh[VP, EP, FP]) FaceAdjFaces(fh FaceHandle) []FaceHandle {
	var out []FaceHandle
	for _, e := range m.FaceAdjEdges(fh) {
		if nf := m.EdgeFace(m.Oppo(e)); nf != NilFace {
			out = append(out, nf)
		}
	}
	return out
}

// FaceValence returns the number of half-edges in f's loop.
func (m *Mesh[VP, EP, FP]) FaceValence(fh FaceHandle) int {
	return len(m.FaceAdjEdges(fh))
}

// rotateIncoming returns every half-edge with tip v, in the cyclic order
// produced by e <- Oppo(Next(e)), starting from v's representative edge.
// By construction every element of the returned slice has Vert(e) == v.
func (m *Mesh[VP, EP, FP]) rotateIncoming(vh VertexHandle) []EdgeHandle {
	start := m.VertEdge(vh)
	if start == NilEdge {
		return nil
	}

	var out []EdgeHandle
	e := start
	for {
		out = append(out, e)
		e = m.Oppo(m.Next(e))
		if e == start {
			break
		}
	}
	return out
}

// rotateOutgoingFrom walks e <- Oppo(Prev(e)) starting at start (which must
// have tail v, i.e. Vert(Oppo(start)) == v), returning every edge visited
// in order. Every element of the returned slice has the same tail.
func (m *Mesh[VP, EP, FP]) rotateOutgoingFrom(start EdgeHandle) []EdgeHandle {
	var out []EdgeHandle
	e := start
	for {
		out = append(out, e)
		e = m.Oppo(m.Prev(e))
		if e == start {
			break
		}
	}
	return out
}

// findBoundaryOutgoing rotates outgoing edges starting at start until it
// finds one whose Face is NilFace, bounding the search by the mesh's total
// edge count so a malformed mesh cannot hang the caller.
func (m *Mesh[VP, EP, FP]) findBoundaryOutgoing(start EdgeHandle) EdgeHandle {
	e := start
	bound := len(m.edges) + 1
	for i := 0; i < bound; i++ {
		if m.EdgeFace(e) == NilFace {
			return e
		}
		e = m.Oppo(m.Prev(e))
		if e == start {
			break
		}
	}
	return NilEdge
}

// VertAdjFaces returns the distinct faces incident to v, rotating incoming
// edges and skipping boundary gaps.
func (m *Mesh[VP, EP, FP]) VertAdjFaces(vh VertexHandle) []FaceHandle {
	var out []FaceHandle
	for _, e := range m.rotateIncoming(vh) {
		if f := m.EdgeFace(e); f != NilFace {
			out = append(out, f)
		}
	}
	return out
}

// VertAdjVerts returns v's 1-ring neighbours in rotation order.
func (m *Mesh[VP, EP, FP]) VertAdjVerts(vh VertexHandle) []VertexHandle {
	in := m.rotateIncoming(vh)
	out := make([]VertexHandle, len(in))
	for i, e := range in {
		out[i] = m.Vert(m.Oppo(e))
	}
	return out
}

// VertAdjOutEdges returns v's outgoing half-edges, rotating by
// e <- Oppo(Prev(e)) starting at Oppo(VertEdge(v)).
func (m *Mesh[VP, EP, FP]) VertAdjOutEdges(vh VertexHandle) []EdgeHandle {
	e0 := m.VertEdge(vh)
	if e0 == NilEdge {
		return nil
	}
	return m.rotateOutgoingFrom(m.Oppo(e0))
}

// VertValence returns the number of incoming half-edges at v (the length of
// its incoming rotation cycle).
func (m *Mesh[VP, EP, FP]) VertValence(vh VertexHandle) int {
	return len(m.rotateIncoming(vh))
}

// GetEdge returns the half-edge running from u to v (tip v, opposite tip
// u), or NilEdge if no such half-edge exists. The fast path rotates v's
// incident edges; if that rotation does not reach the edge, it falls back
// to a linear scan over every live half-edge. Both paths read Oppo, and the
// fast path also reads Next, so half-edges whose Oppo or Next is still
// NilEdge (AddFace output before SetOppositeAndBoundaryEdge) are not
// handled.
func (m *Mesh[VP, EP, FP]) GetEdge(u, v VertexHandle) EdgeHandle {
	if e0 := m.VertEdge(v); e0 != NilEdge {
		e := e0
		bound := len(m.edges) + 1
		for i := 0; i < bound; i++ {
			if m.Vert(m.Oppo(e)) == u {
				return e
			}
			ne := m.Oppo(m.Next(e))
			if ne == e0 {
				break
			}
			e = ne
		}
	}

	for i := range m.edges {
		if !m.edges[i].alive {
			continue
		}
		eh := EdgeHandle(i)
		if m.edges[i].vert == v && m.Vert(m.Oppo(eh)) == u {
			return eh
		}
	}
	return NilEdge
}

// loopEdges walks Next from start until it returns to start, regardless of
// Face (so it also walks a boundary loop, which shares the same Next/Prev
// cycle structure as a face loop per I3). Bounded by the mesh's edge count.
func (m *Mesh[VP, EP, FP]) loopEdges(start EdgeHandle) []EdgeHandle {
	out := []EdgeHandle{start}
	e := m.Next(start)
	bound := len(m.edges) + 1
	for i := 0; i < bound && e != start; i++ {
		out = append(out, e)
		e = m.Next(e)
	}
	return out
}

// IsBoundaryEdge reports whether eh has no incident face.
func (m *Mesh[VP, EP, FP]) IsBoundaryEdge(eh EdgeHandle) bool {
	return m.EdgeFace(eh) == NilFace
}

// IsBoundaryVertex reports whether v is incident to any boundary edge.
// O(1): by invariant I7 the representative edge is itself boundary
// whenever one exists.
func (m *Mesh[VP, EP, FP]) IsBoundaryVertex(vh VertexHandle) bool {
	e := m.VertEdge(vh)
	return e != NilEdge && m.IsBoundaryEdge(e)
}

// IsIsolatedVertex reports whether v has no incident edge at all.
func (m *Mesh[VP, EP, FP]) IsIsolatedVertex(vh VertexHandle) bool {
	return m.VertEdge(vh) == NilEdge
}

// Sectors enumerates the boundary-in/boundary-out half-edge pairs found
// rotating around v, as a flat slice (sec[2k], sec[2k+1]) one pair per
// sector. A manifold boundary vertex yields one pair; an interior manifold
// vertex yields none; a non-manifold vertex yields one pair per sector.
func (m *Mesh[VP, EP, FP]) Sectors(vh VertexHandle) []EdgeHandle {
	var sec []EdgeHandle
	for _, in := range m.rotateIncoming(vh) {
		if m.EdgeFace(in) != NilFace {
			continue
		}
		out := m.findBoundaryOutgoing(m.Oppo(in))
		sec = append(sec, in, out)
	}
	return sec
}
