package core

// DelFace frees f, turning each of its bounding half-edges into a boundary
// edge (Face set to NilFace). It does not restitch any boundary loop; the
// caller is responsible for subsequent boundary repair if needed.
func (m *Mesh[VP, EP, FP]) DelFace(fh FaceHandle) error {
	if !m.IsValidFace(fh) {
		return wrapf("DelFace", ErrNotLive)
	}
	for _, e := range m.FaceAdjEdges(fh) {
		m.edges[e].face = NilFace
	}
	m.freeFace(fh)
	return nil
}

// DelEdge deletes the undirected edge eh/Oppo(eh): its one or two incident
// faces are deleted first (cascading), the endpoints' representative edges
// are repointed away from the doomed half-edges if necessary, the
// surrounding loop is spliced closed, and both half-edges are freed.
func (m *Mesh[VP, EP, FP]) DelEdge(eh EdgeHandle) error {
	if !m.IsValidEdge(eh) {
		return wrapf("DelEdge", ErrNotLive)
	}
	oh := m.Oppo(eh)

	if f := m.EdgeFace(eh); f != NilFace {
		if err := m.DelFace(f); err != nil {
			return wrapf("DelEdge", err)
		}
	}
	if f := m.EdgeFace(oh); f != NilFace {
		if err := m.DelFace(f); err != nil {
			return wrapf("DelEdge", err)
		}
	}

	tip := m.Vert(eh)
	if m.VertEdge(tip) == eh {
		cand := m.Prev(oh)
		if cand == eh {
			cand = NilEdge
		}
		m.verts[tip].edge = cand
	}
	tail := m.Vert(oh)
	if m.VertEdge(tail) == oh {
		cand := m.Prev(eh)
		if cand == oh {
			cand = NilEdge
		}
		m.verts[tail].edge = cand
	}

	pOh, nEh := m.Prev(oh), m.Next(eh)
	m.edges[pOh].next = nEh
	m.edges[nEh].prev = pOh
	pEh, nOh := m.Prev(eh), m.Next(oh)
	m.edges[pEh].next = nOh
	m.edges[nOh].prev = pEh

	m.freeEdge(eh)
	m.freeEdge(oh)
	return nil
}

// DelVertex deletes v: every incident face is deleted, then every outgoing
// edge is deleted, then v itself is freed.
func (m *Mesh[VP, EP, FP]) DelVertex(vh VertexHandle) error {
	if !m.IsValidVertex(vh) {
		return wrapf("DelVertex", ErrNotLive)
	}

	for _, f := range m.VertAdjFaces(vh) {
		if m.IsValidFace(f) {
			if err := m.DelFace(f); err != nil {
				return wrapf("DelVertex", err)
			}
		}
	}
	for _, e := range m.VertAdjOutEdges(vh) {
		if m.IsValidEdge(e) {
			if err := m.DelEdge(e); err != nil {
				return wrapf("DelVertex", err)
			}
		}
	}
	m.freeVertex(vh)
	return nil
}

// linkBoundaryEdge allocates a half-edge pair u->v / v->u with no incident
// face, wired as its own closed 2-cycle (Next(e) == Prev(e) == Oppo(e)),
// the same degenerate shape an isolated edge has throughout this package.
func (m *Mesh[VP, EP, FP]) linkBoundaryEdge(u, v VertexHandle) (EdgeHandle, EdgeHandle) {
	e1, e2 := m.allocateEdgePair()
	m.edges[e1].vert = v
	m.edges[e2].vert = u
	m.edges[e1].next, m.edges[e1].prev = e2, e2
	m.edges[e2].next, m.edges[e2].prev = e1, e1

	if m.VertEdge(v) == NilEdge {
		m.verts[v].edge = e1
	}
	if m.VertEdge(u) == NilEdge {
		m.verts[u].edge = e2
	}
	return e1, e2
}

// TryEdgeFlip is the preflight for EdgeFlipByRotate / EdgeFlipByDelAdd. It
// returns 0 if eh may be flipped; 1 if eh or its opposite is a boundary
// half-edge; 2 if either incident face does not have valence 3; 3 if
// flipping would duplicate an edge between the two apex vertices.
func (m *Mesh[VP, EP, FP]) TryEdgeFlip(eh EdgeHandle) int {
	oh := m.Oppo(eh)
	f1, f2 := m.EdgeFace(eh), m.EdgeFace(oh)
	if f1 == NilFace || f2 == NilFace {
		return 1
	}
	if m.FaceValence(f1) != 3 || m.FaceValence(f2) != 3 {
		return 2
	}

	a := m.Vert(m.Next(eh))
	b := m.Vert(m.Next(oh))
	if m.GetEdge(a, b) != NilEdge || m.GetEdge(b, a) != NilEdge {
		return 3
	}
	return 0
}

// repointVertexFallback sets v's representative edge to fallback only if
// v's current representative no longer has v as its tip.
func (m *Mesh[VP, EP, FP]) repointVertexFallback(v VertexHandle, fallback EdgeHandle) {
	cur := m.VertEdge(v)
	if cur == NilEdge || m.Vert(cur) != v {
		m.verts[v].edge = fallback
	}
}

// EdgeFlipByRotate rewires the two triangles straddling eh so the shared
// diagonal rotates onto the two apex vertices, without allocating any new
// element. Precondition: TryEdgeFlip(eh) == 0.
func (m *Mesh[VP, EP, FP]) EdgeFlipByRotate(eh EdgeHandle) {
	oh := m.Oppo(eh)
	f1, f2 := m.EdgeFace(eh), m.EdgeFace(oh)

	u, v := m.Vert(oh), m.Vert(eh)
	n1, p1 := m.Next(eh), m.Prev(eh)
	n2, p2 := m.Next(oh), m.Prev(oh)
	a := m.Vert(n1)
	b := m.Vert(n2)

	m.edges[eh].vert = b
	m.edges[oh].vert = a

	m.edges[p2].face = f1
	m.edges[p1].face = f2

	m.edges[eh].next, m.edges[eh].prev = p2, n1
	m.edges[p2].next, m.edges[p2].prev = n1, eh
	m.edges[n1].next, m.edges[n1].prev = eh, p2

	m.edges[oh].next, m.edges[oh].prev = p1, n2
	m.edges[p1].next, m.edges[p1].prev = n2, oh
	m.edges[n2].next, m.edges[n2].prev = oh, p1

	m.faces[f1].edge = eh
	m.faces[f2].edge = oh

	m.repointVertexFallback(u, p1)
	m.repointVertexFallback(v, p2)
	m.repointVertexFallback(a, oh)
	m.repointVertexFallback(b, eh)
	m.AdjustVertEdge(u)
	m.AdjustVertEdge(v)
	m.AdjustVertEdge(a)
	m.AdjustVertEdge(b)
}

// EdgeFlipByDelAdd flips eh by composing DelEdge with two AddFaceKeepTopo
// calls instead of rewiring in place. Precondition: TryEdgeFlip(eh) == 0.
func (m *Mesh[VP, EP, FP]) EdgeFlipByDelAdd(eh EdgeHandle) error {
	oh := m.Oppo(eh)
	u, v := m.Vert(oh), m.Vert(eh)
	a := m.Vert(m.Next(eh))
	b := m.Vert(m.Next(oh))

	if err := m.DelEdge(eh); err != nil {
		return wrapf("EdgeFlipByDelAdd", err)
	}
	if _, err := m.AddFaceKeepTopo([]VertexHandle{a, b, v}); err != nil {
		return wrapf("EdgeFlipByDelAdd", err)
	}
	if _, err := m.AddFaceKeepTopo([]VertexHandle{b, a, u}); err != nil {
		return wrapf("EdgeFlipByDelAdd", err)
	}
	return nil
}

// TryCollapse is the preflight for CollapseEdge. It returns 0 if eh may be
// collapsed, or:
//
//   - 1: a neighbour shared by both endpoints, outside the two immediate
//     triangle apexes, would become doubly connected to the surviving
//     vertex.
//   - 2: eh is a boundary edge whose open loop has a reflex closure and is
//     longer than a triangle, so collapsing would flip a face inside out.
//   - 3: both incident faces are triangles sharing both of their non-eh
//     edges (a doubled triangle pair).
func (m *Mesh[VP, EP, FP]) TryCollapse(eh EdgeHandle) int {
	oh := m.Oppo(eh)
	s, t := m.Vert(oh), m.Vert(eh)

	var apex1, apex2 VertexHandle = NilVertex, NilVertex
	if f := m.EdgeFace(eh); f != NilFace {
		apex1 = m.Vert(m.Next(eh))
	}
	if f := m.EdgeFace(oh); f != NilFace {
		apex2 = m.Vert(m.Next(oh))
	}

	tNeighbors := make(map[VertexHandle]struct{})
	for _, w := range m.VertAdjVerts(t) {
		tNeighbors[w] = struct{}{}
	}
	for _, w := range m.VertAdjVerts(s) {
		if w == t || w == apex1 || w == apex2 {
			continue
		}
		if _, ok := tNeighbors[w]; ok {
			return 1
		}
	}

	if m.EdgeFace(eh) == NilFace {
		loop := m.loopEdges(eh)
		if len(loop) > 3 && m.Vert(m.Next(eh)) == m.Vert(m.Oppo(m.Prev(eh))) {
			return 2
		}
	}

	if f1, f2 := m.EdgeFace(eh), m.EdgeFace(oh); f1 != NilFace && f2 != NilFace &&
		m.FaceValence(f1) == 3 && m.FaceValence(f2) == 3 {
		if m.Next(eh) == m.Oppo(m.Prev(oh)) && m.Prev(eh) == m.Oppo(m.Next(oh)) {
			return 3
		}
	}

	return 0
}

// closeCollapseSide closes the face (if any) on one side of a collapsing
// edge e, as the third step of CollapseEdge (and, symmetrically, its
// fourth). It never touches e itself; the caller frees e afterward.
func (m *Mesh[VP, EP, FP]) closeCollapseSide(e EdgeHandle) {
	f := m.EdgeFace(e)
	p, n := m.Prev(e), m.Next(e)

	switch {
	case f != NilFace && m.FaceValence(f) == 3:
		op, on := m.Oppo(p), m.Oppo(n)
		m.edges[op].oppo = on
		m.edges[on].oppo = op
		apex := m.Vert(n)
		if m.VertEdge(apex) == n {
			m.verts[apex].edge = op
		}
		m.freeEdge(n)
		m.freeEdge(p)
		m.freeFace(f)
	case f != NilFace:
		if m.FaceEdge(f) == e {
			m.faces[f].edge = n
		}
		m.edges[p].next = n
		m.edges[n].prev = p
	default:
		if n == m.Oppo(e) {
			n = m.Next(m.Oppo(e))
		}
		if p == m.Oppo(e) {
			p = m.Prev(m.Oppo(e))
		}
		m.edges[p].next = n
		m.edges[n].prev = p
	}
}

// CollapseEdge contracts eh, merging its source vertex s = Vert(Oppo(eh))
// into its tip t = Vert(eh); s is deleted. Returns t.
func (m *Mesh[VP, EP, FP]) CollapseEdge(eh EdgeHandle) VertexHandle {
	oh := m.Oppo(eh)
	s := m.Vert(oh)
	t := m.Vert(eh)

	if m.Next(eh) == m.Prev(eh) {
		m.verts[t].edge = NilEdge
		m.freeEdge(eh)
		m.freeEdge(oh)
		m.freeVertex(s)
		return t
	}

	if f := m.EdgeFace(oh); f != NilFace && m.FaceValence(f) == 3 && m.VertEdge(t) == m.Prev(oh) {
		m.verts[t].edge = m.Oppo(m.Next(oh))
	} else if m.VertEdge(t) == eh {
		if m.EdgeFace(eh) != NilFace {
			m.verts[t].edge = m.Oppo(m.Next(eh))
		} else {
			m.verts[t].edge = m.Oppo(m.Next(oh))
		}
	}

	for _, o := range m.VertAdjOutEdges(s) {
		if o == eh || !m.IsValidEdge(o) {
			continue
		}
		if m.Vert(o) == t {
			_ = m.DelEdge(o)
			continue
		}
		oo := m.Oppo(o)
		m.edges[oo].vert = t
	}

	m.closeCollapseSide(eh)
	m.closeCollapseSide(oh)

	m.freeEdge(eh)
	m.freeEdge(oh)
	m.freeVertex(s)

	m.AdjustVertEdge(t)
	return t
}

// weldDuplicateOutgoing merges two outgoing half-edges of the same vertex
// that share a tip (a degenerate double edge): it splices drop and its
// opposite out of their loops, frees any face either of them bounded, and
// frees the pair.
func (m *Mesh[VP, EP, FP]) weldDuplicateOutgoing(keep, drop EdgeHandle) {
	if m.EdgeFace(drop) != NilFace && m.EdgeFace(keep) == NilFace {
		keep, drop = drop, keep
	}
	dOpp := m.Oppo(drop)

	if f := m.EdgeFace(drop); f != NilFace {
		m.freeFace(f)
	}
	if f := m.EdgeFace(dOpp); f != NilFace {
		m.freeFace(f)
	}

	m.edges[m.Prev(drop)].next = m.Next(drop)
	m.edges[m.Next(drop)].prev = m.Prev(drop)
	m.edges[m.Prev(dOpp)].next = m.Next(dOpp)
	m.edges[m.Next(dOpp)].prev = m.Prev(dOpp)

	m.freeEdge(drop)
	m.freeEdge(dOpp)
}

// NormaliseDoubleEdgesAt greedily collapses degenerate double-edges around
// v: pairs of outgoing half-edges that share a tip. It mutates the mesh in
// place and always returns 0; despite the source name this was rewritten
// from (is_collapse_ok), it is not a predicate.
func (m *Mesh[VP, EP, FP]) NormaliseDoubleEdgesAt(v VertexHandle) int {
	for {
		outs := m.VertAdjOutEdges(v)
		merged := false
		for i := 0; i < len(outs) && !merged; i++ {
			for j := i + 1; j < len(outs); j++ {
				if m.Vert(outs[i]) == m.Vert(outs[j]) {
					m.weldDuplicateOutgoing(outs[i], outs[j])
					merged = true
					break
				}
			}
		}
		if !merged {
			break
		}
	}
	return 0
}

// SplitEdge inserts a new vertex at the midpoint of eh, splitting each
// incident triangle into two. It returns NilVertex without modifying the
// mesh if either incident face exists and is not a triangle.
func (m *Mesh[VP, EP, FP]) SplitEdge(eh EdgeHandle) VertexHandle {
	oh := m.Oppo(eh)
	f1, f2 := m.EdgeFace(eh), m.EdgeFace(oh)
	if f1 != NilFace && m.FaceValence(f1) != 3 {
		return NilVertex
	}
	if f2 != NilFace && m.FaceValence(f2) != 3 {
		return NilVertex
	}

	u, v := m.Vert(oh), m.Vert(eh)
	var apex1, apex2 VertexHandle = NilVertex, NilVertex
	if f1 != NilFace {
		apex1 = m.Vert(m.Next(eh))
	}
	if f2 != NilFace {
		apex2 = m.Vert(m.Next(oh))
	}

	if err := m.DelEdge(eh); err != nil {
		return NilVertex
	}

	w := m.newVertex()

	if apex1 != NilVertex {
		_, _ = m.AddFaceKeepTopo([]VertexHandle{u, w, apex1})
		_, _ = m.AddFaceKeepTopo([]VertexHandle{w, v, apex1})
	}
	if apex2 != NilVertex {
		_, _ = m.AddFaceKeepTopo([]VertexHandle{v, w, apex2})
		_, _ = m.AddFaceKeepTopo([]VertexHandle{w, u, apex2})
	}
	if apex1 == NilVertex && apex2 == NilVertex {
		m.linkBoundaryEdge(u, w)
		m.linkBoundaryEdge(w, v)
	}

	m.AdjustVertEdge(w)
	m.AdjustVertEdge(u)
	m.AdjustVertEdge(v)
	return w
}

// SplitFace fan-triangulates f from an existing vertex v, connecting v to
// every vertex already on f's loop. v is typically not part of that loop.
// It returns v.
func (m *Mesh[VP, EP, FP]) SplitFace(fh FaceHandle, v VertexHandle) VertexHandle {
	verts := m.FaceAdjVerts(fh)
	if err := m.DelFace(fh); err != nil {
		return NilVertex
	}

	n := len(verts)
	for i := 0; i < n; i++ {
		_, _ = m.AddFaceKeepTopo([]VertexHandle{verts[i], verts[(i+1)%n], v})
	}
	m.AdjustVertEdge(v)
	return v
}

// SplitFace2 allocates a fresh central vertex and fan-triangulates f from
// it, returning the new vertex.
func (m *Mesh[VP, EP, FP]) SplitFace2(fh FaceHandle) VertexHandle {
	v := m.newVertex()
	return m.SplitFace(fh, v)
}

// SplitEdges bulk-splits every edge in edges, propagating each original
// edge's SplitInfo lineage (root id, level+1) onto the two half-edges that
// replace it. Returns true if every constituent split succeeded; if one
// aborts partway (a non-triangle incident face), the remaining edges are
// still attempted and the partial result persists, matching this
// package's general no-rollback failure model.
func (m *Mesh[VP, EP, FP]) SplitEdges(edges []EdgeHandle) bool {
	ok := true
	for _, eh := range edges {
		if !m.IsValidEdge(eh) {
			ok = false
			continue
		}
		old := m.EdgeSplitInfo(eh)
		root := old.Root
		if root == -1 {
			root = int(eh)
		}
		level := old.Level

		u, v := m.Vert(m.Oppo(eh)), m.Vert(eh)
		w := m.SplitEdge(eh)
		if w == NilVertex {
			ok = false
			continue
		}

		for _, pair := range [...][2]VertexHandle{{u, w}, {w, v}} {
			e1 := m.GetEdge(pair[0], pair[1])
			if e1 == NilEdge {
				continue
			}
			m.edges[e1].splitInfo = SplitInfo{Root: root, Level: level + 1}
			if e2 := m.Oppo(e1); e2 != NilEdge {
				m.edges[e2].splitInfo = SplitInfo{Root: root, Level: level + 1}
			}
		}
	}
	return ok
}
