package core

// AddFace creates one face and len(loop) half-edges, stitching them as a
// simple directed cycle around loop[0..n). It does not set Oppo on any of
// the new half-edges - that is the job of SetOppositeAndBoundaryEdge, run
// once after every face of a bulk construction has been added. Each vertex
// named in loop has its representative edge overwritten with its new
// incoming half-edge; callers building a mesh incrementally must finish all
// AddFace calls before relying on boundary-biased vertex edges (I7).
func (m *Mesh[VP, EP, FP]) AddFace(loop []VertexHandle) (FaceHandle, error) {
	n := len(loop)
	if n < 3 {
		return NilFace, wrapf("AddFace", ErrFaceValenceTooLow)
	}

	fh := m.newFace()
	edges := make([]EdgeHandle, n)
	for i := 0; i < n; i++ {
		e := m.newEdge()
		edges[i] = e
		m.edges[e].vert = loop[(i+1)%n]
		m.edges[e].face = fh
	}
	for i := 0; i < n; i++ {
		m.edges[edges[i]].next = edges[(i+1)%n]
		m.edges[edges[i]].prev = edges[(i-1+n)%n]
	}
	for i := 0; i < n; i++ {
		// Edge tipping at loop[i] is the one built from loop[i-1] to loop[i].
		m.verts[loop[i]].edge = edges[(i-1+n)%n]
	}
	m.faces[fh].edge = edges[0]

	return fh, nil
}

// pairSlot tracks, for one unordered vertex pair, the directed half-edges
// seen pointing each way while grouping AddFace's unpaired output.
type pairSlot struct {
	fwd EdgeHandle // lo -> hi
	bwd EdgeHandle // hi -> lo
}

// SetOppositeAndBoundaryEdge pairs up every half-edge allocated by AddFace
// (identified by a still-nil Oppo) that has not yet been linked to its
// opposite, allocating a boundary half-edge for any side left unmatched,
// then stitches each affected vertex's boundary half-edges into a closed
// local cycle. It is idempotent with respect to edges that already have an
// opposite, so it can run once after a whole batch of AddFace calls.
//
// Returns 0 on success, or one of:
//
//   - 1: a half-edge's two endpoints coincide (degenerate edge).
//   - 2: a duplicate half-edge exists in the same direction as an existing one.
//   - 3: a duplicate half-edge exists in the opposite direction of an existing one.
//   - 4: three or more half-edges share the same undirected vertex pair.
func (m *Mesh[VP, EP, FP]) SetOppositeAndBoundaryEdge() int {
	type key struct{ lo, hi VertexHandle }
	pairs := make(map[key]pairSlot)

	var order []key
	for i := range m.edges {
		if !m.edges[i].alive {
			continue
		}
		e := EdgeHandle(i)
		if m.Oppo(e) != NilEdge {
			continue
		}

		tip := m.Vert(e)
		tail := m.Vert(m.Prev(e))
		if tip == tail {
			return 1
		}

		lo, hi := tail, tip
		forward := true
		if lo > hi {
			lo, hi = hi, lo
			forward = false
		}
		k := key{lo, hi}
		slot, seen := pairs[k]
		if !seen {
			slot = pairSlot{fwd: NilEdge, bwd: NilEdge}
			order = append(order, k)
		}

		if forward {
			if slot.fwd != NilEdge {
				if slot.bwd != NilEdge {
					return 4
				}
				return 2
			}
			slot.fwd = e
		} else {
			if slot.bwd != NilEdge {
				if slot.fwd != NilEdge {
					return 4
				}
				return 3
			}
			slot.bwd = e
		}
		pairs[k] = slot
	}

	dirty := make(map[VertexHandle][]EdgeHandle)
	for _, k := range order {
		slot := pairs[k]
		if slot.fwd != NilEdge && slot.bwd != NilEdge {
			m.edges[slot.fwd].oppo = slot.bwd
			m.edges[slot.bwd].oppo = slot.fwd
			continue
		}

		existing := slot.fwd
		if existing == NilEdge {
			existing = slot.bwd
		}
		b := m.newEdge()
		m.edges[b].vert = m.Vert(m.Prev(existing))
		m.edges[b].face = NilFace
		m.edges[existing].oppo = b
		m.edges[b].oppo = existing

		// b is the new "in" at its own tip, and the new "out" at existing's
		// tip (b's tail) - bucket it under both, so each vertex's bucket can
		// be zipped without ever walking next/prev of a still-unwired edge.
		dirty[m.Vert(b)] = append(dirty[m.Vert(b)], b)
		dirty[m.Vert(existing)] = append(dirty[m.Vert(existing)], b)
	}

	for v, touched := range dirty {
		m.stitchBoundaryCycle(v, touched)
	}
	for i := range m.verts {
		if m.verts[i].alive {
			m.AdjustVertEdge(VertexHandle(i))
		}
	}

	return 0
}

// stitchBoundaryCycle links the new boundary half-edges bucketed at v (as
// passed by SetOppositeAndBoundaryEdge) into v's local prev/next cycle. For
// each "in" at v it finds the "out" bounding the same fan by rotating from
// Oppo(in) across the face edges, then links each in to the out of the next
// fan in the list (in[i].next = out[i+1], closing the last back to the
// first). A manifold vertex has one fan, so its in links to its own out; at
// a non-manifold vertex the links cross between fans, so one rotation around
// v visits every fan. It never touches the complementary prev/next fields at
// the edges' other endpoints - those belong to that endpoint's own call.
func (m *Mesh[VP, EP, FP]) stitchBoundaryCycle(v VertexHandle, touched []EdgeHandle) {
	var ins, outs []EdgeHandle
	for _, e := range touched {
		if m.Vert(e) == v {
			ins = append(ins, e)
			outs = append(outs, m.findBoundaryOutgoing(m.Oppo(e)))
		}
	}

	n := len(ins)
	for i := 0; i < n; i++ {
		out := outs[(i+1)%n]
		if out == NilEdge {
			continue
		}
		m.edges[ins[i]].next = out
		m.edges[out].prev = ins[i]
	}
}

// AdjustVertEdge re-establishes the boundary bias (I7) at v: if v's
// representative edge is already boundary (or v is isolated), nothing to
// do; otherwise it rotates looking for a boundary half-edge and retargets
// to it.
func (m *Mesh[VP, EP, FP]) AdjustVertEdge(v VertexHandle) {
	e0 := m.VertEdge(v)
	if e0 == NilEdge || m.IsBoundaryEdge(e0) {
		return
	}

	e := e0
	bound := len(m.edges) + 1
	for i := 0; i < bound; i++ {
		ne := m.Oppo(m.Next(e))
		if ne == e0 {
			return
		}
		if m.IsBoundaryEdge(ne) {
			m.verts[v].edge = ne
			return
		}
		e = ne
	}
}

// AdjustNMVert repairs 1-ring consistency around a non-manifold vertex
// whose sectors were just merged by a new face, given the boundary-in
// edges collected there before the merge. For each b[i], if rotating
// outward from Oppo(b[i]) reaches Next(b[i]) without leaving the sector,
// the two sectors were spliced inconsistently and their Next/Prev chains
// are exchanged.
func (m *Mesh[VP, EP, FP]) AdjustNMVert(bdInEdges []EdgeHandle) {
	n := len(bdInEdges)
	for i := 0; i < n; i++ {
		b := bdInEdges[i]
		if m.Next(b) == NilEdge {
			continue
		}
		found := m.findBoundaryOutgoing(m.Oppo(b))
		if found != m.Next(b) {
			continue
		}

		j := (i + 1) % n
		bj := bdInEdges[j]
		ni, nj := m.Next(b), m.Next(bj)
		m.edges[b].next, m.edges[bj].next = nj, ni
		m.edges[ni].prev, m.edges[nj].prev = bj, b
	}
}

// collectBoundaryIncoming returns every boundary half-edge with tip v.
func (m *Mesh[VP, EP, FP]) collectBoundaryIncoming(v VertexHandle) []EdgeHandle {
	var out []EdgeHandle
	for _, e := range m.rotateIncoming(v) {
		if m.IsBoundaryEdge(e) {
			out = append(out, e)
		}
	}
	return out
}

// AddFaceIntoSectors splices a new face's boundary-facing half-edges into
// whichever sector of sec - an even-length, (boundary-in, boundary-out)
// paired slice as returned by Sectors - borders in or out, attaching to the
// first sector if neither matches. If in is that sector's existing
// boundary-in, only Oppo(out) is spliced, taking in's place in the boundary
// loop; if out is the sector's existing boundary-out, only Oppo(in) is
// spliced, taking out's place; otherwise both Oppo(in) and Oppo(out) are
// inserted after the sector's boundary-in. It then restores the boundary
// bias at in's tip.
func (m *Mesh[VP, EP, FP]) AddFaceIntoSectors(sec []EdgeHandle, in, out EdgeHandle) {
	matchIdx := -1
	for i := 0; i+1 < len(sec); i += 2 {
		secIn, secOut := sec[i], sec[i+1]
		if secIn == in || secOut == in || secIn == out || secOut == out {
			matchIdx = i
			break
		}
	}
	if matchIdx == -1 && len(sec) > 0 {
		matchIdx = 0
	}

	if matchIdx >= 0 {
		secIn, secOut := sec[matchIdx], sec[matchIdx+1]
		oin, oout := m.Oppo(in), m.Oppo(out)

		switch {
		case in == secIn:
			nx := m.Next(in)
			m.edges[oout].next = nx
			m.edges[nx].prev = oout
		case out == secOut:
			pv := m.Prev(out)
			m.edges[pv].next = oin
			m.edges[oin].prev = pv
		default:
			nx := m.Next(secIn)
			m.edges[secIn].next = oin
			m.edges[oin].prev = secIn
			m.edges[oout].next = nx
			m.edges[nx].prev = oout
		}
	}

	m.AdjustVertEdge(m.Vert(in))
}

// AddFaceKeepTopo inserts a new n-gon face (n = len(loop) >= 3) reusing
// whichever of its bounding edges already exist, preserving all existing
// topology around the loop. It returns NilFace (without modifying the
// mesh) if any located existing half-edge already bounds a face.
func (m *Mesh[VP, EP, FP]) AddFaceKeepTopo(loop []VertexHandle) (FaceHandle, error) {
	n := len(loop)
	if n < 3 {
		return NilFace, wrapf("AddFaceKeepTopo", ErrFaceValenceTooLow)
	}

	for i := 0; i < n; i++ {
		if e := m.GetEdge(loop[i], loop[(i+1)%n]); e != NilEdge && m.EdgeFace(e) != NilFace {
			return NilFace, wrapf("AddFaceKeepTopo", ErrSlotOccupied)
		}
	}

	edgesArr := make([]EdgeHandle, n)
	isNew := make([]bool, n)
	for i := 0; i < n; i++ {
		u, v := loop[i], loop[(i+1)%n]
		e := m.GetEdge(u, v)
		if e == NilEdge {
			e1, e2 := m.allocateEdgePair()
			m.edges[e1].vert = v
			m.edges[e2].vert = u
			edgesArr[i] = e1
			isNew[i] = true
			continue
		}
		if m.EdgeFace(e) != NilFace {
			return NilFace, wrapf("AddFaceKeepTopo", ErrSlotOccupied)
		}
		edgesArr[i] = e
		isNew[i] = false
	}

	for i := 0; i < n; i++ {
		v := loop[i]
		e1 := edgesArr[(i-1+n)%n]
		e2 := edgesArr[i]
		new1, new2 := isNew[(i-1+n)%n], isNew[i]

		if m.VertEdge(v) != NilEdge {
			if !new1 && !new2 {
				if m.Next(e1) != e2 {
					bdIn := m.collectBoundaryIncoming(v)
					m.AdjustVertEdge(v)
					oldNext1, oldPrev2 := m.Next(e1), m.Prev(e2)
					m.edges[oldPrev2].next = oldNext1
					m.edges[oldNext1].prev = oldPrev2
					if len(bdIn) > 1 {
						m.AdjustNMVert(bdIn)
					}
				}
			} else {
				sec := m.Sectors(v)
				m.AddFaceIntoSectors(sec, e1, e2)
			}
		} else {
			o1, o2 := m.Oppo(e1), m.Oppo(e2)
			m.edges[o2].next = o1
			m.edges[o1].prev = o2
		}
	}

	fh := m.newFace()
	for i := 0; i < n; i++ {
		m.edges[edgesArr[i]].next = edgesArr[(i+1)%n]
		m.edges[edgesArr[i]].prev = edgesArr[(i-1+n)%n]
		m.edges[edgesArr[i]].face = fh
	}
	for i := 0; i < n; i++ {
		if m.VertEdge(loop[i]) == NilEdge {
			m.verts[loop[i]].edge = m.Oppo(edgesArr[i])
		}
	}
	for i := 0; i < n; i++ {
		m.AdjustVertEdge(loop[i])
	}
	m.faces[fh].edge = edgesArr[0]

	return fh, nil
}
