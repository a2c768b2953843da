package core

// CopyInto copies every live vertex, half-edge, and face from src into dst,
// remapping handles through three freshly built tables, and transcribes
// topology fields and payloads verbatim. dst must be empty (VertexCount,
// EdgeCount, and FaceCount all zero); otherwise it returns
// ErrCopyTargetNotEmpty and dst is left untouched.
func CopyInto[VP any, EP any, FP any](dst, src *Mesh[VP, EP, FP]) error {
	if dst.VertexCount() != 0 || dst.EdgeCount() != 0 || dst.FaceCount() != 0 {
		return wrapf("CopyInto", ErrCopyTargetNotEmpty)
	}

	vmap := make(map[VertexHandle]VertexHandle, len(src.verts))
	emap := make(map[EdgeHandle]EdgeHandle, len(src.edges))
	fmap := make(map[FaceHandle]FaceHandle, len(src.faces))

	for i := range src.verts {
		if !src.verts[i].alive {
			continue
		}
		vh := VertexHandle(i)
		vmap[vh] = dst.newVertex()
	}
	for i := range src.edges {
		if !src.edges[i].alive {
			continue
		}
		eh := EdgeHandle(i)
		emap[eh] = dst.newEdge()
	}
	for i := range src.faces {
		if !src.faces[i].alive {
			continue
		}
		fh := FaceHandle(i)
		fmap[fh] = dst.newFace()
	}

	remapEdge := func(e EdgeHandle) EdgeHandle {
		if e == NilEdge {
			return NilEdge
		}
		return emap[e]
	}
	remapFace := func(f FaceHandle) FaceHandle {
		if f == NilFace {
			return NilFace
		}
		return fmap[f]
	}

	for i := range src.verts {
		if !src.verts[i].alive {
			continue
		}
		vh := VertexHandle(i)
		nv := vmap[vh]
		dst.verts[nv].edge = remapEdge(src.verts[i].edge)
		dst.verts[nv].payload = src.verts[i].payload
	}
	for i := range src.edges {
		if !src.edges[i].alive {
			continue
		}
		eh := EdgeHandle(i)
		ne := emap[eh]
		rec := src.edges[i]
		dst.edges[ne].vert = vmap[rec.vert]
		dst.edges[ne].oppo = remapEdge(rec.oppo)
		dst.edges[ne].next = remapEdge(rec.next)
		dst.edges[ne].prev = remapEdge(rec.prev)
		dst.edges[ne].face = remapFace(rec.face)
		dst.edges[ne].splitInfo = rec.splitInfo
		dst.edges[ne].payload = rec.payload
	}
	for i := range src.faces {
		if !src.faces[i].alive {
			continue
		}
		fh := FaceHandle(i)
		nf := fmap[fh]
		dst.faces[nf].edge = remapEdge(src.faces[i].edge)
		dst.faces[nf].payload = src.faces[i].payload
	}

	return nil
}
