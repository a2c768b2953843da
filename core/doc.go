// Package core implements a half-edge polygon mesh: a topological data
// structure for manifold and near-manifold 2-dimensional polygon meshes,
// together with the in-place editing operations that keep it consistent.
//
// A Mesh owns three element arenas (vertices, half-edges, faces) addressed
// by stable, comparable handles. Handles are never invalidated by further
// allocations; only the element they name is invalidated by its own
// deletion. Cyclic topology (a half-edge's opposite/next/prev/face, a
// vertex's incident edge, a face's boundary edge) is expressed entirely
// through handles, never through owning references, so there are no
// reference cycles for the garbage collector or the programmer to reason
// about.
//
// Vertex, half-edge, and face payloads are generic type parameters (VP, EP,
// FP) so callers can attach geometric attributes (positions, normals,
// material IDs) without this package knowing anything about geometry. The
// package itself stores only topology: which half-edge is opposite which,
// which face a half-edge bounds, which edge a vertex remembers.
//
// # Invariants
//
// After every public operation returns without signalling a structural
// failure, the following hold for every live element (see validators.go's
// TopologyTest for the executable audit):
//
//   - every half-edge's opposite is mutual and non-reflexive;
//   - next/prev form a closed cycle per face, and that cycle shares one
//     Face value throughout;
//   - a half-edge's tip and its opposite's tip are distinct vertices;
//   - a vertex that touches any boundary half-edge remembers a boundary
//     half-edge as its representative edge;
//   - a face's representative half-edge reports that face as its own.
//
// # Concurrency
//
// A Mesh is not safe for concurrent use. All operations assume a single
// goroutine has exclusive access; there are no internal locks. Callers
// needing a consistent snapshot before a batch of concurrent readers should
// take one with CopyInto.
//
// # Failure model
//
// Operations fall into two families. Preflight checks (TryEdgeFlip,
// TryCollapse, TopologyTest, the first phase of AddFaceKeepTopo and
// SplitEdge) never modify the mesh; they return a code describing why an
// operation would fail. Mutating operations that fail partway (a cascading
// Del, a partially-completed SplitEdges) leave the mesh in whatever state
// the failed step reached - there is no transactional rollback. Callers
// that require atomicity must snapshot with CopyInto first.
package core
