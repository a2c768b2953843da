// Package hemesh is the module root for a half-edge polygon mesh library.
//
// The mesh itself lives in the core subpackage:
//
//	core/   — Mesh[VP, EP, FP], the half-edge arena, and every build/query/
//	          edit operation over it
//	shapes/ — small concrete mesh factories (Triangle, Grid, Fan, ...) built
//	          on top of core, useful as test fixtures and examples
//
// This root package declares no exported API of its own.
package hemesh
