// Package shapes provides small, deterministic mesh factories used as test
// fixtures and runnable examples for core.Mesh.
package shapes

import "fmt"

// ErrTooFewVertices is returned by factories given a count below their
// minimum valid size.
var ErrTooFewVertices = fmt.Errorf("shapes: too few vertices requested")

// ErrInvalidGrid is returned by Grid when rows or cols is below 2.
var ErrInvalidGrid = fmt.Errorf("shapes: grid needs at least 2 rows and 2 cols")
