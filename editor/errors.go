// File: errors.go
// Role: Sentinel errors for editor commands. The core taxonomy
// (NodeMissing, EdgeMissing, Duplicate, SelfLoop, GeometryDegenerate) is
// shared verbatim with core and schema by aliasing, so callers can
// errors.Is against one set of sentinels regardless of which package
// produced the error.
package editor

import (
	"errors"

	"github.com/pidforge/pidgraph/core"
)

var (
	ErrNodeMissing        = core.ErrNodeMissing
	ErrEdgeMissing        = core.ErrEdgeMissing
	ErrDuplicate          = core.ErrDuplicate
	ErrSelfLoop           = core.ErrSelfLoop
	ErrGeometryDegenerate = core.ErrGeometryDegenerate

	// ErrNothingToUndo indicates Undo was called on an empty journal.
	ErrNothingToUndo = errors.New("editor: nothing to undo")

	// ErrUnsupportedShapePair indicates no connector function exists for
	// the given pair of shape kinds (should not occur for the closed Shape
	// variant, but guards against future additions).
	ErrUnsupportedShapePair = errors.New("editor: unsupported shape pair")
)
