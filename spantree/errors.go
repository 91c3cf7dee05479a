package spantree

import "errors"

// ErrForcedCycle indicates the forced edges plus the pass's closing edge
// already close a cycle in G_I or G_V, before any free edge is chosen —
// spec.md's "forced-edge cycle failure" fatal case.
var ErrForcedCycle = errors.New("spantree: forced edges and closing edge form a cycle")
