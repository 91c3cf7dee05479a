package analysis

import "errors"

// ErrNotBlocked indicates Analyze was called on a circuit whose SetBlock
// hasn't run, so YRef/GRef aren't available.
var ErrNotBlocked = errors.New("analysis: circuit must be normalized and blocked before analysis")
