package netlist

import "errors"

// Sentinel errors for netlist parsing. Per spec.md §7's soft-warning policy,
// a bad line is reported via one of these and skipped rather than aborting
// the whole parse; only ErrNoOutputNode (an empty/directive-less file) is
// fatal to the caller.
var (
	ErrUnknownElement = errors.New("netlist: unknown element")
	ErrBadNode        = errors.New("netlist: bad node id")
	ErrBadValue       = errors.New("netlist: bad value")
	ErrMissingField   = errors.New("netlist: missing field")
	ErrNoOutputNode   = errors.New("netlist: no .OUTPUT directive")
)
