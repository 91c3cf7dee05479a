package circuit

import "errors"

// Sentinel errors for circuit builder operations.
var (
	// ErrNilCircuit indicates a method was called on a nil *Circuit.
	ErrNilCircuit = errors.New("circuit: nil circuit")

	// ErrIncompleteBlock indicates SetBlock was called before reference,
	// reserved, and onode were all assigned a nonzero node.
	ErrIncompleteBlock = errors.New("circuit: reference, reserved, and output node must all be set before SetBlock")

	// ErrInvalidOutputNode indicates onode is out of range or coincides
	// with basenode; the analysis driver refuses to proceed in either case.
	ErrInvalidOutputNode = errors.New("circuit: output node must be < nnum and different from basenode")
)
