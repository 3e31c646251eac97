package gst

import "errors"

// ErrOutOfOrderID is returned by Put when id is less than the highest id
// previously accepted by the tree. The tree is left unchanged.
var ErrOutOfOrderID = errors.New("gst: id is out of order")

// ErrEmptyKey is returned by Put when key is the empty string. The tree
// is left unchanged.
var ErrEmptyKey = errors.New("gst: key must be non-empty")

// ErrInvariantViolation indicates a construction bug: an internal
// assertion about the shape of the tree did not hold. It is not
// recoverable and should never be observed from correct input.
var ErrInvariantViolation = errors.New("gst: invariant violation")
