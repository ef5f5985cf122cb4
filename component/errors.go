package component

import "errors"

// ErrInvalidArgument is the single error kind raised for every contract
// violation in this package: constructor invariants, setter invariants,
// and self-inconsistent inbound wire data.
var ErrInvalidArgument = errors.New("invalid argument")
