package music

import "errors"

// Error kinds. Call sites wrap these with context, test with errors.Is.
var (
	ErrUnitUnspecified       = errors.New("non-zero adjustment must have a specified unit")
	ErrUnitMismatch          = errors.New("adjustment units differ")
	ErrUnsupportedAdjustment = errors.New("unsupported adjustment")
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrNotImplemented        = errors.New("not implemented")
	ErrItemNotFound          = errors.New("item not found")
)
