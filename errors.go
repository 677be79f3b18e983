package stegoqr

import (
	"errors"

	"github.com/yyyoichi/stegoqr/frame"
)

// Frame-level errors surface unchanged from the frame package.
var (
	ErrPayloadTooLarge  = frame.ErrPayloadTooLarge
	ErrShortFrame       = frame.ErrShortFrame
	ErrBadLength        = frame.ErrBadLength
	ErrChecksumMismatch = frame.ErrChecksumMismatch
)

var (
	ErrMatrixTooSmall       = errors.New("matrix has no flippable modules")
	ErrSizeMismatch         = errors.New("scanned matrix size does not match reference")
	ErrInsufficientCapacity = errors.New("matrix cannot hold any payload")
	ErrCapacityExceeded     = errors.New("bit count exceeds flippable module count")
	ErrInvalidMatrix        = errors.New("modules do not form a valid QR matrix")
	ErrInvalidOption        = errors.New("invalid option value")

	ErrPrimaryEncode  = errors.New("primary text could not be encoded")
	ErrReferenceRegen = errors.New("reference matrix could not be regenerated")
	ErrNoCodeFound    = errors.New("no QR code found in image")
)
