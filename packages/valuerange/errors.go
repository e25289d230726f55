package valuerange

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidEndPointValue is returned when an EndPoint carries a value that is not a finite number. Unbounded sides
	// have to be expressed through the dedicated Unbound EndPoint instead of a floating point infinity.
	ErrInvalidEndPointValue = errors.New("end point value is not a finite number")
)
