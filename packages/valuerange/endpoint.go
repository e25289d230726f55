package valuerange

import (
	"math"
	"strconv"

	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
	"golang.org/x/xerrors"
)

// EndPoint is the raw boundary of a ValueRange on one of its sides: a value together with the information whether the
// value itself belongs to the range ("closed") or not ("open"). The missing boundary of an unbounded side is expressed
// by the dedicated Unbound EndPoint. An EndPoint carries no directional meaning by itself - the same value and
// BoundType order differently depending on which side of a ValueRange they terminate, which is resolved internally
// when a ValueRange is built.
type EndPoint struct {
	value     float64
	boundType BoundType
	bounded   bool
}

// Open returns an EndPoint that excludes the given value from the ValueRange.
func Open(value float64) (endPoint EndPoint) {
	return EndPoint{value: value, boundType: BoundTypeOpen, bounded: true}
}

// Closed returns an EndPoint that includes the given value in the ValueRange.
func Closed(value float64) (endPoint EndPoint) {
	return EndPoint{value: value, boundType: BoundTypeClosed, bounded: true}
}

// Unbound returns the EndPoint of a side that has no boundary and extends to infinity.
func Unbound() (endPoint EndPoint) {
	return EndPoint{}
}

// EndPointFromBytes unmarshals an EndPoint from a sequence of bytes.
func EndPointFromBytes(endPointBytes []byte) (endPoint EndPoint, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(endPointBytes)
	if endPoint, err = EndPointFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse EndPoint from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// EndPointFromMarshalUtil unmarshals an EndPoint using a MarshalUtil (for easier unmarshaling).
func EndPointFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (endPoint EndPoint, err error) {
	if endPoint.bounded, err = marshalUtil.ReadBool(); err != nil {
		err = xerrors.Errorf("failed to parse bounded flag (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if !endPoint.bounded {
		return
	}

	if endPoint.boundType, err = BoundTypeFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse BoundType from MarshalUtil: %w", err)
		return
	}
	if endPoint.value, err = marshalUtil.ReadFloat64(); err != nil {
		err = xerrors.Errorf("failed to parse EndPoint value (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	return
}

// IsBounded returns true if the EndPoint represents an actual boundary instead of an unbounded side.
func (e EndPoint) IsBounded() (isBounded bool) {
	return e.bounded
}

// Value returns the boundary value of the EndPoint. It is only meaningful if the EndPoint is bounded.
func (e EndPoint) Value() (value float64) {
	return e.value
}

// BoundType returns whether the boundary value is included in or excluded from the ValueRange. It is only meaningful
// if the EndPoint is bounded.
func (e EndPoint) BoundType() (boundType BoundType) {
	return e.boundType
}

// Bytes returns a marshaled version of the EndPoint.
func (e EndPoint) Bytes() (marshaledEndPoint []byte) {
	marshalUtil := marshalutil.New()
	marshalUtil.WriteBool(e.bounded)
	if e.bounded {
		marshalUtil.WriteByte(byte(e.boundType))
		marshalUtil.WriteFloat64(e.value)
	}

	return marshalUtil.Bytes()
}

// String returns a human readable version of the EndPoint.
func (e EndPoint) String() (humanReadableEndPoint string) {
	switch {
	case !e.bounded:
		return "Unbound"
	case e.boundType == BoundTypeClosed:
		return "Closed(" + strconv.FormatFloat(e.value, 'f', 2, 64) + ")"
	default:
		return "Open(" + strconv.FormatFloat(e.value, 'f', 2, 64) + ")"
	}
}

// validate returns an error if the EndPoint carries a value that is not a finite number. NaNs have no place in a total
// ordering and explicit infinities have to be expressed through Unbound.
func (e EndPoint) validate() (err error) {
	if !e.bounded {
		return
	}
	if math.IsNaN(e.value) || math.IsInf(e.value, 0) {
		err = xerrors.Errorf("value (%v) of bounded EndPoint: %w", e.value, ErrInvalidEndPointValue)
	}

	return
}
