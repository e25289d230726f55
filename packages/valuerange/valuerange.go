package valuerange

import (
	"math"
	"strconv"
	"strings"

	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
	"golang.org/x/xerrors"
)

// region rangeKind ////////////////////////////////////////////////////////////////////////////////////////////////////

// rangeKind distinguishes the three canonical shapes a ValueRange can take. Degenerate inputs always collapse into one
// of the two singleton kinds at construction time, so the kind alone decides set identity for them.
type rangeKind uint8

const (
	rangeKindEmpty rangeKind = iota
	rangeKindEverything
	rangeKindBounded
)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region ValueRange ///////////////////////////////////////////////////////////////////////////////////////////////////

// ValueRange is an immutable interval over the real numbers with open, closed or unbounded sides. It always exists in
// one of three canonical shapes: the empty range, the everything range spanning the whole number line, or a bounded
// range whose upper bound is not smaller than its lower bound. Inverted or zero width inputs collapse into the empty
// range when the ValueRange is built, so plain == on two ValueRanges decides set equality.
//
// The zero value of ValueRange is the empty range.
type ValueRange struct {
	kind  rangeKind
	lower directedBound
	upper directedBound
}

// New builds the canonical ValueRange delimited by the two given EndPoints. Inputs that describe an inverted or zero
// width range yield the empty range and two Unbound EndPoints yield the everything range. It only returns an error if
// one of the EndPoints carries a value that is not a finite number (ErrInvalidEndPointValue).
func New(lower EndPoint, upper EndPoint) (valueRange ValueRange, err error) {
	if err = lower.validate(); err != nil {
		err = xerrors.Errorf("failed to validate lower EndPoint: %w", err)
		return
	}
	if err = upper.validate(); err != nil {
		err = xerrors.Errorf("failed to validate upper EndPoint: %w", err)
		return
	}

	lowerBound := newLowerBound(lower)
	upperBound := newUpperBound(upper)
	switch {
	case upperBound.compare(lowerBound) < 0:
		valueRange = Empty()
	case !lower.bounded && !upper.bounded:
		valueRange = Everything()
	default:
		valueRange = ValueRange{kind: rangeKindBounded, lower: lowerBound, upper: upperBound}
	}

	return
}

// Singleton builds the ValueRange that contains exactly the given value. It is equivalent to calling New with two
// Closed EndPoints at that value.
func Singleton(value float64) (valueRange ValueRange, err error) {
	if valueRange, err = New(Closed(value), Closed(value)); err != nil {
		err = xerrors.Errorf("failed to build singleton ValueRange: %w", err)
	}

	return
}

// Empty returns the canonical empty ValueRange.
func Empty() (valueRange ValueRange) {
	return ValueRange{}
}

// Everything returns the canonical ValueRange that spans the whole number line.
func Everything() (valueRange ValueRange) {
	return ValueRange{kind: rangeKindEverything}
}

// FromBytes unmarshals a ValueRange from a sequence of bytes.
func FromBytes(valueRangeBytes []byte) (valueRange ValueRange, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(valueRangeBytes)
	if valueRange, err = FromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse ValueRange from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// FromMarshalUtil unmarshals a ValueRange using a MarshalUtil (for easier unmarshaling). Bounded ranges are rebuilt
// through New, so a tampered byte stream can not materialize a non canonical shape.
func FromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (valueRange ValueRange, err error) {
	kindByte, err := marshalUtil.ReadByte()
	if err != nil {
		err = xerrors.Errorf("failed to parse ValueRange kind (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	switch rangeKind(kindByte) {
	case rangeKindEmpty:
		valueRange = Empty()
	case rangeKindEverything:
		valueRange = Everything()
	case rangeKindBounded:
		var lower, upper EndPoint
		if lower, err = EndPointFromMarshalUtil(marshalUtil); err != nil {
			err = xerrors.Errorf("failed to parse lower EndPoint from MarshalUtil: %w", err)
			return
		}
		if upper, err = EndPointFromMarshalUtil(marshalUtil); err != nil {
			err = xerrors.Errorf("failed to parse upper EndPoint from MarshalUtil: %w", err)
			return
		}
		if valueRange, err = New(lower, upper); err != nil {
			err = xerrors.Errorf("failed to build ValueRange from unmarshaled EndPoints: %w", err)
			return
		}
	default:
		err = xerrors.Errorf("unsupported ValueRange kind (%X): %w", kindByte, cerrors.ErrParseBytesFailed)
	}

	return
}

// IsEmpty returns true if the ValueRange is the empty range.
func (v ValueRange) IsEmpty() (isEmpty bool) {
	return v.kind == rangeKindEmpty
}

// IsEverything returns true if the ValueRange spans the whole number line.
func (v ValueRange) IsEverything() (isEverything bool) {
	return v.kind == rangeKindEverything
}

// IsSingleton returns true if the ValueRange contains exactly one value.
func (v ValueRange) IsSingleton() (isSingleton bool) {
	return v.kind == rangeKindBounded &&
		v.lower.rank == rankClosed && v.upper.rank == rankClosed && v.lower.value == v.upper.value
}

// Equals returns true if the two ValueRanges describe the same set of values. Since every ValueRange is canonical this
// is plain structural equality.
func (v ValueRange) Equals(other ValueRange) (equal bool) {
	return v == other
}

// LowerEndPoint returns the EndPoint that terminates the lower side of the ValueRange. The returned flag is false if
// the ValueRange is empty and therefore has no EndPoints.
func (v ValueRange) LowerEndPoint() (endPoint EndPoint, exists bool) {
	switch v.kind {
	case rangeKindEmpty:
		return
	case rangeKindEverything:
		return Unbound(), true
	default:
		return v.lower.endPoint(), true
	}
}

// UpperEndPoint returns the EndPoint that terminates the upper side of the ValueRange. The returned flag is false if
// the ValueRange is empty and therefore has no EndPoints.
func (v ValueRange) UpperEndPoint() (endPoint EndPoint, exists bool) {
	switch v.kind {
	case rangeKindEmpty:
		return
	case rangeKindEverything:
		return Unbound(), true
	default:
		return v.upper.endPoint(), true
	}
}

// Contains returns true if the given value lies inside the ValueRange. NaN is never contained in any ValueRange.
func (v ValueRange) Contains(value float64) (contains bool) {
	if math.IsNaN(value) {
		return false
	}

	switch v.kind {
	case rangeKindEmpty:
		return false
	case rangeKindEverything:
		return true
	default:
		point := directedBound{value: value, rank: rankClosed}
		return v.lower.compare(point) <= 0 && v.upper.compare(point) >= 0
	}
}

// Overlaps returns true if the two ValueRanges share at least one value. The empty range overlaps nothing, not even
// itself, while the everything range overlaps every non empty range.
func (v ValueRange) Overlaps(other ValueRange) (overlaps bool) {
	if v.kind == rangeKindEmpty || other.kind == rangeKindEmpty {
		return false
	}
	if v.kind == rangeKindEverything || other.kind == rangeKindEverything {
		return true
	}

	return other.upper.compare(v.lower) >= 0 && v.upper.compare(other.lower) >= 0
}

// adheresTo returns true if the two ValueRanges are disjoint but meet at a shared boundary value so that joining them
// leaves no gap (like ]2,3[ and [3,5] at the value 3). Neither the empty nor the everything range adheres to anything.
func (v ValueRange) adheresTo(other ValueRange) (adheres bool) {
	if v.kind != rangeKindBounded || other.kind != rangeKindBounded {
		return false
	}

	return v.upper.adjoins(other.lower) || other.upper.adjoins(v.lower)
}

// Union joins the two ValueRanges. If they overlap or adhere to each other the result is the single merged ValueRange
// in left with disjoint being false (and right being the empty range). Otherwise left and right hold the two operands
// ordered from left to right on the number line and disjoint is true.
func (v ValueRange) Union(other ValueRange) (left ValueRange, right ValueRange, disjoint bool) {
	switch {
	case v.kind == rangeKindEmpty:
		left = other
	case other.kind == rangeKindEmpty:
		left = v
	case v.kind == rangeKindEverything || other.kind == rangeKindEverything:
		left = Everything()
	case v.Overlaps(other) || v.adheresTo(other):
		left = ValueRange{
			kind:  rangeKindBounded,
			lower: minBound(v.lower, other.lower),
			upper: maxBound(v.upper, other.upper),
		}
		if left.lower.rank == rankNegativeInfinity && left.upper.rank == rankPositiveInfinity {
			left = Everything()
		}
	case other.lower.compare(v.upper) > 0:
		left, right, disjoint = v, other, true
	default:
		left, right, disjoint = other, v, true
	}

	return
}

// Bytes returns a marshaled version of the ValueRange.
func (v ValueRange) Bytes() (marshaledValueRange []byte) {
	marshalUtil := marshalutil.New()
	marshalUtil.WriteByte(byte(v.kind))
	if v.kind == rangeKindBounded {
		marshalUtil.WriteBytes(v.lower.endPoint().Bytes())
		marshalUtil.WriteBytes(v.upper.endPoint().Bytes())
	}

	return marshalUtil.Bytes()
}

// String returns a human readable version of the ValueRange. The four canonical shapes render distinctly: the empty
// range as the empty set symbol, the everything range with both infinities, singletons in braces and every other
// bounded range in mathematical bracket notation with round brackets marking open sides.
func (v ValueRange) String() (humanReadableValueRange string) {
	switch {
	case v.kind == rangeKindEmpty:
		return "∅"
	case v.kind == rangeKindEverything:
		return "(-∞,+∞)"
	case v.IsSingleton():
		return "{" + formatBoundValue(v.lower.value) + "}"
	}

	var builder strings.Builder
	switch v.lower.rank {
	case rankNegativeInfinity:
		builder.WriteString("(-∞")
	case rankClosed:
		builder.WriteString("[" + formatBoundValue(v.lower.value))
	default:
		builder.WriteString("(" + formatBoundValue(v.lower.value))
	}
	builder.WriteString(",")
	switch v.upper.rank {
	case rankPositiveInfinity:
		builder.WriteString("+∞)")
	case rankClosed:
		builder.WriteString(formatBoundValue(v.upper.value) + "]")
	default:
		builder.WriteString(formatBoundValue(v.upper.value) + ")")
	}

	return builder.String()
}

// formatBoundValue renders a boundary value with two decimal places.
func formatBoundValue(value float64) (formattedValue string) {
	return strconv.FormatFloat(value, 'f', 2, 64)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
