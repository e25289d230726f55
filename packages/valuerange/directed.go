package valuerange

import (
	"math"
)

// directedBoundRank breaks the tie between bounds that share the same value. The ranks encode the side dependent
// semantics of open bounds in a single ordering: an open lower bound starts infinitesimally above its value while an
// open upper bound stops infinitesimally below it. Two bounds at the same value therefore only share an actual point
// if both of them are closed.
type directedBoundRank uint8

const (
	rankNegativeInfinity directedBoundRank = iota
	rankUpperOpen
	rankClosed
	rankLowerOpen
	rankPositiveInfinity
)

// directedBound is an EndPoint that has been resolved to the side of the ValueRange it terminates. The pair of value
// and rank forms a single total order that covers same side comparisons as well as comparisons across sides.
// Unbounded sides carry infinite values so the lexicographic comparison stays uniform.
type directedBound struct {
	value float64
	rank  directedBoundRank
}

// newLowerBound resolves an EndPoint to the lower side of a ValueRange.
func newLowerBound(endPoint EndPoint) (bound directedBound) {
	switch {
	case !endPoint.bounded:
		return directedBound{value: math.Inf(-1), rank: rankNegativeInfinity}
	case endPoint.boundType == BoundTypeOpen:
		return directedBound{value: endPoint.value, rank: rankLowerOpen}
	default:
		return directedBound{value: endPoint.value, rank: rankClosed}
	}
}

// newUpperBound resolves an EndPoint to the upper side of a ValueRange.
func newUpperBound(endPoint EndPoint) (bound directedBound) {
	switch {
	case !endPoint.bounded:
		return directedBound{value: math.Inf(1), rank: rankPositiveInfinity}
	case endPoint.boundType == BoundTypeOpen:
		return directedBound{value: endPoint.value, rank: rankUpperOpen}
	default:
		return directedBound{value: endPoint.value, rank: rankClosed}
	}
}

// compare returns -1 if the bound is smaller than, 0 if it is equal to and 1 if it is bigger than the other bound.
func (d directedBound) compare(other directedBound) (result int) {
	switch {
	case d.value < other.value:
		return -1
	case d.value > other.value:
		return 1
	case d.rank < other.rank:
		return -1
	case d.rank > other.rank:
		return 1
	default:
		return 0
	}
}

// closure returns the bound with its value forced to be included. Unbounded sides are their own closure.
func (d directedBound) closure() (closedBound directedBound) {
	switch d.rank {
	case rankLowerOpen, rankUpperOpen:
		return directedBound{value: d.value, rank: rankClosed}
	default:
		return d
	}
}

// adjoins returns true if the two bounds meet at the same value without leaving a gap: their closures coincide and at
// least one of them contains the shared point.
func (d directedBound) adjoins(other directedBound) (adjoins bool) {
	return d.closure() == other.closure() && (d.rank == rankClosed || other.rank == rankClosed)
}

// endPoint translates the bound back into the raw EndPoint it was resolved from.
func (d directedBound) endPoint() (endPoint EndPoint) {
	switch d.rank {
	case rankNegativeInfinity, rankPositiveInfinity:
		return Unbound()
	case rankClosed:
		return Closed(d.value)
	default:
		return Open(d.value)
	}
}

// minBound returns the smaller of the two given bounds.
func minBound(bound directedBound, other directedBound) (minimum directedBound) {
	if bound.compare(other) <= 0 {
		return bound
	}

	return other
}

// maxBound returns the bigger of the two given bounds.
func maxBound(bound directedBound, other directedBound) (maximum directedBound) {
	if bound.compare(other) >= 0 {
		return bound
	}

	return other
}
