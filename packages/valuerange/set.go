package valuerange

import (
	"strconv"
	"sync"

	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"golang.org/x/xerrors"
)

// region Set //////////////////////////////////////////////////////////////////////////////////////////////////////////

// Set is an ordered collection of pairwise disjoint ValueRanges. Ranges added to the Set are merged with every member
// they overlap or adhere to, so the Set always holds the minimal left to right sequence of ValueRanges that covers the
// same values.
type Set struct {
	ranges      []ValueRange
	rangesMutex sync.RWMutex
}

// NewSet creates a new Set that covers the given ValueRanges.
func NewSet(optionalValueRanges ...ValueRange) (set *Set) {
	set = &Set{}
	for _, valueRange := range optionalValueRanges {
		set.Add(valueRange)
	}

	return
}

// SetFromBytes unmarshals a Set from a sequence of bytes.
func SetFromBytes(setBytes []byte) (set *Set, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(setBytes)
	if set, err = SetFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse Set from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// SetFromMarshalUtil unmarshals a Set using a MarshalUtil (for easier unmarshaling). The members are re-added through
// Add, so the unmarshaled Set is canonical even if the byte stream was not.
func SetFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (set *Set, err error) {
	rangesCount, err := marshalUtil.ReadUint32()
	if err != nil {
		err = xerrors.Errorf("failed to parse ValueRange count (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	set = &Set{}
	for i := 0; i < int(rangesCount); i++ {
		valueRange, valueRangeErr := FromMarshalUtil(marshalUtil)
		if valueRangeErr != nil {
			err = xerrors.Errorf("failed to parse ValueRange from MarshalUtil: %w", valueRangeErr)
			return
		}
		set.Add(valueRange)
	}

	return
}

// Add inserts the given ValueRange into the Set, merging it with every member it overlaps or adheres to. It returns
// true if the contents of the Set changed. Adding the empty range never changes a Set.
func (s *Set) Add(valueRange ValueRange) (setChanged bool) {
	if valueRange.IsEmpty() {
		return false
	}

	s.rangesMutex.Lock()
	defer s.rangesMutex.Unlock()

	merged := valueRange
	remaining := make([]ValueRange, 0, len(s.ranges)+1)
	absorbed := make([]ValueRange, 0, len(s.ranges))
	for _, existing := range s.ranges {
		if mergedUnion, _, disjoint := merged.Union(existing); !disjoint {
			merged = mergedUnion
			absorbed = append(absorbed, existing)
			continue
		}
		remaining = append(remaining, existing)
	}
	if len(absorbed) == 1 && absorbed[0] == merged {
		return false
	}

	insertionIndex := len(remaining)
	for i, existing := range remaining {
		if leftMost, _, _ := merged.Union(existing); leftMost == merged {
			insertionIndex = i
			break
		}
	}
	s.ranges = append(remaining[:insertionIndex], append([]ValueRange{merged}, remaining[insertionIndex:]...)...)

	return true
}

// Contains returns true if the given value lies inside one of the ValueRanges of the Set.
func (s *Set) Contains(value float64) (contains bool) {
	s.rangesMutex.RLock()
	defer s.rangesMutex.RUnlock()

	for _, valueRange := range s.ranges {
		if valueRange.Contains(value) {
			return true
		}
	}

	return false
}

// Ranges returns the ValueRanges of the Set ordered from left to right on the number line.
func (s *Set) Ranges() (valueRanges []ValueRange) {
	s.rangesMutex.RLock()
	defer s.rangesMutex.RUnlock()

	valueRanges = make([]ValueRange, len(s.ranges))
	copy(valueRanges, s.ranges)

	return
}

// ForEach calls the iterator for each of the contained ValueRanges in left to right order. The iteration is aborted if
// the iterator returns false. The method returns false if the iteration was aborted.
func (s *Set) ForEach(iterator func(valueRange ValueRange) bool) (success bool) {
	success = true
	for _, valueRange := range s.Ranges() {
		if success = iterator(valueRange); !success {
			return
		}
	}

	return
}

// Size returns the amount of disjoint ValueRanges in the Set.
func (s *Set) Size() (size int) {
	s.rangesMutex.RLock()
	defer s.rangesMutex.RUnlock()

	return len(s.ranges)
}

// Equals returns true if the two Sets cover the same values.
func (s *Set) Equals(other *Set) (equal bool) {
	otherRanges := other.Ranges()

	s.rangesMutex.RLock()
	defer s.rangesMutex.RUnlock()

	if len(s.ranges) != len(otherRanges) {
		return false
	}
	for i, valueRange := range s.ranges {
		if valueRange != otherRanges[i] {
			return false
		}
	}

	return true
}

// Clone creates a deep copy of the Set.
func (s *Set) Clone() (clonedSet *Set) {
	return &Set{ranges: s.Ranges()}
}

// Bytes returns a marshaled version of the Set.
func (s *Set) Bytes() (marshaledSet []byte) {
	s.rangesMutex.RLock()
	defer s.rangesMutex.RUnlock()

	marshalUtil := marshalutil.New()
	marshalUtil.WriteUint32(uint32(len(s.ranges)))
	for _, valueRange := range s.ranges {
		marshalUtil.WriteBytes(valueRange.Bytes())
	}

	return marshalUtil.Bytes()
}

// String returns a human readable version of the Set.
func (s *Set) String() (humanReadableSet string) {
	structBuilder := stringify.StructBuilder("Set")
	for i, valueRange := range s.Ranges() {
		structBuilder.AddField(stringify.StructField(strconv.Itoa(i), valueRange))
	}

	return structBuilder.String()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
