package valuerange

import (
	"strconv"

	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
	"golang.org/x/xerrors"
)

// BoundType indicates whether an EndPoint of a ValueRange is contained in the ValueRange itself ("closed") or not
// ("open"). If a ValueRange is unbounded on a side, it is neither open nor closed on that side; the bound simply does
// not exist.
type BoundType uint8

const (
	// BoundTypeOpen indicates that the EndPoint value is not considered part of the ValueRange ("exclusive").
	BoundTypeOpen BoundType = iota

	// BoundTypeClosed indicates that the EndPoint value is considered part of the ValueRange ("inclusive").
	BoundTypeClosed
)

// boundTypeNames contains a dictionary of the names of BoundTypes.
var boundTypeNames = [...]string{"BoundTypeOpen", "BoundTypeClosed"}

// BoundTypeFromBytes unmarshals a BoundType from a sequence of bytes.
func BoundTypeFromBytes(boundTypeBytes []byte) (boundType BoundType, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(boundTypeBytes)
	if boundType, err = BoundTypeFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse BoundType from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// BoundTypeFromMarshalUtil unmarshals a BoundType using a MarshalUtil (for easier unmarshaling).
func BoundTypeFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (boundType BoundType, err error) {
	boundTypeByte, err := marshalUtil.ReadByte()
	if err != nil {
		err = xerrors.Errorf("failed to parse BoundType (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	if boundType = BoundType(boundTypeByte); boundType > BoundTypeClosed {
		err = xerrors.Errorf("unsupported BoundType (%X): %w", boundTypeByte, cerrors.ErrParseBytesFailed)
		return
	}

	return
}

// Bytes returns a marshaled version of the BoundType.
func (b BoundType) Bytes() (marshaledBoundType []byte) {
	return []byte{byte(b)}
}

// String returns a human readable version of the BoundType.
func (b BoundType) String() (humanReadableBoundType string) {
	if int(b) >= len(boundTypeNames) {
		return "BoundType(" + strconv.Itoa(int(b)) + ")"
	}

	return boundTypeNames[b]
}
