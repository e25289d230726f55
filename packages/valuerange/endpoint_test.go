package valuerange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndPoint(t *testing.T) {
	openEndPoint := Open(42)
	assert.True(t, openEndPoint.IsBounded())
	assert.Equal(t, 42., openEndPoint.Value())
	assert.Equal(t, BoundTypeOpen, openEndPoint.BoundType())

	closedEndPoint := Closed(42)
	assert.True(t, closedEndPoint.IsBounded())
	assert.Equal(t, BoundTypeClosed, closedEndPoint.BoundType())
	assert.NotEqual(t, openEndPoint, closedEndPoint)

	assert.False(t, Unbound().IsBounded())
	assert.Equal(t, Unbound(), Unbound())
}

func TestEndPointFromBytes(t *testing.T) {
	endPoints := []EndPoint{
		Open(42),
		Closed(-7.5),
		Closed(0),
		Unbound(),
	}

	for _, endPoint := range endPoints {
		marshaledEndPoint := endPoint.Bytes()
		unmarshaledEndPoint, consumedBytes, err := EndPointFromBytes(marshaledEndPoint)
		require.NoError(t, err)
		assert.Equal(t, len(marshaledEndPoint), consumedBytes)
		assert.Equal(t, endPoint, unmarshaledEndPoint)
	}
}

func TestEndPointString(t *testing.T) {
	assert.Equal(t, "Open(42.00)", Open(42).String())
	assert.Equal(t, "Closed(-7.50)", Closed(-7.5).String())
	assert.Equal(t, "Unbound", Unbound().String())
}

func TestBoundTypeFromBytes(t *testing.T) {
	for _, boundType := range []BoundType{BoundTypeOpen, BoundTypeClosed} {
		unmarshaledBoundType, consumedBytes, err := BoundTypeFromBytes(boundType.Bytes())
		require.NoError(t, err)
		assert.Equal(t, 1, consumedBytes)
		assert.Equal(t, boundType, unmarshaledBoundType)
	}

	_, _, err := BoundTypeFromBytes([]byte{0x02})
	assert.Error(t, err)
}

func TestBoundTypeString(t *testing.T) {
	assert.Equal(t, "BoundTypeOpen", BoundTypeOpen.String())
	assert.Equal(t, "BoundTypeClosed", BoundTypeClosed.String())
	assert.Equal(t, "BoundType(7)", BoundType(7).String())
}
