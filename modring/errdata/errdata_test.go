package errdata

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type divisorData struct {
	Divisor uint64
}

type otherData struct {
	Name string
}

func TestAddDataToError(t *testing.T) {
	base := errors.New("some failure")
	wrapped := AddDataToError(base, divisorData{Divisor: 42})

	require.EqualError(t, wrapped, "some failure")
	require.ErrorIs(t, wrapped, base)
	require.Equal(t, divisorData{Divisor: 42}, wrapped.GetData())

	require.Nil(t, AddDataToError(nil, divisorData{}))
}

func TestGetDataFromError(t *testing.T) {
	base := errors.New("some failure")
	wrapped := AddDataToError(base, divisorData{Divisor: 42})

	// Retrieval works through further wrapping layers.
	outer := fmt.Errorf("outer context: %w", wrapped)
	data, ok := GetDataFromError[divisorData](outer)
	require.True(t, ok)
	require.EqualValues(t, 42, data.Divisor)

	// Lookup is by payload type; a mismatched type reports absence.
	_, ok = GetDataFromError[otherData](outer)
	require.False(t, ok)

	_, ok = GetDataFromError[divisorData](base)
	require.False(t, ok)

	_, ok = GetDataFromError[divisorData](nil)
	require.False(t, ok)
}

func TestNestedPayloads(t *testing.T) {
	base := errors.New("base")
	inner := AddDataToError(base, divisorData{Divisor: 1})
	outer := AddDataToError(error(inner), otherData{Name: "outer"})

	// Each payload type resolves independently.
	d, ok := GetDataFromError[divisorData](outer)
	require.True(t, ok)
	require.EqualValues(t, 1, d.Divisor)
	o, ok := GetDataFromError[otherData](outer)
	require.True(t, ok)
	require.Equal(t, "outer", o.Name)
	require.ErrorIs(t, outer, base)
}
