package interval

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBoundsTypeFromInclusivity tests that the four combinations of end point inclusivity map to the four canonical
// BoundsTypes.
func TestBoundsTypeFromInclusivity(t *testing.T) {
	require.Equal(t, BoundsTypeClosed, BoundsTypeFromInclusivity(true, true))
	require.Equal(t, BoundsTypeOpen, BoundsTypeFromInclusivity(false, false))
	require.Equal(t, BoundsTypeClosedOpen, BoundsTypeFromInclusivity(true, false))
	require.Equal(t, BoundsTypeOpenClosed, BoundsTypeFromInclusivity(false, true))
}

// TestBoundsType_IsLowerInclusive tests if the lower inclusivity predicate works correctly for all BoundsTypes.
func TestBoundsType_IsLowerInclusive(t *testing.T) {
	require.True(t, BoundsTypeClosed.IsLowerInclusive())
	require.False(t, BoundsTypeOpen.IsLowerInclusive())
	require.True(t, BoundsTypeClosedOpen.IsLowerInclusive())
	require.False(t, BoundsTypeOpenClosed.IsLowerInclusive())
}

// TestBoundsType_IsUpperInclusive tests if the upper inclusivity predicate works correctly for all BoundsTypes.
func TestBoundsType_IsUpperInclusive(t *testing.T) {
	require.True(t, BoundsTypeClosed.IsUpperInclusive())
	require.False(t, BoundsTypeOpen.IsUpperInclusive())
	require.False(t, BoundsTypeClosedOpen.IsUpperInclusive())
	require.True(t, BoundsTypeOpenClosed.IsUpperInclusive())
}

// TestBoundsType_String tests the human-readable representation of BoundsTypes, including unknown values.
func TestBoundsType_String(t *testing.T) {
	require.Equal(t, "BoundsTypeClosed", BoundsTypeClosed.String())
	require.Equal(t, "BoundsTypeOpen", BoundsTypeOpen.String())
	require.Equal(t, "BoundsTypeClosedOpen", BoundsTypeClosedOpen.String())
	require.Equal(t, "BoundsTypeOpenClosed", BoundsTypeOpenClosed.String())
	require.Equal(t, "BoundsType(11)", BoundsType(17).String())
}

// TestBoundsTypeRoundTrip tests that the factory and the predicates are inverses of each other.
func TestBoundsTypeRoundTrip(t *testing.T) {
	for _, lowerInclusive := range []bool{true, false} {
		for _, upperInclusive := range []bool{true, false} {
			boundsType := BoundsTypeFromInclusivity(lowerInclusive, upperInclusive)
			require.Equal(t, lowerInclusive, boundsType.IsLowerInclusive(), "lower inclusivity of %s should round-trip", boundsType)
			require.Equal(t, upperInclusive, boundsType.IsUpperInclusive(), "upper inclusivity of %s should round-trip", boundsType)
		}
	}
}
