package interval

import (
	"fmt"
)

// BoundsType describes which of the two end points of an Interval are contained in the Interval itself. Each end point
// is either closed (the end point value is considered part of the Interval - "inclusive") or open (it is not -
// "exclusive"), which yields four canonical combinations, enumerated below:
//
// Notation     Definition            BoundsType
// [a .. b]     {x | a <= x <= b}     BoundsTypeClosed
// (a .. b)     {x | a <  x <  b}     BoundsTypeOpen
// [a .. b)     {x | a <= x <  b}     BoundsTypeClosedOpen
// (a .. b]     {x | a <  x <= b}     BoundsTypeOpenClosed
type BoundsType uint8

const (
	// BoundsTypeClosed indicates that both end point values are considered part of the Interval.
	BoundsTypeClosed BoundsType = iota

	// BoundsTypeOpen indicates that neither end point value is considered part of the Interval.
	BoundsTypeOpen

	// BoundsTypeClosedOpen indicates that only the lower end point value is considered part of the Interval.
	BoundsTypeClosedOpen

	// BoundsTypeOpenClosed indicates that only the upper end point value is considered part of the Interval.
	BoundsTypeOpenClosed
)

// BoundsTypeNames contains a dictionary of the names of BoundsTypes.
var BoundsTypeNames = [...]string{
	"BoundsTypeClosed",
	"BoundsTypeOpen",
	"BoundsTypeClosedOpen",
	"BoundsTypeOpenClosed",
}

// BoundsTypeFromInclusivity returns the BoundsType that corresponds to the given inclusivity of the two end points.
func BoundsTypeFromInclusivity(lowerInclusive bool, upperInclusive bool) BoundsType {
	switch {
	case lowerInclusive && upperInclusive:
		return BoundsTypeClosed
	case lowerInclusive:
		return BoundsTypeClosedOpen
	case upperInclusive:
		return BoundsTypeOpenClosed
	default:
		return BoundsTypeOpen
	}
}

// IsLowerInclusive returns true if the lower end point value is considered part of the Interval.
func (b BoundsType) IsLowerInclusive() bool {
	return b == BoundsTypeClosed || b == BoundsTypeClosedOpen
}

// IsUpperInclusive returns true if the upper end point value is considered part of the Interval.
func (b BoundsType) IsUpperInclusive() bool {
	return b == BoundsTypeClosed || b == BoundsTypeOpenClosed
}

// String returns a human-readable version of the BoundsType.
func (b BoundsType) String() string {
	if int(b) >= len(BoundsTypeNames) {
		return fmt.Sprintf("BoundsType(%X)", uint8(b))
	}

	return BoundsTypeNames[b]
}
