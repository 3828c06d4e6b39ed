package interval

import "github.com/iotaledger/hive.go/ierrors"

var (
	// ErrInvalidEndPoints is returned if an Interval is created with a lower end point that is greater than its upper
	// end point.
	ErrInvalidEndPoints = ierrors.New("lower end point must not be greater than upper end point")

	// ErrUnknownBoundsType is returned if an Interval is created with a BoundsType that is not one of the four
	// canonical values.
	ErrUnknownBoundsType = ierrors.New("unknown bounds type")
)
