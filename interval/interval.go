package interval

import (
	"fmt"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ds/types"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/stringify"
)

// Value is the constraint that end point types of an Interval have to satisfy: a three-way comparison that defines the
// total order of the kind and a human-readable representation. It is required to keep the Interval generic.
type Value[T any] interface {
	constraints.Comparable[T]

	fmt.Stringer
}

// Interval defines the boundaries around a contiguous span of values of some totally ordered kind (i.e. "integers
// from 1 to 100 inclusive").
//
// Both end points always exist and the upper end point may not be less than the lower one - this is validated once at
// construction time and never revisited, as Intervals are immutable values. Whether the end point values themselves
// are considered part of the Interval is described by the BoundsType.
//
// A degenerate Interval (both end points compare equal) contains its single value only if both of its bounds are
// inclusive; every non-closed degenerate Interval is empty by definition.
type Interval[T Value[T]] struct {
	lower  T
	upper  T
	bounds BoundsType
}

// New creates a new Interval spanning the values between the given end points. It returns an error wrapping
// ErrInvalidEndPoints if the lower end point is greater than the upper one and an error wrapping ErrUnknownBoundsType
// if the given BoundsType is not one of the four canonical values. The bounds of the result are never swapped or
// adjusted silently.
func New[T Value[T]](lower T, upper T, bounds BoundsType) (*Interval[T], error) {
	if bounds > BoundsTypeOpenClosed {
		return nil, ierrors.Wrapf(ErrUnknownBoundsType, "BoundsType(%X)", uint8(bounds))
	}

	if lower.Compare(upper) > 0 {
		return nil, ierrors.Wrapf(ErrInvalidEndPoints, "lower %s, upper %s", stringify.Interface(lower), stringify.Interface(upper))
	}

	return &Interval[T]{
		lower:  lower,
		upper:  upper,
		bounds: bounds,
	}, nil
}

// Empty returns the externally defined sentinel that represents "no values". It is distinct from any Interval instance
// and is only used as an escape hatch at the boundary of the package.
func Empty() types.Empty {
	return types.Void
}

// Lower returns the lower end point value of the Interval.
func (i *Interval[T]) Lower() T {
	return i.lower
}

// Upper returns the upper end point value of the Interval.
func (i *Interval[T]) Upper() T {
	return i.upper
}

// Bounds returns the BoundsType that describes which end point values are considered part of the Interval.
func (i *Interval[T]) Bounds() BoundsType {
	return i.bounds
}

// IsDegenerate returns true if both end points of the Interval compare equal.
func (i *Interval[T]) IsDegenerate() bool {
	return i.lower.Compare(i.upper) == 0
}

// IsEmpty returns true if the Interval contains no values at all. A degenerate Interval is empty unless both of its
// bounds are inclusive.
func (i *Interval[T]) IsEmpty() bool {
	switch cmp := i.lower.Compare(i.upper); {
	case cmp > 0:
		// unreachable after construction
		return true
	case cmp == 0:
		return i.bounds != BoundsTypeClosed
	default:
		return false
	}
}

// OnLowerEndPoint returns true if the lower bound is inclusive and the given value compares equal to the lower end
// point.
func (i *Interval[T]) OnLowerEndPoint(value T) bool {
	return i.bounds.IsLowerInclusive() && i.lower.Compare(value) == 0
}

// OnUpperEndPoint returns true if the upper bound is inclusive and the given value compares equal to the upper end
// point.
func (i *Interval[T]) OnUpperEndPoint(value T) bool {
	return i.bounds.IsUpperInclusive() && i.upper.Compare(value) == 0
}

// Contains returns true if the given value is within the bounds of the Interval.
func (i *Interval[T]) Contains(value T) bool {
	afterLower := lo.Cond(i.bounds.IsLowerInclusive(), value.Compare(i.lower) >= 0, value.Compare(i.lower) > 0)
	beforeUpper := lo.Cond(i.bounds.IsUpperInclusive(), value.Compare(i.upper) <= 0, value.Compare(i.upper) < 0)

	return afterLower && beforeUpper
}

// StartsAfter returns true if every value of the Interval is greater than the given value. A shared boundary value
// counts as "after" if the lower bound excludes it.
func (i *Interval[T]) StartsAfter(value T) bool {
	cmp := i.lower.Compare(value)

	return cmp > 0 || (cmp == 0 && !i.bounds.IsLowerInclusive())
}

// StartsAfterStrictly returns true if the lower bound is inclusive and the lower end point is greater than the given
// value. It is used when an exact, non-tie-breaking comparison is required.
func (i *Interval[T]) StartsAfterStrictly(value T) bool {
	return i.bounds.IsLowerInclusive() && i.lower.Compare(value) > 0
}

// EndsBefore returns true if every value of the Interval is smaller than the given value. A shared boundary value
// counts as "before" if the upper bound excludes it.
func (i *Interval[T]) EndsBefore(value T) bool {
	cmp := i.upper.Compare(value)

	return cmp < 0 || (cmp == 0 && !i.bounds.IsUpperInclusive())
}

// EndsBeforeStrictly returns true if the upper bound is inclusive and the upper end point is smaller than the given
// value. It is used when an exact, non-tie-breaking comparison is required.
func (i *Interval[T]) EndsBeforeStrictly(value T) bool {
	return i.bounds.IsUpperInclusive() && i.upper.Compare(value) < 0
}

// Compare returns 0 if the Interval contains the given value, -1 if its contained values are smaller and 1 if they
// are bigger.
func (i *Interval[T]) Compare(value T) int {
	if cmp := i.lower.Compare(value); cmp > 0 || (cmp == 0 && !i.bounds.IsLowerInclusive()) {
		return 1
	}

	if cmp := i.upper.Compare(value); cmp < 0 || (cmp == 0 && !i.bounds.IsUpperInclusive()) {
		return -1
	}

	return 0
}

// ContainsInterval returns true if every value of other is also contained in the Interval. It returns false if other
// is nil.
//
// When end points coincide, an Interval that excludes the shared value can never extend past one that includes it - it
// therefore suffices that other excludes the value or the Interval includes it, not both.
func (i *Interval[T]) ContainsInterval(other *Interval[T]) bool {
	if other == nil {
		return false
	}

	lowerCmp := other.lower.Compare(i.lower)
	lowerOK := lowerCmp > 0 || (lowerCmp == 0 && (!other.bounds.IsLowerInclusive() || i.bounds.IsLowerInclusive()))

	upperCmp := other.upper.Compare(i.upper)
	upperOK := upperCmp < 0 || (upperCmp == 0 && (!other.bounds.IsUpperInclusive() || i.bounds.IsUpperInclusive()))

	return lowerOK && upperOK
}

// IsContainedBy returns true if every value of the Interval is also contained in other. It returns false if other is
// nil.
func (i *Interval[T]) IsContainedBy(other *Interval[T]) bool {
	if other == nil {
		return false
	}

	return other.ContainsInterval(i)
}

// Overlaps returns true if the Interval and other share at least one common value. It returns false if other is nil
// or if either Interval is empty. Two Intervals that only touch at a single boundary value overlap only if both sides
// include that value.
func (i *Interval[T]) Overlaps(other *Interval[T]) bool {
	if other == nil || i.IsEmpty() || other.IsEmpty() {
		return false
	}

	if cmp := i.lower.Compare(other.upper); cmp > 0 || (cmp == 0 && !(i.bounds.IsLowerInclusive() && other.bounds.IsUpperInclusive())) {
		return false
	}

	if cmp := i.upper.Compare(other.lower); cmp < 0 || (cmp == 0 && !(i.bounds.IsUpperInclusive() && other.bounds.IsLowerInclusive())) {
		return false
	}

	return true
}

// Intersect returns the Interval that contains exactly the values shared with other, or nil if the two Intervals do
// not overlap.
//
// Note: if other is nil or empty, the receiver itself is returned. This is a deliberate departure from strict
// set-intersection semantics that is kept for compatibility - callers must not assume that a nil or empty other
// behaves like the empty set.
func (i *Interval[T]) Intersect(other *Interval[T]) *Interval[T] {
	if other == nil || other.IsEmpty() {
		return i
	}

	if !i.Overlaps(other) {
		return nil
	}

	lower, lowerInclusive := i.lower, i.bounds.IsLowerInclusive()
	switch cmp := i.lower.Compare(other.lower); {
	case cmp < 0:
		lower, lowerInclusive = other.lower, other.bounds.IsLowerInclusive()
	case cmp == 0:
		lowerInclusive = lowerInclusive && other.bounds.IsLowerInclusive()
	}

	upper, upperInclusive := i.upper, i.bounds.IsUpperInclusive()
	switch cmp := i.upper.Compare(other.upper); {
	case cmp > 0:
		upper, upperInclusive = other.upper, other.bounds.IsUpperInclusive()
	case cmp == 0:
		upperInclusive = upperInclusive && other.bounds.IsUpperInclusive()
	}

	// Overlaps already guarantees a valid ordering of the picked end points, so the re-validation cannot fail.
	return lo.PanicOnErr(New(lower, upper, BoundsTypeFromInclusivity(lowerInclusive, upperInclusive)))
}

// Equal returns true if the Interval spans the same values as other, i.e. if the end points compare equal and the
// BoundsTypes match. It returns false if other is nil.
func (i *Interval[T]) Equal(other *Interval[T]) bool {
	if other == nil {
		return false
	}

	return i.lower.Compare(other.lower) == 0 && i.upper.Compare(other.upper) == 0 && i.bounds == other.bounds
}

// String returns a human-readable version of the Interval in mathematical notation (i.e. "[1, 3)"), with the bracket
// glyphs reflecting the inclusivity of the two bounds.
func (i *Interval[T]) String() string {
	return lo.Cond(i.bounds.IsLowerInclusive(), "[", "(") +
		stringify.Interface(i.lower) + ", " + stringify.Interface(i.upper) +
		lo.Cond(i.bounds.IsUpperInclusive(), "]", ")")
}
