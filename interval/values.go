package interval

import (
	"math"
	"strconv"

	"github.com/iotaledger/hive.go/lo"
)

// region Int16Value ///////////////////////////////////////////////////////////////////////////////////////////////////

// Int16Value is a wrapper for int16 values that makes these values compatible with the Value constraint so they
// can be used as Interval end points.
type Int16Value int16

// NewInt16 creates a new Interval spanning the values between the given int16 end points.
func NewInt16(lower int16, upper int16, bounds BoundsType) (*Interval[Int16Value], error) {
	return New(Int16Value(lower), Int16Value(upper), bounds)
}

// Compare returns 0 if the other value is identical, -1 if it is bigger and 1 if it is smaller.
func (i Int16Value) Compare(other Int16Value) int {
	return lo.Compare(i, other)
}

// String returns a human-readable version of the value.
func (i Int16Value) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// code contract (make sure the type implements all required methods).
var _ Value[Int16Value] = Int16Value(0)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Int32Value ///////////////////////////////////////////////////////////////////////////////////////////////////

// Int32Value is a wrapper for int32 values that makes these values compatible with the Value constraint so they
// can be used as Interval end points.
type Int32Value int32

// NewInt32 creates a new Interval spanning the values between the given int32 end points.
func NewInt32(lower int32, upper int32, bounds BoundsType) (*Interval[Int32Value], error) {
	return New(Int32Value(lower), Int32Value(upper), bounds)
}

// Compare returns 0 if the other value is identical, -1 if it is bigger and 1 if it is smaller.
func (i Int32Value) Compare(other Int32Value) int {
	return lo.Compare(i, other)
}

// String returns a human-readable version of the value.
func (i Int32Value) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// code contract (make sure the type implements all required methods).
var _ Value[Int32Value] = Int32Value(0)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Int64Value ///////////////////////////////////////////////////////////////////////////////////////////////////

// Int64Value is a wrapper for int64 values that makes these values compatible with the Value constraint so they
// can be used as Interval end points.
type Int64Value int64

// NewInt64 creates a new Interval spanning the values between the given int64 end points.
func NewInt64(lower int64, upper int64, bounds BoundsType) (*Interval[Int64Value], error) {
	return New(Int64Value(lower), Int64Value(upper), bounds)
}

// Compare returns 0 if the other value is identical, -1 if it is bigger and 1 if it is smaller.
func (i Int64Value) Compare(other Int64Value) int {
	return lo.Compare(i, other)
}

// String returns a human-readable version of the value.
func (i Int64Value) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// code contract (make sure the type implements all required methods).
var _ Value[Int64Value] = Int64Value(0)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Float32Value /////////////////////////////////////////////////////////////////////////////////////////////////

// Float32Value is a wrapper for float32 values that makes these values compatible with the Value constraint so
// they can be used as Interval end points. It orders values by the IEEE 754 total order instead of the raw relational
// operators, so that signed zero and NaN values sort deterministically across runs and platforms.
type Float32Value float32

// NewFloat32 creates a new Interval spanning the values between the given float32 end points.
func NewFloat32(lower float32, upper float32, bounds BoundsType) (*Interval[Float32Value], error) {
	return New(Float32Value(lower), Float32Value(upper), bounds)
}

// Compare returns 0 if the other value is identical, -1 if it is bigger and 1 if it is smaller (under the IEEE 754
// total order: -NaN < -Inf < ... < -0 < +0 < ... < +Inf < +NaN).
func (f Float32Value) Compare(other Float32Value) int {
	return lo.Compare(totalOrderKey32(float32(f)), totalOrderKey32(float32(other)))
}

// String returns a human-readable version of the value.
func (f Float32Value) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

// code contract (make sure the type implements all required methods).
var _ Value[Float32Value] = Float32Value(0)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Float64Value /////////////////////////////////////////////////////////////////////////////////////////////////

// Float64Value is a wrapper for float64 values that makes these values compatible with the Value constraint so
// they can be used as Interval end points. It orders values by the IEEE 754 total order instead of the raw relational
// operators, so that signed zero and NaN values sort deterministically across runs and platforms.
type Float64Value float64

// NewFloat64 creates a new Interval spanning the values between the given float64 end points.
func NewFloat64(lower float64, upper float64, bounds BoundsType) (*Interval[Float64Value], error) {
	return New(Float64Value(lower), Float64Value(upper), bounds)
}

// Compare returns 0 if the other value is identical, -1 if it is bigger and 1 if it is smaller (under the IEEE 754
// total order: -NaN < -Inf < ... < -0 < +0 < ... < +Inf < +NaN).
func (f Float64Value) Compare(other Float64Value) int {
	return lo.Compare(totalOrderKey64(float64(f)), totalOrderKey64(float64(other)))
}

// String returns a human-readable version of the value.
func (f Float64Value) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// code contract (make sure the type implements all required methods).
var _ Value[Float64Value] = Float64Value(0)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region CharValue ////////////////////////////////////////////////////////////////////////////////////////////////////

// CharValue is a wrapper for unsigned 16 bit character ordinals that makes these values compatible with the Value
// constraint so they can be used as Interval end points.
type CharValue uint16

// NewChar creates a new Interval spanning the values between the given character end points.
func NewChar(lower uint16, upper uint16, bounds BoundsType) (*Interval[CharValue], error) {
	return New(CharValue(lower), CharValue(upper), bounds)
}

// Compare returns 0 if the other value is identical, -1 if it is bigger and 1 if it is smaller.
func (c CharValue) Compare(other CharValue) int {
	return lo.Compare(c, other)
}

// String returns a human-readable version of the value.
func (c CharValue) String() string {
	return strconv.QuoteRune(rune(c))
}

// code contract (make sure the type implements all required methods).
var _ Value[CharValue] = CharValue(0)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// totalOrderKey32 maps a float32 to an unsigned key whose natural order is the IEEE 754 total order of the input.
func totalOrderKey32(f float32) uint32 {
	bits := math.Float32bits(f)
	if bits&(1<<31) != 0 {
		return ^bits
	}

	return bits | 1<<31
}

// totalOrderKey64 maps a float64 to an unsigned key whose natural order is the IEEE 754 total order of the input.
func totalOrderKey64(f float64) uint64 {
	bits := math.Float64bits(f)
	if bits&(1<<63) != 0 {
		return ^bits
	}

	return bits | 1<<63
}
