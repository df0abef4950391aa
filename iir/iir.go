// Package iir implements a fixed-point exponential smoothing filter
// for raw analog samples.
//
// The filter computes
//
//	V = V + alpha*(sample - V)
//
// where alpha is a negative power of two, 2^-alphaBits. The state is
// kept with alphaBits bits of extra precision so that no rounding
// error accumulates:
//
//	acc = acc + sample - round(acc >> alphaBits)
//	out = round(acc >> alphaBits)
//
// The accumulator is 16 bits wide, so the sample resolution plus
// alphaBits must not exceed 16 bits.
package iir

// Filter is the state of a single filtered channel. The zero value
// is a filter at rest at zero.
type Filter struct {
	acc uint16
}

// Update feeds a sample through the filter and returns the smoothed
// value. An alphaBits of zero disables smoothing.
func (f *Filter) Update(sample uint16, alphaBits uint) uint16 {
	if alphaBits == 0 {
		f.acc = sample
		return sample
	}
	// Wraps modulo 2^16 on downward steps, which is the intended
	// two's complement subtraction.
	f.acc += sample - round(f.acc, alphaBits)
	return round(f.acc, alphaBits)
}

// Value returns the current output without updating the filter.
func (f *Filter) Value(alphaBits uint) uint16 {
	if alphaBits == 0 {
		return f.acc
	}
	return round(f.acc, alphaBits)
}

// Reset returns the filter to rest at zero.
func (f *Filter) Reset() {
	f.acc = 0
}

// round returns v >> bits rounded half up. The intermediate is 32
// bits wide so the increment cannot overflow for bits == 1.
func round(v uint16, bits uint) uint16 {
	return uint16(((uint32(v) >> (bits - 1)) + 1) >> 1)
}
