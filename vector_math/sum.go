package vector_math

import "math"

// accumulator sums float64 values without intermediate rounding loss. It keeps
// a list of non-overlapping partial sums (Shewchuk) and rounds once in Sum.
// The zero value is an empty sum.
type accumulator struct {
	partials []float64

	// special collects infinities and NaNs, which cannot be tracked as partials,
	// and the signed infinity of a partial sum that overflowed.
	special    float64
	hasSpecial bool
	overflow   bool
}

func (a *accumulator) Add(x float64) {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		a.special += x
		a.hasSpecial = true
		return
	}
	i := 0
	for _, y := range a.partials {
		if math.Abs(x) < math.Abs(y) {
			x, y = y, x
		}
		hi := x + y
		if math.IsInf(hi, 0) {
			a.special += hi
			a.hasSpecial = true
			a.overflow = true
			return
		}
		lo := y - (hi - x)
		if lo != 0 {
			a.partials[i] = lo
			i++
		}
		x = hi
	}
	a.partials = append(a.partials[:i], x)
}

// Sum returns the correctly rounded total of every value added so far, or a
// signed infinity once a partial sum of finite values overflowed.
func (a *accumulator) Sum() float64 {
	if a.hasSpecial {
		return a.special
	}
	n := len(a.partials)
	if n == 0 {
		return 0
	}
	n--
	hi := a.partials[n]
	lo := 0.0
	for n > 0 {
		x := hi
		n--
		y := a.partials[n]
		hi = x + y
		lo = y - (hi - x)
		if lo != 0 {
			break
		}
	}
	// Round half to even across the boundary between hi and the next partial.
	if n > 0 && ((lo < 0 && a.partials[n-1] < 0) || (lo > 0 && a.partials[n-1] > 0)) {
		y := lo * 2
		x := hi + y
		if y == x-hi {
			hi = x
		}
	}
	return hi
}
