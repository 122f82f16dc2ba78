package vector_math

import (
	"math"
	"strconv"
)

// ToRad is a helper function to turn degrees to radians
func ToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// ToDeg is a helper function to turn radians to degrees
func ToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// round rounds x to ndigits decimal digits. The decimal conversion is exact,
// ties go to even.
func round(x float64, ndigits int) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	if ndigits < 0 {
		p := math.Pow10(-ndigits)
		return math.RoundToEven(x/p) * p
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', ndigits, 64), 64)
	if err != nil {
		return x
	}
	return r
}
