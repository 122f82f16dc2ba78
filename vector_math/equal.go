package vector_math

import (
	"io"
	"log"
	"sync/atomic"
)

// DefaultPrecision is the number of decimal digits compared by AlmostEqual
// unless changed with SetPrecision.
const DefaultPrecision = 10

var precision atomic.Int64

// Logger receives equality mismatch traces. It discards everything by default.
var Logger = log.New(io.Discard, "vector_math: ", log.LstdFlags)

func init() {
	precision.Store(DefaultPrecision)
}

// SetPrecision sets the process-wide number of decimal digits used by
// AlmostEqual. Negative values round to tens, hundreds and so on.
func SetPrecision(ndigits int) {
	precision.Store(int64(ndigits))
}

// CurrentPrecision returns the number of decimal digits AlmostEqual compares.
func CurrentPrecision() int {
	return int(precision.Load())
}

// AlmostEqual reports whether v1 and v2 have the same dimension and every pair
// of components is equal once each is rounded to CurrentPrecision digits.
func AlmostEqual(v1 *Vector, v2 *Vector) bool {
	return AlmostEqualN(v1, v2, CurrentPrecision())
}

// AlmostEqualN is AlmostEqual with an explicit number of decimal digits.
// Components are rounded independently, so 0.12345 and 0.12355 differ at
// four digits although they are closer than 1e-4.
func AlmostEqualN(v1 *Vector, v2 *Vector, ndigits int) bool {
	if v1.Dim() != v2.Dim() {
		Logger.Printf("dimension %d != %d", v1.Dim(), v2.Dim())
		return false
	}
	for i := range v1.components {
		a, b := round(v1.components[i], ndigits), round(v2.components[i], ndigits)
		if a != b {
			Logger.Printf("component %d: %v != %v at %d digits", i, a, b, ndigits)
			return false
		}
	}
	return true
}
