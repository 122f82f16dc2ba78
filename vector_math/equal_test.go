package vector_math

import "testing"

func TestAlmostEqualPrecisionBoundary(t *testing.T) {
	if CurrentPrecision() != DefaultPrecision {
		t.Fatalf("precision should start at %d but was %d", DefaultPrecision, CurrentPrecision())
	}
	if !AlmostEqual(New(1.00000000001, 2), New(1, 2)) {
		t.Errorf("difference past the precision should compare equal")
	}
	if AlmostEqual(New(1.000000001, 2), New(1, 2)) {
		t.Errorf("difference before the precision should compare unequal")
	}
	if AlmostEqual(New(1, 2), New(1, 2, 0)) {
		t.Errorf("vectors of different dimension should never be equal")
	}
	if !AlmostEqual(New(), MakeZero(0)) {
		t.Errorf("empty vectors should be equal")
	}
}

// TestAlmostEqualRoundsComponents confirms components are rounded one by one
// rather than compared by distance
func TestAlmostEqualRoundsComponents(t *testing.T) {
	if AlmostEqualN(New(0.12344), New(0.12346), 4) {
		t.Errorf("0.12344 and 0.12346 round to different values at 4 digits")
	}
	if !AlmostEqualN(New(0.12346), New(0.12354), 4) {
		t.Errorf("0.12346 and 0.12354 both round to 0.1235")
	}
	if !AlmostEqualN(New(-0.00001), New(0.00001), 3) {
		t.Errorf("-0 and 0 should compare equal")
	}
	if !AlmostEqualN(New(1234), New(1190), -2) {
		t.Errorf("1234 and 1190 both round to 1200 at -2 digits")
	}
}

func TestSetPrecision(t *testing.T) {
	t.Cleanup(func() { SetPrecision(DefaultPrecision) })

	SetPrecision(2)
	if !New(1.001).Equal(New(1.004)) {
		t.Errorf("1.001 and 1.004 should be equal at 2 digits")
	}
	SetPrecision(3)
	if New(1.001).Equal(New(1.004)) {
		t.Errorf("1.001 and 1.004 should differ at 3 digits")
	}
}
