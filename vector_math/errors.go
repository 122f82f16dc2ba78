package vector_math

import "errors"

var (
	// ErrDimensionMismatch is returned when operand dimensions do not fit the
	// operation: equal dimensions for Add, Subtract and Dot, exactly three for Cross.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
	// ErrZeroNorm is returned when an operation has to divide by a zero norm.
	ErrZeroNorm = errors.New("vector has zero norm")
	// ErrOverflow is returned when a result of finite components exceeds the
	// float64 range, or a norm used as a divisor is not finite.
	ErrOverflow = errors.New("vector computation overflows float64")
	// ErrIndexOutOfRange is returned by At for positions outside [0, Dim).
	ErrIndexOutOfRange = errors.New("vector index out of range")
)
