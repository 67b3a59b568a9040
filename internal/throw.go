package internal

import "github.com/pkg/errors"

// Threading errors through the recursive ring operations would add a lot of
// noise for conditions that only arise from bad arguments. Instead, we panic
// with a TriangulateError, and the public API recovers it into an error.

var (
	ErrInvalidDimension   = errors.New("invalid dimension")
	ErrInvalidHoleIndices = errors.New("invalid hole indices")
	ErrInvalidTriangles   = errors.New("invalid triangle indices")
	ErrMixedDimension     = errors.New("rings have mixed dimensions")
	ErrUnresolvableHole   = errors.New("unresolvable hole")
)

type TriangulateError struct {
	error
}

func (e TriangulateError) Unwrap() error {
	return e.error
}

// Panic with a TriangulateError wrapping one of the sentinel errors.
func throw(err error, format string, args ...interface{}) {
	panic(TriangulateError{errors.Wrapf(err, format, args...)})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError.error
		}
		panic(r)
	}
	return nil
}
