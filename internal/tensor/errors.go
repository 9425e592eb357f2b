package tensor

import "github.com/pkg/errors"

// Sentinel errors. Callers match them with errors.Is; the messages returned
// to users carry the wrapped context.
var (
	// ErrInvalidArgument reports a precondition violation detected before any
	// computation ran, e.g. input buffers of different lengths.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedDType reports an element type outside an operation's
	// type constraint.
	ErrUnsupportedDType = errors.New("unsupported data type")

	// ErrShapeMismatch reports statically incompatible shapes during shape
	// inference. It is a kind of ErrInvalidArgument.
	ErrShapeMismatch = errors.WithMessage(ErrInvalidArgument, "shape mismatch")
)

func invalidf(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

func unsupportedf(format string, args ...any) error {
	return errors.Wrapf(ErrUnsupportedDType, format, args...)
}

// InvalidArgument wraps ErrInvalidArgument with a formatted message.
func InvalidArgument(format string, args ...any) error {
	return invalidf(format, args...)
}

// UnsupportedDType wraps ErrUnsupportedDType for the given data type.
func UnsupportedDType(op string, dt DataType) error {
	return unsupportedf("%s: %s (only float32/float64 supported)", op, dt)
}
