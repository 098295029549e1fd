package qoi2

import "github.com/pkg/errors"

// Error kinds returned by the core codec. Callers distinguish them with
// errors.Is against the sentinels below; Error additionally carries a
// message naming what failed.
type Kind int

const (
	// KindInvalidArgument covers nil input, zero dimensions, bad channel or
	// colorspace values, pixel-count overflow, and unsupported requested
	// output channel counts.
	KindInvalidArgument Kind = iota
	// KindInvalidHeader covers a magic mismatch or a header field that
	// fails validation.
	KindInvalidHeader
	// KindTruncated covers a byte stream shorter than the minimum
	// header-plus-padding length.
	KindTruncated
	// KindAllocationFailure covers an output buffer that could not be
	// allocated.
	KindAllocationFailure
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindInvalidHeader:
		return "invalid header"
	case KindTruncated:
		return "truncated stream"
	case KindAllocationFailure:
		return "allocation failure"
	default:
		return "unknown error"
	}
}

var (
	ErrInvalidArgument   = errors.New("qoi2: invalid argument")
	ErrInvalidHeader     = errors.New("qoi2: invalid header")
	ErrTruncated         = errors.New("qoi2: truncated stream")
	ErrAllocationFailure = errors.New("qoi2: allocation failure")
)

func sentinelFor(k Kind) error {
	switch k {
	case KindInvalidHeader:
		return ErrInvalidHeader
	case KindTruncated:
		return ErrTruncated
	case KindAllocationFailure:
		return ErrAllocationFailure
	default:
		return ErrInvalidArgument
	}
}

// Error wraps a Kind with context about what failed, while remaining
// comparable against the package sentinels through errors.Is.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return sentinelFor(e.Kind)
}

func (e *Error) Cause() error {
	return e.cause
}

func newError(kind Kind, message string) error {
	return errors.WithStack(&Error{Kind: kind, Message: message})
}
