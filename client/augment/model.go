package augment

import (
	"errors"
	"fmt"
)

var (
	// ErrAugmentationFailed is returned when the augmentation policy cannot
	// produce a parameter set. The request is never sent in that case.
	ErrAugmentationFailed = errors.New("augmentation failed")
	// ErrNilAugmenter is returned by [NewPipeline] when no policy is supplied.
	ErrNilAugmenter = errors.New("augmenter must not be nil")
)

// Encoding is the transport shape that carries a request's parameters.
type Encoding int

const (
	// EncodingNone marks a request whose parameters are not rewritten:
	// payload bodies (raw, JSON, object) and body-carrying methods without
	// a structured body.
	EncodingNone Encoding = iota
	EncodingQuery
	EncodingForm
	EncodingMultipart
)

func (e Encoding) String() string {
	switch e {
	case EncodingNone:
		return "none"
	case EncodingQuery:
		return "query"
	case EncodingForm:
		return "form"
	case EncodingMultipart:
		return "multipart"
	default:
		return fmt.Sprintf("encoding(%d)", int(e))
	}
}

// Error carries the reason an augmentation policy failed.
type Error struct {
	Encoding Encoding
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s request: %v", ErrAugmentationFailed, e.Encoding, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{ErrAugmentationFailed, e.Err}
}
