package download

import (
	"errors"
	"fmt"
)

var (
	ErrDownloadCancelled = errors.New("download cancelled")
	ErrChecksumMismatch  = errors.New("checksum mismatch")
	ErrGroupShutdown     = errors.New("download queue shut down")
	ErrNilBody           = errors.New("download body must not be nil")
)

// Kind classifies where a download failed.
type Kind int

const (
	// KindDestination covers resolving, clearing and creating the file.
	KindDestination Kind = iota + 1
	KindRead
	KindWrite
	// KindFlush covers syncing and closing the file after the last byte.
	KindFlush
	KindChecksum
	KindCancelled
)

func (k Kind) String() string {
	switch k {
	case KindDestination:
		return "destination"
	case KindRead:
		return "read"
	case KindWrite:
		return "write"
	case KindFlush:
		return "flush"
	case KindChecksum:
		return "checksum"
	case KindCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is delivered to [Observer.OnError] and returned from [Result.Err]
// when a download does not complete.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s stage: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s stage: %v: %s", e.Kind, e.Err, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, detail string, err error) *Error {
	return &Error{Kind: kind, Detail: detail, Err: err}
}
