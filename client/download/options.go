package download

import (
	"errors"
	"hash"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/trace"
)

// DefaultChunkSize is the number of bytes read from a body per iteration.
const DefaultChunkSize = 4 << 10

// DefaultDir returns the directory used when neither the [Source] nor
// [WithDirProvider] names one.
func DefaultDir() (string, error) {
	return filepath.Join(os.TempDir(), "Downloads"), nil
}

// Option configures a [Downloader].
type Option func(*options) error

type options struct {
	fs          afero.Fs
	logger      *slog.Logger
	tracer      trace.Tracer
	dirProvider func() (string, error)
	dispatcher  Dispatcher
	resolver    NameResolver
	chunkSize   int
	concurrency int
	sniff       bool
	progressLog bool
}

// WithFs writes downloads to fsys instead of the OS file system.
func WithFs(fsys afero.Fs) Option {
	return func(o *options) error {
		if fsys == nil {
			return errors.New("file system must not be nil")
		}
		o.fs = fsys
		return nil
	}
}

// WithLogger injects a custom [slog.Logger].
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		o.logger = logger
		return nil
	}
}

// WithTracer sets the tracer recording a span per download.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) error {
		if tracer == nil {
			return errors.New("tracer must not be nil")
		}
		o.tracer = tracer
		return nil
	}
}

// WithDirProvider supplies the directory for sources that do not name one.
// It is called once per download.
func WithDirProvider(fn func() (string, error)) Option {
	return func(o *options) error {
		if fn == nil {
			return errors.New("dir provider must not be nil")
		}
		o.dirProvider = fn
		return nil
	}
}

// WithDispatcher delivers observer callbacks through d, e.g. a [Loop].
func WithDispatcher(d Dispatcher) Option {
	return func(o *options) error {
		if d == nil {
			return errors.New("dispatcher must not be nil")
		}
		o.dispatcher = d
		return nil
	}
}

// WithNameResolver replaces the resolver picking file names.
func WithNameResolver(nr NameResolver) Option {
	return func(o *options) error {
		o.resolver = nr
		return nil
	}
}

// WithChunkSize sets the read size of the copy loop.
func WithChunkSize(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return errors.New("chunk size must be positive")
		}
		o.chunkSize = n
		return nil
	}
}

// WithConcurrency bounds the number of downloads copying at once.
// Zero means unbounded.
func WithConcurrency(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return errors.New("concurrency must not be negative")
		}
		o.concurrency = n
		return nil
	}
}

// WithContentSniffing detects the content type from the leading bytes of
// bodies that do not declare one.
func WithContentSniffing() Option {
	return func(o *options) error {
		o.sniff = true
		return nil
	}
}

// WithProgressLog logs throughput once per second while copying.
func WithProgressLog() Option {
	return func(o *options) error {
		o.progressLog = true
		return nil
	}
}

// TransferOption configures a single call to [Downloader.Start].
type TransferOption func(*transferOptions) error

type transferOptions struct {
	checksum *checksumVerifier
}

// WithChecksum verifies the written bytes against expected, the
// hex-encoded digest h produces. A mismatch fails the download.
func WithChecksum(h hash.Hash, expected string) TransferOption {
	return func(opts *transferOptions) error {
		if h == nil {
			return errors.New("hash must not be nil")
		}

		if expected == "" {
			return errors.New("expected checksum must not be empty")
		}

		opts.checksum = &checksumVerifier{hash: h, expected: expected}
		return nil
	}
}
