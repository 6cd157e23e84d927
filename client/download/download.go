package download

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "github.com/adamwoolhether/dynhttp/client/download"
	sniffLen   = 3072
)

// Source describes a body to save.
type Source struct {
	// Tag keys the notifications of the download. A random UUID is used when empty.
	Tag  string
	Body io.Reader
	// ContentLength is the declared size, negative when unknown.
	ContentLength int64
	ContentType   string
	// URL the body was fetched from; mined for a file name.
	URL string
	// Dir overrides the directory from [WithDirProvider].
	Dir string
	// Name overrides the resolved file name.
	Name string
}

// Downloader streams bodies to files. It is safe for concurrent use.
type Downloader struct {
	fs          afero.Fs
	logger      *slog.Logger
	tracer      trace.Tracer
	dirProvider func() (string, error)
	dispatcher  Dispatcher
	resolver    NameResolver
	chunkSize   int
	sniff       bool
	progressLog bool
	queue       *Queue
}

// New returns a Downloader writing to the OS file system unless
// configured otherwise.
func New(optFns ...Option) (*Downloader, error) {
	opts := options{
		fs:          afero.NewOsFs(),
		logger:      slog.Default(),
		tracer:      otel.Tracer(tracerName),
		dirProvider: DefaultDir,
		dispatcher:  inline,
		chunkSize:   DefaultChunkSize,
	}
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying option: %w", err)
		}
	}

	return &Downloader{
		fs:          opts.fs,
		logger:      opts.logger,
		tracer:      opts.tracer,
		dirProvider: opts.dirProvider,
		dispatcher:  opts.dispatcher,
		resolver:    opts.resolver,
		chunkSize:   opts.chunkSize,
		sniff:       opts.sniff,
		progressLog: opts.progressLog,
		queue:       newQueue(opts.concurrency),
	}, nil
}

// Queue returns the queue every download of d runs on.
func (d *Downloader) Queue() *Queue { return d.queue }

// Start copies src.Body to disk on its own goroutine and reports to obs.
// Once Start returns a nil error the download owns src.Body and closes it if
// it is an [io.Closer]. Failures after that point are delivered to
// [Observer.OnError] and returned by [Result.Err].
func (d *Downloader) Start(ctx context.Context, src Source, obs Observer, optFns ...TransferOption) (*Result, error) {
	if src.Body == nil {
		return nil, ErrNilBody
	}

	var topts transferOptions
	for _, opt := range optFns {
		if err := opt(&topts); err != nil {
			return nil, fmt.Errorf("applying option: %w", err)
		}
	}

	if obs == nil {
		obs = ObserverFuncs{}
	}
	if src.Tag == "" {
		src.Tag = uuid.NewString()
	}

	n := newNotifier(src.Tag, obs, d.dispatcher, d.logger)
	body := &onceCloser{r: src.Body}

	work := func(ctx context.Context) (string, error) {
		return d.run(ctx, n, body, src, topts)
	}
	reject := func(err error) error {
		_ = body.Close()
		e := rejected(err)
		n.start(src.ContentLength)
		n.fail(e)
		return e
	}

	return d.queue.Start(ctx, src.Tag, work, reject), nil
}

// Download runs Start and waits for the outcome.
func (d *Downloader) Download(ctx context.Context, src Source, obs Observer, optFns ...TransferOption) (string, error) {
	r, err := d.Start(ctx, src, obs, optFns...)
	if err != nil {
		return "", err
	}

	if err := r.Err(); err != nil {
		return "", err
	}
	return r.Path(), nil
}

func (d *Downloader) run(ctx context.Context, n *notifier, body *onceCloser, src Source, topts transferOptions) (string, error) {
	ctx, span := d.tracer.Start(ctx, "download", trace.WithAttributes(
		attribute.String("download.tag", n.tag),
		attribute.Int64("download.total", src.ContentLength),
	))
	defer span.End()

	defer func() {
		if err := body.Close(); err != nil {
			d.logger.Warn("closing download body", "tag", n.tag, "error", err)
		}
	}()
	// Unblocks a Read stuck on the network once ctx ends.
	stop := context.AfterFunc(ctx, func() { _ = body.Close() })
	defer stop()

	fail := func(e *Error) (string, error) {
		span.RecordError(e)
		span.SetStatus(codes.Error, e.Kind.String())
		d.logger.Error("download failed", "tag", n.tag, "stage", e.Kind.String(), "error", e)
		n.fail(e)
		return "", e
	}

	// Start goes out before the sniff so a slow first read does not hold it.
	n.start(src.ContentLength)

	var r io.Reader = body
	contentType := src.ContentType
	if contentType == "" && d.sniff {
		br := bufio.NewReaderSize(body, sniffLen)
		head, _ := br.Peek(sniffLen)
		contentType = mimetype.Detect(head).String()
		r = br
	}

	path, err := d.destination(src, contentType)
	if err != nil {
		return fail(newError(KindDestination, "resolving directory", err))
	}
	span.SetAttributes(attribute.String("download.path", path))
	d.logger.Info("download started", "tag", n.tag, "path", path, "total", src.ContentLength)

	file, err := d.create(path)
	if err != nil {
		return fail(newError(KindDestination, path, err))
	}

	closed := false
	defer func() {
		if closed {
			return
		}
		if err := file.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			d.logger.Error("defer closing download file", "tag", n.tag, "error", err)
		}
	}()

	var w io.Writer = file
	if topts.checksum != nil {
		w = io.MultiWriter(file, topts.checksum)
	}

	var rl *rateLogger
	if d.progressLog {
		rl = newRateLogger(d.logger, n.tag)
	}

	state := newTransferState(path, src.ContentLength)
	buf := make([]byte, d.chunkSize)
	for {
		if ctx.Err() != nil {
			return fail(cancelled(ctx))
		}

		nr, rerr := r.Read(buf)
		if nr > 0 {
			if _, werr := w.Write(buf[:nr]); werr != nil {
				return fail(newError(KindWrite, path, werr))
			}
			if p, due := state.advance(nr); due {
				n.progress(state.read, state.total, p)
			}
			rl.observe(state)
		}

		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			if ctx.Err() != nil {
				return fail(cancelled(ctx))
			}
			return fail(newError(KindRead, fmt.Sprintf("after %d bytes", state.read), rerr))
		}
	}

	if err := file.Sync(); err != nil {
		return fail(newError(KindFlush, path, err))
	}
	closed = true
	if err := file.Close(); err != nil {
		return fail(newError(KindFlush, path, err))
	}

	if err := topts.checksum.Verify(); err != nil {
		var derr *Error
		if errors.As(err, &derr) {
			return fail(derr)
		}
		return fail(newError(KindChecksum, path, err))
	}

	rl.complete(state)
	span.SetAttributes(attribute.Int64("download.bytes", state.read))
	d.logger.Info("download complete", "tag", n.tag, "path", state.path, "bytes", state.read)

	n.succeed(state.path)
	return state.path, nil
}

func (d *Downloader) destination(src Source, contentType string) (string, error) {
	dir := src.Dir
	if dir == "" {
		var err error
		if dir, err = d.dirProvider(); err != nil {
			return "", err
		}
		if dir == "" {
			return "", errors.New("dir provider returned an empty path")
		}
	}

	return filepath.Join(dir, d.resolver.Resolve(src.Name, src.URL, contentType)), nil
}

// create replaces any file at path with an empty one.
func (d *Downloader) create(path string) (afero.File, error) {
	if err := d.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating directory: %w", err)
	}

	if err := d.fs.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("removing existing file: %w", err)
	}

	file, err := d.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("creating file: %w", err)
	}

	return file, nil
}

func cancelled(ctx context.Context) *Error {
	return newError(KindCancelled, context.Cause(ctx).Error(), ErrDownloadCancelled)
}

func rejected(err error) *Error {
	if errors.Is(err, ErrGroupShutdown) {
		return newError(KindCancelled, "", ErrGroupShutdown)
	}
	return newError(KindCancelled, err.Error(), ErrDownloadCancelled)
}

// onceCloser closes the wrapped reader at most once, so the copy loop and a
// context watcher can both release it.
type onceCloser struct {
	r    io.Reader
	once sync.Once
	err  error
}

func (c *onceCloser) Read(p []byte) (int, error) { return c.r.Read(p) }

func (c *onceCloser) Close() error {
	c.once.Do(func() {
		if rc, ok := c.r.(io.Closer); ok {
			c.err = rc.Close()
		}
	})
	return c.err
}
