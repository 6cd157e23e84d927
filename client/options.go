package client

import (
	"errors"
	"fmt"
	"hash"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/adamwoolhether/dynhttp/client/augment"
	"github.com/adamwoolhether/dynhttp/client/download"
	"github.com/adamwoolhether/dynhttp/client/request"
	"github.com/adamwoolhether/dynhttp/client/throttle"
)

// Option is a functional option for configuring a [Client] via [Build].
type Option func(*options) error
type options struct {
	client            *http.Client
	rt                http.RoundTripper
	timeout           *time.Duration
	userAgent         string
	throttle          *throttle.Config
	noFollowRedirects bool
	logger            *slog.Logger
	tracer            trace.Tracer
	augmenter         augment.Augmenter
	downloadOpts      []download.Option
}

// WithClient replaces the default [http.Client] used by the [Client].
// The client is copied; later changes to hc are not observed.
func WithClient(hc *http.Client) Option {
	return func(c *options) error {
		if hc == nil {
			return errors.New("client must not be nil")
		}
		c.client = hc
		return nil
	}
}

// WithTransport sets a custom [http.RoundTripper] as the base transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *options) error {
		if rt == nil {
			return errors.New("transport must not be nil")
		}
		c.rt = rt
		return nil
	}
}

// WithTimeout sets the overall request timeout on the underlying [http.Client].
func WithTimeout(d time.Duration) Option {
	return func(c *options) error {
		if d < 0 {
			return errors.New("timeout must not be negative")
		}
		c.timeout = &d
		return nil
	}
}

// WithUserAgent adds a persistent User-Agent header to all outgoing requests.
func WithUserAgent(header string) Option {
	return func(c *options) error {
		c.userAgent = header
		return nil
	}
}

// WithThrottle enables token-bucket rate limiting with the given requests per second and burst capacity.
func WithThrottle(rps, burst int) Option {
	return WithThrottleConfig(throttle.Config{RPS: rps, Burst: burst})
}

// WithThrottleConfig enables rate limiting from a full [throttle.Config].
func WithThrottleConfig(cfg throttle.Config) Option {
	return func(c *options) error {
		if cfg.RPS <= 0 || cfg.Burst <= 0 {
			return fmt.Errorf("rps[%d] and burst[%d] %w", cfg.RPS, cfg.Burst, throttle.ErrMustNotBeZero)
		}
		c.throttle = &cfg
		return nil
	}
}

// WithNoFollowRedirects prevents the [Client] from following HTTP redirects.
func WithNoFollowRedirects() Option {
	return func(c *options) error {
		c.noFollowRedirects = true
		return nil
	}
}

// WithLogger injects a custom [slog.Logger] into the [Client].
func WithLogger(logger *slog.Logger) Option {
	return func(c *options) error {
		c.logger = logger
		return nil
	}
}

// WithTracer sets the tracer used for augmentation and download spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *options) error {
		if tracer == nil {
			return errors.New("tracer must not be nil")
		}
		c.tracer = tracer
		return nil
	}
}

// WithAugmenter runs a on every request sent by [Client.Do] and the
// download methods before it reaches the transport.
func WithAugmenter(a augment.Augmenter) Option {
	return func(c *options) error {
		if a == nil {
			return augment.ErrNilAugmenter
		}
		c.augmenter = a
		return nil
	}
}

// WithDownloader configures the [download.Downloader] behind the download
// methods. Logger and tracer default to the client's.
func WithDownloader(opts ...download.Option) Option {
	return func(c *options) error {
		c.downloadOpts = append(c.downloadOpts, opts...)
		return nil
	}
}

// userAgent is an http.RoundTripper, enabling the persistent User-Agent header.
type userAgent struct {
	value string
	base  http.RoundTripper
}

func (ua userAgent) RoundTrip(r *http.Request) (*http.Response, error) {
	cpy := r.Clone(r.Context())
	cpy.Header.Set("User-Agent", ua.value)
	return ua.base.RoundTrip(cpy)
}

// DoOption is a functional option for [Client.Do].
type DoOption func(options *doOpts) error

type doOpts struct {
	responseBody any
	useJSONNum   bool
}

// WithDestination decodes the HTTP response body into bodyTemplate.
// bodyTemplate must be a pointer.
func WithDestination[T any](bodyTemplate *T) DoOption {
	return func(opts *doOpts) error {
		if bodyTemplate == nil {
			return errors.New("destination must not be nil")
		}
		opts.responseBody = bodyTemplate

		return nil
	}
}

// WithJSONNumb tells the JSON decoder to use [json.Decoder.UseNumber],
// preserving number precision as [json.Number] instead of float64.
func WithJSONNumb() DoOption {
	return func(opts *doOpts) error {
		opts.useJSONNum = true

		return nil
	}
}

// RequestOption is a functional option for [Request].
type RequestOption func(options *requestOpts) error

type requestOpts struct {
	body        *request.Body
	contentType *string
	cookies     []*http.Cookie
	headers     map[string][]string
}

func (o *requestOpts) setBody(b request.Body) error {
	if o.body != nil {
		return request.ErrConflictingBody
	}
	o.body = &b
	return nil
}

// WithPayload sets a JSON-encoded request body.
func WithPayload(body any) RequestOption {
	return func(opts *requestOpts) error {
		return opts.setBody(request.Object(body))
	}
}

// WithBody sets the request body, e.g. [request.Form] or [request.Multipart].
// Only one body option may be given per request.
func WithBody(body request.Body) RequestOption {
	return func(opts *requestOpts) error {
		return opts.setBody(body)
	}
}

// WithForm sets a URL-encoded form body from alternating names and values.
func WithForm(kv ...string) RequestOption {
	return WithBody(request.Form(kv...))
}

// WithContentType overrides the Content-Type derived from the body.
// Form and multipart bodies always send their own.
func WithContentType(contentType string) RequestOption {
	return func(opts *requestOpts) error {
		if contentType == "" {
			return errors.New("cannot use empty content type")
		}

		opts.contentType = &contentType

		return nil
	}
}

// WithHeaders adds custom headers to the outgoing request.
func WithHeaders(headers map[string][]string) RequestOption {
	return func(opts *requestOpts) error {
		opts.headers = headers

		return nil
	}
}

// WithCookies attaches the given cookies to the outgoing request.
func WithCookies(cookies ...*http.Cookie) RequestOption {
	return func(opts *requestOpts) error {
		opts.cookies = cookies

		return nil
	}
}

// URLOption is a functional option for [URL].
type URLOption func(options *urlOpts)

type urlOpts struct {
	queryStrings map[string]string
	port         *int
}

// WithQueryStrings appends query parameters to the URL.
func WithQueryStrings(queryKV map[string]string) URLOption {
	return func(opts *urlOpts) {
		opts.queryStrings = queryKV
	}
}

// WithPort sets the port number on the URL's host.
func WithPort(port int) URLOption {
	return func(opts *urlOpts) {
		opts.port = &port
	}
}

// DownloadOption is a functional option for the download methods.
type DownloadOption func(options *downloadOpts) error

type downloadOpts struct {
	tag      string
	dir      string
	name     string
	transfer []download.TransferOption
}

// WithTag keys the download's notifications. A UUID is generated otherwise.
func WithTag(tag string) DownloadOption {
	return func(opts *downloadOpts) error {
		opts.tag = tag
		return nil
	}
}

// WithDir saves into dir instead of the downloader's default directory.
func WithDir(dir string) DownloadOption {
	return func(opts *downloadOpts) error {
		if dir == "" {
			return errors.New("dir must not be empty")
		}
		opts.dir = dir
		return nil
	}
}

// WithFileName saves under name instead of a resolved one.
func WithFileName(name string) DownloadOption {
	return func(opts *downloadOpts) error {
		if name == "" {
			return errors.New("file name must not be empty")
		}
		opts.name = name
		return nil
	}
}

// WithChecksum enables checksum validation of the downloaded file.
// h is a [hash.Hash] instance (e.g. sha256.New()), and expected is the
// hex-encoded expected checksum string.
func WithChecksum(h hash.Hash, expected string) DownloadOption {
	return func(opts *downloadOpts) error {
		opts.transfer = append(opts.transfer, download.WithChecksum(h, expected))
		return nil
	}
}
