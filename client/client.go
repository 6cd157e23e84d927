package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/adamwoolhether/dynhttp/client/augment"
	"github.com/adamwoolhether/dynhttp/client/download"
	"github.com/adamwoolhether/dynhttp/client/request"
	"github.com/adamwoolhether/dynhttp/client/throttle"
)

const tracerName = "github.com/adamwoolhether/dynhttp/client"

// Client wraps the std-lib *http.Client
// It sets a default *http.Client and *http.Transport, which
// can be customized via optional funcs.
type Client struct {
	c          *http.Client
	logger     *slog.Logger
	pipeline   *augment.Pipeline
	downloader *download.Downloader
}

func Build(optFns ...Option) (*Client, error) {
	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying client option: %w", err)
		}
	}

	client := &Client{
		c:      &http.Client{},
		logger: slog.Default(),
	}

	if opts.client != nil {
		cpy := *opts.client
		client.c = &cpy
	}

	if opts.logger != nil {
		client.logger = opts.logger
	}

	if opts.timeout != nil {
		client.c.Timeout = *opts.timeout
	}

	if opts.noFollowRedirects {
		client.c.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	var transport http.RoundTripper
	switch {
	case opts.rt != nil:
		transport = opts.rt
	case opts.client != nil && opts.client.Transport != nil:
		transport = opts.client.Transport
	default:
		transport = http.DefaultTransport
	}
	if opts.userAgent != "" {
		transport = userAgent{value: opts.userAgent, base: transport}
	}
	if opts.throttle != nil {
		rt, err := throttle.NewRoundTripper(*opts.throttle, func() *slog.Logger { return client.logger }, transport)
		if err != nil {
			return nil, fmt.Errorf("configuring throttle: %w", err)
		}
		transport = rt
	}
	client.c.Transport = transport

	var tracer trace.Tracer = otel.Tracer(tracerName)
	if opts.tracer != nil {
		tracer = opts.tracer
	}

	if opts.augmenter != nil {
		p, err := augment.NewPipeline(opts.augmenter,
			augment.WithLogger(client.logger),
			augment.WithTracer(tracer),
		)
		if err != nil {
			return nil, fmt.Errorf("configuring augmentation: %w", err)
		}
		client.pipeline = p
	}

	dlOpts := slices.Concat([]download.Option{
		download.WithLogger(client.logger),
		download.WithTracer(tracer),
	}, opts.downloadOpts)
	d, err := download.New(dlOpts...)
	if err != nil {
		return nil, fmt.Errorf("configuring downloader: %w", err)
	}
	client.downloader = d

	return client, nil
}

// Do will augment and fire the request, and write response to the given dest
// object if any. An augmentation failure is returned before anything is sent.
func (c *Client) Do(ctx context.Context, o request.Outgoing, expCode int, opts ...DoOption) error {
	var settings doOpts
	for _, opt := range opts {
		err := opt(&settings)
		if err != nil {
			return err
		}
	}

	resp, err := c.send(ctx, o, expCode)
	if err != nil {
		return err
	}
	defer c.release(resp)

	if settings.responseBody != nil {
		d := json.NewDecoder(resp.Body)

		if settings.useJSONNum {
			d.UseNumber()
		}

		if err := d.Decode(settings.responseBody); err != nil {
			return fmt.Errorf("decoding body: %w", err)
		}
	}

	return nil
}

// DownloadAsync sends the request and streams a response with status
// expCode to disk in the background, reporting to obs. Request and status
// failures are returned directly; once the body is being copied, failures
// are delivered to obs and the returned Result.
func (c *Client) DownloadAsync(ctx context.Context, o request.Outgoing, expCode int, obs download.Observer, opts ...DownloadOption) (*download.Result, error) {
	var settings downloadOpts
	for _, opt := range opts {
		if err := opt(&settings); err != nil {
			return nil, err
		}
	}

	resp, err := c.send(ctx, o, expCode)
	if err != nil {
		return nil, err
	}

	sourceURL := o.URL().String()
	if resp.Request != nil && resp.Request.URL != nil {
		sourceURL = resp.Request.URL.String()
	}

	r, err := c.downloader.Start(ctx, download.Source{
		Tag:           settings.tag,
		Body:          resp.Body,
		ContentLength: resp.ContentLength,
		ContentType:   resp.Header.Get("Content-Type"),
		URL:           sourceURL,
		Dir:           settings.dir,
		Name:          settings.name,
	}, obs, settings.transfer...)
	if err != nil {
		c.release(resp)
		return nil, fmt.Errorf("download: %w", err)
	}

	return r, nil
}

// Download is [Client.DownloadAsync] followed by waiting for the outcome.
// It returns the path written.
func (c *Client) Download(ctx context.Context, o request.Outgoing, expCode int, obs download.Observer, opts ...DownloadOption) (string, error) {
	r, err := c.DownloadAsync(ctx, o, expCode, obs, opts...)
	if err != nil {
		return "", err
	}

	if err := r.Err(); err != nil {
		return "", fmt.Errorf("download: %w", err)
	}

	return r.Path(), nil
}

// Downloads returns the queue shared by every download of c.
func (c *Client) Downloads() *download.Queue {
	return c.downloader.Queue()
}

// Reachable reports whether the host behind u answers a HEAD request with
// any status. It bypasses augmentation.
func (c *Client) Reachable(ctx context.Context, u *url.URL) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, u.String(), nil)
	if err != nil {
		return fmt.Errorf("instantiating request: %w", err)
	}

	resp, err := c.c.Do(req)
	if err != nil {
		return fmt.Errorf("unreachable: %w", err)
	}
	c.release(resp)

	return nil
}

// Request builds an outgoing request with the provided information.
// It's just a convenience method that wraps the public Request func.
func (c *Client) Request(reqURL *url.URL, method string, opts ...RequestOption) (request.Outgoing, error) {
	return Request(reqURL, method, opts...)
}

// URL creates a url.URL for use in Request.
// It's just a convenience method that wraps the public URL func.
func (c *Client) URL(scheme, host, path string, opts ...URLOption) *url.URL {
	return URL(scheme, host, path, opts...)
}

// send augments o, fires it and validates the status code. On success the
// caller owns the response body.
func (c *Client) send(ctx context.Context, o request.Outgoing, expCode int) (*http.Response, error) {
	if c.pipeline != nil {
		res, err := c.pipeline.Apply(ctx, o)
		if err != nil {
			return nil, fmt.Errorf("augmenting request: %w", err)
		}
		o = res.Request
	}

	req, err := o.HTTPRequest(ctx)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("exec http do: %w", err)
	}

	if resp.StatusCode != expCode {
		defer c.release(resp)

		b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrBodySize))
		if err != nil {
			b = []byte("unable to read body")
		}

		return nil, newStatusError(resp.StatusCode, string(b))
	}

	return resp, nil
}

// release drains what is left of the body so the connection can be reused.
func (c *Client) release(resp *http.Response) {
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		c.logger.Error("failed to discard unused body", "error", err)
	}
	if err := resp.Body.Close(); err != nil {
		c.logger.Error("failed to close response body", "error", err)
	}
}

// Request builds an outgoing request with the provided information.
// Without a body option the request carries none and, for GET-like methods,
// has its query augmented.
func Request(reqURL *url.URL, method string, opts ...RequestOption) (request.Outgoing, error) {
	var settings requestOpts
	for _, opt := range opts {
		err := opt(&settings)
		if err != nil {
			return request.Outgoing{}, err
		}
	}

	if reqURL == nil {
		return request.Outgoing{}, errors.New("instantiating request: nil url")
	}

	body := request.None()
	if settings.body != nil {
		body = *settings.body
	}

	header := make(http.Header)
	for k, v := range settings.headers {
		for _, element := range v {
			header.Add(k, element)
		}
	}
	if settings.contentType != nil {
		header.Set("Content-Type", *settings.contentType)
	}
	if len(settings.cookies) > 0 {
		carrier := &http.Request{Header: header}
		for _, cookie := range settings.cookies {
			carrier.AddCookie(cookie)
		}
	}

	return request.New(method, reqURL, body, header), nil
}

// URL creates a url.URL for use in Request.
func URL(scheme, host, path string, opts ...URLOption) *url.URL {
	var settings urlOpts
	for _, opt := range opts {
		opt(&settings)
	}

	if settings.port != nil {
		host = fmt.Sprintf("%s:%d", host, *settings.port)
	}

	endpoint := url.URL{
		Scheme: scheme,
		Host:   host,
		Path:   path,
	}

	if settings.queryStrings != nil {
		queryParams := url.Values{}
		for k, v := range settings.queryStrings {
			queryParams.Add(k, v)
		}

		endpoint.RawQuery = queryParams.Encode()
	}

	return &endpoint
}
