package augment_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/adamwoolhether/dynhttp/client/augment"
	"github.com/adamwoolhether/dynhttp/client/params"
	"github.com/adamwoolhether/dynhttp/client/request"
)

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parsing url %q: %v", raw, err)
	}

	return u
}

func mustPipeline(t *testing.T, a augment.Augmenter) *augment.Pipeline {
	t.Helper()

	p, err := augment.NewPipeline(a,
		augment.WithLogger(slog.New(slog.DiscardHandler)),
		augment.WithTracer(noop.NewTracerProvider().Tracer("test")),
	)
	if err != nil {
		t.Fatalf("creating pipeline: %v", err)
	}

	return p
}

func TestPipeline_QueryScenario(t *testing.T) {
	p := mustPipeline(t, augment.Static("a", "9", "b", "2"))
	orig := request.New(http.MethodGet, mustURL(t, "https://x.com/x?a=1"), request.None(), nil)

	res, err := p.Apply(t.Context(), orig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := res.Request.URL().RawQuery; got != "a=1&b=2" {
		t.Errorf("expected query %q, got %q", "a=1&b=2", got)
	}
	if res.Encoding != augment.EncodingQuery {
		t.Errorf("expected query encoding, got %v", res.Encoding)
	}
	if diff := cmp.Diff([]string{"b"}, res.Added); diff != "" {
		t.Errorf("unexpected added names (-want +got):\n%s", diff)
	}
	if got := orig.URL().RawQuery; got != "a=1" {
		t.Errorf("original request mutated, query is %q", got)
	}
}

func TestPipeline_FormScenario(t *testing.T) {
	p := mustPipeline(t, augment.Static("b", "2"))
	orig := request.New(http.MethodPost, mustURL(t, "https://x.com/form"), request.Form("a", "1"), nil)

	res, err := p.Apply(t.Context(), orig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body, err := res.Request.Body().Encode()
	if err != nil {
		t.Fatalf("encoding body: %v", err)
	}
	if string(body) != "a=1&b=2" {
		t.Errorf("expected form body %q, got %q", "a=1&b=2", body)
	}
	if res.InfoURL != "https://x.com/form?a=1&b=2" {
		t.Errorf("unexpected info url %q", res.InfoURL)
	}
}

func TestPipeline_DisjointMerge(t *testing.T) {
	testCases := []struct {
		name    string
		req     func(t *testing.T) request.Outgoing
		encoded func(t *testing.T, o request.Outgoing) string
		exp     string
	}{
		{
			name: "query",
			req: func(t *testing.T) request.Outgoing {
				return request.New(http.MethodGet, mustURL(t, "https://x.com/q?z=26&m=13"), request.None(), nil)
			},
			encoded: func(t *testing.T, o request.Outgoing) string { return o.URL().RawQuery },
			exp:     "z=26&m=13&a=1&n=two+words&y=25",
		},
		{
			name: "form",
			req: func(t *testing.T) request.Outgoing {
				return request.New(http.MethodPost, mustURL(t, "https://x.com/f"), request.EncodedForm("z=26", "m=%31%33"), nil)
			},
			encoded: func(t *testing.T, o request.Outgoing) string {
				b, err := o.Body().Encode()
				if err != nil {
					t.Fatalf("encoding: %v", err)
				}
				return string(b)
			},
			exp: "z=26&m=%31%33&a=1&n=two+words&y=25",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := mustPipeline(t, augment.Static("y", "25", "a", "1", "n", "two words"))

			res, err := p.Apply(t.Context(), tc.req(t))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got := tc.encoded(t, res.Request); got != tc.exp {
				t.Errorf("expected %q, got %q", tc.exp, got)
			}
		})
	}
}

func TestPipeline_ExistingAlwaysWins(t *testing.T) {
	testCases := []struct {
		name string
		req  request.Outgoing
	}{
		{
			name: "query",
			req:  request.New(http.MethodGet, &url.URL{Scheme: "https", Host: "x.com", RawQuery: "k=orig&k=second"}, request.None(), nil),
		},
		{
			name: "form",
			req:  request.New(http.MethodPost, &url.URL{Scheme: "https", Host: "x.com"}, request.Form("k", "orig", "k", "second"), nil),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var seen string
			p := mustPipeline(t, augment.Func(func(_ context.Context, existing *params.Map) (*params.Map, error) {
				seen, _ = existing.Get("k")
				return params.FromPairs("k", "new", "other", "x"), nil
			}))

			res, err := p.Apply(t.Context(), tc.req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if seen != "orig" {
				t.Errorf("expected augmenter to see first value %q, got %q", "orig", seen)
			}
			_, after := augment.Extract(res.Request)
			if v, _ := after.Get("k"); v != "orig" {
				t.Errorf("expected existing value to win, got %q", v)
			}
			if diff := cmp.Diff([]string{"other"}, res.Added); diff != "" {
				t.Errorf("unexpected added names (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPipeline_MultipartAppendsFieldParts(t *testing.T) {
	p := mustPipeline(t, augment.Static("sign", "abc", "ts", "1"))
	orig := request.New(http.MethodPost, mustURL(t, "https://x.com/up"), request.Multipart("",
		request.FilePart("file", "a.bin", "", []byte{1, 2, 3}),
	), nil)

	res, err := p.Apply(t.Context(), orig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parts := res.Request.Body().Parts()
	var got []string
	for _, part := range parts {
		got = append(got, part.FormName()+"|"+part.FileName()+"|"+string(part.Content))
	}
	exp := []string{"file|a.bin|\x01\x02\x03", "sign||abc", "ts||1"}
	if diff := cmp.Diff(exp, got); diff != "" {
		t.Errorf("unexpected parts (-want +got):\n%s", diff)
	}
	if res.Request.Body().Boundary() != orig.Body().Boundary() {
		t.Error("expected boundary to be kept")
	}
	if len(orig.Body().Parts()) != 1 {
		t.Error("original multipart body mutated")
	}
}

func TestPipeline_Passthrough(t *testing.T) {
	testCases := []struct {
		name string
		req  request.Outgoing
	}{
		{
			name: "bare post",
			req:  request.New(http.MethodPost, &url.URL{Scheme: "https", Host: "x.com", Path: "/p"}, request.None(), nil),
		},
		{
			name: "json payload",
			req:  request.New(http.MethodPost, &url.URL{Scheme: "https", Host: "x.com", Path: "/p"}, request.JSON(`{"a":1}`), nil),
		},
		{
			name: "raw bytes",
			req:  request.New(http.MethodPut, &url.URL{Scheme: "https", Host: "x.com", Path: "/p"}, request.Raw([]byte("bin"), "application/octet-stream"), nil),
		},
		{
			name: "object",
			req:  request.New(http.MethodPatch, &url.URL{Scheme: "https", Host: "x.com", Path: "/p"}, request.Object(struct{ A int }{1}), nil),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var calls atomic.Int32
			p := mustPipeline(t, augment.Func(func(_ context.Context, existing *params.Map) (*params.Map, error) {
				calls.Add(1)
				return existing, nil
			}))

			res, err := p.Apply(t.Context(), tc.req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Encoding != augment.EncodingNone {
				t.Errorf("expected passthrough, got %v", res.Encoding)
			}
			if calls.Load() != 0 {
				t.Error("augmenter must not run for passthrough requests")
			}
			if res.Request.URL().String() != tc.req.URL().String() || res.Request.Body().Kind() != tc.req.Body().Kind() {
				t.Error("expected request to pass through unchanged")
			}
		})
	}
}

func TestPipeline_GetWithoutQuery(t *testing.T) {
	p := mustPipeline(t, augment.Timestamp("ts", func() time.Time { return time.UnixMilli(1700000000123) }))
	orig := request.New(http.MethodGet, mustURL(t, "https://x.com/list"), request.None(), nil)

	res, err := p.Apply(t.Context(), orig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := res.Request.URL().String(); got != "https://x.com/list?ts=1700000000123" {
		t.Errorf("unexpected url %q", got)
	}
}

func TestPipeline_AugmentationFailure(t *testing.T) {
	errPolicy := errors.New("no key")

	testCases := []struct {
		name   string
		a      augment.Augmenter
		expErr error
	}{
		{
			name: "policy error",
			a: augment.Func(func(context.Context, *params.Map) (*params.Map, error) {
				return nil, errPolicy
			}),
			expErr: errPolicy,
		},
		{
			name: "nil result",
			a: augment.Func(func(context.Context, *params.Map) (*params.Map, error) {
				return nil, nil
			}),
			expErr: augment.ErrAugmentationFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := mustPipeline(t, tc.a)
			orig := request.New(http.MethodGet, mustURL(t, "https://x.com/a?b=1"), request.None(), nil)

			_, err := p.Apply(t.Context(), orig)
			if !errors.Is(err, tc.expErr) {
				t.Fatalf("expected %v, got %v", tc.expErr, err)
			}
			if !errors.Is(err, augment.ErrAugmentationFailed) {
				t.Errorf("expected error to wrap ErrAugmentationFailed, got %v", err)
			}

			var aerr *augment.Error
			if !errors.As(err, &aerr) || aerr.Encoding != augment.EncodingQuery {
				t.Errorf("expected *augment.Error for query encoding, got %T", err)
			}
		})
	}
}

func TestNewPipeline_NilAugmenter(t *testing.T) {
	if _, err := augment.NewPipeline(nil); !errors.Is(err, augment.ErrNilAugmenter) {
		t.Errorf("expected ErrNilAugmenter, got %v", err)
	}
}

func TestInfoURL(t *testing.T) {
	testCases := []struct {
		name string
		base string
		p    *params.Map
		exp  string
	}{
		{name: "plain", base: "https://x.com/p", p: params.FromPairs("b", "2", "a", "1"), exp: "https://x.com/p?a=1&b=2"},
		{name: "has query", base: "https://x.com/p?x=1", p: params.FromPairs("a", "1"), exp: "https://x.com/p?x=1&a=1"},
		{name: "unescaped values", base: "https://x.com/p", p: params.FromPairs("q", "a b"), exp: "https://x.com/p?q=a b"},
		{name: "empty", base: "https://x.com/p", p: params.New(), exp: "https://x.com/p"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := augment.InfoURL(tc.base, tc.p); got != tc.exp {
				t.Errorf("expected %q, got %q", tc.exp, got)
			}
		})
	}
}

func TestRoundTripper(t *testing.T) {
	type captured struct {
		query string
		form  url.Values
		parts map[string]string
	}

	gotCh := make(chan captured, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := captured{query: r.URL.RawQuery}

		mediaType, ps, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		switch {
		case mediaType == request.ContentTypeForm:
			if err := r.ParseForm(); err != nil {
				t.Errorf("parsing form: %v", err)
			}
			got.form = r.PostForm
		case strings.HasPrefix(mediaType, "multipart/"):
			got.parts = map[string]string{}
			mr := multipart.NewReader(r.Body, ps["boundary"])
			for {
				p, err := mr.NextPart()
				if err != nil {
					break
				}
				b, _ := io.ReadAll(p)
				got.parts[p.FormName()] = string(b)
			}
		}
		gotCh <- got
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	p := mustPipeline(t, augment.Chain(
		augment.Static("app", "demo"),
		augment.HMACSignature("sign", []byte("secret")),
	))
	hc := &http.Client{Transport: augment.NewRoundTripper(p, http.DefaultTransport)}

	t.Run("get", func(t *testing.T) {
		req, _ := http.NewRequestWithContext(t.Context(), http.MethodGet, ts.URL+"/g?q=1", nil)
		resp, err := hc.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()
		got := <-gotCh

		values, _ := url.ParseQuery(got.query)
		if values.Get("q") != "1" || values.Get("app") != "demo" || values.Get("sign") == "" {
			t.Errorf("unexpected query %q", got.query)
		}
		if !strings.HasPrefix(got.query, "q=1&") {
			t.Errorf("expected existing pair first, got %q", got.query)
		}
	})

	t.Run("form", func(t *testing.T) {
		req, _ := http.NewRequestWithContext(t.Context(), http.MethodPost, ts.URL+"/f", strings.NewReader("user=bob"))
		req.Header.Set("Content-Type", request.ContentTypeForm)
		resp, err := hc.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()
		got := <-gotCh

		if got.form.Get("user") != "bob" || got.form.Get("app") != "demo" || got.form.Get("sign") == "" {
			t.Errorf("unexpected form %v", got.form)
		}
	})

	t.Run("multipart", func(t *testing.T) {
		body := request.Multipart("", request.FieldPart("title", "x"))
		payload, _ := body.Encode()
		req, _ := http.NewRequestWithContext(t.Context(), http.MethodPost, ts.URL+"/m", strings.NewReader(string(payload)))
		req.Header.Set("Content-Type", body.ContentType())
		resp, err := hc.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()
		got := <-gotCh

		if got.parts["title"] != "x" || got.parts["app"] != "demo" || got.parts["sign"] == "" {
			t.Errorf("unexpected parts %v", got.parts)
		}
	})

	t.Run("failure is not sent", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
		}))
		defer srv.Close()

		failing := mustPipeline(t, augment.Token("token", func(context.Context) (string, error) {
			return "", errors.New("expired")
		}))
		c := &http.Client{Transport: augment.NewRoundTripper(failing, nil)}

		req, _ := http.NewRequestWithContext(t.Context(), http.MethodGet, srv.URL, nil)
		if _, err := c.Do(req); !errors.Is(err, augment.ErrAugmentationFailed) {
			t.Errorf("expected ErrAugmentationFailed, got %v", err)
		}
		if hits.Load() != 0 {
			t.Error("request reached the server despite failed augmentation")
		}
	})
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

type countingBody struct {
	r    io.Reader
	read atomic.Int64
}

func (b *countingBody) Read(p []byte) (int, error) {
	n, err := b.r.Read(p)
	b.read.Add(int64(n))
	return n, err
}

func (b *countingBody) Close() error { return nil }

func refusingPipeline(t *testing.T) *augment.Pipeline {
	t.Helper()

	return mustPipeline(t, augment.Func(func(context.Context, *params.Map) (*params.Map, error) {
		t.Error("augmenter ran for a passthrough request")
		return nil, errors.New("unexpected augmentation")
	}))
}

func TestClassifyHTTP(t *testing.T) {
	testCases := []struct {
		name        string
		method      string
		contentType string
		exp         augment.Encoding
	}{
		{name: "get", method: http.MethodGet, exp: augment.EncodingQuery},
		{name: "delete", method: http.MethodDelete, exp: augment.EncodingQuery},
		{name: "form", method: http.MethodPost, contentType: request.ContentTypeForm + "; charset=utf-8", exp: augment.EncodingForm},
		{name: "multipart", method: http.MethodPost, contentType: "multipart/form-data; boundary=xyz", exp: augment.EncodingMultipart},
		{name: "multipart without boundary", method: http.MethodPost, contentType: "multipart/form-data", exp: augment.EncodingNone},
		{name: "octet stream", method: http.MethodPut, contentType: "application/octet-stream", exp: augment.EncodingNone},
		{name: "json", method: http.MethodPost, contentType: "application/json", exp: augment.EncodingNone},
		{name: "bare post", method: http.MethodPost, exp: augment.EncodingNone},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(t.Context(), tc.method, "http://example.com/p", nil)
			if tc.contentType != "" {
				req.Header.Set("Content-Type", tc.contentType)
			}

			if got := augment.ClassifyHTTP(req); got != tc.exp {
				t.Errorf("expected %v, got %v", tc.exp, got)
			}
		})
	}
}

func TestRoundTripper_PassthroughLeavesBodyUnread(t *testing.T) {
	testCases := []struct {
		name             string
		method           string
		contentType      string
		contentLength    int64
		transferEncoding []string
	}{
		{name: "chunked octet stream", method: http.MethodPut, contentType: "application/octet-stream", contentLength: -1, transferEncoding: []string{"chunked"}},
		{name: "json post", method: http.MethodPost, contentType: "application/json", contentLength: 7},
		{name: "bare post", method: http.MethodPost},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			body := &countingBody{r: strings.NewReader(`{"a":1}`)}
			req, err := http.NewRequestWithContext(t.Context(), tc.method, "http://example.com/upload", body)
			if err != nil {
				t.Fatalf("creating request: %v", err)
			}
			req.ContentLength = tc.contentLength
			req.TransferEncoding = tc.transferEncoding
			if tc.contentType != "" {
				req.Header.Set("Content-Type", tc.contentType)
			}

			var sent *http.Request
			next := roundTripFunc(func(r *http.Request) (*http.Response, error) {
				sent = r
				return &http.Response{StatusCode: http.StatusNoContent, Body: http.NoBody, Request: r}, nil
			})

			resp, err := augment.NewRoundTripper(refusingPipeline(t), next).RoundTrip(req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			resp.Body.Close()

			if sent != req {
				t.Error("expected the original request to be sent")
			}
			if n := body.read.Load(); n != 0 {
				t.Errorf("expected body left unread, %d bytes consumed", n)
			}
			if sent.ContentLength != tc.contentLength {
				t.Errorf("expected content length %d, got %d", tc.contentLength, sent.ContentLength)
			}
			if diff := cmp.Diff(tc.transferEncoding, sent.TransferEncoding); diff != "" {
				t.Errorf("transfer encoding mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRoundTripper_StreamsPassthroughUpload(t *testing.T) {
	const (
		chunk = 64 << 10
		total = 8 << 20
	)

	first := make(chan struct{})
	received := make(chan int64, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, chunk)
		n, _ := io.ReadFull(r.Body, buf)
		close(first)
		rest, _ := io.Copy(io.Discard, r.Body)
		received <- int64(n) + rest
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	// The rest of the body is only written once the server saw the first
	// chunk, so buffering the upload before sending stalls it.
	pr, pw := io.Pipe()
	go func() {
		block := bytes.Repeat([]byte{'x'}, chunk)
		if _, err := pw.Write(block); err != nil {
			return
		}
		select {
		case <-first:
		case <-time.After(5 * time.Second):
			pw.CloseWithError(errors.New("first chunk never reached the server"))
			return
		}
		for range total/chunk - 1 {
			if _, err := pw.Write(block); err != nil {
				return
			}
		}
		pw.Close()
	}()

	hc := &http.Client{Transport: augment.NewRoundTripper(refusingPipeline(t), http.DefaultTransport)}
	req, _ := http.NewRequestWithContext(t.Context(), http.MethodPut, ts.URL+"/blob", pr)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := hc.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if got := <-received; got != total {
		t.Errorf("expected server to receive %d bytes, got %d", total, got)
	}
}
