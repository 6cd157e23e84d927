package augment

import (
	"fmt"
	"net/http"

	"github.com/adamwoolhether/dynhttp/client/request"
)

// roundTripper is an http.RoundTripper, running the pipeline on every
// outbound request before handing it to next.
type roundTripper struct {
	pipeline *Pipeline
	next     http.RoundTripper
}

// NewRoundTripper returns an http.RoundTripper that augments each request
// with p. A nil next uses http.DefaultTransport. When augmentation fails the
// request is not sent and the error is returned. Requests [ClassifyHTTP]
// reports as EncodingNone go to next as they are, body unread.
func NewRoundTripper(p *Pipeline, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return roundTripper{pipeline: p, next: next}
}

func (rt roundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	if ClassifyHTTP(r) == EncodingNone {
		return rt.next.RoundTrip(r)
	}

	out, err := request.FromHTTP(r)
	if err != nil {
		return nil, fmt.Errorf("capturing request: %w", err)
	}

	res, err := rt.pipeline.Apply(r.Context(), out)
	if err != nil {
		return nil, err
	}

	req, err := res.Request.HTTPRequest(r.Context())
	if err != nil {
		return nil, fmt.Errorf("rebuilding request: %w", err)
	}
	req.Host = r.Host

	return rt.next.RoundTrip(req)
}
