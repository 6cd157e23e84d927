// Package dynhttp exposes the client builder and a plain *http.Client whose
// requests carry dynamically computed parameters.
package dynhttp

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/adamwoolhether/dynhttp/client"
	"github.com/adamwoolhether/dynhttp/client/augment"
)

// NewClient instantiates a new *Client with the provided options.
// If not specified, the default http.Client and http.Transport are used.
func NewClient(opts ...client.Option) (*client.Client, error) {
	return client.Build(opts...)
}

// NewTransport wraps next so every request it carries is augmented by a.
// A nil next uses http.DefaultTransport.
func NewTransport(a augment.Augmenter, next http.RoundTripper, opts ...augment.Option) (http.RoundTripper, error) {
	p, err := augment.NewPipeline(a, opts...)
	if err != nil {
		return nil, fmt.Errorf("configuring augmentation: %w", err)
	}

	return augment.NewRoundTripper(p, next), nil
}

// NewHTTPClient returns an *http.Client for callers that build their own
// *http.Request values. Query strings of body-less requests and form or
// multipart bodies are augmented by a; a failed augmentation is returned by
// Do and nothing is sent.
func NewHTTPClient(a augment.Augmenter, opts ...augment.Option) (*http.Client, error) {
	baseTransport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout: 5 * time.Second,
		}).DialContext,
		MaxIdleConns:        5,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	rt, err := NewTransport(a, baseTransport, opts...)
	if err != nil {
		return nil, err
	}

	return &http.Client{
		Transport: rt,
		Timeout:   10 * time.Second,
	}, nil
}
