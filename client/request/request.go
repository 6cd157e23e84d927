// Package request models an outgoing HTTP request as an immutable value
// whose body is one of a fixed set of variants, so that its parameters can
// be inspected and rewritten without touching the caller's copy.
package request

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
)

// Outgoing is an immutable description of a request. Every With* method
// returns a new value; the receiver is never modified.
type Outgoing struct {
	method string
	url    url.URL
	header http.Header
	body   Body
}

// New returns an Outgoing request. A nil header is treated as empty.
func New(method string, u *url.URL, body Body, header http.Header) Outgoing {
	o := Outgoing{
		method: strings.ToUpper(method),
		header: header.Clone(),
		body:   body,
	}
	if u != nil {
		o.url = *u
	}
	if o.header == nil {
		o.header = make(http.Header)
	}

	return o
}

// Method returns the HTTP method.
func (o Outgoing) Method() string { return o.method }

// URL returns a copy of the target URL.
func (o Outgoing) URL() *url.URL {
	u := o.url
	return &u
}

// Header returns a copy of the request headers.
func (o Outgoing) Header() http.Header { return o.header.Clone() }

// Body returns the request body.
func (o Outgoing) Body() Body { return o.body }

// WithURL returns a copy of o targeting u.
func (o Outgoing) WithURL(u *url.URL) Outgoing {
	cpy := o
	cpy.url = *u
	cpy.header = o.header.Clone()

	return cpy
}

// WithBody returns a copy of o carrying b.
func (o Outgoing) WithBody(b Body) Outgoing {
	cpy := o
	cpy.body = b
	cpy.header = o.header.Clone()

	return cpy
}

// WithHeader returns a copy of o with key set to value.
func (o Outgoing) WithHeader(key, value string) Outgoing {
	cpy := o
	cpy.header = o.header.Clone()
	cpy.header.Set(key, value)

	return cpy
}

// HTTPRequest builds the *http.Request that is actually sent.
// The Content-Type header of form and multipart bodies always matches the
// serialized payload; other bodies only set it when none is present.
func (o Outgoing) HTTPRequest(ctx context.Context) (*http.Request, error) {
	payload, err := o.body.Encode()
	if err != nil {
		return nil, err
	}

	var body io.Reader = http.NoBody
	if o.body.Kind() != KindNone {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, o.method, o.url.String(), body)
	if err != nil {
		return nil, fmt.Errorf("instantiating request: %w", err)
	}

	req.Header = o.header.Clone()

	switch o.body.Kind() {
	case KindForm, KindMultipart:
		req.Header.Set("Content-Type", o.body.ContentType())
	case KindNone:
	default:
		if req.Header.Get("Content-Type") == "" && o.body.ContentType() != "" {
			req.Header.Set("Content-Type", o.body.ContentType())
		}
	}

	return req, nil
}

// FromHTTP captures r as an Outgoing value. The body of r is read and
// closed. Form and multipart payloads are recognized by their Content-Type;
// anything else is kept as a raw body, and an unreadable multipart payload
// falls back to raw as well.
func FromHTTP(r *http.Request) (Outgoing, error) {
	var data []byte
	if r.Body != nil && r.Body != http.NoBody {
		var err error
		data, err = io.ReadAll(r.Body)
		if cerr := r.Body.Close(); err == nil && cerr != nil {
			err = cerr
		}
		if err != nil {
			return Outgoing{}, fmt.Errorf("reading request body: %w", err)
		}
	}

	header := r.Header.Clone()
	contentType := header.Get("Content-Type")
	mediaType, mediaParams, _ := mime.ParseMediaType(contentType)

	var body Body
	switch {
	case len(data) == 0 && mediaType != ContentTypeForm:
		body = None()

	case mediaType == ContentTypeForm:
		body = EncodedForm(strings.Split(string(data), "&")...)

	case strings.HasPrefix(mediaType, "multipart/") && mediaParams["boundary"] != "":
		parts, err := readParts(data, mediaParams["boundary"])
		if err != nil {
			body = Raw(data, contentType)
			break
		}
		body = Multipart(mediaParams["boundary"], parts...)

	default:
		body = Raw(data, contentType)
	}

	return New(r.Method, r.URL, body, header), nil
}

func readParts(data []byte, boundary string) ([]Part, error) {
	mr := multipart.NewReader(bytes.NewReader(data), boundary)

	var parts []Part
	for {
		p, err := mr.NextRawPart()
		if err == io.EOF {
			return parts, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading part: %w", err)
		}

		content, err := io.ReadAll(p)
		if err != nil {
			return nil, fmt.Errorf("reading part content: %w", err)
		}
		parts = append(parts, Part{Header: p.Header, Content: content})
	}
}
