package augment

import (
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/adamwoolhether/dynhttp/client/params"
	"github.com/adamwoolhether/dynhttp/client/request"
)

// Classify reports which encoding carries the parameters of o.
// Form and multipart bodies are recognized by variant. A request without a
// body uses its query string when the method does not carry a body;
// everything else passes through untouched.
func Classify(o request.Outgoing) Encoding {
	switch o.Body().Kind() {
	case request.KindForm:
		return EncodingForm
	case request.KindMultipart:
		return EncodingMultipart
	case request.KindNone:
		switch o.Method() {
		case "", http.MethodGet, http.MethodHead, http.MethodDelete, http.MethodOptions:
			return EncodingQuery
		}
	}

	return EncodingNone
}

// ClassifyHTTP reports the encoding of r judged from its method and
// Content-Type alone, without reading the body. It agrees with [Classify]
// except for a body-less method carrying a raw body, which it reports as
// EncodingQuery.
func ClassifyHTTP(r *http.Request) Encoding {
	mediaType, ps, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch {
	case mediaType == request.ContentTypeForm:
		return EncodingForm
	case strings.HasPrefix(mediaType, "multipart/") && ps["boundary"] != "":
		return EncodingMultipart
	}

	switch r.Method {
	case "", http.MethodGet, http.MethodHead, http.MethodDelete, http.MethodOptions:
		return EncodingQuery
	}

	return EncodingNone
}

// Extract returns the encoding of o and its existing parameters.
// Repeated names keep their first value. Multipart parts are opaque, so a
// multipart request always yields an empty set, as does EncodingNone.
func Extract(o request.Outgoing) (Encoding, *params.Map) {
	enc := Classify(o)
	existing := params.New()

	switch enc {
	case EncodingQuery:
		for _, seg := range strings.Split(o.URL().RawQuery, "&") {
			if seg == "" {
				continue
			}
			name, value, _ := strings.Cut(seg, "=")
			existing.Add(unescape(name), unescape(value))
		}

	case EncodingForm:
		for _, p := range o.Body().FormPairs() {
			existing.Add(p.Name, p.Value)
		}
	}

	return enc, existing
}

func unescape(s string) string {
	v, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}

	return v
}
