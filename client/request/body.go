package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"slices"
	"strings"
)

// Content types produced by the parameter-bearing encodings.
const (
	ContentTypeForm      = "application/x-www-form-urlencoded"
	ContentTypeMultipart = "multipart/form-data"
	ContentTypeJSON      = "application/json"
	ContentTypeText      = "text/plain"
)

// ErrConflictingBody is returned when more than one body variant is
// supplied for a single request.
var ErrConflictingBody = errors.New("conflicting request body")

// Kind identifies the variant held by a [Body].
type Kind int

// Body variants. KindNone is the zero value.
const (
	KindNone Kind = iota
	KindRaw
	KindJSON
	KindObject
	KindForm
	KindMultipart
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindRaw:
		return "raw"
	case KindJSON:
		return "json"
	case KindObject:
		return "object"
	case KindForm:
		return "form"
	case KindMultipart:
		return "multipart"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Body is the immutable payload of an [Outgoing] request.
// Exactly one variant is chosen when the Body is constructed.
type Body struct {
	kind      Kind
	raw       []byte
	mediaType string
	object    any
	form      []string
	parts     []Part
	boundary  string
}

// Pair is a decoded form name/value pair.
type Pair struct {
	Name  string
	Value string
}

// None returns an empty body.
func None() Body { return Body{} }

// Raw returns a body carrying b verbatim with the given media type.
func Raw(b []byte, mediaType string) Body {
	return Body{kind: KindRaw, raw: slices.Clone(b), mediaType: mediaType}
}

// Text returns a text/plain body.
func Text(s string) Body {
	return Body{kind: KindRaw, raw: []byte(s), mediaType: ContentTypeText}
}

// JSON returns a body carrying an already encoded JSON document.
func JSON(doc string) Body {
	return Body{kind: KindJSON, raw: []byte(doc), mediaType: ContentTypeJSON}
}

// Object returns a body that is JSON encoded when the request is built.
func Object(v any) Body {
	return Body{kind: KindObject, object: v, mediaType: ContentTypeJSON}
}

// Form returns a URL-encoded form body from alternating name/value strings,
// kept in the given order. Names and values are percent-encoded.
func Form(kv ...string) Body {
	segments := make([]string, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		var v string
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		segments = append(segments, EncodePair(kv[i], v))
	}

	return Body{kind: KindForm, form: segments, mediaType: ContentTypeForm}
}

// FormValues returns a URL-encoded form body from v, sorted by key.
func FormValues(v url.Values) Body {
	return EncodedForm(strings.Split(v.Encode(), "&")...)
}

// EncodedForm returns a form body from already encoded "name=value"
// segments, which are kept byte for byte.
func EncodedForm(segments ...string) Body {
	form := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			form = append(form, s)
		}
	}

	return Body{kind: KindForm, form: form, mediaType: ContentTypeForm}
}

// Multipart returns a multipart/form-data body. An empty boundary is
// replaced by a random one, fixed for the lifetime of the Body.
func Multipart(boundary string, parts ...Part) Body {
	if boundary == "" {
		boundary = multipart.NewWriter(io.Discard).Boundary()
	}

	cloned := make([]Part, len(parts))
	for i, p := range parts {
		cloned[i] = p.clone()
	}

	return Body{kind: KindMultipart, parts: cloned, boundary: boundary, mediaType: ContentTypeMultipart}
}

// Kind returns the variant of b.
func (b Body) Kind() Kind { return b.kind }

// MediaType returns the media type the body is sent with, without parameters.
func (b Body) MediaType() string { return b.mediaType }

// Boundary returns the multipart boundary, empty for other variants.
func (b Body) Boundary() string { return b.boundary }

// FormSegments returns a copy of the encoded form segments in order.
func (b Body) FormSegments() []string { return slices.Clone(b.form) }

// FormPairs decodes the form segments in order. Segments that cannot be
// unescaped are returned as is.
func (b Body) FormPairs() []Pair {
	pairs := make([]Pair, 0, len(b.form))
	for _, seg := range b.form {
		name, value, _ := strings.Cut(seg, "=")
		pairs = append(pairs, Pair{Name: unescape(name), Value: unescape(value)})
	}

	return pairs
}

// Parts returns a copy of the multipart parts in order.
func (b Body) Parts() []Part {
	parts := make([]Part, len(b.parts))
	for i, p := range b.parts {
		parts[i] = p.clone()
	}

	return parts
}

// WithFormSegments returns a copy of a form body with segments appended.
func (b Body) WithFormSegments(segments ...string) Body {
	form := slices.Clone(b.form)
	for _, s := range segments {
		if s != "" {
			form = append(form, s)
		}
	}

	return Body{kind: KindForm, form: form, mediaType: ContentTypeForm}
}

// WithParts returns a copy of a multipart body with parts appended,
// keeping the boundary.
func (b Body) WithParts(parts ...Part) Body {
	return Multipart(b.boundary, slices.Concat(b.parts, parts)...)
}

// ContentType returns the Content-Type header value for b.
func (b Body) ContentType() string {
	if b.kind == KindMultipart {
		return mime.FormatMediaType(ContentTypeMultipart, map[string]string{"boundary": b.boundary})
	}

	return b.mediaType
}

// Encode serializes the body. A KindNone body encodes to nil.
func (b Body) Encode() ([]byte, error) {
	switch b.kind {
	case KindNone:
		return nil, nil

	case KindRaw, KindJSON:
		return slices.Clone(b.raw), nil

	case KindObject:
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(b.object); err != nil {
			return nil, fmt.Errorf("encoding object body: %w", err)
		}
		return buf.Bytes(), nil

	case KindForm:
		return []byte(strings.Join(b.form, "&")), nil

	case KindMultipart:
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		if err := w.SetBoundary(b.boundary); err != nil {
			return nil, fmt.Errorf("setting boundary: %w", err)
		}
		for i, p := range b.parts {
			pw, err := w.CreatePart(p.Header)
			if err != nil {
				return nil, fmt.Errorf("creating part %d: %w", i, err)
			}
			if _, err := pw.Write(p.Content); err != nil {
				return nil, fmt.Errorf("writing part %d: %w", i, err)
			}
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("closing multipart writer: %w", err)
		}
		return buf.Bytes(), nil

	default:
		return nil, fmt.Errorf("unknown body kind %v", b.kind)
	}
}

// Part is a single opaque multipart section.
type Part struct {
	Header  textproto.MIMEHeader
	Content []byte
}

// FieldPart returns a form-data field part.
func FieldPart(name, value string) Part {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", mime.FormatMediaType("form-data", map[string]string{"name": name}))

	return Part{Header: h, Content: []byte(value)}
}

// FilePart returns a form-data file part.
func FilePart(field, filename, contentType string, content []byte) Part {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", mime.FormatMediaType("form-data", map[string]string{"name": field, "filename": filename}))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.Set("Content-Type", contentType)

	return Part{Header: h, Content: slices.Clone(content)}
}

// FormName returns the name parameter of the part's Content-Disposition.
func (p Part) FormName() string {
	_, ps, err := mime.ParseMediaType(p.Header.Get("Content-Disposition"))
	if err != nil {
		return ""
	}

	return ps["name"]
}

// FileName returns the filename parameter of the part's Content-Disposition.
func (p Part) FileName() string {
	_, ps, err := mime.ParseMediaType(p.Header.Get("Content-Disposition"))
	if err != nil {
		return ""
	}

	return ps["filename"]
}

func (p Part) clone() Part {
	h := make(textproto.MIMEHeader, len(p.Header))
	for k, v := range p.Header {
		h[k] = slices.Clone(v)
	}

	return Part{Header: h, Content: slices.Clone(p.Content)}
}

// EncodePair percent-encodes a single name/value pair.
func EncodePair(name, value string) string {
	return url.QueryEscape(name) + "=" + url.QueryEscape(value)
}

func unescape(s string) string {
	v, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}

	return v
}
