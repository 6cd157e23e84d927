package augment

import (
	"strings"

	"github.com/adamwoolhether/dynhttp/client/params"
	"github.com/adamwoolhether/dynhttp/client/request"
)

// Rewrite returns a copy of o carrying every augmented parameter whose name
// is not already in existing, in the augmented map's order. Existing data is
// copied verbatim and always wins a name collision; the colliding new value
// is dropped. Only new names and values are percent-encoded. The names that
// were applied are returned alongside the new request.
//
// Multipart requests get one form-data field part per new parameter,
// appended after the original parts.
func Rewrite(o request.Outgoing, enc Encoding, existing, augmented *params.Map) (request.Outgoing, []string) {
	var added []string
	var pairs []string
	for name, value := range augmented.All() {
		if existing.Has(name) {
			continue
		}
		added = append(added, name)
		pairs = append(pairs, request.EncodePair(name, value))
	}

	if len(added) == 0 {
		return o, nil
	}

	switch enc {
	case EncodingQuery:
		u := o.URL()
		query := u.RawQuery
		if query != "" && !strings.HasSuffix(query, "&") {
			query += "&"
		}
		u.RawQuery = query + strings.Join(pairs, "&")
		u.ForceQuery = false
		return o.WithURL(u), added

	case EncodingForm:
		return o.WithBody(o.Body().WithFormSegments(pairs...)), added

	case EncodingMultipart:
		parts := make([]request.Part, 0, len(added))
		for _, name := range added {
			value, _ := augmented.Get(name)
			parts = append(parts, request.FieldPart(name, value))
		}
		return o.WithBody(o.Body().WithParts(parts...)), added

	default:
		return o, nil
	}
}

// InfoURL renders params onto base as a query string, joined with "&" when
// base already holds a "?" or "&" past its first byte and "?" otherwise.
// Values are written unescaped. It is a diagnostic form of a form-encoded
// request and is never sent.
func InfoURL(base string, p *params.Map) string {
	if p.Len() == 0 {
		return base
	}

	var sb strings.Builder
	sb.WriteString(base)
	if strings.IndexByte(base, '&') > 0 || strings.IndexByte(base, '?') > 0 {
		sb.WriteByte('&')
	} else {
		sb.WriteByte('?')
	}
	sb.WriteString(p.Canonical())

	return sb.String()
}
