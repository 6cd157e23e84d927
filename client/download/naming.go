package download

import (
	"mime"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/adamwoolhether/dynhttp/client/mimes"
)

// DefaultFallbackExtension is appended when no other extension can be found.
const DefaultFallbackExtension = "tmpl"

// urlPattern accepts scheme://host[:port]/path[?query][#fragment] shapes.
// Anything it rejects is never mined for a file name.
var urlPattern = regexp.MustCompile(
	`^(?:https?|ftps?)://[\w\-]+(?:\.[\w\-]+)*(?::\d+)?(?:/[\w\-.~%+@!$&'()*,;=:]*)*(?:\?[\w\-.,@?^=%&:/~+#;]*)?(?:#\S*)?$`,
)

// NameResolver picks the on-disk name of a download. The zero value uses the
// wall clock, the default MIME table and [DefaultFallbackExtension].
type NameResolver struct {
	Now      func() time.Time
	Table    *mimes.Table
	Fallback string
}

// ResolveName resolves a name with the zero [NameResolver].
func ResolveName(explicit, rawURL, contentType string) string {
	return NameResolver{}.Resolve(explicit, rawURL, contentType)
}

// Resolve returns a non-empty file name. An explicit name wins, then the last
// non-empty URL path segment, then the current time in milliseconds. A name without a dot gets an extension from the URL, the
// content type or the fallback, in that order.
func (nr NameResolver) Resolve(explicit, rawURL, contentType string) string {
	name := explicit
	if name == "" {
		name = nameFromURL(rawURL)
	}
	if name == "" {
		name = strconv.FormatInt(nr.now().UnixMilli(), 10)
	}

	if strings.Contains(name, ".") {
		return name
	}

	return name + "." + nr.suffix(rawURL, contentType)
}

func (nr NameResolver) suffix(rawURL, contentType string) string {
	if ext := extFromURL(rawURL); ext != "" {
		return ext
	}

	mediaType := mediaTypeOf(contentType)
	if mediaType != "" {
		table := nr.Table
		if table == nil {
			table = mimes.Default()
		}
		if ext, ok := table.ExtensionFromMimeType(mediaType); ok {
			return ext
		}

		if _, sub, ok := strings.Cut(mediaType, "/"); ok && sub != "" {
			return sub
		}
	}

	if nr.Fallback != "" {
		return nr.Fallback
	}
	return DefaultFallbackExtension
}

func (nr NameResolver) now() time.Time {
	if nr.Now != nil {
		return nr.Now()
	}
	return time.Now()
}

// nameFromURL returns the last non-empty path segment of rawURL, or "" when
// rawURL does not look like a URL.
func nameFromURL(rawURL string) string {
	if rawURL == "" || !urlPattern.MatchString(rawURL) {
		return ""
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	p := strings.TrimRight(u.Path, "/")
	seg := p[strings.LastIndex(p, "/")+1:]
	if seg == "." || seg == ".." {
		return ""
	}

	return seg
}

// extFromURL returns what follows the last dot of the URL's file name.
func extFromURL(rawURL string) string {
	seg := nameFromURL(rawURL)
	dot := strings.LastIndex(seg, ".")
	if dot < 0 {
		return ""
	}

	return seg[dot+1:]
}

func mediaTypeOf(contentType string) string {
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		return mt
	}

	mt, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(mt))
}
