package media

import (
	"net/url"
	"regexp"
	"strings"
)

var absoluteURL = regexp.MustCompile(`(?i)^https?://`)

// Resolver maps asset references to served paths under a base prefix.
type Resolver struct {
	base string
}

// NewResolver returns a Resolver for base. An empty base means "/"; a
// missing trailing slash is added.
func NewResolver(base string) Resolver {
	if base == "" {
		base = "/"
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return Resolver{base: base}
}

// Base returns the normalised base prefix, always ending in "/".
func (r Resolver) Base() string {
	if r.base == "" {
		return "/"
	}
	return r.base
}

// Resolve returns src unchanged when it is empty or an absolute http(s) URL,
// and otherwise joins it onto the base without doubling slashes.
func (r Resolver) Resolve(src string) string {
	if src == "" || absoluteURL.MatchString(src) {
		return src
	}
	base := r.Base()
	if strings.HasPrefix(src, "/") {
		return strings.TrimSuffix(base, "/") + src
	}
	clean := strings.TrimPrefix(src, "./")
	if clean == src {
		clean = strings.TrimLeft(src, "/")
	}
	return base + clean
}

var embedPattern = regexp.MustCompile(`(?:youtube\.com/embed/|youtu\.be/)([a-zA-Z0-9_-]+)`)

// EnhanceEmbedURL forces autoplay, mute and looping on recognised video
// embeds. The single-video playlist is what makes the host loop the clip.
// Anything else, including unparsable URLs, is returned unchanged.
func EnhanceEmbedURL(src string) string {
	m := embedPattern.FindStringSubmatch(src)
	if m == nil {
		return src
	}
	u, err := url.Parse(src)
	if err != nil {
		return src
	}
	q := u.Query()
	q.Set("autoplay", "1")
	q.Set("mute", "1")
	q.Set("loop", "1")
	q.Set("playlist", m[1])
	u.RawQuery = encodeOrdered(q, "autoplay", "mute", "loop", "playlist")
	return u.String()
}

// encodeOrdered keeps existing parameters first (sorted, as url.Values does)
// and appends the listed keys in the given order.
func encodeOrdered(q url.Values, tail ...string) string {
	rest := url.Values{}
	for k, v := range q {
		rest[k] = v
	}
	for _, k := range tail {
		rest.Del(k)
	}
	var b strings.Builder
	b.WriteString(rest.Encode())
	for _, k := range tail {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(q.Get(k)))
	}
	return b.String()
}
