// Package trips covers the featured-trips widget: the HTTP client the
// landing page uses, and the small SQLite-backed catalog service it
// talks to.
package trips

import (
	"errors"
	"net/url"
	"strings"
)

// ErrNotFound is returned when a trip ID is unknown.
var ErrNotFound = errors.New("trip not found")

// Trip is a featured trip summary as served by the backend.
type Trip struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Image       string `json:"image" yaml:"image"`
	Category    string `json:"category" yaml:"category"`
}

// NormalizeImageURL resolves ref against base so the result is absolute.
// Absolute refs are returned untouched, protocol-relative refs take the
// scheme of base, and an empty ref stays empty. If base is not a valid
// absolute URL the ref is returned as-is.
func NormalizeImageURL(base, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}

	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	if refURL.IsAbs() {
		return ref
	}

	baseURL, err := url.Parse(base)
	if err != nil || !baseURL.IsAbs() {
		return ref
	}
	// Treat the base as a directory so "img/a.jpg" lands below it.
	if !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}
	return baseURL.ResolveReference(refURL).String()
}

// normalizeAll rewrites every trip's image reference in place.
func normalizeAll(base string, list []Trip) []Trip {
	for i := range list {
		list[i].Image = NormalizeImageURL(base, list[i].Image)
	}
	return list
}
