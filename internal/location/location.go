// Package location models the addressable state of the view: a path and a
// query string, plus a browser-like navigation history over it.
package location

import (
	"net/url"

	"github.com/pkg/errors"
)

// SearchKey is the query field holding the search term
const SearchKey = "search"

// Location is a path plus query values. The zero value is "/".
type Location struct {
	Path  string
	Query url.Values
}

// Parse reads a location such as "/?search=World" or "?search=World". A full
// URL is accepted too; only its path and query are kept.
func Parse(raw string) (Location, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, errors.Wrapf(err, "invalid location %q", raw)
	}

	q, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return Location{}, errors.Wrapf(err, "invalid query in location %q", raw)
	}

	return Location{Path: u.Path, Query: q}, nil
}

// MustParse is Parse for literals known to be valid
func MustParse(raw string) Location {
	loc, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return loc
}

// Search returns the search term, "" when the field is absent
func (l Location) Search() string {
	return l.Query.Get(SearchKey)
}

// WithSearch returns a copy with the search field set to term, or removed
// entirely when term is empty. Other fields are kept.
func (l Location) WithSearch(term string) Location {
	q := make(url.Values, len(l.Query))
	for k, v := range l.Query {
		q[k] = append([]string(nil), v...)
	}

	if term != "" {
		q.Set(SearchKey, term)
	} else {
		q.Del(SearchKey)
	}

	return Location{Path: l.Path, Query: q}
}

// String encodes the location, omitting "?" when there is no query
func (l Location) String() string {
	path := l.Path
	if path == "" {
		path = "/"
	}

	encoded := l.Query.Encode()
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}

// Equal compares the encoded form, so a nil and an empty query are the same
func (l Location) Equal(other Location) bool {
	return l.String() == other.String()
}
