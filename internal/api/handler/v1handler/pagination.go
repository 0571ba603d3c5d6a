package v1handler

import (
	"foodgram/pkg/serrors"
	"foodgram/pkg/storage"
	"net/http"
	"net/url"
	"strconv"
)

const (
	DefaultPageSize = 6
	MaxPageSize     = 100

	pageParam  = "page"
	limitParam = "limit"
)

// Paginated is the envelope of page-number paginated listings.
type Paginated[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

type pageRequest struct {
	number uint
	size   uint
}

func (p pageRequest) storagePage() storage.Page {
	return storage.Page{Offset: (p.number - 1) * p.size, Limit: p.size}
}

// parsePage reads the page and limit query parameters. A malformed page is
// rejected while a malformed limit falls back to the default page size.
func (h Handler) parsePage(r *http.Request) (pageRequest, error) {
	p := pageRequest{number: 1, size: h.options.PageSize}

	if raw := r.URL.Query().Get(pageParam); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || n == 0 {
			return p, serrors.With(serrors.ErrNotFound, "invalid page")
		}
		p.number = uint(n)
	}

	if raw := r.URL.Query().Get(limitParam); raw != "" {
		if n, err := strconv.ParseUint(raw, 10, 32); err == nil && n > 0 {
			p.size = min(uint(n), h.options.MaxPageSize)
		}
	}

	return p, nil
}

// paginate builds the envelope for one page of results. Pages past the last
// one are not found, except the first page of an empty listing.
func paginate[T any](r *http.Request, p pageRequest, count int64, results []T) (Paginated[T], error) {
	if len(results) == 0 && p.number > 1 {
		return Paginated[T]{}, serrors.With(serrors.ErrNotFound, "invalid page")
	}
	if results == nil {
		results = []T{}
	}

	out := Paginated[T]{Count: count, Results: results}
	if int64(p.number*p.size) < count {
		next := pageURL(r, p.number+1)
		out.Next = &next
	}
	if p.number > 1 {
		prev := pageURL(r, p.number-1)
		out.Previous = &prev
	}

	return out, nil
}

// pageURL is the absolute URL of the request with the page parameter
// replaced. The first page drops the parameter.
func pageURL(r *http.Request, number uint) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	query := r.URL.Query()
	if number <= 1 {
		query.Del(pageParam)
	} else {
		query.Set(pageParam, strconv.FormatUint(uint64(number), 10))
	}

	u := url.URL{
		Scheme:   scheme,
		Host:     r.Host,
		Path:     r.URL.Path,
		RawQuery: query.Encode(),
	}

	return u.String()
}
