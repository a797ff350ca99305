package rest

import (
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/heartmarshall/foodgram-backend/internal/config"
	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// pageEnvelope is the paginated list body.
type pageEnvelope[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// parsePage reads the page and limit query params. A malformed page number,
// or one whose row offset does not fit an int, is rejected; the limit falls
// back to the default and is clamped.
func parsePage(r *http.Request, cfg config.PaginationConfig) (domain.Page, error) {
	number := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return domain.Page{}, errBadPage
		}
		number = n
	}

	limit := queryInt(r, "limit", cfg.DefaultLimit)
	if limit <= 0 {
		limit = cfg.DefaultLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if limit > 0 && number-1 > math.MaxInt/limit {
		return domain.Page{}, errBadPage
	}

	return domain.Page{Number: number, Limit: limit}, nil
}

// newPageEnvelope builds the envelope with absolute next/previous links.
// Asking for a page past the end is an error, except for the first page.
func newPageEnvelope[T any](r *http.Request, page domain.Page, total int, results []T) (pageEnvelope[T], error) {
	if page.Number > 1 && page.Offset() >= total {
		return pageEnvelope[T]{}, errBadPage
	}
	if results == nil {
		results = []T{}
	}

	env := pageEnvelope[T]{Count: total, Results: results}
	if page.Offset()+len(results) < total {
		next := pageURL(r, page.Number+1)
		env.Next = &next
	}
	if page.Number > 1 {
		prev := pageURL(r, page.Number-1)
		env.Previous = &prev
	}
	return env, nil
}

func pageURL(r *http.Request, number int) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	q := r.URL.Query()
	if number == 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(number))
	}

	u := url.URL{Scheme: scheme, Host: r.Host, Path: r.URL.Path, RawQuery: q.Encode()}
	return u.String()
}
