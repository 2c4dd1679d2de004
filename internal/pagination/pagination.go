// Package pagination slices a GORM-backed collection into pages with the
// metadata envelope the API exposes. Page inputs come straight from query
// strings and are never rejected: anything unparseable falls back to a
// default, out-of-range pages are clamped into [1, pageTotal].
package pagination

import (
	"strconv"

	"gorm.io/gorm"
)

// DefaultPage is the page served when the caller does not ask for one.
const DefaultPage = 1

// Meta describes the position of a page within the full result set.
type Meta struct {
	Page           int  `json:"page"`
	PageNext       *int `json:"pageNext"`
	PagePrev       *int `json:"pagePrev"`
	PageTotal      int  `json:"pageTotal"`
	ResultsCount   int  `json:"resultsCount"`
	ResultsPerpage int  `json:"resultsPerpage"`
	ResultsTotal   int  `json:"resultsTotal"`
}

// Page is the envelope returned by paginated endpoints.
type Page[T any] struct {
	Pagination Meta `json:"pagination"`
	Results    []T  `json:"results"`
}

type options struct {
	orders   []string
	preloads []preload
}

type preload struct {
	query string
	args  []interface{}
}

// Option customizes a Paginate call.
type Option func(*options)

// WithOrder adds an ordering clause. Clauses apply in the order given; when
// none are given the page is ordered by creation time, a stable proxy for
// insertion order.
func WithOrder(order string) Option {
	return func(o *options) {
		o.orders = append(o.orders, order)
	}
}

// WithPreload eagerly loads an association on every returned entity, e.g. a
// recipe's owning user. Args pass through to GORM's Preload.
func WithPreload(query string, args ...interface{}) Option {
	return func(o *options) {
		o.preloads = append(o.preloads, preload{query: query, args: args})
	}
}

// ParseIntOr parses raw as an integer, returning fallback when raw is absent
// or not a number.
func ParseIntOr(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// Paginate counts the collection behind db, clamps the requested page into
// range and fetches that page. rawPage and rawPerPage are the untrusted query
// parameters; defaultPerPage is the caller's page size when rawPerPage is
// unusable. The result is deterministic for identical source content and
// inputs, and never an error for bad numeric input.
func Paginate[M any](db *gorm.DB, rawPage, rawPerPage string, defaultPerPage int, opts ...Option) ([]M, Meta, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if len(o.orders) == 0 {
		o.orders = []string{"created_at ASC"}
	}

	page := ParseIntOr(rawPage, DefaultPage)
	perPage := ParseIntOr(rawPerPage, defaultPerPage)
	if perPage < 1 {
		perPage = defaultPerPage
	}

	var model M
	var total int64
	if err := db.Model(&model).Count(&total).Error; err != nil {
		return nil, Meta{}, err
	}

	// Go's integer division truncates toward zero, so an empty collection
	// still yields a single empty page rather than a page total of zero.
	pageTotal := (int(total)-1)/perPage + 1

	target := page
	if target < 1 {
		target = 1
	}
	if target > pageTotal {
		target = pageTotal
	}
	skip := (target - 1) * perPage

	query := db.Model(&model).Offset(skip).Limit(perPage)
	for _, order := range o.orders {
		query = query.Order(order)
	}
	for _, p := range o.preloads {
		query = query.Preload(p.query, p.args...)
	}

	var items []M
	if err := query.Find(&items).Error; err != nil {
		return nil, Meta{}, err
	}

	meta := Meta{
		Page:           target,
		PageTotal:      pageTotal,
		ResultsCount:   len(items),
		ResultsPerpage: perPage,
		ResultsTotal:   int(total),
	}
	if target < pageTotal {
		next := target + 1
		meta.PageNext = &next
	}
	if target > 1 {
		prev := target - 1
		meta.PagePrev = &prev
	}

	return items, meta, nil
}
