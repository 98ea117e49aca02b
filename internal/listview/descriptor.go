// Package listview is the one implementation of the admin list
// pipeline: fetch, filter, sort, paginate. Every entity screen is this
// controller plus a descriptor; none of them re-implement the
// predicate, comparator or page math.
package listview

// Mode says where filtering and pagination happen for a resource.
// Products, orders and reviews trust the backend; the smaller catalog
// screens fetch everything once and work in memory. The two modes
// produce different observable pagination counts, so the split is kept
// per entity rather than unified.
type Mode int

const (
	ServerSide Mode = iota
	ClientSide
)

// SortKey extracts a comparable key from a row. Exactly one of the two
// extractors is set: strings compare case-insensitively, numbers as
// numbers.
type SortKey[T any] struct {
	String func(T) string
	Number func(T) float64
}

// Descriptor configures the pipeline for one entity type.
type Descriptor[T any] struct {
	Resource string
	Mode     Mode

	// ID must return the same identifier the single-entity mutation
	// endpoints use.
	ID func(T) string

	// SearchFields are matched by case-insensitive substring; a row
	// matches when any field does.
	SearchFields []func(T) string

	// SortKeys maps a sortable field name to its extractor.
	SortKeys map[string]SortKey[T]

	// FilterFields maps a categorical filter name (status, category,
	// role, ...) to the row value it matches against, compared
	// case-insensitively. Only used in client-side mode; server-side
	// screens pass filters through as query parameters.
	FilterFields map[string]func(T) string
}
