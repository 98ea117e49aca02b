package listview

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tanviarora/aurum/internal/api"
)

// ErrNotConfirmed is returned when a delete is attempted without the
// confirmation flag. No delete ever reaches the backend without it.
var ErrNotConfirmed = errors.New("delete not confirmed")

// Fetcher loads one page (server-side mode) or the whole collection
// (client-side mode) of already-formatted rows.
type Fetcher[T any] func(ctx context.Context, params api.ListParams) ([]T, *api.Pagination, error)

// FetchOne loads a single full record, used by the edit path to
// recover fields the list display trimmed.
type FetchOne[T any] func(ctx context.Context, id string) (T, error)

// Deleter removes one record on the backend.
type Deleter func(ctx context.Context, id string) error

// Controller drives one entity list screen. It is written for a
// single-goroutine event loop (one-shot command or bubbletea update
// function); loads may complete out of order, so each carries a
// generation and stale results are discarded rather than applied.
type Controller[T any] struct {
	desc     Descriptor[T]
	fetch    Fetcher[T]
	fetchOne FetchOne[T]
	del      Deleter

	all  []T // client-side mode: the full unfiltered collection
	rows []T // current page, post-pipeline

	search    string
	filters   map[string]string
	sortField string
	sortAsc   bool
	page      int
	pageSize  int

	totalItems int
	totalPages int

	gen     uint64
	loaded  bool
	lastErr string
}

func New[T any](desc Descriptor[T], fetch Fetcher[T], fetchOne FetchOne[T], del Deleter, pageSize int) *Controller[T] {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Controller[T]{
		desc:     desc,
		fetch:    fetch,
		fetchOne: fetchOne,
		del:      del,
		filters:  map[string]string{},
		sortAsc:  true,
		page:     1,
		pageSize: pageSize,
	}
}

// Load fetches and applies synchronously. TUI callers that fetch on a
// background command use Begin/Apply directly instead.
func (c *Controller[T]) Load(ctx context.Context) error {
	gen, params := c.Begin()
	rows, pg, err := c.fetch(ctx, params)
	return c.Apply(gen, rows, pg, err)
}

// Begin starts a load: bumps the generation and builds the request
// shape for the current state.
func (c *Controller[T]) Begin() (uint64, api.ListParams) {
	c.gen++
	params := api.ListParams{}
	if c.desc.Mode == ServerSide {
		params.Page = c.page
		params.Limit = c.pageSize
		params.Search = c.search
		params.SortBy = c.sortField
		if c.sortField != "" {
			params.SortOrder = "asc"
			if !c.sortAsc {
				params.SortOrder = "desc"
			}
		}
		params.Filters = c.filters
	}
	return c.gen, params
}

// Fetch runs the configured fetcher. Callers that load on a background
// command pair it with Begin and Apply; Load does all three.
func (c *Controller[T]) Fetch(ctx context.Context, params api.ListParams) ([]T, *api.Pagination, error) {
	return c.fetch(ctx, params)
}

// Apply finishes a load. A result whose generation is no longer
// current is dropped: a stale response must never overwrite newer
// state. On failure the previously displayed rows stay visible and the
// error becomes the screen's error state.
func (c *Controller[T]) Apply(gen uint64, rows []T, pg *api.Pagination, err error) error {
	if gen != c.gen {
		return nil
	}
	if err != nil {
		c.lastErr = api.UserMessage(err)
		return err
	}
	c.lastErr = ""
	c.loaded = true

	switch c.desc.Mode {
	case ServerSide:
		c.rows = rows
		if pg != nil {
			c.totalPages = pg.TotalPages
			c.totalItems = pg.TotalItems
		} else {
			c.totalPages = 1
			c.totalItems = len(rows)
		}
	case ClientSide:
		c.all = rows
		c.project()
	}
	return nil
}

// project runs the in-memory pipeline: search, categorical filters,
// sort, then page slicing.
func (c *Controller[T]) project() {
	filtered := make([]T, 0, len(c.all))
	for _, row := range c.all {
		if c.matches(row) {
			filtered = append(filtered, row)
		}
	}

	if key, ok := c.desc.SortKeys[c.sortField]; ok {
		asc := c.sortAsc
		sort.SliceStable(filtered, func(i, j int) bool {
			cmp := compareKey(key, filtered[i], filtered[j])
			if asc {
				return cmp < 0
			}
			return cmp > 0
		})
	}

	c.totalItems = len(filtered)
	c.totalPages = (c.totalItems + c.pageSize - 1) / c.pageSize
	if c.totalPages == 0 {
		c.totalPages = 1
	}
	if c.page > c.totalPages {
		c.page = c.totalPages
	}

	start := (c.page - 1) * c.pageSize
	end := start + c.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	if start > len(filtered) {
		start = len(filtered)
	}
	c.rows = filtered[start:end]
}

func (c *Controller[T]) matches(row T) bool {
	if c.search != "" {
		term := strings.ToLower(c.search)
		hit := false
		for _, field := range c.desc.SearchFields {
			if strings.Contains(strings.ToLower(field(row)), term) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	for name, want := range c.filters {
		if want == "" {
			continue
		}
		field, ok := c.desc.FilterFields[name]
		if !ok {
			continue
		}
		if !strings.EqualFold(field(row), want) {
			return false
		}
	}
	return true
}

// compareKey orders two rows by one key. String keys compare
// lower-cased and byte-wise (not locale-aware); ties are 0 and the
// surrounding stable sort preserves input order.
func compareKey[T any](key SortKey[T], a, b T) int {
	if key.Number != nil {
		x, y := key.Number(a), key.Number(b)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	}
	x := strings.ToLower(key.String(a))
	y := strings.ToLower(key.String(b))
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// SetSearch replaces the search term and resets to page 1. Server-side
// screens need a reload afterwards; client-side screens re-project
// immediately.
func (c *Controller[T]) SetSearch(term string) {
	c.search = term
	c.page = 1
	if c.desc.Mode == ClientSide && c.loaded {
		c.project()
	}
}

// SetFilter sets one categorical filter ("" clears it) and resets to
// page 1.
func (c *Controller[T]) SetFilter(name, value string) {
	if value == "" {
		delete(c.filters, name)
	} else {
		c.filters[name] = value
	}
	c.page = 1
	if c.desc.Mode == ClientSide && c.loaded {
		c.project()
	}
}

// SetSort selects a sort field: re-selecting the current field flips
// direction, a new field starts ascending.
func (c *Controller[T]) SetSort(field string) {
	if field == c.sortField {
		c.sortAsc = !c.sortAsc
	} else {
		c.sortField = field
		c.sortAsc = true
	}
	if c.desc.Mode == ClientSide && c.loaded {
		c.project()
	}
}

// SetSortOrder sets field and direction explicitly (one-shot commands
// with --sort/--order flags).
func (c *Controller[T]) SetSortOrder(field string, asc bool) {
	c.sortField = field
	c.sortAsc = asc
	if c.desc.Mode == ClientSide && c.loaded {
		c.project()
	}
}

// SetPageSize changes the page size and resets to page 1.
func (c *Controller[T]) SetPageSize(n int) {
	if n <= 0 {
		return
	}
	c.pageSize = n
	c.page = 1
	if c.desc.Mode == ClientSide && c.loaded {
		c.project()
	}
}

// SetPage jumps to a page, clamped to the known range.
func (c *Controller[T]) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	if c.totalPages > 0 && n > c.totalPages {
		n = c.totalPages
	}
	c.page = n
	if c.desc.Mode == ClientSide && c.loaded {
		c.project()
	}
}

func (c *Controller[T]) NextPage() { c.SetPage(c.page + 1) }
func (c *Controller[T]) PrevPage() { c.SetPage(c.page - 1) }

// Rows is the current visible page.
func (c *Controller[T]) Rows() []T { return c.rows }

func (c *Controller[T]) Page() int       { return c.page }
func (c *Controller[T]) PageSize() int   { return c.pageSize }
func (c *Controller[T]) TotalItems() int { return c.totalItems }
func (c *Controller[T]) TotalPages() int { return c.totalPages }
func (c *Controller[T]) Search() string  { return c.search }
func (c *Controller[T]) Loaded() bool    { return c.loaded }

// Mode reports where this resource's pipeline runs.
func (c *Controller[T]) Mode() Mode { return c.desc.Mode }

// SortFields lists the sortable field names, ordered for stable
// presentation.
func (c *Controller[T]) SortFields() []string {
	fields := make([]string, 0, len(c.desc.SortKeys))
	for name := range c.desc.SortKeys {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	return fields
}

// SortState reports the current sort field and direction.
func (c *Controller[T]) SortState() (field string, asc bool) { return c.sortField, c.sortAsc }

// LastError is the screen's error state; "" when the last load
// succeeded.
func (c *Controller[T]) LastError() string { return c.lastErr }

// VisibleRange is the 1-indexed row span of the current page, (0, 0)
// when the list is empty.
func (c *Controller[T]) VisibleRange() (first, last int) {
	if c.totalItems == 0 {
		return 0, 0
	}
	first = (c.page-1)*c.pageSize + 1
	last = c.page * c.pageSize
	if last > c.totalItems {
		last = c.totalItems
	}
	return first, last
}

// PageButtons is the numbered page strip: all pages when five or
// fewer, else a five-wide window centered on the current page and
// clamped to the valid range.
func (c *Controller[T]) PageButtons() []int {
	return PageButtons(c.page, c.totalPages)
}

func PageButtons(current, total int) []int {
	if total < 1 {
		return nil
	}
	start, count := 1, total
	if total > 5 {
		count = 5
		start = current - 2
		if start < 1 {
			start = 1
		}
		if start+4 > total {
			start = total - 4
		}
	}
	pages := make([]int, count)
	for i := range pages {
		pages[i] = start + i
	}
	return pages
}

// Delete removes one record. The confirmed flag is the hard contract:
// without it nothing is sent. On success the row is removed from local
// state by identifier; the list is not re-fetched. On failure the list
// is untouched and the error is surfaced.
func (c *Controller[T]) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	if err := c.del(ctx, id); err != nil {
		return err
	}

	drop := func(rows []T) []T {
		out := rows[:0:0]
		for _, row := range rows {
			if c.desc.ID(row) != id {
				out = append(out, row)
			}
		}
		return out
	}

	switch c.desc.Mode {
	case ClientSide:
		c.all = drop(c.all)
		c.project()
	case ServerSide:
		before := len(c.rows)
		c.rows = drop(c.rows)
		if removed := before - len(c.rows); removed > 0 && c.totalItems >= removed {
			c.totalItems -= removed
		}
	}
	return nil
}

// RecordForEdit returns the record to populate an edit form with: the
// full backend record when the re-fetch works, else the display
// snapshot already on screen. Only the snapshot-fallback path swallows
// the fetch error; that degradation is deliberate.
func (c *Controller[T]) RecordForEdit(ctx context.Context, id string) (T, error) {
	var snapshot T
	found := false
	for _, row := range c.rows {
		if c.desc.ID(row) == id {
			snapshot = row
			found = true
			break
		}
	}

	if c.fetchOne != nil {
		if full, err := c.fetchOne(ctx, id); err == nil {
			return full, nil
		} else if !found {
			return snapshot, err
		}
	}
	if !found {
		var zero T
		return zero, fmt.Errorf("no record %s in the current list", id)
	}
	return snapshot, nil
}
