package listview

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanviarora/aurum/internal/api"
)

type row struct {
	ID     string
	Name   string
	Status string
	Price  float64
}

func rowDescriptor() Descriptor[row] {
	return Descriptor[row]{
		Resource: "things",
		Mode:     ClientSide,
		ID:       func(r row) string { return r.ID },
		SearchFields: []func(row) string{
			func(r row) string { return r.Name },
		},
		SortKeys: map[string]SortKey[row]{
			"name":  {String: func(r row) string { return r.Name }},
			"price": {Number: func(r row) float64 { return r.Price }},
		},
		FilterFields: map[string]func(row) string{
			"status": func(r row) string { return r.Status },
		},
	}
}

func staticFetcher(rows []row) Fetcher[row] {
	return func(ctx context.Context, p api.ListParams) ([]row, *api.Pagination, error) {
		return rows, nil, nil
	}
}

func noDelete(ctx context.Context, id string) error { return nil }

func makeRows(n int) []row {
	rows := make([]row, n)
	for i := range rows {
		rows[i] = row{ID: fmt.Sprintf("r%02d", i+1), Name: fmt.Sprintf("Item %02d", i+1), Status: "active"}
	}
	return rows
}

func TestClientSidePagination(t *testing.T) {
	c := New(rowDescriptor(), staticFetcher(makeRows(47)), nil, noDelete, 10)
	require.NoError(t, c.Load(context.Background()))

	assert.Equal(t, 47, c.TotalItems())
	assert.Equal(t, 5, c.TotalPages())

	c.SetPage(5)
	first, last := c.VisibleRange()
	assert.Equal(t, 41, first)
	assert.Equal(t, 47, last)
	assert.Len(t, c.Rows(), 7)
}

func TestPageResetOnSearchAndPageSize(t *testing.T) {
	c := New(rowDescriptor(), staticFetcher(makeRows(47)), nil, noDelete, 10)
	require.NoError(t, c.Load(context.Background()))

	c.SetPage(4)
	c.SetSearch("Item")
	assert.Equal(t, 1, c.Page(), "search resets to page 1")

	c.SetPage(3)
	c.SetPageSize(20)
	assert.Equal(t, 1, c.Page(), "page size change resets to page 1")
	assert.Equal(t, 3, c.TotalPages())
}

func TestPageButtonsWindow(t *testing.T) {
	tests := []struct {
		current, total int
		want           []int
	}{
		{1, 3, []int{1, 2, 3}},
		{2, 5, []int{1, 2, 3, 4, 5}},
		{1, 9, []int{1, 2, 3, 4, 5}},
		{2, 9, []int{1, 2, 3, 4, 5}},
		{5, 9, []int{3, 4, 5, 6, 7}},
		{8, 9, []int{5, 6, 7, 8, 9}},
		{9, 9, []int{5, 6, 7, 8, 9}},
		{1, 0, nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PageButtons(tt.current, tt.total),
			"PageButtons(%d, %d)", tt.current, tt.total)
	}
}

func TestSortCaseInsensitiveAndToggle(t *testing.T) {
	rows := []row{{ID: "1", Name: "B"}, {ID: "2", Name: "a"}}
	c := New(rowDescriptor(), staticFetcher(rows), nil, noDelete, 10)
	require.NoError(t, c.Load(context.Background()))

	c.SetSort("name")
	got := c.Rows()
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Name, "ascending, case-insensitive")
	assert.Equal(t, "B", got[1].Name)

	// Same field again flips direction exactly.
	c.SetSort("name")
	got = c.Rows()
	assert.Equal(t, "B", got[0].Name)
	assert.Equal(t, "a", got[1].Name)

	// A new field starts ascending again.
	c.SetSort("price")
	_, asc := c.SortState()
	assert.True(t, asc)
}

func TestSortNumericField(t *testing.T) {
	rows := []row{
		{ID: "1", Name: "A", Price: 900},
		{ID: "2", Name: "B", Price: 25},
		{ID: "3", Name: "C", Price: 100},
	}
	c := New(rowDescriptor(), staticFetcher(rows), nil, noDelete, 10)
	require.NoError(t, c.Load(context.Background()))

	c.SetSort("price")
	got := c.Rows()
	// Compared as numbers, not strings: 25 < 100 < 900.
	assert.Equal(t, []float64{25, 100, 900}, []float64{got[0].Price, got[1].Price, got[2].Price})
}

func TestSortStableOnTies(t *testing.T) {
	rows := []row{
		{ID: "1", Name: "ring", Price: 5},
		{ID: "2", Name: "Ring", Price: 3},
		{ID: "3", Name: "RING", Price: 4},
	}
	c := New(rowDescriptor(), staticFetcher(rows), nil, noDelete, 10)
	require.NoError(t, c.Load(context.Background()))

	c.SetSort("name")
	got := c.Rows()
	// All three tie case-insensitively; input order is preserved.
	assert.Equal(t, []string{"1", "2", "3"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestSearchSubstringAnyField(t *testing.T) {
	rows := []row{
		{ID: "1", Name: "Gold Ring", Status: "active"},
		{ID: "2", Name: "Necklace", Status: "active"},
	}
	c := New(rowDescriptor(), staticFetcher(rows), nil, noDelete, 10)
	require.NoError(t, c.Load(context.Background()))

	c.SetSearch("ring")
	require.Len(t, c.Rows(), 1)
	assert.Equal(t, "Gold Ring", c.Rows()[0].Name)

	c.SetSearch("")
	assert.Len(t, c.Rows(), 2, "empty term matches everything")
}

func TestCategoricalFilter(t *testing.T) {
	rows := []row{
		{ID: "1", Name: "A", Status: "active"},
		{ID: "2", Name: "B", Status: "inactive"},
		{ID: "3", Name: "C", Status: "active"},
	}
	c := New(rowDescriptor(), staticFetcher(rows), nil, noDelete, 10)
	require.NoError(t, c.Load(context.Background()))

	c.SetFilter("status", "inactive")
	require.Len(t, c.Rows(), 1)
	assert.Equal(t, "B", c.Rows()[0].Name)

	c.SetFilter("status", "")
	assert.Len(t, c.Rows(), 3)
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	called := false
	del := func(ctx context.Context, id string) error { called = true; return nil }
	c := New(rowDescriptor(), staticFetcher(makeRows(3)), nil, del, 10)
	require.NoError(t, c.Load(context.Background()))

	err := c.Delete(context.Background(), "r01", false)
	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.False(t, called, "unconfirmed delete must never reach the backend")
	assert.Len(t, c.Rows(), 3)
}

func TestDeleteRemovesLocallyWithoutRefetch(t *testing.T) {
	fetches := 0
	fetch := func(ctx context.Context, p api.ListParams) ([]row, *api.Pagination, error) {
		fetches++
		return makeRows(3), nil, nil
	}
	c := New(rowDescriptor(), fetch, nil, noDelete, 10)
	require.NoError(t, c.Load(context.Background()))
	require.Equal(t, 1, fetches)

	require.NoError(t, c.Delete(context.Background(), "r02", true))

	assert.Equal(t, 1, fetches, "delete must not trigger a re-fetch")
	assert.Equal(t, 2, c.TotalItems())
	for _, r := range c.Rows() {
		assert.NotEqual(t, "r02", r.ID)
	}
}

func TestDeleteFailureLeavesListUntouched(t *testing.T) {
	del := func(ctx context.Context, id string) error { return errors.New("boom") }
	c := New(rowDescriptor(), staticFetcher(makeRows(3)), nil, del, 10)
	require.NoError(t, c.Load(context.Background()))

	err := c.Delete(context.Background(), "r01", true)
	assert.Error(t, err)
	assert.Len(t, c.Rows(), 3)
	assert.Equal(t, 3, c.TotalItems())
}

func TestLoadFailureKeepsStaleRows(t *testing.T) {
	healthy := true
	fetch := func(ctx context.Context, p api.ListParams) ([]row, *api.Pagination, error) {
		if !healthy {
			return nil, nil, &api.Error{Kind: api.KindNetwork, Message: "failed to reach the server"}
		}
		return makeRows(5), nil, nil
	}
	c := New(rowDescriptor(), fetch, nil, noDelete, 10)
	require.NoError(t, c.Load(context.Background()))
	require.Len(t, c.Rows(), 5)

	healthy = false
	err := c.Load(context.Background())
	assert.Error(t, err)
	assert.Len(t, c.Rows(), 5, "stale-but-visible beats blank")
	assert.Equal(t, "failed to reach the server", c.LastError())

	healthy = true
	require.NoError(t, c.Load(context.Background()))
	assert.Empty(t, c.LastError())
}

func TestStaleLoadDiscarded(t *testing.T) {
	c := New(rowDescriptor(), staticFetcher(nil), nil, noDelete, 10)

	oldGen, _ := c.Begin()
	newGen, _ := c.Begin()

	// The newer load lands first.
	require.NoError(t, c.Apply(newGen, makeRows(2), nil, nil))
	// The older one resolves late and must be dropped.
	require.NoError(t, c.Apply(oldGen, makeRows(40), nil, nil))

	assert.Equal(t, 2, c.TotalItems())
}

func TestServerSideModePassesStateThrough(t *testing.T) {
	desc := rowDescriptor()
	desc.Mode = ServerSide

	var got api.ListParams
	fetch := func(ctx context.Context, p api.ListParams) ([]row, *api.Pagination, error) {
		got = p
		return makeRows(10), &api.Pagination{TotalPages: 4, TotalItems: 38}, nil
	}
	c := New(desc, fetch, nil, noDelete, 10)
	c.SetSearch("gold")
	c.SetFilter("status", "active")
	c.SetSortOrder("price", false)
	c.SetPage(2)
	require.NoError(t, c.Load(context.Background()))

	assert.Equal(t, 2, got.Page)
	assert.Equal(t, 10, got.Limit)
	assert.Equal(t, "gold", got.Search)
	assert.Equal(t, "price", got.SortBy)
	assert.Equal(t, "desc", got.SortOrder)
	assert.Equal(t, "active", got.Filters["status"])

	// Backend-reported totals are trusted, not recomputed.
	assert.Equal(t, 38, c.TotalItems())
	assert.Equal(t, 4, c.TotalPages())
}

func TestServerSideNoPaginationEnvelopeInfersSinglePage(t *testing.T) {
	desc := rowDescriptor()
	desc.Mode = ServerSide
	fetch := func(ctx context.Context, p api.ListParams) ([]row, *api.Pagination, error) {
		return makeRows(6), nil, nil
	}
	c := New(desc, fetch, nil, noDelete, 10)
	require.NoError(t, c.Load(context.Background()))
	assert.Equal(t, 1, c.TotalPages())
	assert.Equal(t, 6, c.TotalItems())
}

func TestRecordForEditFallsBackToSnapshot(t *testing.T) {
	fetchOne := func(ctx context.Context, id string) (row, error) {
		return row{}, errors.New("backend down")
	}
	c := New(rowDescriptor(), staticFetcher(makeRows(3)), fetchOne, noDelete, 10)
	require.NoError(t, c.Load(context.Background()))

	got, err := c.RecordForEdit(context.Background(), "r02")
	require.NoError(t, err, "fetch failure degrades to the on-screen snapshot")
	assert.Equal(t, "r02", got.ID)
}

func TestRecordForEditPrefersFullRecord(t *testing.T) {
	fetchOne := func(ctx context.Context, id string) (row, error) {
		return row{ID: id, Name: "full record", Price: 42}, nil
	}
	c := New(rowDescriptor(), staticFetcher(makeRows(3)), fetchOne, noDelete, 10)
	require.NoError(t, c.Load(context.Background()))

	got, err := c.RecordForEdit(context.Background(), "r02")
	require.NoError(t, err)
	assert.Equal(t, "full record", got.Name)
}
