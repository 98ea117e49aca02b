// Package dashboard aggregates the overview screen's statistics. All
// computation happens server-side; this package only fans the fetches
// out and joins them.
package dashboard

import (
	"context"
	"sync"

	"github.com/tanviarora/aurum/internal/api"
	"github.com/tanviarora/aurum/internal/entity"
)

// Snapshot is the joined result of the three stats fetches. Sections
// fail independently: a dead sales endpoint still leaves totals and
// best-sellers renderable.
type Snapshot struct {
	Stats    entity.DashboardStats
	StatsErr error

	Sales    []entity.SalesPoint
	SalesErr error

	TopProducts []entity.TopProduct
	TopErr      error
}

// Errors lists the user-facing messages of the sections that failed,
// in a fixed order.
func (s Snapshot) Errors() []string {
	var msgs []string
	for _, err := range []error{s.StatsErr, s.SalesErr, s.TopErr} {
		if err != nil {
			msgs = append(msgs, api.UserMessage(err))
		}
	}
	return msgs
}

// Fetch issues the three stats requests in parallel and waits for all
// of them before returning. Nothing is retried; a failed section is
// reported and the user re-triggers manually.
func Fetch(ctx context.Context, client *api.Client) Snapshot {
	var snap Snapshot
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		snap.Stats, snap.StatsErr = api.Get[entity.DashboardStats](ctx, client, "stats/dashboard")
	}()
	go func() {
		defer wg.Done()
		snap.Sales, snap.SalesErr = api.Get[[]entity.SalesPoint](ctx, client, "stats/sales")
	}()
	go func() {
		defer wg.Done()
		snap.TopProducts, snap.TopErr = api.Get[[]entity.TopProduct](ctx, client, "stats/top-products")
	}()

	wg.Wait()
	return snap
}
