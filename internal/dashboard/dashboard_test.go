package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tanviarora/aurum/internal/api"
)

type creds struct{}

func (creds) Token() string { return "t" }
func (creds) Clear() error  { return nil }

func TestFetchPartialSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/stats/dashboard":
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data":    map[string]any{"totalProducts": 120, "totalOrders": 48, "totalRevenue": 985000},
			})
		case "/stats/top-products":
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data":    []map[string]any{{"name": "Kundan Set", "unitsSold": 14}},
			})
		default:
			// Sales series endpoint is down.
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "sales aggregation unavailable"})
		}
	}))
	defer srv.Close()

	snap := Fetch(context.Background(), api.NewClient(srv.URL, creds{}))

	// The failed section reports; the successful ones still apply.
	assert.NoError(t, snap.StatsErr)
	assert.Equal(t, 120, snap.Stats.TotalProducts)
	assert.NoError(t, snap.TopErr)
	assert.Len(t, snap.TopProducts, 1)

	assert.Error(t, snap.SalesErr)
	assert.Equal(t, []string{"sales aggregation unavailable"}, snap.Errors())
}

func TestFetchAllHealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var data any
		switch r.URL.Path {
		case "/stats/dashboard":
			data = map[string]any{"totalProducts": 10}
		case "/stats/sales":
			data = []map[string]any{{"period": "2026-02", "orders": 5, "revenue": 250000}}
		case "/stats/top-products":
			data = []map[string]any{}
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
	}))
	defer srv.Close()

	snap := Fetch(context.Background(), api.NewClient(srv.URL, creds{}))
	assert.Empty(t, snap.Errors())
	assert.Len(t, snap.Sales, 1)
}
