package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCreds struct {
	token   string
	cleared bool
}

func (f *fakeCreds) Token() string { return f.token }
func (f *fakeCreds) Clear() error  { f.cleared = true; f.token = ""; return nil }

type record struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

func TestListAttachesBearerAndAdminFlag(t *testing.T) {
	var gotAuth, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    []record{{ID: "p1", Name: "Gold Ring"}},
			"pagination": map[string]any{
				"totalPages":    3,
				"totalProducts": 25,
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &fakeCreds{token: "tok-123"})
	page, err := List[record](context.Background(), c, "products", ListParams{
		Page: 2, Limit: 10, Search: "ring",
		Filters: map[string]string{"category": "rings"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Contains(t, gotQuery, "admin=true")
	assert.Contains(t, gotQuery, "page=2")
	assert.Contains(t, gotQuery, "search=ring")
	assert.Contains(t, gotQuery, "category=rings")

	require.Len(t, page.Items, 1)
	assert.Equal(t, "p1", page.Items[0].ID)
	// totalProducts normalizes into TotalItems.
	require.NotNil(t, page.Pagination)
	assert.Equal(t, 25, page.Pagination.TotalItems)
	assert.Equal(t, 3, page.Pagination.TotalPages)
}

func TestUnauthorizedClearsCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "token expired"})
	}))
	defer srv.Close()

	creds := &fakeCreds{token: "stale"}
	c := NewClient(srv.URL, creds)
	_, err := GetOne[record](context.Background(), c, "products", "p1")

	require.Error(t, err)
	assert.True(t, NeedsLogin(err))
	assert.True(t, creds.cleared, "401 must clear stored credentials")
}

func TestForbiddenKeepsCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "admins only"})
	}))
	defer srv.Close()

	creds := &fakeCreds{token: "valid"}
	c := NewClient(srv.URL, creds)
	_, err := c.Delete(context.Background(), "users", "u1")

	require.Error(t, err)
	assert.True(t, IsForbidden(err))
	assert.False(t, NeedsLogin(err))
	assert.False(t, creds.cleared, "403 must not clear credentials")
}

func TestValidationMessageSurfacedVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "price must be positive"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &fakeCreds{})
	_, err := Create[record](context.Background(), c, "products", map[string]any{"price": -1})

	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, "price must be positive", UserMessage(err))
}

func TestApplicationFailureOn2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "product not found"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &fakeCreds{})
	_, err := GetOne[record](context.Background(), c, "products", "nope")

	require.Error(t, err)
	assert.Equal(t, "product not found", UserMessage(err))
	assert.False(t, NeedsLogin(err))
	assert.False(t, IsValidation(err))
}

func TestNetworkFailure(t *testing.T) {
	// Closed server: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL, &fakeCreds{})
	_, err := List[record](context.Background(), c, "products", ListParams{})

	require.Error(t, err)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindNetwork, apiErr.Kind)
}

func TestDeleteReturnsMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/products/p9", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "deleted"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &fakeCreds{token: "t"})
	msg, err := c.Delete(context.Background(), "products", "p9")
	require.NoError(t, err)
	assert.Equal(t, "deleted", msg)
}
