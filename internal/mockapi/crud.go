package mockapi

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// collection is one in-memory resource with the standard CRUD surface.
// Paged collections (products, orders, reviews) filter, sort and
// paginate server-side; the rest dump the full list and leave the
// pipeline to the console, mirroring the split the real backend has.
type collection[T any] struct {
	mu    sync.Mutex
	items []T

	getID func(T) string
	setID func(*T, string)
	// stamp sets createdAt/updatedAt; created is true on insert.
	stamp    func(*T, time.Time, bool)
	validate func(T) string

	paged    bool
	totalKey string
	search   []func(T) string
	filters  map[string]func(T) string
	sorts    map[string]func(T, T) bool
}

func (col *collection[T]) register(rg *gin.RouterGroup, path string) {
	rg.GET("/"+path, col.list)
	rg.GET("/"+path+"/:id", col.get)
	rg.POST("/"+path, col.create)
	rg.PUT("/"+path+"/:id", col.update)
	rg.DELETE("/"+path+"/:id", col.remove)
}

func (col *collection[T]) all() []T {
	col.mu.Lock()
	defer col.mu.Unlock()
	out := make([]T, len(col.items))
	copy(out, col.items)
	return out
}

func (col *collection[T]) list(c *gin.Context) {
	items := col.all()

	if !col.paged {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
		return
	}

	if term := strings.ToLower(c.Query("search")); term != "" {
		var kept []T
		for _, item := range items {
			for _, field := range col.search {
				if strings.Contains(strings.ToLower(field(item)), term) {
					kept = append(kept, item)
					break
				}
			}
		}
		items = kept
	}
	for name, field := range col.filters {
		want := c.Query(name)
		if want == "" {
			continue
		}
		var kept []T
		for _, item := range items {
			if strings.EqualFold(field(item), want) {
				kept = append(kept, item)
			}
		}
		items = kept
	}

	if less, ok := col.sorts[c.Query("sortBy")]; ok {
		desc := c.Query("sortOrder") == "desc"
		sort.SliceStable(items, func(i, j int) bool {
			if desc {
				return less(items[j], items[i])
			}
			return less(items[i], items[j])
		})
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	total := len(items)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items[start:end],
		"pagination": gin.H{
			"totalPages": totalPages,
			col.totalKey: total,
		},
	})
}

func (col *collection[T]) find(id string) (int, bool) {
	for i, item := range col.items {
		if col.getID(item) == id {
			return i, true
		}
	}
	return 0, false
}

func (col *collection[T]) get(c *gin.Context) {
	col.mu.Lock()
	defer col.mu.Unlock()

	i, ok := col.find(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "record not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": col.items[i]})
}

func (col *collection[T]) create(c *gin.Context) {
	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "malformed JSON payload"})
		return
	}
	if col.validate != nil {
		if msg := col.validate(item); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
			return
		}
	}

	col.mu.Lock()
	defer col.mu.Unlock()

	col.setID(&item, uuid.NewString())
	if col.stamp != nil {
		col.stamp(&item, nowUTC(), true)
	}
	col.items = append(col.items, item)
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": item})
}

func (col *collection[T]) update(c *gin.Context) {
	col.mu.Lock()
	defer col.mu.Unlock()

	i, ok := col.find(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "record not found"})
		return
	}

	// Partial update: decode over a copy of the stored record so
	// omitted fields keep their values.
	item := col.items[i]
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "malformed JSON payload"})
		return
	}
	col.setID(&item, c.Param("id"))
	if col.validate != nil {
		if msg := col.validate(item); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
			return
		}
	}
	if col.stamp != nil {
		col.stamp(&item, nowUTC(), false)
	}
	col.items[i] = item
	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

func (col *collection[T]) remove(c *gin.Context) {
	col.mu.Lock()
	defer col.mu.Unlock()

	i, ok := col.find(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "record not found"})
		return
	}
	col.items = append(col.items[:i], col.items[i+1:]...)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "record deleted"})
}
