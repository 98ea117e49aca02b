// Package mockapi is an in-memory stand-in for the storefront backend.
// It implements the admin REST contract (envelope, bearer auth, the
// status-code error taxonomy) so the console can be developed and
// integration-tested without the real service.
package mockapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tanviarora/aurum/internal/entity"
)

// Token is the bearer token the mock accepts after login.
const Token = "mock-admin-token"

type Server struct {
	router *gin.Engine
	data   *store
}

// NewServer builds a mock backend seeded with sample jewelry data.
func NewServer() *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	server := &Server{
		router: router,
		data:   seededStore(),
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	api.POST("/auth/login", s.login)
	api.GET("/health", s.healthCheck)

	authed := api.Group("", s.requireBearer)
	{
		s.data.products.register(authed, "products")
		s.data.categories.register(authed, "categories")
		s.data.collections.register(authed, "collections")
		s.data.occasions.register(authed, "occasions")
		s.data.banners.register(authed, "banners")
		s.data.users.register(authed, "users")
		s.data.orders.register(authed, "orders")
		s.data.reviews.register(authed, "reviews")

		authed.GET("/stats/dashboard", s.dashboardStats)
		authed.GET("/stats/sales", s.salesStats)
		authed.GET("/stats/top-products", s.topProducts)
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "email and a password of at least 6 characters are required",
		})
		return
	}

	// Any well-formed credentials work; the mock only checks shape.
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"token": Token,
			"user": gin.H{
				"_id":   "admin-1",
				"name":  "Store Admin",
				"email": req.Email,
				"role":  "admin",
			},
		},
	})
}

// requireBearer rejects missing tokens with 401 and wrong ones with
// 403, so both branches of the console's error handling are reachable
// against the mock.
func (s *Server) requireBearer(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "authentication required",
		})
		return
	}
	if header != "Bearer "+Token {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "access denied",
		})
		return
	}
	c.Next()
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "aurum-mock-api",
	})
}

func (s *Server) dashboardStats(c *gin.Context) {
	products := s.data.products.all()
	orders := s.data.orders.all()
	users := s.data.users.all()

	stats := entity.DashboardStats{
		TotalProducts: len(products),
		TotalOrders:   len(orders),
		TotalUsers:    len(users),
	}
	for _, p := range products {
		if p.IsActive {
			stats.ActiveProducts++
		}
	}
	for _, o := range orders {
		stats.TotalRevenue += o.TotalAmount
		if o.Status == "pending" {
			stats.PendingOrders++
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}

func (s *Server) salesStats(c *gin.Context) {
	buckets := map[string]*entity.SalesPoint{}
	var order []string
	for _, o := range s.data.orders.all() {
		period := o.CreatedAt.Format("2006-01")
		pt, ok := buckets[period]
		if !ok {
			pt = &entity.SalesPoint{Period: period}
			buckets[period] = pt
			order = append(order, period)
		}
		pt.Orders++
		pt.Revenue += o.TotalAmount
	}

	points := make([]entity.SalesPoint, 0, len(order))
	for _, period := range order {
		points = append(points, *buckets[period])
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": points})
}

func (s *Server) topProducts(c *gin.Context) {
	totals := map[string]*entity.TopProduct{}
	var order []string
	for _, o := range s.data.orders.all() {
		for _, item := range o.Items {
			tp, ok := totals[item.ProductRef]
			if !ok {
				tp = &entity.TopProduct{ProductRef: item.ProductRef, Name: item.Name}
				totals[item.ProductRef] = tp
				order = append(order, item.ProductRef)
			}
			tp.UnitsSold += item.Quantity
			tp.Revenue += item.Price * float64(item.Quantity)
		}
	}

	top := make([]entity.TopProduct, 0, len(order))
	for _, ref := range order {
		top = append(top, *totals[ref])
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": top})
}

// Handler exposes the router for httptest servers.
func (s *Server) Handler() http.Handler { return s.router }

// Start runs the HTTP server.
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}

func nowUTC() time.Time { return time.Now().UTC() }
