package mockapi

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/tanviarora/aurum/internal/entity"
)

type store struct {
	products    *collection[entity.Product]
	categories  *collection[entity.Category]
	collections *collection[entity.Collection]
	occasions   *collection[entity.Occasion]
	banners     *collection[entity.Banner]
	users       *collection[entity.User]
	orders      *collection[entity.Order]
	reviews     *collection[entity.Review]
}

var validate = validator.New()

func validateProduct(p entity.Product) string {
	if err := validate.Var(p.Name, "required,min=2"); err != nil {
		return "product name is required"
	}
	if err := validate.Var(p.Price, "gt=0"); err != nil {
		return "price must be positive"
	}
	if err := validate.Var(p.Stock, "gte=0"); err != nil {
		return "stock cannot be negative"
	}
	return ""
}

func validateNamed(name string) string {
	if err := validate.Var(name, "required,min=2"); err != nil {
		return "name is required"
	}
	return ""
}

func seededStore() *store {
	now := time.Now().UTC()
	day := 24 * time.Hour

	s := &store{
		products: &collection[entity.Product]{
			getID: func(p entity.Product) string { return p.ID },
			setID: func(p *entity.Product, id string) { p.ID = id },
			stamp: func(p *entity.Product, t time.Time, created bool) {
				if created {
					p.CreatedAt = t
				}
				p.UpdatedAt = t
			},
			validate: validateProduct,
			paged:    true,
			totalKey: "totalProducts",
			search: []func(entity.Product) string{
				func(p entity.Product) string { return p.Name },
				func(p entity.Product) string { return p.Description },
				func(p entity.Product) string { return p.SKU },
			},
			filters: map[string]func(entity.Product) string{
				"category": func(p entity.Product) string { return p.Category },
				"status": func(p entity.Product) string {
					if p.IsActive {
						return "active"
					}
					return "inactive"
				},
			},
			sorts: map[string]func(a, b entity.Product) bool{
				"name":  func(a, b entity.Product) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) },
				"price": func(a, b entity.Product) bool { return a.Price < b.Price },
				"stock": func(a, b entity.Product) bool { return a.Stock < b.Stock },
				"createdAt": func(a, b entity.Product) bool {
					return a.CreatedAt.Before(b.CreatedAt)
				},
			},
		},
		categories: &collection[entity.Category]{
			getID:    func(c entity.Category) string { return c.ID },
			setID:    func(c *entity.Category, id string) { c.ID = id },
			validate: func(c entity.Category) string { return validateNamed(c.Name) },
			stamp: func(c *entity.Category, t time.Time, created bool) {
				if created {
					c.CreatedAt = t
				}
				c.UpdatedAt = t
			},
		},
		collections: &collection[entity.Collection]{
			getID:    func(c entity.Collection) string { return c.ID },
			setID:    func(c *entity.Collection, id string) { c.ID = id },
			validate: func(c entity.Collection) string { return validateNamed(c.Name) },
			stamp: func(c *entity.Collection, t time.Time, created bool) {
				if created {
					c.CreatedAt = t
				}
				c.UpdatedAt = t
			},
		},
		occasions: &collection[entity.Occasion]{
			getID:    func(o entity.Occasion) string { return o.ID },
			setID:    func(o *entity.Occasion, id string) { o.ID = id },
			validate: func(o entity.Occasion) string { return validateNamed(o.Name) },
			stamp: func(o *entity.Occasion, t time.Time, created bool) {
				if created {
					o.CreatedAt = t
				}
				o.UpdatedAt = t
			},
		},
		banners: &collection[entity.Banner]{
			getID:    func(b entity.Banner) string { return b.ID },
			setID:    func(b *entity.Banner, id string) { b.ID = id },
			validate: func(b entity.Banner) string { return validateNamed(b.Title) },
			stamp: func(b *entity.Banner, t time.Time, created bool) {
				if created {
					b.CreatedAt = t
				}
				b.UpdatedAt = t
			},
		},
		users: &collection[entity.User]{
			getID: func(u entity.User) string { return u.ID },
			setID: func(u *entity.User, id string) { u.ID = id },
			stamp: func(u *entity.User, t time.Time, created bool) {
				if created {
					u.CreatedAt = t
				}
				u.UpdatedAt = t
			},
		},
		orders: &collection[entity.Order]{
			getID:    func(o entity.Order) string { return o.ID },
			setID:    func(o *entity.Order, id string) { o.ID = id },
			paged:    true,
			totalKey: "totalOrders",
			search: []func(entity.Order) string{
				func(o entity.Order) string { return o.OrderNumber },
				func(o entity.Order) string { return o.CustomerName },
				func(o entity.Order) string { return o.CustomerEmail },
			},
			filters: map[string]func(entity.Order) string{
				"status": func(o entity.Order) string { return o.Status },
			},
			sorts: map[string]func(a, b entity.Order) bool{
				"totalAmount": func(a, b entity.Order) bool { return a.TotalAmount < b.TotalAmount },
				"createdAt":   func(a, b entity.Order) bool { return a.CreatedAt.Before(b.CreatedAt) },
			},
			stamp: func(o *entity.Order, t time.Time, created bool) {
				if created && o.CreatedAt.IsZero() {
					o.CreatedAt = t
				}
				o.UpdatedAt = t
			},
		},
		reviews: &collection[entity.Review]{
			getID:    func(r entity.Review) string { return r.ID },
			setID:    func(r *entity.Review, id string) { r.ID = id },
			paged:    true,
			totalKey: "totalReviews",
			search: []func(entity.Review) string{
				func(r entity.Review) string { return r.Product },
				func(r entity.Review) string { return r.Comment },
			},
			filters: map[string]func(entity.Review) string{
				"status": func(r entity.Review) string {
					if r.IsActive {
						return "active"
					}
					return "inactive"
				},
			},
			sorts: map[string]func(a, b entity.Review) bool{
				"rating":    func(a, b entity.Review) bool { return a.Rating < b.Rating },
				"createdAt": func(a, b entity.Review) bool { return a.CreatedAt.Before(b.CreatedAt) },
			},
			stamp: func(r *entity.Review, t time.Time, created bool) {
				if created {
					r.CreatedAt = t
				}
				r.UpdatedAt = t
			},
		},
	}

	s.categories.items = []entity.Category{
		{ID: "cat-rings", Name: "Rings", Description: "Engagement and everyday rings", IsActive: true, CreatedAt: now.Add(-90 * day)},
		{ID: "cat-necklaces", Name: "Necklaces", Description: "Chains, pendants and sets", IsActive: true, CreatedAt: now.Add(-90 * day)},
		{ID: "cat-earrings", Name: "Earrings", Description: "Studs, jhumkas and drops", IsActive: true, CreatedAt: now.Add(-80 * day)},
		{ID: "cat-bangles", Name: "Bangles", Description: "Bangles and bracelets", IsActive: false, CreatedAt: now.Add(-70 * day)},
	}

	s.collections.items = []entity.Collection{
		{ID: "col-bridal", Name: "Bridal 2026", Description: "Wedding season picks", IsFeatured: true, IsActive: true, CreatedAt: now.Add(-60 * day)},
		{ID: "col-minimal", Name: "Everyday Minimal", Description: "Light-weight daily wear", IsActive: true, CreatedAt: now.Add(-45 * day)},
	}

	s.occasions.items = []entity.Occasion{
		{ID: "occ-wedding", Name: "Wedding", IsActive: true, CreatedAt: now.Add(-60 * day)},
		{ID: "occ-anniversary", Name: "Anniversary", IsActive: true, CreatedAt: now.Add(-60 * day)},
		{ID: "occ-festive", Name: "Festive", IsActive: true, CreatedAt: now.Add(-50 * day)},
	}

	s.products.items = []entity.Product{
		{
			ID: "prod-001", Name: "Classic Gold Ring", Description: "22k gold band",
			SKU: "RNG-001", Price: 38500, Stock: 12, Category: "Rings",
			Tags: []string{"gold", "22k"}, IsActive: true,
			Images: []entity.Image{
				{URL: "/img/rng-001-side.jpg"},
				{URL: "/img/rng-001-front.jpg", IsPrimary: true},
			},
			Rating: 4.6, ReviewCount: 31, CreatedAt: now.Add(-40 * day),
		},
		{
			ID: "prod-002", Name: "Kundan Bridal Necklace", Description: "Kundan and pearl bridal set",
			SKU: "NCK-014", Price: 145000, SalePrice: 129500, Stock: 3,
			Category: "Necklaces", Collection: "Bridal 2026", Occasion: "Wedding",
			Tags: []string{"bridal", "kundan", "pearl"}, IsActive: true,
			Images: []entity.Image{{URL: "/img/nck-014.jpg", IsPrimary: true}},
			Rating: 4.9, ReviewCount: 12, CreatedAt: now.Add(-35 * day),
		},
		{
			ID: "prod-003", Name: "Silver Jhumka Earrings", Description: "Oxidised silver jhumkas",
			SKU: "EAR-203", Price: 4200, Stock: 40, Category: "Earrings",
			Tags: []string{"silver", "jhumka"}, IsActive: true,
			Rating: 4.2, ReviewCount: 58, CreatedAt: now.Add(-20 * day),
		},
		{
			ID: "prod-004", Name: "Temple Bangle Pair", Description: "Antique temple work bangles",
			SKU: "BNG-077", Price: 56800, Stock: 0, Category: "Bangles",
			Tags: []string{"temple", "antique"}, IsActive: false,
			CreatedAt: now.Add(-15 * day),
		},
	}

	s.banners.items = []entity.Banner{
		{
			ID: "bn-festive", Title: "Festive Gold Sale", Position: "home-hero",
			StartDate: now.Add(-5 * day), EndDate: now.Add(10 * day),
			IsActive: true, CreatedAt: now.Add(-10 * day),
		},
		{
			ID: "bn-bridal", Title: "Bridal Preview 2027", Position: "home-strip",
			StartDate: now.Add(20 * day), EndDate: now.Add(50 * day),
			IsActive: true, CreatedAt: now.Add(-3 * day),
		},
		{
			ID: "bn-monsoon", Title: "Monsoon Offer", Position: "home-hero",
			StartDate: now.Add(-60 * day), EndDate: now.Add(-30 * day),
			IsActive: true, CreatedAt: now.Add(-65 * day),
		},
	}

	s.users.items = []entity.User{
		{ID: "user-1", Name: "Priya Sharma", Email: "priya@example.com", Role: "customer", IsActive: true, CreatedAt: now.Add(-100 * day)},
		{ID: "user-2", Name: "Rahul Mehta", Email: "rahul@example.com", Role: "customer", IsActive: true, CreatedAt: now.Add(-70 * day)},
		{ID: "user-3", Name: "Store Admin", Email: "admin@example.com", Role: "admin", IsActive: true, CreatedAt: now.Add(-200 * day)},
		{ID: "user-4", Name: "Dormant Account", Email: "old@example.com", Role: "customer", IsActive: false, CreatedAt: now.Add(-300 * day)},
	}

	s.orders.items = []entity.Order{
		{
			ID: "ord-1", OrderNumber: "ORD-1041", CustomerName: "Priya Sharma",
			CustomerEmail: "priya@example.com", TotalAmount: 42700, Status: "delivered",
			PaymentStatus: "paid",
			Items: []entity.OrderItem{
				{ProductRef: "prod-001", Name: "Classic Gold Ring", Quantity: 1, Price: 38500},
				{ProductRef: "prod-003", Name: "Silver Jhumka Earrings", Quantity: 1, Price: 4200},
			},
			CreatedAt: now.Add(-25 * day),
		},
		{
			ID: "ord-2", OrderNumber: "ORD-1042", CustomerName: "Rahul Mehta",
			CustomerEmail: "rahul@example.com", TotalAmount: 129500, Status: "pending",
			PaymentStatus: "paid",
			Items: []entity.OrderItem{
				{ProductRef: "prod-002", Name: "Kundan Bridal Necklace", Quantity: 1, Price: 129500},
			},
			CreatedAt: now.Add(-2 * day),
		},
		{
			ID: "ord-3", OrderNumber: "ORD-1043", CustomerName: "Priya Sharma",
			CustomerEmail: "priya@example.com", TotalAmount: 8400, Status: "shipped",
			PaymentStatus: "paid",
			Items: []entity.OrderItem{
				{ProductRef: "prod-003", Name: "Silver Jhumka Earrings", Quantity: 2, Price: 4200},
			},
			CreatedAt: now.Add(-1 * day),
		},
	}

	s.reviews.items = []entity.Review{
		{ID: "rev-1", Product: "Classic Gold Ring", ProductRef: "prod-001", UserName: "Priya Sharma", Rating: 5, Comment: "Beautiful finish", IsActive: true, CreatedAt: now.Add(-20 * day)},
		{ID: "rev-2", Product: "Silver Jhumka Earrings", ProductRef: "prod-003", UserName: "Rahul Mehta", Rating: 4, Comment: "Good for the price", IsActive: true, CreatedAt: now.Add(-12 * day)},
		{ID: "rev-3", Product: "Kundan Bridal Necklace", ProductRef: "prod-002", UserName: "Anonymous", Rating: 1, Comment: "Spam review text", IsActive: false, CreatedAt: now.Add(-6 * day)},
	}

	return s
}
