// Package display maps raw backend records to UI-ready projections.
// Formatting is pure: inputs are never mutated, derived fields are
// computed only from raw fields, and the unformatted values (numeric
// prices, ISO timestamps, full image arrays) ride along untouched so
// edit forms can round-trip them.
package display

import (
	"time"

	"github.com/tanviarora/aurum/internal/entity"
)

// PlaceholderImage is shown for records with no images at all.
const PlaceholderImage = "/images/placeholder.png"

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Status derives the presentation lifecycle from the stored flag. It
// is never persisted separately.
func Status(isActive bool) string {
	if isActive {
		return StatusActive
	}
	return StatusInactive
}

// PrimaryImage picks the display image: the entry flagged primary,
// else the first entry, else the placeholder.
func PrimaryImage(images []entity.Image) string {
	for _, img := range images {
		if img.IsPrimary {
			return img.URL
		}
	}
	if len(images) > 0 {
		return images[0].URL
	}
	return PlaceholderImage
}

// Date renders a timestamp as an en-IN locale date. Zero timestamps
// (records the backend never stamped) render as an em-free dash.
func Date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006")
}

// Product is the UI-ready projection of an entity.Product.
type Product struct {
	ID               string
	Name             string
	Description      string
	SKU              string
	Status           string
	Image            string
	Price            float64
	PriceDisplay     string
	SalePrice        float64
	SalePriceDisplay string
	Stock            int
	Category         string
	Collection       string
	Occasion         string
	Material         string
	Tags             []string
	TagsEditable     string
	Rating           float64
	ReviewCount      int
	Images           []entity.Image
	IsActive         bool
	CreatedAt        time.Time
	CreatedDisplay   string
}

func FormatProduct(p entity.Product) Product {
	out := Product{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		SKU:            p.SKU,
		Status:         Status(p.IsActive),
		Image:          PrimaryImage(p.Images),
		Price:          p.Price,
		PriceDisplay:   INR(p.Price),
		SalePrice:      p.SalePrice,
		Stock:          p.Stock,
		Category:       p.Category,
		Collection:     p.Collection,
		Occasion:       p.Occasion,
		Material:       p.Material,
		Tags:           p.Tags,
		TagsEditable:   JoinTags(p.Tags),
		Rating:         p.Rating,
		ReviewCount:    p.ReviewCount,
		Images:         p.Images,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
		CreatedDisplay: Date(p.CreatedAt),
	}
	if p.SalePrice > 0 {
		out.SalePriceDisplay = INR(p.SalePrice)
	}
	return out
}

// Category projects Category, Collection and Occasion records; the
// three share a shape once the image is resolved.
type Category struct {
	ID             string
	Name           string
	Description    string
	Status         string
	Image          string
	IsActive       bool
	CreatedAt      time.Time
	CreatedDisplay string
}

func FormatCategory(c entity.Category) Category {
	image := c.Image
	if image == "" {
		image = PlaceholderImage
	}
	return Category{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description,
		Status:         Status(c.IsActive),
		Image:          image,
		IsActive:       c.IsActive,
		CreatedAt:      c.CreatedAt,
		CreatedDisplay: Date(c.CreatedAt),
	}
}

func FormatCollection(c entity.Collection) Category {
	return Category{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description,
		Status:         Status(c.IsActive),
		Image:          PrimaryImage(c.Images),
		IsActive:       c.IsActive,
		CreatedAt:      c.CreatedAt,
		CreatedDisplay: Date(c.CreatedAt),
	}
}

func FormatOccasion(o entity.Occasion) Category {
	image := o.Image
	if image == "" {
		image = PlaceholderImage
	}
	return Category{
		ID:             o.ID,
		Name:           o.Name,
		Description:    o.Description,
		Status:         Status(o.IsActive),
		Image:          image,
		IsActive:       o.IsActive,
		CreatedAt:      o.CreatedAt,
		CreatedDisplay: Date(o.CreatedAt),
	}
}

// Banner carries the computed schedule status alongside the raw window
// so the edit form can round-trip the ISO dates.
type Banner struct {
	ID           string
	Title        string
	Subtitle     string
	Image        string
	Link         string
	Position     string
	Status       entity.BannerStatus
	StartDate    time.Time
	EndDate      time.Time
	StartDisplay string
	EndDisplay   string
	IsActive     bool
}

func FormatBanner(b entity.Banner, now time.Time) Banner {
	image := b.Image
	if image == "" {
		image = PlaceholderImage
	}
	return Banner{
		ID:           b.ID,
		Title:        b.Title,
		Subtitle:     b.Subtitle,
		Image:        image,
		Link:         b.Link,
		Position:     b.Position,
		Status:       b.Status(now),
		StartDate:    b.StartDate,
		EndDate:      b.EndDate,
		StartDisplay: Date(b.StartDate),
		EndDisplay:   Date(b.EndDate),
		IsActive:     b.IsActive,
	}
}

type User struct {
	ID             string
	Name           string
	Email          string
	Phone          string
	Role           string
	Status         string
	IsActive       bool
	CreatedAt      time.Time
	CreatedDisplay string
}

func FormatUser(u entity.User) User {
	return User{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Phone:          u.Phone,
		Role:           u.Role,
		Status:         Status(u.IsActive),
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt,
		CreatedDisplay: Date(u.CreatedAt),
	}
}

type Order struct {
	ID             string
	OrderNumber    string
	CustomerName   string
	CustomerEmail  string
	ItemCount      int
	Total          float64
	TotalDisplay   string
	Status         string
	PaymentStatus  string
	CreatedAt      time.Time
	CreatedDisplay string
}

func FormatOrder(o entity.Order) Order {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return Order{
		ID:             o.ID,
		OrderNumber:    o.OrderNumber,
		CustomerName:   o.CustomerName,
		CustomerEmail:  o.CustomerEmail,
		ItemCount:      count,
		Total:          o.TotalAmount,
		TotalDisplay:   INR(o.TotalAmount),
		Status:         o.Status,
		PaymentStatus:  o.PaymentStatus,
		CreatedAt:      o.CreatedAt,
		CreatedDisplay: Date(o.CreatedAt),
	}
}

type Review struct {
	ID             string
	Product        string
	UserName       string
	Rating         float64
	Title          string
	Comment        string
	Status         string
	IsActive       bool
	CreatedAt      time.Time
	CreatedDisplay string
}

func FormatReview(r entity.Review) Review {
	return Review{
		ID:             r.ID,
		Product:        r.Product,
		UserName:       r.UserName,
		Rating:         r.Rating,
		Title:          r.Title,
		Comment:        r.Comment,
		Status:         Status(r.IsActive),
		IsActive:       r.IsActive,
		CreatedAt:      r.CreatedAt,
		CreatedDisplay: Date(r.CreatedAt),
	}
}
