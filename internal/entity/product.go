package entity

import "time"

// Image is one entry of a record's images array. Exactly one entry is
// expected to carry IsPrimary, but the backend does not enforce that.
type Image struct {
	URL       string `json:"url"`
	AltText   string `json:"altText,omitempty"`
	IsPrimary bool   `json:"isPrimary"`
}

// Product is the backend shape of a catalog product. Field names follow
// the REST API's JSON exactly; the display layer owns any reshaping.
type Product struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	SKU         string    `json:"sku,omitempty"`
	Price       float64   `json:"price"`
	SalePrice   float64   `json:"salePrice,omitempty"`
	Stock       int       `json:"stock"`
	Category    string    `json:"category,omitempty"`
	Collection  string    `json:"collection,omitempty"`
	Occasion    string    `json:"occasion,omitempty"`
	Material    string    `json:"material,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Images      []Image   `json:"images,omitempty"`
	Rating      float64   `json:"rating,omitempty"`
	ReviewCount int       `json:"reviewCount,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}
