package entity

import "time"

// User is a storefront or staff account.
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Review is a customer product review awaiting moderation.
type Review struct {
	ID         string    `json:"_id"`
	Product    string    `json:"product,omitempty"`
	ProductRef string    `json:"productId,omitempty"`
	UserName   string    `json:"userName,omitempty"`
	Rating     float64   `json:"rating"`
	Title      string    `json:"title,omitempty"`
	Comment    string    `json:"comment,omitempty"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt,omitempty"`
}
