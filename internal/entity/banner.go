package entity

import "time"

// BannerStatus is the lifecycle of a promotional banner, computed from
// its flags and scheduling window rather than stored on the record.
type BannerStatus string

const (
	BannerInactive  BannerStatus = "Inactive"
	BannerScheduled BannerStatus = "Scheduled"
	BannerExpired   BannerStatus = "Expired"
	BannerActive    BannerStatus = "Active"
)

// Banner is a scheduled promotional banner on the storefront.
type Banner struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle,omitempty"`
	Image     string    `json:"image,omitempty"`
	Link      string    `json:"link,omitempty"`
	Position  string    `json:"position,omitempty"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Status computes the banner's lifecycle at the given instant. A
// disabled banner is Inactive no matter what its window says.
func (b Banner) Status(now time.Time) BannerStatus {
	switch {
	case !b.IsActive:
		return BannerInactive
	case now.Before(b.StartDate):
		return BannerScheduled
	case now.After(b.EndDate):
		return BannerExpired
	default:
		return BannerActive
	}
}
