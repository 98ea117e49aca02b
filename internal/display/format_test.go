package display

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tanviarora/aurum/internal/entity"
)

func TestStatusDerivation(t *testing.T) {
	assert.Equal(t, "active", Status(true))
	assert.Equal(t, "inactive", Status(false))
}

func TestPrimaryImage(t *testing.T) {
	primary := entity.Image{URL: "/img/ring-front.jpg", IsPrimary: true}
	other := entity.Image{URL: "/img/ring-side.jpg"}

	assert.Equal(t, "/img/ring-front.jpg", PrimaryImage([]entity.Image{other, primary}),
		"primary flag wins over position")
	assert.Equal(t, "/img/ring-side.jpg", PrimaryImage([]entity.Image{other}),
		"first image when nothing is flagged")
	assert.Equal(t, PlaceholderImage, PrimaryImage(nil))
}

func TestINRGrouping(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{1000, "₹1,000"},
		{45500, "₹45,500"},
		{123456, "₹1,23,456"},
		{1234567, "₹12,34,567"},
		{12345678, "₹1,23,45,678"},
		{2499.60, "₹2,500"}, // rounds, no paise
		{-123456, "-₹1,23,456"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, INR(tt.amount), "INR(%v)", tt.amount)
	}
}

func TestFormatProductKeepsRawValues(t *testing.T) {
	created := time.Date(2026, 1, 5, 10, 30, 0, 0, time.UTC)
	raw := entity.Product{
		ID:        "68a1",
		Name:      "Kundan Necklace",
		Price:     145000,
		SalePrice: 129500,
		Stock:     4,
		Tags:      []string{"bridal", "kundan"},
		Images: []entity.Image{
			{URL: "/img/a.jpg"},
			{URL: "/img/b.jpg", IsPrimary: true},
		},
		IsActive:  true,
		CreatedAt: created,
	}

	got := FormatProduct(raw)

	// The id on the display record is the same value the mutation
	// endpoints use; never substituted or truncated.
	assert.Equal(t, "68a1", got.ID)
	assert.Equal(t, "active", got.Status)
	assert.Equal(t, "/img/b.jpg", got.Image)
	assert.Equal(t, "₹1,45,000", got.PriceDisplay)
	assert.Equal(t, "₹1,29,500", got.SalePriceDisplay)
	// Raw values survive for the edit path.
	assert.Equal(t, 145000.0, got.Price)
	assert.Equal(t, created, got.CreatedAt)
	assert.Len(t, got.Images, 2)
	assert.Equal(t, "bridal, kundan", got.TagsEditable)

	// Formatting does not touch the input.
	assert.Equal(t, "68a1", raw.ID)
	assert.True(t, raw.Images[1].IsPrimary)
}

func TestFormatProductStable(t *testing.T) {
	raw := entity.Product{ID: "p1", Name: "Ring", Price: 9999, IsActive: false}
	first := FormatProduct(raw)
	second := FormatProduct(raw)
	assert.Equal(t, first, second, "formatting is a pure function of the raw record")
	assert.Equal(t, "inactive", first.Status)
}

func TestTagsRoundTrip(t *testing.T) {
	assert.Equal(t, []string{"gold", "22k", "temple"}, SplitTags("gold, 22k,, temple,"),
		"repeated and trailing separators produce no empty entries")
	assert.Nil(t, SplitTags("  "))

	tags := []string{"bridal", "kundan"}
	assert.Equal(t, tags, SplitTags(JoinTags(tags)))
}

func TestFormatBannerStatus(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	b := entity.Banner{
		ID:        "bn1",
		Title:     "Akshaya Tritiya Sale",
		IsActive:  true,
		StartDate: now.AddDate(0, 0, 1),
		EndDate:   now.AddDate(0, 0, 10),
	}
	got := FormatBanner(b, now)
	assert.Equal(t, entity.BannerScheduled, got.Status)
	assert.Equal(t, b.StartDate, got.StartDate, "ISO window preserved for edit")
}

func TestFormatOrderTotals(t *testing.T) {
	o := entity.Order{
		ID:          "o1",
		OrderNumber: "ORD-1042",
		TotalAmount: 84500,
		Status:      "pending",
		Items: []entity.OrderItem{
			{Name: "Ring", Quantity: 2},
			{Name: "Pendant", Quantity: 1},
		},
	}
	got := FormatOrder(o)
	assert.Equal(t, 3, got.ItemCount)
	assert.Equal(t, "₹84,500", got.TotalDisplay)
	assert.Equal(t, 84500.0, got.Total)
}
