package cmd

import (
	"strconv"

	"github.com/tanviarora/aurum/internal/display"
	"github.com/tanviarora/aurum/internal/listview"
	"github.com/tanviarora/aurum/internal/render"
)

// Products filter and paginate on the backend: the list command passes
// search/category/status straight through and trusts the returned
// pagination envelope.
func productSpec() resourceSpec[display.Product] {
	b := bindResource("products", display.FormatProduct)
	return resourceSpec[display.Product]{
		use:      "products",
		singular: "product",
		desc: listview.Descriptor[display.Product]{
			Resource: "products",
			Mode:     listview.ServerSide,
			ID:       func(p display.Product) string { return p.ID },
		},
		columns: []string{"ID", "NAME", "SKU", "PRICE", "STOCK", "STATUS", "CREATED"},
		row: func(p display.Product) []string {
			return []string{
				p.ID, p.Name, p.SKU, p.PriceDisplay,
				strconv.Itoa(p.Stock), render.StatusBadge(p.Status), p.CreatedDisplay,
			}
		},
		fetch:       b.fetch,
		fetchOne:    b.fetchOne,
		create:      b.create,
		update:      b.update,
		upload:      b.upload,
		filterFlags: []string{"category", "status"},
		owned: map[string]fieldParser{
			"name":        asString,
			"description": asString,
			"sku":         asString,
			"price":       asFloat,
			"salePrice":   asFloat,
			"stock":       asInt,
			"category":    asString,
			"collection":  asString,
			"occasion":    asString,
			"material":    asString,
			"tags":        asTags,
			"isActive":    asBool,
		},
	}
}

func init() {
	rootCmd.AddCommand(newResourceCommand(productSpec()))
}
