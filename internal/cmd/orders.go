package cmd

import (
	"strconv"

	"github.com/tanviarora/aurum/internal/display"
	"github.com/tanviarora/aurum/internal/listview"
	"github.com/tanviarora/aurum/internal/render"
)

// Orders are server-side like products. Editing is limited to the
// fulfillment workflow fields; everything else belongs to the
// storefront checkout.
func orderSpec() resourceSpec[display.Order] {
	b := bindResource("orders", display.FormatOrder)
	return resourceSpec[display.Order]{
		use:      "orders",
		singular: "order",
		desc: listview.Descriptor[display.Order]{
			Resource: "orders",
			Mode:     listview.ServerSide,
			ID:       func(o display.Order) string { return o.ID },
		},
		columns: []string{"ID", "ORDER", "CUSTOMER", "ITEMS", "TOTAL", "STATUS", "PLACED"},
		row: func(o display.Order) []string {
			return []string{
				o.ID, o.OrderNumber, o.CustomerName, strconv.Itoa(o.ItemCount),
				o.TotalDisplay, render.StatusBadge(o.Status), o.CreatedDisplay,
			}
		},
		fetch:       b.fetch,
		fetchOne:    b.fetchOne,
		create:      b.create,
		update:      b.update,
		filterFlags: []string{"status"},
		owned: map[string]fieldParser{
			"status":        asString,
			"paymentStatus": asString,
		},
	}
}

func init() {
	rootCmd.AddCommand(newResourceCommand(orderSpec()))
}
