package cmd

import (
	"strconv"

	"github.com/tanviarora/aurum/internal/display"
	"github.com/tanviarora/aurum/internal/listview"
	"github.com/tanviarora/aurum/internal/render"
)

// Reviews are moderated rather than edited: the only owned field is
// the visibility flag.
func reviewSpec() resourceSpec[display.Review] {
	b := bindResource("reviews", display.FormatReview)
	return resourceSpec[display.Review]{
		use:      "reviews",
		singular: "review",
		desc: listview.Descriptor[display.Review]{
			Resource: "reviews",
			Mode:     listview.ServerSide,
			ID:       func(r display.Review) string { return r.ID },
		},
		columns: []string{"ID", "PRODUCT", "USER", "RATING", "COMMENT", "STATUS", "POSTED"},
		row: func(r display.Review) []string {
			return []string{
				r.ID, r.Product, r.UserName,
				strconv.FormatFloat(r.Rating, 'f', 1, 64),
				r.Comment, render.StatusBadge(r.Status), r.CreatedDisplay,
			}
		},
		fetch:       b.fetch,
		fetchOne:    b.fetchOne,
		create:      b.create,
		update:      b.update,
		filterFlags: []string{"status"},
		owned: map[string]fieldParser{
			"isActive": asBool,
		},
	}
}

func init() {
	rootCmd.AddCommand(newResourceCommand(reviewSpec()))
}
