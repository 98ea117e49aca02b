package cmd

import (
	"github.com/tanviarora/aurum/internal/display"
	"github.com/tanviarora/aurum/internal/listview"
	"github.com/tanviarora/aurum/internal/render"
)

func userSpec() resourceSpec[display.User] {
	b := bindResource("users", display.FormatUser)
	return resourceSpec[display.User]{
		use:      "users",
		singular: "user",
		desc: listview.Descriptor[display.User]{
			Resource: "users",
			Mode:     listview.ClientSide,
			ID:       func(u display.User) string { return u.ID },
			SearchFields: []func(display.User) string{
				func(u display.User) string { return u.Name },
				func(u display.User) string { return u.Email },
			},
			SortKeys: map[string]listview.SortKey[display.User]{
				"name":      {String: func(u display.User) string { return u.Name }},
				"email":     {String: func(u display.User) string { return u.Email }},
				"createdAt": {Number: func(u display.User) float64 { return float64(u.CreatedAt.Unix()) }},
			},
			FilterFields: map[string]func(display.User) string{
				"role":   func(u display.User) string { return u.Role },
				"status": func(u display.User) string { return u.Status },
			},
		},
		columns: []string{"ID", "NAME", "EMAIL", "ROLE", "STATUS", "JOINED"},
		row: func(u display.User) []string {
			return []string{u.ID, u.Name, u.Email, u.Role, render.StatusBadge(u.Status), u.CreatedDisplay}
		},
		fetch:       b.fetch,
		fetchOne:    b.fetchOne,
		create:      b.create,
		update:      b.update,
		filterFlags: []string{"role", "status"},
		owned: map[string]fieldParser{
			"name":     asString,
			"email":    asString,
			"phone":    asString,
			"role":     asString,
			"isActive": asBool,
		},
	}
}

func init() {
	rootCmd.AddCommand(newResourceCommand(userSpec()))
}
