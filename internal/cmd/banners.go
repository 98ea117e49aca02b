package cmd

import (
	"time"

	"github.com/tanviarora/aurum/internal/display"
	"github.com/tanviarora/aurum/internal/entity"
	"github.com/tanviarora/aurum/internal/listview"
	"github.com/tanviarora/aurum/internal/render"
)

// Banner status is computed from the scheduling window at render time,
// so the status filter matches Scheduled/Expired too, not just the
// stored flag.
func bannerSpec() resourceSpec[display.Banner] {
	b := bindResource("banners", func(raw entity.Banner) display.Banner {
		return display.FormatBanner(raw, time.Now())
	})
	return resourceSpec[display.Banner]{
		use:      "banners",
		singular: "banner",
		desc: listview.Descriptor[display.Banner]{
			Resource: "banners",
			Mode:     listview.ClientSide,
			ID:       func(bn display.Banner) string { return bn.ID },
			SearchFields: []func(display.Banner) string{
				func(bn display.Banner) string { return bn.Title },
				func(bn display.Banner) string { return bn.Subtitle },
			},
			SortKeys: map[string]listview.SortKey[display.Banner]{
				"title":     {String: func(bn display.Banner) string { return bn.Title }},
				"startDate": {Number: func(bn display.Banner) float64 { return float64(bn.StartDate.Unix()) }},
				"endDate":   {Number: func(bn display.Banner) float64 { return float64(bn.EndDate.Unix()) }},
			},
			FilterFields: map[string]func(display.Banner) string{
				"status":   func(bn display.Banner) string { return string(bn.Status) },
				"position": func(bn display.Banner) string { return bn.Position },
			},
		},
		columns: []string{"ID", "TITLE", "POSITION", "START", "END", "STATUS"},
		row: func(bn display.Banner) []string {
			return []string{
				bn.ID, bn.Title, bn.Position, bn.StartDisplay, bn.EndDisplay,
				render.StatusBadge(string(bn.Status)),
			}
		},
		fetch:       b.fetch,
		fetchOne:    b.fetchOne,
		create:      b.create,
		update:      b.update,
		upload:      b.upload,
		filterFlags: []string{"status", "position"},
		owned: map[string]fieldParser{
			"title":     asString,
			"subtitle":  asString,
			"image":     asString,
			"link":      asString,
			"position":  asString,
			"startDate": asDate,
			"endDate":   asDate,
			"isActive":  asBool,
		},
	}
}

func init() {
	rootCmd.AddCommand(newResourceCommand(bannerSpec()))
}
