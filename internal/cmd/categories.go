package cmd

import (
	"github.com/tanviarora/aurum/internal/display"
	"github.com/tanviarora/aurum/internal/listview"
	"github.com/tanviarora/aurum/internal/render"
)

// Categories come back as one full unpaginated list; search, status
// filter, sort and paging all run in memory here. Collections and
// occasions share the projection, so the three descriptors differ only
// in resource name and format function.
func catalogDescriptor(resource string) listview.Descriptor[display.Category] {
	return listview.Descriptor[display.Category]{
		Resource: resource,
		Mode:     listview.ClientSide,
		ID:       func(c display.Category) string { return c.ID },
		SearchFields: []func(display.Category) string{
			func(c display.Category) string { return c.Name },
			func(c display.Category) string { return c.Description },
		},
		SortKeys: map[string]listview.SortKey[display.Category]{
			"name":      {String: func(c display.Category) string { return c.Name }},
			"createdAt": {Number: func(c display.Category) float64 { return float64(c.CreatedAt.Unix()) }},
		},
		FilterFields: map[string]func(display.Category) string{
			"status": func(c display.Category) string { return c.Status },
		},
	}
}

var catalogColumns = []string{"ID", "NAME", "DESCRIPTION", "STATUS", "CREATED"}

func catalogRow(c display.Category) []string {
	return []string{c.ID, c.Name, c.Description, render.StatusBadge(c.Status), c.CreatedDisplay}
}

var catalogOwned = map[string]fieldParser{
	"name":        asString,
	"description": asString,
	"image":       asString,
	"isActive":    asBool,
}

func categorySpec() resourceSpec[display.Category] {
	b := bindResource("categories", display.FormatCategory)
	spec := resourceSpec[display.Category]{
		use:         "categories",
		singular:    "category",
		desc:        catalogDescriptor("categories"),
		columns:     catalogColumns,
		row:         catalogRow,
		fetch:       b.fetch,
		fetchOne:    b.fetchOne,
		create:      b.create,
		update:      b.update,
		upload:      b.upload,
		filterFlags: []string{"status"},
		owned: map[string]fieldParser{
			"name":        asString,
			"description": asString,
			"image":       asString,
			"sortOrder":   asInt,
			"isActive":    asBool,
		},
	}
	return spec
}

func collectionSpec() resourceSpec[display.Category] {
	b := bindResource("collections", display.FormatCollection)
	return resourceSpec[display.Category]{
		use:         "collections",
		singular:    "collection",
		desc:        catalogDescriptor("collections"),
		columns:     catalogColumns,
		row:         catalogRow,
		fetch:       b.fetch,
		fetchOne:    b.fetchOne,
		create:      b.create,
		update:      b.update,
		upload:      b.upload,
		filterFlags: []string{"status"},
		owned: map[string]fieldParser{
			"name":        asString,
			"description": asString,
			"isFeatured":  asBool,
			"isActive":    asBool,
		},
	}
}

func occasionSpec() resourceSpec[display.Category] {
	b := bindResource("occasions", display.FormatOccasion)
	return resourceSpec[display.Category]{
		use:         "occasions",
		singular:    "occasion",
		desc:        catalogDescriptor("occasions"),
		columns:     catalogColumns,
		row:         catalogRow,
		fetch:       b.fetch,
		fetchOne:    b.fetchOne,
		create:      b.create,
		update:      b.update,
		upload:      b.upload,
		filterFlags: []string{"status"},
		owned:       catalogOwned,
	}
}

func init() {
	rootCmd.AddCommand(
		newResourceCommand(categorySpec()),
		newResourceCommand(collectionSpec()),
		newResourceCommand(occasionSpec()),
	)
}
