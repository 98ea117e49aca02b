package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tanviarora/aurum/internal/api"
	"github.com/tanviarora/aurum/internal/browse"
	"github.com/tanviarora/aurum/internal/display"
	"github.com/tanviarora/aurum/internal/listview"
	"github.com/tanviarora/aurum/internal/render"
)

// fieldParser converts one --set value into its payload type.
type fieldParser func(string) (any, error)

var (
	asString fieldParser = func(s string) (any, error) { return s, nil }
	asFloat  fieldParser = func(s string) (any, error) { return strconv.ParseFloat(s, 64) }
	asInt    fieldParser = func(s string) (any, error) { return strconv.Atoi(s) }
	asBool   fieldParser = func(s string) (any, error) { return strconv.ParseBool(s) }
	asTags   fieldParser = func(s string) (any, error) { return display.SplitTags(s), nil }
	asDate   fieldParser = func(s string) (any, error) {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t, nil
		}
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, fmt.Errorf("want YYYY-MM-DD or RFC3339, got %q", s)
		}
		return t, nil
	}
)

// resourceSpec declares one entity's screens: how rows are fetched and
// shown, which filters exist, and which fields the edit surface owns.
// The list/browse/get/create/edit/delete commands are generated from
// it; no entity re-implements the pipeline.
type resourceSpec[T any] struct {
	use      string // plural resource name, e.g. "products"
	singular string

	desc     listview.Descriptor[T]
	columns  []string
	row      func(T) []string
	fetch    func(c *api.Client) listview.Fetcher[T]
	fetchOne func(c *api.Client) listview.FetchOne[T]

	create func(c *api.Client, ctx context.Context, payload map[string]any) (T, error)
	update func(c *api.Client, ctx context.Context, id string, payload map[string]any) (T, error)
	// upload handles multipart create/edit when an image rides along;
	// nil for resources without one.
	upload func(c *api.Client, ctx context.Context, method, path string, fields map[string]string, imagePath string) (T, error)

	// filterFlags become --<name> list flags passed as categorical
	// filters.
	filterFlags []string
	// owned maps the field names create/edit accept via --set.
	owned map[string]fieldParser
}

func newResourceCommand[T any](spec resourceSpec[T]) *cobra.Command {
	parent := &cobra.Command{
		Use:   spec.use,
		Short: fmt.Sprintf("Manage %s", spec.use),
	}
	parent.AddCommand(
		newListCommand(spec),
		newBrowseCommand(spec),
		newGetCommand(spec),
		newCreateCommand(spec),
		newEditCommand(spec),
		newDeleteCommand(spec),
	)
	return parent
}

func (spec resourceSpec[T]) controller(c *api.Client, pageSize int) *listview.Controller[T] {
	deleter := func(ctx context.Context, id string) error {
		_, err := c.Delete(ctx, spec.use, id)
		return err
	}
	var fetchOne listview.FetchOne[T]
	if spec.fetchOne != nil {
		fetchOne = spec.fetchOne(c)
	}
	return listview.New(spec.desc, spec.fetch(c), fetchOne, deleter, pageSize)
}

func newListCommand[T any](spec resourceSpec[T]) *cobra.Command {
	var (
		page    int
		limit   int
		search  string
		sortBy  string
		order   string
		filters = map[string]*string{}
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s", spec.use),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, cfg, err := buildClient()
			if err != nil {
				return err
			}
			if limit == 0 {
				limit = cfg.Display.PageSize
			}

			ctrl := spec.controller(client, limit)
			ctrl.SetSearch(search)
			for name, value := range filters {
				ctrl.SetFilter(name, *value)
			}
			if sortBy != "" {
				ctrl.SetSortOrder(sortBy, order != "desc")
			}
			ctrl.SetPage(page)

			if err := ctrl.Load(cmd.Context()); err != nil {
				// The error block is the screen's terminal state;
				// retry is manual.
				fmt.Println(render.ErrorBlock(describeFailure(err)))
				return nil
			}

			rows := make([][]string, 0, len(ctrl.Rows()))
			for _, r := range ctrl.Rows() {
				rows = append(rows, spec.row(r))
			}
			fmt.Print(render.Table(spec.columns, rows))
			first, last := ctrl.VisibleRange()
			fmt.Println(render.Pager(first, last, ctrl.TotalItems(), ctrl.Page(), ctrl.TotalPages(), ctrl.PageButtons()))
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&limit, "limit", 0, "Rows per page (default from config)")
	cmd.Flags().StringVar(&search, "search", "", "Search term")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort field")
	cmd.Flags().StringVar(&order, "order", "asc", "Sort direction: asc or desc")
	for _, name := range spec.filterFlags {
		filters[name] = cmd.Flags().String(name, "", fmt.Sprintf("Filter by %s", name))
	}
	return cmd
}

func newBrowseCommand[T any](spec resourceSpec[T]) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: fmt.Sprintf("Browse %s interactively", spec.use),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, cfg, err := buildClient()
			if err != nil {
				return err
			}
			ctrl := spec.controller(client, cfg.Display.PageSize)
			return browse.Run(spec.use, spec.columns, spec.row, ctrl)
		},
	}
}

func newGetCommand[T any](spec resourceSpec[T]) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: fmt.Sprintf("Show one %s", spec.singular),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, _, err := buildClient()
			if err != nil {
				return err
			}
			record, err := spec.fetchOne(client)(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("%s", describeFailure(err))
			}
			fmt.Print(render.Table(spec.columns, [][]string{spec.row(record)}))
			return nil
		},
	}
}

func newCreateCommand[T any](spec resourceSpec[T]) *cobra.Command {
	var (
		sets      []string
		file      string
		imagePath string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: fmt.Sprintf("Create a %s", spec.singular),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, _, err := buildClient()
			if err != nil {
				return err
			}
			payload, err := spec.buildPayload(file, sets)
			if err != nil {
				return err
			}

			var record T
			if imagePath != "" {
				if spec.upload == nil {
					return fmt.Errorf("%s does not take an image", spec.singular)
				}
				record, err = spec.upload(client, cmd.Context(), http.MethodPost, spec.use, stringify(payload), imagePath)
			} else {
				record, err = spec.create(client, cmd.Context(), payload)
			}
			if err != nil {
				return fmt.Errorf("%s", describeFailure(err))
			}
			fmt.Printf("✅ Created %s\n", spec.singular)
			fmt.Print(render.Table(spec.columns, [][]string{spec.row(record)}))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Field to set, as name=value (repeatable)")
	cmd.Flags().StringVar(&file, "file", "", "JSON file with the full payload")
	if spec.upload != nil {
		cmd.Flags().StringVar(&imagePath, "image", "", "Image file to upload with the record")
	}
	return cmd
}

func newEditCommand[T any](spec resourceSpec[T]) *cobra.Command {
	var (
		sets      []string
		imagePath string
	)
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: fmt.Sprintf("Edit a %s", spec.singular),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(sets) == 0 && imagePath == "" {
				return fmt.Errorf("nothing to change: pass --set name=value")
			}
			client, _, _, err := buildClient()
			if err != nil {
				return err
			}
			// Partial update: only fields named here go in the payload.
			payload, err := spec.buildPayload("", sets)
			if err != nil {
				return err
			}

			var record T
			if imagePath != "" {
				if spec.upload == nil {
					return fmt.Errorf("%s does not take an image", spec.singular)
				}
				record, err = spec.upload(client, cmd.Context(), http.MethodPut, spec.use+"/"+args[0], stringify(payload), imagePath)
			} else {
				record, err = spec.update(client, cmd.Context(), args[0], payload)
			}
			if err != nil {
				return fmt.Errorf("%s", describeFailure(err))
			}
			fmt.Printf("✅ Saved %s\n", spec.singular)
			fmt.Print(render.Table(spec.columns, [][]string{spec.row(record)}))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Field to change, as name=value (repeatable)")
	if spec.upload != nil {
		cmd.Flags().StringVar(&imagePath, "image", "", "Replacement image to upload")
	}
	return cmd
}

func newDeleteCommand[T any](spec resourceSpec[T]) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: fmt.Sprintf("Delete a %s", spec.singular),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Nothing is sent until the user has confirmed.
			if !yes && !confirm(fmt.Sprintf("Delete %s %s? This cannot be undone", spec.singular, args[0])) {
				fmt.Println("Aborted")
				return nil
			}
			client, _, _, err := buildClient()
			if err != nil {
				return err
			}
			msg, err := client.Delete(cmd.Context(), spec.use, args[0])
			if err != nil {
				return fmt.Errorf("%s", describeFailure(err))
			}
			if msg == "" {
				msg = spec.singular + " deleted"
			}
			fmt.Printf("🗑️  %s\n", msg)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// buildPayload merges an optional JSON file with --set pairs. Only
// fields the edit surface owns are accepted.
func (spec resourceSpec[T]) buildPayload(file string, sets []string) (map[string]any, error) {
	payload := map[string]any{}
	if file != "" {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, fmt.Errorf("%s is not valid JSON: %w", file, err)
		}
	}
	for _, set := range sets {
		name, value, found := strings.Cut(set, "=")
		if !found {
			return nil, fmt.Errorf("--set wants name=value, got %q", set)
		}
		parser, ok := spec.owned[name]
		if !ok {
			return nil, fmt.Errorf("unknown field %q for %s (known: %s)", name, spec.singular, strings.Join(spec.ownedNames(), ", "))
		}
		parsed, err := parser(value)
		if err != nil {
			return nil, fmt.Errorf("bad value for %s: %w", name, err)
		}
		payload[name] = parsed
	}
	return payload, nil
}

func (spec resourceSpec[T]) ownedNames() []string {
	names := make([]string, 0, len(spec.owned))
	for name := range spec.owned {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// stringify flattens a payload for multipart form fields.
func stringify(payload map[string]any) map[string]string {
	out := make(map[string]string, len(payload))
	for k, v := range payload {
		switch val := v.(type) {
		case string:
			out[k] = val
		case []string:
			out[k] = strings.Join(val, ",")
		case time.Time:
			out[k] = val.Format(time.RFC3339)
		default:
			out[k] = fmt.Sprint(val)
		}
	}
	return out
}
