package cmd

import (
	"context"

	"github.com/tanviarora/aurum/internal/api"
	"github.com/tanviarora/aurum/internal/listview"
)

// restBindings adapts one REST resource of backend shape E to display
// shape T: every fetch path runs the raw record through format exactly
// once.
type restBindings[E any, T any] struct {
	resource string
	format   func(E) T
}

func bindResource[E any, T any](resource string, format func(E) T) restBindings[E, T] {
	return restBindings[E, T]{resource: resource, format: format}
}

func (b restBindings[E, T]) fetch(c *api.Client) listview.Fetcher[T] {
	return func(ctx context.Context, params api.ListParams) ([]T, *api.Pagination, error) {
		page, err := api.List[E](ctx, c, b.resource, params)
		if err != nil {
			return nil, nil, err
		}
		rows := make([]T, len(page.Items))
		for i, raw := range page.Items {
			rows[i] = b.format(raw)
		}
		return rows, page.Pagination, nil
	}
}

func (b restBindings[E, T]) fetchOne(c *api.Client) listview.FetchOne[T] {
	return func(ctx context.Context, id string) (T, error) {
		raw, err := api.GetOne[E](ctx, c, b.resource, id)
		if err != nil {
			var zero T
			return zero, err
		}
		return b.format(raw), nil
	}
}

func (b restBindings[E, T]) create(c *api.Client, ctx context.Context, payload map[string]any) (T, error) {
	raw, err := api.Create[E](ctx, c, b.resource, payload)
	if err != nil {
		var zero T
		return zero, err
	}
	return b.format(raw), nil
}

func (b restBindings[E, T]) update(c *api.Client, ctx context.Context, id string, payload map[string]any) (T, error) {
	raw, err := api.Update[E](ctx, c, b.resource, id, payload)
	if err != nil {
		var zero T
		return zero, err
	}
	return b.format(raw), nil
}

func (b restBindings[E, T]) upload(c *api.Client, ctx context.Context, method, path string, fields map[string]string, imagePath string) (T, error) {
	raw, err := api.Upload[E](ctx, c, method, path, fields, "image", imagePath)
	if err != nil {
		var zero T
		return zero, err
	}
	return b.format(raw), nil
}
