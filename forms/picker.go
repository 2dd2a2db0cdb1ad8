package forms

import (
	"context"
	"log/slog"
)

// SelectionProvider supplies the items a picker offers, typically backed by
// an external catalog. Providers may fail; pickers treat any failure as an
// empty catalog and resolve with no selection.
type SelectionProvider interface {
	// Label names the catalog for dialog titles.
	Label() string
	// Items lists the selectable values.
	Items(ctx context.Context) ([]string, error)
}

// PickOne loads the provider's items and presents them for a single choice.
// Provider failures and empty catalogs resolve to nil.
func PickOne(ctx context.Context, provider SelectionProvider, opts ...Option) *string {
	items := providerItems(ctx, provider)
	if len(items) == 0 {
		return nil
	}
	opts = append([]Option{WithTitle(provider.Label())}, opts...)
	return SelectFromList(ctx, "", items, opts...)
}

// PickMany loads the provider's items and presents them for a multi
// selection. Provider failures and empty catalogs resolve to an empty,
// non-nil slice.
func PickMany(ctx context.Context, provider SelectionProvider, opts ...Option) []string {
	items := providerItems(ctx, provider)
	if len(items) == 0 {
		return []string{}
	}
	opts = append([]Option{WithTitle(provider.Label())}, opts...)
	return SelectMultiFromList(ctx, "", items, opts...)
}

func providerItems(ctx context.Context, provider SelectionProvider) []string {
	items, err := provider.Items(ctx)
	if err != nil {
		slog.Warn("selection provider failed", "provider", provider.Label(), "error", err)
		return nil
	}
	return items
}
