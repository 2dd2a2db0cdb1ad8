package forms

import (
	"context"

	"github.com/ambler289/ada-ui/template"
)

// SelectFromList presents items for a single choice and returns the chosen
// value, or nil when the dialog was dismissed. Filtering narrows what is
// visible but results always refer to the original values.
func SelectFromList(ctx context.Context, message string, items []string, opts ...Option) *string {
	o := buildOptions(opts)
	o.message = message

	s := o.session(template.KindSelect)
	s.Items = items

	result := show(ctx, s, o, nil)
	if !result.OK || len(result.Values) == 0 {
		return nil
	}
	return &result.Values[0]
}

// SelectMultiFromList presents items with checkboxes and returns the checked
// values in original item order. The slice is never nil: dismissal and an
// accepted empty selection both come back as an empty slice, so callers can
// range over the result unconditionally.
func SelectMultiFromList(ctx context.Context, message string, items []string, opts ...Option) []string {
	o := buildOptions(opts)
	o.message = message

	s := o.session(template.KindSelect)
	s.Items = items
	s.Multi = true

	result := show(ctx, s, o, nil)
	if result.Values == nil {
		return []string{}
	}
	return result.Values
}
