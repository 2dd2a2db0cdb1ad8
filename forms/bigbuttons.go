package forms

import (
	"context"

	"github.com/ambler289/ada-ui/template"
)

// BigButtons presents one large button per option and returns the chosen
// value, or nil when the dialog was dismissed without a choice.
func BigButtons(ctx context.Context, message string, options []string, opts ...Option) *string {
	o := buildOptions(opts)
	o.message = message

	s := o.session(template.KindBigButtons)
	s.Items = options

	result := show(ctx, s, o, nil)
	if !result.OK || len(result.Values) == 0 {
		return nil
	}
	return &result.Values[0]
}

// BigButtonsMulti presents the options as check rows with an accept action
// and returns the checked values in original order. Like
// [SelectMultiFromList] the result is never nil.
func BigButtonsMulti(ctx context.Context, message string, options []string, opts ...Option) []string {
	o := buildOptions(opts)
	o.message = message

	s := o.session(template.KindBigButtons)
	s.Items = options
	s.Multi = true

	result := show(ctx, s, o, nil)
	if result.Values == nil {
		return []string{}
	}
	return result.Values
}
