package forms

import (
	"context"

	"github.com/ambler289/ada-ui/template"
)

// Input prompts for one line of text. It returns the entered string, or nil
// when the dialog was dismissed. An accepted empty entry is a valid result
// and distinct from cancellation.
func Input(ctx context.Context, prompt string, opts ...Option) *string {
	o := buildOptions(opts)

	s := o.session(template.KindInput)
	if prompt != "" {
		s.Prompt = prompt
	}

	result := show(ctx, s, o, nil)
	if !result.OK {
		return nil
	}
	text := result.Text
	return &text
}
