package forms

import (
	"context"

	"github.com/ambler289/ada-ui/template"
)

// Alert shows a message with an acknowledgement button, or several buttons
// when configured with [WithButtons]. It returns the chosen button label, or
// nil when the dialog was dismissed or silenced.
func Alert(ctx context.Context, message string, opts ...Option) *string {
	o := buildOptions(opts)
	if o.alertPolicy.Silent {
		return nil
	}
	o.message = message

	s := o.session(template.KindAlert)
	result := show(ctx, s, o, nil)
	if !result.OK {
		return nil
	}
	button := result.Button
	return &button
}

// Confirm asks a yes/no question and reports whether the user chose the
// affirmative button. Dismissal counts as no.
func Confirm(ctx context.Context, message string, opts ...Option) bool {
	o := buildOptions(opts)
	o.message = message
	if len(o.buttons) == 0 {
		yes, no := "Yes", "No"
		if o.okLabel != "" {
			yes = o.okLabel
		}
		if o.cancelLabel != "" {
			no = o.cancelLabel
		}
		o.buttons = []string{yes, no}
	}

	s := o.session(template.KindConfirm)
	result := show(ctx, s, o, nil)
	return result.OK && result.Button == s.Buttons[0]
}
