package forms

import (
	"context"

	"github.com/ambler289/ada-ui/template"
)

// BulkEdit presents an editor over the given parameters and returns the
// typed change set: new values keyed by parameter name, only for rows the
// user actually changed. Kept rows (blank or unparseable entries) are
// absent. The boolean reports whether the editor was accepted; a cancelled
// editor returns (nil, false), an accepted one with no edits returns an
// empty non-nil map.
func BulkEdit(ctx context.Context, message string, params []Parameter, opts ...Option) (map[string]any, bool) {
	o := buildOptions(opts)
	o.message = message

	s := o.session(template.KindBulkEdit)
	s.Params = toBackendParams(params)

	result := show(ctx, s, o, params)
	if !result.OK {
		return nil, false
	}
	return result.Changes, true
}
