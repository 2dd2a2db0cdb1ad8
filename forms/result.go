package forms

import (
	"github.com/ambler289/ada-ui/backend"
	"github.com/ambler289/ada-ui/template"
)

// Result is the normalized outcome of one dialog, shaped per kind:
// acknowledgements carry the chosen button, text entry the entered string,
// selections the chosen values, the bulk editor a typed change set.
// Dismissal and unavailability collapse into the same cancelled shape, so
// callers never learn which backend ran or why nothing came back.
type Result struct {
	// OK reports that the dialog closed with a decision.
	OK bool
	// Button is the chosen button label for message dialogs.
	Button string
	// Text is the entered string for input dialogs.
	Text string
	// Values are the selected item values, in original item order. Non-nil
	// for every multi-select outcome, including cancellation.
	Values []string
	// Changes maps parameter names to parsed new values for the bulk
	// editor. Unchanged and kept rows are absent.
	Changes map[string]any
}

// cancelled is the per-kind default shape for a session that produced no
// decision.
func cancelled(s *backend.Session) Result {
	r := Result{}
	if s.Multi {
		r.Values = []string{}
	}
	return r
}

// normalize maps a backend close signal onto the result contract for the
// session's kind. Every signal, whatever backend produced it, lands in the
// same shape.
func normalize(s *backend.Session, sig backend.Signal, params []Parameter) Result {
	if sig.Kind != backend.SignalAccepted {
		return cancelled(s)
	}

	switch s.Kind {
	case template.KindInput:
		return Result{OK: true, Text: sig.Text}
	case template.KindSelect, template.KindBigButtons:
		values := indexValues(s.Items, sig.Indices)
		if !s.Multi && len(values) == 0 {
			return cancelled(s)
		}
		return Result{OK: true, Values: values}
	case template.KindBulkEdit:
		return Result{OK: true, Changes: parseFields(params, sig.Fields)}
	default:
		// Message dialogs: the chosen button is the decision.
		return Result{OK: true, Button: sig.Button}
	}
}

// indexValues maps item indices back to their display values, dropping
// anything out of range. Always non-nil.
func indexValues(items []string, indices []int) []string {
	values := []string{}
	for _, idx := range indices {
		if idx >= 0 && idx < len(items) {
			values = append(values, items[idx])
		}
	}
	return values
}

// parseFields turns raw editor entries into the typed change set. Rows with
// blank or unparseable entries are kept, i.e. omitted.
func parseFields(params []Parameter, fields map[string]string) map[string]any {
	changes := map[string]any{}
	for _, p := range params {
		raw, ok := fields[p.Name]
		if !ok {
			continue
		}
		value, keep := parseValue(p.Type, raw)
		if keep {
			continue
		}
		changes[p.Name] = value
	}
	return changes
}
