package forms

import (
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/ambler289/ada-ui/backend"
)

// Parameter value types understood by the bulk editor.
const (
	TypeBool   = "bool"
	TypeFloat  = "float"
	TypeString = "string"
)

// Parameter is one editable value in the bulk editor.
type Parameter struct {
	// Name keys the parameter in the resulting change set.
	Name string
	// DisplayName is shown to the user; Name is used when empty.
	DisplayName string
	// Type is one of the Type constants. Unknown types edit as strings.
	Type string
	// Value is the current value: bool, float64 or string to match Type.
	Value any
	// Unit is an optional display suffix, e.g. "mm".
	Unit string
	// Notes is optional row-level help text.
	Notes string
}

// FormatCurrent renders the current value the way the dialogs display it:
// bools as Yes/No, floats trimmed of trailing zeros with the unit appended.
func (p Parameter) FormatCurrent() string {
	var out string
	switch v := p.Value.(type) {
	case nil:
		return ""
	case bool:
		if v {
			out = "Yes"
		} else {
			out = "No"
		}
		return out
	case float64:
		out = humanize.Ftoa(v)
	case string:
		out = v
	default:
		return ""
	}
	if out != "" && p.Unit != "" {
		out += " " + p.Unit
	}
	return out
}

func (p Parameter) displayName() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Name
}

func toBackendParams(params []Parameter) []backend.Param {
	out := make([]backend.Param, len(params))
	for i, p := range params {
		out[i] = backend.Param{
			Name:        p.Name,
			DisplayName: p.displayName(),
			Type:        normalizeType(p.Type),
			Current:     p.FormatCurrent(),
			Unit:        p.Unit,
			Notes:       p.Notes,
		}
	}
	return out
}

func normalizeType(t string) string {
	switch strings.ToLower(t) {
	case TypeBool, "boolean", "yesno":
		return TypeBool
	case TypeFloat, "double", "number", "length":
		return TypeFloat
	default:
		return TypeString
	}
}
