// Package theme composes visual theme tokens from layered dictionaries and
// turns them into the lipgloss styles the dialogs render with.
//
// Theme dictionaries are user-editable assets, so composition is defensive:
// dictionaries merge in priority order, and every token a dialog requires is
// patched in from the built-in brand defaults when the merge leaves it
// missing or unparsable. A composed scope can never lack a required token.
package theme

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Required token keys. Every composed [Scope] contains all of these.
const (
	KeyBackground = "background"
	KeyPrimary    = "primary"
	KeySecondary  = "secondary"
	KeyForeground = "foreground"
	KeyBorder     = "border"
	KeyRadius     = "radius"
	KeyPadding    = "padding"
)

// defaults is the built-in brand token table, used both as the lowest
// implicit layer and as the fallback for unparsable values.
var defaults = map[string]string{
	KeyBackground: "#1F232B",
	KeyPrimary:    "#5C7CFA",
	KeySecondary:  "#F759C0",
	KeyForeground: "#E8EAED",
	KeyBorder:     "#3A3F4B",
	KeyRadius:     "12",
	KeyPadding:    "1",
}

// RequiredKeys returns the keys every composed scope must contain.
func RequiredKeys() []string {
	return []string{
		KeyBackground, KeyPrimary, KeySecondary,
		KeyForeground, KeyBorder, KeyRadius, KeyPadding,
	}
}

// Scope is a composed set of theme tokens owned by a single dialog
// invocation. It is never shared across dialogs.
type Scope map[string]string

// Color resolves a token to a color. Unparsable or missing values resolve to
// the built-in default for the key, so rendering cannot fail on bad assets.
func (s Scope) Color(key string) color.Color {
	if v, ok := s[key]; ok {
		if c, err := colorful.Hex(strings.TrimSpace(v)); err == nil {
			return c
		}
	}
	c, _ := colorful.Hex(defaults[key])
	return c
}

// Int resolves a token to an integer, falling back to the key's default and
// then to zero.
func (s Scope) Int(key string) int {
	if v, ok := s[key]; ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	n, _ := strconv.Atoi(defaults[key])
	return n
}

// Has reports whether the scope carries a value for key.
func (s Scope) Has(key string) bool {
	_, ok := s[key]
	return ok
}
