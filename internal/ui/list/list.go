// Package list implements the filterable, windowed item list used by the
// selection dialog.
package list

import (
	"strings"

	"github.com/ambler289/ada-ui/theme"
)

// Icons for multi-select rows.
const (
	CheckOn  = "◉"
	CheckOff = "○"
)

// Model is a cursor-addressable list over a fixed item set with an optional
// live filter. The full item set never changes after construction; filtering
// only narrows what is visible.
type Model struct {
	labels  []string
	checked []bool
	visible []int // indices into labels, in display order
	cursor  int   // position within visible
	offset  int   // first visible row shown
	height  int
	query   string
	fuzzy   bool
}

// New creates a list over the given labels.
func New(labels []string) *Model {
	m := &Model{
		labels:  labels,
		checked: make([]bool, len(labels)),
		height:  10,
	}
	m.SetFilter("")
	return m
}

// SetHeight sets how many rows are shown at once.
func (m *Model) SetHeight(h int) {
	if h < 1 {
		h = 1
	}
	m.height = h
	m.scrollIntoView()
}

// SetFuzzy switches the filter between substring matching (the default) and
// fuzzy matching.
func (m *Model) SetFuzzy(on bool) {
	m.fuzzy = on
	m.SetFilter(m.query)
}

// SetFilter recomputes the visible items for a query and resets the cursor
// to the top. An empty query shows everything.
func (m *Model) SetFilter(query string) {
	m.query = query
	m.visible = m.visible[:0]
	if query == "" {
		for i := range m.labels {
			m.visible = append(m.visible, i)
		}
	} else if m.fuzzy {
		for _, match := range fuzzyMatches(query, m.labels) {
			m.visible = append(m.visible, match)
		}
	} else {
		q := strings.ToLower(query)
		for i, label := range m.labels {
			if strings.Contains(strings.ToLower(label), q) {
				m.visible = append(m.visible, i)
			}
		}
	}
	m.cursor = 0
	m.offset = 0
}

// Query returns the current filter text.
func (m *Model) Query() string {
	return m.query
}

// Len returns how many items are currently visible.
func (m *Model) Len() int {
	return len(m.visible)
}

// VisibleLabels returns the labels passing the current filter, in order.
func (m *Model) VisibleLabels() []string {
	out := make([]string, len(m.visible))
	for i, idx := range m.visible {
		out[i] = m.labels[idx]
	}
	return out
}

// CursorUp moves the cursor one row up.
func (m *Model) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
	}
	m.scrollIntoView()
}

// CursorDown moves the cursor one row down.
func (m *Model) CursorDown() {
	if m.cursor < len(m.visible)-1 {
		m.cursor++
	}
	m.scrollIntoView()
}

// Current returns the original index of the item under the cursor.
func (m *Model) Current() (int, bool) {
	if len(m.visible) == 0 {
		return 0, false
	}
	return m.visible[m.cursor], true
}

// Toggle flips the checked state of the item under the cursor.
func (m *Model) Toggle() {
	if idx, ok := m.Current(); ok {
		m.checked[idx] = !m.checked[idx]
	}
}

// SetAllChecked checks or unchecks every item, filtered or not.
func (m *Model) SetAllChecked(on bool) {
	for i := range m.checked {
		m.checked[i] = on
	}
}

// CheckedIndices returns the original indices of all checked items.
func (m *Model) CheckedIndices() []int {
	out := []int{}
	for i, on := range m.checked {
		if on {
			out = append(out, i)
		}
	}
	return out
}

func (m *Model) scrollIntoView() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

// View renders the visible window. In multi mode each row carries a check
// icon; the cursor row uses the selected style.
func (m *Model) View(s *theme.Styles, multi bool) string {
	if len(m.visible) == 0 {
		return s.Muted.Padding(0, 1).Render("(no matches)")
	}

	end := min(m.offset+m.height, len(m.visible))
	rows := make([]string, 0, end-m.offset)
	for row := m.offset; row < end; row++ {
		idx := m.visible[row]
		label := m.labels[idx]
		if multi {
			icon := CheckOff
			if m.checked[idx] {
				icon = CheckOn
			}
			label = icon + " " + label
		}
		style := s.Dialog.NormalItem
		if row == m.cursor {
			style = s.Dialog.SelectedItem
		} else if multi && m.checked[idx] {
			style = s.Dialog.CheckedItem
		}
		rows = append(rows, style.Render(label))
	}
	return strings.Join(rows, "\n")
}
