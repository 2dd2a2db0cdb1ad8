package template

// Symbolic part names shared by the built-in templates and the dialog
// controllers. Asset templates bind features by using the same names.
const (
	PartTitle       = "title_text"
	PartMessage     = "message_text"
	PartPrompt      = "prompt_text"
	PartInput       = "input_box"
	PartFilter      = "filter_box"
	PartItems       = "items_list"
	PartButtonsHost = "buttons_host"
	PartButtonOK    = "button_ok"
	PartButtonAll   = "button_all"
	PartCancel      = "button_cancel"
	PartParams      = "params_table"
)

// Template kinds, also the template file base names.
const (
	KindAlert      = "alert"
	KindConfirm    = "confirm"
	KindInput      = "input"
	KindSelect     = "select"
	KindBigButtons = "bigbuttons"
	KindBulkEdit   = "bulkedit"
)

// Builtin returns the in-code fallback layout for a dialog kind. This is the
// bottom tier under a missing template file; it always returns a usable tree,
// falling back to the alert layout for unknown kinds.
func Builtin(kind string) *Tree {
	root := &Node{Type: NodePanel, Name: "root"}
	switch kind {
	case KindConfirm:
		root.Children = []*Node{
			{Type: NodeText, Name: PartTitle},
			{Type: NodeText, Name: PartMessage},
			{Type: NodePanel, Name: PartButtonsHost, Children: []*Node{
				{Type: NodeButton, Name: PartButtonOK, Text: "Yes"},
				{Type: NodeButton, Name: PartCancel, Text: "No"},
			}},
		}
	case KindInput:
		root.Children = []*Node{
			{Type: NodeText, Name: PartTitle},
			{Type: NodeText, Name: PartPrompt},
			{Type: NodeInput, Name: PartInput},
			{Type: NodePanel, Name: PartButtonsHost, Children: []*Node{
				{Type: NodeButton, Name: PartButtonOK, Text: "OK"},
				{Type: NodeButton, Name: PartCancel, Text: "Cancel"},
			}},
		}
	case KindSelect:
		root.Children = []*Node{
			{Type: NodeText, Name: PartTitle},
			{Type: NodeText, Name: PartPrompt},
			{Type: NodeInput, Name: PartFilter},
			{Type: NodeList, Name: PartItems},
			{Type: NodePanel, Name: PartButtonsHost, Children: []*Node{
				{Type: NodeButton, Name: PartButtonOK, Text: "OK"},
				{Type: NodeButton, Name: PartButtonAll, Text: "All"},
				{Type: NodeButton, Name: PartCancel, Text: "Cancel"},
			}},
		}
	case KindBigButtons:
		root.Children = []*Node{
			{Type: NodeText, Name: PartTitle},
			{Type: NodeText, Name: PartMessage},
			{Type: NodePanel, Name: PartButtonsHost, Children: []*Node{
				{Type: NodeButton, Name: PartButtonAll, Text: "All"},
			}},
			{Type: NodeButton, Name: PartCancel, Text: "Cancel"},
		}
	case KindBulkEdit:
		root.Children = []*Node{
			{Type: NodeText, Name: PartTitle},
			{Type: NodeTable, Name: PartParams},
			{Type: NodePanel, Name: PartButtonsHost, Children: []*Node{
				{Type: NodeButton, Name: PartButtonOK, Text: "OK"},
				{Type: NodeButton, Name: PartCancel, Text: "Cancel"},
			}},
		}
	default:
		// Alert: one primary button, no cancel affordance.
		kind = KindAlert
		root.Children = []*Node{
			{Type: NodeText, Name: PartTitle},
			{Type: NodeText, Name: PartMessage},
			{Type: NodePanel, Name: PartButtonsHost, Children: []*Node{
				{Type: NodeButton, Name: PartButtonOK, Text: "OK"},
			}},
		}
	}

	t := &Tree{Kind: kind, Root: root}
	t.buildIndex()
	return t
}
