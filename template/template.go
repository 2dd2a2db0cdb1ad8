// Package template loads named dialog templates: small declarative visual
// trees whose controls are addressable by stable symbolic names. Controllers
// only ever query templates structurally; layout details stay opaque here.
package template

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrResourceMissing reports that a template file is absent or unusable.
// Unlike theme loads this is reported, not swallowed: the only tier below a
// template file is the controller's built-in layout, and the controller has
// to know to use it.
var ErrResourceMissing = errors.New("template resource missing")

// NodeType identifies what kind of control a node describes.
type NodeType string

// Known node types. Unknown types in a template degrade to panels so that a
// newer template never breaks an older host.
const (
	NodePanel  NodeType = "panel"
	NodeText   NodeType = "text"
	NodeButton NodeType = "button"
	NodeInput  NodeType = "input"
	NodeList   NodeType = "list"
	NodeCheck  NodeType = "check"
	NodeTable  NodeType = "table"
)

var knownTypes = map[NodeType]bool{
	NodePanel:  true,
	NodeText:   true,
	NodeButton: true,
	NodeInput:  true,
	NodeList:   true,
	NodeCheck:  true,
	NodeTable:  true,
}

// Node is one control in a template tree.
type Node struct {
	Type     NodeType
	Name     string
	Text     string
	Children []*Node
}

// Tree is a loaded dialog template. It owns a name index built at load time;
// the tree lives for one dialog invocation.
type Tree struct {
	Kind string
	Root *Node

	index map[string]*Node
}

// Load reads a template tree from path. Any failure to produce a usable tree
// is reported as [ErrResourceMissing]; callers fall back to [Builtin].
func Load(path, kind string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrResourceMissing, path)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: %s: invalid syntax", ErrResourceMissing, path)
	}

	root := gjson.GetBytes(data, "root")
	if !root.Exists() {
		return nil, fmt.Errorf("%w: %s: no root node", ErrResourceMissing, path)
	}

	t := &Tree{Kind: kind, Root: parseNode(root)}
	if k := gjson.GetBytes(data, "kind"); k.Exists() {
		t.Kind = k.String()
	}
	t.buildIndex()
	return t, nil
}

func parseNode(res gjson.Result) *Node {
	n := &Node{
		Type: NodeType(res.Get("type").String()),
		Name: res.Get("name").String(),
		Text: res.Get("text").String(),
	}
	if !knownTypes[n.Type] {
		n.Type = NodePanel
	}
	res.Get("children").ForEach(func(_, child gjson.Result) bool {
		n.Children = append(n.Children, parseNode(child))
		return true
	})
	return n
}

// buildIndex walks the tree once and records the first node bound to each
// name. Duplicate names keep the first occurrence, matching resolve order.
func (t *Tree) buildIndex() {
	t.index = make(map[string]*Node)
	walk(t.Root, func(n *Node) bool {
		if n.Name != "" {
			if _, ok := t.index[n.Name]; !ok {
				t.index[n.Name] = n
			}
		}
		return true
	})
}

// walk visits nodes breadth-first until visit returns false.
func walk(root *Node, visit func(*Node) bool) {
	if root == nil {
		return
	}
	queue := []*Node{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if !visit(n) {
			return
		}
		queue = append(queue, n.Children...)
	}
}

// Dump renders the tree one node per line for snapshot tests and debugging.
func (t *Tree) Dump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "kind: %s\n", t.Kind)
	dumpNode(&b, t.Root, 0)
	return b.String()
}

func dumpNode(b *strings.Builder, n *Node, depth int) {
	if n == nil {
		return
	}
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(string(n.Type))
	if n.Name != "" {
		fmt.Fprintf(b, " name=%s", n.Name)
	}
	if n.Text != "" {
		fmt.Fprintf(b, " text=%q", n.Text)
	}
	b.WriteString("\n")
	for _, c := range n.Children {
		dumpNode(b, c, depth+1)
	}
}
