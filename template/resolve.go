package template

import (
	"errors"
	"fmt"
)

// ErrPartNotFound reports that no control answers to a symbolic name.
// Controllers treat this as "feature not present in this template" and omit
// the corresponding behavior rather than failing the dialog.
var ErrPartNotFound = errors.New("named part not found")

// maxResolveVisits bounds the fallback tree walk. Visual trees are small;
// anything past this is a malformed template and resolves to not-found.
const maxResolveVisits = 4096

// Resolve returns the control bound to a symbolic name: first by the name
// index built at load, then by a bounded breadth-first walk comparing each
// node's name attribute.
func (t *Tree) Resolve(name string) (*Node, error) {
	if t == nil || name == "" {
		return nil, fmt.Errorf("%w: %q", ErrPartNotFound, name)
	}
	if n, ok := t.index[name]; ok {
		return n, nil
	}
	return ResolveIn(t.Root, name)
}

// Has reports whether the template carries a part with the given name.
func (t *Tree) Has(name string) bool {
	_, err := t.Resolve(name)
	return err == nil
}

// ResolveIn searches a subtree for a node by name, breadth-first. It is the
// fallback used when the hosting tree maintains no name index.
func ResolveIn(root *Node, name string) (*Node, error) {
	var found *Node
	visits := 0
	walk(root, func(n *Node) bool {
		visits++
		if visits > maxResolveVisits {
			return false
		}
		if n.Name == name {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return nil, fmt.Errorf("%w: %q", ErrPartNotFound, name)
	}
	return found, nil
}
