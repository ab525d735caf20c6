// Package xmldom provides a compact arena DOM for taxonomy documents.
//
// Nodes are addressed by NodeID handles into per-document arenas. Every
// element retains its parent, prefix scope, base URI, and position among its
// parent's element children, so fragment keys and upward navigation need no
// per-node back-pointers beyond the parent id.
package xmldom

import (
	"github.com/jacoelho/xbrl/internal/ename"
)

// NodeID identifies an element node in the document arena.
type NodeID int32

// InvalidNode represents an invalid node reference.
const InvalidNode NodeID = -1

// Attr is a single element attribute. Namespace declarations are not
// attributes; they live in the scope arena.
type Attr struct {
	Name  ename.EName
	Value string
}

// Document is a parsed XML document with stable element identity.
type Document struct {
	uri      string
	nodes    []node
	attrs    []Attr
	children []NodeID
	scopes   []scopeFrame
	byID     map[string]NodeID
	root     NodeID
}

type node struct {
	name      ename.EName
	text      string
	baseURI   string
	attrsOff  int32
	attrsLen  int32
	childOff  int32
	childLen  int32
	parent    NodeID
	scope     int32
	elemIndex int32
}

// scopeFrame is one layer of namespace declarations; lookup walks parents.
type scopeFrame struct {
	parent int32
	decls  []scopeDecl
}

type scopeDecl struct {
	prefix string
	uri    ename.NamespaceURI
}

// URI returns the document URI the document was parsed from.
func (d *Document) URI() string {
	return d.uri
}

// Root returns the document root element.
func (d *Document) Root() NodeID {
	if d == nil {
		return InvalidNode
	}
	return d.root
}

func (d *Document) validNode(id NodeID) bool {
	return d != nil && id >= 0 && int(id) < len(d.nodes)
}

// Name returns the expanded name of the element.
func (d *Document) Name(id NodeID) ename.EName {
	if !d.validNode(id) {
		return ename.EName{}
	}
	return d.nodes[id].name
}

// Parent returns the parent of id, or InvalidNode for the root.
func (d *Document) Parent(id NodeID) NodeID {
	if !d.validNode(id) {
		return InvalidNode
	}
	return d.nodes[id].parent
}

// Children returns a read-only view of the element children of id.
// The returned slice aliases the document arena; do not modify or retain it.
func (d *Document) Children(id NodeID) []NodeID {
	if !d.validNode(id) {
		return nil
	}
	n := d.nodes[id]
	if n.childLen == 0 {
		return nil
	}
	return d.children[n.childOff : n.childOff+n.childLen]
}

// Attributes returns a read-only view of the element attributes.
// The returned slice aliases the document arena; do not modify or retain it.
func (d *Document) Attributes(id NodeID) []Attr {
	if !d.validNode(id) {
		return nil
	}
	n := d.nodes[id]
	if n.attrsLen == 0 {
		return nil
	}
	return d.attrs[n.attrsOff : n.attrsOff+n.attrsLen]
}

// Attr returns the value of the attribute with the given expanded name.
func (d *Document) Attr(id NodeID, name ename.EName) (string, bool) {
	for _, a := range d.Attributes(id) {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Text returns the concatenated character data directly under id.
func (d *Document) Text(id NodeID) string {
	if !d.validNode(id) {
		return ""
	}
	return d.nodes[id].text
}

// BaseURI returns the base URI in effect at id, after xml:base resolution.
func (d *Document) BaseURI(id NodeID) string {
	if !d.validNode(id) {
		return ""
	}
	return d.nodes[id].baseURI
}

// ElemIndex returns the position of id among its parent's element children.
func (d *Document) ElemIndex(id NodeID) int {
	if !d.validNode(id) {
		return 0
	}
	return int(d.nodes[id].elemIndex)
}

// Scope returns the prefix scope in effect at id.
func (d *Document) Scope(id NodeID) ename.Scope {
	if !d.validNode(id) {
		return ename.Scope{}
	}
	bindings := make(map[string]ename.NamespaceURI)
	for frame := d.nodes[id].scope; frame >= 0; frame = d.scopes[frame].parent {
		for _, decl := range d.scopes[frame].decls {
			if _, seen := bindings[decl.prefix]; !seen {
				bindings[decl.prefix] = decl.uri
			}
		}
	}
	return ename.NewScope(bindings)
}

// LookupPrefix resolves a single prefix at id without materializing the scope.
func (d *Document) LookupPrefix(id NodeID, prefix string) (ename.NamespaceURI, bool) {
	if !d.validNode(id) {
		return "", false
	}
	for frame := d.nodes[id].scope; frame >= 0; frame = d.scopes[frame].parent {
		for _, decl := range d.scopes[frame].decls {
			if decl.prefix == prefix {
				return decl.uri, true
			}
		}
	}
	return "", false
}

// ElementByID returns the element whose id attribute equals id.
func (d *Document) ElementByID(id string) (NodeID, bool) {
	n, ok := d.byID[id]
	return n, ok
}

// Descendants visits id and its descendants in document order. The walk
// stops early when visit returns false.
func (d *Document) Descendants(id NodeID, visit func(NodeID) bool) {
	if !d.validNode(id) {
		return
	}
	stack := []NodeID{id}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(current) {
			return
		}
		children := d.Children(current)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}

// Len returns the number of element nodes in the document.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.nodes)
}
