package xmldom

import (
	"fmt"
	"strconv"
	"strings"
)

// FragmentKey is the stable identity of an element: the document URI plus the
// element-child path from the document root. Two elements are the same iff
// their fragment keys are equal. Keys survive reparsing the same document.
type FragmentKey struct {
	DocURI string
	Path   string
}

// String renders docURI#path.
func (k FragmentKey) String() string {
	return k.DocURI + "#" + k.Path
}

// IsZero reports whether the key is the zero value.
func (k FragmentKey) IsZero() bool {
	return k.DocURI == "" && k.Path == ""
}

// Key returns the fragment key of id. The path encodes each ancestor step as
// /{namespace}local[index] with index counting element children only.
func (d *Document) Key(id NodeID) FragmentKey {
	if !d.validNode(id) {
		return FragmentKey{}
	}
	var steps []string
	for current := id; current != InvalidNode; current = d.nodes[current].parent {
		n := d.nodes[current]
		steps = append(steps, fmt.Sprintf("/%s[%d]", n.name, n.elemIndex))
	}
	var b strings.Builder
	for i := len(steps) - 1; i >= 0; i-- {
		b.WriteString(steps[i])
	}
	return FragmentKey{DocURI: d.uri, Path: b.String()}
}

// ResolveFragment resolves a URI fragment to an element. Supported forms are
// the bare-id shorthand and the XPointer element scheme: element(id),
// element(/1/2), and element(id/2/3) with 1-based element-child steps.
func (d *Document) ResolveFragment(fragment string) (NodeID, bool) {
	if d == nil || fragment == "" {
		return InvalidNode, false
	}
	inner, ok := elementSchemeData(fragment)
	if !ok {
		return d.ElementByID(fragment)
	}

	if strings.HasPrefix(inner, "/") {
		// Absolute form: the first step selects among document roots and
		// this document has exactly one.
		steps := splitSteps(inner)
		if len(steps) == 0 || steps[0] != 1 {
			return InvalidNode, false
		}
		return d.walkElementScheme(d.Root(), steps[1:])
	}

	id := inner
	var steps []int
	if idx := strings.IndexByte(inner, '/'); idx >= 0 {
		id = inner[:idx]
		steps = splitSteps(inner[idx:])
		if steps == nil {
			return InvalidNode, false
		}
	}
	start, ok := d.ElementByID(id)
	if !ok {
		return InvalidNode, false
	}
	return d.walkElementScheme(start, steps)
}

// splitSteps parses /n/m/... into 1-based steps, or nil on malformed input.
func splitSteps(s string) []int {
	parts := strings.Split(strings.TrimPrefix(s, "/"), "/")
	steps := make([]int, 0, len(parts))
	for _, part := range parts {
		index, err := strconv.Atoi(part)
		if err != nil || index < 1 {
			return nil
		}
		steps = append(steps, index)
	}
	return steps
}

// elementSchemeData extracts the pointer data of an element() scheme.
func elementSchemeData(fragment string) (string, bool) {
	if !strings.HasPrefix(fragment, "element(") || !strings.HasSuffix(fragment, ")") {
		return "", false
	}
	return fragment[len("element(") : len(fragment)-1], true
}

func (d *Document) walkElementScheme(start NodeID, steps []int) (NodeID, bool) {
	current := start
	for _, index := range steps {
		children := d.Children(current)
		if index > len(children) {
			return InvalidNode, false
		}
		current = children[index-1]
	}
	return current, true
}
