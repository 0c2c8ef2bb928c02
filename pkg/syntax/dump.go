package syntax

import (
	"fmt"
	"io"
	"reflect"
	"strings"
)

var (
	nodeType       = reflect.TypeOf((*Node)(nil)).Elem()
	tokenIndexType = reflect.TypeOf(TokenIndex(0))
	kindType       = reflect.TypeOf(Kind(0))
)

// Dump writes an indented rendering of the tree's root to w. Each line
// shows a node's kind and the literals of its valid token slots; child
// nodes and list elements follow at one deeper indent, labeled by field.
func Dump(w io.Writer, t *Tree) {
	if t.Root == nil {
		return
	}
	DumpNode(w, t, t.Root, 0)
}

// DumpNode writes an indented rendering of the subtree rooted at n
func DumpNode(w io.Writer, t *Tree, n Node, depth int) {
	dumpValue(w, t, reflect.ValueOf(n), "", depth)
}

func dumpValue(w io.Writer, t *Tree, v reflect.Value, label string, depth int) {
	if !v.IsValid() {
		return
	}
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return
	}
	node, ok := v.Interface().(Node)
	if !ok {
		return
	}

	indent := strings.Repeat("  ", depth)
	var b strings.Builder
	b.WriteString(indent)
	if label != "" {
		b.WriteString(label)
		b.WriteString(": ")
	}
	b.WriteString(node.Kind().String())

	elem := v.Elem()
	ty := elem.Type()
	for i := 0; i < ty.NumField(); i++ {
		f := ty.Field(i)
		if f.Type != tokenIndexType {
			continue
		}
		idx := TokenIndex(elem.Field(i).Int())
		if idx != InvalidTokenIndex {
			fmt.Fprintf(&b, " %s=%q", f.Name, t.TokenAt(idx).Literal)
		}
	}
	fmt.Fprintln(w, b.String())

	for i := 0; i < ty.NumField(); i++ {
		f := ty.Field(i)
		if f.Type == tokenIndexType || f.Type == kindType {
			continue
		}
		dumpChild(w, t, elem.Field(i), f.Name, depth+1)
	}
}

func dumpChild(w io.Writer, t *Tree, fv reflect.Value, label string, depth int) {
	if fv.Kind() == reflect.Pointer && !fv.IsNil() && !fv.Type().Implements(nodeType) {
		if e := fv.Elem(); e.Kind() == reflect.Struct {
			if _, isList := e.Type().FieldByName("Next"); isList {
				for cell := fv; !cell.IsNil(); cell = cell.Elem().FieldByName("Next") {
					dumpValue(w, t, cell.Elem().FieldByName("Value"), label, depth)
				}
				return
			}
		}
	}
	dumpValue(w, t, fv, label, depth)
}
