package cssvariants

import (
	"context"
	"io"
	"reflect"
	"strings"

	"github.com/a-h/templ"
)

// attrNames maps prop keys to their HTML attribute names.
var attrNames = map[string]string{
	ClassNameKey: "class",
	"htmlFor":    "for",
}

// voidElements never have children or a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// Node is a rendered element: a tag, its forwarded props and its children.
// Node implements templ.Component.
type Node struct {
	Tag      string
	Attrs    Props
	Children []templ.Component
}

var _ templ.Component = (*Node)(nil)

// ClassName returns the class string the node was rendered with.
func (n *Node) ClassName() string {
	return n.Attrs.Value(ClassNameKey)
}

// Render writes the node as HTML.
//
// Attribute rules: className and a literal class prop share one class
// attribute (omitted when empty), true booleans are written bare, false, nil
// and func values are omitted, everything else is escaped.
func (n *Node) Render(ctx context.Context, w io.Writer) error {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(n.Tag)

	classDone := false
	for key, value := range n.Attrs.All() {
		name, ok := attrName(key)
		if !ok {
			continue
		}
		if name == "class" {
			if classDone {
				continue
			}
			classDone = true
			value = n.classAttr()
		}
		switch v := value.(type) {
		case nil:
			continue
		case bool:
			if v {
				b.WriteByte(' ')
				b.WriteString(name)
			}
			continue
		}
		if reflect.ValueOf(value).Kind() == reflect.Func {
			continue
		}
		s := FormatValue(value)
		if name == "class" && s == "" {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(templ.EscapeString(s))
		b.WriteByte('"')
	}
	b.WriteByte('>')

	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	if voidElements[n.Tag] {
		return nil
	}

	for _, child := range n.Children {
		if child == nil {
			continue
		}
		if err := child.Render(ctx, w); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</"+n.Tag+">")
	return err
}

// classAttr joins the className and class props, className first.
func (n *Node) classAttr() string {
	var parts []string
	for _, key := range []string{ClassNameKey, "class"} {
		v, ok := n.Attrs.Get(key)
		if !ok || v == nil {
			continue
		}
		if s := FormatValue(v); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// attrName returns the HTML attribute name for key, rejecting keys that
// cannot be written as an attribute.
func attrName(key string) (string, bool) {
	if name, ok := attrNames[key]; ok {
		return name, true
	}
	if key == "" || strings.ContainsAny(key, " \t\n\f\r\"'<>/=") {
		return "", false
	}
	return key, true
}

// Text returns a child that renders s as escaped text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}
