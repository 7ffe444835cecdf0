package cssvariants

import (
	"fmt"

	"github.com/a-h/templ"
)

// Ref is a reference handle. It is called with the node it was attached to,
// once the node has been built.
type Ref func(*Node)

// Target is anything a styled component can wrap: a primitive element or
// another component.
type Target interface {
	// Render builds the node for the given forwarded props.
	Render(props Props, ref Ref, children ...templ.Component) *Node
	// String returns a human-readable name used for debug labels.
	String() string
}

// Element is a primitive HTML element identified by its tag.
type Element string

// String returns the tag.
func (e Element) String() string {
	return string(e)
}

// Render builds a node with the props as its attributes.
func (e Element) Render(props Props, ref Ref, children ...templ.Component) *Node {
	n := &Node{
		Tag:      string(e),
		Attrs:    props.Clone(),
		Children: children,
	}
	if ref != nil {
		ref(n)
	}
	return n
}

// Component is a styled wrapper around a Target. Each call to Styled returns
// a distinct *Component; compare components by pointer.
type Component struct {
	target Target
	config Config
	name   string
}

var _ Target = (*Component)(nil)

// Styled wraps target with cfg. Wrapping another *Component layers both
// configurations: the wrapped component resolves first and its class string
// becomes the className seen by the outer configuration.
func Styled(target Target, cfg Config) *Component {
	return &Component{
		target: target,
		config: cfg,
		name:   labelFor(target),
	}
}

// labelFor derives a debug label from the wrapped target.
func labelFor(target Target) string {
	if target == nil {
		return "Styled"
	}
	if _, ok := target.(Element); ok {
		return target.String()
	}
	return fmt.Sprintf("Styled(%s)", target)
}

// Named returns a copy of c labelled name. The label plays no part in
// resolution.
func (c *Component) Named(name string) *Component {
	clone := *c
	clone.name = name
	return &clone
}

// String returns the debug label.
func (c *Component) String() string {
	return c.name
}

// Target returns the wrapped target.
func (c *Component) Target() Target {
	return c.target
}

// Config returns the component's configuration.
func (c *Component) Config() Config {
	return c.config
}

// Resolve runs every styling layer, innermost first, and returns the final
// class string and the props that reach the element.
//
// Each layer sees the caller's props merged with the defaults of the layers
// wrapping it, so a variant declared by several layers is styled by all of
// them. A key consumed by an inner layer never reaches the element.
func (c *Component) Resolve(props Props) Resolved {
	inner, ok := c.target.(*Component)
	if !ok {
		return c.config.Resolve(props)
	}

	values := Merge(c.config.DefaultVariants, props)
	innerRes := inner.Resolve(values)

	res := c.config.Resolve(Merge(values, innerRes.Props))
	for key := range values.All() {
		if !innerRes.Props.Has(key) {
			res.Props.Delete(key)
		}
	}
	return res
}

// Render resolves props and builds the node of the underlying element with
// the forwarded props and children. ref, when non-nil, is handed the node.
func (c *Component) Render(props Props, ref Ref, children ...templ.Component) *Node {
	res := c.Resolve(props)
	res.Ref = ref

	root := c.root()
	if root == nil {
		return nil
	}
	return root.Render(res.Props, res.Ref, children...)
}

// root returns the first target below the component chain.
func (c *Component) root() Target {
	target := c.target
	for {
		inner, ok := target.(*Component)
		if !ok {
			return target
		}
		target = inner.target
	}
}
