package stylegen

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// EmitYAML renders the configuration object of every component, keyed by
// export name. Key order follows the stylesheet.
func EmitYAML(sheet *Stylesheet) ([]byte, error) {
	root := mapping()
	for _, c := range sheet.Components {
		appendPair(root, c.ExportName, componentNode(c))
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func componentNode(c *Component) *yaml.Node {
	node := mapping()
	appendPair(node, "element", scalar(c.Element))
	appendPair(node, "css", scalar(c.CSS))

	if len(c.Variants) > 0 {
		variants := mapping()
		for _, v := range c.Variants {
			options := mapping()
			for _, o := range v.Options {
				appendPair(options, o.Value, scalar(o.Class))
			}
			appendPair(variants, v.Name, options)
		}
		appendPair(node, "variants", variants)
	}

	if len(c.Compounds) > 0 {
		compounds := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, compound := range c.Compounds {
			rule := mapping()
			for _, cond := range compound.When {
				appendPair(rule, cond.Variant, scalar(cond.Value))
			}
			appendPair(rule, "css", scalar(compound.Class))
			compounds.Content = append(compounds.Content, rule)
		}
		appendPair(node, "compoundVariants", compounds)
	}

	defaults := mapping()
	for _, v := range c.Variants {
		if v.Default != "" {
			appendPair(defaults, v.Name, scalar(v.Default))
		}
	}
	if len(defaults.Content) > 0 {
		appendPair(node, "defaultVariants", defaults)
	}

	return node
}

func mapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

// scalar builds a string node; values such as "true" or "0" stay strings.
func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func appendPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, scalar(key), value)
}
