package cssvariants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buttonConfig() Config {
	return Config{
		CSS: Class("root"),
		Variants: Variants{
			"border": {"true": Class("borderTrue")},
			"color": {
				"primary":   Class("colorPrimary"),
				"secondary": Class("colorSecondary"),
			},
		},
		CompoundVariants: []CompoundVariant{
			{When: map[string]any{"border": true, "color": "primary"}, CSS: Class("borderPrimary")},
			{When: map[string]any{"border": true, "color": "secondary"}, CSS: Class("borderSecondary")},
		},
	}
}

func TestResolveScenarios(t *testing.T) {
	primary := Config{
		CSS:      Class("root"),
		Variants: Variants{"primary": {"true": Class("primary")}},
	}

	tests := []struct {
		name   string
		config Config
		props  Props
		want   string
	}{
		{
			name:   "boolean variant not set",
			config: primary,
			props:  NewProps(),
			want:   "root",
		},
		{
			name:   "boolean variant set",
			config: primary,
			props:  NewProps("primary", true),
			want:   "root primary",
		},
		{
			name:   "boolean variant false has no option",
			config: primary,
			props:  NewProps("primary", false),
			want:   "root",
		},
		{
			name:   "variants then compound",
			config: buttonConfig(),
			props:  NewProps("border", true, "color", "primary"),
			want:   "root borderTrue colorPrimary borderPrimary",
		},
		{
			name:   "variant order follows prop order",
			config: buttonConfig(),
			props:  NewProps("color", "primary", "border", true),
			want:   "root colorPrimary borderTrue borderPrimary",
		},
		{
			name:   "unmatched option skipped",
			config: buttonConfig(),
			props:  NewProps("color", "tertiary"),
			want:   "root",
		},
		{
			name: "numeric options",
			config: Config{
				CSS: Class("root"),
				Variants: Variants{
					"highlighted": {"true": Class("highlighted")},
					"size":        {"0": Class("size0"), "1": Class("size1")},
					"align":       {"left": Class("left"), "center": Class("center"), "right": Class("right")},
				},
			},
			props: NewProps("highlighted", true, "size", 0, "align", "left"),
			want:  "root highlighted size0 left",
		},
		{
			name: "array styles",
			config: Config{
				CSS: Class("baseButton", "button"),
				Variants: Variants{
					"primary": {"true": Class("primary", "bold")},
					"big":     {"true": Class("big")},
				},
				CompoundVariants: []CompoundVariant{
					{When: map[string]any{"primary": true, "big": true}, CSS: Class("primaryBig", "primaryBigBold")},
				},
			},
			props: NewProps("primary", true, "big", true),
			want:  "baseButton button primary bold big primaryBig primaryBigBold",
		},
		{
			name:   "caller className first",
			config: primary,
			props:  NewProps("primary", true, ClassNameKey, "custom"),
			want:   "custom root primary",
		},
		{
			name:   "empty className ignored",
			config: primary,
			props:  NewProps(ClassNameKey, ""),
			want:   "root",
		},
		{
			name:   "empty config",
			config: Config{},
			props:  NewProps("id", "x"),
			want:   "",
		},
		{
			name: "compound rule without css contributes nothing",
			config: Config{
				CSS:              Class("root"),
				CompoundVariants: []CompoundVariant{{When: map[string]any{}}},
			},
			props: NewProps(),
			want:  "root",
		},
		{
			name: "unconditional compound rule applies",
			config: Config{
				CSS:              Class("root"),
				CompoundVariants: []CompoundVariant{{CSS: Class("always")}},
			},
			props: NewProps(),
			want:  "root always",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(tt.config, tt.props)
			assert.Equal(t, tt.want, res.ClassName)
			assert.Equal(t, tt.want, res.Props.Value(ClassNameKey))
		})
	}
}

func TestResolveClassNameOnlyConfig(t *testing.T) {
	for _, class := range []string{"x", "a b", "btn btn--primary"} {
		res := Resolve(Config{}, NewProps(ClassNameKey, class))
		assert.Equal(t, class, res.ClassName)
	}
}

func TestResolveForwarding(t *testing.T) {
	t.Run("variants dropped unknown props forwarded", func(t *testing.T) {
		res := Resolve(buttonConfig(), NewProps("border", true, "id", "save", "data-section", "Login Form", "color", "primary"))

		assert.False(t, res.Props.Has("border"))
		assert.False(t, res.Props.Has("color"))
		assert.Equal(t, "save", res.Props.Value("id"))
		assert.Equal(t, "Login Form", res.Props.Value("data-section"))
		assert.Equal(t, []string{"id", "data-section", ClassNameKey}, res.Props.Keys())
	})

	t.Run("unmatched variant value still dropped", func(t *testing.T) {
		res := Resolve(buttonConfig(), NewProps("color", "tertiary"))
		assert.False(t, res.Props.Has("color"))
	})

	t.Run("passthrough variant forwarded", func(t *testing.T) {
		cfg := Config{
			Variants:    Variants{"type": {"text": Class("textInput")}},
			Passthrough: []string{"type"},
		}
		res := Resolve(cfg, NewProps("type", "text"))

		assert.Contains(t, res.ClassName, "textInput")
		assert.Equal(t, "text", res.Props.Value("type"))
		assert.Equal(t, "textInput", res.Props.Value(ClassNameKey))
	})

	t.Run("className keeps caller position but holds final value", func(t *testing.T) {
		res := Resolve(buttonConfig(), NewProps(ClassNameKey, "custom", "id", "x", "border", true))
		assert.Equal(t, []string{ClassNameKey, "id"}, res.Props.Keys())
		assert.Equal(t, "custom root borderTrue", res.Props.Value(ClassNameKey))
	})

	t.Run("className always present", func(t *testing.T) {
		res := Resolve(Config{}, NewProps())
		require.True(t, res.Props.Has(ClassNameKey))
		assert.Equal(t, "", res.Props.Value(ClassNameKey))
	})
}

func TestResolveDefaults(t *testing.T) {
	cfg := Config{
		Variants: Variants{
			"theme": {"light": Class("themeLight"), "dark": Class("themeDark")},
			"fixed": {"true": Class("fixed")},
		},
		CompoundVariants: []CompoundVariant{
			{When: map[string]any{"fixed": true, "theme": "light"}, CSS: Class("fixedLight")},
		},
		DefaultVariants: NewProps("theme", "light"),
	}

	t.Run("caller overrides default", func(t *testing.T) {
		res := Resolve(cfg, NewProps("theme", "dark"))
		assert.Equal(t, "dark", res.Values.Value("theme"))
		assert.Equal(t, "themeDark", res.ClassName)
	})

	t.Run("absent key falls back to default", func(t *testing.T) {
		res := Resolve(cfg, NewProps("fixed", true))
		assert.Equal(t, "light", res.Values.Value("theme"))
		assert.Equal(t, "themeLight fixed fixedLight", res.ClassName)
	})

	t.Run("explicit empty value wins over default", func(t *testing.T) {
		res := Resolve(cfg, NewProps("theme", ""))
		assert.Equal(t, "", res.Values.Value("theme"))
		assert.Equal(t, "", res.ClassName)
	})

	t.Run("default keys iterate first", func(t *testing.T) {
		res := Resolve(cfg, NewProps("fixed", true, "theme", "dark"))
		assert.Equal(t, []string{"theme", "fixed"}, res.Values.Keys())
		assert.Equal(t, "themeDark fixed", res.ClassName)
	})

	t.Run("defaults not forwarded when they are variants", func(t *testing.T) {
		res := Resolve(cfg, NewProps())
		assert.False(t, res.Props.Has("theme"))
	})
}

func TestResolveNonMatchingPropLeavesClassNameUnchanged(t *testing.T) {
	cfg := buttonConfig()
	inputs := []Props{
		NewProps(),
		NewProps("border", true),
		NewProps("border", true, "color", "secondary"),
	}

	for _, props := range inputs {
		before := Resolve(cfg, props).ClassName

		extended := props.Clone()
		extended.Set("aria-label", "Close")
		extended.Set("tabIndex", 0)

		assert.Equal(t, before, Resolve(cfg, extended).ClassName)
	}
}

func TestResolveCompoundOrder(t *testing.T) {
	cfg := Config{
		Variants: Variants{"a": {"true": Class("a")}, "b": {"true": Class("b")}},
		CompoundVariants: []CompoundVariant{
			{When: map[string]any{"b": true}, CSS: Class("second-declared-first")},
			{When: map[string]any{"a": true, "b": true}, CSS: Class("declared-last")},
		},
	}

	res := Resolve(cfg, NewProps("a", true, "b", true))
	assert.Equal(t, "a b second-declared-first declared-last", res.ClassName)
}

func TestResolveIsPure(t *testing.T) {
	cfg := buttonConfig()
	cfg.DefaultVariants = NewProps("color", "secondary")
	props := NewProps("border", true, "id", "x")

	first := Resolve(cfg, props)
	second := Resolve(cfg, props)

	assert.Equal(t, first.ClassName, second.ClassName)
	assert.Equal(t, first.Props.Keys(), second.Props.Keys())
	assert.Equal(t, []string{"border", "id"}, props.Keys())
	assert.Equal(t, []string{"color"}, cfg.DefaultVariants.Keys())

	again := Resolve(cfg, first.Props)
	assert.Equal(t, first.ClassName+" root colorSecondary", again.ClassName)

	// Re-resolving forwarded props appends the base style again; class lists
	// are not de-duplicated.
	plain := buttonConfig()
	once := Resolve(plain, NewProps("color", "primary"))
	assert.Equal(t, "root colorPrimary", once.ClassName)
	assert.Equal(t, "root colorPrimary root", Resolve(plain, once.Props).ClassName)
}
