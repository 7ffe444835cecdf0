package stylegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/cssvariants"
)

func classes(names ...string) []Selector {
	selectors := make([]Selector, len(names))
	for i, name := range names {
		selectors[i] = Selector{Class: name}
	}
	return selectors
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name      string
		selectors []Selector
		check     func(*testing.T, *Stylesheet)
	}{
		{
			name:      "base only",
			selectors: classes("almostEmpty"),
			check: func(t *testing.T, s *Stylesheet) {
				require.Len(t, s.Components, 1)
				c := s.Components[0]
				assert.Equal(t, "almostEmpty", c.Name)
				assert.Equal(t, "AlmostEmpty", c.ExportName)
				assert.Equal(t, "almostEmpty", c.CSS)
				assert.Equal(t, DefaultElement, c.Element)
				assert.Empty(t, c.Variants)
				assert.Empty(t, c.Compounds)
			},
		},
		{
			name:      "two chunks ignored",
			selectors: classes("footer_fixed"),
			check: func(t *testing.T, s *Stylesheet) {
				assert.Empty(t, s.Components)
			},
		},
		{
			name:      "default marker",
			selectors: classes("footer_theme_light_default", "footer_theme_dark"),
			check: func(t *testing.T, s *Stylesheet) {
				c := s.Component("footer")
				require.NotNil(t, c)
				require.Len(t, c.Variants, 1)
				v := c.Variants[0]
				assert.Equal(t, "theme", v.Name)
				assert.Equal(t, "light", v.Default)
				assert.Equal(t, []Option{
					{Value: "light", Class: "footer_theme_light_default"},
					{Value: "dark", Class: "footer_theme_dark"},
				}, v.Options)
			},
		},
		{
			name:      "last default wins",
			selectors: classes("tag_size_small_default", "tag_size_big_default"),
			check: func(t *testing.T, s *Stylesheet) {
				assert.Equal(t, "big", s.Component("tag").Variants[0].Default)
			},
		},
		{
			name:      "four chunks without marker",
			selectors: classes("tag_size_small_x"),
			check: func(t *testing.T, s *Stylesheet) {
				v := s.Component("tag").Variants[0]
				assert.Empty(t, v.Default)
				assert.Equal(t, []Option{{Value: "small", Class: "tag_size_small_x"}}, v.Options)
			},
		},
		{
			name:      "repeated option replaced in place",
			selectors: classes("tag_size_small", "tag_size_big", "tag_size_small_default"),
			check: func(t *testing.T, s *Stylesheet) {
				assert.Equal(t, []Option{
					{Value: "small", Class: "tag_size_small_default"},
					{Value: "big", Class: "tag_size_big"},
				}, s.Component("tag").Variants[0].Options)
			},
		},
		{
			name:      "compound rule",
			selectors: classes("footer_fixed_true_theme_light", "footer_fixed_true_theme_light"),
			check: func(t *testing.T, s *Stylesheet) {
				c := s.Component("footer")
				require.Len(t, c.Compounds, 1)
				assert.Equal(t, Compound{
					When:  []Condition{{Variant: "fixed", Value: "true"}, {Variant: "theme", Value: "light"}},
					Class: "footer_fixed_true_theme_light",
				}, c.Compounds[0])
				assert.Empty(t, c.Variants)
			},
		},
		{
			name:      "dangling compound token dropped",
			selectors: classes("btn_size_big_color_red_x"),
			check: func(t *testing.T, s *Stylesheet) {
				assert.Equal(t, []Condition{
					{Variant: "size", Value: "big"},
					{Variant: "color", Value: "red"},
				}, s.Component("btn").Compounds[0].When)
			},
		},
		{
			name:      "repeated compound variant keeps last value",
			selectors: classes("btn_size_big_size_small"),
			check: func(t *testing.T, s *Stylesheet) {
				assert.Equal(t, []Condition{{Variant: "size", Value: "small"}}, s.Component("btn").Compounds[0].When)
			},
		},
		{
			name:      "empty first chunk ignored",
			selectors: classes("_private_thing"),
			check: func(t *testing.T, s *Stylesheet) {
				assert.Empty(t, s.Components)
			},
		},
		{
			name: "element upgraded once",
			selectors: []Selector{
				{Class: "link_primary_true"},
				{Element: "a", Class: "link"},
				{Element: "span", Class: "link"},
			},
			check: func(t *testing.T, s *Stylesheet) {
				assert.Equal(t, "a", s.Component("link").Element)
			},
		},
		{
			name: "explicit div kept",
			selectors: []Selector{
				{Element: "div", Class: "box"},
				{Element: "section", Class: "box"},
			},
			check: func(t *testing.T, s *Stylesheet) {
				assert.Equal(t, "div", s.Component("box").Element)
			},
		},
		{
			name:      "first seen order",
			selectors: classes("link_primary_true", "footer", "link", "almostEmpty"),
			check: func(t *testing.T, s *Stylesheet) {
				var names []string
				for _, c := range s.Components {
					names = append(names, c.Name)
				}
				assert.Equal(t, []string{"link", "footer", "almostEmpty"}, names)
			},
		},
		{
			name:      "export name collisions",
			selectors: classes("nav-bar", "navBar", "stylesheet"),
			check: func(t *testing.T, s *Stylesheet) {
				assert.Equal(t, "NavBar", s.Component("nav-bar").ExportName)
				assert.Equal(t, "NavBar2", s.Component("navBar").ExportName)
				assert.Equal(t, "Stylesheet2", s.Component("stylesheet").ExportName)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Build(tt.selectors, DefaultSeparator))
		})
	}
}

func TestBuildCustomSeparator(t *testing.T) {
	s := Build(classes("card--size--big", "card--size"), "--")

	c := s.Component("card")
	require.NotNil(t, c)
	require.Len(t, c.Variants, 1)
	assert.Equal(t, "size", c.Variants[0].Name)
	assert.Equal(t, []Option{{Value: "big", Class: "card--size--big"}}, c.Variants[0].Options)
}

func TestToExportName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"footer", "Footer"},
		{"almostEmpty", "AlmostEmpty"},
		{"nav-bar", "NavBar"},
		{"__x", "X"},
		{"-", "Component"},
		{"2col", "C2col"},
		{"émoji", "Émoji"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, toExportName(tt.in))
		})
	}
}

func TestGenerateFixture(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("testdata", "test.css"))
	require.NoError(t, err)

	s := Generate(string(content), DefaultSeparator)

	require.Len(t, s.Components, 3)
	assert.Equal(t, "div", s.Component("almostEmpty").Element)
	assert.Equal(t, "footer", s.Component("footer").Element)
	assert.Equal(t, "a", s.Component("link").Element)

	footer := s.Component("footer")
	require.Len(t, footer.Variants, 2)
	assert.Equal(t, "light", footer.Variants[1].Default)
	assert.Len(t, footer.Compounds, 2)
}

func TestComponentConfig(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("testdata", "test.css"))
	require.NoError(t, err)

	cfg := Generate(string(content), DefaultSeparator).Component("footer").Config()

	assert.Equal(t, cssvariants.Class("footer"), cfg.CSS)
	assert.Equal(t, cssvariants.Class("footer_theme_dark"), cfg.Variants["theme"]["dark"])
	assert.Equal(t, "light", cfg.DefaultVariants.Value("theme"))
	require.Len(t, cfg.CompoundVariants, 2)
	assert.Equal(t, map[string]any{"fixed": "false", "theme": "light"}, cfg.CompoundVariants[1].When)

	res := cfg.Resolve(cssvariants.NewProps("fixed", true))
	assert.Equal(t, "footer footer_theme_light_default footer_fixed_true footer_fixed_true_theme_light", res.ClassName)
}
