package stylegen

import (
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// lexState tracks the tokens preceding a class selector.
type lexState struct {
	prevType  css.TokenType
	prevText  string
	prevClass bool // previous ident was a class name (.foo), not an element
}

// Extract returns every element.class selector of a compiled stylesheet, in
// source order. Duplicates are kept. A class directly preceded by a tag name
// (footer.footer, h1.title) records that tag as its element.
func Extract(content string) []Selector {
	lexer := css.NewLexer(parse.NewInputString(content))

	var selectors []Selector
	var s lexState

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal - just break
			break
		}

		if tt == css.DelimToken && len(text) > 0 && text[0] == '.' {
			element := ""
			if s.prevType == css.IdentToken && !s.prevClass {
				element = s.prevText
			}

			tt2, className := lexer.Next()
			if tt2 == css.IdentToken && isClassName(className) {
				selectors = append(selectors, Selector{Element: element, Class: string(className)})
				s = lexState{prevType: tt2, prevText: string(className), prevClass: true}
				continue
			}
			s = lexState{prevType: tt2, prevText: string(className)}
			continue
		}

		s = lexState{prevType: tt, prevText: string(text)}
	}

	return selectors
}

// isClassName accepts names starting with a letter or underscore.
func isClassName(name []byte) bool {
	if len(name) == 0 {
		return false
	}
	c := name[0]
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
