// internal/browser/parser/inline.go
package parser

import "strings"

// ParseInlineStyle parses the content of a style attribute. Declarations keep
// source order; a property repeated later overrides the value but keeps the
// position of its first occurrence.
func ParseInlineStyle(styleAttr string) []Declaration {
	p := NewParser(styleAttr)
	var decls []Declaration
	for {
		p.consumeWhitespace()
		if p.eof() {
			break
		}
		if p.currentChar() == ';' {
			p.consumeChar()
			continue
		}
		if p.startsWith("/*") {
			p.skipComment()
			continue
		}
		decl, ok := p.parseDeclaration()
		if !ok {
			// A stray '}' would stall parseDeclaration.
			if p.currentChar() == '}' {
				p.consumeChar()
			}
			continue
		}
		decls = SetDeclaration(decls, decl)
	}
	return decls
}

// SetDeclaration inserts or overwrites decl in place.
func SetDeclaration(decls []Declaration, decl Declaration) []Declaration {
	for i := range decls {
		if decls[i].Property == decl.Property {
			decls[i] = decl
			return decls
		}
	}
	return append(decls, decl)
}

// SerializeInlineStyle renders declarations back into style attribute form.
func SerializeInlineStyle(decls []Declaration) string {
	var sb strings.Builder
	for i, d := range decls {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(string(d.Property))
		sb.WriteString(": ")
		sb.WriteString(string(d.Value))
		if d.Important {
			sb.WriteString(" !important")
		}
		sb.WriteByte(';')
	}
	return sb.String()
}

// CSSName converts a camel-cased style property ("backgroundColor") into its
// hyphenated form ("background-color"). Hyphenated input is returned lowercased.
func CSSName(prop string) string {
	if strings.HasPrefix(prop, "--") {
		// Custom properties are case-sensitive.
		return prop
	}
	var sb strings.Builder
	sb.Grow(len(prop) + 4)
	for i := 0; i < len(prop); i++ {
		ch := prop[i]
		if ch >= 'A' && ch <= 'Z' {
			if i > 0 && prop[i-1] >= 'a' && prop[i-1] <= 'z' {
				sb.WriteByte('-')
			}
			ch += 'a' - 'A'
		}
		sb.WriteByte(ch)
	}
	return sb.String()
}
