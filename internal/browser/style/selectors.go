// internal/browser/style/selectors.go
package style

import (
	"strings"

	"github.com/xkilldash9x/axi/internal/browser/dom"
	"github.com/xkilldash9x/axi/internal/browser/parser"
)

// Matches reports whether el matches any selector of the group.
func Matches(el dom.Element, group parser.SelectorGroup) bool {
	_, ok := matchGroup(el, group)
	return ok
}

// QuerySelectorAll returns every element of the document matching the
// selector list, in document order.
func QuerySelectorAll(doc *dom.Document, selector string) ([]dom.Element, error) {
	group, err := parser.ParseSelectorGroup(selector)
	if err != nil {
		return nil, err
	}
	var out []dom.Element
	for _, el := range doc.Elements() {
		if Matches(el, group) {
			out = append(out, el)
		}
	}
	return out, nil
}

func matchGroup(el dom.Element, group parser.SelectorGroup) (*parser.ComplexSelector, bool) {
	if el == nil {
		return nil, false
	}
	for i := range group {
		complexSelector := &group[i]
		currentIndex := len(complexSelector.Selectors) - 1
		if currentIndex < 0 {
			continue
		}
		if recursiveMatch(el, complexSelector, currentIndex) {
			return complexSelector, true
		}
	}
	return nil, false
}

func recursiveMatch(el dom.Element, complexSelector *parser.ComplexSelector, index int) bool {
	if el == nil || index < 0 {
		return false
	}
	currentSelectorWithCombinator := complexSelector.Selectors[index]
	if !matchesSimple(el, currentSelectorWithCombinator.SimpleSelector) {
		return false
	}
	if index == 0 {
		return true
	}
	nextIndex := index - 1
	switch currentSelectorWithCombinator.Combinator {
	case parser.CombinatorDescendant:
		for parent := el.Parent(); parent != nil; parent = parent.Parent() {
			if recursiveMatch(parent, complexSelector, nextIndex) {
				return true
			}
		}
		return false
	case parser.CombinatorChild:
		return recursiveMatch(el.Parent(), complexSelector, nextIndex)
	case parser.CombinatorAdjacentSibling:
		return recursiveMatch(el.PrevElementSibling(), complexSelector, nextIndex)
	case parser.CombinatorGeneralSibling:
		for sibling := el.PrevElementSibling(); sibling != nil; sibling = sibling.PrevElementSibling() {
			if recursiveMatch(sibling, complexSelector, nextIndex) {
				return true
			}
		}
		return false
	case parser.CombinatorNone:
		return true
	}
	return false
}

func matchesSimple(el dom.Element, selector parser.SimpleSelector) bool {
	if selector.TagName != "" && selector.TagName != "*" && !strings.EqualFold(el.TagName(), selector.TagName) {
		return false
	}
	if selector.ID != "" && dom.ID(el) != selector.ID {
		return false
	}
	for _, requiredClass := range selector.Classes {
		if !dom.HasClass(el, requiredClass) {
			return false
		}
	}
	for _, attrSel := range selector.Attributes {
		if !matchesAttribute(el, attrSel) {
			return false
		}
	}
	return true
}

func matchesAttribute(el dom.Element, sel parser.AttributeSelector) bool {
	actualValue, found := el.Attr(sel.Name)

	switch sel.Operator {
	case "":
		return found
	case "=":
		return found && actualValue == sel.Value
	case "~=":
		if !found {
			return false
		}
		for _, word := range strings.Fields(actualValue) {
			if word == sel.Value {
				return true
			}
		}
		return false
	case "|=":
		return found && (actualValue == sel.Value || strings.HasPrefix(actualValue, sel.Value+"-"))
	case "^=":
		return found && strings.HasPrefix(actualValue, sel.Value)
	case "$=":
		return found && strings.HasSuffix(actualValue, sel.Value)
	case "*=":
		return found && strings.Contains(actualValue, sel.Value)
	default:
		return false
	}
}
