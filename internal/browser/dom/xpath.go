// internal/browser/dom/xpath.go
package dom

import (
	"fmt"
	"strings"
)

// UniqueXPath generates a robust XPath expression for an element.
// It prioritizes using IDs as anchors for stability and brevity.
func UniqueXPath(el Element) string {
	if el == nil {
		return ""
	}

	var path []string
	// Traverse up the tree from the element to the root.
	for n := el; n != nil; n = n.Parent() {
		tag := n.TagName()
		// SVG tag names are case-sensitive ("linearGradient").
		if !n.IsSVG() {
			tag = strings.ToLower(tag)
		}
		if tag == "" {
			continue
		}

		// If an element has an ID, use it as the base and stop traversal.
		if id := ID(n); id != "" {
			path = append(path, fmt.Sprintf(`//*[@id='%s']`, id))
			break
		}

		// XPath indices are 1-based and count same-tag siblings only.
		index := 1
		for prev := n.PrevElementSibling(); prev != nil; prev = prev.PrevElementSibling() {
			if strings.EqualFold(prev.TagName(), tag) {
				index++
			}
		}

		path = append(path, fmt.Sprintf("%s[%d]", tag, index))
	}

	if len(path) == 0 {
		return "/"
	}

	// Reverse the path to go from root (or ID base) to the element.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	xpath := strings.Join(path, "/")
	// A path anchored on an ID is already absolute.
	if !strings.HasPrefix(xpath, "//*[@id=") {
		xpath = "/" + xpath
	}
	return xpath
}
