package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// attrValue returns the value of an attribute on a node, or "".
func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// titledAnchors collects every anchor element carrying a title attribute,
// in document order. Document order matters: date headings must be seen
// before the list items they govern.
func titledAnchors(doc *html.Node) []*html.Node {
	var results []*html.Node

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" && attrValue(n, "title") != "" {
			results = append(results, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return results
}

// classifyParent maps an anchor's immediate surroundings to a NodeClass.
// A span nested in an h3 is a day heading, a span nested in an h2 is a
// section heading, an li makes the anchor a record candidate.
func classifyParent(n *html.Node) NodeClass {
	p := n.Parent
	if p == nil || p.Type != html.ElementNode {
		return NodeOther
	}

	switch p.Data {
	case "li":
		return NodeListItem
	case "span":
		gp := p.Parent
		if gp == nil || gp.Type != html.ElementNode {
			return NodeOther
		}
		switch gp.Data {
		case "h3":
			return NodeDayHeading
		case "h2":
			return NodeSectionHeading
		}
	}
	return NodeOther
}

// isFirstChild reports whether the node is the first child of its parent.
// Only the leading anchor of a list item denotes the deceased; later
// anchors are inline citations or cross-references.
func isFirstChild(n *html.Node) bool {
	return n.Parent != nil && n.Parent.FirstChild == n
}

// textContent concatenates all text beneath a node. No separators are
// inserted; the markup's own whitespace is preserved and collapsed later.
func textContent(n *html.Node) string {
	var b strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return b.String()
}
