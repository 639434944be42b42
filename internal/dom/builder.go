// Package dom builds and mutates HTML node trees for the render engines.
package dom

import (
	"bytes"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attrs are element attributes. They are emitted in key order so that two
// renders of the same input produce identical markup.
type Attrs map[string]string

// El creates an element. Nil children are skipped.
func El(tag string, attrs Attrs, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	if len(attrs) > 0 {
		keys := make([]string, 0, len(attrs))
		for k := range attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		n.Attr = make([]html.Attribute, 0, len(keys))
		for _, k := range keys {
			n.Attr = append(n.Attr, html.Attribute{Key: k, Val: attrs[k]})
		}
	}
	Append(n, children...)
	return n
}

// Text creates a text node.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// TextEl creates an element holding a single text node, or nil when s is empty.
func TextEl(tag string, attrs Attrs, s string) *html.Node {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return El(tag, attrs, Text(s))
}

// Append adds children to parent, detaching them from any previous parent.
func Append(parent *html.Node, children ...*html.Node) {
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.Parent != nil {
			c.Parent.RemoveChild(c)
		}
		parent.AppendChild(c)
	}
}

// Clear removes every child of n.
func Clear(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
}

// Replace clears n and appends children.
func Replace(n *html.Node, children ...*html.Node) {
	Clear(n)
	Append(n, children...)
}

// List builds a <ul> of non-empty items, or returns nil when none remain.
func List(class string, items []string) *html.Node {
	var lis []*html.Node
	for _, it := range items {
		if li := TextEl("li", nil, it); li != nil {
			lis = append(lis, li)
		}
	}
	if len(lis) == 0 {
		return nil
	}
	var attrs Attrs
	if class != "" {
		attrs = Attrs{"class": class}
	}
	return El("ul", attrs, lis...)
}

// Link builds an anchor. External links open in a new tab.
func Link(href, label string, external bool) *html.Node {
	attrs := Attrs{"href": href}
	if external {
		attrs["target"] = "_blank"
		attrs["rel"] = "noopener noreferrer"
	}
	return El("a", attrs, Text(label))
}

// GetAttr returns the value of key on n.
func GetAttr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets key on n, replacing an existing value.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr deletes key from n.
func RemoveAttr(n *html.Node, key string) {
	out := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		out = append(out, a)
	}
	n.Attr = out
}

// HasClass reports whether n carries class c.
func HasClass(n *html.Node, c string) bool {
	v, _ := GetAttr(n, "class")
	for _, f := range strings.Fields(v) {
		if f == c {
			return true
		}
	}
	return false
}

// AddClass adds c to n's class list if missing.
func AddClass(n *html.Node, c string) {
	if HasClass(n, c) {
		return
	}
	v, _ := GetAttr(n, "class")
	SetAttr(n, "class", strings.TrimSpace(v+" "+c))
}

// RemoveClass drops c from n's class list.
func RemoveClass(n *html.Node, c string) {
	v, ok := GetAttr(n, "class")
	if !ok {
		return
	}
	fields := strings.Fields(v)
	out := fields[:0]
	for _, f := range fields {
		if f != c {
			out = append(out, f)
		}
	}
	SetAttr(n, "class", strings.Join(out, " "))
}

// SetText replaces the children of n with a single text node.
func SetText(n *html.Node, s string) {
	Replace(n, Text(s))
}

// TextContent concatenates every text node below n.
func TextContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
		for k := c.FirstChild; k != nil; k = k.NextSibling {
			walk(k)
		}
	}
	walk(n)
	return b.String()
}

// Render serializes n including its own tag.
func Render(n *html.Node) string {
	var buf bytes.Buffer
	_ = html.Render(&buf, n)
	return buf.String()
}

// InnerHTML serializes the children of n.
func InnerHTML(n *html.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&buf, c)
	}
	return buf.String()
}

// Fragment parses markup in the context of a <div> and returns detached nodes.
func Fragment(markup string) ([]*html.Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, err
	}
	return nodes, nil
}
