package dom

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/net/html"
)

var (
	markdown = goldmark.New(goldmark.WithExtensions(extension.Strikethrough, extension.Linkify))
	policy   = newProsePolicy()
)

func newProsePolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(false)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// Prose converts inline markdown to sanitized nodes. Plain text comes back
// as a single paragraph; an empty source yields no nodes.
func Prose(src string) []*html.Node {
	if len(bytes.TrimSpace([]byte(src))) == 0 {
		return nil
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return []*html.Node{El("p", nil, Text(src))}
	}
	nodes, err := Fragment(policy.Sanitize(buf.String()))
	if err != nil {
		return []*html.Node{El("p", nil, Text(src))}
	}
	out := nodes[:0]
	for _, n := range nodes {
		// goldmark separates blocks with newlines; they carry no content
		if n.Type == html.TextNode && len(bytes.TrimSpace([]byte(n.Data))) == 0 {
			continue
		}
		out = append(out, n)
	}
	return out
}
