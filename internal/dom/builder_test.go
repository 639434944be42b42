package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElRendersSortedAttrsAndSkipsNil(t *testing.T) {
	t.Parallel()

	n := El("div", Attrs{"role": "meter", "class": "meter", "aria-label": "x"},
		nil,
		TextEl("span", nil, ""),
		TextEl("span", Attrs{"class": "name"}, "Go"),
	)
	assert.Equal(t, `<div aria-label="x" class="meter" role="meter"><span class="name">Go</span></div>`, Render(n))
}

func TestListDropsEmptyItems(t *testing.T) {
	t.Parallel()

	assert.Nil(t, List("tags", nil))
	assert.Nil(t, List("tags", []string{"", "  "}))
	assert.Equal(t, `<ul class="tags"><li>a</li><li>b</li></ul>`, Render(List("tags", []string{"a", "", "b"})))
}

func TestReplaceNeverAppends(t *testing.T) {
	t.Parallel()

	mount := El("div", nil, El("p", nil, Text("old")))
	Replace(mount, El("p", nil, Text("new")))
	Replace(mount, El("p", nil, Text("new")))
	assert.Equal(t, "<p>new</p>", InnerHTML(mount))
}

func TestAppendDetachesFromPreviousParent(t *testing.T) {
	t.Parallel()

	child := El("span", nil)
	a := El("div", nil, child)
	b := El("div", nil)
	Append(b, child)
	assert.Nil(t, a.FirstChild)
	assert.Equal(t, b, child.Parent)
}

func TestClassHelpers(t *testing.T) {
	t.Parallel()

	n := El("div", Attrs{"class": "job"})
	AddClass(n, "is-visible")
	AddClass(n, "is-visible")
	assert.True(t, HasClass(n, "is-visible"))
	v, _ := GetAttr(n, "class")
	assert.Equal(t, "job is-visible", v)

	RemoveClass(n, "job")
	v, _ = GetAttr(n, "class")
	assert.Equal(t, "is-visible", v)

	SetAttr(n, "data-x", "1")
	SetAttr(n, "data-x", "2")
	v, ok := GetAttr(n, "data-x")
	require.True(t, ok)
	assert.Equal(t, "2", v)

	RemoveAttr(n, "data-x")
	_, ok = GetAttr(n, "data-x")
	assert.False(t, ok)
}

func TestLink(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `<a href="mailto:a@b.c">a@b.c</a>`, Render(Link("mailto:a@b.c", "a@b.c", false)))
	assert.Equal(t, `<a href="https://x.io" rel="noopener noreferrer" target="_blank">x.io</a>`, Render(Link("https://x.io", "x.io", true)))
}

func TestTextIsEscaped(t *testing.T) {
	t.Parallel()

	n := El("p", nil, Text(`<script>alert(1)</script>`))
	assert.Equal(t, `<p>&lt;script&gt;alert(1)&lt;/script&gt;</p>`, Render(n))
	assert.Equal(t, `<script>alert(1)</script>`, TextContent(n))
}

func TestFragment(t *testing.T) {
	t.Parallel()

	nodes, err := Fragment(`<svg viewBox="0 0 1 1"><path d="M0 0"></path></svg>`)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "svg", nodes[0].Data)
}
