package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const page = `<!DOCTYPE html><html lang="de"><head><title>t</title><meta name="description" content=""></head>
<body><nav><button data-lang-toggle data-lang="de"></button></nav><main><div id="cv-summary"><p>x</p></div></main></body></html>`

func parsePage(t *testing.T) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func TestMountAndCommit(t *testing.T) {
	t.Parallel()

	doc := parsePage(t)
	var got []Change
	doc.OnCommit(func(c []Change) { got = append(got, c...) })

	require.True(t, doc.Mount("cv-summary", El("p", Attrs{"class": "summary"}, Text("Hallo"))))
	assert.False(t, doc.Mount("cv-missing", El("p", nil)))
	doc.SetLang("en")
	doc.SetTitle("Neu")
	doc.SetMeta("description", "desc")
	doc.Mount("cv-summary", El("p", Attrs{"class": "summary"}, Text("Hallo")))
	doc.Commit()

	require.Len(t, got, 4)
	assert.True(t, got[0].Content)
	assert.Equal(t, "cv-summary", mustAttr(t, got[0].Node, "id"))
	assert.False(t, got[1].Content)

	assert.Equal(t, `<p class="summary">Hallo</p>`, InnerHTML(doc.ByID("cv-summary")))
	assert.Equal(t, "en", mustAttr(t, doc.HTML(), "lang"))
	assert.Equal(t, "desc", doc.Selection().Find(`meta[name="description"]`).AttrOr("content", ""))
	assert.Equal(t, "Neu", doc.Selection().Find("title").Text())

	got = nil
	doc.Commit()
	assert.Empty(t, got, "commit without changes is silent")
}

func TestLocate(t *testing.T) {
	t.Parallel()

	doc := parsePage(t)
	doc.Mount("cv-summary", El("div", nil, El("span", nil), El("span", nil)))
	second := doc.ByID("cv-summary").FirstChild.LastChild

	id, path := Locate(second)
	assert.Equal(t, "cv-summary", id)
	assert.Equal(t, []int{0, 1}, path)

	button := doc.Find("[data-lang-toggle]")[0]
	id, path = Locate(button)
	assert.Equal(t, "", id)
	assert.Equal(t, []int{1, 0, 0}, path, "body, nav, button")

	id, path = Locate(doc.ByID("cv-summary"))
	assert.Equal(t, "cv-summary", id)
	assert.Empty(t, path)
}

func mustAttr(t *testing.T, n *html.Node, key string) string {
	t.Helper()
	v, ok := GetAttr(n, key)
	require.True(t, ok, "attribute %s", key)
	return v
}
