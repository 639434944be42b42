package dom

import (
	"io"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Change describes a node touched since the last commit. Content is true
// when the node's children were rebuilt, false when only attributes changed.
type Change struct {
	Node    *html.Node
	Content bool
}

// Document is a page tree plus the list of nodes mutated since the last
// Commit. Whoever mirrors the tree into a live page subscribes via OnCommit.
//
// The tree itself is not safe for concurrent use. Every reader and writer
// that can run alongside another goroutine goes through Update.
type Document struct {
	root *html.Node
	q    *goquery.Document

	tree sync.Mutex

	mu       sync.Mutex
	touched  []Change
	index    map[*html.Node]int
	onCommit func([]Change)
}

// Parse reads a full HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return NewDocument(root), nil
}

// NewDocument wraps an existing tree.
func NewDocument(root *html.Node) *Document {
	return &Document{
		root:  root,
		q:     goquery.NewDocumentFromNode(root),
		index: map[*html.Node]int{},
	}
}

func (d *Document) Root() *html.Node { return d.root }

// Update runs fn with exclusive access to the tree. Calls do not nest: fn
// must not call Update again, and neither may the OnCommit receiver when
// fn commits.
func (d *Document) Update(fn func()) {
	d.tree.Lock()
	defer d.tree.Unlock()
	fn()
}

// Selection exposes the tree to goquery for callers that need more than Find.
func (d *Document) Selection() *goquery.Selection { return d.q.Selection }

// ByID returns the element with the given id or nil.
func (d *Document) ByID(id string) *html.Node {
	s := d.q.Find("#" + id)
	if s.Length() == 0 {
		return nil
	}
	return s.Nodes[0]
}

// Find returns every element matching a CSS selector, in document order.
func (d *Document) Find(selector string) []*html.Node {
	return d.q.Find(selector).Nodes
}

// HTML returns the <html> element.
func (d *Document) HTML() *html.Node {
	return findAtom(d.root, atom.Html)
}

// SetLang sets the lang attribute of <html>.
func (d *Document) SetLang(lang string) {
	n := d.HTML()
	if n == nil {
		return
	}
	SetAttr(n, "lang", lang)
	d.Touch(n)
}

// SetTitle replaces the text of <title>, if present.
func (d *Document) SetTitle(title string) {
	n := findAtom(d.root, atom.Title)
	if n == nil {
		return
	}
	SetText(n, title)
	d.TouchContent(n)
}

// SetMeta sets the content of <meta name=...>, if present.
func (d *Document) SetMeta(name, content string) {
	for _, n := range d.Find(`meta[name="` + name + `"]`) {
		SetAttr(n, "content", content)
		d.Touch(n)
	}
}

// Mount replaces the children of the element with the given id and records
// the change. It returns false when the mount node does not exist.
func (d *Document) Mount(id string, children ...*html.Node) bool {
	n := d.ByID(id)
	if n == nil {
		return false
	}
	Replace(n, children...)
	d.TouchContent(n)
	return true
}

// Touch records an attribute change on n.
func (d *Document) Touch(n *html.Node) { d.touch(n, false) }

// TouchContent records that n's children were rebuilt.
func (d *Document) TouchContent(n *html.Node) { d.touch(n, true) }

func (d *Document) touch(n *html.Node, content bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i, ok := d.index[n]; ok {
		d.touched[i].Content = d.touched[i].Content || content
		return
	}
	d.index[n] = len(d.touched)
	d.touched = append(d.touched, Change{Node: n, Content: content})
}

// OnCommit registers the receiver of committed changes.
func (d *Document) OnCommit(fn func([]Change)) {
	d.mu.Lock()
	d.onCommit = fn
	d.mu.Unlock()
}

// Commit hands every change recorded since the last commit to the OnCommit
// receiver and resets the list.
func (d *Document) Commit() {
	d.mu.Lock()
	changes := d.touched
	fn := d.onCommit
	d.touched = nil
	d.index = map[*html.Node]int{}
	d.mu.Unlock()
	if fn != nil && len(changes) > 0 {
		fn(changes)
	}
}

func findAtom(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if f := findAtom(c, a); f != nil {
			return f
		}
	}
	return nil
}

// Locate describes n as the id of its nearest identified ancestor (itself
// included) followed by element-child indices. An empty id means the path
// starts at <html>.
func Locate(n *html.Node) (id string, path []int) {
	for c := n; c != nil && c.Type == html.ElementNode; c = c.Parent {
		if v, ok := GetAttr(c, "id"); ok && v != "" {
			id = v
			break
		}
		if c.DataAtom == atom.Html {
			break
		}
		path = append(path, elementIndex(c))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return id, path
}

func elementIndex(n *html.Node) int {
	i := 0
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			i++
		}
	}
	return i
}
