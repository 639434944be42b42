package usecase

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"cv-folio/internal/dom"
	"cv-folio/internal/host"
	"cv-folio/internal/model"
	"cv-folio/internal/signal"
)

func readFixture(t testing.TB, name string) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return b
}

func loadCVFixture(t testing.TB) *model.CV {
	t.Helper()
	var cv model.CV
	require.NoError(t, json.Unmarshal(readFixture(t, "cv.json"), &cv))
	return &cv
}

func loadPortfolioFixture(t testing.TB) *model.Portfolio {
	t.Helper()
	var p model.Portfolio
	require.NoError(t, json.Unmarshal(readFixture(t, "portfolio.json"), &p))
	return &p
}

// parsePage loads an HTML shell from testdata, replacing "SLUG" with slug.
func parsePage(t testing.TB, name, slug string) *dom.Document {
	t.Helper()
	src := strings.ReplaceAll(string(readFixture(t, name)), "SLUG", slug)
	doc, err := dom.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return doc
}

// query snapshots the current tree for goquery assertions.
func query(t testing.TB, doc *dom.Document) *goquery.Document {
	t.Helper()
	var markup string
	doc.Update(func() { markup = dom.Render(doc.Root()) })
	q, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	return q
}

type fakeCVLoader struct {
	mu    sync.Mutex
	cv    *model.CV
	err   error
	calls int
}

func (f *fakeCVLoader) LoadCV(context.Context) (*model.CV, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.cv, f.err
}

type fakePortfolioLoader struct {
	p     *model.Portfolio
	err   error
	calls int
}

func (f *fakePortfolioLoader) LoadPortfolio(context.Context) (*model.Portfolio, error) {
	f.calls++
	return f.p, f.err
}

// recorder collects bus events in emission order.
type recorder struct {
	mu     sync.Mutex
	events []signal.Event
}

func record(bus *signal.Bus) *recorder {
	r := &recorder{}
	h := func(ev signal.Event) {
		r.mu.Lock()
		r.events = append(r.events, ev)
		r.mu.Unlock()
	}
	bus.Subscribe(signal.RenderComplete, h)
	bus.Subscribe(signal.LanguageChanged, h)
	return r
}

func (r *recorder) names() []signal.Name {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]signal.Name, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Name)
	}
	return out
}

func (r *recorder) reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}

type testEnv struct {
	doc  *dom.Document
	mem  *host.Memory
	bus  *signal.Bus
	rec  *recorder
	deps Deps
}

func newTestEnv(t testing.TB, page, slug, rawQuery, navLang string) *testEnv {
	t.Helper()
	doc := parsePage(t, page, slug)
	mem := host.NewMemory(rawQuery, navLang)
	bus := signal.NewBus()
	return &testEnv{
		doc:  doc,
		mem:  mem,
		bus:  bus,
		rec:  record(bus),
		deps: Deps{Doc: doc, Storage: mem, Env: mem, Bus: bus},
	}
}
