// Package reveal animates rendered content into view. It listens for render
// signals and never talks to the render engines directly.
package reveal

import (
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"cv-folio/internal/dom"
	"cv-folio/internal/host"
	"cv-folio/internal/signal"
)

const (
	VisibleClass   = "is-visible"
	SwitchingClass = "lang-switching"

	revealSelector = "[data-reveal]"
	meterSelector  = ".meter"

	maxStaggerSteps = 8
)

// Viewport reports when elements scroll into view. Reset drops every
// registration, typically because the observed nodes were replaced.
type Viewport interface {
	Watch(n *html.Node, onEnter func())
	Reset()
}

type Timer interface {
	Stop() bool
}

// Scheduler runs fn after d.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type wallClock struct{}

func (wallClock) AfterFunc(d time.Duration, fn func()) Timer { return time.AfterFunc(d, fn) }

type Options struct {
	// Stagger delays consecutive reveals entering together.
	Stagger time.Duration
	// SwitchDuration is how long the language transition class stays on.
	SwitchDuration time.Duration
	// Env supplies the reduced-motion preference; nil means motion is fine.
	Env       host.Env
	Scheduler Scheduler
	Log       *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.Stagger <= 0 {
		o.Stagger = 60 * time.Millisecond
	}
	if o.SwitchDuration <= 0 {
		o.SwitchDuration = 400 * time.Millisecond
	}
	if o.Scheduler == nil {
		o.Scheduler = wallClock{}
	}
	if o.Log == nil {
		o.Log = zap.NewNop()
	}
	return o
}

// Controller reacts to render signals. The first render arms viewport
// observation; every later render, or any render under reduced motion,
// shows everything at once. Each activation cancels the timers of the one
// before it.
type Controller struct {
	doc  *dom.Document
	vp   Viewport
	opts Options

	mu            sync.Mutex
	armed         bool
	gen           uint64
	pending       []Timer
	switchGen     uint64
	switchPending Timer
	unsubscribe   []func()
}

func New(doc *dom.Document, bus *signal.Bus, vp Viewport, opts Options) *Controller {
	c := &Controller{doc: doc, vp: vp, opts: opts.withDefaults()}
	c.unsubscribe = append(c.unsubscribe,
		bus.Subscribe(signal.RenderComplete, c.onRender),
		bus.Subscribe(signal.LanguageChanged, c.onLanguage),
	)
	return c
}

// Close unsubscribes and stops pending timers.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, u := range c.unsubscribe {
		u()
	}
	c.unsubscribe = nil
	c.stopPending()
	if c.switchPending != nil {
		c.switchPending.Stop()
		c.switchPending = nil
	}
}

// Armed reports whether viewport observation has been set up.
func (c *Controller) Armed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.armed
}

func (c *Controller) reducedMotion() bool {
	return c.opts.Env != nil && c.opts.Env.PrefersReducedMotion()
}

func (c *Controller) stopPending() {
	for _, t := range c.pending {
		t.Stop()
	}
	c.pending = nil
}

func (c *Controller) onRender(ev signal.Event) {
	c.mu.Lock()
	c.gen++
	c.stopPending()
	if c.vp != nil {
		c.vp.Reset()
	}
	if c.armed || c.vp == nil || c.reducedMotion() {
		c.armed = true
		c.doc.Update(c.showAll)
		c.mu.Unlock()
		c.opts.Log.Debug("reveal immediate", zap.String("source", ev.Source))
		return
	}
	c.armed = true
	var targets []*html.Node
	c.doc.Update(func() { targets = c.targets() })
	gen := c.gen
	c.mu.Unlock()

	// watch callbacks may fire synchronously, so register without the lock
	for i, n := range targets {
		n := n
		delay := time.Duration(i%maxStaggerSteps) * c.opts.Stagger
		c.vp.Watch(n, func() { c.schedule(gen, n, delay) })
	}
	c.opts.Log.Debug("reveal armed", zap.String("source", ev.Source), zap.Int("targets", len(targets)))
}

// targets lists every reveal element plus meters that sit outside one.
func (c *Controller) targets() []*html.Node {
	out := c.doc.Find(revealSelector)
	for _, m := range c.doc.Find(meterSelector) {
		if !insideReveal(m) {
			out = append(out, m)
		}
	}
	return out
}

func insideReveal(n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if _, ok := dom.GetAttr(p, "data-reveal"); ok {
			return true
		}
	}
	return false
}

func (c *Controller) schedule(gen uint64, n *html.Node, delay time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	var t Timer
	t = c.opts.Scheduler.AfterFunc(delay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if gen != c.gen {
			return
		}
		c.doc.Update(func() {
			c.show(n)
			c.doc.Commit()
		})
	})
	c.pending = append(c.pending, t)
}

// showAll runs inside doc.Update.
func (c *Controller) showAll() {
	for _, n := range c.targets() {
		c.show(n)
	}
	c.doc.Commit()
}

// show marks n visible and fills every meter in it.
func (c *Controller) show(n *html.Node) {
	if _, ok := dom.GetAttr(n, "data-reveal"); ok && !dom.HasClass(n, VisibleClass) {
		dom.AddClass(n, VisibleClass)
		c.doc.Touch(n)
	}
	fill(c.doc, n)
}

func fill(doc *dom.Document, n *html.Node) {
	var walk func(*html.Node)
	walk = func(x *html.Node) {
		if x.Type == html.ElementNode && dom.HasClass(x, "meter__fill") {
			if pct, ok := dom.GetAttr(x, "data-fill"); ok {
				if _, err := strconv.Atoi(pct); err == nil {
					dom.SetAttr(x, "style", "width:"+pct+"%")
					doc.Touch(x)
				}
			}
		}
		for k := x.FirstChild; k != nil; k = k.NextSibling {
			walk(k)
		}
	}
	walk(n)
}

func (c *Controller) onLanguage(ev signal.Event) {
	if c.reducedMotion() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.switchGen++
	gen := c.switchGen
	if c.switchPending != nil {
		c.switchPending.Stop()
	}
	var root *html.Node
	c.doc.Update(func() {
		if root = c.doc.HTML(); root == nil {
			return
		}
		dom.AddClass(root, SwitchingClass)
		c.doc.Touch(root)
		c.doc.Commit()
	})
	if root == nil {
		return
	}

	c.switchPending = c.opts.Scheduler.AfterFunc(c.opts.SwitchDuration, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if gen != c.switchGen {
			return
		}
		c.switchPending = nil
		c.doc.Update(func() {
			dom.RemoveClass(root, SwitchingClass)
			c.doc.Touch(root)
			c.doc.Commit()
		})
	})
}
