// Package signal carries render notifications from the engines to whoever
// animates or mirrors the page. Emitters do not know their listeners.
package signal

import (
	"sync"

	"cv-folio/internal/i18n"
)

// Name identifies an event. The values double as DOM CustomEvent types.
type Name string

const (
	// RenderComplete follows every full render of either engine.
	RenderComplete Name = "render:complete"
	// LanguageChanged follows a language switch on the CV page.
	LanguageChanged Name = "lang:changed"
)

// Event is what listeners receive.
type Event struct {
	Name   Name
	Source string
	Lang   i18n.Lang
}

type Handler func(Event)

type subscription struct {
	id int
	fn Handler
}

// Bus is a synchronous publish/subscribe hub. Handlers run on the emitting
// goroutine in subscription order.
type Bus struct {
	mu   sync.Mutex
	next int
	subs map[Name][]subscription
}

func NewBus() *Bus {
	return &Bus{subs: map[Name][]subscription{}}
}

// Subscribe registers fn for name and returns a function that removes it.
func (b *Bus) Subscribe(name Name, fn Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.next++
	id := b.next
	b.subs[name] = append(b.subs[name], subscription{id: id, fn: fn})
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		list := b.subs[name]
		for i, s := range list {
			if s.id == id {
				b.subs[name] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

// Emit delivers ev to every handler subscribed to ev.Name.
func (b *Bus) Emit(ev Event) {
	b.mu.Lock()
	handlers := make([]Handler, 0, len(b.subs[ev.Name]))
	for _, s := range b.subs[ev.Name] {
		handlers = append(handlers, s.fn)
	}
	b.mu.Unlock()
	for _, h := range handlers {
		h(ev)
	}
}
