package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cv-folio/internal/i18n"
)

func TestBusDeliversInOrder(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	var got []string
	bus.Subscribe(RenderComplete, func(ev Event) { got = append(got, "a:"+string(ev.Lang)) })
	bus.Subscribe(RenderComplete, func(ev Event) { got = append(got, "b:"+ev.Source) })
	bus.Subscribe(LanguageChanged, func(ev Event) { got = append(got, "lang") })

	bus.Emit(Event{Name: RenderComplete, Source: "cv", Lang: i18n.EN})
	assert.Equal(t, []string{"a:en", "b:cv"}, got)
}

func TestBusUnsubscribe(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	calls := 0
	unsubscribe := bus.Subscribe(LanguageChanged, func(Event) { calls++ })
	bus.Emit(Event{Name: LanguageChanged})
	unsubscribe()
	unsubscribe()
	bus.Emit(Event{Name: LanguageChanged})
	assert.Equal(t, 1, calls)
}

func TestBusHandlerMaySubscribe(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	nested := 0
	bus.Subscribe(RenderComplete, func(Event) {
		bus.Subscribe(RenderComplete, func(Event) { nested++ })
	})
	bus.Emit(Event{Name: RenderComplete})
	assert.Zero(t, nested, "handlers added during emit wait for the next event")
	bus.Emit(Event{Name: RenderComplete})
	assert.Equal(t, 1, nested)
}
