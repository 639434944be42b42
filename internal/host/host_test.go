package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	t.Parallel()

	m := NewMemory("?lang=en&slug=alpha", "de-DE")
	assert.Equal(t, "en", m.Query("lang"))
	assert.Equal(t, "alpha", m.Query("slug"))
	assert.Equal(t, "", m.Query("missing"))
	assert.Equal(t, "de-DE", m.NavigatorLanguage())

	_, ok := m.Get("mt.lang")
	assert.False(t, ok)
	assert.NoError(t, m.Set("mt.lang", "en"))
	v, ok := m.Get("mt.lang")
	assert.True(t, ok)
	assert.Equal(t, "en", v)

	assert.False(t, m.PrefersReducedMotion())
	m.SetReducedMotion(true)
	assert.True(t, m.PrefersReducedMotion())
}
