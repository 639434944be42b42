// Package host abstracts the browser surface the render engines touch:
// the persisted preference store and the page environment.
package host

import (
	"net/url"
	"sync"
)

// Storage is a string key/value store such as window.localStorage.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Env is the read-only page environment.
type Env interface {
	// Query returns a parameter of the current URL's query string.
	Query(key string) string
	// NavigatorLanguage returns the browser's reported language tag.
	NavigatorLanguage() string
	// PrefersReducedMotion reports the user's motion preference.
	PrefersReducedMotion() bool
}

// Memory implements Storage and Env in-process.
type Memory struct {
	mu            sync.Mutex
	values        map[string]string
	query         url.Values
	navLang       string
	reducedMotion bool
}

// NewMemory builds an environment from a raw query string (with or without
// the leading "?") and a navigator language.
func NewMemory(rawQuery, navigatorLang string) *Memory {
	if len(rawQuery) > 0 && rawQuery[0] == '?' {
		rawQuery = rawQuery[1:]
	}
	q, _ := url.ParseQuery(rawQuery)
	return &Memory{values: map[string]string{}, query: q, navLang: navigatorLang}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Query(key string) string { return m.query.Get(key) }

func (m *Memory) NavigatorLanguage() string { return m.navLang }

func (m *Memory) PrefersReducedMotion() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reducedMotion
}

// SetReducedMotion toggles the motion preference.
func (m *Memory) SetReducedMotion(v bool) {
	m.mu.Lock()
	m.reducedMotion = v
	m.mu.Unlock()
}
