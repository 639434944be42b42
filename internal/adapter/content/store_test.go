package content

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc(DefaultCVPath, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"meta":{"name":"Mathis Thomsen","title":{"de":"Designer","en":"Designer"}},"summary":"Hi"}`))
	})
	mux.HandleFunc(DefaultPortfolioPath, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		_, _ = w.Write([]byte(`{"projects":[{"slug":"a","title":"A","year":2020}]}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestStoreLoads(t *testing.T) {
	t.Parallel()

	var hits int32
	srv := newServer(t, &hits)
	s := NewStore(srv.URL + "/")

	cv, err := s.LoadCV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Mathis Thomsen", cv.Meta.Name)
	assert.Equal(t, "Hi", cv.Summary.Plain)

	p, err := s.LoadPortfolio(context.Background())
	require.NoError(t, err)
	require.Len(t, p.Projects, 1)
	assert.Equal(t, "2020", p.Projects[0].Year.String())

	assert.EqualValues(t, 2, atomic.LoadInt32(&hits))
}

func TestStoreNon2xx(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	_, err := NewStore(srv.URL).LoadCV(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStatus))
	assert.Contains(t, err.Error(), "404")
}

func TestStoreMalformedJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"projects":`))
	}))
	t.Cleanup(srv.Close)

	_, err := NewStore(srv.URL).LoadPortfolio(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrStatus))
}
