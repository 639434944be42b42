package infrastructure

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-folio/internal/i18n"
	"cv-folio/internal/usecase"
)

func TestStorageSeed(t *testing.T) {
	t.Parallel()

	s, err := storageSeed("mt.lang", "en")
	require.NoError(t, err)
	assert.Equal(t, `try { window.localStorage.setItem("mt.lang", "en"); } catch (e) {}`, s)

	s, err = storageSeed(`k"ey`, "</script>")
	require.NoError(t, err)
	assert.Contains(t, s, `"k\"ey"`)
	assert.NotContains(t, s, "</script>")
}

func TestNewChromedpRendererDefaults(t *testing.T) {
	t.Parallel()

	r := NewChromedpRenderer("", 0, 0)
	assert.Equal(t, 30*time.Second, r.NavTimeout)
	assert.Equal(t, 15*time.Second, r.ReadyTimeout)

	r = NewChromedpRenderer("chromium", time.Second, 2*time.Second)
	assert.Equal(t, time.Second, r.NavTimeout)
	assert.Equal(t, 2*time.Second, r.ReadyTimeout)
}

func TestCaptureWithoutBrowser(t *testing.T) {
	t.Parallel()

	r := NewChromedpRenderer(filepath.Join(t.TempDir(), "no-such-chrome"), time.Second, time.Second)
	assert.False(t, r.Available())

	_, err := r.CaptureCV(context.Background(), usecase.CaptureRequest{
		URL:           "http://127.0.0.1:1/cv.html?lang=en",
		Lang:          i18n.EN,
		StorageKey:    i18n.StorageKey,
		ReadySelector: "#cv-name",
	})
	require.ErrorIs(t, err, usecase.ErrBrowserUnavailable)
}

func TestIsPostgresDSN(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"postgres://u:p@localhost/db":  true,
		"postgresql://localhost/db":    true,
		"sqlite:///var/lib/exports.db": false,
		"file:exports.db?cache=shared": false,
		"":                             false,
	}
	for dsn, want := range cases {
		assert.Equal(t, want, IsPostgresDSN(dsn), dsn)
	}
}

func TestOpenSQLite(t *testing.T) {
	t.Parallel()

	db, err := OpenSQLite(context.Background(), "sqlite://"+filepath.Join(t.TempDir(), "exports.db"))
	require.NoError(t, err)
	defer db.Close()

	var one int
	require.NoError(t, db.QueryRow("SELECT 1").Scan(&one))
	assert.Equal(t, 1, one)
}
