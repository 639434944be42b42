package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cv-folio/internal/domain"
	"cv-folio/internal/i18n"
)

type fakeRenderer struct {
	mu   sync.Mutex
	pdf  []byte
	err  error
	reqs []CaptureRequest
}

func (f *fakeRenderer) CaptureCV(_ context.Context, req CaptureRequest) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)
	return f.pdf, f.err
}

type fakeExportsRepo struct {
	mu     sync.Mutex
	jobs   []domain.ExportJob
	err    error
	limits []int
}

// Recent returns the saved jobs newest first.
func (f *fakeExportsRepo) Recent(_ context.Context, n int) ([]domain.ExportJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.limits = append(f.limits, n)
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.ExportJob
	for i := len(f.jobs) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, f.jobs[i])
	}
	return out, nil
}

type saveOnlyRepo struct{}

func (saveOnlyRepo) Save(context.Context, *domain.ExportJob) error { return nil }

func (f *fakeExportsRepo) Save(_ context.Context, j *domain.ExportJob) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs = append(f.jobs, *j)
	return f.err
}

var samplePDF = []byte("%PDF-1.7\n%fake\n")

func newTestExporter(r Renderer, repo ExportsRepo) *ExportService {
	s := NewExportService(r, repo, "http://127.0.0.1:8080/", "cv.html", zap.NewNop())
	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(250 * time.Millisecond)
		return clock
	}
	return s
}

func TestExportFilename(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "CV_Mathis_Thomsen_DE.pdf", ExportFilename(i18n.DE))
	assert.Equal(t, "CV_Mathis_Thomsen_EN.pdf", ExportFilename(i18n.EN))
}

func TestExport(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw      string
		lang     i18n.Lang
		filename string
	}{
		{raw: "en", lang: i18n.EN, filename: "CV_Mathis_Thomsen_EN.pdf"},
		{raw: "DE", lang: i18n.DE, filename: "CV_Mathis_Thomsen_DE.pdf"},
		{raw: "xx", lang: i18n.DE, filename: "CV_Mathis_Thomsen_DE.pdf"},
		{raw: "", lang: i18n.DE, filename: "CV_Mathis_Thomsen_DE.pdf"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.raw, func(t *testing.T) {
			t.Parallel()
			r := &fakeRenderer{pdf: samplePDF}
			repo := &fakeExportsRepo{}
			res, err := newTestExporter(r, repo).Export(context.Background(), tc.raw)
			require.NoError(t, err)

			assert.Equal(t, tc.lang, res.Lang)
			assert.Equal(t, tc.filename, res.Filename)
			assert.Equal(t, samplePDF, res.PDF)

			require.Len(t, r.reqs, 1)
			assert.Equal(t, CaptureRequest{
				URL:           "http://127.0.0.1:8080/cv.html?lang=" + string(tc.lang),
				Lang:          tc.lang,
				StorageKey:    "mt.lang",
				ReadySelector: "#cv-name",
			}, r.reqs[0])

			require.Len(t, repo.jobs, 1)
			job := repo.jobs[0]
			assert.Equal(t, domain.ExportSucceeded, job.Status)
			assert.Equal(t, string(tc.lang), job.Language)
			assert.Equal(t, tc.filename, job.Filename)
			assert.Equal(t, len(samplePDF), job.Bytes)
			assert.Equal(t, int64(250), job.DurationMS)
			assert.Empty(t, job.Error)
		})
	}
}

func TestExportFailures(t *testing.T) {
	t.Parallel()

	t.Run("browser unavailable", func(t *testing.T) {
		t.Parallel()
		repo := &fakeExportsRepo{}
		r := &fakeRenderer{err: fmt.Errorf("launch: %w", ErrBrowserUnavailable)}

		res, err := newTestExporter(r, repo).Export(context.Background(), "en")
		assert.Nil(t, res)
		require.ErrorIs(t, err, ErrBrowserUnavailable)
		assert.Contains(t, err.Error(), "export cv (en)")

		require.Len(t, repo.jobs, 1)
		assert.Equal(t, domain.ExportFailed, repo.jobs[0].Status)
		assert.NotEmpty(t, repo.jobs[0].Error)
		assert.Zero(t, repo.jobs[0].Bytes)
	})

	t.Run("not a pdf", func(t *testing.T) {
		t.Parallel()
		r := &fakeRenderer{pdf: []byte("<html>oops</html>")}
		_, err := newTestExporter(r, nil).Export(context.Background(), "de")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrBrowserUnavailable)
		assert.Contains(t, err.Error(), "without a PDF signature")
	})

	t.Run("history errors are ignored", func(t *testing.T) {
		t.Parallel()
		repo := &fakeExportsRepo{err: errors.New("disk full")}
		res, err := newTestExporter(&fakeRenderer{pdf: samplePDF}, repo).Export(context.Background(), "en")
		require.NoError(t, err)
		assert.Equal(t, "CV_Mathis_Thomsen_EN.pdf", res.Filename)
		assert.Len(t, repo.jobs, 1)
	})
}

func TestExportRecordsAfterCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	r := &fakeRenderer{err: context.Canceled}
	cancel()

	repo := &fakeExportsRepo{}
	_, err := newTestExporter(r, repo).Export(ctx, "en")
	require.ErrorIs(t, err, context.Canceled)
	assert.Len(t, repo.jobs, 1, "the failed attempt is still recorded")
}

func TestExportHistory(t *testing.T) {
	t.Parallel()

	repo := &fakeExportsRepo{}
	s := newTestExporter(&fakeRenderer{pdf: samplePDF}, repo)
	for _, lang := range []string{"de", "en", "de"} {
		_, err := s.Export(context.Background(), lang)
		require.NoError(t, err)
	}

	jobs, err := s.History(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "de", jobs[0].Language)
	assert.Equal(t, "en", jobs[1].Language)

	_, err = s.History(context.Background(), 0)
	require.NoError(t, err)
	_, err = s.History(context.Background(), 5000)
	require.NoError(t, err)
	assert.Equal(t, []int{2, DefaultHistory, MaxHistory}, repo.limits)
}

func TestExportHistoryWithoutBackend(t *testing.T) {
	t.Parallel()

	for name, repo := range map[string]ExportsRepo{
		"nil":       nil,
		"save only": saveOnlyRepo{},
		"empty":     &fakeExportsRepo{},
	} {
		jobs, err := newTestExporter(&fakeRenderer{}, repo).History(context.Background(), 10)
		require.NoError(t, err, name)
		assert.NotNil(t, jobs, name)
		assert.Empty(t, jobs, name)
	}
}

func TestExportHistoryError(t *testing.T) {
	t.Parallel()

	repo := &fakeExportsRepo{err: errors.New("database is locked")}
	_, err := newTestExporter(&fakeRenderer{}, repo).History(context.Background(), 10)
	require.Error(t, err)
	assert.Equal(t, "export history: database is locked", err.Error())
}
