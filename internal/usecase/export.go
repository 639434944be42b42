package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"cv-folio/internal/domain"
	"cv-folio/internal/i18n"
)

// ErrBrowserUnavailable is returned when no headless browser can be started.
var ErrBrowserUnavailable = errors.New("headless browser unavailable")

// ExportOwner is the name used in exported file names.
const ExportOwner = "Mathis_Thomsen"

// CaptureRequest tells the renderer which page to print and how to prime it.
type CaptureRequest struct {
	URL           string
	Lang          i18n.Lang
	StorageKey    string
	ReadySelector string
}

type Renderer interface {
	CaptureCV(ctx context.Context, req CaptureRequest) ([]byte, error)
}

type ExportsRepo interface {
	Save(ctx context.Context, j *domain.ExportJob) error
}

// ExportHistory is implemented by repositories that can list past exports.
type ExportHistory interface {
	Recent(ctx context.Context, n int) ([]domain.ExportJob, error)
}

// History page sizes.
const (
	DefaultHistory = 20
	MaxHistory     = 100
)

type ExportResult struct {
	Lang     i18n.Lang
	Filename string
	PDF      []byte
}

// ExportFilename is the attachment name for lang.
func ExportFilename(lang i18n.Lang) string {
	return "CV_" + ExportOwner + "_" + strings.ToUpper(string(lang)) + ".pdf"
}

// ExportService prints the live CV page into a PDF.
type ExportService struct {
	renderer Renderer
	repo     ExportsRepo
	baseURL  string
	cvPath   string
	log      *zap.Logger
	now      func() time.Time
}

func NewExportService(r Renderer, repo ExportsRepo, baseURL, cvPath string, log *zap.Logger) *ExportService {
	if log == nil {
		log = zap.NewNop()
	}
	if cvPath == "" {
		cvPath = "/cv.html"
	}
	return &ExportService{
		renderer: r,
		repo:     repo,
		baseURL:  strings.TrimRight(baseURL, "/"),
		cvPath:   "/" + strings.TrimLeft(cvPath, "/"),
		log:      log,
		now:      time.Now,
	}
}

// Export renders the CV in rawLang. Unsupported languages fall back to the
// default. There are no retries; a failure is returned as is.
func (s *ExportService) Export(ctx context.Context, rawLang string) (*ExportResult, error) {
	lang := i18n.OrDefault(rawLang)
	start := s.now()
	job := domain.NewExportJob(string(lang), start)
	job.Filename = ExportFilename(lang)

	pdf, err := s.renderer.CaptureCV(ctx, CaptureRequest{
		URL:           s.baseURL + s.cvPath + "?lang=" + string(lang),
		Lang:          lang,
		StorageKey:    i18n.StorageKey,
		ReadySelector: "#" + HeaderID,
	})
	if err == nil && !bytes.HasPrefix(pdf, []byte("%PDF")) {
		err = fmt.Errorf("renderer returned %d bytes without a PDF signature", len(pdf))
	}
	job.DurationMS = s.now().Sub(start).Milliseconds()

	if err != nil {
		job.Status = domain.ExportFailed
		job.Error = err.Error()
		s.record(ctx, job)
		s.log.Error("cv export failed", zap.String("lang", string(lang)), zap.Error(err))
		return nil, fmt.Errorf("export cv (%s): %w", lang, err)
	}

	job.Status = domain.ExportSucceeded
	job.Bytes = len(pdf)
	s.record(ctx, job)
	s.log.Info("cv exported",
		zap.String("lang", string(lang)),
		zap.Int("bytes", len(pdf)),
		zap.Int64("duration_ms", job.DurationMS),
	)
	return &ExportResult{Lang: lang, Filename: job.Filename, PDF: pdf}, nil
}

// record persists the job. History is best-effort and never fails an export.
func (s *ExportService) record(ctx context.Context, job *domain.ExportJob) {
	if s.repo == nil {
		return
	}
	if err := s.repo.Save(context.WithoutCancel(ctx), job); err != nil {
		s.log.Warn("save export job", zap.String("id", job.ID.String()), zap.Error(err))
	}
}

// History lists up to n recorded exports, newest first. n <= 0 means
// DefaultHistory; larger requests are capped at MaxHistory. Without a
// history backend the list is empty.
func (s *ExportService) History(ctx context.Context, n int) ([]domain.ExportJob, error) {
	h, ok := s.repo.(ExportHistory)
	if !ok {
		return []domain.ExportJob{}, nil
	}
	switch {
	case n <= 0:
		n = DefaultHistory
	case n > MaxHistory:
		n = MaxHistory
	}
	jobs, err := h.Recent(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("export history: %w", err)
	}
	if jobs == nil {
		jobs = []domain.ExportJob{}
	}
	return jobs, nil
}
