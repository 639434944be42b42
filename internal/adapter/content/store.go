// Package content fetches the CV and portfolio documents. Each document is
// requested once per page; callers keep the decoded record for the page's
// lifetime.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cv-folio/internal/model"
)

const (
	DefaultCVPath        = "/data/cv.json"
	DefaultPortfolioPath = "/data/portfolio.json"
)

// ErrStatus is wrapped when the server answers with a non-2xx status.
var ErrStatus = errors.New("unexpected status")

type Store struct {
	BaseURL       string
	CVPath        string
	PortfolioPath string
	HTTP          *http.Client
}

// NewStore returns a store resolving document paths against baseURL.
func NewStore(baseURL string) *Store {
	return &Store{
		BaseURL:       strings.TrimRight(baseURL, "/"),
		CVPath:        DefaultCVPath,
		PortfolioPath: DefaultPortfolioPath,
		HTTP:          &http.Client{Timeout: 20 * time.Second},
	}
}

func (s *Store) LoadCV(ctx context.Context) (*model.CV, error) {
	var cv model.CV
	if err := s.getJSON(ctx, s.CVPath, &cv); err != nil {
		return nil, fmt.Errorf("load cv: %w", err)
	}
	return &cv, nil
}

func (s *Store) LoadPortfolio(ctx context.Context) (*model.Portfolio, error) {
	var p model.Portfolio
	if err := s.getJSON(ctx, s.PortfolioPath, &p); err != nil {
		return nil, fmt.Errorf("load portfolio: %w", err)
	}
	return &p, nil
}

func (s *Store) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %d for %s", ErrStatus, resp.StatusCode, path)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
