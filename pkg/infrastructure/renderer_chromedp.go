package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"sync/atomic"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"cv-folio/internal/usecase"
)

// A4 in inches, 12mm margins.
const (
	paperWidth  = 8.27
	paperHeight = 11.69
	pageMargin  = 0.47
)

var execCandidates = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
	"headless-shell",
	"chrome",
}

// forceVisible finishes every entrance animation so the print shows final state.
const forceVisible = `(() => {
	document.querySelectorAll('.meter__fill[data-fill]').forEach(el => {
		el.style.transition = 'none';
		el.style.width = el.dataset.fill + '%';
	});
	document.querySelectorAll('[data-reveal]').forEach(el => el.classList.add('is-visible'));
	document.documentElement.classList.remove('lang-switching');
	return true;
})()`

type ChromedpRenderer struct {
	ExecPath     string
	NavTimeout   time.Duration
	ReadyTimeout time.Duration
}

// NewChromedpRenderer builds a renderer. An empty execPath is resolved from
// CHROME_PATH and then from well-known binary names on PATH.
func NewChromedpRenderer(execPath string, navTimeout, readyTimeout time.Duration) *ChromedpRenderer {
	if navTimeout <= 0 {
		navTimeout = 30 * time.Second
	}
	if readyTimeout <= 0 {
		readyTimeout = 15 * time.Second
	}
	return &ChromedpRenderer{ExecPath: execPath, NavTimeout: navTimeout, ReadyTimeout: readyTimeout}
}

func (r *ChromedpRenderer) resolveExecPath() (string, error) {
	if r.ExecPath != "" {
		return exec.LookPath(r.ExecPath)
	}
	if p := os.Getenv("CHROME_PATH"); p != "" {
		return exec.LookPath(p)
	}
	for _, c := range execCandidates {
		if p, err := exec.LookPath(c); err == nil {
			return p, nil
		}
	}
	return "", exec.ErrNotFound
}

// Available reports whether a browser executable can be found.
func (r *ChromedpRenderer) Available() bool {
	_, err := r.resolveExecPath()
	return err == nil
}

// CaptureCV opens req.URL in a fresh headless browser with the language
// preference pre-seeded, waits until the page has settled and prints it.
func (r *ChromedpRenderer) CaptureCV(ctx context.Context, req usecase.CaptureRequest) ([]byte, error) {
	execPath, err := r.resolveExecPath()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrBrowserUnavailable, err)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("force-prefers-reduced-motion", true),
		chromedp.ExecPath(execPath),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	// starts the browser
	if err := chromedp.Run(cctx); err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrBrowserUnavailable, err)
	}

	seed, err := storageSeed(req.StorageKey, string(req.Lang))
	if err != nil {
		return nil, err
	}

	var armed atomic.Bool
	idle := make(chan struct{}, 1)
	chromedp.ListenTarget(cctx, func(ev interface{}) {
		if e, ok := ev.(*page.EventLifecycleEvent); ok && e.Name == "networkIdle" && armed.Load() {
			select {
			case idle <- struct{}{}:
			default:
			}
		}
	})

	navCtx, cancelNav := context.WithTimeout(cctx, r.NavTimeout)
	defer cancelNav()
	err = chromedp.Run(navCtx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			if _, err := page.AddScriptToEvaluateOnNewDocument(seed).Do(ctx); err != nil {
				return err
			}
			return page.SetLifecycleEventsEnabled(true).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			armed.Store(true)
			return nil
		}),
		chromedp.Navigate(req.URL),
		chromedp.ActionFunc(func(ctx context.Context) error {
			select {
			case <-idle:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("navigate %s: %w", req.URL, err)
	}

	readyCtx, cancelReady := context.WithTimeout(cctx, r.ReadyTimeout)
	defer cancelReady()
	var fontsReady, forced bool
	err = chromedp.Run(readyCtx,
		chromedp.Evaluate(`document.fonts.ready.then(() => true)`, &fontsReady,
			func(p *runtime.EvaluateParams) *runtime.EvaluateParams { return p.WithAwaitPromise(true) }),
		// presence, not visibility: an empty header has no box
		chromedp.WaitReady(req.ReadySelector, chromedp.ByQuery),
		chromedp.Evaluate(forceVisible, &forced),
	)
	if err != nil {
		return nil, fmt.Errorf("wait for %s: %w", req.ReadySelector, err)
	}

	var pdfBuf []byte
	err = chromedp.Run(cctx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithMarginTop(pageMargin).
				WithMarginBottom(pageMargin).
				WithMarginLeft(pageMargin).
				WithMarginRight(pageMargin).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print to pdf: %w", err)
	}
	return pdfBuf, nil
}

// storageSeed returns a script that writes key=value to localStorage before
// any page script runs.
func storageSeed(key, value string) (string, error) {
	k, err := json.Marshal(key)
	if err != nil {
		return "", err
	}
	v, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`try { window.localStorage.setItem(%s, %s); } catch (e) {}`, k, v), nil
}
