package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cv-folio/internal/adapter/content"
	httpadapter "cv-folio/internal/adapter/http"
	repo "cv-folio/internal/adapter/repository"
	"cv-folio/internal/config"
	"cv-folio/internal/infrastructure/migration"
	"cv-folio/internal/model"
	"cv-folio/internal/usecase"
	infra "cv-folio/pkg/infrastructure"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site and the PDF export endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := config.NewLogger(appConfig.LogLevel)
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		validateSite(appConfig.SiteDir, logger)

		exportsRepo, closeRepo := openExportsRepo(ctx, appConfig.ExportsDSN, logger)
		defer closeRepo()

		renderer := infra.NewChromedpRenderer(appConfig.ChromePath, appConfig.NavTimeout, appConfig.ReadyTimeout)
		if !renderer.Available() {
			logger.Warn("no chrome executable found; PDF export will answer 503")
		}
		exporter := usecase.NewExportService(renderer, exportsRepo, appConfig.BaseURL, appConfig.CVPath, logger)

		app := httpadapter.NewApp(httpadapter.NewHandler(exporter, logger), appConfig.SiteDir)

		if appConfig.Watch {
			watcher, err := watchContent(appConfig.SiteDir, logger)
			if err != nil {
				logger.Warn("content watch disabled", zap.Error(err))
			} else {
				defer watcher.Close()
			}
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("serving", zap.String("addr", appConfig.Addr()), zap.String("site", appConfig.SiteDir))
			errCh <- app.Listen(appConfig.Addr())
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}
		logger.Info("shutting down")
		return app.ShutdownWithTimeout(10 * time.Second)
	},
}

func init() {
	serveCmd.Flags().IntP("port", "p", 3000, "port to listen on")
	serveCmd.Flags().Bool("watch", false, "re-validate content documents when they change")
	rootCmd.AddCommand(serveCmd)
}

// openExportsRepo picks the export history backend from the DSN. An empty
// DSN or a failed connection disables history; serving goes on regardless.
func openExportsRepo(ctx context.Context, dsn string, logger *zap.Logger) (usecase.ExportsRepo, func()) {
	noop := func() {}
	if dsn == "" {
		return nil, noop
	}
	if infra.IsPostgresDSN(dsn) {
		pool, err := infra.NewExportsPool(ctx, dsn)
		if err != nil {
			logger.Warn("export history unavailable", zap.Error(err))
			return nil, noop
		}
		exec := func(ctx context.Context, q string) error {
			_, err := pool.Exec(ctx, q)
			return err
		}
		if err := migration.RunMigrations(ctx, migration.Postgres, exec); err != nil {
			logger.Warn("export history migrations failed", zap.Error(err))
		}
		return repo.NewExportsRepo(pool), pool.Close
	}

	db, err := infra.OpenSQLite(ctx, dsn)
	if err != nil {
		logger.Warn("export history unavailable", zap.Error(err))
		return nil, noop
	}
	exec := func(ctx context.Context, q string) error {
		_, err := db.ExecContext(ctx, q)
		return err
	}
	if err := migration.RunMigrations(ctx, migration.SQLite, exec); err != nil {
		logger.Warn("export history migrations failed", zap.Error(err))
	}
	return repo.NewSQLiteExportsRepo(db), func() { _ = db.Close() }
}

func contentPaths(siteDir string) (cv, portfolio string) {
	return filepath.Join(siteDir, filepath.FromSlash(content.DefaultCVPath)),
		filepath.Join(siteDir, filepath.FromSlash(content.DefaultPortfolioPath))
}

// validateSite checks both content documents. Problems are logged, never fatal.
func validateSite(siteDir string, logger *zap.Logger) {
	cvPath, portfolioPath := contentPaths(siteDir)
	check := func(path string, validate func([]byte) error) {
		doc, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("content document unreadable", zap.String("path", path), zap.Error(err))
			return
		}
		if err := validate(doc); err != nil {
			logger.Warn("content document invalid", zap.String("path", path), zap.Error(err))
			return
		}
		logger.Info("content document valid", zap.String("path", path))
	}
	check(cvPath, model.ValidateCV)
	check(portfolioPath, model.ValidatePortfolio)
}

func watchContent(siteDir string, logger *zap.Logger) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dataDir := filepath.Dir(filepath.Join(siteDir, filepath.FromSlash(content.DefaultCVPath)))
	if err := watcher.Add(dataDir); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		var timer *time.Timer
		debounce := 300 * time.Millisecond
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				logger.Debug("content changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounce, func() { validateSite(siteDir, logger) })
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("watcher error", zap.Error(err))
			}
		}
	}()
	logger.Info("watching content", zap.String("dir", dataDir))
	return watcher, nil
}
