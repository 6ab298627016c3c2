package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"valuecheck/adapters/excel"
	"valuecheck/internal"
	"valuecheck/internal/config"
	"valuecheck/internal/storage"
)

// App is the HTTP application: one stateless validation pipeline per
// request, no shared mutable state across requests.
type App struct {
	router    *chi.Mux
	log       *internal.Logger
	store     *storage.Local
	writer    *excel.ReportWriter
	maxUpload int64
}

// NewApp wires the application from configuration.
func NewApp(cfg *config.Config) *App {
	reportCfg := excel.DefaultReportConfig()
	reportCfg.SheetName = cfg.Report.SheetName

	app := &App{
		router:    chi.NewRouter(),
		log:       internal.NewDefaultLogger(),
		store:     storage.NewLocal(storage.Config{BaseDir: cfg.Storage.UploadDir}),
		writer:    excel.NewReportWriter(reportCfg),
		maxUpload: int64(cfg.Storage.MaxUploadMB) * 1024 * 1024,
	}

	app.setupMiddleware()
	app.setupRoutes()
	return app
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/health", a.handleHealth)

	a.router.Post("/api/validations/upload", a.handleUpload)
	a.router.Post("/api/validations/preview", a.handlePreview)
}

// Handler exposes the router for an http.Server or test harness.
func (a *App) Handler() http.Handler {
	return a.router
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
