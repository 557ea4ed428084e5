package http

import (
	"context"
	"html/template"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"ledgerview/internal/log"
	"ledgerview/internal/report"
	appweb "ledgerview/web"
)

const buildTimeout = 10 * time.Second

type Server struct {
	http.Server
	builder   *report.Builder
	templates *template.Template
	logger    *log.Logger

	// Coalesces concurrent report builds. Results are shared only between
	// callers in flight at the same time and never retained.
	builds singleflight.Group

	shutdownOnce sync.Once
}

// NewServer configures routes and templates, returning a ready-to-run http.Server.
func NewServer(addr string, builder *report.Builder, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	logger = logger.WithComponent(log.ComponentHTTP)

	mux := http.NewServeMux()
	s := &Server{
		Server: http.Server{
			Addr:              addr,
			Handler:           log.Middleware(logger)(withSecurityHeaders(mux)),
			ReadHeaderTimeout: 5 * time.Second,
		},
		builder: builder,
		logger:  logger,
	}

	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		logger.Warn("Failed parsing templates", log.FieldError, err)
	}
	s.templates = t

	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("GET /static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "public, max-age=3600")
			static.ServeHTTP(w, r)
		}))
	} else {
		logger.Warn("Failed to mount embedded static FS", log.FieldError, err)
	}

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /api/balance", s.handleBalance)
	mux.HandleFunc("GET /api/monthly", s.handleMonthly)
	mux.HandleFunc("GET /api/table", s.handleTable)
	mux.HandleFunc("GET /api/charts/balance", s.handleBalanceChart)
	mux.HandleFunc("GET /api/charts/history", s.handleHistoryChart)

	return s
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		err = s.Server.Shutdown(ctx)
	})
	return err
}

// report loads the ledger and derives a fresh report. Identical requests
// arriving while a build is running share its result.
func (s *Server) report(ctx context.Context) (report.Report, error) {
	ch := s.builds.DoChan("report", func() (any, error) {
		// Detached so one caller hanging up does not fail the others.
		bctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), buildTimeout)
		defer cancel()
		return s.builder.Build(bctx)
	})

	select {
	case <-ctx.Done():
		return report.Report{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return report.Report{}, res.Err
		}
		if res.Shared {
			log.FromContext(ctx).DebugContext(ctx, "Report build shared")
		}
		return res.Val.(report.Report), nil
	}
}
