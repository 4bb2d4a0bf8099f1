// Package httpapi serves the attribution engine over HTTP.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/huangsam/attribution/internal/contract"
	"github.com/huangsam/attribution/internal/logger"
	"github.com/sirupsen/logrus"
)

// shutdownTimeout bounds how long in-flight requests may run after a stop signal.
const shutdownTimeout = 10 * time.Second

// Server routes API requests to the engine and the journey store.
type Server struct {
	cfg     *contract.Config
	mgr     contract.StoreManager
	log     *logrus.Entry
	metrics *Metrics
}

// New builds a server over the store manager. cfg supplies defaults such as
// the sample journey count and the allowed CORS origins.
func New(cfg *contract.Config, mgr contract.StoreManager, log *logger.Log) *Server {
	return &Server{
		cfg:     cfg,
		mgr:     mgr,
		log:     log.WithComponent("http"),
		metrics: NewMetrics(),
	}
}

// Routes returns the router with every API route mounted.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(accessLog(s.log, s.metrics))
	r.Use(middleware.Recoverer)
	r.Use(cors(s.cfg.CORSOrigins))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/", s.handleRoot)
		r.Post("/generate-data", s.handleGenerateData)
		r.Get("/journeys", s.handleListJourneys)
		r.Get("/journeys/{journeyID}", s.handleGetJourney)
		r.Get("/attribution/compare/all", s.handleCompareAll)
		r.Get("/attribution/{model}", s.handleAttribution)
		r.Get("/stats", s.handleStats)
		r.Get("/advanced-metrics", s.handleAdvancedMetrics)
		r.Get("/revenue-trends", s.handleRevenueTrends)
		r.Get("/channel-synergy", s.handleChannelSynergy)
		r.Get("/funnel-analysis", s.handleFunnel)
		r.Get("/top-performers", s.handleTopPerformers)
		r.Get("/attribution-variance", s.handleVariance)
	})
	return r
}

// Run serves on cfg.Addr until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.log.WithField("addr", s.cfg.Addr).Info("listening")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
