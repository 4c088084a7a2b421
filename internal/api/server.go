// Package api реализует HTTP API калькулятора сложного процента.
package api

import (
	"net/http"

	"github.com/cloud-ru/firefly-go/internal/logging"
	"github.com/cloud-ru/firefly-go/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server HTTP сервер с зарегистрированными маршрутами API
type Server struct {
	http.Server
	svc    *service.Service
	logger *logging.Logger
}

// NewServer настраивает маршруты и middleware и возвращает готовый к запуску сервер
func NewServer(svc *service.Service, logger *logging.Logger) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	cfg := svc.Config()

	s := &Server{
		Server: http.Server{
			Addr:         cfg.Addr(),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		svc:    svc,
		logger: logger.WithComponent(logging.ComponentHTTP),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("POST /api/calculate", s.handleCalculate)
	mux.HandleFunc("POST /api/projection", s.handleProjection)
	mux.HandleFunc("POST /api/compare", s.handleCompare)
	mux.Handle("GET /metrics", promhttp.Handler())

	s.Handler = s.withRequestID(s.withLogging(s.withCORS(cfg.CORSAllowOrigin, mux)))
	return s
}
