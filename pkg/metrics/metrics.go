package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const COMMAND_DIMENSION = "command"

var CommandsHandled = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "hotsbot_commands_total",
		Help: "Total number of chat commands handled",
	},
	[]string{COMMAND_DIMENSION, "status"}, // status: "success", "error"
)

var CommandDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "hotsbot_command_duration_seconds",
		Help:    "Time taken to handle a chat command",
		Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	},
	[]string{COMMAND_DIMENSION},
)

var ScrapeRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "hotsbot_scrape_requests_total",
		Help: "Total number of page fetches, by page and HTTP status",
	},
	[]string{"page", "status"}, // status: HTTP code or "error"
)

// Register registers all bot metrics with the default Prometheus registry.
func Register() {
	prometheus.MustRegister(CommandsHandled)
	prometheus.MustRegister(CommandDuration)
	prometheus.MustRegister(ScrapeRequests)
}

// ObserveCommand records one handled command.
func ObserveCommand(command string, started time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	CommandsHandled.WithLabelValues(command, status).Inc()
	CommandDuration.WithLabelValues(command).Observe(time.Since(started).Seconds())
}

type Logger interface {
	Error(format string, v ...interface{})
	Info(format string, v ...interface{})
}

// Server exposes /metrics on addr.
type Server struct {
	srv    *http.Server
	logger Logger
}

func NewServer(addr string, logger Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &Server{
		srv:    &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second},
		logger: logger,
	}
}

func (s *Server) Init() error {
	return nil
}

func (s *Server) Run(ctx context.Context) {
	s.logger.Info("metrics server listening", "addr", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("metrics server stopped", "error", err)
	}
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	s.srv.Shutdown(ctx)
}
