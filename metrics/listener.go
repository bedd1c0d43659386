package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pk910/beacon_go_reward_simulator/logger"
)

var log = logger.New("metrics")

// Server serves the collector's registry on /metrics.
type Server struct {
	srv *http.Server
}

// Listen starts serving in the background.
func Listen(cfg Config, c *Collector) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(c.Registry(), promhttp.HandlerOpts{}))

	s := &Server{
		srv: &http.Server{
			Addr:              cfg.Endpoint(),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}

	go func() {
		log.Log.WithField("endpoint", cfg.Endpoint()).Info("Metrics server starts")
		defer log.Log.Info("Metrics server is stopped")

		err := s.srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Log.WithError(err).Warn("Metrics server")
		}
	}()
	return s
}

func (s *Server) Close(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
