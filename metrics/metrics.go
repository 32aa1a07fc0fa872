// Package metrics exposes game counters in Prometheus format.
package metrics

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"arcade-snake/game/types"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns its own registry so several games never share collectors
type Metrics struct {
	registry  *prometheus.Registry
	ticks     prometheus.Counter
	foodEaten prometheus.Counter
	resets    *prometheus.CounterVec
	length    prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "snake_ticks_total",
			Help: "Total number of simulated ticks",
		}),
		foodEaten: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "snake_food_eaten_total",
			Help: "Total number of food items eaten",
		}),
		resets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "snake_resets_total",
			Help: "Total number of snake resets by collision cause",
		}, []string{"cause"}),
		length: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "snake_length",
			Help: "Current snake length",
		}),
	}
	m.registry.MustRegister(m.ticks, m.foodEaten, m.resets, m.length)
	return m
}

// OnTick records a tick report
func (m *Metrics) OnTick(r types.TickReport) {
	m.ticks.Inc()
	if r.Ate {
		m.foodEaten.Inc()
	}
	if r.Collision != types.NoCollision {
		m.resets.WithLabelValues(r.Collision.String()).Inc()
		m.length.Set(1)
		return
	}
	m.length.Set(float64(r.Length))
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ListenAndServe serves /metrics on addr until ctx is done
func (m *Metrics) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("metrics endpoint listening on %s/metrics", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
