// Package metrics implementa las métricas de la aplicación sobre Prometheus.
// Cada Registry es independiente para poder instanciarlo en tests sin colisiones.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/calculadora-promedio/internal/application/ports"
)

var _ ports.Metrics = (*Registry)(nil)

// Config nombres de las métricas.
type Config struct {
	Namespace string
	Subsystem string
}

// DefaultConfig devuelve la configuración por defecto.
func DefaultConfig() Config {
	return Config{Namespace: "calc", Subsystem: "api"}
}

// Registry agrupa los colectores de la aplicación.
type Registry struct {
	registry *prometheus.Registry

	calculationsPreviewed prometheus.Counter
	calculationsSaved     prometheus.Counter
	inputEdits            *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec

	liveSessions prometheus.Gauge
	liveMessages *prometheus.CounterVec
}

// New crea el registro con los colectores de Go y de proceso incluidos.
func New(cfg Config) *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Registry{
		registry: reg,

		calculationsPreviewed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "calculations_previewed_total",
			Help:      "Cálculos de promedio sin persistir",
		}),
		calculationsSaved: factory.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "calculations_saved_total",
			Help:      "Cálculos guardados",
		}),
		inputEdits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "input_edits_total",
			Help:      "Ediciones de campos numéricos por modo y resultado",
		}, []string{"mode", "result"}),

		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "http_requests_total",
			Help:      "Peticiones HTTP por método, ruta y código",
		}, []string{"method", "route", "status"}),
		httpLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "http_request_duration_seconds",
			Help:      "Latencia de peticiones HTTP (segundos)",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		}, []string{"method", "route"}),

		liveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: cfg.Namespace,
			Subsystem: "live",
			Name:      "sessions",
			Help:      "Sesiones WebSocket abiertas",
		}),
		liveMessages: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: "live",
			Name:      "messages_total",
			Help:      "Mensajes recibidos por tipo",
		}, []string{"type"}),
	}
}

// CalculationPreviewed incrementa el contador de vistas previas.
func (r *Registry) CalculationPreviewed() { r.calculationsPreviewed.Inc() }

// CalculationSaved incrementa el contador de cálculos guardados.
func (r *Registry) CalculationSaved() { r.calculationsSaved.Inc() }

// InputFiltered cuenta una edición aceptada o rechazada (en sanitize: texto sin cambios o reescrito).
func (r *Registry) InputFiltered(mode string, accepted bool) {
	result := "accepted"
	if !accepted {
		result = "rejected"
	}
	r.inputEdits.WithLabelValues(mode, result).Inc()
}

// ObserveHTTP registra una petición atendida.
func (r *Registry) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// SessionOpened / SessionClosed mantienen el gauge de sesiones en vivo.
func (r *Registry) SessionOpened() { r.liveSessions.Inc() }
func (r *Registry) SessionClosed() { r.liveSessions.Dec() }

// MessageHandled cuenta un mensaje de sesión en vivo.
func (r *Registry) MessageHandled(kind string) { r.liveMessages.WithLabelValues(kind).Inc() }

// Handler expone el registro en formato Prometheus.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
