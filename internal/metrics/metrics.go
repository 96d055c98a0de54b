package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "email_classifier"

// Metrics agrupa os coletores Prometheus do serviço
type Metrics struct {
	registry        *prometheus.Registry
	classifications *prometheus.CounterVec
	modelDuration   *prometheus.HistogramVec
}

// New cria um registry próprio com os coletores do serviço e do runtime Go
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classifications_total",
			Help:      "Tentativas de classificação por resultado e status gravado no histórico.",
		}, []string{"outcome", "status"}),
		modelDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "model_request_duration_seconds",
			Help:      "Duração das chamadas ao provedor do modelo.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		}, []string{"provider"}),
	}
	registry.MustRegister(m.classifications, m.modelDuration)

	return m
}

// ObserveClassification incrementa o contador de classificações
func (m *Metrics) ObserveClassification(outcome, status string) {
	if m == nil {
		return
	}
	m.classifications.WithLabelValues(outcome, status).Inc()
}

// ObserveModelRequest registra a duração de uma chamada ao modelo
func (m *Metrics) ObserveModelRequest(provider string, d time.Duration) {
	if m == nil {
		return
	}
	m.modelDuration.WithLabelValues(provider).Observe(d.Seconds())
}

// Registry expõe o registry para testes
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler expõe as métricas no formato Prometheus
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}
