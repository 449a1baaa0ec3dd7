// Package metrics предоставляет Prometheus-метрики отправки событий,
// реализуя интерфейс eventsv2.Metrics.
package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// Config представляет конфигурацию метрик.
type Config struct {
	Enabled     bool   `mapstructure:"enabled"`
	Path        string `mapstructure:"path"`
	Port        int    `mapstructure:"port"`
	ServiceName string `mapstructure:"service_name"`
}

// Metrics представляет собой менеджер метрик. Выключенная конфигурация даёт
// инертный экземпляр: методы безопасны, но ничего не записывают.
type Metrics struct {
	config Config
	server *http.Server

	eventsSentTotal *prometheus.CounterVec
	sendDuration    *prometheus.HistogramVec
}

// New создает новый экземпляр менеджера метрик и, если задан порт,
// запускает HTTP-сервер с promhttp-обработчиком.
func New(cfg Config) (*Metrics, error) {
	if !cfg.Enabled {
		return &Metrics{config: cfg}, nil
	}

	m := &Metrics{
		config: cfg,
	}

	m.eventsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_pagerduty_events_sent_total", cfg.ServiceName),
			Help: "Total number of PagerDuty events sent, by action and outcome",
		},
		[]string{"action", "outcome"},
	)

	m.sendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    fmt.Sprintf("%s_pagerduty_event_send_duration_seconds", cfg.ServiceName),
			Help:    "PagerDuty event send duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"action"},
	)

	if cfg.Port > 0 {
		// Запускаем HTTP-сервер для метрик
		mux := http.NewServeMux()
		mux.Handle(cfg.Path, promhttp.Handler())

		m.server = &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Port),
			Handler: mux,
		}

		go func() {
			log.Info().Msgf("Starting metrics server on %s", m.server.Addr)
			if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error().Err(err).Msg("Metrics server stopped")
			}
		}()
	}

	return m, nil
}

// Stop останавливает HTTP-сервер метрик.
func (m *Metrics) Stop() error {
	if !m.config.Enabled || m.server == nil {
		return nil
	}
	return m.server.Close()
}

// IncEventsSent инкрементирует счётчик отправленных событий.
func (m *Metrics) IncEventsSent(action string, outcome string) {
	if m.eventsSentTotal == nil {
		return
	}
	m.eventsSentTotal.WithLabelValues(action, outcome).Inc()
}

// RecordSendTime записывает длительность отправки события.
func (m *Metrics) RecordSendTime(action string, duration time.Duration) {
	if m.sendDuration == nil {
		return
	}
	m.sendDuration.WithLabelValues(action).Observe(duration.Seconds())
}
