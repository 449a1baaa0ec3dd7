package eventsv2

import (
	"time"
)

// Возможные значения outcome в метриках отправки.
const (
	OutcomeAccepted           = "accepted"
	OutcomeHTTPError          = "http_error"
	OutcomeNotAccepted        = "not_accepted"
	OutcomeTransportError     = "transport_error"
	OutcomeSerializationError = "serialization_error"
)

// Metrics определяет интерфейс для сбора метрик отправки событий.
type Metrics interface {
	// IncEventsSent инкрементирует счётчик отправленных событий.
	// action: change, trigger, acknowledge, resolve; outcome: см. Outcome*.
	IncEventsSent(action string, outcome string)

	// RecordSendTime записывает длительность полного цикла отправки.
	RecordSendTime(action string, duration time.Duration)
}

// NoOpMetrics реализация метрик, которая ничего не делает (для тестов/отключения).
type NoOpMetrics struct{}

func (m *NoOpMetrics) IncEventsSent(action string, outcome string)          {}
func (m *NoOpMetrics) RecordSendTime(action string, duration time.Duration) {}
