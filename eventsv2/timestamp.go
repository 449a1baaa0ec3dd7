package eventsv2

import (
	"fmt"
	"time"
)

// Формат времени wire-контракта: RFC3339, UTC, фиксированные девять знаков
// дробной части секунды и завершающий Z вместо смещения таймзоны.
const timestampLayout = "2006-01-02T15:04:05.000000000"

// Timestamp — момент времени в wire-формате сервиса.
// Нулевое значение сериализуется как нулевое время UTC; для опциональных
// полей используется *Timestamp, чтобы отсутствующее значение целиком
// выпадало из JSON.
type Timestamp struct {
	time.Time
}

// NewTimestamp оборачивает t в Timestamp.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// Now возвращает текущий момент времени.
func Now() Timestamp {
	return Timestamp{Time: time.Now()}
}

// MarshalJSON сериализует момент времени в формате wire-контракта.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(timestampLayout) + `Z"`), nil
}

// UnmarshalJSON разбирает момент времени из RFC3339-строки.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("timestamp: not a JSON string: %s", s)
	}
	parsed, err := time.Parse(time.RFC3339Nano, s[1:len(s)-1])
	if err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	t.Time = parsed
	return nil
}
