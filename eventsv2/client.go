// Package eventsv2 реализует клиент PagerDuty Events API v2: отправку
// alert- и change-событий, которые сервис превращает в инциденты,
// подтверждения и резолюции.
package eventsv2

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	// Фиксированные endpoint'ы сервиса. Какое событие куда уходит —
	// неизменяемая таблица, не настраивается вызывающим кодом.
	alertEventsURL  = "https://events.pagerduty.com/v2/enqueue"
	changeEventsURL = "https://events.pagerduty.com/v2/change/enqueue"

	headerContentType     = "Content-Type"
	headerContentEncoding = "Content-Encoding"
	headerUserAgent       = "User-Agent"

	contentTypeJSON         = "application/json"
	contentEncodingIdentity = "identity"

	// Таймаут блокирующего вызова Event. EventContext таймаут не навязывает.
	defaultTimeout = 300 * time.Second
)

// Config представляет конфигурацию клиента.
type Config struct {
	// 32-символьный Integration Key интеграции на сервисе или в глобальном
	// ruleset. Подставляется в routing_key каждого конверта.
	RoutingKey string `mapstructure:"routing_key"`

	// Опциональный User-Agent исходящих запросов. Постоянен на всё время
	// жизни клиента; пустая строка — заголовок не отправляется.
	UserAgent string `mapstructure:"user_agent"`
}

// Validate проверяет конфигурацию клиента.
func (c *Config) Validate() error {
	if c.RoutingKey == "" {
		return errors.New("routing_key is required")
	}
	return nil
}

// Client отправляет события в PagerDuty Events API v2. После создания хранит
// только неизменяемую конфигурацию, поэтому безопасен для конкурентного
// использования без дополнительной синхронизации. Каждый вызов Event
// независим: упорядочивание trigger/acknowledge/resolve — ответственность
// вызывающего кода, на стороне сервиса его обеспечивает семантика dedup_key.
type Client struct {
	routingKey string
	userAgent  string
	httpClient *http.Client
	metrics    Metrics

	// Переопределяются в тестах; в остальном равны константам сервиса.
	alertURL  string
	changeURL string
}

// New создает нового клиента на основе предоставленной конфигурации.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		routingKey: cfg.RoutingKey,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{},
		metrics:    &NoOpMetrics{}, // По умолчанию no-op метрики
		alertURL:   alertEventsURL,
		changeURL:  changeEventsURL,
	}, nil
}

// SetMetrics устанавливает интерфейс метрик. Вызывается до первого
// использования клиента.
func (c *Client) SetMetrics(metrics Metrics) {
	c.metrics = metrics
}

// SetHTTPClient подменяет используемый http.Client (собственный TLS-конфиг,
// прокси и т.п.). Вызывается до первого использования клиента.
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// Event отправляет событие, блокируя вызывающий поток до ответа сервиса или
// истечения фиксированного таймаута в 300 секунд.
func (c *Client) Event(ev Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return c.EventContext(ctx, ev)
}

// EventContext отправляет событие, уважая переданный контекст. Внутреннего
// таймаута нет: отмена и дедлайны целиком делегированы вызывающему коду.
// Wire-байты идентичны байтам Event для того же события.
func (c *Client) EventContext(ctx context.Context, ev Event) error {
	// Указательные формы событий тоже реализуют Event; приводим их к
	// значениям, чтобы оба написания шли по одному пути.
	switch p := ev.(type) {
	case *Change:
		if p != nil {
			ev = *p
		}
	case *AlertTrigger:
		if p != nil {
			ev = *p
		}
	case *AlertAcknowledge:
		if p != nil {
			ev = *p
		}
	case *AlertResolve:
		if p != nil {
			ev = *p
		}
	}

	switch ev := ev.(type) {
	case Change:
		return c.post(ctx, c.changeURL, "change",
			newSendableChange(ev, c.routingKey))
	case AlertTrigger:
		return c.post(ctx, c.alertURL, "trigger",
			newSendableAlertTrigger(ev, c.routingKey))
	case AlertAcknowledge:
		return c.post(ctx, c.alertURL, "acknowledge",
			newSendableAlertFollowup(ev.DedupKey, ActionAcknowledge, c.routingKey))
	case AlertResolve:
		return c.post(ctx, c.alertURL, "resolve",
			newSendableAlertFollowup(ev.DedupKey, ActionResolve, c.routingKey))
	default:
		return fmt.Errorf("eventsv2: unsupported event type %T", ev)
	}
}

// post выполняет ровно один HTTP POST конверта и классифицирует исход.
func (c *Client) post(ctx context.Context, url, action string, envelope any) error {
	body, err := json.Marshal(envelope)
	if err != nil {
		c.metrics.IncEventsSent(action, OutcomeSerializationError)
		return &SerializationError{Err: err}
	}

	start := time.Now()
	defer func() {
		c.metrics.RecordSendTime(action, time.Since(start))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.metrics.IncEventsSent(action, OutcomeTransportError)
		return &TransportError{Err: err}
	}

	req.Header.Set(headerContentType, contentTypeJSON)
	req.Header.Set(headerContentEncoding, contentEncodingIdentity)
	// Пустое значение подавляет User-Agent по умолчанию из net/http:
	// без явной конфигурации заголовок не отправляется вовсе.
	req.Header.Set(headerUserAgent, c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.IncEventsSent(action, OutcomeTransportError)
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	// Тело успешного ответа игнорируется, но вычитывается для
	// переиспользования соединения.
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusAccepted:
		log.Debug().
			Str("action", action).
			Str("endpoint", url).
			Msg("Event accepted")
		c.metrics.IncEventsSent(action, OutcomeAccepted)
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 600:
		c.metrics.IncEventsSent(action, OutcomeHTTPError)
		return &HTTPError{StatusCode: resp.StatusCode}
	default:
		// Сервис документирует 202 как единственный код успеха; всё
		// остальное, включая 1xx/2xx/3xx, выделяется отдельно.
		c.metrics.IncEventsSent(action, OutcomeNotAccepted)
		return &NotAcceptedError{StatusCode: resp.StatusCode}
	}
}

// NewDedupKey генерирует случайный ключ дедупликации для связывания trigger
// с последующими acknowledge/resolve одного инцидента.
func NewDedupKey() string {
	return uuid.NewString()
}
