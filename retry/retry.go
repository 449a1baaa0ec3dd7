// Package retry provides an opt-in retry decorator around the eventsv2
// client. The client itself never retries: every Event/EventContext call is a
// single best-effort attempt. Callers that want the retry policy the service
// documents for 429/5xx responses wrap the client in a Retrier.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zynerotech/pagerduty/eventsv2"
)

// Policy определяет политику повторных попыток.
type Policy struct {
	MaxRetries    int           `mapstructure:"max_retries"`
	BaseDelay     time.Duration `mapstructure:"base_delay"`
	MaxDelay      time.Duration `mapstructure:"max_delay"`
	BackoffFactor float64       `mapstructure:"backoff_factor"`
	Jitter        bool          `mapstructure:"jitter"`
}

// DefaultPolicy возвращает политику retry по умолчанию.
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries:    3,
		BaseDelay:     time.Second,
		MaxDelay:      30 * time.Second,
		BackoffFactor: 2.0,
		Jitter:        true,
	}
}

// Backoff returns the delay before the given attempt (0-based), applying the
// exponential factor, the MaxDelay cap and, if enabled, ±25% jitter.
func (p Policy) Backoff(attempt int) time.Duration {
	d := float64(p.BaseDelay)
	for i := 0; i < attempt; i++ {
		d *= p.BackoffFactor
	}
	if limit := float64(p.MaxDelay); p.MaxDelay > 0 && d > limit {
		d = limit
	}
	if p.Jitter {
		d += d * 0.25 * (rand.Float64()*2 - 1)
	}
	if d < 0 {
		d = 0
	}
	return time.Duration(d)
}

// EventSender is the slice of the eventsv2 client a Retrier decorates.
type EventSender interface {
	EventContext(ctx context.Context, ev eventsv2.Event) error
}

// Retrier re-invokes an EventSender according to a Policy. Only errors for
// which Retryable reports true are retried; the last error is returned once
// attempts are exhausted.
type Retrier struct {
	sender EventSender
	policy Policy
}

// New creates a Retrier around sender.
func New(sender EventSender, policy Policy) *Retrier {
	return &Retrier{
		sender: sender,
		policy: policy,
	}
}

// EventContext sends the event, retrying per the policy. Between attempts it
// waits for the backoff delay or for ctx cancellation, whichever comes first.
func (r *Retrier) EventContext(ctx context.Context, ev eventsv2.Event) error {
	var err error
	for attempt := 0; attempt <= r.policy.MaxRetries; attempt++ {
		err = r.sender.EventContext(ctx, ev)
		if err == nil {
			if attempt > 0 {
				log.Info().
					Int("retry_count", attempt).
					Msg("Event sent successfully after retry")
			}
			return nil
		}

		if !Retryable(err) {
			return err
		}

		if attempt < r.policy.MaxRetries {
			backoff := r.policy.Backoff(attempt)
			log.Warn().
				Err(err).
				Int("attempt", attempt+1).
				Int("max_retries", r.policy.MaxRetries).
				Dur("backoff", backoff).
				Msg("Retrying event send")

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
				// Continue retrying
			}
		}
	}
	return err
}

// Event sends the event with the blocking-call semantics of the wrapped
// client applied to every attempt.
func (r *Retrier) Event(ev eventsv2.Event) error {
	return r.EventContext(context.Background(), ev)
}

// Retryable reports whether an eventsv2 error is worth retrying: transport
// failures and 429/5xx responses are; serialization failures, other 4xx and
// non-202 oddball statuses are not.
func Retryable(err error) bool {
	var transportErr *eventsv2.TransportError
	if errors.As(err, &transportErr) {
		return true
	}

	var httpErr *eventsv2.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == http.StatusTooManyRequests ||
			httpErr.StatusCode >= 500
	}

	return false
}
