package lifecycle

import (
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/admesh/txflow/internal/cache"
	"github.com/admesh/txflow/internal/domain"
)

func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger.With(slog.String("service", "lifecycle"))
	}
}

func WithNow(nowFunc func() time.Time) Option {
	return func(m *Manager) {
		m.now = nowFunc
	}
}

func WithCacheStore(c cache.Store) Option {
	return func(m *Manager) {
		m.cacheStore = c
	}
}

func WithPublisher(p EventPublisher) Option {
	return func(m *Manager) {
		m.publisher = p
	}
}

func WithHandlers(handlers ...domain.Handler) Option {
	return func(m *Manager) {
		for _, h := range handlers {
			m.handlers[h.Kind()] = h
		}
	}
}

func WithHostname(hostname string) Option {
	return func(m *Manager) {
		m.hostname = hostname
	}
}

// WithRetryBase sets the base of the exponential backoff: the delay before
// retry n is base * 2^n.
func WithRetryBase(base time.Duration) Option {
	return func(m *Manager) {
		m.retryBase = base
	}
}

func WithSweepInterval(interval time.Duration) Option {
	return func(m *Manager) {
		m.sweepInterval = interval
	}
}

func WithReceiptTimeout(timeout time.Duration) Option {
	return func(m *Manager) {
		m.receiptTimeout = timeout
	}
}

func WithSubmitTimeout(timeout time.Duration) Option {
	return func(m *Manager) {
		m.submitTimeout = timeout
	}
}

func WithConfirmations(confirmations uint64) Option {
	return func(m *Manager) {
		m.confirmations = confirmations
	}
}

func WithStatusCacheTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		m.statusCacheTTL = ttl
	}
}

func WithTracing(attributes []attribute.KeyValue) Option {
	return func(m *Manager) {
		m.tracingEnabled = true
		m.tracingAttributes = attributes
	}
}
