package mq

import (
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/admesh/txflow/internal/lifecycle/store"
)

const (
	StatusTopic = "tx.status"
	AlertTopic  = "tx.alert"
)

const (
	AlertHandlerFailed      = "handler_failed"
	AlertAttemptsExhausted  = "attempts_exhausted"
	AlertStatusUpdateFailed = "status_update_failed"
)

var ErrFailedToPublish = errors.New("failed to publish message")

// StatusEvent is published on every durable status transition so dashboards
// can follow transactions without polling the store.
type StatusEvent struct {
	TransactionID string       `json:"transaction_id"`
	Kind          store.Kind   `json:"kind"`
	Status        store.Status `json:"status"`
	LedgerHandle  string       `json:"ledger_handle,omitempty"`
	LastError     string       `json:"last_error,omitempty"`
	Attempt       int          `json:"attempt"`
	Timestamp     time.Time    `json:"timestamp"`
}

// AlertEvent surfaces conditions that need operator attention: a domain
// handler failing after the ledger already confirmed, or a transaction
// exhausting its attempt limit.
type AlertEvent struct {
	TransactionID string     `json:"transaction_id"`
	Kind          store.Kind `json:"kind"`
	Reason        string     `json:"reason"`
	Detail        string     `json:"detail"`
	Timestamp     time.Time  `json:"timestamp"`
}

type NatsConn interface {
	Publish(subj string, data []byte) error
	Drain() error
	Close()
}

type Publisher struct {
	nc     NatsConn
	logger *slog.Logger
}

func NewPublisher(nc NatsConn, logger *slog.Logger) *Publisher {
	return &Publisher{
		nc:     nc,
		logger: logger.With(slog.String("module", "mq")),
	}
}

func (p *Publisher) PublishStatus(event *StatusEvent) error {
	return p.publish(StatusTopic, event)
}

func (p *Publisher) PublishAlert(event *AlertEvent) error {
	return p.publish(AlertTopic, event)
}

func (p *Publisher) publish(topic string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Join(ErrFailedToPublish, err)
	}

	err = p.nc.Publish(topic, data)
	if err != nil {
		return errors.Join(ErrFailedToPublish, err)
	}

	return nil
}

func (p *Publisher) Shutdown() {
	if err := p.nc.Drain(); err != nil {
		p.logger.Error("failed to drain nats connection", slog.String("err", err.Error()))
	}

	p.nc.Close()
}
