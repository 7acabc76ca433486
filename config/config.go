package config

import (
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

type TxFlowConfig struct {
	LogLevel     string              `json:"logLevel" mapstructure:"logLevel"`
	LogFormat    string              `json:"logFormat" mapstructure:"logFormat"`
	ProfilerAddr string              `json:"profilerAddr" mapstructure:"profilerAddr"`
	Tracing      *TracingConfig      `json:"tracing" mapstructure:"tracing"`
	Ledger       *LedgerConfig       `json:"ledger" mapstructure:"ledger"`
	Lifecycle    *LifecycleConfig    `json:"lifecycle" mapstructure:"lifecycle"`
	Db           *DbConfig           `json:"db" mapstructure:"db"`
	Cache        *CacheConfig        `json:"cache" mapstructure:"cache"`
	MessageQueue *MessageQueueConfig `json:"mq" mapstructure:"mq"`
}

type TracingConfig struct {
	Enabled    bool              `json:"enabled" mapstructure:"enabled"`
	Attributes map[string]string `json:"attributes" mapstructure:"attributes"`

	KeyValueAttributes []attribute.KeyValue `json:"-" mapstructure:"-"`
}

type LedgerConfig struct {
	URL          string        `json:"url" mapstructure:"url"`
	AuthToken    string        `json:"authToken" mapstructure:"authToken"`
	PollInterval time.Duration `json:"pollInterval" mapstructure:"pollInterval"`
}

type LifecycleConfig struct {
	RetryBase           time.Duration `json:"retryBase" mapstructure:"retryBase"`
	SweepInterval       time.Duration `json:"sweepInterval" mapstructure:"sweepInterval"`
	ReceiptTimeout      time.Duration `json:"receiptTimeout" mapstructure:"receiptTimeout"`
	SubmitTimeout       time.Duration `json:"submitTimeout" mapstructure:"submitTimeout"`
	Confirmations       uint64        `json:"confirmations" mapstructure:"confirmations"`
	StatusCacheTTL      time.Duration `json:"statusCacheTTL" mapstructure:"statusCacheTTL"`
	RecordRetentionDays int32         `json:"recordRetentionDays" mapstructure:"recordRetentionDays"`
}

type DbConfig struct {
	Mode     string          `json:"mode" mapstructure:"mode"`
	Postgres *PostgresConfig `json:"postgres" mapstructure:"postgres"`
}

type PostgresConfig struct {
	Host         string `json:"host" mapstructure:"host"`
	Port         int    `json:"port" mapstructure:"port"`
	Name         string `json:"name" mapstructure:"name"`
	User         string `json:"user" mapstructure:"user"`
	Password     string `json:"password" mapstructure:"password"`
	MaxIdleConns int    `json:"maxIdleConns" mapstructure:"maxIdleConns"`
	MaxOpenConns int    `json:"maxOpenConns" mapstructure:"maxOpenConns"`
	SslMode      string `json:"sslMode" mapstructure:"sslMode"`
}

// DSN renders the lib/pq connection string.
func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Name, p.SslMode)
}

type CacheConfig struct {
	Engine string       `json:"engine" mapstructure:"engine"`
	Redis  *RedisConfig `json:"redis" mapstructure:"redis"`
}

type RedisConfig struct {
	Addr     string `json:"addr" mapstructure:"addr"`
	Password string `json:"password" mapstructure:"password"`
	DB       int    `json:"db" mapstructure:"db"`
}

type MessageQueueConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	URL     string `json:"url" mapstructure:"url"`
}
