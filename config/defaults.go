package config

import "time"

func getDefaultTxFlowConfig() *TxFlowConfig {
	return &TxFlowConfig{
		LogLevel:  "INFO",
		LogFormat: "text",
		Ledger: &LedgerConfig{
			URL:          "http://localhost:9090",
			PollInterval: 5 * time.Second,
		},
		Lifecycle: &LifecycleConfig{
			RetryBase:      30 * time.Second,
			SweepInterval:  60 * time.Second,
			ReceiptTimeout: 10 * time.Minute,
			SubmitTimeout:  30 * time.Second,
			Confirmations:  6,
			StatusCacheTTL: 10 * time.Second,
		},
		Db: &DbConfig{
			Mode: "postgres",
			Postgres: &PostgresConfig{
				Host:         "localhost",
				Port:         5432,
				Name:         "txflow",
				User:         "txflow",
				Password:     "txflow",
				MaxIdleConns: 10,
				MaxOpenConns: 80,
				SslMode:      "disable",
			},
		},
		Cache: &CacheConfig{
			Engine: "memory",
			Redis: &RedisConfig{
				Addr: "localhost:6379",
			},
		},
		MessageQueue: &MessageQueueConfig{
			Enabled: false,
			URL:     "nats://localhost:4222",
		},
	}
}
