package lifecycle

// from manager.go
//go:generate moq -pkg mocks -out ./mocks/transaction_store_mock.go ./store/ TransactionStore
//go:generate moq -pkg mocks -out ./mocks/gateway_mock.go ../ledger/ Gateway
//go:generate moq -pkg mocks -out ./mocks/publisher_mock.go . EventPublisher
//go:generate moq -pkg mocks -out ./mocks/handler_mock.go ../domain/ Handler
