package domain

// from domain.go
//go:generate moq -pkg mocks -out ./mocks/campaign_store_mock.go . CampaignStore
//go:generate moq -pkg mocks -out ./mocks/payout_store_mock.go . PayoutStore
//go:generate moq -pkg mocks -out ./mocks/consent_store_mock.go . ConsentStore
