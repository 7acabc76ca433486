package store

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrUnknownKind    = errors.New("unknown transaction kind")
	ErrPayloadMissing = errors.New("payload cannot be nil")
	ErrPayloadKind    = errors.New("payload does not match transaction kind")
)

// Payload is the kind-specific, immutable operation data. Retries re-submit
// the stored payload byte-identically; nothing is recomputed between
// attempts.
type Payload interface {
	PayloadKind() Kind
}

type FundingPayload struct {
	CampaignID    string `json:"campaign_id"`
	EscrowAccount string `json:"escrow_account"`
	Amount        int64  `json:"amount"`
}

func (FundingPayload) PayloadKind() Kind { return KindCampaignFunding }

type PayoutRecipient struct {
	Recipient string   `json:"recipient"`
	Role      string   `json:"role"`
	Amount    int64    `json:"amount"`
	EventIDs  []string `json:"event_ids"`
}

type PayoutBatchPayload struct {
	CampaignID    string            `json:"campaign_id"`
	EscrowAccount string            `json:"escrow_account"`
	Recipients    []PayoutRecipient `json:"recipients"`
}

func (PayoutBatchPayload) PayloadKind() Kind { return KindPayoutBatch }

// Total returns the sum the batch releases from escrow.
func (p PayoutBatchPayload) Total() int64 {
	var total int64
	for _, r := range p.Recipients {
		total += r.Amount
	}
	return total
}

type ConsentPayload struct {
	UserID     string `json:"user_id"`
	CampaignID string `json:"campaign_id"`
	Scope      string `json:"scope"`
}

func (ConsentPayload) PayloadKind() Kind { return KindConsentRecord }

func EncodePayload(p Payload) ([]byte, error) {
	if p == nil {
		return nil, ErrPayloadMissing
	}

	return json.Marshal(p)
}

// DecodePayload reconstructs the tagged union from its kind discriminator and
// raw JSON.
func DecodePayload(kind Kind, raw []byte) (Payload, error) {
	switch kind {
	case KindCampaignFunding:
		var p FundingPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case KindPayoutBatch:
		var p PayoutBatchPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case KindConsentRecord:
		var p ConsentPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	}

	return nil, errors.Join(ErrUnknownKind, fmt.Errorf("kind: %s", kind))
}
