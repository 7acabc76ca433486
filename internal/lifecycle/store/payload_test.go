package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePayload(t *testing.T) {
	tt := []struct {
		name string
		kind Kind
		raw  []byte

		expectedPayload Payload
		expectedError   error
	}{
		{
			name: "campaign funding",
			kind: KindCampaignFunding,
			raw:  []byte(`{"campaign_id":"c1","escrow_account":"0xescrow","amount":1000}`),

			expectedPayload: FundingPayload{CampaignID: "c1", EscrowAccount: "0xescrow", Amount: 1000},
		},
		{
			name: "payout batch",
			kind: KindPayoutBatch,
			raw:  []byte(`{"campaign_id":"c1","escrow_account":"0xescrow","recipients":[{"recipient":"0xabc","role":"publisher","amount":400,"event_ids":["e1","e2"]}]}`),

			expectedPayload: PayoutBatchPayload{
				CampaignID:    "c1",
				EscrowAccount: "0xescrow",
				Recipients: []PayoutRecipient{
					{Recipient: "0xabc", Role: "publisher", Amount: 400, EventIDs: []string{"e1", "e2"}},
				},
			},
		},
		{
			name: "consent record",
			kind: KindConsentRecord,
			raw:  []byte(`{"user_id":"u1","campaign_id":"c1","scope":"tracking"}`),

			expectedPayload: ConsentPayload{UserID: "u1", CampaignID: "c1", Scope: "tracking"},
		},
		{
			name: "unknown kind",
			kind: Kind("refund"),
			raw:  []byte(`{}`),

			expectedError: ErrUnknownKind,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			payload, err := DecodePayload(tc.kind, tc.raw)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expectedPayload, payload)
			require.Equal(t, tc.kind, payload.PayloadKind())
		})
	}
}

func TestEncodePayloadRoundTrip(t *testing.T) {
	original := PayoutBatchPayload{
		CampaignID:    "c9",
		EscrowAccount: "0xescrow",
		Recipients: []PayoutRecipient{
			{Recipient: "0xuser", Role: "user", Amount: 250, EventIDs: []string{"click-1"}},
			{Recipient: "0xpub", Role: "publisher", Amount: 700, EventIDs: []string{"imp-7"}},
		},
	}

	raw, err := EncodePayload(original)
	require.NoError(t, err)

	// a second encoding of the same payload must be byte-identical, so a
	// retried submission cannot drift from the original
	raw2, err := EncodePayload(original)
	require.NoError(t, err)
	require.Equal(t, raw, raw2)

	decoded, err := DecodePayload(KindPayoutBatch, raw)
	require.NoError(t, err)
	require.Equal(t, original, decoded)
}

func TestEncodePayloadNil(t *testing.T) {
	_, err := EncodePayload(nil)
	require.ErrorIs(t, err, ErrPayloadMissing)
}

func TestPayoutBatchTotal(t *testing.T) {
	p := PayoutBatchPayload{
		Recipients: []PayoutRecipient{
			{Amount: 100},
			{Amount: 250},
			{Amount: 50},
		},
	}

	assert.Equal(t, int64(400), p.Total())
}

func TestKindAttemptLimit(t *testing.T) {
	assert.Equal(t, 3, KindCampaignFunding.AttemptLimit())
	assert.Equal(t, 5, KindPayoutBatch.AttemptLimit())
	assert.Equal(t, 3, KindConsentRecord.AttemptLimit())
}

func TestKindValid(t *testing.T) {
	assert.True(t, KindCampaignFunding.Valid())
	assert.True(t, KindPayoutBatch.Valid())
	assert.True(t, KindConsentRecord.Valid())
	assert.False(t, Kind("refund").Valid())
}
