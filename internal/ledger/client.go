package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/admesh/txflow/internal/lifecycle/store"
)

const (
	defaultRequestTimeout = 10 * time.Second
	defaultPollInterval   = 5 * time.Second
)

// Client implements Gateway against a ledger node's HTTP API.
type Client struct {
	client        http.Client
	url           string
	authorization string
	pollInterval  time.Duration
	logger        *slog.Logger
}

func WithAuth(authorization string) func(*Client) {
	return func(c *Client) {
		c.authorization = authorization
	}
}

func WithPollInterval(interval time.Duration) func(*Client) {
	return func(c *Client) {
		c.pollInterval = interval
	}
}

func WithLogger(logger *slog.Logger) func(*Client) {
	return func(c *Client) {
		c.logger = logger
	}
}

func NewClient(url string, opts ...func(*Client)) *Client {
	c := &Client{
		client:       http.Client{Timeout: defaultRequestTimeout},
		url:          url,
		pollInterval: defaultPollInterval,
		logger:       slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type submitRequest struct {
	Kind    store.Kind    `json:"kind"`
	Payload store.Payload `json:"payload"`
}

type submitResponse struct {
	Handle string `json:"handle"`
}

type balanceResponse struct {
	Confirmed   int64 `json:"confirmed"`
	Unconfirmed int64 `json:"unconfirmed"`
}

func (c *Client) Submit(ctx context.Context, kind store.Kind, payload store.Payload) (string, error) {
	body, err := json.Marshal(submitRequest{Kind: kind, Payload: payload})
	if err != nil {
		return "", errors.Join(ErrSubmitFailed, err)
	}

	req, err := c.httpRequest(ctx, http.MethodPost, "operations", body)
	if err != nil {
		return "", errors.Join(ErrSubmitFailed, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errors.Join(ErrSubmitFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		detail, _ := io.ReadAll(resp.Body)
		return "", errors.Join(ErrSubmitFailed, fmt.Errorf("response status: %s, body: %s", resp.Status, detail))
	}

	var submitResp submitResponse
	err = json.NewDecoder(resp.Body).Decode(&submitResp)
	if err != nil {
		return "", errors.Join(ErrSubmitFailed, err)
	}

	if submitResp.Handle == "" {
		return "", errors.Join(ErrSubmitFailed, errors.New("ledger returned empty handle"))
	}

	return submitResp.Handle, nil
}

// AwaitReceipt polls the node for a receipt until the requested confirmation
// depth is reached or ctx expires. A receipt reporting failure is returned
// with Success=false, not as an error.
func (c *Client) AwaitReceipt(ctx context.Context, handle string, confirmations uint64) (*Receipt, error) {
	policy := backoff.WithContext(backoff.NewConstantBackOff(c.pollInterval), ctx)

	operation := func() (*Receipt, error) {
		receipt, err := c.getReceipt(ctx, handle, confirmations)
		if err != nil {
			return nil, err
		}
		return receipt, nil
	}

	notify := func(err error, nextTry time.Duration) {
		c.logger.Debug("receipt not available yet",
			slog.String("handle", handle),
			slog.String("next try", nextTry.String()),
			slog.String("reason", err.Error()),
		)
	}

	receipt, err := backoff.RetryNotifyWithData(operation, policy, notify)
	if err != nil {
		return nil, errors.Join(ErrAwaitReceiptFailed, err)
	}

	return receipt, nil
}

func (c *Client) getReceipt(ctx context.Context, handle string, confirmations uint64) (*Receipt, error) {
	req, err := c.httpRequest(ctx, http.MethodGet, fmt.Sprintf("receipts/%s?confirmations=%d", handle, confirmations), nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var receipt Receipt
		err = json.NewDecoder(resp.Body).Decode(&receipt)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		return &receipt, nil
	case http.StatusNotFound:
		// not yet included, keep polling
		return nil, ErrReceiptNotFound
	default:
		detail, _ := io.ReadAll(resp.Body)
		return nil, backoff.Permanent(fmt.Errorf("response status: %s, body: %s", resp.Status, detail))
	}
}

func (c *Client) ReadBalance(ctx context.Context, account string) (int64, error) {
	req, err := c.httpRequest(ctx, http.MethodGet, fmt.Sprintf("accounts/%s/balance", account), nil)
	if err != nil {
		return 0, errors.Join(ErrReadBalanceFailed, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, errors.Join(ErrReadBalanceFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, errors.Join(ErrReadBalanceFailed, fmt.Errorf("response status: %s", resp.Status))
	}

	var balance balanceResponse
	err = json.NewDecoder(resp.Body).Decode(&balance)
	if err != nil {
		return 0, errors.Join(ErrReadBalanceFailed, err)
	}

	return balance.Confirmed, nil
}

func (c *Client) httpRequest(ctx context.Context, method, path string, payload []byte) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s/v1/%s", c.url, path), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.authorization != "" {
		req.Header.Set("Authorization", c.authorization)
	}

	return req, nil
}
