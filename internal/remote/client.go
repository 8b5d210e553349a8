package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Client implements Service against the order service's HTTP JSON API.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates an HTTP client for the order service.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

// IsAuthenticated reports whether a session token is configured. It does
// not validate the token against the service; a stale token surfaces as
// ErrUnauthorized on the next call.
func (c *Client) IsAuthenticated() bool {
	return c.cfg.Token != ""
}

func (c *Client) ListBoardOrders(ctx context.Context) ([]RemoteOrder, error) {
	var orders []RemoteOrder
	if err := c.do(ctx, http.MethodGet, "/api/orders?board=1", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) CreateOrder(ctx context.Context, draft Draft) (RemoteOrder, error) {
	var created RemoteOrder
	if err := c.do(ctx, http.MethodPost, "/api/orders", draft, &created); err != nil {
		return RemoteOrder{}, err
	}
	return created, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id, status, comment string) error {
	body := struct {
		Status  string `json:"status"`
		Comment string `json:"comment,omitempty"`
	}{Status: status, Comment: comment}
	return c.do(ctx, http.MethodPatch, "/api/orders/"+id+"/status", body, nil)
}

// do performs one JSON round trip. out may be nil for calls without a
// structured response.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.Endpoint+path, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isConnectionError(err) {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("order service returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

func isConnectionError(err error) bool {
	var netErr *net.OpError
	return errors.As(err, &netErr)
}
