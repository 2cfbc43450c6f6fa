// Package client forwards validated gateway requests to the sharekit server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"sharekit/internal/handler/middleware"
	"sharekit/internal/pkg/config"
	"sharekit/internal/pkg/errs"
)

// Result carries the server's reply so handlers can relay it verbatim.
type Result struct {
	Status      int
	ContentType string
	Body        []byte
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(cfg config.GatewayConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.ServerURL, "/"),
		http:    &http.Client{Timeout: cfg.ClientTimeout},
	}
}

// Forward proxies one request. userID goes out as the sharer header when
// non-empty; body is JSON-encoded when non-nil.
func (c *Client) Forward(ctx context.Context, method, path string, query url.Values, userID string, body any) (*Result, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, errs.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(encoded)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build upstream request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set(middleware.SharerHeader, userID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "upstream request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read upstream response")
	}

	return &Result{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        payload,
	}, nil
}
