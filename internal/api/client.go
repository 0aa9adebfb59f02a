// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"

	"github.com/lnctl/lnctl/internal/cacheutil"
	"github.com/lnctl/lnctl/internal/log"
	"github.com/lnctl/lnctl/internal/version"
)

// DefaultEndpoint is the public GraphQL endpoint.
const DefaultEndpoint = "https://api.linear.app/graphql"

// Client talks to the GraphQL API. Lookup tables are served through the
// cache when one is configured.
type Client struct {
	endpoint string
	apiKey   string
	http     *retryablehttp.Client
	cache    *cacheutil.Cache
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithRetryMax sets how many times a failed request is retried.
func WithRetryMax(n int) ClientOption {
	return func(c *Client) {
		c.http.RetryMax = n
	}
}

// WithCache serves lookup tables through cache.
func WithCache(cache *cacheutil.Cache) ClientOption {
	return func(c *Client) {
		c.cache = cache
	}
}

// NewClient returns a Client for endpoint authenticating with apiKey.
func NewClient(endpoint, apiKey string, opts ...ClientOption) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	hc := retryablehttp.NewClient()
	hc.Logger = log.Leveled{}
	hc.RetryMax = 3
	hc.RetryWaitMin = 250 * time.Millisecond
	hc.RetryWaitMax = 2 * time.Second
	hc.HTTPClient.Timeout = 30 * time.Second

	c := &Client{endpoint: endpoint, apiKey: apiKey, http: hc}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// Query posts a GraphQL document and returns the "data" member of the
// response.
func (c *Client) Query(ctx context.Context, query string, vars map[string]any) (gjson.Result, error) {
	if c.apiKey == "" {
		return gjson.Result{}, ErrNoAPIKey
	}

	body, err := json.Marshal(request{Query: query, Variables: vars})
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("User-Agent", "lnctl/"+version.Version)

	resp, err := c.http.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	var doc bytes.Buffer
	if _, err := io.Copy(&doc, resp.Body); err != nil {
		return gjson.Result{}, fmt.Errorf("failed to read response: %w", err)
	}

	log.Tracef("graphql response: status=%d body=%s", resp.StatusCode, doc.String())

	if err := checkResponse(resp.StatusCode, doc.Bytes()); err != nil {
		return gjson.Result{}, err
	}

	return gjson.GetBytes(doc.Bytes(), "data"), nil
}
