// Package tiltify provides a client for querying fundraising campaign
// progress from the Tiltify GraphQL API. It fetches a campaign by
// vanity and slug and decodes the response into a strongly-typed
// Campaign model, including the raised amount, goal, and milestones.
package tiltify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the Tiltify GraphQL API endpoint.
	DefaultBaseURL = "https://api.tiltify.com"

	// DefaultVanity and DefaultSlug identify the Relay FM for St. Jude
	// campaign, the campaign FetchCampaign reports on.
	DefaultVanity = "@relay-fm"
	DefaultSlug   = "relay-st-jude-21"
)

// Client defines the interface for querying campaigns from the Tiltify API.
type Client interface {
	// FetchCampaign retrieves the Relay FM for St. Jude campaign
	// (DefaultVanity and DefaultSlug).
	FetchCampaign(context.Context) (Campaign, error)

	// FetchCampaignBy retrieves the campaign identified by the given
	// vanity and slug.
	FetchCampaignBy(ctx context.Context, vanity, slug string) (Campaign, error)

	// FetchCampaignJSON retrieves the raw textual response body for the
	// given vanity and slug without decoding it. Use this to debug
	// decoding problems or to decode externally.
	FetchCampaignJSON(ctx context.Context, vanity, slug string) (string, error)
}

type clientOption struct {
	baseURL    string
	httpClient *http.Client
	doRetry    bool
	logger     *zap.Logger
}

// ClientOption defines a function type for configuring client options.
type ClientOption func(*clientOption)

// WithBaseURL returns a ClientOption that overrides the API endpoint.
// If not provided, defaults to DefaultBaseURL.
func WithBaseURL(url string) ClientOption {
	return func(opt *clientOption) {
		opt.baseURL = url
	}
}

// WithHTTPClient returns a ClientOption that sets the *http.Client used
// for requests. Timeouts and cancellation beyond the request context
// are whatever this client is configured with.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(opt *clientOption) {
		opt.httpClient = httpClient
	}
}

// WithRetry returns a ClientOption that enables retries (when applicable)
// for transient transport failures. If not provided, defaults to false
// and every fetch is a single attempt.
func WithRetry() ClientOption {
	return func(opt *clientOption) {
		opt.doRetry = true
	}
}

// WithLogger returns a ClientOption that sets the logger used for debug
// output. If not provided, logging is disabled.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(opt *clientOption) {
		opt.logger = logger
	}
}

type tiltifyClient struct {
	opts   clientOption
	client *http.Client
}

// NewClient creates a new Tiltify API client with the provided options.
// The zero-option client talks to the live API at DefaultBaseURL.
func NewClient(options ...ClientOption) (Client, error) {
	clientOptions := clientOption{
		baseURL: DefaultBaseURL,
		logger:  zap.NewNop(),
	}

	for _, option := range options {
		option(&clientOptions)
	}

	if clientOptions.baseURL == "" {
		return &tiltifyClient{}, errors.New("missing base URL!")
	}

	if clientOptions.httpClient == nil {
		clientOptions.httpClient = &http.Client{}
	}

	return &tiltifyClient{
		opts:   clientOptions,
		client: clientOptions.httpClient,
	}, nil
}

type retryable interface {
	CanRetry() bool
}

// CanRetry reports whether the failure is plausibly transient:
// no response at all, or a server-side status.
func (e *TransportError) CanRetry() bool {
	return e.StatusCode == 0 || e.StatusCode >= 500
}

func (c *tiltifyClient) FetchCampaign(ctx context.Context) (Campaign, error) {
	return c.FetchCampaignBy(ctx, DefaultVanity, DefaultSlug)
}

func (c *tiltifyClient) FetchCampaignBy(ctx context.Context, vanity, slug string) (Campaign, error) {
	body, err := c.postCampaignQuery(ctx, vanity, slug)
	if err != nil {
		return Campaign{}, err
	}

	return DecodeCampaignResponse(body)
}

func (c *tiltifyClient) FetchCampaignJSON(ctx context.Context, vanity, slug string) (string, error) {
	body, err := c.postCampaignQuery(ctx, vanity, slug)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

func (c *tiltifyClient) postCampaignQuery(ctx context.Context, vanity, slug string) ([]byte, error) {
	payload := buildCampaignQuery(vanity, slug)

	body, err := c.postQuery(ctx, payload)

	if err != nil && c.opts.doRetry {
		re, ok := err.(retryable)
		if ok && re.CanRetry() {
			operation := func() ([]byte, error) {
				return c.postQuery(ctx, payload)
			}
			body, err = backoff.Retry(ctx, operation, backoff.WithBackOff(backoff.NewExponentialBackOff()))
		}
	}

	return body, err
}

func (c *tiltifyClient) postQuery(ctx context.Context, payload graphQLRequest) ([]byte, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.baseURL, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.opts.logger.Debug("issuing campaign query",
		zap.String("url", c.opts.baseURL),
		zap.String("vanity", payload.Variables.Vanity),
		zap.String("slug", payload.Variables.Slug),
	)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode >= 400 {
		return nil, &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected status %q", resp.Status)}
	}

	c.opts.logger.Debug("campaign query answered",
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(respBody)),
	)

	return respBody, nil
}
