// Package brain is the HTTP client for the Lucille Brain API.
//
// The client is stateless: each method issues exactly one HTTP request, has
// no retry logic, and classifies every failure into a *apierr.Error. Calls
// are independent and safe for concurrent use.
package brain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/lucille-world/lucille-mcp/apierr"
	"github.com/lucille-world/lucille-mcp/config"
)

// Client talks to the Brain API.
//
// Thread-safety: all methods are safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	tracer  trace.Tracer
	logger  *slog.Logger
}

// NewClient creates a Brain API client from the provided configuration.
// The base URL and timeout come from cfg; no global state is consulted.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.HTTPTimeout()},
		tracer:  otel.Tracer("lucille-mcp/brain"),
		logger:  logger,
	}
}

// BaseURL returns the configured base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GameState fetches the current round, turn, jackpot, threshold, phase, and
// active personality.
func (c *Client) GameState(ctx context.Context) (*GameState, error) {
	var out GameState
	if err := c.get(ctx, "game-state", "/game-state", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Personality fetches the active personality's full profile.
func (c *Client) Personality(ctx context.Context) (*PersonalityInfo, error) {
	var out PersonalityInfo
	if err := c.get(ctx, "personality", "/personality", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// History fetches recent attempts, optionally filtered by round and player.
func (c *Client) History(ctx context.Context, filter HistoryFilter) (*History, error) {
	q := url.Values{}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Round > 0 {
		q.Set("round", strconv.Itoa(filter.Round))
	}
	if filter.Player != "" {
		q.Set("player", filter.Player)
	}

	var out History
	if err := c.get(ctx, "history", "/history", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PersonalityHistory fetches the per-round personality and winner summary.
func (c *Client) PersonalityHistory(ctx context.Context) (*PersonalityHistory, error) {
	var out PersonalityHistory
	if err := c.get(ctx, "personality-history", "/personality-history", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AgentStats fetches the aggregate stats for one player address.
func (c *Client) AgentStats(ctx context.Context, player string) (*AgentStats, error) {
	q := url.Values{}
	q.Set("player", player)

	var out AgentStats
	if err := c.get(ctx, "agent-stats", "/agent/stats", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Strategy fetches round advice for the current personality.
func (c *Client) Strategy(ctx context.Context) (*Strategy, error) {
	var out Strategy
	if err := c.get(ctx, "agent-strategy", "/agent/strategy", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Play submits one scored attempt.
func (c *Client) Play(ctx context.Context, req PlayRequest) (*PlayResult, error) {
	var out PlayResult
	if _, err := c.post(ctx, "agent-play", "/agent/play", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Drip requests test ETH from the faucet for the given address.
// The verbatim response body is preserved in DripResult.Raw.
func (c *Client) Drip(ctx context.Context, address string) (*DripResult, error) {
	body := map[string]string{"address": address}

	var out DripResult
	raw, err := c.post(ctx, "drip", "/drip", body, &out)
	if err != nil {
		return nil, err
	}
	out.Raw = raw
	return &out, nil
}

// get issues one GET request and decodes the 2xx response body into out.
func (c *Client) get(ctx context.Context, name, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return apierr.Classify(err)
	}

	_, err = c.do(req, name, out)
	return err
}

// post issues one POST request with a JSON body and decodes the 2xx response
// body into out. It returns the raw response bytes alongside.
func (c *Client) post(ctx context.Context, name, path string, body, out any) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, apierr.Classify(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, apierr.Classify(err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, name, out)
}

// do executes the request and applies the uniform failure classification:
// transport errors via apierr.FromTransport, non-2xx statuses via
// apierr.FromStatus, unreadable or undecodable bodies via apierr.Classify.
func (c *Client) do(req *http.Request, name string, out any) (json.RawMessage, error) {
	ctx, span := c.tracer.Start(req.Context(), "brain."+name)
	defer span.End()
	span.SetAttributes(
		attribute.String("http.method", req.Method),
		attribute.String("http.url", req.URL.String()),
	)

	resp, err := c.http.Do(req.WithContext(ctx))
	if err != nil {
		span.RecordError(err)
		e := apierr.FromTransport(err)
		c.logger.Warn("brain api transport failure", "endpoint", name, "kind", string(e.Kind), "error", err)
		return nil, e
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		return nil, apierr.Classify(fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		e := apierr.FromStatus(resp.StatusCode, body)
		c.logger.Warn("brain api error response", "endpoint", name, "status", resp.StatusCode, "kind", string(e.Kind))
		return nil, e
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			span.RecordError(err)
			return nil, apierr.Classify(fmt.Errorf("failed to decode %s response: %w", name, err))
		}
	}

	return body, nil
}
