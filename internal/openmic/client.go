// Package openmic wraps the voice-bot platform's REST API.
package openmic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"intake-insights-go/internal/logger"
	"intake-insights-go/internal/types"
)

var ErrNotConfigured = errors.New("openmic api key not configured")

// APIError is a non-2xx response from the platform.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openmic: status %d: %s", e.StatusCode, e.Body)
}

// IsNotFound reports whether err is a 404 from the platform.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type Options struct {
	BaseURL       string
	APIKey        string
	Timeout       time.Duration
	MaxRetryTime  time.Duration
	PublicBaseURL string
	HTTPClient    *http.Client
	Log           *logger.Logger
}

type Client struct {
	baseURL       string
	apiKey        string
	publicBaseURL string
	maxRetry      time.Duration
	http          *http.Client
	log           *logger.Logger
}

func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.MaxRetryTime <= 0 {
		opts.MaxRetryTime = 20 * time.Second
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}
	if opts.Log == nil {
		opts.Log = logger.NewWithOutput("", "error", io.Discard)
	}
	return &Client{
		baseURL:       strings.TrimRight(opts.BaseURL, "/"),
		apiKey:        opts.APIKey,
		publicBaseURL: strings.TrimRight(opts.PublicBaseURL, "/"),
		maxRetry:      opts.MaxRetryTime,
		http:          opts.HTTPClient,
		log:           opts.Log.Component("openmic"),
	}
}

func (c *Client) Configured() bool {
	return c.apiKey != ""
}

func (c *Client) ListBots(ctx context.Context) ([]types.Bot, error) {
	var resp struct {
		Data []types.Bot `json:"data"`
		Bots []types.Bot `json:"bots"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/bots", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Data != nil {
		return resp.Data, nil
	}
	if resp.Bots != nil {
		return resp.Bots, nil
	}
	return []types.Bot{}, nil
}

// CreateBot fills platform defaults and points the bot's webhooks at this
// service before creating it.
func (c *Client) CreateBot(ctx context.Context, bot types.Bot) (types.Bot, error) {
	bot = c.withDefaults(bot)
	var created types.Bot
	if err := c.doJSON(ctx, http.MethodPost, "/bots", bot, &created); err != nil {
		return types.Bot{}, err
	}
	return created, nil
}

func (c *Client) UpdateBot(ctx context.Context, id string, bot types.Bot) (types.Bot, error) {
	if id == "" {
		return types.Bot{}, errors.New("bot id is required")
	}
	var updated types.Bot
	if err := c.doJSON(ctx, http.MethodPatch, "/bots/"+url.PathEscape(id), bot, &updated); err != nil {
		return types.Bot{}, err
	}
	return updated, nil
}

func (c *Client) DeleteBot(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("bot id is required")
	}
	return c.doJSON(ctx, http.MethodDelete, "/bots/"+url.PathEscape(id), nil, nil)
}

// ListCallLogs returns the platform's own call records. Their shape belongs
// to the platform, so they are passed through untyped.
func (c *Client) ListCallLogs(ctx context.Context, botUID string) ([]map[string]any, error) {
	path := "/calls"
	if botUID != "" {
		path += "?bot_uid=" + url.QueryEscape(botUID)
	}
	var resp struct {
		Data  []map[string]any `json:"data"`
		Calls []map[string]any `json:"calls"`
	}
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Data != nil {
		return resp.Data, nil
	}
	if resp.Calls != nil {
		return resp.Calls, nil
	}
	return []map[string]any{}, nil
}

func (c *Client) withDefaults(bot types.Bot) types.Bot {
	if bot.Voice == "" {
		bot.Voice = DefaultVoice
	}
	if bot.Language == "" {
		bot.Language = DefaultLanguage
	}
	if strings.TrimSpace(bot.Prompt) == "" {
		bot.Prompt = DefaultIntakePrompt
	}
	if c.publicBaseURL != "" && bot.Webhooks == nil {
		bot.Webhooks = &types.BotWebhooks{
			PreCallURL:  c.publicBaseURL + "/webhook/pre-call",
			PostCallURL: c.publicBaseURL + "/webhook/post-call",
		}
	}
	return bot
}

// doJSON retries network errors and 5xx responses; 4xx fail immediately.
func (c *Client) doJSON(ctx context.Context, method, path string, body, target any) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	log := c.log.WithField("method", method).WithField("path", path)
	op := func() error {
		var rdr io.Reader
		if payload != nil {
			rdr = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.http.Do(req)
		if err != nil {
			log.WithField("error", err.Error()).Warn("openmic request failed")
			return err
		}
		defer resp.Body.Close()
		respBody, _ := io.ReadAll(resp.Body)

		if resp.StatusCode >= 500 {
			log.WithField("status", resp.StatusCode).Warn("openmic server error, retrying")
			return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
		}
		if resp.StatusCode >= 400 {
			return backoff.Permanent(&APIError{StatusCode: resp.StatusCode, Body: string(respBody)})
		}
		if target == nil || len(bytes.TrimSpace(respBody)) == 0 {
			return nil
		}
		if err := json.Unmarshal(respBody, target); err != nil {
			return backoff.Permanent(fmt.Errorf("json decode error: %v body=%s", err, string(respBody)))
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 200 * time.Millisecond
	bo.MaxElapsedTime = c.maxRetry
	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		return fmt.Errorf("openmic %s %s: %w", method, path, err)
	}
	return nil
}
