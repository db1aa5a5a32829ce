package lexical

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kapu/vocab-sampler-go/internal/domain"
	"github.com/kapu/vocab-sampler-go/pkg/errors"
)

// Config carries the connection settings for the lexical API.
type Config struct {
	BaseURL      string
	APIKey       string
	APIHost      string
	Timeout      time.Duration
	RequestDelay time.Duration
}

// Client talks to the RapidAPI-hosted dictionary. Lookups are one-shot GETs
// authenticated by key and host headers; a failed lookup surfaces as absence,
// never as an error, so a batch always completes.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	apiKey       string
	apiHost      string
	requestDelay time.Duration
	sleep        func(time.Duration)
	logger       *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:       cfg.APIKey,
		apiHost:      cfg.APIHost,
		requestDelay: cfg.RequestDelay,
		sleep:        time.Sleep,
		logger:       logger,
	}
}

// FetchOne looks up a single word and returns nil when anything goes wrong:
// request build, transport, non-success status or an undecodable body. The
// credential never reaches a log line in full.
func (c *Client) FetchOne(ctx context.Context, word string) *domain.LexicalInfo {
	body, err := c.lookup(ctx, word)
	if err != nil {
		if apiErr, ok := err.(*errors.APIError); ok && apiErr.StatusCode == http.StatusNotFound {
			c.logger.Debug("Word not in dictionary", zap.String("word", word))
		} else {
			c.logger.Warn("Lexical lookup failed",
				zap.String("word", word),
				zap.Error(err),
			)
		}
		return nil
	}

	var raw wordRaw
	if err := json.Unmarshal(body, &raw); err != nil {
		c.logger.Warn("Failed to decode lexical response",
			zap.String("word", word),
			zap.Error(err),
		)
		return nil
	}

	return mapWordResponse(word, &raw)
}

// FetchMany looks up words strictly in input order, pausing between
// consecutive lookups and never after the last one. Every requested word
// gets exactly one slot in the result; failed lookups hold nil. Once ctx
// is cancelled the pacing stops and the remaining lookups fail fast, so a
// cancelled batch still returns a complete result.
func (c *Client) FetchMany(ctx context.Context, words []string) *domain.EnrichmentResult {
	result := domain.NewEnrichmentResult()

	for i, word := range words {
		if i > 0 && c.requestDelay > 0 && ctx.Err() == nil {
			c.sleep(c.requestDelay)
		}
		result.Add(word, c.FetchOne(ctx, word))
	}

	c.logger.Info("Lexical batch finished",
		zap.Int("words", result.Len()),
		zap.Int("hits", result.Hits()),
	)

	return result
}

func (c *Client) lookup(ctx context.Context, word string) ([]byte, error) {
	reqURL := c.baseURL + "/words/" + url.PathEscape(word)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.apiHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 500 {
		return nil, errors.NewAPIError(fmt.Sprintf("Server error: %d", resp.StatusCode), resp.StatusCode, map[string]any{
			"word": word,
		})
	}

	if resp.StatusCode >= 400 {
		return nil, errors.NewAPIError(fmt.Sprintf("Client error: %d", resp.StatusCode), resp.StatusCode, map[string]any{
			"word": word,
			"url":  reqURL,
		})
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.NewAPIError(fmt.Sprintf("Unexpected status: %d", resp.StatusCode), resp.StatusCode, map[string]any{
			"word": word,
		})
	}

	return body, nil
}
