// Package coach produces one short AI-generated coaching comment per
// logged trade.
package coach

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"trade-journal-go/internal/config"
	"trade-journal-go/internal/i18n"
	"trade-journal-go/internal/models"
	"trade-journal-go/internal/numfmt"
)

// CommentProvider is the interface the advisor consumes.
type CommentProvider interface {
	Comment(ctx context.Context, lang string, p Prompt) (string, error)
}

// Prompt carries everything the coach is told about one trade.
type Prompt struct {
	Record  models.TradeRecord
	WinRate float64 // current win rate, 0..100
}

// Client talks to an OpenAI-compatible chat-completions API.
type Client struct {
	client  *resty.Client
	cfg     *config.AI
	logger  *zap.Logger
	limiter *rate.Limiter
}

// ensure Client implements the interface
var _ CommentProvider = (*Client)(nil)

// NewClient creates a new coaching API client.
func NewClient(cfg *config.AI, logger *zap.Logger) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)

	return &Client{
		client:  client,
		cfg:     cfg,
		logger:  logger,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimitBurst),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Comment requests a concise coaching comment for one trade in the
// active display language.
func (c *Client) Comment(ctx context.Context, lang string, p Prompt) (string, error) {
	body := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: i18n.T(lang, "coach.system")},
			{Role: "user", Content: BuildUserPrompt(lang, p)},
		},
	}

	req := c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.cfg.ApiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&chatResponse{})

	resp, err := c.doRequest(ctx, "POST", "/chat/completions", req)
	if err != nil {
		return "", fmt.Errorf("failed to get coaching comment: %w", err)
	}

	result := resp.Result().(*chatResponse)
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("coaching API returned no choices")
	}
	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}

// doRequest handles the actual request execution with rate limiting and retry logic.
func (c *Client) doRequest(ctx context.Context, method, url string, req *resty.Request) (*resty.Response, error) {
	var resp *resty.Response
	var err error
	const maxRetries = 3

	for i := 0; i < maxRetries; i++ {
		// Wait for the rate limiter
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait failed: %w", err)
		}

		c.logger.Debug("Executing request", zap.String("method", method), zap.String("url", c.client.BaseURL+url))
		resp, err = req.Execute(method, url)

		if err == nil && !resp.IsError() {
			return resp, nil // Success
		}

		// Analyze error and decide whether to retry
		shouldRetry := false
		var retryAfter time.Duration

		if resp != nil && resp.RawResponse != nil {
			statusCode := resp.StatusCode()
			if statusCode == http.StatusTooManyRequests {
				shouldRetry = true
				retryAfterHeader := resp.Header().Get("Retry-After")
				if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
					retryAfter = time.Duration(seconds) * time.Second
				}
			} else if statusCode >= 500 { // Server errors
				shouldRetry = true
			}
		} else { // Network or other client-side errors
			shouldRetry = true
		}

		if !shouldRetry {
			return nil, fmt.Errorf("request failed with status %s: %s", resp.Status(), resp.String())
		}

		if retryAfter == 0 {
			// Exponential backoff: 1s, 2s, 4s
			retryAfter = time.Duration(math.Pow(2, float64(i))) * time.Second
		}

		c.logger.Warn("Request failed, retrying...",
			zap.Int("attempt", i+1),
			zap.Duration("retry_after", retryAfter),
			zap.Error(err),
		)

		select {
		case <-time.After(retryAfter):
			continue
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, fmt.Errorf("request failed after %d attempts: %w", maxRetries, err)
}

// BuildUserPrompt renders the natural-language description of one trade
// for the coaching request.
func BuildUserPrompt(lang string, p Prompt) string {
	rec := p.Record
	tag := i18n.Tag(lang)
	result := numfmt.FormatCurrency(tag, rec.Result)
	winRate := numfmt.FormatPercent(tag, p.WinRate)

	sideKey := "side.buy"
	if rec.Side == models.SideSell {
		sideKey = "side.sell"
	}
	side := i18n.T(lang, sideKey)

	if lang == i18n.LangEN {
		return fmt.Sprintf(
			"Trade on %s, side %s, result %s. Region: %s. Structure: %s. Trigger: %s. Current win rate: %s.",
			rec.Asset, side, result, rec.Region, rec.Structure, rec.Trigger, winRate)
	}
	return fmt.Sprintf(
		"Operação em %s, lado %s, resultado %s. Região: %s. Estrutura: %s. Gatilho: %s. Taxa de acerto atual: %s.",
		rec.Asset, side, result, rec.Region, rec.Structure, rec.Trigger, winRate)
}
