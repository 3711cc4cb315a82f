// Package rates получает актуальные курсы валют из внешнего API.
// Курсы нужны только для отображения, поэтому любая ошибка
// заменяется запасными значениями.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/iudanet/cashbook/internal/models"
)

// DefaultURL адрес API курсов по умолчанию.
const DefaultURL = "https://api.cashbook.example/rates"

const (
	requestTimeout = 10 * time.Second
	maxRetries     = 2
)

// FallbackRates запасные курсы на случай недоступности API.
var FallbackRates = models.Rates{USD: 310, Euro: 366}

// ratesPayload формат ответа API курсов.
type ratesPayload struct {
	USDToLKR float64 `json:"usd_to_lkr"` // USDToLKR курс доллара к рупии
	EURToLKR float64 `json:"eur_to_lkr"` // EURToLKR курс евро к рупии
}

// Client клиент API курсов валют.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	url        string
}

func NewClient(url string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
		url:        url,
	}
}

// Fetch запрашивает курсы с повторами и округляет их вверх до целых.
// Никогда не возвращает ошибку: при любом сбое возвращаются
// запасные курсы.
func (c *Client) Fetch(ctx context.Context) models.Rates {
	var payload ratesPayload

	op := func() error {
		p, err := c.fetchOnce(ctx)
		if err != nil {
			return err
		}
		payload = p
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		c.logger.Warn("failed to fetch exchange rates, using fallback", "error", err)
		return FallbackRates
	}

	if payload.USDToLKR <= 0 || payload.EURToLKR <= 0 {
		c.logger.Warn("exchange rates API returned non-positive values, using fallback",
			"usd", payload.USDToLKR, "eur", payload.EURToLKR)
		return FallbackRates
	}

	return models.Rates{
		USD:  int64(math.Ceil(payload.USDToLKR)),
		Euro: int64(math.Ceil(payload.EURToLKR)),
	}
}

func (c *Client) fetchOnce(ctx context.Context) (ratesPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return ratesPayload{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ratesPayload{}, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return ratesPayload{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ratesPayload{}, fmt.Errorf("failed to read response body: %w", err)
	}

	var payload ratesPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return ratesPayload{}, fmt.Errorf("failed to parse response: %w", err)
	}

	return payload, nil
}
