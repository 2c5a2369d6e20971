package marketdata

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"tradefolio/internal/config"
)

// tickResponse is the PSX Terminal /ticks response envelope.
type tickResponse struct {
	Success bool      `json:"success"`
	Data    *tickData `json:"data"`
}

// tickData carries the market fields of a single tick. Everything is a
// pointer because the provider omits fields it has no data for.
type tickData struct {
	Price         *float64 `json:"price"`
	Change        *float64 `json:"change"`
	ChangePercent *float64 `json:"changePercent"`
	Volume        *int64   `json:"volume"`
	High          *float64 `json:"high"`
	Low           *float64 `json:"low"`
}

// PSXClient fetches quotes from the PSX Terminal REST API.
type PSXClient struct {
	client  *resty.Client
	limiter *rate.Limiter
	logger  *zap.SugaredLogger
}

// ensure PSXClient implements the Fetcher interface
var _ Fetcher = (*PSXClient)(nil)

// NewPSXClient creates a PSX Terminal client. The provider expects
// browser-identifying headers; requests without them get blocked.
func NewPSXClient(cfg *config.Config, logger *zap.SugaredLogger) *PSXClient {
	client := resty.New().
		SetBaseURL(cfg.ProviderBaseURL).
		SetTimeout(cfg.ProviderTimeout).
		SetHeader("User-Agent", "Mozilla/5.0").
		SetHeader("Accept", "application/json").
		SetHeader("Referer", "https://psxterminal.com/")

	return &PSXClient{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(cfg.ProviderRateLimit), cfg.ProviderRateBurst),
		logger:  logger,
	}
}

// FetchQuote fetches the current quote for one symbol. The symbol is
// uppercased before being addressed; an empty symbol yields ErrNoData.
func (c *PSXClient) FetchQuote(ctx context.Context, symbol string) (*Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, ErrNoData
	}

	if err := c.limiter.Wait(ctx); err != nil {
		c.logger.Warnw("quote fetch aborted", "symbol", symbol, "error", err)
		return nil, ErrNoData
	}

	var payload tickResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&payload).
		Get("/ticks/REG/" + symbol)
	if err != nil {
		c.logger.Warnw("quote fetch failed", "symbol", symbol, "error", err)
		return nil, ErrNoData
	}
	if resp.StatusCode() != http.StatusOK {
		c.logger.Warnw("quote fetch bad status", "symbol", symbol, "status", resp.StatusCode())
		return nil, ErrNoData
	}
	if !payload.Success || payload.Data == nil || payload.Data.Price == nil {
		c.logger.Warnw("quote fetch incomplete payload", "symbol", symbol)
		return nil, ErrNoData
	}

	data := payload.Data
	return &Quote{
		Symbol:        symbol,
		Name:          CompanyName(symbol),
		Price:         decimal.NewFromFloat(*data.Price),
		Change:        optionalDecimal(data.Change),
		ChangePercent: optionalDecimal(data.ChangePercent),
		Volume:        data.Volume,
		High:          optionalDecimal(data.High),
		Low:           optionalDecimal(data.Low),
	}, nil
}

// optionalDecimal converts an optional float into a NullDecimal.
func optionalDecimal(f *float64) decimal.NullDecimal {
	if f == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: decimal.NewFromFloat(*f), Valid: true}
}
