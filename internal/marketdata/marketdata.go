// Package marketdata retrieves live quotes from the PSX Terminal API.
//
// The package boundary is deliberately failure-proof: every expected failure
// mode (network error, timeout, bad status, unsuccessful payload, missing
// price) is normalized to ErrNoData so that transport errors never cross
// into the synchronization or valuation logic.
package marketdata

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNoData is the single outcome for any expected fetch failure. Callers
// decide whether to retry later; the reason is only logged diagnostically.
var ErrNoData = errors.New("no quote data")

// Quote is the normalized result of one provider call. Price is always
// present; the session statistics are optional because the provider omits
// them for thinly traded symbols.
type Quote struct {
	Symbol        string              `json:"symbol"`
	Name          string              `json:"name"`
	Price         decimal.Decimal     `json:"price"`
	Change        decimal.NullDecimal `json:"change"`
	ChangePercent decimal.NullDecimal `json:"change_percent"`
	Volume        *int64              `json:"volume"`
	High          decimal.NullDecimal `json:"high"`
	Low           decimal.NullDecimal `json:"low"`
}

// Fetcher fetches the current quote for a single symbol.
type Fetcher interface {
	// FetchQuote returns the quote for the given symbol, or ErrNoData if
	// no quote could be obtained for any expected reason.
	FetchQuote(ctx context.Context, symbol string) (*Quote, error)
}
