package services

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "tradefolio/internal/errors"
	"tradefolio/internal/marketdata"
	"tradefolio/internal/models"
)

func defined(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// syncService keeps stored stock quotes in step with the market data
// provider.
type syncService struct {
	db      *gorm.DB
	fetcher marketdata.Fetcher
	logger  *zap.SugaredLogger
}

// NewSyncService creates a new SyncServicer.
func NewSyncService(db *gorm.DB, fetcher marketdata.Fetcher, logger *zap.SugaredLogger) SyncServicer {
	return &syncService{db: db, fetcher: fetcher, logger: logger}
}

// applyQuote copies a quote's market fields onto a stock, leaving the
// display name alone (batch refreshes are numeric-only; the single-stock
// create/update paths take the quote's name too). It is only ever called
// with a real quote, so a failed fetch can never null out a known price.
func applyQuote(stock *models.Stock, quote *marketdata.Quote) {
	stock.CurrentPrice = defined(quote.Price)
	stock.Change = quote.Change
	stock.ChangePercent = quote.ChangePercent
	stock.Volume = quote.Volume
	stock.High = quote.High
	stock.Low = quote.Low
}

// RefreshSymbol fetches the current quote for one symbol without touching
// storage. Any fetch failure surfaces as a not-found.
func (s *syncService) RefreshSymbol(ctx context.Context, symbol string) (*marketdata.Quote, error) {
	quote, err := s.fetcher.FetchQuote(ctx, symbol)
	if err != nil {
		return nil, apperrors.ErrNoQuoteData
	}
	return quote, nil
}

// resolve loads the stocks a selection covers. When several modes are set,
// All wins over IDs, which win over Symbols.
func (s *syncService) resolve(sel Selection) ([]models.Stock, error) {
	query := s.db.Model(&models.Stock{}).Order("symbol ASC")

	switch {
	case sel.All:
	case len(sel.IDs) > 0:
		query = query.Where("id IN ?", sel.IDs)
	case len(sel.Symbols) > 0:
		upper := make([]string, 0, len(sel.Symbols))
		for _, sym := range sel.Symbols {
			if sym = strings.ToUpper(strings.TrimSpace(sym)); sym != "" {
				upper = append(upper, sym)
			}
		}
		query = query.Where("symbol IN ?", upper)
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "refresh requires ids, symbols, or all")
	}

	var stocks []models.Stock
	if err := query.Find(&stocks).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(stocks) == 0 {
		return nil, apperrors.ErrEmptySelection
	}
	return stocks, nil
}

// RefreshBatch refreshes the quotes of every selected stock, one at a time.
// Each stock succeeds or fails on its own; the batch always runs to the end
// and reports both sides.
func (s *syncService) RefreshBatch(ctx context.Context, sel Selection) (*BatchResult, error) {
	stocks, err := s.resolve(sel)
	if err != nil {
		return nil, err
	}

	result := &BatchResult{
		Stocks: make([]models.Stock, 0, len(stocks)),
		Errors: make([]RefreshError, 0),
	}

	for i := range stocks {
		stock := &stocks[i]

		quote, err := s.fetcher.FetchQuote(ctx, stock.Symbol)
		if err != nil {
			result.Errors = append(result.Errors, RefreshError{
				StockID: stock.ID,
				Symbol:  stock.Symbol,
				Reason:  "no quote data",
			})
			continue
		}

		applyQuote(stock, quote)
		if err := s.db.Save(stock).Error; err != nil {
			s.logger.Errorw("quote persist failed", "symbol", stock.Symbol, "error", err)
			result.Errors = append(result.Errors, RefreshError{
				StockID: stock.ID,
				Symbol:  stock.Symbol,
				Reason:  "failed to persist quote",
			})
			continue
		}

		result.Stocks = append(result.Stocks, *stock)
	}

	result.Updated = len(result.Stocks)
	s.logger.Infow("batch refresh complete",
		"selected", len(stocks),
		"updated", result.Updated,
		"failed", len(result.Errors),
	)
	return result, nil
}
