package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "tradefolio/internal/errors"
	"tradefolio/internal/marketdata"
	"tradefolio/internal/models"
	"tradefolio/internal/pagination"
)

// stockService handles stock-related business logic.
type stockService struct {
	db      *gorm.DB
	fetcher marketdata.Fetcher
	logger  *zap.SugaredLogger
}

// NewStockService creates a new StockServicer.
func NewStockService(db *gorm.DB, fetcher marketdata.Fetcher, logger *zap.SugaredLogger) StockServicer {
	return &stockService{db: db, fetcher: fetcher, logger: logger}
}

// CreateStock creates a stock and enriches it with a live quote. A
// successful fetch is authoritative for the display name as well as the
// numbers; a failed fetch is tolerated and the stock is created without
// quote data, picking up its price on a later refresh.
func (s *stockService) CreateStock(ctx context.Context, symbol, name string) (*models.Stock, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "symbol is required")
	}

	var count int64
	s.db.Model(&models.Stock{}).Where("symbol = ?", symbol).Count(&count)
	if count > 0 {
		return nil, apperrors.ErrDuplicateStock
	}

	stock := &models.Stock{Symbol: symbol, Name: name}
	if stock.Name == "" {
		stock.Name = marketdata.CompanyName(symbol)
	}

	if quote, err := s.fetcher.FetchQuote(ctx, symbol); err == nil {
		applyQuote(stock, quote)
		stock.Name = quote.Name
	} else {
		s.logger.Infow("stock created without quote", "symbol", symbol)
	}

	if err := s.db.Create(stock).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return stock, nil
}

// GetStocks lists stocks in symbol order, optionally filtered by exact
// symbol (case-insensitive).
func (s *stockService) GetStocks(symbol string, page pagination.PageRequest) (*pagination.PageResponse[models.Stock], error) {
	page.Defaults()

	query := s.db.Model(&models.Stock{})
	if symbol != "" {
		query = query.Where("symbol = ?", strings.ToUpper(strings.TrimSpace(symbol)))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var stocks []models.Stock
	if err := query.Order("symbol ASC").Scopes(pagination.Paginate(page)).Find(&stocks).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(stocks, page.Page, page.PageSize, total)
	return &resp, nil
}

// GetStockByID retrieves a stock by ID
func (s *stockService) GetStockByID(id uint) (*models.Stock, error) {
	var stock models.Stock
	if err := s.db.First(&stock, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStockNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &stock, nil
}

// UpdateStock edits a stock's display name and refreshes its quote. The
// symbol is immutable after creation, and a successful fetch overrides the
// submitted name just as it does on create.
func (s *stockService) UpdateStock(ctx context.Context, id uint, name string) (*models.Stock, error) {
	stock, err := s.GetStockByID(id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		stock.Name = name
	}

	if quote, err := s.fetcher.FetchQuote(ctx, stock.Symbol); err == nil {
		applyQuote(stock, quote)
		stock.Name = quote.Name
	}

	if err := s.db.Save(stock).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return stock, nil
}

// DeleteStock removes a stock; its trades go with it.
func (s *stockService) DeleteStock(id uint) error {
	stock, err := s.GetStockByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Where("stock_id = ?", stock.ID).Delete(&models.Trade{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Delete(stock).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
