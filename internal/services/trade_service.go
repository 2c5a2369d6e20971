package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "tradefolio/internal/errors"
	"tradefolio/internal/models"
	"tradefolio/internal/pagination"
	"tradefolio/internal/valuation"
)

// tradeService handles trade-related business logic. Every persist runs the
// valuation engine so the stored derived columns always reflect the trade's
// inputs and the stock's price at save time.
type tradeService struct {
	db *gorm.DB
}

// NewTradeService creates a new TradeServicer.
func NewTradeService(db *gorm.DB) TradeServicer {
	return &tradeService{db: db}
}

// validateInput rejects trades that could not be valued meaningfully.
func validateInput(in TradeInput) error {
	if in.Quantity <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "quantity must be positive")
	}
	if in.BuyingPrice.IsNegative() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "buying price cannot be negative")
	}
	if in.TargetPrice.Valid && in.TargetPrice.Decimal.IsNegative() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "target price cannot be negative")
	}
	if in.StopLoss.Valid && in.StopLoss.Decimal.IsNegative() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "stop loss cannot be negative")
	}
	if in.BuyDate.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "buy date is required")
	}
	return nil
}

// revalue recomputes the trade's derived columns against the given stock.
func revalue(trade *models.Trade, stock *models.Stock) {
	res := valuation.Compute(valuation.Inputs{
		Quantity:     trade.Quantity,
		BuyingPrice:  trade.BuyingPrice,
		TargetPrice:  trade.TargetPrice,
		StopLoss:     trade.StopLoss,
		CurrentPrice: stock.CurrentPrice,
	})
	trade.ProfitExpected = res.ProfitExpected
	trade.ProfitPercent = res.ProfitPercent
	trade.LossExpected = res.LossExpected
	trade.LossRecent = res.LossRecent
	trade.PLRatio = res.PLRatio
	trade.RateDifference = res.RateDifference
}

// CreateTrade records a new position for the user.
func (s *tradeService) CreateTrade(userID uint, in TradeInput) (*models.Trade, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	var stock models.Stock
	if err := s.db.First(&stock, in.StockID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStockNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	trade := &models.Trade{
		UserID:      userID,
		StockID:     stock.ID,
		Quantity:    in.Quantity,
		BuyingPrice: in.BuyingPrice,
		BuyDate:     in.BuyDate,
		TargetPrice: in.TargetPrice,
		StopLoss:    in.StopLoss,
		Comments:    in.Comments,
	}
	revalue(trade, &stock)

	if err := s.db.Create(trade).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	trade.Stock = stock
	return trade, nil
}

// GetUserTrades lists the user's trades, most recently recorded first.
func (s *tradeService) GetUserTrades(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Trade], error) {
	page.Defaults()

	query := s.db.Model(&models.Trade{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var trades []models.Trade
	if err := query.Preload("Stock").
		Order("created_at DESC, id DESC").
		Scopes(pagination.Paginate(page)).
		Find(&trades).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(trades, page.Page, page.PageSize, total)
	return &resp, nil
}

// GetTradeByID retrieves one of the user's trades. Trades belonging to other
// users are indistinguishable from missing ones.
func (s *tradeService) GetTradeByID(userID, tradeID uint) (*models.Trade, error) {
	var trade models.Trade
	if err := s.db.Preload("Stock").
		Where("id = ? AND user_id = ?", tradeID, userID).
		First(&trade).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTradeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &trade, nil
}

// UpdateTrade replaces the trade's input fields and recomputes its derived
// columns. The trade cannot be moved to another stock.
func (s *tradeService) UpdateTrade(userID, tradeID uint, in TradeInput) (*models.Trade, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	trade, err := s.GetTradeByID(userID, tradeID)
	if err != nil {
		return nil, err
	}

	trade.Quantity = in.Quantity
	trade.BuyingPrice = in.BuyingPrice
	trade.BuyDate = in.BuyDate
	trade.TargetPrice = in.TargetPrice
	trade.StopLoss = in.StopLoss
	trade.Comments = in.Comments
	revalue(trade, &trade.Stock)

	if err := s.db.Save(trade).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return trade, nil
}

// DeleteTrade removes one of the user's trades.
func (s *tradeService) DeleteTrade(userID, tradeID uint) error {
	trade, err := s.GetTradeByID(userID, tradeID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(trade).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
