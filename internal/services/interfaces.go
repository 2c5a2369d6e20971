package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"tradefolio/internal/marketdata"
	"tradefolio/internal/models"
	"tradefolio/internal/pagination"
	"tradefolio/internal/valuation"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
}

// StockServicer defines the contract for stock-related business logic.
type StockServicer interface {
	CreateStock(ctx context.Context, symbol, name string) (*models.Stock, error)
	GetStocks(symbol string, page pagination.PageRequest) (*pagination.PageResponse[models.Stock], error)
	GetStockByID(id uint) (*models.Stock, error)
	UpdateStock(ctx context.Context, id uint, name string) (*models.Stock, error)
	DeleteStock(id uint) error
}

// TradeInput holds the user-entered fields of a trade. The derived columns
// are never part of the input; they are recomputed on every persist.
type TradeInput struct {
	StockID     uint
	Quantity    int64
	BuyingPrice decimal.Decimal
	BuyDate     time.Time
	TargetPrice decimal.NullDecimal
	StopLoss    decimal.NullDecimal
	Comments    string
}

// TradeServicer defines the contract for trade-related business logic.
// All operations are scoped to the owning user.
type TradeServicer interface {
	CreateTrade(userID uint, in TradeInput) (*models.Trade, error)
	GetUserTrades(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Trade], error)
	GetTradeByID(userID, tradeID uint) (*models.Trade, error)
	UpdateTrade(userID, tradeID uint, in TradeInput) (*models.Trade, error)
	DeleteTrade(userID, tradeID uint) error
}

// Selection names the stocks a batch refresh should cover. Exactly one mode
// must be set; when several are, the priority order is All, then IDs, then
// Symbols.
type Selection struct {
	All     bool
	IDs     []uint
	Symbols []string
}

// RefreshError records one stock that could not be refreshed. The batch
// continues past it.
type RefreshError struct {
	StockID uint   `json:"stock_id,omitempty"`
	Symbol  string `json:"symbol"`
	Reason  string `json:"reason"`
}

// BatchResult is the outcome of one batch refresh: the stocks that were
// updated and the per-stock failures, side by side.
type BatchResult struct {
	Updated int            `json:"updated"`
	Stocks  []models.Stock `json:"stocks"`
	Errors  []RefreshError `json:"errors"`
}

// SyncServicer defines the contract for quote synchronization.
type SyncServicer interface {
	RefreshSymbol(ctx context.Context, symbol string) (*marketdata.Quote, error)
	RefreshBatch(ctx context.Context, sel Selection) (*BatchResult, error)
}

// PortfolioQuery holds the optional filter and sort of a portfolio report.
type PortfolioQuery struct {
	Symbol string
	Sort   string
}

// Holding pairs a trade with its freshly computed valuation.
type Holding struct {
	Trade     models.Trade     `json:"trade"`
	Valuation valuation.Result `json:"valuation"`
}

// PortfolioReport is the aggregate view over a user's holdings.
//
// TotalCost sums every holding; TotalValue sums only holdings whose stock has
// a current price. The two totals deliberately cover different sets, so
// UnrealizedPL understates losses whenever quotes are missing. Consumers that
// need a like-for-like comparison should check Unquoted first.
type PortfolioReport struct {
	Holdings     []Holding       `json:"holdings"`
	Count        int             `json:"count"`
	Unquoted     int             `json:"unquoted"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	TotalValue   decimal.Decimal `json:"total_value"`
	UnrealizedPL decimal.Decimal `json:"unrealized_pl"`
	PLPercentage decimal.Decimal `json:"pl_percentage"`
}

// PortfolioServicer defines the contract for portfolio aggregation.
type PortfolioServicer interface {
	GetPortfolio(userID uint, q PortfolioQuery) (*PortfolioReport, error)
}
