package services

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "tradefolio/internal/errors"
	"tradefolio/internal/models"
	"tradefolio/internal/valuation"
)

var hundred = decimal.NewFromInt(100)

// portfolioService aggregates a user's trades into a report.
type portfolioService struct {
	db *gorm.DB
}

// NewPortfolioService creates a new PortfolioServicer.
func NewPortfolioService(db *gorm.DB) PortfolioServicer {
	return &portfolioService{db: db}
}

// rank orders holdings for the profit and loss sort keys. A holding without
// a quote ranks as a full loss of its cost, which floats unquoted positions
// to the top of a loss-sorted report.
func rank(h Holding) decimal.Decimal {
	qty := decimal.NewFromInt(h.Trade.Quantity)
	var current decimal.Decimal
	if h.Trade.Stock.CurrentPrice.Valid {
		current = h.Trade.Stock.CurrentPrice.Decimal
	}
	return qty.Mul(current).Sub(qty.Mul(h.Trade.BuyingPrice))
}

// GetPortfolio builds the report for one user: optional exact-symbol filter,
// one of four sort orders, and the aggregate totals.
//
// total_value only counts holdings with a current price while total_cost
// counts all of them. The mismatch is intentional; the unquoted counter lets
// callers see when the two totals cover different sets.
func (s *portfolioService) GetPortfolio(userID uint, q PortfolioQuery) (*PortfolioReport, error) {
	var trades []models.Trade
	if err := s.db.Preload("Stock").
		Where("user_id = ?", userID).
		Find(&trades).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	symbol := strings.ToUpper(strings.TrimSpace(q.Symbol))

	report := &PortfolioReport{Holdings: make([]Holding, 0, len(trades))}
	for _, trade := range trades {
		if symbol != "" && trade.Stock.Symbol != symbol {
			continue
		}

		res := valuation.Compute(valuation.Inputs{
			Quantity:     trade.Quantity,
			BuyingPrice:  trade.BuyingPrice,
			TargetPrice:  trade.TargetPrice,
			StopLoss:     trade.StopLoss,
			CurrentPrice: trade.Stock.CurrentPrice,
		})

		report.TotalCost = report.TotalCost.Add(res.TotalCost)
		if res.CurrentValue.Valid {
			report.TotalValue = report.TotalValue.Add(res.CurrentValue.Decimal)
		} else {
			report.Unquoted++
		}

		report.Holdings = append(report.Holdings, Holding{Trade: trade, Valuation: res})
	}

	sortHoldings(report.Holdings, q.Sort)

	report.Count = len(report.Holdings)
	report.UnrealizedPL = report.TotalValue.Sub(report.TotalCost)
	if !report.TotalCost.IsZero() {
		report.PLPercentage = report.UnrealizedPL.Div(report.TotalCost).Mul(hundred).Round(2)
	}

	return report, nil
}

// sortHoldings orders holdings by the given key, defaulting to symbol.
func sortHoldings(holdings []Holding, key string) {
	switch key {
	case "date":
		sort.SliceStable(holdings, func(i, j int) bool {
			return holdings[i].Trade.BuyDate.After(holdings[j].Trade.BuyDate)
		})
	case "profit":
		sort.SliceStable(holdings, func(i, j int) bool {
			return rank(holdings[i]).GreaterThan(rank(holdings[j]))
		})
	case "loss":
		sort.SliceStable(holdings, func(i, j int) bool {
			return rank(holdings[i]).LessThan(rank(holdings[j]))
		})
	default:
		sort.SliceStable(holdings, func(i, j int) bool {
			return holdings[i].Trade.Stock.Symbol < holdings[j].Trade.Stock.Symbol
		})
	}
}
