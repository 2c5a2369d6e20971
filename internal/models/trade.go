package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trade represents one user's position in one stock.
//
// The derived columns (ProfitExpected through RateDifference) are a cache of
// the valuation engine's output at the moment the trade was last persisted.
// They are recomputed on every save and go stale if the stock's price changes
// without the trade being re-saved; they are never user-entered.
type Trade struct {
	Base
	UserID  uint `gorm:"not null;index" json:"user_id"`
	StockID uint `gorm:"not null;index" json:"stock_id"`

	Quantity    int64           `gorm:"not null" json:"quantity"`
	BuyingPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"buying_price"`
	BuyDate     time.Time       `gorm:"not null" json:"buy_date"`

	// Targets. A target or stop of exactly zero is treated as unset.
	TargetPrice decimal.NullDecimal `gorm:"column:mtp;type:numeric(10,2)" json:"mtp"`
	StopLoss    decimal.NullDecimal `gorm:"column:msl;type:numeric(10,2)" json:"msl"`

	Comments string `json:"comments"`

	// Derived fields, written by the valuation engine.
	ProfitExpected decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"profit_expected"`
	ProfitPercent  decimal.NullDecimal `gorm:"type:numeric(5,2)" json:"profit_percent"`
	LossExpected   decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"loss_expected"`
	LossRecent     decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"loss_recent"`
	PLRatio        decimal.NullDecimal `gorm:"type:numeric(5,2)" json:"pl_ratio"`
	RateDifference decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"rate_difference"`

	// Relationships
	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Stock Stock `gorm:"foreignKey:StockID" json:"stock"`
}
