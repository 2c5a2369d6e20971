package models

import "github.com/shopspring/decimal"

// Stock represents a tradable instrument. The symbol is unique and immutable
// after creation; the quote fields are nullable and only ever written by the
// price synchronizer (a stock created before its first successful fetch has
// no current price at all).
type Stock struct {
	Base
	Symbol        string              `gorm:"not null;uniqueIndex" json:"symbol"`
	Name          string              `gorm:"not null" json:"name"`
	CurrentPrice  decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"current_price"`
	Change        decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"change"`
	ChangePercent decimal.NullDecimal `gorm:"type:numeric(6,2)" json:"change_percent"`
	Volume        *int64              `json:"volume"`
	High          decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"high"`
	Low           decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"low"`

	// Relationships
	Trades []Trade `gorm:"foreignKey:StockID;constraint:OnDelete:CASCADE" json:"trades,omitempty"`
}
