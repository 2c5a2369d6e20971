// Package valuation computes the derived analytics fields of a trade.
//
// Compute is a pure function of the trade's input fields and the stock's
// current price. It has no side effects and is idempotent: the same inputs
// always produce the same outputs, digit for digit. Callers that persist a
// trade are expected to invoke it explicitly in their write path; nothing
// here touches storage.
package valuation

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Inputs are the user-entered fields a valuation depends on.
//
// TargetPrice (mtp) and StopLoss (msl) follow the convention that a zero
// price means "not set"; the same applies to CurrentPrice, so a stock
// without a fetched quote contributes no price-dependent fields.
type Inputs struct {
	Quantity     int64
	BuyingPrice  decimal.Decimal
	TargetPrice  decimal.NullDecimal
	StopLoss     decimal.NullDecimal
	CurrentPrice decimal.NullDecimal
}

// Result holds every derived field. Each NullDecimal is invalid when the
// field is undefined for the given inputs; PLPercent alone collapses
// "undefined" to zero, preserving the per-field conventions of the stored
// model (pl_percent reads 0 when no quote exists, profit_percent reads null).
type Result struct {
	TotalCost      decimal.Decimal     `json:"total_cost"`
	CurrentValue   decimal.NullDecimal `json:"current_value"`
	UnrealizedPL   decimal.NullDecimal `json:"unrealized_pl"`
	PLPercent      decimal.Decimal     `json:"pl_percent"`
	ProfitExpected decimal.NullDecimal `json:"profit_expected"`
	ProfitPercent  decimal.NullDecimal `json:"profit_percent"`
	LossExpected   decimal.NullDecimal `json:"loss_expected"`
	PLRatio        decimal.NullDecimal `json:"pl_ratio"`
	RateDifference decimal.NullDecimal `json:"rate_difference"`
	LossRecent     decimal.NullDecimal `json:"loss_recent"`
}

// value unwraps a NullDecimal under the "zero means unset" convention.
func value(d decimal.NullDecimal) (decimal.Decimal, bool) {
	if !d.Valid || d.Decimal.IsZero() {
		return decimal.Decimal{}, false
	}
	return d.Decimal, true
}

func defined(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// Compute derives all analytics fields from the given inputs.
func Compute(in Inputs) Result {
	var res Result

	qty := decimal.NewFromInt(in.Quantity)
	res.TotalCost = qty.Mul(in.BuyingPrice)

	cur, hasPrice := value(in.CurrentPrice)
	if hasPrice {
		currentValue := qty.Mul(cur)
		res.CurrentValue = defined(currentValue)

		unrealized := currentValue.Sub(res.TotalCost)
		res.UnrealizedPL = defined(unrealized)

		if !res.TotalCost.IsZero() {
			res.PLPercent = unrealized.Div(res.TotalCost).Mul(hundred).Round(2)
		}

		res.RateDifference = defined(cur.Sub(in.BuyingPrice))
	}

	mtp, hasTarget := value(in.TargetPrice)
	if hasTarget {
		res.ProfitExpected = defined(mtp.Sub(in.BuyingPrice).Mul(qty))

		// Percent return is undefined for a zero buying price, which is a
		// different state from "no target set".
		if !in.BuyingPrice.IsZero() {
			res.ProfitPercent = defined(mtp.Sub(in.BuyingPrice).Div(in.BuyingPrice).Mul(hundred).Round(2))
		}
	}

	msl, hasStop := value(in.StopLoss)
	if hasStop {
		res.LossExpected = defined(in.BuyingPrice.Sub(msl).Mul(qty))
	}

	if hasTarget && hasStop && !in.BuyingPrice.IsZero() {
		profitPerShare := mtp.Sub(in.BuyingPrice)
		lossPerShare := in.BuyingPrice.Sub(msl)
		// A non-positive loss per share makes the ratio meaningless.
		if lossPerShare.IsPositive() {
			res.PLRatio = defined(profitPerShare.Div(lossPerShare).Round(2))
		}
	}

	// Recent loss measures any unrealized dip below cost, not whether the
	// stop level has been reached.
	if hasStop && hasPrice && cur.LessThan(in.BuyingPrice) {
		res.LossRecent = defined(in.BuyingPrice.Sub(cur).Mul(qty))
	}

	return res
}
