// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// stockSymbolRegex matches PSX-style ticker symbols: letters and digits,
// up to ten characters. Case is normalized later, so both cases pass.
var stockSymbolRegex = regexp.MustCompile(`^[A-Za-z0-9]{1,10}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("stock_symbol", validateStockSymbol)
		_ = v.RegisterValidation("sort_key", validateSortKey)
	}
}

func validateStockSymbol(fl validator.FieldLevel) bool {
	return stockSymbolRegex.MatchString(fl.Field().String())
}

func validateSortKey(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "symbol", "date", "profit", "loss":
		return true
	}
	return false
}
