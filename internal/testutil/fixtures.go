package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"tradefolio/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestStock creates a stock without quote data.
func CreateTestStock(t *testing.T, db *gorm.DB, symbol string) *models.Stock {
	t.Helper()

	stock := &models.Stock{
		Symbol: symbol,
		Name:   fmt.Sprintf("Test Company %d", nextID()),
	}
	if err := db.Create(stock).Error; err != nil {
		t.Fatalf("failed to create test stock: %v", err)
	}
	return stock
}

// CreateTestStockWithPrice creates a stock with a current price.
func CreateTestStockWithPrice(t *testing.T, db *gorm.DB, symbol, price string) *models.Stock {
	t.Helper()

	p, err := decimal.NewFromString(price)
	if err != nil {
		t.Fatalf("invalid test price %q: %v", price, err)
	}

	stock := &models.Stock{
		Symbol:       symbol,
		Name:         fmt.Sprintf("Test Company %d", nextID()),
		CurrentPrice: decimal.NullDecimal{Decimal: p, Valid: true},
	}
	if err := db.Create(stock).Error; err != nil {
		t.Fatalf("failed to create test stock: %v", err)
	}
	return stock
}

// CreateTestTrade creates a trade for the given user and stock. Derived
// columns are left untouched; tests that need them go through the service.
func CreateTestTrade(t *testing.T, db *gorm.DB, userID, stockID uint, quantity int64, buyingPrice string) *models.Trade {
	t.Helper()

	p, err := decimal.NewFromString(buyingPrice)
	if err != nil {
		t.Fatalf("invalid test buying price %q: %v", buyingPrice, err)
	}

	trade := &models.Trade{
		UserID:      userID,
		StockID:     stockID,
		Quantity:    quantity,
		BuyingPrice: p,
		BuyDate:     time.Now().AddDate(0, 0, -int(nextID()%30)),
	}
	if err := db.Create(trade).Error; err != nil {
		t.Fatalf("failed to create test trade: %v", err)
	}
	return trade
}
