package services

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tradefolio/internal/marketdata"
	"tradefolio/internal/models"
	"tradefolio/internal/testutil"
)

// fakeFetcher serves canned quotes by symbol and records every call.
// Symbols without an entry behave like a provider outage.
type fakeFetcher struct {
	quotes map[string]*marketdata.Quote
	calls  []string
}

func (f *fakeFetcher) FetchQuote(_ context.Context, symbol string) (*marketdata.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	f.calls = append(f.calls, symbol)
	if q, ok := f.quotes[symbol]; ok {
		return q, nil
	}
	return nil, marketdata.ErrNoData
}

func testQuote(symbol, price string) *marketdata.Quote {
	p, err := decimal.NewFromString(price)
	if err != nil {
		panic(err)
	}
	return &marketdata.Quote{
		Symbol: symbol,
		Name:   marketdata.CompanyName(symbol),
		Price:  p,
	}
}

func TestRefreshSymbol(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	fetcher := &fakeFetcher{quotes: map[string]*marketdata.Quote{
		"OGDC": testQuote("OGDC", "113.50"),
	}}
	svc := NewSyncService(db, fetcher, zap.NewNop().Sugar())

	t.Run("known symbol", func(t *testing.T) {
		quote, err := svc.RefreshSymbol(context.Background(), "OGDC")
		testutil.AssertNoError(t, err)
		if !quote.Price.Equal(decimal.RequireFromString("113.50")) {
			t.Errorf("expected price 113.50, got %s", quote.Price)
		}
	})

	t.Run("unknown symbol maps to not found", func(t *testing.T) {
		_, err := svc.RefreshSymbol(context.Background(), "NOPE")
		testutil.AssertAppError(t, err, "NO_QUOTE_DATA")
	})
}

func TestRefreshBatch(t *testing.T) {
	t.Run("partial failure runs to completion", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		testutil.CreateTestStockWithPrice(t, db, "OGDC", "100.00")
		testutil.CreateTestStock(t, db, "PSO")
		testutil.CreateTestStock(t, db, "HUBC")

		fetcher := &fakeFetcher{quotes: map[string]*marketdata.Quote{
			"OGDC": testQuote("OGDC", "113.50"),
			"HUBC": testQuote("HUBC", "88.20"),
		}}
		svc := NewSyncService(db, fetcher, zap.NewNop().Sugar())

		result, err := svc.RefreshBatch(context.Background(), Selection{All: true})
		testutil.AssertNoError(t, err)

		if result.Updated != 2 {
			t.Errorf("expected 2 updated, got %d", result.Updated)
		}
		if len(result.Errors) != 1 {
			t.Fatalf("expected 1 error, got %d", len(result.Errors))
		}
		if result.Errors[0].Symbol != "PSO" {
			t.Errorf("expected failing symbol PSO, got %s", result.Errors[0].Symbol)
		}
		if len(fetcher.calls) != 3 {
			t.Errorf("expected all 3 stocks fetched, got %d", len(fetcher.calls))
		}

		// New prices persisted for the two that succeeded.
		var ogdc models.Stock
		testutil.AssertNoError(t, db.Where("symbol = ?", "OGDC").First(&ogdc).Error)
		if !ogdc.CurrentPrice.Valid || !ogdc.CurrentPrice.Decimal.Equal(decimal.RequireFromString("113.50")) {
			t.Errorf("expected OGDC price 113.50, got %+v", ogdc.CurrentPrice)
		}
		// Batch refreshes are numeric-only; stored names stay put.
		if ogdc.Name == marketdata.CompanyName("OGDC") {
			t.Errorf("batch refresh must not rewrite the stored name, got %q", ogdc.Name)
		}
	})

	t.Run("failed fetch preserves known price", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		stock := testutil.CreateTestStockWithPrice(t, db, "MARI", "412.75")
		svc := NewSyncService(db, &fakeFetcher{}, zap.NewNop().Sugar())

		result, err := svc.RefreshBatch(context.Background(), Selection{IDs: []uint{stock.ID}})
		testutil.AssertNoError(t, err)
		if result.Updated != 0 || len(result.Errors) != 1 {
			t.Fatalf("expected 0 updated and 1 error, got %d/%d", result.Updated, len(result.Errors))
		}

		var reloaded models.Stock
		testutil.AssertNoError(t, db.First(&reloaded, stock.ID).Error)
		if !reloaded.CurrentPrice.Valid || !reloaded.CurrentPrice.Decimal.Equal(decimal.RequireFromString("412.75")) {
			t.Errorf("stale price should survive a failed fetch, got %+v", reloaded.CurrentPrice)
		}
	})

	t.Run("symbols selector normalizes case", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		testutil.CreateTestStock(t, db, "LUCK")
		fetcher := &fakeFetcher{quotes: map[string]*marketdata.Quote{
			"LUCK": testQuote("LUCK", "999.99"),
		}}
		svc := NewSyncService(db, fetcher, zap.NewNop().Sugar())

		result, err := svc.RefreshBatch(context.Background(), Selection{Symbols: []string{" luck "}})
		testutil.AssertNoError(t, err)
		if result.Updated != 1 {
			t.Errorf("expected 1 updated, got %d", result.Updated)
		}
	})

	t.Run("all wins over other selectors", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		testutil.CreateTestStock(t, db, "UBL")
		testutil.CreateTestStock(t, db, "MCB")
		fetcher := &fakeFetcher{quotes: map[string]*marketdata.Quote{
			"UBL": testQuote("UBL", "150.00"),
			"MCB": testQuote("MCB", "200.00"),
		}}
		svc := NewSyncService(db, fetcher, zap.NewNop().Sugar())

		result, err := svc.RefreshBatch(context.Background(), Selection{All: true, Symbols: []string{"UBL"}})
		testutil.AssertNoError(t, err)
		if result.Updated != 2 {
			t.Errorf("expected all to override symbols, got %d updated", result.Updated)
		}
	})

	t.Run("no selector", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		svc := NewSyncService(db, &fakeFetcher{}, zap.NewNop().Sugar())
		_, err := svc.RefreshBatch(context.Background(), Selection{})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("selection matches nothing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		svc := NewSyncService(db, &fakeFetcher{}, zap.NewNop().Sugar())
		_, err := svc.RefreshBatch(context.Background(), Selection{Symbols: []string{"GHOST"}})
		testutil.AssertAppError(t, err, "EMPTY_SELECTION")
	})
}
