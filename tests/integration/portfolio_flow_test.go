package integration

import (
	"fmt"
	"net/http"
	"testing"
)

// TestPortfolioFlow walks the main path: register, create stocks with and
// without quotes, record trades, and read the aggregated report.
func TestPortfolioFlow(t *testing.T) {
	app := setupApp(t)
	app.Fetcher.setQuote("OGDC", "110.00")

	token, _ := app.registerUser(t, "portfolio@test.com", "password123")

	quotedID := app.createStock(t, token, "OGDC")
	unquotedID := app.createStock(t, token, "NEWCO")

	// One quoted position, one position the provider knows nothing about.
	body := fmt.Sprintf(`{"stock_id":%d,"quantity":10,"buying_price":"100.00","buy_date":"2025-06-02T00:00:00Z","mtp":"120.00","msl":"90.00"}`, int(quotedID))
	rec := app.request("POST", "/api/v1/trades", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create trade failed: %d %s", rec.Code, rec.Body.String())
	}
	trade := parseJSON(t, rec)
	if trade["profit_expected"] != "200" {
		t.Errorf("expected profit_expected 200, got %v", trade["profit_expected"])
	}
	if trade["pl_ratio"] != "2" {
		t.Errorf("expected pl_ratio 2, got %v", trade["pl_ratio"])
	}

	body = fmt.Sprintf(`{"stock_id":%d,"quantity":5,"buying_price":"40.00","buy_date":"2025-06-03T00:00:00Z"}`, int(unquotedID))
	rec = app.request("POST", "/api/v1/trades", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create trade failed: %d %s", rec.Code, rec.Body.String())
	}

	// The report: cost counts both positions, value only the quoted one.
	rec = app.request("GET", "/api/v1/portfolio", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("portfolio failed: %d %s", rec.Code, rec.Body.String())
	}
	report := parseJSON(t, rec)
	if report["total_cost"] != "1200" {
		t.Errorf("expected total_cost 1200, got %v", report["total_cost"])
	}
	if report["total_value"] != "1100" {
		t.Errorf("expected total_value 1100, got %v", report["total_value"])
	}
	if report["unquoted"].(float64) != 1 {
		t.Errorf("expected 1 unquoted holding, got %v", report["unquoted"])
	}

	// Symbol filter narrows both holdings and totals.
	rec = app.request("GET", "/api/v1/portfolio?symbol=OGDC", "", token)
	report = parseJSON(t, rec)
	if report["count"].(float64) != 1 || report["total_cost"] != "1000" {
		t.Errorf("filtered report wrong: count=%v cost=%v", report["count"], report["total_cost"])
	}

	// Invalid sort key is rejected at binding.
	rec = app.request("GET", "/api/v1/portfolio?sort=sideways", "", token)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad sort key, got %d", rec.Code)
	}

	// Another user sees an empty portfolio.
	otherToken, _ := app.registerUser(t, "other@test.com", "password123")
	rec = app.request("GET", "/api/v1/portfolio", "", otherToken)
	report = parseJSON(t, rec)
	if report["count"].(float64) != 0 {
		t.Errorf("expected empty portfolio for other user, got %v holdings", report["count"])
	}
}

func TestPortfolioRequiresAuth(t *testing.T) {
	app := setupApp(t)
	rec := app.request("GET", "/api/v1/portfolio", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", rec.Code)
	}
}
