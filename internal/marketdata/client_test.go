package marketdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// newTestClient builds a PSXClient pointed at a test server.
func newTestClient(baseURL string) *PSXClient {
	return &PSXClient{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(2 * time.Second).
			SetHeader("User-Agent", "Mozilla/5.0").
			SetHeader("Accept", "application/json").
			SetHeader("Referer", "https://psxterminal.com/"),
		limiter: rate.NewLimiter(rate.Inf, 1),
		logger:  zap.NewNop().Sugar(),
	}
}

func TestFetchQuote(t *testing.T) {
	t.Run("success_full_payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/ticks/REG/OGDC" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success":true,"data":{"price":113.5,"change":1.25,"changePercent":1.11,"volume":1500000,"high":114.0,"low":111.75}}`))
		}))
		defer server.Close()

		q, err := newTestClient(server.URL).FetchQuote(context.Background(), "ogdc")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Symbol != "OGDC" {
			t.Errorf("expected symbol OGDC, got %s", q.Symbol)
		}
		if q.Name != "Oil & Gas Development Company Limited" {
			t.Errorf("unexpected name %q", q.Name)
		}
		if q.Price.String() != "113.5" {
			t.Errorf("expected price 113.5, got %s", q.Price)
		}
		if !q.Change.Valid || q.Change.Decimal.String() != "1.25" {
			t.Errorf("expected change 1.25, got %+v", q.Change)
		}
		if q.Volume == nil || *q.Volume != 1500000 {
			t.Errorf("expected volume 1500000, got %v", q.Volume)
		}
		if !q.High.Valid || !q.Low.Valid {
			t.Error("expected high and low to be set")
		}
	})

	t.Run("unknown_symbol_falls_back_to_ticker_name", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success":true,"data":{"price":9.99}}`))
		}))
		defer server.Close()

		q, err := newTestClient(server.URL).FetchQuote(context.Background(), "ZZZZ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Name != "ZZZZ" {
			t.Errorf("expected fallback name ZZZZ, got %q", q.Name)
		}
		// Optional fields missing from the payload stay undefined.
		if q.Change.Valid || q.High.Valid || q.Low.Valid {
			t.Error("expected optional fields to be undefined")
		}
		if q.Volume != nil {
			t.Errorf("expected nil volume, got %v", q.Volume)
		}
	})

	t.Run("browser_headers_sent", func(t *testing.T) {
		var gotUA, gotAccept, gotReferer string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			gotAccept = r.Header.Get("Accept")
			gotReferer = r.Header.Get("Referer")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success":true,"data":{"price":1}}`))
		}))
		defer server.Close()

		if _, err := newTestClient(server.URL).FetchQuote(context.Background(), "PSO"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotUA != "Mozilla/5.0" {
			t.Errorf("expected browser user agent, got %q", gotUA)
		}
		if gotAccept != "application/json" {
			t.Errorf("expected JSON accept header, got %q", gotAccept)
		}
		if gotReferer != "https://psxterminal.com/" {
			t.Errorf("unexpected referer %q", gotReferer)
		}
	})

	t.Run("unsuccessful_flag", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success":false}`))
		}))
		defer server.Close()

		if _, err := newTestClient(server.URL).FetchQuote(context.Background(), "PSO"); err != ErrNoData {
			t.Errorf("expected ErrNoData, got %v", err)
		}
	})

	t.Run("missing_price", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success":true,"data":{"volume":100}}`))
		}))
		defer server.Close()

		if _, err := newTestClient(server.URL).FetchQuote(context.Background(), "PSO"); err != ErrNoData {
			t.Errorf("expected ErrNoData, got %v", err)
		}
	})

	t.Run("bad_status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		if _, err := newTestClient(server.URL).FetchQuote(context.Background(), "PSO"); err != ErrNoData {
			t.Errorf("expected ErrNoData, got %v", err)
		}
	})

	t.Run("malformed_body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success":`))
		}))
		defer server.Close()

		if _, err := newTestClient(server.URL).FetchQuote(context.Background(), "PSO"); err != ErrNoData {
			t.Errorf("expected ErrNoData, got %v", err)
		}
	})

	t.Run("transport_error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close() // refuse connections

		if _, err := newTestClient(server.URL).FetchQuote(context.Background(), "PSO"); err != ErrNoData {
			t.Errorf("expected ErrNoData, got %v", err)
		}
	})

	t.Run("empty_symbol", func(t *testing.T) {
		if _, err := newTestClient("http://127.0.0.1:0").FetchQuote(context.Background(), "  "); err != ErrNoData {
			t.Errorf("expected ErrNoData, got %v", err)
		}
	})
}
