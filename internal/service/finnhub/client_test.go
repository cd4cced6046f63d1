package finnhub

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"FinGather/pkg/logger"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stdout"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func newTestServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.URL.Query().Get("token") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

func TestSnapshot(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/stock/profile2": `{"name":"The Cheesecake Factory","exchange":"NASDAQ","finnhubIndustry":"Restaurants","description":"Operates upscale casual dining restaurants.","marketCapitalization":2400}`,
		"/stock/metric":   `{"metric":{"peTTM":18.2,"pb":3.1,"beta":1.4,"52WeekHigh":58.99,"52WeekLow":32.1,"currentDividendYieldTTM":2.2}}`,
		"/stock/recommendation": `[
			{"period":"2025-05-01","strongBuy":3,"buy":5,"hold":8,"sell":1,"strongSell":0}
		]`,
		"/stock/earnings": `[
			{"period":"2025-03-31","year":2025,"quarter":1,"estimate":0.81,"actual":0.93,"surprisePercent":14.8}
		]`,
	})
	defer srv.Close()

	c := New("test-key", srv.URL, 5*time.Second, newTestLogger(t))
	snap, err := c.Snapshot(context.Background(), "CAKE")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	if snap.Name != "The Cheesecake Factory" {
		t.Fatalf("unexpected name %q", snap.Name)
	}
	if snap.Description != "Operates upscale casual dining restaurants." {
		t.Fatalf("unexpected description %q", snap.Description)
	}
	if snap.MarketCap == nil || *snap.MarketCap != 2400e6 {
		t.Fatalf("market cap must be scaled from millions, got %v", snap.MarketCap)
	}
	if snap.PETrailing == nil || *snap.PETrailing != 18.2 {
		t.Fatalf("unexpected pe %v", snap.PETrailing)
	}
	if snap.High52W == nil || *snap.High52W != 58.99 {
		t.Fatalf("unexpected 52w high %v", snap.High52W)
	}
	if len(snap.Recommendations) != 1 || snap.Recommendations[0].Hold != 8 {
		t.Fatalf("unexpected recommendations %+v", snap.Recommendations)
	}
	if len(snap.Earnings) != 1 || snap.Earnings[0].Actual == nil || *snap.Earnings[0].Actual != 0.93 {
		t.Fatalf("unexpected earnings %+v", snap.Earnings)
	}
}

func TestSnapshotDegradesPerSection(t *testing.T) {
	// only the profile endpoint exists; everything else 404s
	srv := newTestServer(t, map[string]string{
		"/stock/profile2": `{"name":"Acme","marketCapitalization":10}`,
	})
	defer srv.Close()

	c := New("test-key", srv.URL, 5*time.Second, newTestLogger(t))
	snap, err := c.Snapshot(context.Background(), "ACME")
	if err != nil {
		t.Fatalf("snapshot must not fail on partial upstream outage: %v", err)
	}
	if snap.Name != "Acme" {
		t.Fatalf("unexpected name %q", snap.Name)
	}
	if snap.PETrailing != nil || len(snap.Recommendations) != 0 {
		t.Fatalf("failed sections must stay empty, got %+v", snap)
	}
}

func TestCompanyNews(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/company-news": `[
			{"headline":"Earnings beat","source":"Newswire","summary":"...","url":"https://example.com/1","datetime":1748680000},
			{"headline":"","source":"Spam","datetime":1748680001},
			{"headline":"Expansion","source":"Daily","datetime":1748680002},
			{"headline":"Third","source":"Daily","datetime":1748680003}
		]`,
	})
	defer srv.Close()

	c := New("test-key", srv.URL, 5*time.Second, newTestLogger(t))
	to := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	articles, err := c.CompanyNews(context.Background(), "CAKE", to.AddDate(0, 0, -7), to, 2)
	if err != nil {
		t.Fatalf("company news: %v", err)
	}

	if len(articles) != 2 {
		t.Fatalf("expected the limit to cap results, got %d", len(articles))
	}
	if articles[0].Headline != "Earnings beat" || articles[1].Headline != "Expansion" {
		t.Fatalf("headline-less items must be skipped, got %+v", articles)
	}
}

func TestCompanyNewsUpstreamError(t *testing.T) {
	srv := newTestServer(t, map[string]string{})
	defer srv.Close()

	c := New("test-key", srv.URL, 5*time.Second, newTestLogger(t))
	if _, err := c.CompanyNews(context.Background(), "CAKE", time.Now().AddDate(0, 0, -7), time.Now(), 10); err == nil {
		t.Fatalf("expected an error on upstream failure")
	}
}
