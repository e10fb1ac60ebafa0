package finnhub

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stockpredictor/backend/internal/errs"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New("test-key")
	c.baseURL = srv.URL
	return c
}

func TestQuoteParsesResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/quote" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("token") != "test-key" {
			t.Fatalf("api key not sent")
		}
		if r.URL.Query().Get("symbol") != "AAPL" {
			t.Fatalf("symbol not sent")
		}
		w.Write([]byte(`{"c":190.5,"d":1.5,"dp":0.79,"h":191.2,"l":188.1,"o":189.0,"pc":189.0,"t":1724932800}`))
	})

	q, err := c.Quote(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("Quote returned error: %v", err)
	}
	if q.Symbol != "AAPL" || q.CurrentPrice != 190.5 || q.PreviousClose != 189.0 {
		t.Fatalf("unexpected quote: %+v", q)
	}
}

func TestQuoteUnknownSymbol(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"c":0,"d":0,"dp":0,"h":0,"l":0,"o":0,"pc":0,"t":0}`))
	})

	_, err := c.Quote(context.Background(), "NOPE")
	if _, ok := err.(*errs.NotFoundError); !ok {
		t.Fatalf("got %T (%v), want *errs.NotFoundError", err, err)
	}
}

func TestCandlesNoData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"s":"no_data"}`))
	})

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	_, err := c.Candles(context.Background(), "AAPL", "D", from, to)
	if _, ok := err.(*errs.NotFoundError); !ok {
		t.Fatalf("got %T (%v), want *errs.NotFoundError", err, err)
	}
}

func TestServerErrorIsExternalServiceError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	_, err := c.Quote(context.Background(), "AAPL")
	svcErr, ok := err.(*errs.ExternalServiceError)
	if !ok {
		t.Fatalf("got %T (%v), want *errs.ExternalServiceError", err, err)
	}
	if !svcErr.Transient {
		t.Fatalf("5xx should be transient")
	}
}

func TestSearchParsesMatches(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count":2,"result":[{"symbol":"AAPL","description":"APPLE INC","type":"Common Stock"},{"symbol":"AAPL.MX","description":"APPLE INC","type":"Common Stock"}]}`))
	})

	matches, err := c.Search(context.Background(), "apple")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(matches) != 2 || matches[0].Symbol != "AAPL" {
		t.Fatalf("unexpected matches: %+v", matches)
	}
}
