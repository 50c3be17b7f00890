package finnhub

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSource_FetchDaily_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("symbol") != "AAPL" {
			t.Errorf("expected symbol AAPL, got %s", q.Get("symbol"))
		}
		if q.Get("resolution") != "D" {
			t.Errorf("expected resolution D, got %s", q.Get("resolution"))
		}
		if q.Get("token") != "test-key" {
			t.Errorf("expected token test-key, got %s", q.Get("token"))
		}
		if q.Get("from") == "" || q.Get("to") == "" {
			t.Error("expected from/to range parameters")
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"s": "ok",
			"t": [1735689600, 1735776000],
			"o": [150.0, 151.0],
			"h": [155.0, 156.0],
			"l": [149.0, 150.0],
			"c": [154.0, 155.0],
			"v": [1000000, 1100000]
		}`))
	}))
	defer server.Close()

	src := NewSource(Config{APIKey: "test-key", BaseURL: server.URL}, server.Client())
	src.now = func() time.Time { return time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC) }

	bars, err := src.FetchDaily(context.Background(), "AAPL", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}
	if bars[0].Symbol != "AAPL" || bars[0].Close != 154.0 || bars[0].Volume != 1000000 {
		t.Errorf("unexpected first bar: %+v", bars[0])
	}
}

func TestSource_FetchDaily_NoData(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"s": "no_data"}`))
	}))
	defer server.Close()

	src := NewSource(Config{APIKey: "test-key", BaseURL: server.URL}, server.Client())

	bars, err := src.FetchDaily(context.Background(), "OBSCURE", 30)
	if err != nil {
		t.Fatalf("no_data must not be an error, got: %v", err)
	}
	if bars != nil {
		t.Fatalf("expected nil bars for no_data, got %d", len(bars))
	}
}

func TestSource_FetchDaily_BadStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"s": "error", "c": [1.0]}`))
	}))
	defer server.Close()

	src := NewSource(Config{APIKey: "test-key", BaseURL: server.URL}, server.Client())

	if _, err := src.FetchDaily(context.Background(), "AAPL", 30); err == nil {
		t.Fatal("expected an error for a non-ok status with data")
	}
}

func TestSource_FetchDaily_LengthMismatch(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"s": "ok", "t": [1735689600], "c": [154.0, 155.0]}`))
	}))
	defer server.Close()

	src := NewSource(Config{APIKey: "test-key", BaseURL: server.URL}, server.Client())

	if _, err := src.FetchDaily(context.Background(), "AAPL", 30); err == nil {
		t.Fatal("expected an error for mismatched parallel arrays")
	}
}

func TestSource_FetchDaily_HTTPError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	src := NewSource(Config{APIKey: "bad-key", BaseURL: server.URL}, server.Client())

	if _, err := src.FetchDaily(context.Background(), "AAPL", 30); err == nil {
		t.Fatal("expected an error for HTTP 401")
	}
}
