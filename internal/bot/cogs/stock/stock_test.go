package stock

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/rankaisija/internal/bot"
	apperrors "github.com/louisbranch/rankaisija/internal/platform/errors"
)

type fakeReplier struct {
	texts []string
}

func (r *fakeReplier) Reply(_ context.Context, text string) error {
	r.texts = append(r.texts, text)
	return nil
}

func (r *fakeReplier) ReplyFile(context.Context, string) error { return nil }

func findCommand(t *testing.T, cog *Cog, name string) bot.Command {
	t.Helper()
	for _, cmd := range cog.Commands() {
		if cmd.Name == name {
			return cmd
		}
	}
	t.Fatalf("command %s not found", name)
	return bot.Command{}
}

func TestBitcoinPriceDefaultsToUSD(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/prices/BTC-USD/buy" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"data":{"amount":"64123.45","currency":"USD"}}`))
	}))
	defer server.Close()

	cog := New(Config{HTTPClient: server.Client(), CoinbaseBaseURL: server.URL})
	replier := &fakeReplier{}
	cmd := findCommand(t, cog, "btc")

	if err := cmd.Run(context.Background(), bot.Invocation{Author: "tester", Replier: replier}); err != nil {
		t.Fatalf("run btc: %v", err)
	}
	if replier.texts[0] != "Bitcoin price is: 64123.45 USD" {
		t.Fatalf("unexpected reply: %q", replier.texts[0])
	}
}

func TestEthereumPriceInEUR(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/prices/ETH-EUR/buy" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"data":{"amount":"2987.01","currency":"EUR"}}`))
	}))
	defer server.Close()

	cog := New(Config{HTTPClient: server.Client(), CoinbaseBaseURL: server.URL})
	replier := &fakeReplier{}
	cmd := findCommand(t, cog, "eth")

	err := cmd.Run(context.Background(), bot.Invocation{
		Author:  "tester",
		Args:    []string{"eur"},
		Replier: replier,
	})
	if err != nil {
		t.Fatalf("run eth: %v", err)
	}
	if replier.texts[0] != "Ethereum price is: 2987.01 EUR" {
		t.Fatalf("unexpected reply: %q", replier.texts[0])
	}
}

func TestCryptoRejectsUnsupportedCurrency(t *testing.T) {
	cog := New(Config{})
	cmd := findCommand(t, cog, "btc")

	err := cmd.Run(context.Background(), bot.Invocation{
		Author:  "tester",
		Args:    []string{"GBP"},
		Replier: &fakeReplier{},
	})
	if !errors.Is(err, apperrors.New(apperrors.CodeStockUnsupportedCurrency, "")) {
		t.Fatalf("expected unsupported currency error, got %v", err)
	}
}

func TestCryptoQuoteFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	cog := New(Config{HTTPClient: server.Client(), CoinbaseBaseURL: server.URL})
	cmd := findCommand(t, cog, "btc")

	err := cmd.Run(context.Background(), bot.Invocation{Author: "tester", Replier: &fakeReplier{}})
	if !errors.Is(err, apperrors.New(apperrors.CodeStockQuoteUnavailable, "")) {
		t.Fatalf("expected quote unavailable error, got %v", err)
	}
}

func TestStockPrice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v8/finance/chart/NOK" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"chart":{"result":[{"meta":{"regularMarketPrice":4.56,"currency":"USD"}}]}}`))
	}))
	defer server.Close()

	cog := New(Config{HTTPClient: server.Client(), YahooBaseURL: server.URL})
	replier := &fakeReplier{}
	cmd := findCommand(t, cog, "stock")

	err := cmd.Run(context.Background(), bot.Invocation{
		Author:  "tester",
		Args:    []string{"nok"},
		Replier: replier,
	})
	if err != nil {
		t.Fatalf("run stock: %v", err)
	}
	if replier.texts[0] != "NOK price is: 4.56 USD" {
		t.Fatalf("unexpected reply: %q", replier.texts[0])
	}
}

func TestStockRequiresTicker(t *testing.T) {
	cog := New(Config{})
	cmd := findCommand(t, cog, "stock")

	err := cmd.Run(context.Background(), bot.Invocation{Author: "tester", Replier: &fakeReplier{}})
	if !errors.Is(err, apperrors.New(apperrors.CodeStockMissingTicker, "")) {
		t.Fatalf("expected missing ticker error, got %v", err)
	}
}

func TestStockEmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":[]}}`))
	}))
	defer server.Close()

	cog := New(Config{HTTPClient: server.Client(), YahooBaseURL: server.URL})
	cmd := findCommand(t, cog, "stock")

	err := cmd.Run(context.Background(), bot.Invocation{
		Author:  "tester",
		Args:    []string{"XXXX"},
		Replier: &fakeReplier{},
	})
	if !errors.Is(err, apperrors.New(apperrors.CodeStockQuoteUnavailable, "")) {
		t.Fatalf("expected quote unavailable error, got %v", err)
	}
}
