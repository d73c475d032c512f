// Package stock provides crypto and stock price lookup commands.
package stock

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/louisbranch/rankaisija/internal/bot"
	apperrors "github.com/louisbranch/rankaisija/internal/platform/errors"
)

const (
	defaultCoinbaseBaseURL = "https://api.coinbase.com"
	defaultYahooBaseURL    = "https://query1.finance.yahoo.com"
	defaultCurrency        = "USD"
)

// supportedCurrencies is the allow-list for crypto price quotes.
var supportedCurrencies = map[string]bool{
	"USD": true,
	"EUR": true,
}

// Config wires the stock cog.
type Config struct {
	// HTTPClient performs outbound quote requests. Defaults to a client
	// with a short timeout so a slow quote provider never stalls the bot.
	HTTPClient *http.Client
	// CoinbaseBaseURL overrides the Coinbase API host, for tests.
	CoinbaseBaseURL string
	// YahooBaseURL overrides the Yahoo Finance API host, for tests.
	YahooBaseURL string
}

// Cog holds the price lookup command set.
type Cog struct {
	client          *http.Client
	coinbaseBaseURL string
	yahooBaseURL    string
}

// New creates the stock cog.
func New(cfg Config) *Cog {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	coinbaseBaseURL := cfg.CoinbaseBaseURL
	if coinbaseBaseURL == "" {
		coinbaseBaseURL = defaultCoinbaseBaseURL
	}
	yahooBaseURL := cfg.YahooBaseURL
	if yahooBaseURL == "" {
		yahooBaseURL = defaultYahooBaseURL
	}
	return &Cog{
		client:          client,
		coinbaseBaseURL: coinbaseBaseURL,
		yahooBaseURL:    yahooBaseURL,
	}
}

// Commands returns the stock cog's commands.
func (c *Cog) Commands() []bot.Command {
	return []bot.Command{
		{
			Name:    "btc",
			Aliases: []string{"bitcoin"},
			Usage:   "btc [currency]",
			Run: func(ctx context.Context, inv bot.Invocation) error {
				return c.crypto(ctx, inv, "BTC", "Bitcoin")
			},
		},
		{
			Name:    "eth",
			Aliases: []string{"ethereum"},
			Usage:   "eth [currency]",
			Run: func(ctx context.Context, inv bot.Invocation) error {
				return c.crypto(ctx, inv, "ETH", "Ethereum")
			},
		},
		{
			Name:    "stock",
			Aliases: []string{"price", "osake"},
			Usage:   "stock <ticker>",
			Run:     c.stock,
		},
	}
}

func (c *Cog) crypto(ctx context.Context, inv bot.Invocation, coin, name string) error {
	currency := defaultCurrency
	if len(inv.Args) > 0 {
		currency = strings.ToUpper(strings.TrimSpace(inv.Args[0]))
	}
	if !supportedCurrencies[currency] {
		return apperrors.WithMetadata(apperrors.CodeStockUnsupportedCurrency,
			"unsupported quote currency",
			map[string]string{"Currency": currency})
	}

	amount, err := c.spotPrice(ctx, coin, currency)
	if err != nil {
		return err
	}
	return inv.Replier.Reply(ctx, fmt.Sprintf("%s price is: %s %s", name, amount, currency))
}

func (c *Cog) stock(ctx context.Context, inv bot.Invocation) error {
	if len(inv.Args) == 0 {
		return apperrors.New(apperrors.CodeStockMissingTicker, "stock command requires a ticker")
	}
	ticker := strings.ToUpper(strings.TrimSpace(inv.Args[0]))

	price, currency, err := c.marketPrice(ctx, ticker)
	if err != nil {
		return err
	}
	return inv.Replier.Reply(ctx, fmt.Sprintf("%s price is: %.2f %s", ticker, price, currency))
}

// spotPrice fetches the Coinbase buy price for a coin in the given currency.
func (c *Cog) spotPrice(ctx context.Context, coin, currency string) (string, error) {
	endpoint := fmt.Sprintf("%s/v2/prices/%s-%s/buy", c.coinbaseBaseURL, coin, currency)
	var payload struct {
		Data struct {
			Amount   string `json:"amount"`
			Currency string `json:"currency"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return "", apperrors.WrapWithMetadata(apperrors.CodeStockQuoteUnavailable,
			"fetch crypto price", map[string]string{"Symbol": coin}, err)
	}
	if payload.Data.Amount == "" {
		return "", apperrors.WithMetadata(apperrors.CodeStockQuoteUnavailable,
			"crypto price response missing amount", map[string]string{"Symbol": coin})
	}
	return payload.Data.Amount, nil
}

// marketPrice fetches the latest market price for a ticker from the Yahoo
// Finance chart endpoint.
func (c *Cog) marketPrice(ctx context.Context, ticker string) (float64, string, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=1d",
		c.yahooBaseURL, url.PathEscape(ticker))
	var payload struct {
		Chart struct {
			Result []struct {
				Meta struct {
					RegularMarketPrice float64 `json:"regularMarketPrice"`
					Currency           string  `json:"currency"`
				} `json:"meta"`
			} `json:"result"`
		} `json:"chart"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return 0, "", apperrors.WrapWithMetadata(apperrors.CodeStockQuoteUnavailable,
			"fetch stock quote", map[string]string{"Symbol": ticker}, err)
	}
	if len(payload.Chart.Result) == 0 {
		return 0, "", apperrors.WithMetadata(apperrors.CodeStockQuoteUnavailable,
			"stock quote response missing result", map[string]string{"Symbol": ticker})
	}
	meta := payload.Chart.Result[0].Meta
	currency := meta.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	return meta.RegularMarketPrice, currency, nil
}

func (c *Cog) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build quote request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("quote request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("quote request returned %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode quote response: %w", err)
	}
	return nil
}
