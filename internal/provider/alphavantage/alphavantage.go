package alphavantage

import (
    "context"
    "fmt"
    "io"
    "net/http"
    "net/url"

    "github.com/rs/zerolog"
    "github.com/tidwall/gjson"

    "github.com/prajwal1258/stockfolio/internal/httpx"
    "github.com/prajwal1258/stockfolio/internal/provider"
)

// Config controls the Alpha Vantage client behavior.
type Config struct {
    Name   string
    URL    string
    APIKey string
    Logger zerolog.Logger
}

// Client fetches historical daily closing prices from Alpha Vantage.
type Client struct {
    cfg    Config
    client *httpx.Client
}

// Ensure the Client implements the CandleSource interface.
var _ provider.CandleSource = (*Client)(nil)

func New(cfg Config, hc *httpx.Client) *Client {
    if cfg.Name == "" { cfg.Name = "AlphaVantage" }
    if cfg.URL == "" { cfg.URL = "https://www.alphavantage.co" }
    return &Client{cfg: cfg, client: hc}
}

func (c *Client) Name() string { return c.cfg.Name }

// DailyCloses returns the daily closing price per ISO date for one
// symbol. Rate-limit and error payloads, which Alpha Vantage delivers
// inside a 200 response, are surfaced as errors.
func (c *Client) DailyCloses(ctx context.Context, symbol string) (map[string]float64, error) {
    params := url.Values{}
    params.Add("function", "TIME_SERIES_DAILY")
    params.Add("symbol", symbol)
    params.Add("apikey", c.cfg.APIKey)

    formedURL := fmt.Sprintf("%s/query?%s", c.cfg.URL, params.Encode())
    req, err := http.NewRequestWithContext(ctx, http.MethodGet, formedURL, http.NoBody)
    if err != nil {
        return nil, fmt.Errorf("creating request: %w", err)
    }

    resp, err := c.client.Do(ctx, req)
    if err != nil {
        return nil, fmt.Errorf("fetching daily series for %s: %w", symbol, err)
    }
    defer resp.Body.Close()

    if resp.StatusCode != http.StatusOK {
        c.cfg.Logger.Error().Str("symbol", symbol).Int("status", resp.StatusCode).Msg("daily series request failed")
        return nil, fmt.Errorf("Failed to fetch history: %d", resp.StatusCode)
    }

    body, err := io.ReadAll(resp.Body)
    if err != nil {
        return nil, fmt.Errorf("reading response body: %w", err)
    }

    // Alpha Vantage signals throttling and bad symbols with sentinel
    // fields on an otherwise successful response.
    if note := gjson.GetBytes(body, "Note"); note.Exists() {
        return nil, fmt.Errorf("provider rate limited: %s", note.String())
    }
    if info := gjson.GetBytes(body, "Information"); info.Exists() {
        return nil, fmt.Errorf("provider rate limited: %s", info.String())
    }
    if msg := gjson.GetBytes(body, "Error Message"); msg.Exists() {
        return nil, fmt.Errorf("provider error: %s", msg.String())
    }

    series := gjson.GetBytes(body, `Time Series (Daily)`)
    if !series.Exists() || !series.IsObject() {
        return nil, fmt.Errorf("no daily series for %s", symbol)
    }

    closes := make(map[string]float64, 32)
    series.ForEach(func(date, values gjson.Result) bool {
        closes[date.String()] = values.Get(`4\. close`).Float()
        return true
    })

    return closes, nil
}
