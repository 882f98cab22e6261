package finnhub

import (
    "context"
    "encoding/json"
    "fmt"
    "maps"
    "net/http"

    "github.com/prajwal1258/stockfolio/internal/provider"
)

// Ensure the Client implements the QuoteSource interface.
var _ provider.QuoteSource = (*Client)(nil)

// quoteResponse mirrors the Finnhub /quote payload: c = current price,
// d = change, dp = change percent, h = high, l = low, o = open,
// pc = previous close.
type quoteResponse struct {
    C  float64 `json:"c"`
    D  float64 `json:"d"`
    DP float64 `json:"dp"`
    H  float64 `json:"h"`
    L  float64 `json:"l"`
    O  float64 `json:"o"`
    PC float64 `json:"pc"`
}

// Quote retrieves a real-time quote for one symbol.
func (c *Client) Quote(ctx context.Context, symbol string) (provider.RealtimeQuote, error) {
    query := maps.Clone(c.query)
    query.Add("symbol", symbol)

    url := fmt.Sprintf("%s/quote?%s", c.baseURL, query.Encode())
    req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
    if err != nil {
        return provider.RealtimeQuote{}, fmt.Errorf("creating request: %w", err)
    }
    req.Header = c.header.Clone()

    res, err := c.httpClient.Do(req)
    if err != nil {
        return provider.RealtimeQuote{}, fmt.Errorf("performing request: %w", err)
    }
    defer res.Body.Close()

    if res.StatusCode != http.StatusOK {
        c.logger.Error().Str("symbol", symbol).Int("status", res.StatusCode).Msg("quote request failed")
        return provider.RealtimeQuote{}, fmt.Errorf("Failed to fetch: %d", res.StatusCode)
    }

    var body quoteResponse
    if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
        return provider.RealtimeQuote{}, fmt.Errorf("decoding quote response: %w", err)
    }

    return provider.RealtimeQuote{
        Current:       body.C,
        Change:        body.D,
        ChangePercent: body.DP,
        High:          body.H,
        Low:           body.L,
        Open:          body.O,
        PreviousClose: body.PC,
    }, nil
}
