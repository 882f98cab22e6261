package finnhub

import (
    "context"
    "encoding/json"
    "fmt"
    "maps"
    "net/http"
    "time"

    "github.com/prajwal1258/stockfolio/internal/provider"
)

// dateLayout is the calendar-day format accepted by the company-news
// endpoint for its from/to bounds.
const dateLayout = "2006-01-02"

// Ensure the Client implements the NewsSource interface.
var _ provider.NewsSource = (*Client)(nil)

// newsItem mirrors one element of the Finnhub /company-news payload.
type newsItem struct {
    ID       int64  `json:"id"`
    Category string `json:"category"`
    Datetime int64  `json:"datetime"`
    Headline string `json:"headline"`
    Image    string `json:"image"`
    Related  string `json:"related"`
    Source   string `json:"source"`
    Summary  string `json:"summary"`
    URL      string `json:"url"`
}

// CompanyNews retrieves company news for one symbol between the from
// and to calendar dates, inclusive. Items keep the provider's ordering.
func (c *Client) CompanyNews(ctx context.Context, symbol string, from, to time.Time) ([]provider.NewsItem, error) {
    query := maps.Clone(c.query)
    query.Add("symbol", symbol)
    query.Add("from", from.Format(dateLayout))
    query.Add("to", to.Format(dateLayout))

    url := fmt.Sprintf("%s/company-news?%s", c.baseURL, query.Encode())
    req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
    if err != nil {
        return nil, fmt.Errorf("creating request: %w", err)
    }
    req.Header = c.header.Clone()

    res, err := c.httpClient.Do(req)
    if err != nil {
        return nil, fmt.Errorf("performing request: %w", err)
    }
    defer res.Body.Close()

    if res.StatusCode != http.StatusOK {
        c.logger.Error().Str("symbol", symbol).Int("status", res.StatusCode).Msg("news request failed")
        return nil, fmt.Errorf("Failed to fetch news: %d", res.StatusCode)
    }

    var body []newsItem
    if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
        return nil, fmt.Errorf("decoding news response: %w", err)
    }

    items := make([]provider.NewsItem, 0, len(body))
    for _, it := range body {
        items = append(items, provider.NewsItem{
            ID:       it.ID,
            Category: it.Category,
            Datetime: it.Datetime,
            Headline: it.Headline,
            Image:    it.Image,
            Related:  it.Related,
            Source:   it.Source,
            Summary:  it.Summary,
            URL:      it.URL,
            Symbol:   symbol,
        })
    }

    return items, nil
}
