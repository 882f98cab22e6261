package provider

import (
    "context"
    "time"
)

// Quote is one row of a batch quote response. Exactly one of the price
// fields or Error is populated: a failed or unknown symbol carries only
// Symbol and Error, a successful one carries the full snapshot.
type Quote struct {
    Symbol        string  `json:"symbol"`
    CurrentPrice  float64 `json:"currentPrice,omitempty"`
    Change        float64 `json:"change,omitempty"`
    ChangePercent float64 `json:"changePercent,omitempty"`
    High          float64 `json:"high,omitempty"`
    Low           float64 `json:"low,omitempty"`
    Open          float64 `json:"open,omitempty"`
    PreviousClose float64 `json:"previousClose,omitempty"`
    Error         string  `json:"error,omitempty"`
}

// Candle is a single daily closing-price sample.
type Candle struct {
    Date  string  `json:"date"`
    Price float64 `json:"price"`
}

// NewsItem is one company-news article as returned by the news
// provider, tagged with the symbol it was fetched for.
type NewsItem struct {
    ID       int64  `json:"id"`
    Category string `json:"category"`
    Datetime int64  `json:"datetime"`
    Headline string `json:"headline"`
    Image    string `json:"image"`
    Related  string `json:"related"`
    Source   string `json:"source"`
    Summary  string `json:"summary"`
    URL      string `json:"url"`
    Symbol   string `json:"symbol"`
}

// RealtimeQuote is the raw snapshot returned by the quote provider for
// a single symbol, before batch-level error mapping.
type RealtimeQuote struct {
    Current       float64
    Change        float64
    ChangePercent float64
    High          float64
    Low           float64
    Open          float64
    PreviousClose float64
}

// QuoteSource fetches a real-time quote for one symbol.
type QuoteSource interface {
    Quote(ctx context.Context, symbol string) (RealtimeQuote, error)
}

// CandleSource fetches historical daily closing prices for one symbol,
// keyed by ISO date (YYYY-MM-DD).
type CandleSource interface {
    DailyCloses(ctx context.Context, symbol string) (map[string]float64, error)
}

// NewsSource fetches company news for one symbol over a date range.
type NewsSource interface {
    CompanyNews(ctx context.Context, symbol string, from, to time.Time) ([]NewsItem, error)
}
