package aggregate

import (
    "context"

    "github.com/rs/zerolog"
    "golang.org/x/sync/errgroup"

    "github.com/prajwal1258/stockfolio/internal/provider"
)

// noDataMessage marks a symbol the quote provider knows nothing about,
// which it signals with an all-zero reading instead of an error.
const noDataMessage = "No data available"

// dateLayout is the ISO calendar-day form used for candle dates.
const dateLayout = "2006-01-02"

// Service joins the provider sources behind the batch aggregation
// operations exposed over HTTP. Each operation fans out one provider
// call per symbol, waits for all of them, and never fails the batch on
// a per-symbol error.
type Service struct {
    Quotes  provider.QuoteSource
    Candles provider.CandleSource
    News    provider.NewsSource
    Log     zerolog.Logger
}

// FetchQuotes fetches a real-time quote per symbol concurrently and
// maps each outcome to one response row, preserving input order. A
// failed or unknown symbol yields a row carrying only the error.
func (s *Service) FetchQuotes(ctx context.Context, symbols []string) []provider.Quote {
    results := make([]provider.Quote, len(symbols))

    var g errgroup.Group
    for i, symbol := range symbols {
        g.Go(func() error {
            q, err := s.Quotes.Quote(ctx, symbol)
            switch {
            case err != nil:
                s.Log.Error().Err(err).Str("symbol", symbol).Msg("fetching quote")
                results[i] = provider.Quote{Symbol: symbol, Error: err.Error()}
            case q.Current == 0 && q.High == 0 && q.Low == 0:
                s.Log.Warn().Str("symbol", symbol).Msg("no quote data available")
                results[i] = provider.Quote{Symbol: symbol, Error: noDataMessage}
            default:
                results[i] = provider.Quote{
                    Symbol:        symbol,
                    CurrentPrice:  q.Current,
                    Change:        q.Change,
                    ChangePercent: q.ChangePercent,
                    High:          q.High,
                    Low:           q.Low,
                    Open:          q.Open,
                    PreviousClose: q.PreviousClose,
                }
            }
            return nil
        })
    }
    // Goroutines never return an error, so the group only joins here:
    // a slow or failing symbol does not cancel its siblings.
    _ = g.Wait()

    return results
}
