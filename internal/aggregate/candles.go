package aggregate

import (
    "context"
    "sort"
    "time"

    "golang.org/x/sync/errgroup"

    "github.com/prajwal1258/stockfolio/internal/provider"
)

// maxCandleDays bounds a candle series to a rolling window of daily
// closes.
const maxCandleDays = 30

// FetchCandles builds up to 30 days of daily closing prices per symbol
// concurrently, overlaying the real-time quote as today's sample.
// Every requested symbol is keyed in the result; symbols whose history
// could not be fetched map to an empty series.
func (s *Service) FetchCandles(ctx context.Context, symbols []string, now time.Time) map[string][]provider.Candle {
    series := make([][]provider.Candle, len(symbols))

    var g errgroup.Group
    for i, symbol := range symbols {
        g.Go(func() error {
            series[i] = s.symbolCandles(ctx, symbol, now)
            return nil
        })
    }
    _ = g.Wait()

    out := make(map[string][]provider.Candle, len(symbols))
    for i, symbol := range symbols {
        out[symbol] = series[i]
    }
    return out
}

func (s *Service) symbolCandles(ctx context.Context, symbol string, now time.Time) []provider.Candle {
    closes, err := s.Candles.DailyCloses(ctx, symbol)
    if err != nil {
        s.Log.Error().Err(err).Str("symbol", symbol).Msg("fetching daily closes")
        return []provider.Candle{}
    }

    // Dates are fixed-width ISO strings, so the lexicographic sort is
    // also chronological. Keep only the most recent window.
    dates := make([]string, 0, len(closes))
    for d := range closes {
        dates = append(dates, d)
    }
    sort.Strings(dates)
    if len(dates) > maxCandleDays {
        dates = dates[len(dates)-maxCandleDays:]
    }

    candles := make([]provider.Candle, 0, len(dates)+1)
    for _, d := range dates {
        candles = append(candles, provider.Candle{Date: d, Price: closes[d]})
    }

    q, err := s.Quotes.Quote(ctx, symbol)
    if err != nil || q.Current == 0 {
        if err != nil {
            s.Log.Warn().Err(err).Str("symbol", symbol).Msg("skipping realtime overlay")
        }
        return candles
    }

    // Patch today's price into the series: refresh the last sample when
    // it is already today's date, otherwise append. The equality check
    // is a plain string compare against the server's UTC date; a
    // provider whose trading-day label differs gets a duplicate entry.
    today := now.UTC().Format(dateLayout)
    if n := len(candles); n > 0 && candles[n-1].Date == today {
        candles[n-1].Price = q.Current
    } else {
        candles = append(candles, provider.Candle{Date: today, Price: q.Current})
    }

    return candles
}
