package aggregate

import (
    "context"
    "sort"
    "time"

    "golang.org/x/sync/errgroup"

    "github.com/prajwal1258/stockfolio/internal/provider"
)

const (
    // maxNewsSymbols caps the number of symbols queried for news, to
    // bound provider calls and response size. Longer lists are silently
    // truncated.
    maxNewsSymbols = 5
    // maxNewsPerSymbol caps items taken per symbol before the merge.
    maxNewsPerSymbol = 3
    // maxNewsItems caps the merged result.
    maxNewsItems = 10
    // newsWindowDays is the trailing window queried: today minus six
    // days through today, inclusive, by calendar date.
    newsWindowDays = 6
)

// FetchNews fetches recent company news for the first five symbols
// concurrently, keeps the top three items per symbol in provider
// order, then merges everything sorted most-recent-first and truncated
// to ten items. A symbol whose fetch fails contributes nothing.
func (s *Service) FetchNews(ctx context.Context, symbols []string, now time.Time) []provider.NewsItem {
    if len(symbols) > maxNewsSymbols {
        symbols = symbols[:maxNewsSymbols]
    }

    to := now.UTC()
    from := to.AddDate(0, 0, -newsWindowDays)

    perSymbol := make([][]provider.NewsItem, len(symbols))

    var g errgroup.Group
    for i, symbol := range symbols {
        g.Go(func() error {
            items, err := s.News.CompanyNews(ctx, symbol, from, to)
            if err != nil {
                s.Log.Error().Err(err).Str("symbol", symbol).Msg("fetching news")
                return nil
            }
            if len(items) > maxNewsPerSymbol {
                items = items[:maxNewsPerSymbol]
            }
            perSymbol[i] = items
            return nil
        })
    }
    _ = g.Wait()

    merged := make([]provider.NewsItem, 0, len(symbols)*maxNewsPerSymbol)
    for _, items := range perSymbol {
        merged = append(merged, items...)
    }

    // Stable sort keeps the provider's relative order for equal
    // timestamps.
    sort.SliceStable(merged, func(i, j int) bool {
        return merged[i].Datetime > merged[j].Datetime
    })
    if len(merged) > maxNewsItems {
        merged = merged[:maxNewsItems]
    }

    return merged
}
