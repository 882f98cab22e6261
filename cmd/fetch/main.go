package main

import (
    "context"
    "encoding/json"
    "flag"
    "os"
    "strings"
    "time"

    "github.com/rs/zerolog"

    "github.com/prajwal1258/stockfolio/internal/aggregate"
    "github.com/prajwal1258/stockfolio/internal/config"
    "github.com/prajwal1258/stockfolio/internal/httpx"
    "github.com/prajwal1258/stockfolio/internal/provider/alphavantage"
    "github.com/prajwal1258/stockfolio/internal/provider/finnhub"
)

// fetch exercises the aggregation paths without the HTTP server:
// it prints the JSON payload a frontend would receive for the given
// symbols.
func main() {
    var symbolsCSV string
    var mode string
    var configPath string
    var timeout int

    flag.StringVar(&symbolsCSV, "symbols", os.Getenv("SYMBOLS"), "comma-separated ticker symbols")
    flag.StringVar(&mode, "mode", "quotes", "what to fetch: quotes, candles or news")
    flag.StringVar(&configPath, "config", os.Getenv("CONFIG_FILE"), "path to config.json (optional)")
    flag.IntVar(&timeout, "timeout", 0, "request timeout seconds (overrides config)")
    flag.Parse()

    logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

    symbols := splitCSV(symbolsCSV)
    if len(symbols) == 0 {
        logger.Fatal().Msg("no symbols provided, use -symbols AAPL,MSFT")
    }

    cfg, err := config.Load(configPath)
    if err != nil {
        logger.Fatal().Err(err).Msg("loading config")
    }
    if timeout > 0 {
        cfg.Server.RequestTimeoutSec = timeout
    }

    httpTimeout := time.Duration(cfg.Server.RequestTimeoutSec) * time.Second
    fhHTTP := httpx.New(httpTimeout).WithLimiter(cfg.Finnhub.MaxRequestsPerMinute, cfg.Finnhub.Burst)
    avHTTP := httpx.New(httpTimeout).WithLimiter(cfg.AlphaVantage.MaxRequestsPerMinute, cfg.AlphaVantage.Burst)

    fh, err := finnhub.NewClient(cfg.Finnhub.APIKey,
        finnhub.WithBaseURL(cfg.Finnhub.BaseURL),
        finnhub.WithHTTPClient(fhHTTP.Std()),
        finnhub.WithLogger(logger.With().Str("component", "finnhub").Logger()),
    )
    if err != nil {
        logger.Fatal().Err(err).Msg("creating finnhub client")
    }

    av := alphavantage.New(alphavantage.Config{
        URL:    cfg.AlphaVantage.BaseURL,
        APIKey: cfg.AlphaVantage.APIKey,
        Logger: logger.With().Str("component", "alphavantage").Logger(),
    }, avHTTP)

    svc := &aggregate.Service{
        Quotes:  fh,
        Candles: av,
        News:    fh,
        Log:     logger.With().Str("component", "aggregate").Logger(),
    }

    ctx := context.Background()

    var out any
    switch mode {
    case "quotes":
        out = map[string]any{"quotes": svc.FetchQuotes(ctx, symbols)}
    case "candles":
        out = map[string]any{"candles": svc.FetchCandles(ctx, symbols, time.Now())}
    case "news":
        out = map[string]any{"news": svc.FetchNews(ctx, symbols, time.Now())}
    default:
        logger.Fatal().Str("mode", mode).Msg("unknown mode")
    }

    enc := json.NewEncoder(os.Stdout)
    enc.SetIndent("", "  ")
    enc.SetEscapeHTML(false)
    if err := enc.Encode(out); err != nil {
        logger.Fatal().Err(err).Msg("encoding output")
    }
}

func splitCSV(s string) []string {
    parts := strings.Split(s, ",")
    out := make([]string, 0, len(parts))
    for _, p := range parts {
        p = strings.TrimSpace(p)
        if p != "" { out = append(out, p) }
    }
    return out
}
