package main

import (
    "context"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/rs/zerolog"

    "github.com/prajwal1258/stockfolio/internal/aggregate"
    "github.com/prajwal1258/stockfolio/internal/config"
    "github.com/prajwal1258/stockfolio/internal/httpx"
    "github.com/prajwal1258/stockfolio/internal/provider/alphavantage"
    "github.com/prajwal1258/stockfolio/internal/provider/finnhub"
)

func main() {
    logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

    cfgPath := os.Getenv("CONFIG_FILE")
    cfg, err := config.Load(cfgPath)
    if err != nil {
        logger.Fatal().Err(err).Msg("loading config")
    }

    timeout := time.Duration(cfg.Server.RequestTimeoutSec) * time.Second

    fhHTTP := httpx.New(timeout).WithLimiter(cfg.Finnhub.MaxRequestsPerMinute, cfg.Finnhub.Burst)
    avHTTP := httpx.New(timeout).WithLimiter(cfg.AlphaVantage.MaxRequestsPerMinute, cfg.AlphaVantage.Burst)

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

    s := &server{svc: svc, log: logger.With().Str("component", "server").Logger()}

    srv := &http.Server{
        Addr:              ":" + cfg.Server.Port,
        Handler:           withJSONHeaders(withGzip(recoverPanic(limitBody(s.routes())))),
        ReadHeaderTimeout: 5 * time.Second,
        ReadTimeout:       15 * time.Second,
        WriteTimeout:      30 * time.Second,
        IdleTimeout:       60 * time.Second,
    }

    go func() {
        logger.Info().Str("port", cfg.Server.Port).Msg("server listening")
        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            logger.Fatal().Err(err).Msg("server")
        }
    }()

    // graceful shutdown
    ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
    defer stop()
    <-ctx.Done()
    shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()
    _ = srv.Shutdown(shutdownCtx)
}
