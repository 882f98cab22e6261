package main

import (
    "encoding/json"
    "net/http"
    "time"

    "github.com/rs/zerolog"

    "github.com/prajwal1258/stockfolio/internal/aggregate"
    "github.com/prajwal1258/stockfolio/internal/provider"
)

// maxSymbols caps a single batch request.
const maxSymbols = 1000

type server struct {
    svc *aggregate.Service
    log zerolog.Logger
}

func (s *server) routes() *http.ServeMux {
    mux := http.NewServeMux()
    mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusOK)
        _, _ = w.Write([]byte("ok"))
    })
    mux.HandleFunc("/api/quotes", s.handleQuotes)
    mux.HandleFunc("/api/candles", s.handleCandles)
    mux.HandleFunc("/api/news", s.handleNews)
    return mux
}

type symbolsRequest struct {
    Symbols    []string `json:"symbols"`
    Historical bool     `json:"historical"`
}

type quotesResponse struct {
    Quotes []provider.Quote `json:"quotes"`
}

type candlesResponse struct {
    Candles map[string][]provider.Candle `json:"candles"`
}

type newsResponse struct {
    News []provider.NewsItem `json:"news"`
}

type errorResponse struct {
    Error string `json:"error"`
}

// decodeSymbols parses and validates the request body shared by all
// three endpoints. It writes the error response itself and reports
// whether the handler should proceed.
func (s *server) decodeSymbols(w http.ResponseWriter, r *http.Request) (symbolsRequest, bool) {
    var req symbolsRequest
    if r.Method != http.MethodPost {
        writeError(w, http.StatusMethodNotAllowed, "method not allowed")
        return req, false
    }
    dec := json.NewDecoder(r.Body)
    dec.DisallowUnknownFields()
    if err := dec.Decode(&req); err != nil {
        writeError(w, http.StatusBadRequest, "invalid JSON body")
        return req, false
    }
    if len(req.Symbols) == 0 {
        writeError(w, http.StatusBadRequest, "symbols array is required")
        return req, false
    }
    if len(req.Symbols) > maxSymbols {
        writeError(w, http.StatusBadRequest, "too many symbols (max 1000)")
        return req, false
    }
    return req, true
}

func (s *server) handleQuotes(w http.ResponseWriter, r *http.Request) {
    req, ok := s.decodeSymbols(w, r)
    if !ok {
        return
    }
    s.log.Info().Strs("symbols", req.Symbols).Msg("fetching quotes")
    quotes := s.svc.FetchQuotes(r.Context(), req.Symbols)
    writeJSON(w, http.StatusOK, quotesResponse{Quotes: quotes})
}

// handleCandles serves both modes of the aggregate endpoint: with
// historical set it returns a candle series per symbol, without it the
// behavior is identical to /api/quotes.
func (s *server) handleCandles(w http.ResponseWriter, r *http.Request) {
    req, ok := s.decodeSymbols(w, r)
    if !ok {
        return
    }
    if !req.Historical {
        s.log.Info().Strs("symbols", req.Symbols).Msg("fetching quotes")
        quotes := s.svc.FetchQuotes(r.Context(), req.Symbols)
        writeJSON(w, http.StatusOK, quotesResponse{Quotes: quotes})
        return
    }
    s.log.Info().Strs("symbols", req.Symbols).Msg("fetching candles")
    candles := s.svc.FetchCandles(r.Context(), req.Symbols, time.Now())
    writeJSON(w, http.StatusOK, candlesResponse{Candles: candles})
}

func (s *server) handleNews(w http.ResponseWriter, r *http.Request) {
    req, ok := s.decodeSymbols(w, r)
    if !ok {
        return
    }
    s.log.Info().Strs("symbols", req.Symbols).Msg("fetching news")
    news := s.svc.FetchNews(r.Context(), req.Symbols, time.Now())
    writeJSON(w, http.StatusOK, newsResponse{News: news})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
    w.WriteHeader(status)
    enc := json.NewEncoder(w)
    enc.SetEscapeHTML(false)
    _ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
    writeJSON(w, status, errorResponse{Error: msg})
}
