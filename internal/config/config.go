package config

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"
)

type Server struct {
    Port              string `json:"port"`
    RequestTimeoutSec int    `json:"request_timeout_sec"`
}

type Finnhub struct {
    APIKey               string `json:"api_key"`
    BaseURL              string `json:"base_url"`
    MaxRequestsPerMinute int    `json:"max_requests_per_minute"`
    Burst                int    `json:"burst"`
}

type AlphaVantage struct {
    APIKey               string `json:"api_key"`
    BaseURL              string `json:"base_url"`
    MaxRequestsPerMinute int    `json:"max_requests_per_minute"`
    Burst                int    `json:"burst"`
}

type Config struct {
    Server       Server       `json:"server"`
    Finnhub      Finnhub      `json:"finnhub"`
    AlphaVantage AlphaVantage `json:"alphavantage"`
}

func Default() Config {
    return Config{
        Server: Server{Port: "8080", RequestTimeoutSec: 10},
        Finnhub: Finnhub{
            BaseURL: "https://finnhub.io/api/v1",
        },
        AlphaVantage: AlphaVantage{
            BaseURL: "https://www.alphavantage.co",
        },
    }
}

// Validate asserts the config has sane inputs. API keys are required:
// the service is useless without them and must not start.
func (cfg *Config) Validate() error {
    var errs error

    if cfg.Finnhub.APIKey == "" {
        errs = errors.Join(errs, fmt.Errorf("finnhub api key cannot be an empty string"))
    }
    if cfg.AlphaVantage.APIKey == "" {
        errs = errors.Join(errs, fmt.Errorf("alphavantage api key cannot be an empty string"))
    }
    if cfg.Server.RequestTimeoutSec <= 0 {
        errs = errors.Join(errs, fmt.Errorf("request timeout must be positive"))
    }

    return errs
}

// Load reads JSON config from path. If path is empty or the file does
// not exist, it returns defaults. A .env file, when present, is loaded
// first; environment variables override file values for secrecy.
func Load(path string) (Config, error) {
    loadDotenv()

    cfg := Default()
    if path == "" {
        if _, err := os.Stat("config.json"); err == nil {
            path = "config.json"
        }
    }
    if path != "" {
        b, err := os.ReadFile(path)
        if err != nil && !errors.Is(err, os.ErrNotExist) {
            return cfg, fmt.Errorf("read config: %w", err)
        }
        if err == nil {
            if err := json.Unmarshal(b, &cfg); err != nil {
                return cfg, fmt.Errorf("parse config: %w", err)
            }
        }
    }
    applyEnv(&cfg)
    if err := cfg.Validate(); err != nil {
        return cfg, fmt.Errorf("validate config: %w", err)
    }
    return cfg, nil
}

func applyEnv(cfg *Config) {
    if v := os.Getenv("PORT"); v != "" { cfg.Server.Port = v }
    if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x > 0 { cfg.Server.RequestTimeoutSec = x }
    }
    if v := os.Getenv("FINNHUB_API_KEY"); v != "" { cfg.Finnhub.APIKey = v }
    if v := os.Getenv("FINNHUB_BASE_URL"); v != "" { cfg.Finnhub.BaseURL = v }
    if v := os.Getenv("FINNHUB_MAX_RPM"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x >= 0 { cfg.Finnhub.MaxRequestsPerMinute = x }
    }
    if v := os.Getenv("FINNHUB_BURST"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x > 0 { cfg.Finnhub.Burst = x }
    }
    if v := os.Getenv("ALPHAVANTAGE_API_KEY"); v != "" { cfg.AlphaVantage.APIKey = v }
    if v := os.Getenv("ALPHAVANTAGE_BASE_URL"); v != "" { cfg.AlphaVantage.BaseURL = v }
    if v := os.Getenv("ALPHAVANTAGE_MAX_RPM"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x >= 0 { cfg.AlphaVantage.MaxRequestsPerMinute = x }
    }
    if v := os.Getenv("ALPHAVANTAGE_BURST"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x > 0 { cfg.AlphaVantage.Burst = x }
    }
}
