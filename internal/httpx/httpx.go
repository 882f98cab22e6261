package httpx

import (
    "context"
    "net"
    "net/http"
    "time"

    "golang.org/x/time/rate"
)

// Client is a small wrapper around http.Client with sane defaults.
// When Limiter is set, Do blocks until the limiter admits the request,
// so outbound calls to a provider can be throttled globally.
type Client struct {
    HTTP      *http.Client
    UserAgent string
    Headers   map[string]string
    Limiter   *rate.Limiter
}

func New(timeout time.Duration) *Client {
    transport := &http.Transport{
        Proxy: http.ProxyFromEnvironment,
        DialContext: (&net.Dialer{Timeout: 3 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
        MaxIdleConns:          200,
        MaxIdleConnsPerHost:   100,
        MaxConnsPerHost:       100,
        ForceAttemptHTTP2:     true,
        IdleConnTimeout:       90 * time.Second,
        TLSHandshakeTimeout:   3 * time.Second,
        ExpectContinueTimeout: 1 * time.Second,
        ResponseHeaderTimeout: 5 * time.Second,
    }
    return &Client{HTTP: &http.Client{Timeout: timeout, Transport: transport}, UserAgent: "stockfolio/1.0"}
}

// WithLimiter throttles the client to rpm requests per minute with the
// given burst. rpm <= 0 leaves the client unlimited.
func (c *Client) WithLimiter(rpm int, burst int) *Client {
    if rpm <= 0 {
        return c
    }
    if burst <= 0 { burst = 1 }
    c.Limiter = rate.NewLimiter(rate.Limit(float64(rpm)/60.0), burst)
    return c
}

// Std is a view of the client satisfying the plain Do(req) interface
// used by provider API clients. The request's own context drives
// limiter waits and cancellation.
type Std struct {
    c *Client
}

func (s Std) Do(req *http.Request) (*http.Response, error) {
    return s.c.Do(req.Context(), req)
}

func (c *Client) Std() Std { return Std{c: c} }

func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
    if c.Limiter != nil {
        if err := c.Limiter.Wait(ctx); err != nil {
            return nil, err
        }
    }
    if c.UserAgent != "" && req.Header.Get("User-Agent") == "" {
        req.Header.Set("User-Agent", c.UserAgent)
    }
    for k, v := range c.Headers {
        if req.Header.Get(k) == "" {
            req.Header.Set(k, v)
        }
    }
    return c.HTTP.Do(req)
}
