package finnhub

import (
    "net/http"
    "net/url"

    "github.com/rs/zerolog"
)

const baseURL = "https://finnhub.io/api/v1"

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=finnhub_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
    Do(req *http.Request) (*http.Response, error)
}

// Client is a client for the Finnhub API. It serves both real-time
// quotes and company news.
type Client struct {
    // baseURL is the base URL for the API.
    baseURL string
    // httpClient is the HTTP client used for all requests.
    httpClient HTTPClient
    // header contains additional headers to be sent with each request.
    header http.Header
    // query contains additional query parameters sent with each request.
    query url.Values
    // logger records per-request failures.
    logger zerolog.Logger
}

// ClientOption is a configuration option for the Finnhub client.
type ClientOption func(*Client)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) ClientOption {
    return func(c *Client) {
        c.baseURL = baseURL
    }
}

// WithHTTPClient sets the HTTP client for the API.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
    return func(c *Client) {
        c.httpClient = httpClient
    }
}

// WithHeader sets additional headers to be sent with each request.
func WithHeader(header http.Header) ClientOption {
    return func(c *Client) {
        for key, values := range header {
            for _, value := range values {
                c.header.Add(key, value)
            }
        }
    }
}

// WithLogger sets the logger used by the client.
func WithLogger(logger zerolog.Logger) ClientOption {
    return func(c *Client) {
        c.logger = logger
    }
}

// NewClient creates a new Finnhub API client. The key is sent as the
// token query parameter on every request and never logged.
func NewClient(key string, options ...ClientOption) (*Client, error) {
    client := &Client{
        baseURL:    baseURL,
        httpClient: http.DefaultClient,
        header:     http.Header{},
        query:      url.Values{},
        logger:     zerolog.Nop(),
    }
    if key != "" {
        client.query.Add("token", key)
    }
    for _, option := range options {
        option(client)
    }
    return client, nil
}
