package finnhub_test

import (
	"bytes"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/prajwal1258/stockfolio/internal/provider/finnhub"
)

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	// Assert: a valid key should return a client.
	client, err := finnhub.NewClient("test")
	require.NoErrorf(t, err, "unexpected error: %v", err)
	require.NotNilf(t, client, "unexpected nil client")
}

func TestQuote_ParsesPayload(t *testing.T) {
	t.Parallel()

	// Arrange: stub the HTTP client with a full quote payload.
	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)

	var gotURL string
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			gotURL = req.URL.String()
			return jsonResponse(http.StatusOK, `{"c":189.5,"d":1.25,"dp":0.66,"h":190.1,"l":187.2,"o":188.0,"pc":188.25}`), nil
		}).
		Times(1)

	client, err := finnhub.NewClient("secret", finnhub.WithHTTPClient(httpClient))
	require.NoError(t, err)

	// Act: fetch a quote.
	q, err := client.Quote(t.Context(), "AAPL")

	// Assert: all fields mapped and the request carried symbol + token.
	require.NoError(t, err)
	require.Equal(t, 189.5, q.Current)
	require.Equal(t, 1.25, q.Change)
	require.Equal(t, 0.66, q.ChangePercent)
	require.Equal(t, 190.1, q.High)
	require.Equal(t, 187.2, q.Low)
	require.Equal(t, 188.0, q.Open)
	require.Equal(t, 188.25, q.PreviousClose)
	require.Contains(t, gotURL, "/quote?")
	require.Contains(t, gotURL, "symbol=AAPL")
	require.Contains(t, gotURL, "token=secret")
}

func TestQuote_Non200Status(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)
	httpClient.EXPECT().
		Do(gomock.Any()).
		Return(jsonResponse(http.StatusTooManyRequests, `{}`), nil).
		Times(1)

	client, err := finnhub.NewClient("secret", finnhub.WithHTTPClient(httpClient))
	require.NoError(t, err)

	_, err = client.Quote(t.Context(), "AAPL")
	require.Error(t, err)
	require.Contains(t, err.Error(), "429")
}

func TestCompanyNews_ParsesAndTags(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)

	var gotURL string
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			gotURL = req.URL.String()
			body := `[{"id":7,"category":"company","datetime":1700000000,"headline":"h1","image":"i","related":"AAPL","source":"wire","summary":"s","url":"u"},
				{"id":8,"category":"company","datetime":1700000100,"headline":"h2","image":"","related":"AAPL","source":"wire","summary":"s2","url":"u2"}]`
			return jsonResponse(http.StatusOK, body), nil
		}).
		Times(1)

	client, err := finnhub.NewClient("secret", finnhub.WithHTTPClient(httpClient))
	require.NoError(t, err)

	from := time.Date(2023, 11, 8, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, 11, 14, 0, 0, 0, 0, time.UTC)
	items, err := client.CompanyNews(t.Context(), "AAPL", from, to)

	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, int64(7), items[0].ID)
	require.Equal(t, "h1", items[0].Headline)
	require.Equal(t, "AAPL", items[0].Symbol)
	require.Equal(t, "AAPL", items[1].Symbol)
	require.Contains(t, gotURL, "/company-news?")
	require.Contains(t, gotURL, "from=2023-11-08")
	require.Contains(t, gotURL, "to=2023-11-14")
	require.Contains(t, gotURL, "token=secret")
}

func TestCompanyNews_Non200Status(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)
	httpClient.EXPECT().
		Do(gomock.Any()).
		Return(jsonResponse(http.StatusForbidden, `{}`), nil).
		Times(1)

	client, err := finnhub.NewClient("secret", finnhub.WithHTTPClient(httpClient))
	require.NoError(t, err)

	_, err = client.CompanyNews(t.Context(), "AAPL", time.Now().AddDate(0, 0, -6), time.Now())
	require.Error(t, err)
	require.Contains(t, err.Error(), "403")
}
