package finnhub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/stockpredictor/backend/internal/dto"
	"github.com/stockpredictor/backend/internal/errs"
	"github.com/stockpredictor/backend/internal/util"
)

const defaultBaseURL = "https://finnhub.io/api/v1"

// Client is a thin REST client for the Finnhub API. The free tier allows 60
// calls per minute, so every request waits on a token-bucket limiter and
// transport failures get a short retry.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	limiter *util.RateLimiter
}

func New(apiKey string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: 10 * time.Second},
		limiter: util.NewRateLimiter(60),
	}
}

// Configured reports whether a usable API key is present. The original app
// shipped with the "demo" placeholder key, which Finnhub rejects for most
// endpoints.
func (c *Client) Configured() bool {
	return c.apiKey != "" && c.apiKey != "demo"
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	params.Set("token", c.apiKey)
	u := c.baseURL + path + "?" + params.Encode()

	return util.Retry(ctx, 3, 500*time.Millisecond, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpc.Do(req)
		if err != nil {
			return errs.NewExternalServiceError("finnhub", "request failed", true, err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			return errs.NewExternalServiceError("finnhub", "rate limited", true, nil)
		case resp.StatusCode >= 400:
			return errs.NewExternalServiceError("finnhub",
				fmt.Sprintf("unexpected status %d for %s", resp.StatusCode, path),
				resp.StatusCode >= 500, nil)
		}

		return json.NewDecoder(resp.Body).Decode(out)
	})
}

type quoteResponse struct {
	Current       float64 `json:"c"`
	Change        float64 `json:"d"`
	PercentChange float64 `json:"dp"`
	High          float64 `json:"h"`
	Low           float64 `json:"l"`
	Open          float64 `json:"o"`
	PrevClose     float64 `json:"pc"`
	Timestamp     int64   `json:"t"`
}

// Quote fetches the real-time quote for a symbol.
func (c *Client) Quote(ctx context.Context, symbol string) (dto.Quote, error) {
	var raw quoteResponse
	params := url.Values{"symbol": {symbol}}
	if err := c.get(ctx, "/quote", params, &raw); err != nil {
		return dto.Quote{}, err
	}
	if raw.Current == 0 && raw.Timestamp == 0 {
		// Finnhub returns an all-zero body for unknown symbols.
		return dto.Quote{}, errs.NewNotFoundError("no quote for symbol " + symbol)
	}
	return dto.Quote{
		Symbol:        symbol,
		CurrentPrice:  raw.Current,
		Change:        raw.Change,
		PercentChange: raw.PercentChange,
		High:          raw.High,
		Low:           raw.Low,
		Open:          raw.Open,
		PreviousClose: raw.PrevClose,
		Timestamp:     time.Unix(raw.Timestamp, 0).UTC(),
	}, nil
}

type profileResponse struct {
	Name      string  `json:"name"`
	Exchange  string  `json:"exchange"`
	Industry  string  `json:"finnhubIndustry"`
	WebURL    string  `json:"weburl"`
	Logo      string  `json:"logo"`
	Currency  string  `json:"currency"`
	MarketCap float64 `json:"marketCapitalization"`
	Ticker    string  `json:"ticker"`
}

// CompanyProfile fetches company fundamentals for a symbol.
func (c *Client) CompanyProfile(ctx context.Context, symbol string) (dto.CompanyProfile, error) {
	var raw profileResponse
	params := url.Values{"symbol": {symbol}}
	if err := c.get(ctx, "/stock/profile2", params, &raw); err != nil {
		return dto.CompanyProfile{}, err
	}
	if raw.Name == "" {
		return dto.CompanyProfile{}, errs.NewNotFoundError("no profile for symbol " + symbol)
	}
	return dto.CompanyProfile{
		Symbol:    symbol,
		Name:      raw.Name,
		Exchange:  raw.Exchange,
		Industry:  raw.Industry,
		WebURL:    raw.WebURL,
		Logo:      raw.Logo,
		Currency:  raw.Currency,
		MarketCap: raw.MarketCap,
	}, nil
}

type candleResponse struct {
	Open   []float64 `json:"o"`
	High   []float64 `json:"h"`
	Low    []float64 `json:"l"`
	Close  []float64 `json:"c"`
	Volume []int64   `json:"v"`
	Times  []int64   `json:"t"`
	Status string    `json:"s"`
}

// Candles fetches historical OHLCV bars between from and to.
func (c *Client) Candles(ctx context.Context, symbol, resolution string, from, to time.Time) (dto.CandleSeries, error) {
	var raw candleResponse
	params := url.Values{
		"symbol":     {symbol},
		"resolution": {resolution},
		"from":       {strconv.FormatInt(from.Unix(), 10)},
		"to":         {strconv.FormatInt(to.Unix(), 10)},
	}
	if err := c.get(ctx, "/stock/candle", params, &raw); err != nil {
		return dto.CandleSeries{}, err
	}
	if raw.Status != "ok" {
		return dto.CandleSeries{}, errs.NewNotFoundError("no candle data for symbol " + symbol)
	}

	candles := make([]dto.Candle, len(raw.Times))
	for i := range raw.Times {
		candles[i] = dto.Candle{
			Time:   time.Unix(raw.Times[i], 0).UTC(),
			Open:   raw.Open[i],
			High:   raw.High[i],
			Low:    raw.Low[i],
			Close:  raw.Close[i],
			Volume: raw.Volume[i],
		}
	}
	return dto.CandleSeries{Symbol: symbol, Resolution: resolution, Candles: candles}, nil
}

type newsItem struct {
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
	Source   string `json:"source"`
	URL      string `json:"url"`
	Image    string `json:"image"`
	Datetime int64  `json:"datetime"`
}

func toArticles(items []newsItem) []dto.Article {
	articles := make([]dto.Article, len(items))
	for i, it := range items {
		articles[i] = dto.Article{
			Headline:    it.Headline,
			Summary:     it.Summary,
			Source:      it.Source,
			URL:         it.URL,
			ImageURL:    it.Image,
			PublishedAt: time.Unix(it.Datetime, 0).UTC(),
		}
	}
	return articles
}

// MarketNews fetches general market news for a category.
func (c *Client) MarketNews(ctx context.Context, category string) ([]dto.Article, error) {
	var raw []newsItem
	params := url.Values{"category": {category}}
	if err := c.get(ctx, "/news", params, &raw); err != nil {
		return nil, err
	}
	return toArticles(raw), nil
}

// CompanyNews fetches news mentioning a symbol within the date range.
func (c *Client) CompanyNews(ctx context.Context, symbol string, from, to time.Time) ([]dto.Article, error) {
	var raw []newsItem
	params := url.Values{
		"symbol": {symbol},
		"from":   {from.Format("2006-01-02")},
		"to":     {to.Format("2006-01-02")},
	}
	if err := c.get(ctx, "/company-news", params, &raw); err != nil {
		return nil, err
	}
	return toArticles(raw), nil
}

type searchResponse struct {
	Count  int `json:"count"`
	Result []struct {
		Symbol      string `json:"symbol"`
		Description string `json:"description"`
		Type        string `json:"type"`
	} `json:"result"`
}

// Search looks up symbols matching a free-text query.
func (c *Client) Search(ctx context.Context, query string) ([]dto.SymbolMatch, error) {
	var raw searchResponse
	params := url.Values{"q": {query}}
	if err := c.get(ctx, "/search", params, &raw); err != nil {
		return nil, err
	}
	matches := make([]dto.SymbolMatch, len(raw.Result))
	for i, r := range raw.Result {
		matches[i] = dto.SymbolMatch{Symbol: r.Symbol, Description: r.Description, Type: r.Type}
	}
	return matches, nil
}
