package alpacamd

import (
	"context"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"

	"github.com/stockpredictor/backend/internal/dto"
	"github.com/stockpredictor/backend/internal/errs"
)

// Adapter wraps the Alpaca market-data SDK as the secondary quote and
// candle provider, and a news source.
type Adapter struct {
	client     *marketdata.Client
	configured bool
}

func NewAdapter(apiKey, apiSecret string) *Adapter {
	return &Adapter{
		client: marketdata.NewClient(marketdata.ClientOpts{
			APIKey:    apiKey,
			APISecret: apiSecret,
		}),
		configured: apiKey != "" && apiSecret != "",
	}
}

func (a *Adapter) Configured() bool { return a.configured }

// Quote builds a quote from the symbol snapshot: latest trade price against
// the daily and previous-daily bars.
func (a *Adapter) Quote(ctx context.Context, symbol string) (dto.Quote, error) {
	snap, err := a.client.GetSnapshot(symbol, marketdata.GetSnapshotRequest{})
	if err != nil {
		return dto.Quote{}, errs.NewExternalServiceError("alpaca", "snapshot request failed", true, err)
	}
	if snap == nil || snap.LatestTrade == nil || snap.DailyBar == nil || snap.PrevDailyBar == nil {
		return dto.Quote{}, errs.NewNotFoundError("no snapshot for symbol " + symbol)
	}

	price := snap.LatestTrade.Price
	prevClose := snap.PrevDailyBar.Close
	change := price - prevClose
	percent := 0.0
	if prevClose != 0 {
		percent = change / prevClose * 100
	}
	return dto.Quote{
		Symbol:        symbol,
		CurrentPrice:  price,
		Change:        change,
		PercentChange: percent,
		High:          snap.DailyBar.High,
		Low:           snap.DailyBar.Low,
		Open:          snap.DailyBar.Open,
		PreviousClose: prevClose,
		Timestamp:     snap.LatestTrade.Timestamp,
	}, nil
}

func timeFrameFor(resolution string) marketdata.TimeFrame {
	switch resolution {
	case dto.ResolutionMinute:
		return marketdata.OneMin
	case dto.ResolutionHour:
		return marketdata.OneHour
	default:
		return marketdata.OneDay
	}
}

// Candles fetches historical bars between from and to.
func (a *Adapter) Candles(ctx context.Context, symbol, resolution string, from, to time.Time) (dto.CandleSeries, error) {
	bars, err := a.client.GetBars(symbol, marketdata.GetBarsRequest{
		TimeFrame: timeFrameFor(resolution),
		Start:     from,
		End:       to,
	})
	if err != nil {
		return dto.CandleSeries{}, errs.NewExternalServiceError("alpaca", "bars request failed", true, err)
	}
	if len(bars) == 0 {
		return dto.CandleSeries{}, errs.NewNotFoundError("no bars for symbol " + symbol)
	}

	candles := make([]dto.Candle, len(bars))
	for i, b := range bars {
		candles[i] = dto.Candle{
			Time:   b.Timestamp,
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: int64(b.Volume),
		}
	}
	return dto.CandleSeries{Symbol: symbol, Resolution: resolution, Candles: candles}, nil
}

// News fetches recent articles mentioning the symbol.
func (a *Adapter) News(ctx context.Context, symbol string, start, end time.Time) ([]dto.Article, error) {
	items, err := a.client.GetNews(marketdata.GetNewsRequest{
		Symbols:    []string{symbol},
		Start:      start,
		End:        end,
		TotalLimit: 50,
		Sort:       marketdata.SortDesc,
	})
	if err != nil {
		return nil, errs.NewExternalServiceError("alpaca", "news request failed", true, err)
	}

	articles := make([]dto.Article, 0, len(items))
	for _, it := range items {
		articles = append(articles, dto.Article{
			Headline:    it.Headline,
			Summary:     it.Summary,
			Source:      it.Author,
			URL:         it.URL,
			PublishedAt: it.CreatedAt,
		})
	}
	return articles, nil
}
