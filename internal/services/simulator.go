package services

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"
	"time"

	"github.com/stockpredictor/backend/internal/dto"
)

// simulator generates plausible placeholder market data when no provider is
// configured or every provider failed. Output is deterministic per symbol
// and day, so repeated requests within a session look stable. Everything it
// returns is stamped OriginSimulated.
type simulator struct {
	now func() time.Time
}

func newSimulator() *simulator {
	return &simulator{now: time.Now}
}

func (s *simulator) seed(symbol string) int64 {
	h := fnv.New64a()
	h.Write([]byte(strings.ToUpper(symbol)))
	h.Write([]byte(s.now().UTC().Format("2006-01-02")))
	return int64(h.Sum64())
}

// basePrice derives a stable price level in the $10-$510 range per symbol.
func (s *simulator) basePrice(symbol string) float64 {
	h := fnv.New64a()
	h.Write([]byte(strings.ToUpper(symbol)))
	return 10 + float64(h.Sum64()%50000)/100
}

func (s *simulator) Quote(symbol string) dto.Quote {
	rng := rand.New(rand.NewSource(s.seed(symbol)))
	base := s.basePrice(symbol)

	prevClose := base * (1 + (rng.Float64()-0.5)*0.02)
	current := prevClose * (1 + (rng.Float64()-0.5)*0.06)
	high := max(current, prevClose) * (1 + rng.Float64()*0.02)
	low := min(current, prevClose) * (1 - rng.Float64()*0.02)
	change := current - prevClose

	return dto.Quote{
		Symbol:        strings.ToUpper(symbol),
		CurrentPrice:  round2(current),
		Change:        round2(change),
		PercentChange: round2(change / prevClose * 100),
		High:          round2(high),
		Low:           round2(low),
		Open:          round2(prevClose * (1 + (rng.Float64()-0.5)*0.01)),
		PreviousClose: round2(prevClose),
		Timestamp:     s.now().UTC(),
		Origin:        dto.OriginSimulated,
	}
}

func (s *simulator) Candles(symbol, resolution string, from, to time.Time) dto.CandleSeries {
	step := 24 * time.Hour
	switch resolution {
	case dto.ResolutionMinute:
		step = time.Minute
	case dto.ResolutionHour:
		step = time.Hour
	}

	rng := rand.New(rand.NewSource(s.seed(symbol)))
	price := s.basePrice(symbol)

	var candles []dto.Candle
	for ts := from; ts.Before(to) && len(candles) < 500; ts = ts.Add(step) {
		open := price
		// Random walk with mild per-bar drift.
		price *= 1 + (rng.Float64()-0.5)*0.04
		high := max(open, price) * (1 + rng.Float64()*0.01)
		low := min(open, price) * (1 - rng.Float64()*0.01)
		candles = append(candles, dto.Candle{
			Time:   ts,
			Open:   round2(open),
			High:   round2(high),
			Low:    round2(low),
			Close:  round2(price),
			Volume: 100000 + rng.Int63n(5000000),
		})
	}

	return dto.CandleSeries{
		Symbol:     strings.ToUpper(symbol),
		Resolution: resolution,
		Candles:    candles,
		Origin:     dto.OriginSimulated,
	}
}

func (s *simulator) CompanyProfile(symbol string) dto.CompanyProfile {
	upper := strings.ToUpper(symbol)
	return dto.CompanyProfile{
		Symbol:    upper,
		Name:      upper + " Corporation",
		Exchange:  "SIMULATED",
		Industry:  "Technology",
		Currency:  "USD",
		MarketCap: round2(s.basePrice(symbol) * 1e7),
		Origin:    dto.OriginSimulated,
	}
}

var simulatedHeadlines = []string{
	"%s shares swing as traders weigh earnings outlook",
	"Analysts split on %s ahead of quarterly report",
	"%s announces expansion into new markets",
	"Institutional investors adjust %s positions",
	"%s volatility rises on sector rotation",
}

func (s *simulator) News(topic string) []dto.Article {
	rng := rand.New(rand.NewSource(s.seed(topic)))
	now := s.now().UTC()

	articles := make([]dto.Article, len(simulatedHeadlines))
	for i, tmpl := range simulatedHeadlines {
		articles[i] = dto.Article{
			Headline:    fmt.Sprintf(tmpl, strings.ToUpper(topic)),
			Summary:     "Simulated placeholder article. Configure a news provider API key for live coverage.",
			Source:      "simulated",
			PublishedAt: now.Add(-time.Duration(rng.Intn(72)) * time.Hour),
		}
	}
	return articles
}

func (s *simulator) Search(query string) []dto.SymbolMatch {
	upper := strings.ToUpper(strings.TrimSpace(query))
	if upper == "" {
		return nil
	}
	return []dto.SymbolMatch{
		{Symbol: upper, Description: upper + " Corporation (simulated)", Type: "Common Stock"},
	}
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
