package dto

import "time"

// Origin marks whether a payload carries live provider data or the simulated
// fallback. The fallback behavior is deliberate; hiding it from the caller
// is not.
const (
	OriginLive      = "live"
	OriginSimulated = "simulated"
)

// Candle resolutions accepted by the candles endpoint.
const (
	ResolutionMinute = "1"
	ResolutionHour   = "60"
	ResolutionDay    = "D"
)

type Quote struct {
	Symbol        string    `json:"symbol"`
	CurrentPrice  float64   `json:"currentPrice"`
	Change        float64   `json:"change"`
	PercentChange float64   `json:"percentChange"`
	High          float64   `json:"high"`
	Low           float64   `json:"low"`
	Open          float64   `json:"open"`
	PreviousClose float64   `json:"previousClose"`
	Timestamp     time.Time `json:"timestamp"`
	Origin        string    `json:"origin"`
}

type Candle struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

type CandleSeries struct {
	Symbol     string   `json:"symbol"`
	Resolution string   `json:"resolution"`
	Candles    []Candle `json:"candles"`
	Origin     string   `json:"origin"`
}

type CompanyProfile struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Exchange  string  `json:"exchange"`
	Industry  string  `json:"industry"`
	WebURL    string  `json:"webUrl"`
	Logo      string  `json:"logo"`
	Currency  string  `json:"currency"`
	MarketCap float64 `json:"marketCap"`
	Origin    string  `json:"origin"`
}

type SymbolMatch struct {
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type SearchResult struct {
	Query   string        `json:"query"`
	Matches []SymbolMatch `json:"matches"`
	Origin  string        `json:"origin"`
}
