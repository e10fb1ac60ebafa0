package dto

import "time"

// Sentiment and recommendation labels produced by the analysis service.
const (
	SentimentBullish = "bullish"
	SentimentBearish = "bearish"
	SentimentNeutral = "neutral"

	RecommendationBuy  = "buy"
	RecommendationSell = "sell"
	RecommendationHold = "hold"
)

type AnalysisResponse struct {
	Symbol         string    `json:"symbol"`
	Commentary     string    `json:"commentary"`
	Sentiment      string    `json:"sentiment"`
	Recommendation string    `json:"recommendation"`
	Origin         string    `json:"origin"`
	GeneratedAt    time.Time `json:"generatedAt"`
	Cached         bool      `json:"cached"`
}
