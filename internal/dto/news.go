package dto

import "time"

// News categories accepted by the market-news endpoint.
const (
	NewsCategoryGeneral = "general"
	NewsCategoryForex   = "forex"
	NewsCategoryCrypto  = "crypto"
	NewsCategoryMerger  = "merger"
)

type Article struct {
	Headline    string    `json:"headline"`
	Summary     string    `json:"summary"`
	Source      string    `json:"source"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
}

type NewsResult struct {
	Category string    `json:"category,omitempty"`
	Symbol   string    `json:"symbol,omitempty"`
	Articles []Article `json:"articles"`
	Origin   string    `json:"origin"`
}
