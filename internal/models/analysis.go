package models

import "time"

// Analysis is a cached AI commentary document stored per user and symbol.
// Origin records whether the commentary came from the model or from the
// simulated fallback, so stale or placeholder text is never mistaken for a
// fresh generation.
type Analysis struct {
	Symbol         string    `firestore:"symbol" json:"symbol"`
	Commentary     string    `firestore:"commentary" json:"commentary"`
	Sentiment      string    `firestore:"sentiment" json:"sentiment"`
	Recommendation string    `firestore:"recommendation" json:"recommendation"`
	Origin         string    `firestore:"origin" json:"origin"`
	GeneratedAt    time.Time `firestore:"generatedAt" json:"generatedAt"`
}
