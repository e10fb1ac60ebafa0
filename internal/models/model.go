package models

import (
	"time"

	"github.com/stockpredictor/backend/internal/canvas"
)

// Model is a saved canvas layout stored in Firestore under
// users/{uid}/models. Widgets are stored by value; a saved model never
// changes when the user keeps editing the live canvas.
type Model struct {
	ModelID   string                `firestore:"modelId" json:"modelId"`
	Name      string                `firestore:"name" json:"name"`
	Widgets   []canvas.PlacedWidget `firestore:"widgets" json:"widgets"`
	Deployed  bool                  `firestore:"deployed" json:"deployed"`
	CreatedAt time.Time             `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time             `firestore:"updatedAt" json:"updatedAt"`
}
