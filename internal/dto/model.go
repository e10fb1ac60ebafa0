package dto

import "github.com/stockpredictor/backend/internal/canvas"

// SaveModelRequest carries a canvas layout from the builder UI. The service
// normalizes the geometry through the canvas invariants before storing it.
type SaveModelRequest struct {
	Name    string                `json:"name"`
	Widgets []canvas.PlacedWidget `json:"widgets"`
}

// WidgetCategoryGroup is one palette category with its widget types, as
// served by the widget-types endpoint.
type WidgetCategoryGroup struct {
	Category string              `json:"category"`
	Widgets  []canvas.WidgetType `json:"widgets"`
}
