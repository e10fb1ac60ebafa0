package canvas

// Widget categories used to cluster the palette.
const (
	CategoryQuote = "Quote"
	CategoryTrade = "Trade"
)

// WidgetType is a static palette entry a canvas widget is stamped from.
type WidgetType struct {
	TypeID      string `json:"typeId" firestore:"typeId"`
	Name        string `json:"name" firestore:"name"`
	Icon        string `json:"icon" firestore:"icon"`
	Category    string `json:"category" firestore:"category"`
	Description string `json:"description" firestore:"description"`
}

// Palette is the read-only catalog of widget types available to the builder.
// It is constructed once at startup and never mutated.
type Palette struct {
	types []WidgetType
}

// NewPalette returns the built-in widget catalog.
func NewPalette() *Palette {
	return &Palette{types: []WidgetType{
		{TypeID: "chart", Name: "Chart", Icon: "📈", Category: CategoryQuote, Description: "Real-time stock chart"},
		{TypeID: "options", Name: "Options", Icon: "📋", Category: CategoryQuote, Description: "Options data"},
		{TypeID: "quotes", Name: "Quotes", Icon: "💰", Category: CategoryQuote, Description: "Live quotes"},
		{TypeID: "key-stats", Name: "Key Statistics", Icon: "📊", Category: CategoryQuote, Description: "Key metrics"},
		{TypeID: "time-sales", Name: "Time & Sales", Icon: "⏰", Category: CategoryQuote, Description: "Transaction history"},
		{TypeID: "volume-analysis", Name: "Volume Analysis", Icon: "📶", Category: CategoryQuote, Description: "Volume patterns"},
		{TypeID: "order-book", Name: "Order Book", Icon: "📖", Category: CategoryTrade, Description: "Market depth"},
		{TypeID: "noii", Name: "NOII", Icon: "🔔", Category: CategoryTrade, Description: "Imbalance info"},
		{TypeID: "options-stats", Name: "Options Statistics", Icon: "🎯", Category: CategoryTrade, Description: "Options analytics"},
		{TypeID: "warrants", Name: "Warrant & CBBC", Icon: "📜", Category: CategoryTrade, Description: "Warrants data"},
		{TypeID: "brokers", Name: "Brokers", Icon: "🏢", Category: CategoryTrade, Description: "Broker activity"},
	}}
}

// Types returns every palette entry in catalog order.
func (p *Palette) Types() []WidgetType {
	out := make([]WidgetType, len(p.types))
	copy(out, p.types)
	return out
}

// ListByCategory returns the palette entries in the given category,
// preserving catalog order.
func (p *Palette) ListByCategory(category string) []WidgetType {
	var out []WidgetType
	for _, t := range p.types {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// Lookup returns the palette entry for typeID.
func (p *Palette) Lookup(typeID string) (WidgetType, bool) {
	for _, t := range p.types {
		if t.TypeID == typeID {
			return t, true
		}
	}
	return WidgetType{}, false
}

// Categories returns the distinct categories in catalog order.
func (p *Palette) Categories() []string {
	var out []string
	seen := make(map[string]bool)
	for _, t := range p.types {
		if !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, t.Category)
		}
	}
	return out
}
