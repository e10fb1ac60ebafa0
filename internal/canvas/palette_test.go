package canvas

import "testing"

func TestPaletteCatalog(t *testing.T) {
	p := NewPalette()

	if got := len(p.Types()); got != 11 {
		t.Fatalf("catalog has %d entries, want 11", got)
	}

	quote := p.ListByCategory(CategoryQuote)
	trade := p.ListByCategory(CategoryTrade)
	if len(quote) != 6 || len(trade) != 5 {
		t.Fatalf("category split %d/%d, want 6/5", len(quote), len(trade))
	}

	w, ok := p.Lookup("order-book")
	if !ok || w.Name != "Order Book" || w.Category != CategoryTrade {
		t.Fatalf("Lookup(order-book) = %+v, %v", w, ok)
	}
	if _, ok := p.Lookup("missing"); ok {
		t.Fatalf("Lookup returned a widget for an unknown type")
	}

	cats := p.Categories()
	if len(cats) != 2 || cats[0] != CategoryQuote || cats[1] != CategoryTrade {
		t.Fatalf("Categories() = %v", cats)
	}
}

func TestPaletteTypesReturnsCopy(t *testing.T) {
	p := NewPalette()
	list := p.Types()
	list[0].Name = "tampered"
	if p.Types()[0].Name == "tampered" {
		t.Fatalf("mutating the returned slice altered the palette")
	}
}
