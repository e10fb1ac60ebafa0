package dto

type RegisterRequest struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}

// WatchlistRequest replaces the user's watchlist wholesale; the UI always
// sends the full list.
type WatchlistRequest struct {
	Symbols []string `json:"symbols"`
}
