package dto

// VertexGenerateRequest is a single prompt-completion call; the commentary
// flow needs no tools or multi-turn history.
type VertexGenerateRequest struct {
	Model           string
	System          string
	UserMessage     string
	Temperature     *float32
	MaxOutputTokens *int32
}

type VertexGenerateResponse struct {
	Text string
}
