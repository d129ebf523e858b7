package summarizer

import (
	"context"
)

// Input describes the payload for a summary request.
type Input struct {
	// Instruction is the system prompt that sets tone and format.
	Instruction string
	// Text is the content to summarise.
	Text string
}

// Summarizer produces a single summary for a given input text.
type Summarizer interface {
	Summarize(ctx context.Context, input Input) (string, error)
}
