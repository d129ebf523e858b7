package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tldr/internal/domain"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const DefaultModel = openai.ChatModelGPT4oMini

// OpenAISummarizer calls OpenAI's Chat Completions API to produce summaries.
type OpenAISummarizer struct {
	client openai.Client
	model  openai.ChatModel
}

// NewOpenAISummarizer builds a new summarizer instance. An empty model falls
// back to DefaultModel; a non-empty baseURL points the client at an
// OpenAI-compatible backend.
func NewOpenAISummarizer(apiKey, model, baseURL string) (*OpenAISummarizer, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("API key is empty")
	}

	model = strings.TrimSpace(model)
	if model == "" {
		model = string(DefaultModel)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAISummarizer{
		client: openai.NewClient(opts...),
		model:  openai.ChatModel(model),
	}, nil
}

// Summarize sends the instruction as the system message and the text as the
// user message in a single call. An empty completion yields
// domain.NoSummaryGenerated rather than an error.
func (s *OpenAISummarizer) Summarize(
	ctx context.Context,
	input Input,
) (string, error) {
	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: s.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(input.Instruction),
			openai.UserMessage(input.Text),
		},
	})
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}

	if resp == nil || len(resp.Choices) == 0 {
		return domain.NoSummaryGenerated, nil
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return domain.NoSummaryGenerated, nil
	}

	return summary, nil
}
