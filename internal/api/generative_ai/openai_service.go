package generativeAI

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// OpenAIClient is the OpenAI-backed sibling of AIClient, used when only an
// OPENAI_API_KEY is configured. Safe for concurrent use.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(model string) (*OpenAIClient, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

// GenerateContentStream starts a chat completion stream and yields the delta
// content of each received chunk.
func (c *OpenAIClient) GenerateContentStream(ctx context.Context, prompt string) (iter.Seq2[string, error], error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "OpenAIGenerateContentStream", trace.WithAttributes(
		attribute.Int("prompt.length", len(prompt)),
		attribute.String("model", c.model),
	))
	defer span.End()

	stream, err := c.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Stream: true,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create chat completion stream")
		return nil, fmt.Errorf("failed to create chat completion stream: %w", err)
	}
	span.SetStatus(codes.Ok, "Content stream initiated")

	return func(yield func(string, error) bool) {
		defer stream.Close()
		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield("", err)
				return
			}
			if len(resp.Choices) == 0 || resp.Choices[0].Delta.Content == "" {
				continue
			}
			if !yield(resp.Choices[0].Delta.Content, nil) {
				return
			}
		}
	}, nil
}
