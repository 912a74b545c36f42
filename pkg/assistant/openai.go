package assistant

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultChatModel is used when no model is configured.
const DefaultChatModel = openai.ChatModelGPT4oMini

// personaPrompt sets the assistant's voice for free-form chat.
const personaPrompt = `You are JARVIS, the AI assistant from Iron Man. Personality:
- Professional, sophisticated, British accent personality
- Highly intelligent and helpful
- Calm and composed
- Speak concisely - 1-3 sentences max for normal conversation
- Occasionally show dry wit
- Refer to the user as "Sir" occasionally
- Be helpful and efficient
- Can joke if want to

Keep responses SHORT for natural conversation.`

// Replies stay short and conversational.
const (
	chatTemperature = 0.7
	chatMaxTokens   = 200
)

// OpenAIChat is the ChatModel implementation over the OpenAI API.
type OpenAIChat struct {
	client *openai.Client
	model  string
}

// NewOpenAIChat builds a chat model. Model and baseURL may be empty.
func NewOpenAIChat(apiKey, model, baseURL string) (*OpenAIChat, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("assistant: openai chat missing api key")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if model == "" {
		model = DefaultChatModel
	}
	client := openai.NewClient(opts...)
	return &OpenAIChat{client: &client, model: model}, nil
}

// Reply implements ChatModel. The persona prompt is prepended; callers
// keep only user/assistant turns in history.
func (c *OpenAIChat) Reply(ctx context.Context, history []ChatMessage) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+1)
	messages = append(messages, openai.SystemMessage(personaPrompt))
	for _, m := range history {
		switch m.Role {
		case "user":
			messages = append(messages, openai.UserMessage(m.Content))
		case "assistant":
			messages = append(messages, openai.AssistantMessage(m.Content))
		}
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Messages:    messages,
		Temperature: openai.Float(chatTemperature),
		MaxTokens:   openai.Int(chatMaxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("openai chat: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai chat: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}
