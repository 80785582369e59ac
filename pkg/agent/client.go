package agent

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"

	configpkg "github.com/minhyannv/pizzeria-agent-go/pkg/config"
)

// ChatClient is the subset of the OpenAI SDK used by AgentLoop. It is
// satisfied by &openai.Client.Chat.Completions.
type ChatClient interface {
	New(ctx context.Context, body openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// newChatClient targets Azure OpenAI when an endpoint is configured and the
// public OpenAI API otherwise.
func newChatClient(cfg configpkg.Config) ChatClient {
	opts := []option.RequestOption{}
	if cfg.Endpoint != "" {
		opts = append(opts,
			azure.WithEndpoint(cfg.Endpoint, cfg.APIVersion),
			azure.WithAPIKey(cfg.APIKey),
		)
	} else {
		if cfg.BaseURL != "" {
			opts = append(opts, option.WithBaseURL(cfg.BaseURL))
		}
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	client := openai.NewClient(opts...)
	return &client.Chat.Completions
}
