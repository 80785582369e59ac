package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"

	configpkg "github.com/minhyannv/pizzeria-agent-go/pkg/config"
	loggerpkg "github.com/minhyannv/pizzeria-agent-go/pkg/logger"
	"github.com/minhyannv/pizzeria-agent-go/pkg/tools"
)

// Role is the role for a transcript message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry of the conversation transcript.
type Message struct {
	Role    Role
	Content string
}

// AgentLoop holds agent runtime state.
type AgentLoop struct {
	config       configpkg.Config
	client       ChatClient
	tools        *tools.Registry
	SystemPrompt string
	history      []Message

	ctx     context.Context
	logger  loggerpkg.Logger
	verbose bool
}

// New initializes an AgentLoop with the provided context, config, and dependencies.
func New(ctx context.Context, cfg configpkg.Config, opts ...AgentOption) (*AgentLoop, error) {
	cfg = configpkg.Normalize(cfg)
	deps := agentDeps{logger: loggerpkg.NopLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&deps)
		}
	}
	if deps.logger == nil {
		deps.logger = loggerpkg.NopLogger{}
	}

	loggerpkg.Debug(cfg.Verbose, deps.logger, "agent_loop init", map[string]any{
		"endpoint":    cfg.Endpoint,
		"deployment":  cfg.Deployment,
		"api_version": cfg.APIVersion,
		"base_url":    cfg.BaseURL,
		"max_turns":   cfg.MaxTurns,
		"max_tokens":  cfg.MaxTokens,
		"temperature": cfg.Temperature,
	})
	if deps.client == nil && cfg.APIKey == "" {
		return nil, errors.New("APIKey is not set")
	}
	if cfg.Deployment == "" {
		return nil, errors.New("Deployment is not set")
	}
	if deps.tools == nil {
		return nil, errors.New("tool registry is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	client := deps.client
	if client == nil {
		client = newChatClient(cfg)
	}

	systemPrompt := strings.TrimSpace(deps.systemPrompt)
	loggerpkg.Debug(cfg.Verbose, deps.logger, "system prompt ready", map[string]any{
		"bytes": len(systemPrompt),
		"tools": deps.tools.Names(),
	})

	a := &AgentLoop{
		config:       cfg,
		client:       client,
		tools:        deps.tools,
		SystemPrompt: systemPrompt,

		ctx:     ctx,
		logger:  deps.logger,
		verbose: cfg.Verbose,
	}
	a.Reset()
	return a, nil
}

// runOnce performs one model completion request.
func (a *AgentLoop) runOnce(params openai.ChatCompletionNewParams) (openai.ChatCompletionMessage, error) {
	a.debugf("iteration: sending request")
	completion, err := a.client.New(a.ctx, params)
	if err != nil {
		return openai.ChatCompletionMessage{}, fmt.Errorf("chat completion: %w", err)
	}
	if completion == nil || len(completion.Choices) == 0 {
		return openai.ChatCompletionMessage{}, errors.New("empty completion choices")
	}
	return completion.Choices[0].Message, nil
}

// runIteration executes iterative model/tool turns for one user interaction.
func (a *AgentLoop) runIteration(
	messages []openai.ChatCompletionMessageParamUnion,
	maxTurns int,
) (openai.ChatCompletionMessage, error) {
	currentMessages := append([]openai.ChatCompletionMessageParamUnion{}, messages...)

	for turn := 0; turn < maxTurns; turn++ {
		a.debugf("iteration: %d/%d", turn+1, maxTurns)
		message, err := a.runOnce(a.newChatParams(currentMessages))
		if err != nil {
			return openai.ChatCompletionMessage{}, err
		}

		if len(message.ToolCalls) == 0 {
			return message, nil
		}

		// The assistant tool-call turn must precede its tool responses.
		currentMessages = append(currentMessages, message.ToParam())
		a.debugf("iteration: assistant requested %d tool call(s)", len(message.ToolCalls))
		currentMessages = a.appendToolResponses(currentMessages, message.ToolCalls)
	}

	return openai.ChatCompletionMessage{}, errors.New("max turns reached before assistant produced a final response")
}

// Run processes one user input and returns a single final assistant message.
// Conversation state is persisted inside AgentLoop and can be reset via Reset.
func (a *AgentLoop) Run(userInput string) (openai.ChatCompletionMessage, error) {
	userInput = strings.TrimSpace(userInput)
	if userInput == "" {
		return openai.ChatCompletionMessage{}, errors.New("user input is required")
	}
	previousLen := len(a.history)
	a.history = append(a.history, Message{Role: RoleUser, Content: userInput})

	finalMessage, err := a.runIteration(toOpenAIMessages(a.history), a.config.MaxTurns)
	if err != nil {
		a.history = a.history[:previousLen]
		loggerpkg.Debug(a.verbose, a.logger, "turn failed", map[string]any{"error": err.Error()})
		return openai.ChatCompletionMessage{}, err
	}

	a.history = append(a.history, Message{Role: RoleAssistant, Content: finalMessage.Content})
	return finalMessage, nil
}

// Reset clears conversation history and keeps only the system prompt.
func (a *AgentLoop) Reset() {
	a.history = nil
	if a.SystemPrompt != "" {
		a.history = []Message{{Role: RoleSystem, Content: a.SystemPrompt}}
	}
}

// Transcript returns a copy of the conversation so far.
func (a *AgentLoop) Transcript() []Message {
	out := make([]Message, len(a.history))
	copy(out, a.history)
	return out
}

func (a *AgentLoop) debugf(format string, args ...any) {
	loggerpkg.Debugf(a.verbose, a.logger, format, args...)
}

func (a *AgentLoop) newChatParams(messages []openai.ChatCompletionMessageParamUnion) openai.ChatCompletionNewParams {
	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(a.config.Deployment),
		Messages:    messages,
		Tools:       a.tools.Definitions(),
		Temperature: openai.Float(a.config.Temperature),
	}
	if a.config.MaxTokens > 0 {
		params.MaxTokens = openai.Int(a.config.MaxTokens)
	}
	return params
}

func (a *AgentLoop) appendToolResponses(
	messages []openai.ChatCompletionMessageParamUnion,
	toolCalls []openai.ChatCompletionMessageToolCall,
) []openai.ChatCompletionMessageParamUnion {
	updated := messages
	for _, call := range toolCalls {
		a.debugf("tool call: %s %s", call.Function.Name, call.Function.Arguments)
		output, err := a.tools.Execute(call.Function.Name, call.Function.Arguments)
		if err != nil {
			output = fmt.Sprintf(`{"ok":false,"error":%q}`, err.Error())
		}
		updated = append(updated, openai.ToolMessage(output, call.ID))
	}
	return updated
}

func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(msg.Content))
		case RoleAssistant:
			out = append(out, openai.AssistantMessage(msg.Content))
		default:
			out = append(out, openai.UserMessage(msg.Content))
		}
	}
	return out
}
