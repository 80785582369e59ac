package agent

import (
	loggerpkg "github.com/minhyannv/pizzeria-agent-go/pkg/logger"
	"github.com/minhyannv/pizzeria-agent-go/pkg/tools"
)

// AgentOption configures optional runtime dependencies for AgentLoop.
type AgentOption func(*agentDeps)

type agentDeps struct {
	logger       loggerpkg.Logger
	tools        *tools.Registry
	systemPrompt string
	client       ChatClient
}

// WithLogger injects a logger dependency.
func WithLogger(l loggerpkg.Logger) AgentOption {
	return func(d *agentDeps) {
		d.logger = l
	}
}

// WithTools sets the functions the model may call.
func WithTools(r *tools.Registry) AgentOption {
	return func(d *agentDeps) {
		d.tools = r
	}
}

// WithSystemPrompt sets the first message of every conversation.
func WithSystemPrompt(prompt string) AgentOption {
	return func(d *agentDeps) {
		d.systemPrompt = prompt
	}
}

// WithChatClient replaces the OpenAI client built from the config.
func WithChatClient(c ChatClient) AgentOption {
	return func(d *agentDeps) {
		d.client = c
	}
}
