package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/tidwall/gjson"

	"github.com/minhyannv/pizzeria-agent-go/pkg/cart"
	loggerpkg "github.com/minhyannv/pizzeria-agent-go/pkg/logger"
	"github.com/minhyannv/pizzeria-agent-go/pkg/menu"
	"github.com/minhyannv/pizzeria-agent-go/pkg/payment"
)

type tool interface {
	definition() openai.ChatCompletionToolParam
	execute(argText string) (string, error)
	name() string
}

// Context carries the shop state the tools operate on.
type Context struct {
	Catalog  *menu.Catalog
	Cart     *cart.Cart
	Payments *payment.Processor
	Verbose  bool
	Ctx      context.Context
	Logger   loggerpkg.Logger
}

func (c Context) debugf(format string, args ...any) {
	loggerpkg.Debugf(c.Verbose, c.Logger, format, args...)
}

// Registry holds registered tools and handles execution.
type Registry struct {
	registry map[string]tool
	ctx      Context
	params   []openai.ChatCompletionToolParam
}

type toolResponse struct {
	OK   bool        `json:"ok"`
	Tool string      `json:"tool,omitempty"`
	Data interface{} `json:"data,omitempty"`
	Err  string      `json:"error,omitempty"`
}

// New builds a registry with the menu, cart and payment tools.
func New(ctx Context) (*Registry, error) {
	if ctx.Catalog == nil {
		return nil, errors.New("catalog is required")
	}
	if ctx.Cart == nil {
		return nil, errors.New("cart is required")
	}
	if ctx.Payments == nil {
		return nil, errors.New("payment processor is required")
	}
	if ctx.Logger == nil {
		ctx.Logger = loggerpkg.NopLogger{}
	}
	t := &Registry{
		registry: make(map[string]tool),
		ctx:      ctx,
	}

	t.register(&availablePizzasTool{ctx: ctx})
	t.register(&addToCartTool{ctx: ctx})
	t.register(&removeFromCartTool{ctx: ctx})
	t.register(&viewCartTool{ctx: ctx})
	t.register(&clearCartTool{ctx: ctx})
	t.register(&processPaymentTool{ctx: ctx})
	return t, nil
}

func (t *Registry) register(toolImpl tool) {
	t.registry[toolImpl.name()] = toolImpl
	t.params = append(t.params, toolImpl.definition())
	t.ctx.debugf("registered tool: %s", toolImpl.name())
}

// Definitions returns a copy of the tool definitions sent to the model.
func (t *Registry) Definitions() []openai.ChatCompletionToolParam {
	out := make([]openai.ChatCompletionToolParam, len(t.params))
	copy(out, t.params)
	return out
}

// Names lists the registered tool names in registration order.
func (t *Registry) Names() []string {
	names := make([]string, 0, len(t.params))
	for _, p := range t.params {
		names = append(names, p.Function.Name)
	}
	return names
}

// Execute runs the named tool with the JSON argument text produced by the
// model. Tool failures are reported inside the returned envelope; the error
// is non-nil only when the envelope itself cannot be encoded.
func (t *Registry) Execute(name, argText string) (string, error) {
	if t.ctx.Ctx != nil {
		select {
		case <-t.ctx.Ctx.Done():
			return marshalToolResponse(name, nil, t.ctx.Ctx.Err())
		default:
		}
	}

	toolImpl, ok := t.registry[name]
	if !ok {
		return marshalToolResponse(name, nil, fmt.Errorf("unknown tool: %s", name))
	}

	return toolImpl.execute(argText)
}

func marshalToolResponse(toolName string, data interface{}, err error) (string, error) {
	resp := toolResponse{
		OK:   err == nil,
		Tool: toolName,
		Data: data,
	}
	if err != nil {
		resp.Err = err.Error()
	}
	payload, marshalErr := json.Marshal(resp)
	if marshalErr != nil {
		return "", marshalErr
	}
	return string(payload), nil
}

// stringArg extracts a required, non-blank string argument.
func stringArg(argText, key string) (string, error) {
	if strings.TrimSpace(argText) == "" {
		argText = "{}"
	}
	if !gjson.Valid(argText) {
		return "", errors.New("arguments are not valid JSON")
	}
	value := gjson.Get(argText, key)
	if !value.Exists() || value.Type != gjson.String {
		return "", fmt.Errorf("%s is required", key)
	}
	s := strings.TrimSpace(value.String())
	if s == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return s, nil
}

func stringParam(name, description string) openai.FunctionParameters {
	return openai.FunctionParameters{
		"type": "object",
		"properties": map[string]any{
			name: map[string]any{
				"type":        "string",
				"description": description,
			},
		},
		"required": []string{name},
	}
}

func noParams() openai.FunctionParameters {
	return openai.FunctionParameters{
		"type":       "object",
		"properties": map[string]any{},
	}
}
