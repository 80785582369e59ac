package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/minhyannv/pizzeria-agent-go/pkg/agent"
	configpkg "github.com/minhyannv/pizzeria-agent-go/pkg/config"
	loggerpkg "github.com/minhyannv/pizzeria-agent-go/pkg/logger"
)

// scriptedClient replays canned completions in order.
type scriptedClient struct {
	replies []*openai.ChatCompletion
	calls   int
}

func (c *scriptedClient) New(context.Context, openai.ChatCompletionNewParams, ...option.RequestOption) (*openai.ChatCompletion, error) {
	c.calls++
	if len(c.replies) == 0 {
		return &openai.ChatCompletion{}, nil
	}
	r := c.replies[0]
	c.replies = c.replies[1:]
	return r, nil
}

func completion(content string, calls ...openai.ChatCompletionMessageToolCall) *openai.ChatCompletion {
	return &openai.ChatCompletion{
		Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{Content: content, ToolCalls: calls},
		}},
	}
}

func call(id, name, args string) openai.ChatCompletionMessageToolCall {
	return openai.ChatCompletionMessageToolCall{
		ID:       id,
		Function: openai.ChatCompletionMessageToolCallFunction{Name: name, Arguments: args},
	}
}

func newTestSession(t *testing.T, cfg configpkg.Config, client agent.ChatClient) *session {
	t.Helper()
	if cfg.Deployment == "" {
		cfg.Deployment = "gpt-4o-mini"
	}
	s, err := newSession(context.Background(), cfg, loggerpkg.NopLogger{}, agent.WithChatClient(client))
	if err != nil {
		t.Fatalf("newSession: %v", err)
	}
	return s
}

func runScript(t *testing.T, s *session, input string) string {
	t.Helper()
	var out bytes.Buffer
	if err := runREPL(context.Background(), s, replOptions{}, strings.NewReader(input), &out); err != nil {
		t.Fatalf("runREPL: %v", err)
	}
	return out.String()
}

func TestREPLExitWords(t *testing.T) {
	for _, word := range []string{"exit", "QUIT", "Salir", "/q"} {
		client := &scriptedClient{}
		s := newTestSession(t, configpkg.DefaultConfig(), client)
		out := runScript(t, s, word+"\nhello\n")
		if !strings.Contains(out, goodbye) {
			t.Fatalf("%s: expected goodbye, got:\n%s", word, out)
		}
		if client.calls != 0 {
			t.Fatalf("%s: model should not be called after exit", word)
		}
	}
}

func TestREPLSaysGoodbyeAfterInterrupt(t *testing.T) {
	for _, line := range []string{"salir", "una margherita"} {
		client := &scriptedClient{replies: []*openai.ChatCompletion{completion("hola")}}
		s := newTestSession(t, configpkg.DefaultConfig(), client)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		var out bytes.Buffer
		if err := runREPL(ctx, s, replOptions{}, strings.NewReader(line+"\n"), &out); err != nil {
			t.Fatalf("%s: runREPL: %v", line, err)
		}
		if !strings.Contains(out.String(), goodbye) {
			t.Fatalf("%s: expected goodbye after interrupt, got:\n%s", line, out.String())
		}
		if client.calls != 0 {
			t.Fatalf("%s: model should not be called after interrupt", line)
		}
	}
}

func TestREPLEmptyInput(t *testing.T) {
	client := &scriptedClient{}
	s := newTestSession(t, configpkg.DefaultConfig(), client)
	out := runScript(t, s, "   \n")
	if !strings.Contains(out, emptyInput) {
		t.Fatalf("expected empty input prompt, got:\n%s", out)
	}
	if client.calls != 0 {
		t.Fatal("model should not be called for empty input")
	}
}

func TestREPLOrderAndPay(t *testing.T) {
	client := &scriptedClient{replies: []*openai.ChatCompletion{
		completion("", call("c1", "add_to_cart", `{"pizza_name":"Margherita"}`), call("c2", "add_to_cart", `{"pizza_name":"Hawaiian"}`)),
		completion("Tienes una Margherita y una Hawaiian."),
		completion("", call("c3", "process_payment", `{"payment_method":"tarjeta"}`)),
		completion("Pago de $21.00 con tarjeta completado."),
	}}
	s := newTestSession(t, configpkg.DefaultConfig(), client)

	out := runScript(t, s, "una margherita y una hawaiian\n/cart\npago con tarjeta\n/cart\nsalir\n")
	for _, want := range []string{
		replyPrefix + "Tienes una Margherita y una Hawaiian.",
		"Cart: Margherita, Hawaiian",
		replyPrefix + "Pago de $21.00 con tarjeta completado.",
		"Cart is empty.",
		goodbye,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
	if len(s.loop.Transcript()) != 5 {
		t.Fatalf("expected system + 2 user + 2 assistant messages, got %d", len(s.loop.Transcript()))
	}
}

func TestREPLPrintsErrorsAndContinues(t *testing.T) {
	client := &scriptedClient{}
	s := newTestSession(t, configpkg.DefaultConfig(), client)
	out := runScript(t, s, "hola\n/menu\n")
	if !strings.Contains(out, "Error: empty completion choices") {
		t.Fatalf("expected error line, got:\n%s", out)
	}
	if !strings.Contains(out, "- Margherita ($10.00): Tomato, mozzarella, basil") {
		t.Fatalf("expected menu after error, got:\n%s", out)
	}
}

func TestREPLCommands(t *testing.T) {
	client := &scriptedClient{replies: []*openai.ChatCompletion{completion("hola")}}
	s := newTestSession(t, configpkg.DefaultConfig(), client)
	out := runScript(t, s, "hola\n/clear\n/help\n/pineapple\n")
	if !strings.Contains(out, "Conversation history cleared.") {
		t.Fatalf("missing clear confirmation:\n%s", out)
	}
	if !strings.Contains(out, "Unknown command: /pineapple") {
		t.Fatalf("missing unknown command message:\n%s", out)
	}
	if len(s.loop.Transcript()) != 1 {
		t.Fatalf("expected only the system prompt after /clear, got %d", len(s.loop.Transcript()))
	}
}

func TestNewSessionLoadsMenuFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	doc := "pizzas:\n  - name: Marinara\n    ingredients: Tomato, garlic\n    price: \"8.50\"\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write menu: %v", err)
	}
	cfg := configpkg.DefaultConfig()
	cfg.MenuFile = path

	s := newTestSession(t, cfg, &scriptedClient{})
	if names := s.catalog.Names(); len(names) != 1 || names[0] != "Marinara" {
		t.Fatalf("unexpected menu: %v", names)
	}
	if !strings.Contains(s.loop.SystemPrompt, "Marinara") {
		t.Fatalf("system prompt does not mention the menu:\n%s", s.loop.SystemPrompt)
	}
}

func TestNewSessionRejectsBadMenu(t *testing.T) {
	cfg := configpkg.DefaultConfig()
	cfg.Deployment = "gpt-4o-mini"
	cfg.MenuFile = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := newSession(context.Background(), cfg, loggerpkg.NopLogger{}, agent.WithChatClient(&scriptedClient{})); err == nil {
		t.Fatal("expected error for missing menu file")
	}
}
