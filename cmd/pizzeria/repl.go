package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	loggerpkg "github.com/minhyannv/pizzeria-agent-go/pkg/logger"
)

const (
	userPrompt  = "\n🧑 User > "
	replyPrefix = "🤖 AI > "
	goodbye     = "👋 ¡Hasta luego!"
	emptyInput  = "Por favor, escribe un mensaje."
)

// exitWords end the session when typed on their own, in any case.
var exitWords = []string{"exit", "quit", "salir"}

// replOptions configures REPL behavior.
type replOptions struct {
	Verbose bool
	Logger  loggerpkg.Logger
}

// runREPL starts an interactive REPL session.
func runREPL(ctx context.Context, s *session, opts replOptions, in io.Reader, out io.Writer) error {
	if s == nil || s.loop == nil {
		return fmt.Errorf("session is required")
	}
	if in == nil {
		return fmt.Errorf("input reader is required")
	}
	if out == nil {
		out = io.Discard
	}
	if ctx == nil {
		ctx = context.Background()
	}

	loggerpkg.Debug(opts.Verbose, opts.Logger, "repl start", nil)

	scanner := bufio.NewScanner(in)
	printWelcome(out)

	for {
		_, _ = fmt.Fprint(out, userPrompt)
		if !scanner.Scan() {
			_, _ = fmt.Fprintln(out)
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if isExitWord(input) || ctx.Err() != nil {
			_, _ = fmt.Fprintln(out, goodbye)
			break
		}
		if input == "" {
			_, _ = fmt.Fprintln(out, emptyInput)
			continue
		}

		if strings.HasPrefix(input, "/") {
			if shouldQuit := handleCommand(input, s, out); shouldQuit {
				break
			}
			continue
		}

		finalMessage, err := s.loop.Run(input)
		if err != nil {
			_, _ = fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}

		_, _ = fmt.Fprintf(out, "%s%s\n", replyPrefix, finalMessage.Content)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func isExitWord(input string) bool {
	for _, w := range exitWords {
		if strings.EqualFold(input, w) {
			return true
		}
	}
	return false
}

func printWelcome(out io.Writer) {
	_, _ = fmt.Fprintln(out, "=== Pizzeria Assistant ===")
	_, _ = fmt.Fprintln(out, "Ask for the menu, add pizzas to your cart and pay. Type 'salir' to leave.")
	printHelp(out)
}

// handleCommand runs a slash command and reports whether the REPL should stop.
func handleCommand(input string, s *session, out io.Writer) bool {
	cmd := strings.ToLower(input)
	switch cmd {
	case "/help", "/h":
		printHelp(out)
	case "/clear", "/c":
		s.loop.Reset()
		_, _ = fmt.Fprintln(out, "Conversation history cleared.")
	case "/menu", "/m":
		for _, p := range s.catalog.Pizzas() {
			_, _ = fmt.Fprintf(out, "- %s ($%s): %s\n", p.Name, p.Price.StringFixed(2), p.Ingredients)
		}
	case "/cart":
		items := s.cart.View()
		if len(items) == 0 {
			_, _ = fmt.Fprintln(out, "Cart is empty.")
			return false
		}
		_, _ = fmt.Fprintf(out, "Cart: %s\n", strings.Join(items, ", "))
	case "/quit", "/exit", "/q":
		_, _ = fmt.Fprintln(out, goodbye)
		return true
	default:
		_, _ = fmt.Fprintf(out, "Unknown command: %s. Type /help for available commands.\n", input)
	}
	return false
}

func printHelp(out io.Writer) {
	_, _ = fmt.Fprintln(out, "Commands:")
	_, _ = fmt.Fprintln(out, "  /help  - Show this help message")
	_, _ = fmt.Fprintln(out, "  /menu  - Show the menu")
	_, _ = fmt.Fprintln(out, "  /cart  - Show the cart")
	_, _ = fmt.Fprintln(out, "  /clear - Clear conversation history")
	_, _ = fmt.Fprintln(out, "  /quit  - Exit the program")
}
