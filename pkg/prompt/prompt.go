// Package prompt assembles the system prompt for the pizzeria assistant.
package prompt

import (
	"fmt"
	"strings"

	"github.com/minhyannv/pizzeria-agent-go/pkg/menu"
)

// BuildSystemPrompt constructs the system prompt, including the menu and the
// accepted payment methods.
func BuildSystemPrompt(catalog *menu.Catalog, paymentMethods []string, toolNames []string) string {
	var sb strings.Builder
	sb.WriteString("You are a friendly pizzeria assistant. Help the customer choose pizzas, manage the cart and pay.")
	sb.WriteString("\nAlways use the tools to read the menu, change the cart and process payments; never invent prices or order state.")
	sb.WriteString("\nReply in the customer's language.")
	if len(toolNames) > 0 {
		sb.WriteString("\nTools available: ")
		sb.WriteString(strings.Join(toolNames, ", "))
		sb.WriteString(".")
	}
	if len(paymentMethods) > 0 {
		sb.WriteString("\nAccepted payment methods: ")
		sb.WriteString(strings.Join(paymentMethods, ", "))
		sb.WriteString(".")
	}

	if md := ToPromptMarkdown(catalog); md != "" {
		sb.WriteString("\n\n")
		sb.WriteString(md)
	}

	return strings.TrimSpace(sb.String())
}

// ToPromptMarkdown renders a markdown listing of the menu.
func ToPromptMarkdown(catalog *menu.Catalog) string {
	if catalog == nil {
		return ""
	}
	pizzas := catalog.Pizzas()
	if len(pizzas) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("## Menu\n")
	for _, p := range pizzas {
		ingredients := sanitizeMarkdown(p.Ingredients)
		if ingredients == "" {
			ingredients = "No ingredients listed."
		}
		sb.WriteString(fmt.Sprintf("- **%s** ($%s): %s\n", sanitizeMarkdown(p.Name), p.Price.StringFixed(2), ingredients))
	}

	return strings.TrimSpace(sb.String())
}

// sanitizeMarkdown keeps markdown fields single-line and trimmed.
func sanitizeMarkdown(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	return strings.TrimSpace(value)
}
