package tools

import (
	"fmt"

	"github.com/openai/openai-go"

	"github.com/minhyannv/pizzeria-agent-go/pkg/menu"
)

type cartResult struct {
	Message string   `json:"message"`
	Removed *bool    `json:"removed,omitempty"`
	Items   []string `json:"items"`
}

type addToCartTool struct {
	ctx Context
}

func (t *addToCartTool) name() string {
	return "add_to_cart"
}

func (t *addToCartTool) definition() openai.ChatCompletionToolParam {
	return openai.ChatCompletionToolParam{
		Function: openai.FunctionDefinitionParam{
			Name:        "add_to_cart",
			Description: openai.String("Adds a pizza to the shopping cart"),
			Parameters:  stringParam("pizza_name", "Name of a pizza from the menu."),
		},
	}
}

func (t *addToCartTool) execute(argText string) (string, error) {
	name, err := stringArg(argText, "pizza_name")
	if err != nil {
		t.ctx.debugf("add_to_cart: %v", err)
		return marshalToolResponse("add_to_cart", nil, err)
	}

	pizza, ok := t.ctx.Catalog.Lookup(name)
	if !ok {
		t.ctx.debugf("add_to_cart: %q is not on the menu", name)
		return marshalToolResponse("add_to_cart", nil, fmt.Errorf("%w: %q", menu.ErrUnknownPizza, name))
	}

	t.ctx.Cart.Add(pizza.Name)
	t.ctx.debugf("add_to_cart: added %s", pizza.Name)
	return marshalToolResponse("add_to_cart", cartResult{
		Message: fmt.Sprintf("%s added to cart.", pizza.Name),
		Items:   t.ctx.Cart.View(),
	}, nil)
}

type removeFromCartTool struct {
	ctx Context
}

func (t *removeFromCartTool) name() string {
	return "remove_from_cart"
}

func (t *removeFromCartTool) definition() openai.ChatCompletionToolParam {
	return openai.ChatCompletionToolParam{
		Function: openai.FunctionDefinitionParam{
			Name:        "remove_from_cart",
			Description: openai.String("Removes a pizza from the shopping cart"),
			Parameters:  stringParam("pizza_name", "Name of the pizza to remove."),
		},
	}
}

func (t *removeFromCartTool) execute(argText string) (string, error) {
	name, err := stringArg(argText, "pizza_name")
	if err != nil {
		t.ctx.debugf("remove_from_cart: %v", err)
		return marshalToolResponse("remove_from_cart", nil, err)
	}
	if pizza, ok := t.ctx.Catalog.Lookup(name); ok {
		name = pizza.Name
	}

	removed := t.ctx.Cart.Remove(name)
	t.ctx.debugf("remove_from_cart: name=%s removed=%v", name, removed)

	msg := "Item not found in cart."
	if removed {
		msg = fmt.Sprintf("%s removed from cart.", name)
	}
	return marshalToolResponse("remove_from_cart", cartResult{
		Message: msg,
		Removed: &removed,
		Items:   t.ctx.Cart.View(),
	}, nil)
}

type viewCartTool struct {
	ctx Context
}

func (t *viewCartTool) name() string {
	return "view_cart"
}

func (t *viewCartTool) definition() openai.ChatCompletionToolParam {
	return openai.ChatCompletionToolParam{
		Function: openai.FunctionDefinitionParam{
			Name:        "view_cart",
			Description: openai.String("Displays the current contents of the shopping cart"),
			Parameters:  noParams(),
		},
	}
}

func (t *viewCartTool) execute(string) (string, error) {
	items := t.ctx.Cart.View()
	t.ctx.debugf("view_cart: %d item(s)", len(items))
	return marshalToolResponse("view_cart", items, nil)
}

type clearCartTool struct {
	ctx Context
}

func (t *clearCartTool) name() string {
	return "clear_cart"
}

func (t *clearCartTool) definition() openai.ChatCompletionToolParam {
	return openai.ChatCompletionToolParam{
		Function: openai.FunctionDefinitionParam{
			Name:        "clear_cart",
			Description: openai.String("Clears all items from the shopping cart"),
			Parameters:  noParams(),
		},
	}
}

func (t *clearCartTool) execute(string) (string, error) {
	t.ctx.Cart.Clear()
	t.ctx.debugf("clear_cart: done")
	return marshalToolResponse("clear_cart", cartResult{
		Message: "Cart cleared.",
		Items:   []string{},
	}, nil)
}
