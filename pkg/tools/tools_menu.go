package tools

import "github.com/openai/openai-go"

type pizzaView struct {
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
	Price       string `json:"price"`
}

type availablePizzasTool struct {
	ctx Context
}

func (t *availablePizzasTool) name() string {
	return "get_available_pizzas"
}

func (t *availablePizzasTool) definition() openai.ChatCompletionToolParam {
	return openai.ChatCompletionToolParam{
		Function: openai.FunctionDefinitionParam{
			Name:        "get_available_pizzas",
			Description: openai.String("Retrieves the list of available pizzas with their ingredients and prices"),
			Parameters:  noParams(),
		},
	}
}

func (t *availablePizzasTool) execute(string) (string, error) {
	pizzas := t.ctx.Catalog.Pizzas()
	out := make([]pizzaView, 0, len(pizzas))
	for _, p := range pizzas {
		out = append(out, pizzaView{
			Name:        p.Name,
			Ingredients: p.Ingredients,
			Price:       p.Price.StringFixed(2),
		})
	}
	t.ctx.debugf("get_available_pizzas: %d pizza(s)", len(out))
	return marshalToolResponse("get_available_pizzas", out, nil)
}
