package tools

import (
	"strings"

	"github.com/openai/openai-go"
)

type paymentResult struct {
	OrderID string   `json:"order_id"`
	Method  string   `json:"method"`
	Items   []string `json:"items"`
	Total   string   `json:"total"`
	Message string   `json:"message"`
}

type processPaymentTool struct {
	ctx Context
}

func (t *processPaymentTool) name() string {
	return "process_payment"
}

func (t *processPaymentTool) definition() openai.ChatCompletionToolParam {
	methods := t.ctx.Payments.Methods()
	return openai.ChatCompletionToolParam{
		Function: openai.FunctionDefinitionParam{
			Name:        "process_payment",
			Description: openai.String("Processes the payment for the current order. Calculates the total automatically."),
			Parameters: openai.FunctionParameters{
				"type": "object",
				"properties": map[string]any{
					"payment_method": map[string]any{
						"type":        "string",
						"description": "Payment method. One of: " + strings.Join(methods, ", ") + ".",
					},
				},
				"required": []string{"payment_method"},
			},
		},
	}
}

func (t *processPaymentTool) execute(argText string) (string, error) {
	method, err := stringArg(argText, "payment_method")
	if err != nil {
		t.ctx.debugf("process_payment: %v", err)
		return marshalToolResponse("process_payment", nil, err)
	}

	receipt, err := t.ctx.Payments.Process(t.ctx.Cart, method)
	if err != nil {
		t.ctx.debugf("process_payment: rejected: %v", err)
		return marshalToolResponse("process_payment", nil, err)
	}

	t.ctx.Logger.Info("payment processed", map[string]any{
		"order_id": receipt.OrderID,
		"method":   receipt.Method,
		"total":    receipt.Total.StringFixed(2),
		"items":    len(receipt.Items),
	})
	return marshalToolResponse("process_payment", paymentResult{
		OrderID: receipt.OrderID,
		Method:  receipt.Method,
		Items:   receipt.Items,
		Total:   receipt.Total.StringFixed(2),
		Message: receipt.Message,
	}, nil)
}
