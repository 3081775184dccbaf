package tools

import (
	"context"

	"phone-assistant/internal/agent"
	"phone-assistant/internal/phone"
)

const FetchPhoneDetailsName = "fetch_phone_details"

// FetchPhoneDetailsTool looks up one phone by name.
type FetchPhoneDetailsTool struct {
	uc phone.UseCase
}

// NewFetchPhoneDetailsTool creates a new phone details tool.
func NewFetchPhoneDetailsTool(uc phone.UseCase) agent.Tool {
	return &FetchPhoneDetailsTool{uc: uc}
}

func (t *FetchPhoneDetailsTool) Name() string {
	return FetchPhoneDetailsName
}

func (t *FetchPhoneDetailsTool) Description() string {
	return "Fetch the full specification of one specific phone model. Use when the user asks about a single phone."
}

func (t *FetchPhoneDetailsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"phone_name": map[string]interface{}{
				"type":        "string",
				"description": "Exact or partial model name, e.g. \"OnePlus 12R\"",
			},
		},
		"required": []string{"phone_name"},
	}
}

func (t *FetchPhoneDetailsTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	name, _ := params["phone_name"].(string)

	p, err := t.uc.Details(ctx, name)
	if err != nil {
		return nil, toolError(userMessage(err))
	}
	return p, nil
}
