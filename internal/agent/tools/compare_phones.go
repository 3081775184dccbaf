package tools

import (
	"context"

	"phone-assistant/internal/agent"
	"phone-assistant/internal/phone"
)

const ComparePhonesName = "compare_phones"

// ComparePhonesTool fetches two phones side by side.
type ComparePhonesTool struct {
	uc phone.UseCase
}

// NewComparePhonesTool creates a new comparison tool.
func NewComparePhonesTool(uc phone.UseCase) agent.Tool {
	return &ComparePhonesTool{uc: uc}
}

func (t *ComparePhonesTool) Name() string {
	return ComparePhonesName
}

func (t *ComparePhonesTool) Description() string {
	return "Compare two phone models side by side. Use when the user wants to compare two phones."
}

func (t *ComparePhonesTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"phone1": map[string]interface{}{
				"type":        "string",
				"description": "Full name of the first phone",
			},
			"phone2": map[string]interface{}{
				"type":        "string",
				"description": "Full name of the second phone",
			},
		},
		"required": []string{"phone1", "phone2"},
	}
}

func (t *ComparePhonesTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	nameA, _ := params["phone1"].(string)
	nameB, _ := params["phone2"].(string)

	c, err := t.uc.Compare(ctx, nameA, nameB)
	if err != nil {
		return nil, toolError(userMessage(err))
	}
	return c, nil
}
