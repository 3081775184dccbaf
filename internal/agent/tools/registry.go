package tools

import (
	"phone-assistant/internal/agent"
	"phone-assistant/internal/phone"
)

// NewRegistry registers the three catalog tools.
func NewRegistry(uc phone.UseCase) (*agent.ToolRegistry, error) {
	registry := agent.NewToolRegistry()
	for _, t := range []agent.Tool{
		NewFetchPhoneDetailsTool(uc),
		NewFetchRecommendationsTool(uc),
		NewComparePhonesTool(uc),
	} {
		if err := registry.Register(t); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
