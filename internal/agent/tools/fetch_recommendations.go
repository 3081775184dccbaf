package tools

import (
	"context"

	"phone-assistant/internal/agent"
	"phone-assistant/internal/phone"
)

const FetchRecommendationsName = "fetch_recommendations"

// FetchRecommendationsTool lists phones matching filter criteria.
type FetchRecommendationsTool struct {
	uc phone.UseCase
}

// NewFetchRecommendationsTool creates a new recommendations tool.
func NewFetchRecommendationsTool(uc phone.UseCase) agent.Tool {
	return &FetchRecommendationsTool{uc: uc}
}

func (t *FetchRecommendationsTool) Name() string {
	return FetchRecommendationsName
}

func (t *FetchRecommendationsTool) Description() string {
	return "Recommend phones matching filter criteria such as price, brand, features or use cases."
}

// Parameters declares every scalar criterion as a string so one schema serves all providers;
// numeric columns still compare numerically in the catalog.
func (t *FetchRecommendationsTool) Parameters() map[string]interface{} {
	props := make(map[string]interface{}, len(phone.CriteriaKeys))
	for _, key := range phone.CriteriaKeys {
		switch {
		case key == "features":
			props[key] = tagSchema(phone.AllowedFeatures)
		case key == "use_cases":
			props[key] = tagSchema(phone.AllowedUseCases)
		case phone.TextKeys[key]:
			props[key] = map[string]interface{}{"type": "string"}
		default:
			props[key] = map[string]interface{}{
				"type":        "string",
				"description": "A number, or a comparison such as \"<=30000\" or \">5000\"",
			}
		}
	}

	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"criteria": map[string]interface{}{
				"type":        "object",
				"description": "Filters keyed by catalog field. Give either features or use_cases, not both.",
				"properties":  props,
			},
			"limit": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum number of phones to return (default 5)",
			},
		},
		"required": []string{"criteria"},
	}
}

// tagSchema accepts one tag or a list of tags from the allowed vocabulary.
func tagSchema(allowed []string) map[string]interface{} {
	tag := map[string]interface{}{"type": "string", "enum": allowed}
	return map[string]interface{}{
		"anyOf": []interface{}{
			tag,
			map[string]interface{}{"type": "array", "items": tag},
		},
	}
}

func (t *FetchRecommendationsTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	criteria, _ := params["criteria"].(map[string]interface{})

	limit := 0
	if l, ok := params["limit"].(float64); ok {
		limit = int(l)
	}

	phones, err := t.uc.Recommend(ctx, phone.RecommendInput{
		Criteria: phone.Criteria(criteria),
		Limit:    limit,
	})
	if err != nil {
		return nil, toolError(userMessage(err))
	}
	return phones, nil
}
