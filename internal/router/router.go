package router

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/zeebo/blake3"

	"phone-assistant/internal/agent"
	"phone-assistant/pkg/llmprovider"
)

// Classify returns the intent of the latest user message in history.
// Failures and labels outside the taxonomy are returned as errors wrapping ErrOracleFailure.
func (r *SemanticRouter) Classify(ctx context.Context, history []agent.Entry) (Intent, error) {
	prompt, err := buildPrompt(history)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOracleFailure, err)
	}

	key := cacheKey(prompt)
	if r.cache != nil {
		if intent, ok := r.cache.Get(key); ok {
			r.l.Debugf(ctx, "%s: cache hit %s", LogPrefixClassify, intent)
			return intent, nil
		}
	}

	resp, err := r.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Parts: []llmprovider.Part{{Text: PromptRouterSystem}}},
		Messages:          []llmprovider.Message{llmprovider.TextMessage(llmprovider.RoleUser, prompt)},
		Temperature:       RouterTemperature,
		JSONMode:          true,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOracleFailure, err)
	}

	intent, err := parseIntent(resp.Text())
	if err != nil {
		r.l.Warnf(ctx, "%s: %v", LogPrefixClassify, err)
		return "", err
	}

	if r.cache != nil {
		r.cache.Add(key, intent)
	}
	r.l.Infof(ctx, "%s: classified as %s", LogPrefixClassify, intent)
	return intent, nil
}

// buildPrompt renders the recent text transcript followed by the latest user message.
// Tool results are left out; classification only looks at what was said.
func buildPrompt(history []agent.Entry) (string, error) {
	var texts []agent.Entry
	for _, e := range history {
		if e.Role == agent.RoleTool || strings.TrimSpace(e.Content) == "" {
			continue
		}
		texts = append(texts, e)
	}
	if len(texts) == 0 || texts[len(texts)-1].Role != agent.RoleUser {
		return "", fmt.Errorf("history does not end with a user message")
	}

	latest := texts[len(texts)-1]
	earlier := texts[:len(texts)-1]
	if len(earlier) > RouterHistoryEntries {
		earlier = earlier[len(earlier)-RouterHistoryEntries:]
	}

	var sb strings.Builder
	if len(earlier) > 0 {
		sb.WriteString(PromptHistoryPrefix)
		for _, e := range earlier {
			fmt.Fprintf(&sb, "%s: %s\n", e.Role, e.Content)
		}
		sb.WriteString("\n")
	}
	sb.WriteString(PromptLatestPrefix)
	sb.WriteString(latest.Content)
	return sb.String(), nil
}

// parseIntent decodes {"intent": "..."} and rejects labels outside the taxonomy.
func parseIntent(text string) (Intent, error) {
	text = stripCodeFence(text)
	if text == "" {
		return "", fmt.Errorf("%w: empty response", ErrOracleFailure)
	}

	var output RouterOutput
	if err := json.Unmarshal([]byte(text), &output); err != nil {
		return "", fmt.Errorf("%w: unparseable response: %w", ErrOracleFailure, err)
	}
	if !output.Intent.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownIntent, output.Intent)
	}
	return output.Intent, nil
}

// stripCodeFence removes a surrounding markdown code block (```json ... ```).
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}

func cacheKey(prompt string) string {
	sum := blake3.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}
