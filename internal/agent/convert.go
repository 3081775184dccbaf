package agent

import (
	"encoding/json"

	"phone-assistant/pkg/llmprovider"
)

// ToMessages converts a history into provider messages.
// Tool results are sent as function responses so providers can pair them with the call.
func ToMessages(history []Entry) []llmprovider.Message {
	msgs := make([]llmprovider.Message, 0, len(history))
	for _, e := range history {
		switch e.Role {
		case RoleUser:
			msgs = append(msgs, llmprovider.TextMessage(llmprovider.RoleUser, e.Content))

		case RoleAssistant:
			msg := llmprovider.Message{Role: llmprovider.RoleAssistant}
			if e.Content != "" {
				msg.Parts = append(msg.Parts, llmprovider.Part{Text: e.Content})
			}
			if e.ToolCall != nil {
				msg.Parts = append(msg.Parts, llmprovider.Part{FunctionCall: &llmprovider.FunctionCall{
					Name: e.ToolCall.Name,
					Args: e.ToolCall.Args,
				}})
			}
			if len(msg.Parts) == 0 {
				continue
			}
			msgs = append(msgs, msg)

		case RoleTool:
			var payload interface{}
			if err := json.Unmarshal([]byte(e.Content), &payload); err != nil {
				payload = e.Content
			}
			msgs = append(msgs, llmprovider.Message{
				Role: llmprovider.RoleTool,
				Parts: []llmprovider.Part{{FunctionResponse: &llmprovider.FunctionResponse{
					Name:     e.ToolName,
					Response: payload,
				}}},
			})
		}
	}
	return msgs
}
