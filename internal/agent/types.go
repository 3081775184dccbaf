package agent

import (
	"encoding/json"
	"errors"
)

// Role tags a history entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// ErrOracleFailure marks any failure of a language-model call: transport errors,
// unparseable output or a label outside the intent taxonomy.
var ErrOracleFailure = errors.New("oracle failure")

// Entry is one element of a conversation history.
// Tool entries carry the raw JSON returned by a tool in Content.
type Entry struct {
	Role     Role      `json:"role"`
	Content  string    `json:"content"`
	ToolName string    `json:"tool_name,omitempty"`
	ToolCall *ToolCall `json:"tool_call,omitempty"`
}

// ToolCall is a model's request to run a named tool.
type ToolCall struct {
	Name string                 `json:"name"`
	Args map[string]interface{} `json:"args"`
}

// Generation is the output of a synthesis call: either text or a tool call.
type Generation struct {
	Text     string
	ToolCall *ToolCall
}

// HasToolCall reports whether the generation asks for a named tool.
func (g Generation) HasToolCall() bool {
	return g.ToolCall != nil && g.ToolCall.Name != ""
}

func UserEntry(content string) Entry {
	return Entry{Role: RoleUser, Content: content}
}

func AssistantEntry(content string) Entry {
	return Entry{Role: RoleAssistant, Content: content}
}

// ToolCallEntry records the assistant's decision to call a tool.
func ToolCallEntry(call ToolCall) Entry {
	return Entry{Role: RoleAssistant, ToolCall: &call}
}

// ToolResultEntry records a tool's raw JSON result.
func ToolResultEntry(name string, result json.RawMessage) Entry {
	return Entry{Role: RoleTool, ToolName: name, Content: string(result)}
}

// LastToolResult returns the most recent tool-result entry, searching from the end.
func LastToolResult(history []Entry) (Entry, bool) {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == RoleTool {
			return history[i], true
		}
	}
	return Entry{}, false
}

// CloneHistory returns a copy that can be appended to without touching the caller's slice.
func CloneHistory(history []Entry) []Entry {
	out := make([]Entry, len(history), len(history)+4)
	copy(out, history)
	return out
}

// Window returns the last max entries, advanced so it starts at a user entry.
// A window that would contain no user entry is returned as-is.
func Window(history []Entry, max int) []Entry {
	if max <= 0 || len(history) <= max {
		return history
	}
	w := history[len(history)-max:]
	for i, e := range w {
		if e.Role == RoleUser {
			return w[i:]
		}
	}
	return w
}
