package llmprovider

import "testing"

func TestResponseHelpers(t *testing.T) {
	resp := &Response{Content: Message{Parts: []Part{
		{Text: "first"},
		{FunctionCall: &FunctionCall{Name: "fetch_phone_details", Args: map[string]interface{}{"phone_name": "Pixel 8"}}},
		{Text: "second"},
	}}}

	if got := resp.Text(); got != "first\nsecond" {
		t.Errorf("Text() = %q", got)
	}
	fc := resp.FunctionCall()
	if fc == nil || fc.Name != "fetch_phone_details" {
		t.Fatalf("FunctionCall() = %+v", fc)
	}

	empty := &Response{}
	if empty.Text() != "" || empty.FunctionCall() != nil {
		t.Error("empty response should have no text and no call")
	}
}

func TestToChatMessages(t *testing.T) {
	system := TextMessage(RoleUser, "You are a phone expert.")
	msgs := toChatMessages(&system, []Message{
		TextMessage(RoleUser, "compare"),
		{Role: RoleAssistant, Parts: []Part{{FunctionCall: &FunctionCall{Name: "compare_phones", Args: map[string]interface{}{"phone_name_1": "A"}}}}},
		{Role: RoleTool, Parts: []Part{{FunctionResponse: &FunctionResponse{Name: "compare_phones", Response: map[string]interface{}{"error": "Phone 1 error: x"}}}}},
		{Role: "model", Parts: []Part{{Text: "Phone A was not found."}}},
	})

	if len(msgs) != 5 {
		t.Fatalf("expected 5 messages, got %d", len(msgs))
	}
	if msgs[0].Role != "system" || msgs[0].Content != "You are a phone expert." {
		t.Errorf("system instruction not first: %+v", msgs[0])
	}
	if msgs[2].ToolCalls[0].ID != "call_compare_phones" || msgs[2].ToolCalls[0].Function.Arguments != `{"phone_name_1":"A"}` {
		t.Errorf("unexpected tool call %+v", msgs[2].ToolCalls[0])
	}
	if msgs[3].Role != RoleTool || msgs[3].ToolCallID != "call_compare_phones" || msgs[3].Name != "compare_phones" {
		t.Errorf("tool result not mapped: %+v", msgs[3])
	}
	if msgs[3].Content != `{"error":"Phone 1 error: x"}` {
		t.Errorf("unexpected tool content %q", msgs[3].Content)
	}
	if msgs[4].Role != RoleAssistant {
		t.Errorf("foreign role should map to assistant, got %q", msgs[4].Role)
	}
}
