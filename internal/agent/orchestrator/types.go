package orchestrator

import (
	"encoding/json"

	"phone-assistant/internal/agent"
	"phone-assistant/internal/router"
)

// Result is the outcome of one turn.
type Result struct {
	Intent   router.Intent
	Response string
	// ContextData is the retrieved record, list or pair; nil on simple branches
	// and whenever the fetch reported an error.
	ContextData json.RawMessage
	History     []agent.Entry
	// NeedsClarification is set when no tool call could be selected; Response is empty.
	NeedsClarification bool
}

type node string

const (
	nodeClassifyIntent              node = "classify_intent"
	nodeSimpleBranch                node = "simple_branch"
	nodePrepareDataCall             node = "prepare_data_call"
	nodeFetchData                   node = "fetch_data"
	nodeRespondChitchat             node = "respond_chitchat"
	nodeRespondQuery                node = "respond_query"
	nodeRespondIrrelevant           node = "respond_irrelevant"
	nodeRespondAdversarial          node = "respond_adversarial"
	nodeRespondDetails              node = "respond_details"
	nodeRespondSearchRecommendation node = "respond_search_recommendation"
	nodeRespondCompare              node = "respond_compare"
	nodeEnd                         node = "end"
)

// turnState is owned by a single pass and never shared.
type turnState struct {
	history            []agent.Entry
	intent             router.Intent
	response           string
	responded          bool
	contextData        json.RawMessage
	pendingCall        *agent.ToolCall
	needsClarification bool
}

func (s *turnState) setIntent(intent router.Intent) {
	if s.intent != "" {
		panic("orchestrator: intent written twice in one pass")
	}
	s.intent = intent
}

func (s *turnState) mustIntent() router.Intent {
	if s.intent == "" {
		panic("orchestrator: intent read before classification")
	}
	return s.intent
}

func (s *turnState) setResponse(text string, data json.RawMessage) {
	if s.responded {
		panic("orchestrator: response written twice in one pass")
	}
	s.responded = true
	s.response = text
	s.contextData = data
}
