package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"phone-assistant/internal/agent/tools"
	"phone-assistant/internal/phone"
	"phone-assistant/internal/router"
	pkgLog "phone-assistant/pkg/log"
)

type step func(ctx context.Context, s *turnState) (node, error)

// payloadFunc returns the tool result as context data, or nil when it is not a well-formed record.
type payloadFunc func(json.RawMessage) json.RawMessage

// Options tunes a turn. Zero values fall back to defaults.
type Options struct {
	MaxHistory int
	Timezone   string
	Now        func() time.Time
}

// Orchestrator drives one pass of the intent graph per turn. It holds no per-turn
// state and is safe for concurrent use.
type Orchestrator struct {
	classifier IntentClassifier
	generator  ResponseGenerator
	tools      ToolExecutor
	l          pkgLog.Logger

	maxHistory      int
	timezone        string
	now             func() time.Time
	toolInstruction string

	nodes        map[node]step
	simpleRoutes map[router.Intent]node
	dataRoutes   map[router.Intent]node
	dataTools    map[router.Intent]string
	payloads     map[string]payloadFunc
}

func New(classifier IntentClassifier, generator ResponseGenerator, executor ToolExecutor, l pkgLog.Logger, opts Options) *Orchestrator {
	if opts.MaxHistory <= 0 {
		opts.MaxHistory = DefaultMaxHistory
	}
	if opts.Timezone == "" {
		opts.Timezone = DefaultTimezone
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	toolInstruction := fmt.Sprintf(PromptToolSelection,
		strings.Join(phone.AllowedFeatures, ", "),
		strings.Join(phone.AllowedUseCases, ", "),
	)

	o := &Orchestrator{
		classifier:      classifier,
		generator:       generator,
		tools:           executor,
		l:               l,
		maxHistory:      opts.MaxHistory,
		timezone:        opts.Timezone,
		now:             opts.Now,
		toolInstruction: toolInstruction,
	}

	o.nodes = map[node]step{
		nodeClassifyIntent:              o.classifyIntent,
		nodeSimpleBranch:                o.simpleBranch,
		nodePrepareDataCall:             o.prepareDataCall,
		nodeFetchData:                   o.fetchData,
		nodeRespondChitchat:             o.respondSimple(PromptChitchat),
		nodeRespondQuery:                o.respondSimple(PromptQuery),
		nodeRespondIrrelevant:           o.respondSimple(PromptIrrelevant),
		nodeRespondAdversarial:          o.respondSimple(PromptAdversarial),
		nodeRespondDetails:              o.respondData(PromptDetails),
		nodeRespondSearchRecommendation: o.respondData(PromptSearchRecommendation),
		nodeRespondCompare:              o.respondData(PromptCompare),
	}
	o.simpleRoutes = map[router.Intent]node{
		router.IntentChitchat:    nodeRespondChitchat,
		router.IntentQuery:       nodeRespondQuery,
		router.IntentIrrelevant:  nodeRespondIrrelevant,
		router.IntentAdversarial: nodeRespondAdversarial,
	}
	o.dataRoutes = map[router.Intent]node{
		router.IntentDetails:              nodeRespondDetails,
		router.IntentSearchRecommendation: nodeRespondSearchRecommendation,
		router.IntentCompare:              nodeRespondCompare,
	}
	o.dataTools = map[router.Intent]string{
		router.IntentDetails:              tools.FetchPhoneDetailsName,
		router.IntentSearchRecommendation: tools.FetchRecommendationsName,
		router.IntentCompare:              tools.ComparePhonesName,
	}
	o.payloads = map[string]payloadFunc{
		tools.FetchPhoneDetailsName:    detailsPayload,
		tools.FetchRecommendationsName: recommendationsPayload,
		tools.ComparePhonesName:        comparisonPayload,
	}

	o.mustCoverIntents()
	return o
}

// mustCoverIntents panics unless every intent routes to exactly one existing respond node
// and every data intent names a tool whose result shape is known.
func (o *Orchestrator) mustCoverIntents() {
	for _, intent := range router.Intents {
		simple, inSimple := o.simpleRoutes[intent]
		data, inData := o.dataRoutes[intent]
		switch {
		case inSimple == inData:
			panic(fmt.Sprintf("orchestrator: intent %s must route through exactly one branch", intent))
		case inData != intent.NeedsData():
			panic(fmt.Sprintf("orchestrator: intent %s routed through the wrong branch", intent))
		}

		target := simple
		if inData {
			target = data
		}
		if _, ok := o.nodes[target]; !ok {
			panic(fmt.Sprintf("orchestrator: intent %s routes to unknown node %s", intent, target))
		}

		tool, hasTool := o.dataTools[intent]
		if hasTool != inData {
			panic(fmt.Sprintf("orchestrator: intent %s must name a tool iff it needs data", intent))
		}
		if _, ok := o.payloads[tool]; hasTool && !ok {
			panic(fmt.Sprintf("orchestrator: tool %s has no context data shape", tool))
		}
	}
}
