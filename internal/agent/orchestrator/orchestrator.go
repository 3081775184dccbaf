package orchestrator

import (
	"context"
	"fmt"

	"phone-assistant/internal/agent"
)

// Run appends message to a copy of history and drives exactly one pass of the graph.
// Any adapter failure or context cancellation is returned as *TurnError; history is
// never modified in place.
func (o *Orchestrator) Run(ctx context.Context, message string, history []agent.Entry) (Result, error) {
	s := &turnState{history: agent.CloneHistory(history)}
	s.history = append(s.history, agent.UserEntry(message))

	current := nodeClassifyIntent
	for steps := 0; current != nodeEnd; steps++ {
		if steps >= maxSteps {
			panic(fmt.Sprintf("orchestrator: pass did not terminate, last node %s", current))
		}
		if err := ctx.Err(); err != nil {
			return Result{}, &TurnError{Node: string(current), Intent: s.intent, Err: err}
		}

		fn, ok := o.nodes[current]
		if !ok {
			panic(fmt.Sprintf("orchestrator: no handler for node %s", current))
		}

		next, err := fn(ctx, s)
		if err != nil {
			o.l.Errorf(ctx, "%s: node %s failed: %v", LogPrefixRun, current, err)
			return Result{}, &TurnError{Node: string(current), Intent: s.intent, Err: err}
		}
		current = next
	}

	o.l.Infof(ctx, "%s: intent=%s clarification=%v context_data=%v", LogPrefixRun, s.intent, s.needsClarification, s.contextData != nil)

	return Result{
		Intent:             s.intent,
		Response:           s.response,
		ContextData:        s.contextData,
		History:            s.history,
		NeedsClarification: s.needsClarification,
	}, nil
}

func (o *Orchestrator) window(history []agent.Entry) []agent.Entry {
	return agent.Window(history, o.maxHistory)
}
