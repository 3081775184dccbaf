package router

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"phone-assistant/internal/agent"
	"phone-assistant/pkg/llmprovider"
	"phone-assistant/pkg/log"
)

// Router is the interface for semantic routing
type Router interface {
	Classify(ctx context.Context, history []agent.Entry) (Intent, error)
}

// LLM is the generation surface the router needs; *llmprovider.Manager satisfies it.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// SemanticRouter classifies user intent using LLM
type SemanticRouter struct {
	llm   LLM
	l     log.Logger
	cache *expirable.LRU[string, Intent]
}

// Ensure SemanticRouter implements Router interface
var _ Router = (*SemanticRouter)(nil)

// Options configures the classification cache. CacheSize 0 disables caching.
type Options struct {
	CacheSize int
	CacheTTL  time.Duration
}

// New creates a new SemanticRouter
func New(llm LLM, l log.Logger, opts Options) *SemanticRouter {
	r := &SemanticRouter{
		llm: llm,
		l:   l,
	}
	if opts.CacheSize > 0 {
		ttl := opts.CacheTTL
		if ttl <= 0 {
			ttl = DefaultCacheTTL
		}
		r.cache = expirable.NewLRU[string, Intent](opts.CacheSize, nil, ttl)
	}
	return r
}
