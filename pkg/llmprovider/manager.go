package llmprovider

import (
	"context"
	"fmt"
	"time"

	"phone-assistant/pkg/log"
)

// maxBackoff caps the delay between two attempts on one provider.
const maxBackoff = 8 * time.Second

// Manager walks the providers in priority order, retrying each before falling back.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

type Config struct {
	FallbackEnabled bool
	// RetryAttempts is the number of attempts per provider, at least 1.
	RetryAttempts int
	// RetryDelay is the first backoff; it doubles on each further attempt.
	RetryDelay time.Duration
	// MaxTotalTimeout bounds the whole chain. Zero means the caller's deadline only.
	MaxTotalTimeout time.Duration
}

func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config.RetryAttempts < 1 {
		config.RetryAttempts = 1
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// GenerateContent returns the first successful response in the provider chain.
// A cancelled caller context ends the chain at once.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for i, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: stopped before provider %d of %d: %w",
				ErrAllProvidersFailed, i+1, len(m.providers), err)
		}

		started := time.Now()
		resp, attempts, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp, attempts, time.Since(started))
			return resp, nil
		}

		m.logFailure(ctx, provider, attempts, err)
		lastErr = &ProviderError{Provider: provider.Name(), Attempts: attempts, Err: err}

		if !m.config.FallbackEnabled || ctx.Err() != nil {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry returns the response and the number of attempts made.
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, int, error) {
	var lastErr error
	attempt := 0
	for attempt < m.config.RetryAttempts {
		if attempt > 0 {
			timer := time.NewTimer(m.backoff(attempt))
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return nil, attempt, ctx.Err()
			}
		}

		attempt++
		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			return resp, attempt, nil
		}
		lastErr = err

		if ctx.Err() != nil || !retryable(err) {
			break
		}
		m.logger.Debugf(ctx, "llmprovider.Manager: %s attempt %d failed: %v", provider.Name(), attempt, err)
	}
	return nil, attempt, lastErr
}

// backoff is RetryDelay * 2^(attempt-1), capped at maxBackoff.
func (m *Manager) backoff(attempt int) time.Duration {
	d := m.config.RetryDelay
	for i := 1; i < attempt && d < maxBackoff; i++ {
		d *= 2
	}
	if d > maxBackoff {
		d = maxBackoff
	}
	return d
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response, attempts int, took time.Duration) {
	usage := resp.Usage
	if usage == nil {
		usage = &Usage{}
	}
	m.logger.Info(ctx, "LLM generation successful",
		"provider", provider.Name(),
		"model", provider.Model(),
		"attempts", attempts,
		"latency_ms", took.Milliseconds(),
		"input_tokens", usage.InputTokens,
		"output_tokens", usage.OutputTokens,
	)
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, attempts int, err error) {
	m.logger.Warn(ctx, "LLM generation failed",
		"provider", provider.Name(),
		"model", provider.Model(),
		"attempts", attempts,
		"error", err.Error(),
	)
}
