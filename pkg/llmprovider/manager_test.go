package llmprovider

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"phone-assistant/pkg/openaicompat"
)

// mockProvider fails with err for the first failures calls, then answers.
type mockProvider struct {
	name      string
	err       error
	failures  int
	onCall    func()
	callCount int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.onCall != nil {
		m.onCall()
	}
	if m.err != nil && (m.failures == 0 || m.callCount <= m.failures) {
		return nil, m.err
	}
	return &Response{
		Content:      TextMessage(RoleAssistant, "answer from "+m.name),
		ProviderName: m.name,
		ModelName:    m.name + "-model",
		Usage:        &Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
	}, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.name + "-model" }

// mockLogger records the messages of Info and Warn.
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if msg, ok := arg[0].(string); ok {
		m.infoMessages = append(m.infoMessages, msg)
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if msg, ok := arg[0].(string); ok {
		m.warnMessages = append(m.warnMessages, msg)
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func hello() *Request {
	return &Request{Messages: []Message{TextMessage(RoleUser, "Hello")}}
}

var errFlaky = errors.New("connection reset")

func TestGenerateContent_Chain(t *testing.T) {
	badRequest := &openaicompat.APIError{Vendor: "qwen", StatusCode: http.StatusBadRequest, Message: "bad schema"}
	rateLimited := &openaicompat.APIError{Vendor: "qwen", StatusCode: http.StatusTooManyRequests, Message: "slow down"}

	tests := []struct {
		name          string
		primary       *mockProvider
		secondary     *mockProvider
		fallback      bool
		attempts      int
		wantProvider  string
		wantErr       error
		wantPrimary   int
		wantSecondary int
		wantWarns     int
	}{
		{
			name:         "primary answers",
			primary:      &mockProvider{name: "primary"},
			secondary:    &mockProvider{name: "secondary"},
			fallback:     true,
			attempts:     3,
			wantProvider: "primary",
			wantPrimary:  1,
		},
		{
			name:         "transient failure is retried",
			primary:      &mockProvider{name: "primary", err: errFlaky, failures: 1},
			secondary:    &mockProvider{name: "secondary"},
			fallback:     true,
			attempts:     3,
			wantProvider: "primary",
			wantPrimary:  2,
		},
		{
			name:          "falls back after retries",
			primary:       &mockProvider{name: "primary", err: errFlaky},
			secondary:     &mockProvider{name: "secondary"},
			fallback:      true,
			attempts:      2,
			wantProvider:  "secondary",
			wantPrimary:   2,
			wantSecondary: 1,
			wantWarns:     1,
		},
		{
			name:          "client error skips retries but falls back",
			primary:       &mockProvider{name: "primary", err: badRequest},
			secondary:     &mockProvider{name: "secondary"},
			fallback:      true,
			attempts:      3,
			wantProvider:  "secondary",
			wantPrimary:   1,
			wantSecondary: 1,
			wantWarns:     1,
		},
		{
			name:          "rate limit is retried",
			primary:       &mockProvider{name: "primary", err: rateLimited},
			secondary:     &mockProvider{name: "secondary", err: rateLimited},
			fallback:      true,
			attempts:      2,
			wantErr:       ErrAllProvidersFailed,
			wantPrimary:   2,
			wantSecondary: 2,
			wantWarns:     2,
		},
		{
			name:        "no fallback when disabled",
			primary:     &mockProvider{name: "primary", err: errFlaky},
			secondary:   &mockProvider{name: "secondary"},
			attempts:    2,
			wantErr:     ErrAllProvidersFailed,
			wantPrimary: 2,
			wantWarns:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &mockLogger{}
			m := NewManager([]Provider{tt.primary, tt.secondary}, &Config{
				FallbackEnabled: tt.fallback,
				RetryAttempts:   tt.attempts,
				RetryDelay:      time.Millisecond,
			}, logger)

			resp, err := m.GenerateContent(context.Background(), hello())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if resp != nil {
					t.Errorf("expected nil response, got %+v", resp)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if resp.ProviderName != tt.wantProvider {
					t.Errorf("provider = %s, want %s", resp.ProviderName, tt.wantProvider)
				}
				if len(logger.infoMessages) != 1 {
					t.Errorf("expected 1 info log, got %d", len(logger.infoMessages))
				}
			}

			if tt.primary.callCount != tt.wantPrimary {
				t.Errorf("primary calls = %d, want %d", tt.primary.callCount, tt.wantPrimary)
			}
			if tt.secondary.callCount != tt.wantSecondary {
				t.Errorf("secondary calls = %d, want %d", tt.secondary.callCount, tt.wantSecondary)
			}
			if len(logger.warnMessages) != tt.wantWarns {
				t.Errorf("warn logs = %d, want %d", len(logger.warnMessages), tt.wantWarns)
			}
		})
	}
}

func TestGenerateContent_CallerCancelStopsChain(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	primary := &mockProvider{name: "primary", err: context.Canceled, onCall: cancel}
	secondary := &mockProvider{name: "secondary"}

	m := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      time.Millisecond,
	}, &mockLogger{})

	_, err := m.GenerateContent(ctx, hello())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled in chain, got %v", err)
	}
	if primary.callCount != 1 || secondary.callCount != 0 {
		t.Errorf("calls after cancel: primary=%d secondary=%d", primary.callCount, secondary.callCount)
	}
}

func TestGenerateContent_GlobalTimeout(t *testing.T) {
	slow := &mockProvider{name: "slow", err: errFlaky}
	m := NewManager([]Provider{slow}, &Config{
		RetryAttempts:   5,
		RetryDelay:      time.Second,
		MaxTotalTimeout: 30 * time.Millisecond,
	}, &mockLogger{})

	start := time.Now()
	_, err := m.GenerateContent(context.Background(), hello())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Errorf("backoff ignored the global timeout")
	}
	if slow.callCount != 1 {
		t.Errorf("expected a single attempt before timeout, got %d", slow.callCount)
	}
}

func TestGenerateContent_RejectsBadInput(t *testing.T) {
	if _, err := NewManager(nil, &Config{}, &mockLogger{}).GenerateContent(context.Background(), hello()); !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
	}

	p := &mockProvider{name: "primary"}
	if _, err := NewManager([]Provider{p}, &Config{}, &mockLogger{}).GenerateContent(context.Background(), &Request{}); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest, got %v", err)
	}
	if p.callCount != 0 {
		t.Errorf("provider called %d times for an empty request", p.callCount)
	}
}

func TestGenerateContent_ErrorNamesLastProvider(t *testing.T) {
	m := NewManager([]Provider{&mockProvider{name: "primary", err: errFlaky}}, &Config{RetryAttempts: 1}, &mockLogger{})

	_, err := m.GenerateContent(context.Background(), hello())
	var pe *ProviderError
	if !errors.As(err, &pe) || pe.Provider != "primary" || pe.Attempts != 1 {
		t.Fatalf("expected ProviderError for primary, got %v", err)
	}
	if !errors.Is(err, errFlaky) {
		t.Errorf("cause lost: %v", err)
	}
	if !strings.Contains(err.Error(), "provider primary") {
		t.Errorf("expected provider name in error, got: %v", err)
	}
}

func TestBackoff(t *testing.T) {
	m := NewManager(nil, &Config{RetryDelay: time.Second}, &mockLogger{})
	want := []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second, 8 * time.Second}
	for i, w := range want {
		if got := m.backoff(i + 1); got != w {
			t.Errorf("backoff(%d) = %v, want %v", i+1, got, w)
		}
	}
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{errFlaky, true},
		{context.Canceled, false},
		{context.DeadlineExceeded, true},
		{&openaicompat.APIError{StatusCode: http.StatusUnauthorized}, false},
		{&openaicompat.APIError{StatusCode: http.StatusRequestTimeout}, true},
		{&openaicompat.APIError{StatusCode: http.StatusServiceUnavailable}, true},
	}
	for _, tt := range tests {
		if got := retryable(tt.err); got != tt.want {
			t.Errorf("retryable(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
