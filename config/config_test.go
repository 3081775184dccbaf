package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testConfig = `
http_server:
  port: 9090
  trusted_proxies: ["10.0.0.0/8"]
session:
  timeout: 30m
agent:
  max_history: 20
cors:
  allowed_origins: ["http://localhost:3000", "https://shop.example.com"]
llm:
  providers:
    - name: gemini
      enabled: true
      priority: 1
      api_key: ${TEST_GEMINI_KEY}
      model: gemini-2.5-flash
    - name: qwen
      enabled: false
      priority: 2
      api_key: plain-key
      model: qwen-plus
telegram:
  bot_token: ${TEST_TELEGRAM_TOKEN}
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("TEST_GEMINI_KEY", "secret")
	t.Setenv("TEST_TELEGRAM_TOKEN", "123:abc")

	cfg, err := Load(writeConfig(t, testConfig))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTPServer.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.HTTPServer.Port)
	}
	if cfg.Session.Timeout != 30*time.Minute {
		t.Errorf("session timeout = %v, want 30m", cfg.Session.Timeout)
	}
	if cfg.Agent.MaxHistory != 20 {
		t.Errorf("max history = %d, want 20", cfg.Agent.MaxHistory)
	}
	if cfg.Agent.RecommendationLimit != 5 {
		t.Errorf("recommendation limit default = %d, want 5", cfg.Agent.RecommendationLimit)
	}
	if cfg.Agent.Timezone != "UTC" {
		t.Errorf("timezone default = %q, want UTC", cfg.Agent.Timezone)
	}
	if len(cfg.HTTPServer.TrustedProxies) != 1 || cfg.HTTPServer.TrustedProxies[0] != "10.0.0.0/8" {
		t.Errorf("trusted proxies = %v", cfg.HTTPServer.TrustedProxies)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Errorf("allowed origins = %v", cfg.CORS.AllowedOrigins)
	}
	if len(cfg.LLM.Providers) != 2 {
		t.Fatalf("providers = %d, want 2", len(cfg.LLM.Providers))
	}
	if cfg.LLM.Providers[0].APIKey != "secret" {
		t.Errorf("api key not expanded: %q", cfg.LLM.Providers[0].APIKey)
	}
	if cfg.LLM.Providers[1].APIKey != "plain-key" {
		t.Errorf("plain api key changed: %q", cfg.LLM.Providers[1].APIKey)
	}
	if cfg.Telegram.BotToken != "123:abc" {
		t.Errorf("telegram token not expanded: %q", cfg.Telegram.BotToken)
	}
}

func TestLoad_NoProviders(t *testing.T) {
	if _, err := Load(writeConfig(t, "http_server:\n  port: 8080\n")); err == nil {
		t.Fatal("expected error without llm providers")
	}
}

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{
			name: "valid",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Model: "m", Enabled: true, Priority: 1},
			}},
		},
		{
			name: "duplicate priority",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Model: "m", Enabled: true, Priority: 1},
				{Name: "qwen", Model: "m", Enabled: true, Priority: 1},
			}},
			wantErr: true,
		},
		{
			name: "none enabled",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Model: "m", Priority: 1},
			}},
			wantErr: true,
		},
		{
			name: "missing model",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateLLMConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
