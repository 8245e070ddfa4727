package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
	t.Setenv("AUTH_JWT_SECRET", "this-is-a-very-long-jwt-secret-for-testing-32+")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "90m"
  rate_limit_per_min: 3

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 4
  min_conns: 1

auth:
  jwt_secret: "this-is-a-very-long-jwt-secret-for-testing-32+"
  allowed_roles: "service_role"

llm:
  provider: "anthropic"
  model: "claude-haiku-4-5"
  max_tokens: 120
  temperature: 0.7

bots:
  timezone: "Europe/Bucharest"
  template_fallback: true
  recent_limit: 10

lock:
  backend: "file"
  file_path: "/tmp/bots.lock"

log:
  level: "debug"
  format: "text"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.WriteTimeout != 90*time.Minute {
		t.Errorf("server.write_timeout = %v, want %v", cfg.Server.WriteTimeout, 90*time.Minute)
	}
	if cfg.Server.RateLimitPerMin != 3 {
		t.Errorf("server.rate_limit_per_min = %d, want 3", cfg.Server.RateLimitPerMin)
	}

	// Database
	if cfg.Database.MaxConns != 4 {
		t.Errorf("database.max_conns = %d, want 4", cfg.Database.MaxConns)
	}
	if cfg.Database.ApplicationName != "community-bots" {
		t.Errorf("database.application_name = %q, want community-bots", cfg.Database.ApplicationName)
	}

	// Auth
	if !cfg.Auth.IsRoleAllowed("service_role") {
		t.Error("service_role should be allowed")
	}
	if cfg.Auth.IsRoleAllowed("admin") {
		t.Error("admin should not be allowed when allowed_roles is overridden")
	}

	// LLM
	if cfg.LLM.Provider != ProviderAnthropic {
		t.Errorf("llm.provider = %q, want %q", cfg.LLM.Provider, ProviderAnthropic)
	}
	if cfg.LLM.MaxTokens != 120 {
		t.Errorf("llm.max_tokens = %d, want 120", cfg.LLM.MaxTokens)
	}
	if cfg.LLM.Timeout != 30*time.Second {
		t.Errorf("llm.timeout = %v, want default 30s", cfg.LLM.Timeout)
	}

	// Bots
	if !cfg.Bots.TemplateFallback {
		t.Error("bots.template_fallback should be true")
	}
	if cfg.Bots.RecentLimit != 10 {
		t.Errorf("bots.recent_limit = %d, want 10", cfg.Bots.RecentLimit)
	}
	if cfg.Bots.Location == nil || cfg.Bots.Location.String() != "Europe/Bucharest" {
		t.Errorf("bots.location = %v, want Europe/Bucharest", cfg.Bots.Location)
	}

	// Lock
	if cfg.Lock.Backend != LockFile || cfg.Lock.FilePath != "/tmp/bots.lock" {
		t.Errorf("lock = %+v", cfg.Lock)
	}

	// Log
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LLM_MODEL", "gpt-4.1-mini")
	t.Setenv("LLM_PROVIDER", "openai")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.LLM.Model != "gpt-4.1-mini" {
		t.Errorf("llm.model = %q, want %q (ENV override)", cfg.LLM.Model, "gpt-4.1-mini")
	}
	if cfg.LLM.Provider != ProviderOpenAI {
		t.Errorf("llm.provider = %q, want %q (ENV override)", cfg.LLM.Provider, ProviderOpenAI)
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "")

	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.LLM.Provider != ProviderOpenAI {
		t.Errorf("llm.provider = %q, want default %q", cfg.LLM.Provider, ProviderOpenAI)
	}
	if cfg.LLM.MaxTokens != 150 {
		t.Errorf("llm.max_tokens = %d, want default 150", cfg.LLM.MaxTokens)
	}
	if cfg.LLM.Temperature != 0.9 {
		t.Errorf("llm.temperature = %v, want default 0.9", cfg.LLM.Temperature)
	}
	if cfg.Lock.Backend != LockPostgres {
		t.Errorf("lock.backend = %q, want default %q", cfg.Lock.Backend, LockPostgres)
	}
	if cfg.Bots.Location == nil || cfg.Bots.Location.String() != "Europe/London" {
		t.Errorf("bots.location = %v, want Europe/London", cfg.Bots.Location)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "short jwt secret", mutate: func(c *Config) { c.Auth.JWTSecret = "short" }, wantErr: true},
		{name: "short secret ok when auth disabled", mutate: func(c *Config) {
			c.Auth.JWTSecret = ""
			c.Auth.Disabled = true
		}},
		{name: "no roles", mutate: func(c *Config) { c.Auth.AllowedRoles = " , " }, wantErr: true},
		{name: "unknown provider", mutate: func(c *Config) { c.LLM.Provider = "mistral" }, wantErr: true},
		{name: "gemini provider", mutate: func(c *Config) { c.LLM.Provider = ProviderGemini }},
		{name: "empty model", mutate: func(c *Config) { c.LLM.Model = "" }, wantErr: true},
		{name: "zero max tokens", mutate: func(c *Config) { c.LLM.MaxTokens = 0 }, wantErr: true},
		{name: "temperature too high", mutate: func(c *Config) { c.LLM.Temperature = 2.5 }, wantErr: true},
		{name: "zero recent limit", mutate: func(c *Config) { c.Bots.RecentLimit = 0 }, wantErr: true},
		{name: "bad timezone", mutate: func(c *Config) { c.Bots.Timezone = "Mars/Olympus" }, wantErr: true},
		{name: "unknown lock backend", mutate: func(c *Config) { c.Lock.Backend = "etcd" }, wantErr: true},
		{name: "redis lock without addr", mutate: func(c *Config) { c.Lock.Backend = LockRedis }, wantErr: true},
		{name: "redis lock with addr", mutate: func(c *Config) {
			c.Lock.Backend = LockRedis
			c.Redis.Addr = "localhost:6379"
		}},
		{name: "file lock without path", mutate: func(c *Config) {
			c.Lock.Backend = LockFile
			c.Lock.FilePath = ""
		}, wantErr: true},
		{name: "no lock", mutate: func(c *Config) { c.Lock.Backend = LockNone }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAuthConfig_IsRoleAllowed(t *testing.T) {
	t.Parallel()

	cfg := AuthConfig{AllowedRoles: "service_role, admin"}

	tests := []struct {
		role string
		want bool
	}{
		{"service_role", true},
		{"admin", true},
		{"authenticated", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := cfg.IsRoleAllowed(tt.role); got != tt.want {
			t.Errorf("IsRoleAllowed(%q) = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func validConfig() Config {
	return Config{
		Auth: AuthConfig{
			JWTSecret:    "this-is-a-very-long-jwt-secret-for-testing-32+",
			AllowedRoles: "service_role,admin",
		},
		LLM: LLMConfig{
			Provider:    ProviderOpenAI,
			Model:       "gpt-4o-mini",
			MaxTokens:   150,
			Temperature: 0.9,
		},
		Bots: BotsConfig{
			Timezone:    "UTC",
			RecentLimit: 20,
			EmailDomain: "bots.example.com",
		},
		Lock: LockConfig{
			Backend:  LockPostgres,
			FilePath: "/tmp/x.lock",
			TTL:      time.Hour,
		},
	}
}
