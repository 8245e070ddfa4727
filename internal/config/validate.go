package config

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if !c.Auth.Disabled && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if !c.Auth.Disabled && len(c.Auth.Roles()) == 0 {
		return fmt.Errorf("auth.allowed_roles must name at least one role")
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	if err := c.Bots.validate(); err != nil {
		return fmt.Errorf("bots: %w", err)
	}

	if err := c.validateLock(); err != nil {
		return fmt.Errorf("lock: %w", err)
	}

	return nil
}

func (l *LLMConfig) validate() error {
	if !slices.Contains([]string{ProviderOpenAI, ProviderAnthropic, ProviderGemini}, l.Provider) {
		return fmt.Errorf("unknown provider %q", l.Provider)
	}
	if l.Model == "" {
		return fmt.Errorf("model is required")
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	if l.Temperature < 0 || l.Temperature > 2 {
		return fmt.Errorf("temperature must be within 0..2 (got %v)", l.Temperature)
	}
	return nil
}

func (b *BotsConfig) validate() error {
	if b.RecentLimit <= 0 {
		return fmt.Errorf("recent_limit must be > 0 (got %d)", b.RecentLimit)
	}
	if strings.TrimSpace(b.EmailDomain) == "" {
		return fmt.Errorf("email_domain is required")
	}

	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	b.Location = loc

	return nil
}

func (c *Config) validateLock() error {
	switch c.Lock.Backend {
	case LockPostgres, LockNone:
	case LockFile:
		if c.Lock.FilePath == "" {
			return fmt.Errorf("file_path is required for the file backend")
		}
	case LockRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required for the redis backend")
		}
		if c.Lock.TTL <= 0 {
			return fmt.Errorf("ttl must be > 0 for the redis backend")
		}
	default:
		return fmt.Errorf("unknown backend %q", c.Lock.Backend)
	}
	return nil
}

// splitList splits a comma-separated list, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
