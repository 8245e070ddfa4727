package config

import (
	"slices"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	LLM      LLMConfig      `yaml:"llm"`
	Bots     BotsConfig     `yaml:"bots"`
	Lock     LockConfig     `yaml:"lock"`
	Redis    RedisConfig    `yaml:"redis"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"authorization,x-client-info,apikey,content-type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings. WriteTimeout must outlast a full
// invocation, which sleeps between iterations.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"2h"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RateLimitPerMin int           `yaml:"rate_limit_per_min" env:"SERVER_RATE_LIMIT_PER_MIN" env-default:"6"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"community-bots"`
}

// AuthConfig holds settings for authenticating function invocations.
type AuthConfig struct {
	Disabled     bool          `yaml:"disabled"      env:"AUTH_DISABLED"       env-default:"false"`
	JWTSecret    string        `yaml:"jwt_secret"    env:"AUTH_JWT_SECRET"`
	JWTIssuer    string        `yaml:"jwt_issuer"    env:"AUTH_JWT_ISSUER"     env-default:"community-bots"`
	TokenTTL     time.Duration `yaml:"token_ttl"     env:"AUTH_TOKEN_TTL"      env-default:"24h"`
	AllowedRoles string        `yaml:"allowed_roles" env:"AUTH_ALLOWED_ROLES"  env-default:"service_role,admin"`
}

// LLMConfig selects and tunes the completion back end.
type LLMConfig struct {
	Provider    string        `yaml:"provider"    env:"LLM_PROVIDER"    env-default:"openai"`
	APIKey      string        `yaml:"api_key"     env:"LLM_API_KEY"`
	BaseURL     string        `yaml:"base_url"    env:"LLM_BASE_URL"`
	Model       string        `yaml:"model"       env:"LLM_MODEL"       env-default:"gpt-4o-mini"`
	MaxTokens   int           `yaml:"max_tokens"  env:"LLM_MAX_TOKENS"  env-default:"150"`
	Temperature float32       `yaml:"temperature" env:"LLM_TEMPERATURE" env-default:"0.9"`
	Timeout     time.Duration `yaml:"timeout"     env:"LLM_TIMEOUT"     env-default:"30s"`
}

// BotsConfig holds process-level knobs of the generator. The per-run quotas
// live in the app_settings table.
type BotsConfig struct {
	Timezone         string `yaml:"timezone"          env:"BOTS_TIMEZONE"          env-default:"Europe/London"`
	TemplateFallback bool   `yaml:"template_fallback" env:"BOTS_TEMPLATE_FALLBACK" env-default:"false"`
	RecentLimit      int    `yaml:"recent_limit"      env:"BOTS_RECENT_LIMIT"      env-default:"20"`
	EmailDomain      string `yaml:"email_domain"      env:"BOTS_EMAIL_DOMAIN"      env-default:"bots.community.local"`

	// Location is parsed from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// LockConfig selects the single-flight guard for invocations.
type LockConfig struct {
	Backend  string        `yaml:"backend"   env:"LOCK_BACKEND"   env-default:"postgres"`
	Key      string        `yaml:"key"       env:"LOCK_KEY"       env-default:"bot-content-generator"`
	FilePath string        `yaml:"file_path" env:"LOCK_FILE_PATH" env-default:"/tmp/bot-content-generator.lock"`
	TTL      time.Duration `yaml:"ttl"       env:"LOCK_TTL"       env-default:"3h"`
}

// RedisConfig holds Redis connection settings for the redis lock backend.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Supported LLM providers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// Supported lock backends.
const (
	LockPostgres = "postgres"
	LockRedis    = "redis"
	LockFile     = "file"
	LockNone     = "none"
)

// Roles returns the allowed trigger roles.
func (c AuthConfig) Roles() []string {
	return splitList(c.AllowedRoles)
}

// IsRoleAllowed checks whether a token role may trigger a run.
func (c AuthConfig) IsRoleAllowed(role string) bool {
	return role != "" && slices.Contains(c.Roles(), role)
}
