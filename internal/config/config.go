package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName    string `mapstructure:"model_name"     validate:"required"`

	// Temperature is the sampling temperature passed to the model.
	Temperature float64 `mapstructure:"temperature" validate:"gte=0,lte=2"`

	// MaxOutputTokens caps the length of a single reply.
	MaxOutputTokens int `mapstructure:"max_output_tokens" validate:"gt=0"`

	// RequestTimeoutSeconds bounds one backend call. A timeout surfaces to
	// the calling agent as its own failure, not as a crash.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"gt=0"`
}
