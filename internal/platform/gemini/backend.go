package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/genai"

	"github.com/emberdate/onboarding-api/internal/config"
	"github.com/emberdate/onboarding-api/internal/generation"
	"github.com/emberdate/onboarding-api/internal/redact"
)

// Backend implements the generation.Backend interface using Google's
// Gemini API.
type Backend struct {
	// logger is used for structured logging
	logger *slog.Logger

	// config contains LLM-specific configuration
	config config.LLMConfig

	// client is the Gemini API client for making requests
	client *genai.Client

	// timeout bounds a single Invoke call
	timeout time.Duration
}

// compile-time interface check
var _ generation.Backend = (*Backend)(nil)

// NewBackend creates a new Backend with the provided dependencies.
//
// Parameters:
//   - ctx: Context for the operation, which can be used for cancellation
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing API key, model name, and other settings
//
// Returns:
//   - A properly initialized Backend or an error if initialization fails
func NewBackend(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Backend, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.RequestTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("%w: request timeout must be positive", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &Backend{
		logger:  logger,
		config:  cfg,
		client:  client,
		timeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
	}, nil
}

// Invoke sends one generation request to the Gemini API and returns the
// reply text. The reply is requested as JSON, but interpreting it is the
// calling agent's responsibility. Errors are mapped into the generation
// package's taxonomy; a context timeout surfaces as ErrBackendUnavailable.
func (b *Backend) Invoke(ctx context.Context, systemInstruction, userContent string) (string, error) {
	if userContent == "" {
		return "", fmt.Errorf("%w: user content cannot be empty", generation.ErrInvalidConfig)
	}

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	genCfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr(float32(b.config.Temperature)),
		MaxOutputTokens:   int32(b.config.MaxOutputTokens),
		ResponseMIMEType:  "application/json",
	}

	b.logger.DebugContext(ctx, "making Gemini API call",
		"model", b.config.ModelName,
		"content_length", len(userContent))

	resp, err := b.client.Models.GenerateContent(ctx, b.config.ModelName, genai.Text(userContent), genCfg)
	if err != nil {
		b.logger.ErrorContext(ctx, "Gemini API call failed",
			"model", b.config.ModelName,
			"error", redact.Error(err))
		return "", fmt.Errorf("%w: %s", generation.ErrBackendUnavailable, redact.Error(err))
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidReply)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: reply blocked by safety filters", generation.ErrContentBlocked)
	}

	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in reply", generation.ErrInvalidReply)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty reply text", generation.ErrInvalidReply)
	}

	b.logger.DebugContext(ctx, "Gemini API call succeeded",
		"model", b.config.ModelName,
		"reply_length", len(text))

	return text, nil
}
