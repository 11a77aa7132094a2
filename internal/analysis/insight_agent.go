package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/emberdate/onboarding-api/internal/domain"
	"github.com/emberdate/onboarding-api/internal/generation"
)

// insightSystemPrompt directs the backend to reply with a flat JSON object
// containing a summary and keywords, and nothing else.
const insightSystemPrompt = `You are an InsightAgent for a dating app's onboarding system.

Your job is to analyze a user's response to an onboarding question and produce:
1. A SHORT, FRIENDLY natural-language summary (1-2 sentences max)
2. 2-5 key phrases that capture the essence of their response

Be warm and empathetic. Focus on what the user truly wants.

You MUST respond with valid JSON in this exact format:
{
  "summary": "A brief, friendly summary of what the user is looking for",
  "keywords": ["keyword1", "keyword2", "keyword3"]
}

Only output the JSON, nothing else.`

const insightDirective = "Analyze this response and provide a summary with keywords."

// insightReply is the expected structured shape of the backend's reply.
type insightReply struct {
	Summary  string   `json:"summary"`
	Keywords []string `json:"keywords"`
}

// InsightAgent produces a natural-language summary and keywords from the
// user's answer. It implements the Task interface with RoleInsight.
type InsightAgent struct {
	backend generation.Backend
	logger  *slog.Logger
}

// NewInsightAgent creates an InsightAgent backed by the given generation
// backend.
func NewInsightAgent(backend generation.Backend, logger *slog.Logger) *InsightAgent {
	return &InsightAgent{
		backend: backend,
		logger:  logger,
	}
}

// Name implements Task.
func (a *InsightAgent) Name() string { return "InsightAgent" }

// Role implements Task.
func (a *InsightAgent) Role() Role { return RoleInsight }

// Run invokes the backend once and parses its reply into a domain.Insight.
// A backend failure and an unparseable reply are treated identically: both
// become this agent's own failure, never a panic.
func (a *InsightAgent) Run(ctx context.Context, input domain.AnalysisInput) (any, error) {
	reply, err := a.backend.Invoke(ctx, insightSystemPrompt, buildUserContent(input, insightDirective))
	if err != nil {
		return nil, a.failure(err)
	}

	var parsed insightReply
	if err := decodeReply(reply, &parsed); err != nil {
		a.logger.WarnContext(ctx, "insight reply could not be parsed",
			"reply_length", len(reply),
			"error", err)
		return nil, a.failure(err)
	}

	keywords := parsed.Keywords
	if len(keywords) > domain.MaxKeywords {
		keywords = keywords[:domain.MaxKeywords]
	}

	a.logger.DebugContext(ctx, "insight agent completed",
		"summary_length", len(parsed.Summary),
		"keyword_count", len(keywords))

	return domain.Insight{
		Summary:  parsed.Summary,
		Keywords: keywords,
	}, nil
}

// failure wraps an error into this agent's failure message.
func (a *InsightAgent) failure(err error) error {
	return fmt.Errorf("%s error: %w", a.Name(), err)
}
