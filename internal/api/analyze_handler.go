package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/emberdate/onboarding-api/internal/api/shared"
	"github.com/emberdate/onboarding-api/internal/domain"
	"github.com/emberdate/onboarding-api/internal/platform/logger"
)

// AnalyzeRequest defines the payload for the analysis endpoint.
type AnalyzeRequest struct {
	UserID   string `json:"user_id"  validate:"required,min=1"`
	Question string `json:"question" validate:"required,min=1"`
	Answer   string `json:"answer"   validate:"required,min=1"`
}

// AnalysisService is the narrow interface the handler needs from the
// analysis layer.
type AnalysisService interface {
	Analyze(ctx context.Context, input domain.AnalysisInput) (*domain.AnalysisResult, error)
}

// AnalyzeHandler handles analysis-related HTTP requests.
type AnalyzeHandler struct {
	service AnalysisService
	logger  *slog.Logger
}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler(service AnalysisService, log *slog.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		service: service,
		logger:  log,
	}
}

// Analyze handles POST /analyze requests. It validates the question/answer
// payload, runs the concurrent analysis, and returns the merged result.
// No partial or degraded result is ever returned: any agent failure maps
// to a server-side error response.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req AnalyzeRequest
	if err := shared.DecodeJSON(r.Body, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	input, err := domain.NewAnalysisInput(req.UserID, req.Question, req.Answer)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	result, err := h.service.Analyze(r.Context(), input)
	if err != nil {
		log.Error("analysis request failed",
			"user_id", input.UserID,
			"error", err)
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
