package analysis

import (
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"

	"github.com/emberdate/onboarding-api/internal/domain"
	"github.com/emberdate/onboarding-api/internal/generation"
)

// buildUserContent renders the shared input into the user message sent to
// the backend by both agents.
func buildUserContent(input domain.AnalysisInput, directive string) string {
	return fmt.Sprintf("Onboarding Question: %s\n\nUser's Response: %s\n\n%s",
		input.Question, input.Answer, directive)
}

// decodeReply unmarshals an LLM reply into v. Models occasionally emit
// almost-JSON (trailing commas, unquoted keys), so a failed parse goes
// through one jsonrepair pass before the reply is declared unparseable.
func decodeReply(reply string, v any) error {
	parseErr := json.Unmarshal([]byte(reply), v)
	if parseErr == nil {
		return nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(reply)
	if repairErr != nil {
		return fmt.Errorf("%w: %v", generation.ErrInvalidReply, parseErr)
	}

	if err := json.Unmarshal([]byte(repaired), v); err != nil {
		return fmt.Errorf("%w: %v", generation.ErrInvalidReply, parseErr)
	}

	return nil
}
