package analyzer

import (
	"encoding/json"
	"strings"

	"github.com/HarshXTrisha/vericheck-pro/internal/models"
)

// ParseDetection decodes the AI-detection JSON payload. The gateway is asked
// for strict JSON but is not trusted to deliver it; anything that does not
// decode yields a neutral default result instead of an error, so a garbled
// detector response degrades the report rather than failing the analysis.
func ParseDetection(raw string) models.AIDetectionResult {
	var result models.AIDetectionResult
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &result); err != nil {
		return models.AIDetectionResult{
			AIScore:    0,
			Confidence: 0,
			Perplexity: models.SignalMedium,
			Burstiness: models.SignalMedium,
			Analysis:   "Parsing failed.",
		}
	}
	return result
}
