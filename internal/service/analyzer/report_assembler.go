package analyzer

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/HarshXTrisha/vericheck-pro/internal/models"
	"github.com/HarshXTrisha/vericheck-pro/pkg/utils"
)

const receiptAuthor = "Verified User"

// BuildReport combines the extractor output, the AI-detection result, and
// the document metadata into one finalized AnalysisReport. It performs no
// I/O and does not mutate its inputs; the returned report is treated as
// immutable by everything downstream.
func BuildReport(content, fileName string, matches []models.PlagiarismMatch, sim Similarity, aiResult models.AIDetectionResult) *models.AnalysisReport {
	now := time.Now()
	charCount := utf8.RuneCountInString(content)

	return &models.AnalysisReport{
		ID:                    utils.GenerateReportID(),
		Timestamp:             now,
		FileName:              fileName,
		OverallSimilarity:     sim.Overall,
		InternetSimilarity:    sim.Internet,
		PublicationSimilarity: sim.Publication,
		StudentSimilarity:     sim.Student,
		AIProbability:         aiResult.AIScore,
		WordCount:             len(strings.Fields(content)),
		Matches:               matches,
		AIResult:              aiResult,
		Content:               content,
		Receipt: models.DigitalReceipt{
			SubmissionID:   utils.GenerateSubmissionID(),
			SubmissionDate: now.Format("1/2/2006, 3:04:05 PM"),
			FileHash:       utils.ContentHash(content),
			Author:         receiptAuthor,
			CharacterCount: charCount,
		},
	}
}
