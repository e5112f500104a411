package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/HarshXTrisha/vericheck-pro/internal/models"
	"github.com/HarshXTrisha/vericheck-pro/internal/repository"
	"github.com/HarshXTrisha/vericheck-pro/internal/service/analyzer"
	"github.com/HarshXTrisha/vericheck-pro/internal/service/integration"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Validation and configuration failures the handler maps to specific
// HTTP statuses.
var (
	ErrEmptyText            = errors.New("text is required")
	ErrEmptyFileName        = errors.New("file name is required")
	ErrTextTooLong          = errors.New("text exceeds the maximum length")
	ErrGatewayNotConfigured = errors.New("model gateway is not configured")
)

type AnalysisService interface {
	AnalyzeText(ctx context.Context, text, fileName string) (*models.AnalysisReport, error)
}

type analysisService struct {
	gateway    integration.ModelGateway
	reportRepo repository.ReportRepository
	logger     zerolog.Logger
	config     AnalysisConfig
}

type AnalysisConfig struct {
	MaxTextChars        int
	PlagiarismCharLimit int
	DetectionCharLimit  int
}

func NewAnalysisService(
	gateway integration.ModelGateway,
	reportRepo repository.ReportRepository,
	logger zerolog.Logger,
	config AnalysisConfig,
) AnalysisService {
	return &analysisService{
		gateway:    gateway,
		reportRepo: reportRepo,
		logger:     logger,
		config:     config,
	}
}

// AnalyzeText runs the full pipeline for one submission: validation, the
// two gateway calls, match extraction, report assembly, and history
// storage. The gateway calls run concurrently but their results are joined
// before assembly; if either fails the whole analysis fails and no report
// is produced.
func (s *analysisService) AnalyzeText(ctx context.Context, text, fileName string) (*models.AnalysisReport, error) {
	cleanText := strings.TrimSpace(text)
	if cleanText == "" {
		return nil, ErrEmptyText
	}
	if strings.TrimSpace(fileName) == "" {
		return nil, ErrEmptyFileName
	}
	if utf8.RuneCountInString(cleanText) > s.config.MaxTextChars {
		return nil, fmt.Errorf("%w: maximum %d characters allowed", ErrTextTooLong, s.config.MaxTextChars)
	}
	if !s.gateway.Configured() {
		return nil, ErrGatewayNotConfigured
	}

	scanID := uuid.New().String()
	startTime := time.Now()

	s.logger.Info().
		Str("scan_id", scanID).
		Str("file_name", fileName).
		Int("chars", utf8.RuneCountInString(cleanText)).
		Msg("Starting analysis")

	var (
		wg        sync.WaitGroup
		findings  *models.MatchFindings
		detectRaw string
		findErr   error
		detectErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		findings, findErr = s.gateway.FindMatches(ctx, truncateRunes(cleanText, s.config.PlagiarismCharLimit))
	}()
	go func() {
		defer wg.Done()
		detectRaw, detectErr = s.gateway.DetectAI(ctx, truncateRunes(cleanText, s.config.DetectionCharLimit))
	}()
	wg.Wait()

	if findErr != nil {
		return nil, fmt.Errorf("plagiarism scan failed: %w", findErr)
	}
	if detectErr != nil {
		return nil, fmt.Errorf("ai detection failed: %w", detectErr)
	}

	matches, sim := analyzer.ExtractMatches(findings.Text, findings.Grounding, utf8.RuneCountInString(cleanText))
	aiResult := analyzer.ParseDetection(detectRaw)

	report := analyzer.BuildReport(cleanText, fileName, matches, sim, aiResult)
	s.reportRepo.Save(report)

	s.logger.Info().
		Str("scan_id", scanID).
		Str("report_id", report.ID).
		Int("matches", len(matches)).
		Int("overall_similarity", report.OverallSimilarity).
		Float64("ai_probability", report.AIProbability).
		Dur("duration", time.Since(startTime)).
		Msg("Analysis completed")

	return report, nil
}

// truncateRunes caps text at limit code points before it is sent to the
// gateway; the full text still drives similarity math and highlighting.
func truncateRunes(text string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return string(runes[:limit])
}
