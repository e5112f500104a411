package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/HarshXTrisha/vericheck-pro/internal/models"
	"github.com/HarshXTrisha/vericheck-pro/internal/repository"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGateway struct {
	findings   *models.MatchFindings
	detectRaw  string
	findErr    error
	detectErr  error
	configured bool

	findInput   string
	detectInput string
}

func (g *stubGateway) FindMatches(ctx context.Context, text string) (*models.MatchFindings, error) {
	g.findInput = text
	if g.findErr != nil {
		return nil, g.findErr
	}
	return g.findings, nil
}

func (g *stubGateway) DetectAI(ctx context.Context, text string) (string, error) {
	g.detectInput = text
	return g.detectRaw, g.detectErr
}

func (g *stubGateway) Configured() bool {
	return g.configured
}

func newTestService(gateway *stubGateway) (AnalysisService, repository.ReportRepository) {
	repo := repository.NewReportRepository(10, zerolog.Nop())
	svc := NewAnalysisService(gateway, repo, zerolog.Nop(), AnalysisConfig{
		MaxTextChars:        50000,
		PlagiarismCharLimit: 15000,
		DetectionCharLimit:  6000,
	})
	return svc, repo
}

func okGateway() *stubGateway {
	return &stubGateway{
		configured: true,
		findings: &models.MatchFindings{
			Text: "[MATCHES_START]\n- Index: 1 | Segment: \"a verbatim matched sequence\" | Category: Internet Source | Source: https://example.com/a\n[MATCHES_END]",
		},
		detectRaw: `{"aiScore": 55, "confidence": 70, "perplexity": "Medium", "burstiness": "Low", "analysis": "Mixed signals."}`,
	}
}

func TestAnalyzeText_FullPipeline(t *testing.T) {
	gateway := okGateway()
	svc, repo := newTestService(gateway)

	content := "Intro text. a verbatim matched sequence closes the paragraph."
	report, err := svc.AnalyzeText(context.Background(), content, "essay.txt")
	require.NoError(t, err)

	assert.Equal(t, "essay.txt", report.FileName)
	require.Len(t, report.Matches, 1)
	assert.Equal(t, "a verbatim matched sequence", report.Matches[0].MatchedText)
	assert.Equal(t, 55.0, report.AIProbability)
	assert.Equal(t, report.InternetSimilarity, report.OverallSimilarity)

	// the report is in the session history
	stored, ok := repo.GetByID(report.ID)
	require.True(t, ok)
	assert.Same(t, report, stored)
}

func TestAnalyzeText_TrimsBeforeAnalysis(t *testing.T) {
	gateway := okGateway()
	svc, _ := newTestService(gateway)

	report, err := svc.AnalyzeText(context.Background(), "  padded document text  ", "p.txt")
	require.NoError(t, err)

	assert.Equal(t, "padded document text", report.Content)
	assert.Equal(t, "padded document text", gateway.findInput)
}

func TestAnalyzeText_ValidationErrors(t *testing.T) {
	svc, repo := newTestService(okGateway())

	_, err := svc.AnalyzeText(context.Background(), "   ", "f.txt")
	assert.ErrorIs(t, err, ErrEmptyText)

	_, err = svc.AnalyzeText(context.Background(), "some text", " ")
	assert.ErrorIs(t, err, ErrEmptyFileName)

	_, err = svc.AnalyzeText(context.Background(), strings.Repeat("x", 50001), "f.txt")
	assert.ErrorIs(t, err, ErrTextTooLong)

	assert.Zero(t, repo.Count(), "no report may be produced on validation failure")
}

func TestAnalyzeText_GatewayNotConfigured(t *testing.T) {
	gateway := okGateway()
	gateway.configured = false
	svc, _ := newTestService(gateway)

	_, err := svc.AnalyzeText(context.Background(), "some text", "f.txt")
	assert.ErrorIs(t, err, ErrGatewayNotConfigured)
	assert.Empty(t, gateway.findInput, "no gateway call before the credential check")
}

func TestAnalyzeText_AtomicOnGatewayFailure(t *testing.T) {
	for name, mutate := range map[string]func(*stubGateway){
		"plagiarism call fails": func(g *stubGateway) { g.findErr = errors.New("boom") },
		"detection call fails":  func(g *stubGateway) { g.detectErr = errors.New("boom") },
	} {
		t.Run(name, func(t *testing.T) {
			gateway := okGateway()
			mutate(gateway)
			svc, repo := newTestService(gateway)

			_, err := svc.AnalyzeText(context.Background(), "some document text", "f.txt")
			require.Error(t, err)
			assert.Zero(t, repo.Count(), "no partial report on gateway failure")
		})
	}
}

func TestAnalyzeText_DegradedModelOutput(t *testing.T) {
	gateway := okGateway()
	gateway.findings = &models.MatchFindings{Text: "free text without any markers"}
	gateway.detectRaw = "not json"
	svc, _ := newTestService(gateway)

	report, err := svc.AnalyzeText(context.Background(), "some document text", "f.txt")
	require.NoError(t, err, "malformed model output degrades the report, never fails it")

	assert.Empty(t, report.Matches)
	assert.Zero(t, report.OverallSimilarity)
	assert.Equal(t, "Parsing failed.", report.AIResult.Analysis)
	assert.Equal(t, models.SignalMedium, report.AIResult.Perplexity)
}

func TestAnalyzeText_TruncatesGatewayInputs(t *testing.T) {
	gateway := okGateway()
	repo := repository.NewReportRepository(10, zerolog.Nop())
	svc := NewAnalysisService(gateway, repo, zerolog.Nop(), AnalysisConfig{
		MaxTextChars:        50000,
		PlagiarismCharLimit: 20,
		DetectionCharLimit:  10,
	})

	content := strings.Repeat("abcde ", 10) // 60 chars
	report, err := svc.AnalyzeText(context.Background(), content, "f.txt")
	require.NoError(t, err)

	assert.Len(t, gateway.findInput, 20)
	assert.Len(t, gateway.detectInput, 10)
	// the stored report keeps the full document
	assert.Len(t, report.Content, 59)
}
