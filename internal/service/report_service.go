package service

import (
	"errors"
	"sort"

	"github.com/HarshXTrisha/vericheck-pro/internal/models"
	"github.com/HarshXTrisha/vericheck-pro/internal/repository"
	"github.com/HarshXTrisha/vericheck-pro/internal/service/highlight"
	"github.com/rs/zerolog"
)

var ErrReportNotFound = errors.New("report not found")

// ReportService serves the stored reports back to the display layer: the
// history list, full reports, the decorated segment stream, and the sorted
// source list.
type ReportService interface {
	GetReport(id string) (*models.AnalysisReport, error)
	ListReports() []models.ReportSummary
	GetSegments(id string) ([]highlight.Segment, error)
	GetSources(id string) ([]models.SourceDetail, error)
	ClearHistory() int
	ReportCount() int
}

type reportService struct {
	reportRepo repository.ReportRepository
	logger     zerolog.Logger
}

func NewReportService(reportRepo repository.ReportRepository, logger zerolog.Logger) ReportService {
	return &reportService{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

func (s *reportService) GetReport(id string) (*models.AnalysisReport, error) {
	report, ok := s.reportRepo.GetByID(id)
	if !ok {
		return nil, ErrReportNotFound
	}
	return report, nil
}

func (s *reportService) ListReports() []models.ReportSummary {
	reports := s.reportRepo.List()

	summaries := make([]models.ReportSummary, 0, len(reports))
	for _, report := range reports {
		summaries = append(summaries, models.ReportSummary{
			ID:                report.ID,
			Timestamp:         report.Timestamp,
			FileName:          report.FileName,
			OverallSimilarity: report.OverallSimilarity,
			AIProbability:     report.AIProbability,
			WordCount:         report.WordCount,
			MatchCount:        len(report.Matches),
		})
	}
	return summaries
}

// GetSegments recomputes the highlighted segment stream for a report. The
// resolver is pure, so recomputing per request needs no cached state.
func (s *reportService) GetSegments(id string) ([]highlight.Segment, error) {
	report, ok := s.reportRepo.GetByID(id)
	if !ok {
		return nil, ErrReportNotFound
	}
	return highlight.Resolve(report.Content, report.Matches), nil
}

func (s *reportService) GetSources(id string) ([]models.SourceDetail, error) {
	report, ok := s.reportRepo.GetByID(id)
	if !ok {
		return nil, ErrReportNotFound
	}

	sources := make([]models.SourceDetail, 0, len(report.Matches))
	for _, m := range report.Matches {
		sources = append(sources, models.SourceDetail{
			Index:       m.Index,
			Source:      m.Source,
			URL:         m.URL,
			Category:    m.Category,
			Similarity:  m.Similarity,
			MatchedText: m.MatchedText,
			Color:       highlight.ColorFor(m.Index),
		})
	}

	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].Index < sources[j].Index
	})

	return sources, nil
}

func (s *reportService) ClearHistory() int {
	cleared := s.reportRepo.Clear()
	s.logger.Info().Int("cleared", cleared).Msg("Report history cleared")
	return cleared
}

func (s *reportService) ReportCount() int {
	return s.reportRepo.Count()
}
