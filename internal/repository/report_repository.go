package repository

import (
	"sync"

	"github.com/HarshXTrisha/vericheck-pro/internal/models"
	"github.com/rs/zerolog"
)

// ReportRepository is the session-scoped report store. Reports live in
// memory only: the store is created at startup, bounded by maxReports, and
// discarded with the process.
type ReportRepository interface {
	Save(report *models.AnalysisReport)
	GetByID(id string) (*models.AnalysisReport, bool)
	List() []*models.AnalysisReport
	Clear() int
	Count() int
}

type reportRepository struct {
	mu         sync.RWMutex
	reports    []*models.AnalysisReport
	maxReports int
	logger     zerolog.Logger
}

func NewReportRepository(maxReports int, logger zerolog.Logger) ReportRepository {
	return &reportRepository{
		maxReports: maxReports,
		logger:     logger,
	}
}

// Save prepends the report so List returns newest first. The oldest report
// falls off once the history limit is reached.
func (r *reportRepository) Save(report *models.AnalysisReport) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reports = append([]*models.AnalysisReport{report}, r.reports...)
	if r.maxReports > 0 && len(r.reports) > r.maxReports {
		r.reports = r.reports[:r.maxReports]
	}

	r.logger.Debug().
		Str("report_id", report.ID).
		Int("stored", len(r.reports)).
		Msg("Report stored")
}

func (r *reportRepository) GetByID(id string) (*models.AnalysisReport, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, report := range r.reports {
		if report.ID == id {
			return report, true
		}
	}
	return nil, false
}

func (r *reportRepository) List() []*models.AnalysisReport {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.AnalysisReport, len(r.reports))
	copy(out, r.reports)
	return out
}

func (r *reportRepository) Clear() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cleared := len(r.reports)
	r.reports = nil
	return cleared
}

func (r *reportRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.reports)
}
