package usecase

import (
	"context"

	"github.com/pedro-h-dias/c3s-project/internal/domain"
)

// ReportUseCase handles cash-flow report generation.
type ReportUseCase struct {
	entryRepo EntryRepository
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(entryRepo EntryRepository) *ReportUseCase {
	return &ReportUseCase{
		entryRepo: entryRepo,
	}
}

// Generate builds the report for the window (day-period, day]. The report
// is recomputed from the full entry collection on every call; repository
// errors, including domain.ErrEntryNotFound for an empty ledger,
// propagate unchanged.
func (uc *ReportUseCase) Generate(ctx context.Context, day, period int) (*domain.Report, error) {
	if period <= 0 {
		return nil, domain.ErrInvalidPeriod
	}

	entries, err := uc.entryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return domain.BuildReport(entries, day, period), nil
}

// Render generates the report and formats it as text.
func (uc *ReportUseCase) Render(ctx context.Context, day, period int) (string, error) {
	report, err := uc.Generate(ctx, day, period)
	if err != nil {
		return "", err
	}

	return report.Render(day, period), nil
}
