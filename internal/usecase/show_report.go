package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/runoshun/freewipe/internal/domain"
)

// ShowReportInput contains the parameters for ShowReport.
type ShowReportInput struct{}

// ShowReportOutput contains the last run report.
type ShowReportOutput struct {
	Report *domain.RunReport
}

// ShowReport loads the report written by the last sweep.
type ShowReport struct {
	reports domain.ReportReader
}

// NewShowReport creates a new ShowReport use case.
func NewShowReport(reports domain.ReportReader) *ShowReport {
	return &ShowReport{reports: reports}
}

// Execute reads the last report.
func (uc *ShowReport) Execute(_ context.Context, _ ShowReportInput) (*ShowReportOutput, error) {
	r, err := uc.reports.Read()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrNoReport
		}
		return nil, fmt.Errorf("read report: %w", err)
	}
	return &ShowReportOutput{Report: r}, nil
}
