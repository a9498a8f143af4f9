package interfaces

import "metalshop/internal/domain/finance"

// IJobReportRenderer turns a job report into a downloadable document.
type IJobReportRenderer interface {
	RenderJobReport(report finance.JobReport) ([]byte, error)
	ContentType() string
	FileExtension() string
}
