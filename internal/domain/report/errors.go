package report

import "errors"

var (
	ErrInvalidReportType = errors.New("report type must be weekly or monthly")
	ErrInvalidPeriod     = errors.New("invalid report period")
)
