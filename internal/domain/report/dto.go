package report

// ReportType selects the aggregation window for the all-users report.
const (
	TypeWeekly  = "weekly"
	TypeMonthly = "monthly"
)

// AllUsersReport bundles one report per roster user over a shared period.
type AllUsersReport struct {
	ReportType string   `json:"report_type"`
	Period     Period   `json:"period"`
	Reports    []Report `json:"reports"`
}
