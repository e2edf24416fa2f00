package report

import (
	"context"
	"time"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/report"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/shift"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/user"
)

type ReportServiceImpl struct {
	shiftRepo shift.Repository
	userRepo  user.Repository
}

func NewReportService(shiftRepo shift.Repository, userRepo user.Repository) report.ReportService {
	return &ReportServiceImpl{
		shiftRepo: shiftRepo,
		userRepo:  userRepo,
	}
}

// Weekly builds one user's report for a week of a year. Zero week or year
// defaults to the current one. Employees only see themselves.
func (s *ReportServiceImpl) Weekly(ctx context.Context, actor user.Actor, userID string, week, year int) (report.Report, error) {
	if userID == "" {
		userID = actor.ID
	}
	if !actor.IsAdmin() && !actor.Owns(userID) {
		return report.Report{}, user.ErrNotRecordOwner
	}

	now := time.Now().UTC()
	if year == 0 {
		year = now.Year()
	}
	if week == 0 {
		week = report.WeekNumber(now)
	}
	if week < 1 || week > 53 {
		return report.Report{}, report.ErrInvalidPeriod
	}

	start, end := report.WeekBounds(week, year)

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return report.Report{}, err
	}

	shifts, err := s.shiftRepo.FindApprovedByUserAndRange(ctx, userID, start, end)
	if err != nil {
		return report.Report{}, err
	}

	return report.BuildWeekly(shifts, start, end, u), nil
}

// Monthly builds one user's report for a calendar month, with the days
// additionally grouped into week buckets.
func (s *ReportServiceImpl) Monthly(ctx context.Context, actor user.Actor, userID string, month, year int) (report.Report, error) {
	if userID == "" {
		userID = actor.ID
	}
	if !actor.IsAdmin() && !actor.Owns(userID) {
		return report.Report{}, user.ErrNotRecordOwner
	}

	now := time.Now().UTC()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return report.Report{}, report.ErrInvalidPeriod
	}

	start, end := report.MonthBounds(time.Month(month), year)

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return report.Report{}, err
	}

	shifts, err := s.shiftRepo.FindApprovedByUserAndRange(ctx, userID, start, end)
	if err != nil {
		return report.Report{}, err
	}

	return report.BuildMonthly(shifts, start, end, u), nil
}

// AllUsers builds one report per roster user over a shared weekly or
// monthly period, admins only. Shifts for the whole range are fetched once
// and fanned out per user.
func (s *ReportServiceImpl) AllUsers(ctx context.Context, actor user.Actor, reportType string, week, month, year int) (report.AllUsersReport, error) {
	if !actor.IsAdmin() {
		return report.AllUsersReport{}, user.ErrAdminAccessRequired
	}

	now := time.Now().UTC()
	if year == 0 {
		year = now.Year()
	}

	var start, end time.Time
	period := report.Period{Year: year}

	switch reportType {
	case report.TypeWeekly:
		if week == 0 {
			week = report.WeekNumber(now)
		}
		if week < 1 || week > 53 {
			return report.AllUsersReport{}, report.ErrInvalidPeriod
		}
		start, end = report.WeekBounds(week, year)
		period.Week = week
	case report.TypeMonthly:
		if month == 0 {
			month = int(now.Month())
		}
		if month < 1 || month > 12 {
			return report.AllUsersReport{}, report.ErrInvalidPeriod
		}
		start, end = report.MonthBounds(time.Month(month), year)
		period.Month = month
	default:
		return report.AllUsersReport{}, report.ErrInvalidReportType
	}

	period.StartDate = start
	period.EndDate = end

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return report.AllUsersReport{}, err
	}

	allShifts, err := s.shiftRepo.FindApprovedByRange(ctx, start, end)
	if err != nil {
		return report.AllUsersReport{}, err
	}

	byUser := make(map[string][]shift.Shift, len(users))
	for _, sh := range allShifts {
		byUser[sh.UserID] = append(byUser[sh.UserID], sh)
	}

	result := report.AllUsersReport{
		ReportType: reportType,
		Period:     period,
		Reports:    make([]report.Report, 0, len(users)),
	}
	for _, u := range users {
		if reportType == report.TypeWeekly {
			result.Reports = append(result.Reports, report.BuildWeekly(byUser[u.ID], start, end, u))
		} else {
			result.Reports = append(result.Reports, report.BuildMonthly(byUser[u.ID], start, end, u))
		}
	}

	return result, nil
}
