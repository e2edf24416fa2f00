package report

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/report"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/shift"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/user"
)

type fakeShiftRepo struct {
	seq    int
	shifts map[string]shift.Shift
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{shifts: make(map[string]shift.Shift)}
}

func (r *fakeShiftRepo) add(userID string, shiftType shift.Type, day time.Time, status shift.Status) {
	r.seq++
	start, end, _ := shift.Span(shiftType, day)
	id := fmt.Sprintf("shift-%d", r.seq)
	r.shifts[id] = shift.Shift{
		ID: id, UserID: userID, Date: day, ShiftType: shiftType,
		StartTime: start, EndTime: end, Status: status,
	}
}

func (r *fakeShiftRepo) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	return s, nil
}

func (r *fakeShiftRepo) CreateMany(ctx context.Context, shifts []shift.Shift) error { return nil }

func (r *fakeShiftRepo) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	return shift.Shift{}, shift.ErrShiftNotFound
}

func (r *fakeShiftRepo) Update(ctx context.Context, s shift.Shift) error { return nil }

func (r *fakeShiftRepo) Delete(ctx context.Context, id string) error { return nil }

func (r *fakeShiftRepo) findRange(userID string, start, end time.Time, approvedOnly bool) []shift.Shift {
	var out []shift.Shift
	for _, s := range r.shifts {
		if userID != "" && s.UserID != userID {
			continue
		}
		if s.Date.Before(start) || s.Date.After(end) {
			continue
		}
		if approvedOnly && s.Status != shift.StatusApproved {
			continue
		}
		out = append(out, s)
	}
	return out
}

func (r *fakeShiftRepo) FindByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]shift.Shift, error) {
	return r.findRange(userID, start, end, false), nil
}

func (r *fakeShiftRepo) FindApprovedByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]shift.Shift, error) {
	return r.findRange(userID, start, end, true), nil
}

func (r *fakeShiftRepo) FindByRange(ctx context.Context, start, end time.Time) ([]shift.Shift, error) {
	return r.findRange("", start, end, false), nil
}

func (r *fakeShiftRepo) FindApprovedByRange(ctx context.Context, start, end time.Time) ([]shift.Shift, error) {
	return r.findRange("", start, end, true), nil
}

func (r *fakeShiftRepo) ExistsForUserDateType(ctx context.Context, userID string, date time.Time, shiftType shift.Type) (bool, error) {
	return false, nil
}

func (r *fakeShiftRepo) DeleteGenerated(ctx context.Context, userID string, shiftType shift.Type, start, end time.Time, noteTag string) (int64, error) {
	return 0, nil
}

type fakeUserRepo struct {
	users []user.User
}

func (r *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) { return u, nil }

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) Update(ctx context.Context, req user.UpdateUserRequest) error { return nil }

func (r *fakeUserRepo) List(ctx context.Context) ([]user.User, error) { return r.users, nil }

var (
	adminActor    = user.Actor{ID: "admin-1", Role: user.RoleAdmin}
	employeeActor = user.Actor{ID: "emp-1", Role: user.RoleEmployee}
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService() (report.ReportService, *fakeShiftRepo) {
	shiftRepo := newFakeShiftRepo()
	userRepo := &fakeUserRepo{users: []user.User{
		{ID: "admin-1", Name: "Admin", Email: "admin@example.com", Role: user.RoleAdmin},
		{ID: "emp-1", Name: "Alice", Email: "alice@example.com", Role: user.RoleEmployee},
	}}
	return NewReportService(shiftRepo, userRepo), shiftRepo
}

func TestWeeklyReport(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	// Week 24 of 2024 runs 2024-06-10 .. 2024-06-16.
	repo.add("emp-1", shift.TypeMorning, date(2024, time.June, 10), shift.StatusApproved)
	repo.add("emp-1", shift.TypePaidLeave, date(2024, time.June, 12), shift.StatusApproved)
	repo.add("emp-1", shift.TypeNight, date(2024, time.June, 13), shift.StatusPending)
	repo.add("emp-1", shift.TypeMorning, date(2024, time.June, 20), shift.StatusApproved)

	r, err := svc.Weekly(ctx, employeeActor, "", 24, 2024)
	require.NoError(t, err)

	assert.Equal(t, "emp-1", r.User.ID)
	assert.Equal(t, 24, r.Period.Week)

	// Pending and out-of-week shifts are excluded.
	assert.InDelta(t, 8.2, r.Summary.TotalHours, 0.001)
	assert.Equal(t, 1, r.Summary.TotalDays)
	assert.Equal(t, 1, r.Summary.TotalLeaves)
	assert.Equal(t, 0, r.Summary.ShiftCounts[shift.TypeNight])
}

func TestWeeklyReportPermissions(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Weekly(ctx, employeeActor, "admin-1", 24, 2024)
	assert.ErrorIs(t, err, user.ErrNotRecordOwner)

	_, err = svc.Weekly(ctx, adminActor, "emp-1", 24, 2024)
	assert.NoError(t, err)
}

func TestWeeklyReportInvalidWeek(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Weekly(ctx, employeeActor, "", 54, 2024)
	assert.ErrorIs(t, err, report.ErrInvalidPeriod)
}

func TestMonthlyReport(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	repo.add("emp-1", shift.TypeDay, date(2024, time.June, 3), shift.StatusApproved)
	repo.add("emp-1", shift.TypeDay, date(2024, time.June, 28), shift.StatusApproved)

	r, err := svc.Monthly(ctx, employeeActor, "", 6, 2024)
	require.NoError(t, err)

	assert.Equal(t, 6, r.Period.Month)
	assert.InDelta(t, 18, r.Summary.TotalHours, 0.001)
	assert.Len(t, r.DailyBreakdown, 30)
	assert.NotEmpty(t, r.WeeklyBreakdown)

	_, err = svc.Monthly(ctx, employeeActor, "", 13, 2024)
	assert.ErrorIs(t, err, report.ErrInvalidPeriod)
}

func TestAllUsersReport(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	repo.add("emp-1", shift.TypeMorning, date(2024, time.June, 10), shift.StatusApproved)

	result, err := svc.AllUsers(ctx, adminActor, report.TypeWeekly, 24, 0, 2024)
	require.NoError(t, err)

	assert.Equal(t, report.TypeWeekly, result.ReportType)
	assert.Equal(t, 24, result.Period.Week)
	require.Len(t, result.Reports, 2)

	totals := make(map[string]float64)
	for _, r := range result.Reports {
		totals[r.User.ID] = r.Summary.TotalHours
	}
	assert.InDelta(t, 8.2, totals["emp-1"], 0.001)
	assert.Zero(t, totals["admin-1"])
}

func TestAllUsersReportAccess(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AllUsers(ctx, employeeActor, report.TypeWeekly, 24, 0, 2024)
	assert.ErrorIs(t, err, user.ErrAdminAccessRequired)

	_, err = svc.AllUsers(ctx, adminActor, "yearly", 24, 0, 2024)
	assert.ErrorIs(t, err, report.ErrInvalidReportType)
}
