package shift

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func (r *fakeShiftRepo) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	r.seq++
	s.ID = fmt.Sprintf("shift-%d", r.seq)
	r.shifts[s.ID] = s
	return s, nil
}

func (r *fakeShiftRepo) CreateMany(ctx context.Context, shifts []shift.Shift) error {
	for _, s := range shifts {
		if _, err := r.Create(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeShiftRepo) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	s, ok := r.shifts[id]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return s, nil
}

func (r *fakeShiftRepo) Update(ctx context.Context, s shift.Shift) error {
	if _, ok := r.shifts[s.ID]; !ok {
		return shift.ErrShiftNotFound
	}
	r.shifts[s.ID] = s
	return nil
}

func (r *fakeShiftRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.shifts[id]; !ok {
		return shift.ErrShiftNotFound
	}
	delete(r.shifts, id)
	return nil
}

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
	for _, s := range r.shifts {
		if s.UserID == userID && s.Date.Equal(date) && s.ShiftType == shiftType {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeShiftRepo) DeleteGenerated(ctx context.Context, userID string, shiftType shift.Type, start, end time.Time, noteTag string) (int64, error) {
	return 0, nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func newFakeUserRepo(users ...user.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]user.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	r.users[u.ID] = u
	return u, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) Update(ctx context.Context, req user.UpdateUserRequest) error {
	if _, ok := r.users[req.ID]; !ok {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]user.User, error) {
	var out []user.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

var (
	adminActor    = user.Actor{ID: "admin-1", Role: user.RoleAdmin}
	employeeActor = user.Actor{ID: "emp-1", Role: user.RoleEmployee}
	otherEmployee = user.Actor{ID: "emp-2", Role: user.RoleEmployee}
)

func newTestService() (shift.ShiftService, *fakeShiftRepo) {
	shiftRepo := newFakeShiftRepo()
	userRepo := newFakeUserRepo(
		user.User{ID: "admin-1", Name: "Admin", Email: "admin@example.com", Role: user.RoleAdmin},
		user.User{ID: "emp-1", Name: "Alice", Email: "alice@example.com", Role: user.RoleEmployee},
		user.User{ID: "emp-2", Name: "Bob", Email: "bob@example.com", Role: user.RoleEmployee},
	)
	return NewShiftService(shiftRepo, userRepo), shiftRepo
}

func strPtr(s string) *string { return &s }

func TestAdminCreateIsApproved(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	resp, err := svc.Create(ctx, adminActor, shift.CreateShiftRequest{
		UserID:    "emp-1",
		Date:      "2024-06-10",
		ShiftType: "M",
	})
	require.NoError(t, err)

	assert.Equal(t, "approved", resp.Status)
	assert.False(t, resp.IsUserSuggested)
	assert.Equal(t, "2024-06-10", resp.Date)
	assert.Equal(t, "Morning Shift", resp.ShiftName)
}

func TestEmployeeCreateIsSuggestion(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	resp, err := svc.Create(ctx, employeeActor, shift.CreateShiftRequest{
		UserID:    "emp-1",
		Date:      "2024-06-10",
		ShiftType: "N",
	})
	require.NoError(t, err)

	assert.Equal(t, "pending", resp.Status)
	assert.True(t, resp.IsUserSuggested)

	stored := repo.shifts[resp.ID]
	assert.Equal(t, "emp-1", stored.CreatedBy)
	// Night shift runs into the next day.
	assert.True(t, stored.EndTime.After(stored.StartTime))
	assert.Equal(t, 11, stored.EndTime.Day())
}

func TestEmployeeCannotCreateForOthers(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, employeeActor, shift.CreateShiftRequest{
		UserID:    "emp-2",
		Date:      "2024-06-10",
		ShiftType: "M",
	})
	assert.ErrorIs(t, err, user.ErrNotRecordOwner)
}

func TestCreateUnknownUser(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, adminActor, shift.CreateShiftRequest{
		UserID:    "ghost",
		Date:      "2024-06-10",
		ShiftType: "M",
	})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestCreateDuplicateSlot(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	req := shift.CreateShiftRequest{UserID: "emp-1", Date: "2024-06-10", ShiftType: "M"}

	_, err := svc.Create(ctx, adminActor, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, adminActor, req)
	assert.ErrorIs(t, err, shift.ErrShiftExists)

	// A different type on the same day is fine.
	_, err = svc.Create(ctx, adminActor, shift.CreateShiftRequest{
		UserID: "emp-1", Date: "2024-06-10", ShiftType: "A",
	})
	assert.NoError(t, err)
}

func TestUpdateRecomputesSpan(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, adminActor, shift.CreateShiftRequest{
		UserID: "emp-1", Date: "2024-06-10", ShiftType: "M",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, adminActor, shift.UpdateShiftRequest{
		ID:        created.ID,
		ShiftType: strPtr("D"),
	})
	require.NoError(t, err)

	assert.Equal(t, "D", updated.ShiftType)
	stored := repo.shifts[created.ID]
	assert.Equal(t, 9, stored.StartTime.Hour())
	assert.Equal(t, 18, stored.EndTime.Hour())
	require.NotNil(t, stored.UpdatedBy)
	assert.Equal(t, "admin-1", *stored.UpdatedBy)
}

func TestUpdateMovingIntoOccupiedSlot(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, adminActor, shift.CreateShiftRequest{
		UserID: "emp-1", Date: "2024-06-10", ShiftType: "M",
	})
	require.NoError(t, err)

	second, err := svc.Create(ctx, adminActor, shift.CreateShiftRequest{
		UserID: "emp-1", Date: "2024-06-11", ShiftType: "M",
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, adminActor, shift.UpdateShiftRequest{
		ID:   second.ID,
		Date: strPtr("2024-06-10"),
	})
	assert.ErrorIs(t, err, shift.ErrShiftExists)
}

func TestEmployeeCannotEditApprovedShift(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, adminActor, shift.CreateShiftRequest{
		UserID: "emp-1", Date: "2024-06-10", ShiftType: "M",
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, employeeActor, shift.UpdateShiftRequest{
		ID:    created.ID,
		Notes: strPtr("prefer afternoon"),
	})
	assert.ErrorIs(t, err, shift.ErrShiftApproved)

	err = svc.Delete(ctx, employeeActor, created.ID)
	assert.ErrorIs(t, err, shift.ErrShiftApproved)
}

func TestEmployeeCannotChangeStatus(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, employeeActor, shift.CreateShiftRequest{
		UserID: "emp-1", Date: "2024-06-10", ShiftType: "M",
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, employeeActor, shift.UpdateShiftRequest{
		ID:     created.ID,
		Status: strPtr("approved"),
	})
	assert.ErrorIs(t, err, user.ErrAdminAccessRequired)
}

func TestAdminApprovesSuggestion(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, employeeActor, shift.CreateShiftRequest{
		UserID: "emp-1", Date: "2024-06-10", ShiftType: "M",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, adminActor, shift.UpdateShiftRequest{
		ID:     created.ID,
		Status: strPtr("approved"),
	})
	require.NoError(t, err)

	assert.Equal(t, "approved", updated.Status)
	assert.True(t, updated.IsUserSuggested)
}

func TestEmployeeCannotTouchOthersShift(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, employeeActor, shift.CreateShiftRequest{
		UserID: "emp-1", Date: "2024-06-10", ShiftType: "M",
	})
	require.NoError(t, err)

	_, err = svc.Get(ctx, otherEmployee, created.ID)
	assert.ErrorIs(t, err, user.ErrNotRecordOwner)

	_, err = svc.Update(ctx, otherEmployee, shift.UpdateShiftRequest{
		ID:    created.ID,
		Notes: strPtr("mine now"),
	})
	assert.ErrorIs(t, err, user.ErrNotRecordOwner)

	err = svc.Delete(ctx, otherEmployee, created.ID)
	assert.ErrorIs(t, err, user.ErrNotRecordOwner)
}

func TestListScoping(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, adminActor, shift.CreateShiftRequest{
		UserID: "emp-1", Date: "2024-06-10", ShiftType: "M",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, adminActor, shift.CreateShiftRequest{
		UserID: "emp-2", Date: "2024-06-10", ShiftType: "A",
	})
	require.NoError(t, err)

	// Employee sees their own schedule only.
	own, err := svc.List(ctx, employeeActor, "", "2024-06-10", "2024-06-16")
	require.NoError(t, err)
	assert.Len(t, own, 1)

	// Employee cannot read someone else's schedule.
	_, err = svc.List(ctx, employeeActor, "emp-2", "2024-06-10", "2024-06-16")
	assert.ErrorIs(t, err, user.ErrNotRecordOwner)

	// Admin without a user filter sees everyone.
	all, err := svc.List(ctx, adminActor, "", "2024-06-10", "2024-06-16")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Admin can narrow to one user.
	one, err := svc.List(ctx, adminActor, "emp-2", "2024-06-10", "2024-06-16")
	require.NoError(t, err)
	assert.Len(t, one, 1)
}

func TestListRejectsBadDates(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.List(ctx, employeeActor, "", "June 10", "")
	assert.Error(t, err)

	_, err = svc.List(ctx, employeeActor, "", "2024-06-10", "2024-06-01")
	assert.Error(t, err)
}

func TestCalendar(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for _, shiftType := range []string{"M", "A", "N"} {
		_, err := svc.Create(ctx, adminActor, shift.CreateShiftRequest{
			UserID: "emp-1", Date: "2024-06-10", ShiftType: shiftType,
		})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, adminActor, shift.CreateShiftRequest{
		UserID: "emp-2", Date: "2024-06-11", ShiftType: "M",
	})
	require.NoError(t, err)

	days, err := svc.Calendar(ctx, adminActor, "2024-06-10", "2024-06-16")
	require.NoError(t, err)
	require.Len(t, days, 2)

	assert.Equal(t, "2024-06-10", days[0].Date)
	assert.True(t, days[0].IsComplete)
	assert.Empty(t, days[0].MissingShifts)

	assert.Equal(t, "2024-06-11", days[1].Date)
	assert.False(t, days[1].IsComplete)
	assert.Equal(t, []shift.Type{shift.TypeAfternoon, shift.TypeNight}, days[1].MissingShifts)
}

func TestCalendarAdminOnly(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Calendar(ctx, employeeActor, "2024-06-10", "2024-06-16")
	assert.ErrorIs(t, err, user.ErrAdminAccessRequired)
}
