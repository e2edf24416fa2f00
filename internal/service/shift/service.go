package shift

import (
	"context"
	"sort"
	"time"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/shift"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/user"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/validator"
)

type ShiftServiceImpl struct {
	shiftRepo shift.Repository
	userRepo  user.Repository
}

func NewShiftService(shiftRepo shift.Repository, userRepo user.Repository) shift.ShiftService {
	return &ShiftServiceImpl{
		shiftRepo: shiftRepo,
		userRepo:  userRepo,
	}
}

// parseRange resolves optional YYYY-MM-DD query bounds. Defaults to the
// seven days starting today, end clamped to the last instant of its day.
func parseRange(startDate, endDate string) (start, end time.Time, err error) {
	now := time.Now().UTC()
	start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if startDate != "" {
		parsed, ok := validator.IsValidDate(startDate)
		if !ok {
			return time.Time{}, time.Time{}, validator.ValidationErrors{{
				Field:   "start_date",
				Message: "invalid date format, expected YYYY-MM-DD",
			}}
		}
		start = parsed
	}

	end = start.AddDate(0, 0, 6)
	if endDate != "" {
		parsed, ok := validator.IsValidDate(endDate)
		if !ok {
			return time.Time{}, time.Time{}, validator.ValidationErrors{{
				Field:   "end_date",
				Message: "invalid date format, expected YYYY-MM-DD",
			}}
		}
		end = parsed
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, validator.ValidationErrors{{
			Field:   "end_date",
			Message: "end date must be after start date",
		}}
	}

	end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999000000, time.UTC)
	return start, end, nil
}

// Create records a shift assignment. Admin-created shifts are approved
// immediately; an employee scheduling themself files a suggestion that
// stays pending until an admin approves it.
func (s *ShiftServiceImpl) Create(ctx context.Context, actor user.Actor, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	if !actor.IsAdmin() && !actor.Owns(req.UserID) {
		return shift.ShiftResponse{}, user.ErrNotRecordOwner
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return shift.ShiftResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	shiftType := shift.Type(req.ShiftType)

	startTime, endTime, err := shift.Span(shiftType, date)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	exists, err := s.shiftRepo.ExistsForUserDateType(ctx, req.UserID, date, shiftType)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if exists {
		return shift.ShiftResponse{}, shift.ErrShiftExists
	}

	status := shift.StatusPending
	if actor.IsAdmin() {
		status = shift.StatusApproved
	}

	created, err := s.shiftRepo.Create(ctx, shift.Shift{
		UserID:          req.UserID,
		Date:            date,
		ShiftType:       shiftType,
		StartTime:       startTime,
		EndTime:         endTime,
		Status:          status,
		Notes:           req.Notes,
		IsUserSuggested: !actor.IsAdmin(),
		CreatedBy:       actor.ID,
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return shift.NewShiftResponse(created), nil
}

func (s *ShiftServiceImpl) Get(ctx context.Context, actor user.Actor, id string) (shift.ShiftResponse, error) {
	existing, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if !actor.IsAdmin() && !actor.Owns(existing.UserID) {
		return shift.ShiftResponse{}, user.ErrNotRecordOwner
	}

	return shift.NewShiftResponse(existing), nil
}

// Update edits a shift. Owners may change type, date and notes only while
// the shift is pending; only admins change status.
func (s *ShiftServiceImpl) Update(ctx context.Context, actor user.Actor, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	existing, err := s.shiftRepo.GetByID(ctx, req.ID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if !actor.IsAdmin() && !actor.Owns(existing.UserID) {
		return shift.ShiftResponse{}, user.ErrNotRecordOwner
	}
	if !actor.IsAdmin() && existing.Status != shift.StatusPending {
		return shift.ShiftResponse{}, shift.ErrShiftApproved
	}
	if req.Status != nil && !actor.IsAdmin() {
		return shift.ShiftResponse{}, user.ErrAdminAccessRequired
	}

	updated := existing

	if req.Date != nil {
		updated.Date, _ = validator.IsValidDate(*req.Date)
	}
	if req.ShiftType != nil {
		updated.ShiftType = shift.Type(*req.ShiftType)
	}
	if req.Date != nil || req.ShiftType != nil {
		// Moving the shift re-runs the duplicate check against the new slot.
		if !updated.Date.Equal(existing.Date) || updated.ShiftType != existing.ShiftType {
			exists, err := s.shiftRepo.ExistsForUserDateType(ctx, updated.UserID, updated.Date, updated.ShiftType)
			if err != nil {
				return shift.ShiftResponse{}, err
			}
			if exists {
				return shift.ShiftResponse{}, shift.ErrShiftExists
			}
		}

		updated.StartTime, updated.EndTime, err = shift.Span(updated.ShiftType, updated.Date)
		if err != nil {
			return shift.ShiftResponse{}, err
		}
	}
	if req.Notes != nil {
		updated.Notes = *req.Notes
	}
	if req.Status != nil {
		updated.Status = shift.Status(*req.Status)
	}
	updated.UpdatedBy = &actor.ID

	if err := s.shiftRepo.Update(ctx, updated); err != nil {
		return shift.ShiftResponse{}, err
	}

	refreshed, err := s.shiftRepo.GetByID(ctx, req.ID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return shift.NewShiftResponse(refreshed), nil
}

func (s *ShiftServiceImpl) Delete(ctx context.Context, actor user.Actor, id string) error {
	existing, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !actor.IsAdmin() && !actor.Owns(existing.UserID) {
		return user.ErrNotRecordOwner
	}
	if !actor.IsAdmin() && existing.Status == shift.StatusApproved {
		return shift.ErrShiftApproved
	}

	return s.shiftRepo.Delete(ctx, id)
}

// List returns shifts in a date range. Employees see their own schedule;
// admins may pass a user id, or omit it to see everyone's.
func (s *ShiftServiceImpl) List(ctx context.Context, actor user.Actor, userID, startDate, endDate string) ([]shift.ShiftResponse, error) {
	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	var shifts []shift.Shift
	switch {
	case userID == "" && actor.IsAdmin():
		shifts, err = s.shiftRepo.FindByRange(ctx, start, end)
	case userID == "" || actor.Owns(userID):
		shifts, err = s.shiftRepo.FindByUserAndRange(ctx, actor.ID, start, end)
	case actor.IsAdmin():
		shifts, err = s.shiftRepo.FindByUserAndRange(ctx, userID, start, end)
	default:
		return nil, user.ErrNotRecordOwner
	}
	if err != nil {
		return nil, err
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, shift.NewShiftResponse(sh))
	}
	return responses, nil
}

// Calendar builds the admin staffing view: shifts grouped per day with a
// check that morning, afternoon and night coverage is in place.
func (s *ShiftServiceImpl) Calendar(ctx context.Context, actor user.Actor, startDate, endDate string) ([]shift.CalendarDay, error) {
	if !actor.IsAdmin() {
		return nil, user.ErrAdminAccessRequired
	}

	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	shifts, err := s.shiftRepo.FindByRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]shift.Shift)
	for _, sh := range shifts {
		key := sh.Date.Format("2006-01-02")
		byDate[key] = append(byDate[key], sh)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	days := make([]shift.CalendarDay, 0, len(dates))
	for _, date := range dates {
		dayShifts := byDate[date]

		responses := make([]shift.ShiftResponse, 0, len(dayShifts))
		for _, sh := range dayShifts {
			responses = append(responses, shift.NewShiftResponse(sh))
		}

		check := shift.CheckRequiredShifts(dayShifts)
		days = append(days, shift.CalendarDay{
			Date:          date,
			Shifts:        responses,
			IsComplete:    check.IsComplete,
			MissingShifts: check.MissingShifts,
		})
	}

	return days, nil
}
