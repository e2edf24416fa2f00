package shift

import (
	"time"

	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/validator"
)

// CreateShiftRequest represents a request to create a shift
type CreateShiftRequest struct {
	UserID    string `json:"user_id"`
	Date      string `json:"date"`
	ShiftType string `json:"shift_type"`
	Notes     string `json:"notes,omitempty"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "invalid date format, expected YYYY-MM-DD",
		})
	}

	if !IsValidType(Type(r.ShiftType)) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_type",
			Message: "invalid shift type",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateShiftRequest represents a request to update a shift
type UpdateShiftRequest struct {
	ID        string  `json:"-"`
	ShiftType *string `json:"shift_type,omitempty"`
	Date      *string `json:"date,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	Status    *string `json:"status,omitempty"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ShiftType != nil && !IsValidType(Type(*r.ShiftType)) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_type",
			Message: "invalid shift type",
		})
	}

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "invalid date format, expected YYYY-MM-DD",
			})
		}
	}

	if r.Status != nil && !IsValidStatus(Status(*r.Status)) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "invalid status",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ShiftResponse represents shift data in API responses
type ShiftResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	UserName        *string `json:"user_name,omitempty"`
	Date            string  `json:"date"`
	ShiftType       string  `json:"shift_type"`
	ShiftName       string  `json:"shift_name"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	Status          string  `json:"status"`
	Notes           string  `json:"notes,omitempty"`
	IsUserSuggested bool    `json:"is_user_suggested"`
}

func NewShiftResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:              s.ID,
		UserID:          s.UserID,
		UserName:        s.UserName,
		Date:            s.Date.Format("2006-01-02"),
		ShiftType:       string(s.ShiftType),
		ShiftName:       Name(s.ShiftType),
		StartTime:       s.StartTime.Format(time.RFC3339),
		EndTime:         s.EndTime.Format(time.RFC3339),
		Status:          string(s.Status),
		Notes:           s.Notes,
		IsUserSuggested: s.IsUserSuggested,
	}
}

// CalendarDay is one date's entry in the admin staffing calendar.
type CalendarDay struct {
	Date          string          `json:"date"`
	Shifts        []ShiftResponse `json:"shifts"`
	IsComplete    bool            `json:"is_complete"`
	MissingShifts []Type          `json:"missing_shifts"`
}
