package leave

import (
	"time"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/shift"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/validator"
)

// CreateLeaveRequestRequest represents a request to create a leave request
type CreateLeaveRequestRequest struct {
	RequestType string `json:"request_type"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Reason      string `json:"reason"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !IsValidRequestType(shift.Type(r.RequestType)) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_type",
			Message: "invalid request type",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "invalid date format, expected YYYY-MM-DD",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "invalid date format, expected YYYY-MM-DD",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end date must be after start date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateLeaveRequestRequest represents a request to update a leave request
type UpdateLeaveRequestRequest struct {
	ID              string  `json:"-"`
	RequestType     *string `json:"request_type,omitempty"`
	StartDate       *string `json:"start_date,omitempty"`
	EndDate         *string `json:"end_date,omitempty"`
	Reason          *string `json:"reason,omitempty"`
	Status          *string `json:"status,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

func (r *UpdateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.RequestType != nil && !IsValidRequestType(shift.Type(*r.RequestType)) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_type",
			Message: "invalid request type",
		})
	}

	// Date edits travel as a pair so the interval stays well formed.
	if (r.StartDate == nil) != (r.EndDate == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date and end_date must be provided together",
		})
	}

	if r.StartDate != nil && r.EndDate != nil {
		start, startOK := validator.IsValidDate(*r.StartDate)
		end, endOK := validator.IsValidDate(*r.EndDate)
		if !startOK {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "invalid date format, expected YYYY-MM-DD",
			})
		}
		if !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "invalid date format, expected YYYY-MM-DD",
			})
		}
		if startOK && endOK && end.Before(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end date must be after start date",
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

// DocumentResponse represents an attached document in API responses
type DocumentResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Path       string `json:"path"`
	UploadedAt string `json:"uploaded_at"`
}

// LeaveRequestResponse represents leave request data in API responses
type LeaveRequestResponse struct {
	ID              string             `json:"id"`
	UserID          string             `json:"user_id"`
	UserName        *string            `json:"user_name,omitempty"`
	UserEmail       *string            `json:"user_email,omitempty"`
	RequestType     string             `json:"request_type"`
	RequestTypeName string             `json:"request_type_name"`
	StartDate       string             `json:"start_date"`
	EndDate         string             `json:"end_date"`
	TotalDays       int                `json:"total_days"`
	Reason          string             `json:"reason"`
	Status          string             `json:"status"`
	ApprovedBy      *string            `json:"approved_by,omitempty"`
	RejectionReason *string            `json:"rejection_reason,omitempty"`
	Documents       []DocumentResponse `json:"documents,omitempty"`
	CreatedAt       string             `json:"created_at"`
}

func NewLeaveRequestResponse(lr LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:              lr.ID,
		UserID:          lr.UserID,
		UserName:        lr.UserName,
		UserEmail:       lr.UserEmail,
		RequestType:     string(lr.RequestType),
		RequestTypeName: shift.Name(lr.RequestType),
		StartDate:       lr.StartDate.Format("2006-01-02"),
		EndDate:         lr.EndDate.Format("2006-01-02"),
		TotalDays:       lr.TotalDays(),
		Reason:          lr.Reason,
		Status:          string(lr.Status),
		ApprovedBy:      lr.ApprovedBy,
		RejectionReason: lr.RejectionReason,
		CreatedAt:       lr.CreatedAt.Format(time.RFC3339),
	}
	for _, doc := range lr.Documents {
		resp.Documents = append(resp.Documents, DocumentResponse{
			ID:         doc.ID,
			Name:       doc.Name,
			Path:       doc.Path,
			UploadedAt: doc.UploadedAt.Format(time.RFC3339),
		})
	}
	return resp
}
