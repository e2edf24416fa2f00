package response

import (
	"errors"
	"net/http"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/auth"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/leave"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/report"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/shift"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/user"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")
	case errors.Is(err, user.ErrNotRecordOwner):
		Forbidden(w, "Not authorized to access this record")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftExists):
		Conflict(w, "A shift of this type already exists for this date")
	case errors.Is(err, shift.ErrShiftApproved):
		BadRequest(w, "Cannot modify an approved shift", nil)
	case errors.Is(err, shift.ErrUnknownShiftType):
		BadRequest(w, "Invalid shift type", nil)
	case errors.Is(err, shift.ErrInvalidStatus):
		BadRequest(w, "Invalid status", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "An overlapping leave request already exists for this period")
	case errors.Is(err, leave.ErrLeaveApproved):
		BadRequest(w, "Cannot modify an approved leave request", nil)
	case errors.Is(err, leave.ErrInvalidRequestType):
		BadRequest(w, "Invalid request type", nil)
	case errors.Is(err, leave.ErrEndBeforeStart):
		BadRequest(w, "End date must be after start date", nil)

	// Report domain errors
	case errors.Is(err, report.ErrInvalidReportType):
		BadRequest(w, "Report type must be weekly or monthly", nil)
	case errors.Is(err, report.ErrInvalidPeriod):
		BadRequest(w, "Invalid report period", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
