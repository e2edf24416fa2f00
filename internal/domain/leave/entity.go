package leave

import (
	"time"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/shift"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// IsValidStatus reports whether s is a known lifecycle status.
func IsValidStatus(s Status) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// IsValidRequestType reports whether t is one of the leave-request codes
// (PL, SL, C, NH).
func IsValidRequestType(t shift.Type) bool {
	return shift.IsLeaveType(t)
}

// Document is metadata for a file attached to a leave request.
type Document struct {
	ID         string
	Name       string
	Path       string
	UploadedAt time.Time
}

// LeaveRequest is a user's request for a contiguous leave period.
// StartDate and EndDate are both inclusive.
type LeaveRequest struct {
	ID              string
	UserID          string
	RequestType     shift.Type
	StartDate       time.Time
	EndDate         time.Time
	Reason          string
	Status          Status
	ApprovedBy      *string
	RejectionReason *string
	Documents       []Document
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Join fields for responses
	UserName  *string
	UserEmail *string
}

// TotalDays returns the number of calendar days the request covers, end
// date inclusive.
func (lr *LeaveRequest) TotalDays() int {
	days := int(lr.EndDate.Sub(lr.StartDate).Hours() / 24)
	return days + 1
}
