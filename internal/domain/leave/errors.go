package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrOverlappingLeave     = errors.New("you already have a pending or approved leave request for this period")
	ErrLeaveApproved        = errors.New("cannot modify an approved leave request")
	ErrInvalidRequestType   = errors.New("invalid request type")
	ErrEndBeforeStart       = errors.New("end date must be after start date")
)
