package shift

import "time"

type Type string

const (
	TypeMorning         Type = "M"
	TypeAfternoon       Type = "A"
	TypeNight           Type = "N"
	TypeDay             Type = "D"
	TypePaidLeave       Type = "PL"
	TypeSickLeave       Type = "SL"
	TypeCompensation    Type = "C"
	TypeNationalHoliday Type = "NH"
)

// AllTypes lists every persisted shift-type code.
var AllTypes = []Type{
	TypeMorning, TypeAfternoon, TypeNight, TypeDay,
	TypePaidLeave, TypeSickLeave, TypeCompensation, TypeNationalHoliday,
}

// LeaveTypes lists the codes that represent a leave day rather than work.
var LeaveTypes = []Type{TypePaidLeave, TypeSickLeave, TypeCompensation, TypeNationalHoliday}

// IsValidType reports whether t is a known shift-type code.
func IsValidType(t Type) bool {
	for _, v := range AllTypes {
		if v == t {
			return true
		}
	}
	return false
}

// IsLeaveType reports whether t represents a leave day.
func IsLeaveType(t Type) bool {
	for _, v := range LeaveTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Name returns the display name for a shift-type code.
func Name(t Type) string {
	switch t {
	case TypeMorning:
		return "Morning Shift"
	case TypeAfternoon:
		return "Afternoon Shift"
	case TypeNight:
		return "Night Shift"
	case TypeDay:
		return "Day Shift"
	case TypePaidLeave:
		return "Paid Leave"
	case TypeSickLeave:
		return "Sick Leave"
	case TypeCompensation:
		return "Compensation"
	case TypeNationalHoliday:
		return "National Holiday"
	}
	return "Unknown Shift"
}

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

// Shift is one calendar day's work (or leave) assignment for one user.
type Shift struct {
	ID              string
	UserID          string
	Date            time.Time
	ShiftType       Type
	StartTime       time.Time
	EndTime         time.Time
	Status          Status
	Notes           string
	IsUserSuggested bool
	CreatedBy       string
	UpdatedBy       *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Join fields for responses
	UserName *string
}
