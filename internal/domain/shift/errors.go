package shift

import "errors"

var (
	ErrUnknownShiftType = errors.New("invalid shift type")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrShiftNotFound    = errors.New("shift not found")
	ErrShiftExists      = errors.New("a shift of this type already exists for this date")
	ErrShiftApproved    = errors.New("cannot modify an approved shift")
)
