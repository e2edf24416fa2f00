package user

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailExists         = errors.New("user already exists with this email")
	ErrAdminAccessRequired = errors.New("admin access required")
	ErrNotRecordOwner      = errors.New("not authorized to access this record")
)
