package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Can approve requests and manage the roster
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Department   *string
	Position     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanApprove checks if user can approve shift and leave requests
func (u *User) CanApprove() bool {
	return u.IsAdmin()
}

// Actor identifies the authenticated user performing an operation.
type Actor struct {
	ID   string
	Role Role
}

// IsAdmin checks if the acting user is an administrator
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Owns checks if the acting user owns the given record
func (a Actor) Owns(userID string) bool {
	return a.ID == userID
}
