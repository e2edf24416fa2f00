package shift

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	CreateMany(ctx context.Context, shifts []Shift) error
	GetByID(ctx context.Context, id string) (Shift, error)
	Update(ctx context.Context, s Shift) error
	Delete(ctx context.Context, id string) error

	// FindByUserAndRange returns a user's shifts with dates inside
	// [start, end], ordered by date ascending.
	FindByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]Shift, error)

	// FindApprovedByUserAndRange is FindByUserAndRange restricted to
	// approved shifts, the only ones reports consider.
	FindApprovedByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]Shift, error)

	// FindByRange returns every user's shifts inside [start, end],
	// ordered by date ascending. Used by the admin calendar.
	FindByRange(ctx context.Context, start, end time.Time) ([]Shift, error)

	// FindApprovedByRange is FindByRange restricted to approved shifts.
	FindApprovedByRange(ctx context.Context, start, end time.Time) ([]Shift, error)

	// ExistsForUserDateType reports whether the user already has a shift
	// of the given type on the given calendar day.
	ExistsForUserDateType(ctx context.Context, userID string, date time.Time, shiftType Type) (bool, error)

	// DeleteGenerated removes the user's shifts of the given type inside
	// [start, end] whose notes carry the auto-generated tag. Returns the
	// number of shifts removed.
	DeleteGenerated(ctx context.Context, userID string, shiftType Type, start, end time.Time, noteTag string) (int64, error)
}
