package leave

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, lr LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	Update(ctx context.Context, lr LeaveRequest) error
	Delete(ctx context.Context, id string) error

	// FindByUser returns the user's requests, newest first. status
	// narrows the result when non-empty.
	FindByUser(ctx context.Context, userID string, status Status) ([]LeaveRequest, error)

	// FindPending returns every pending request across users, oldest
	// first, for the admin approval queue.
	FindPending(ctx context.Context) ([]LeaveRequest, error)

	// FindOverlapping returns the user's non-rejected requests whose
	// inclusive [start, end] interval intersects the given one. excludeID
	// skips a request while it is being edited, so it does not collide
	// with itself.
	FindOverlapping(ctx context.Context, userID string, start, end time.Time, excludeID string) ([]LeaveRequest, error)

	AddDocument(ctx context.Context, requestID string, doc Document) (Document, error)
}
