package leave

import (
	"context"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/user"
)

type LeaveService interface {
	Create(ctx context.Context, actor user.Actor, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	Get(ctx context.Context, actor user.Actor, id string) (LeaveRequestResponse, error)
	Update(ctx context.Context, actor user.Actor, req UpdateLeaveRequestRequest) (LeaveRequestResponse, error)
	Delete(ctx context.Context, actor user.Actor, id string) error
	List(ctx context.Context, actor user.Actor, userID, status string) ([]LeaveRequestResponse, error)
	ListPending(ctx context.Context, actor user.Actor) ([]LeaveRequestResponse, error)
	AttachDocument(ctx context.Context, actor user.Actor, requestID, fileName string) (DocumentResponse, error)
}
