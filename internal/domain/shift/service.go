package shift

import (
	"context"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/user"
)

type ShiftService interface {
	Create(ctx context.Context, actor user.Actor, req CreateShiftRequest) (ShiftResponse, error)
	Get(ctx context.Context, actor user.Actor, id string) (ShiftResponse, error)
	Update(ctx context.Context, actor user.Actor, req UpdateShiftRequest) (ShiftResponse, error)
	Delete(ctx context.Context, actor user.Actor, id string) error
	List(ctx context.Context, actor user.Actor, userID, startDate, endDate string) ([]ShiftResponse, error)
	Calendar(ctx context.Context, actor user.Actor, startDate, endDate string) ([]CalendarDay, error)
}
