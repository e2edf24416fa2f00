package report

import (
	"context"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/user"
)

type ReportService interface {
	Weekly(ctx context.Context, actor user.Actor, userID string, week, year int) (Report, error)
	Monthly(ctx context.Context, actor user.Actor, userID string, month, year int) (Report, error)
	AllUsers(ctx context.Context, actor user.Actor, reportType string, week, month, year int) (AllUsersReport, error)
}
