package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/leave"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.Repository {
	return &leaveRequestRepositoryImpl{db: db}
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, lr leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, user_id, request_type, start_date, end_date, reason, status,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		lr.UserID, lr.RequestType, lr.StartDate, lr.EndDate, lr.Reason, lr.Status,
	).Scan(&lr.ID, &lr.CreatedAt, &lr.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return lr, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.user_id, lr.request_type, lr.start_date, lr.end_date,
			   lr.reason, lr.status, lr.approved_by, lr.rejection_reason,
			   lr.created_at, lr.updated_at,
			   u.name AS user_name, u.email AS user_email
		FROM leave_requests lr
		INNER JOIN users u ON lr.user_id = u.id
		WHERE lr.id = $1
	`

	var lr leave.LeaveRequest
	var userName, userEmail string

	err := q.QueryRow(ctx, query, id).Scan(
		&lr.ID, &lr.UserID, &lr.RequestType, &lr.StartDate, &lr.EndDate,
		&lr.Reason, &lr.Status, &lr.ApprovedBy, &lr.RejectionReason,
		&lr.CreatedAt, &lr.UpdatedAt,
		&userName, &userEmail,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}

	lr.UserName = &userName
	lr.UserEmail = &userEmail

	docs, err := r.listDocuments(ctx, lr.ID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	lr.Documents = docs

	return lr, nil
}

func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, lr leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET request_type = $1, start_date = $2, end_date = $3, reason = $4,
			status = $5, approved_by = $6, rejection_reason = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		lr.RequestType, lr.StartDate, lr.EndDate, lr.Reason,
		lr.Status, lr.ApprovedBy, lr.RejectionReason, lr.ID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.ErrLeaveRequestNotFound
		}
		return fmt.Errorf("failed to update leave request with id %s: %w", lr.ID, err)
	}

	return nil
}

func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) FindByUser(ctx context.Context, userID string, status leave.Status) ([]leave.LeaveRequest, error) {
	where := `lr.user_id = $1`
	args := []interface{}{userID}

	if status != "" {
		where += ` AND lr.status = $2`
		args = append(args, status)
	}

	return r.find(ctx, where, `lr.created_at DESC`, args...)
}

func (r *leaveRequestRepositoryImpl) FindPending(ctx context.Context) ([]leave.LeaveRequest, error) {
	return r.find(ctx, `lr.status = 'pending'`, `lr.created_at ASC`)
}

func (r *leaveRequestRepositoryImpl) FindOverlapping(ctx context.Context, userID string, start, end time.Time, excludeID string) ([]leave.LeaveRequest, error) {
	where := `lr.user_id = $1
		AND lr.status <> 'rejected'
		AND lr.start_date <= $2 AND lr.end_date >= $3`
	args := []interface{}{userID, end, start}

	if excludeID != "" {
		where += ` AND lr.id <> $4`
		args = append(args, excludeID)
	}

	return r.find(ctx, where, `lr.start_date ASC`, args...)
}

func (r *leaveRequestRepositoryImpl) find(ctx context.Context, where, orderBy string, args ...interface{}) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.user_id, lr.request_type, lr.start_date, lr.end_date,
			   lr.reason, lr.status, lr.approved_by, lr.rejection_reason,
			   lr.created_at, lr.updated_at,
			   u.name AS user_name, u.email AS user_email
		FROM leave_requests lr
		INNER JOIN users u ON lr.user_id = u.id
		WHERE ` + where + `
		ORDER BY ` + orderBy

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		var userName, userEmail string

		err := rows.Scan(
			&lr.ID, &lr.UserID, &lr.RequestType, &lr.StartDate, &lr.EndDate,
			&lr.Reason, &lr.Status, &lr.ApprovedBy, &lr.RejectionReason,
			&lr.CreatedAt, &lr.UpdatedAt,
			&userName, &userEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request row: %w", err)
		}

		lr.UserName = &userName
		lr.UserEmail = &userEmail
		requests = append(requests, lr)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, nil
}

func (r *leaveRequestRepositoryImpl) AddDocument(ctx context.Context, requestID string, doc leave.Document) (leave.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_request_documents (id, leave_request_id, name, path, uploaded_at)
		VALUES (uuidv7(), $1, $2, $3, NOW())
		RETURNING id, uploaded_at
	`

	err := q.QueryRow(ctx, query, requestID, doc.Name, doc.Path).Scan(&doc.ID, &doc.UploadedAt)
	if err != nil {
		return leave.Document{}, fmt.Errorf("failed to add document to leave request %s: %w", requestID, err)
	}

	return doc, nil
}

func (r *leaveRequestRepositoryImpl) listDocuments(ctx context.Context, requestID string) ([]leave.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, path, uploaded_at
		FROM leave_request_documents
		WHERE leave_request_id = $1
		ORDER BY uploaded_at ASC
	`

	rows, err := q.Query(ctx, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave request documents: %w", err)
	}
	defer rows.Close()

	var docs []leave.Document
	for rows.Next() {
		var doc leave.Document
		if err := rows.Scan(&doc.ID, &doc.Name, &doc.Path, &doc.UploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		docs = append(docs, doc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return docs, nil
}
