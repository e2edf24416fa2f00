package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/shift"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.Repository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `
	s.id, s.user_id, s.date, s.shift_type, s.start_time, s.end_time,
	s.status, s.notes, s.is_user_suggested, s.created_by, s.updated_by,
	s.created_at, s.updated_at
`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var s shift.Shift
	err := row.Scan(
		&s.ID, &s.UserID, &s.Date, &s.ShiftType, &s.StartTime, &s.EndTime,
		&s.Status, &s.Notes, &s.IsUserSuggested, &s.CreatedBy, &s.UpdatedBy,
		&s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (r *shiftRepositoryImpl) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (
			id, user_id, date, shift_type, start_time, end_time,
			status, notes, is_user_suggested, created_by,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.UserID, s.Date, s.ShiftType, s.StartTime, s.EndTime,
		s.Status, s.Notes, s.IsUserSuggested, s.CreatedBy,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return s, nil
}

func (r *shiftRepositoryImpl) CreateMany(ctx context.Context, shifts []shift.Shift) error {
	if len(shifts) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (
			id, user_id, date, shift_type, start_time, end_time,
			status, notes, is_user_suggested, created_by,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			NOW(), NOW()
		)
	`

	for _, s := range shifts {
		_, err := q.Exec(ctx, query,
			s.UserID, s.Date, s.ShiftType, s.StartTime, s.EndTime,
			s.Status, s.Notes, s.IsUserSuggested, s.CreatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to insert shift for %s on %s: %w", s.UserID, s.Date.Format("2006-01-02"), err)
		}
	}

	return nil
}

func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts s WHERE s.id = $1`

	s, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, err
	}

	return s, nil
}

func (r *shiftRepositoryImpl) Update(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET date = $1, shift_type = $2, start_time = $3, end_time = $4,
			status = $5, notes = $6, updated_by = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		s.Date, s.ShiftType, s.StartTime, s.EndTime,
		s.Status, s.Notes, s.UpdatedBy, s.ID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to update shift with id %s: %w", s.ID, err)
	}

	return nil
}

func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return shift.ErrShiftNotFound
	}
	return nil
}

func (r *shiftRepositoryImpl) FindByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]shift.Shift, error) {
	return r.findRange(ctx, `s.user_id = $1 AND s.date >= $2 AND s.date <= $3`, userID, start, end)
}

func (r *shiftRepositoryImpl) FindApprovedByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]shift.Shift, error) {
	return r.findRange(ctx, `s.user_id = $1 AND s.date >= $2 AND s.date <= $3 AND s.status = 'approved'`, userID, start, end)
}

func (r *shiftRepositoryImpl) FindByRange(ctx context.Context, start, end time.Time) ([]shift.Shift, error) {
	return r.findRange(ctx, `s.date >= $1 AND s.date <= $2`, start, end)
}

func (r *shiftRepositoryImpl) FindApprovedByRange(ctx context.Context, start, end time.Time) ([]shift.Shift, error) {
	return r.findRange(ctx, `s.date >= $1 AND s.date <= $2 AND s.status = 'approved'`, start, end)
}

func (r *shiftRepositoryImpl) findRange(ctx context.Context, where string, args ...interface{}) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `, u.name AS user_name
		FROM shifts s
		INNER JOIN users u ON s.user_id = u.id
		WHERE ` + where + `
		ORDER BY s.date ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		var userName string
		err := rows.Scan(
			&s.ID, &s.UserID, &s.Date, &s.ShiftType, &s.StartTime, &s.EndTime,
			&s.Status, &s.Notes, &s.IsUserSuggested, &s.CreatedBy, &s.UpdatedBy,
			&s.CreatedAt, &s.UpdatedAt,
			&userName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift row: %w", err)
		}
		s.UserName = &userName
		shifts = append(shifts, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return shifts, nil
}

func (r *shiftRepositoryImpl) ExistsForUserDateType(ctx context.Context, userID string, date time.Time, shiftType shift.Type) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM shifts
			WHERE user_id = $1 AND date = $2 AND shift_type = $3
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, userID, date, shiftType).Scan(&exists)

	return exists, err
}

func (r *shiftRepositoryImpl) DeleteGenerated(ctx context.Context, userID string, shiftType shift.Type, start, end time.Time, noteTag string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM shifts
		WHERE user_id = $1 AND shift_type = $2
		AND date >= $3 AND date <= $4
		AND notes LIKE '%' || $5 || '%'
	`

	commandTag, err := q.Exec(ctx, query, userID, shiftType, start, end, noteTag)
	if err != nil {
		return 0, fmt.Errorf("failed to delete generated shifts: %w", err)
	}

	return commandTag.RowsAffected(), nil
}
