package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/Henry-Iheonu/Events/internal/domain"
)

type RegistrationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRegistrationRepo(db *dbpg.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts a registration while holding a row lock on the event, so
// concurrent attempts on the last remaining slot serialize: the count check
// and the insert commit together or not at all.
func (r *RegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var capacity int
	capQuery := `SELECT capacity FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, capQuery, reg.EventID).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("get capacity: %w", err)
	}

	var count int
	countQuery := `SELECT COUNT(*) FROM event_registrations WHERE event_id = $1`
	if err = tx.QueryRowContext(ctx, countQuery, reg.EventID).Scan(&count); err != nil {
		return fmt.Errorf("count registrations: %w", err)
	}

	if count >= capacity {
		return domain.ErrCapacityReached
	}

	query := `INSERT INTO event_registrations
	            (id, user_id, event_id, full_name, email, phone_number,
	             preferred_contact_method, city, event_attendance_mode,
	             emergency_contact, registered_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = tx.ExecContext(
		ctx, query,
		reg.ID, reg.UserID, reg.EventID, reg.FullName, reg.Email, reg.PhoneNumber,
		reg.PreferredContactMethod, reg.City, reg.EventAttendanceMode,
		reg.EmergencyContact, reg.RegisteredAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("insert registration: %w", err)
	}

	return tx.Commit()
}

func (r *RegistrationRepository) DeleteByEventAndUser(ctx context.Context, eventID, userID string) error {
	query := `DELETE FROM event_registrations WHERE event_id = $1 AND user_id = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID, userID)
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete registration rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRegistrationNotFound
	}

	return nil
}

func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	query := `SELECT id, user_id, event_id, full_name, email, phone_number,
	                 preferred_contact_method, city, event_attendance_mode,
	                 emergency_contact, registered_at
			  FROM event_registrations
			  WHERE event_id = $1
			  ORDER BY registered_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Registration
	for rows.Next() {
		var reg domain.Registration
		if err = rows.Scan(
			&reg.ID, &reg.UserID, &reg.EventID, &reg.FullName, &reg.Email,
			&reg.PhoneNumber, &reg.PreferredContactMethod, &reg.City,
			&reg.EventAttendanceMode, &reg.EmergencyContact, &reg.RegisteredAt,
		); err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		res = append(res, &reg)
	}

	return res, rows.Err()
}

func (r *RegistrationRepository) CountByEvent(ctx context.Context, eventID string) (int, error) {
	query := `SELECT COUNT(*) FROM event_registrations WHERE event_id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return 0, fmt.Errorf("count registrations: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan registration count: %w", err)
	}

	return count, nil
}
