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

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const eventColumns = `id, user_id, title, description, event_date, event_time,
					  location, event_type, organizer, capacity, event_code,
					  created_at, updated_at`

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, user_id, title, description, event_date, event_time,
	                              location, event_type, organizer, capacity, event_code,
	                              created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.OwnerID, e.Title, e.Description, e.EventDate, e.EventTime,
		e.Location, e.EventType, e.Organizer, e.Capacity, e.EventCode,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEventCodeTaken
		}
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  ORDER BY event_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	// event_code and user_id are immutable after creation.
	query := `UPDATE events
			  SET title = $2, description = $3, event_date = $4, event_time = $5,
			      location = $6, event_type = $7, organizer = $8, capacity = $9,
			      updated_at = $10
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.EventDate, e.EventTime,
		e.Location, e.EventType, e.Organizer, e.Capacity, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	// registrations go with the event via ON DELETE CASCADE
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.EventStats, error) {
	query := `SELECT e.id, e.user_id, e.title, e.description, e.event_date, e.event_time,
	                 e.location, e.event_type, e.organizer, e.capacity, e.event_code,
	                 e.created_at, e.updated_at,
	                 COUNT(r.id) AS registration_count
			  FROM events e
			  LEFT JOIN event_registrations r ON r.event_id = e.id
			  WHERE e.user_id = $1
			  GROUP BY e.id
			  ORDER BY e.event_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list events by owner: %w", err)
	}
	defer rows.Close()

	var res []*domain.EventStats
	for rows.Next() {
		var s domain.EventStats
		var eventTime sql.NullString
		if err = rows.Scan(
			&s.Event.ID, &s.Event.OwnerID, &s.Event.Title, &s.Event.Description,
			&s.Event.EventDate, &eventTime, &s.Event.Location, &s.Event.EventType,
			&s.Event.Organizer, &s.Event.Capacity, &s.Event.EventCode,
			&s.Event.CreatedAt, &s.Event.UpdatedAt,
			&s.RegistrationCount,
		); err != nil {
			return nil, fmt.Errorf("scan event stats: %w", err)
		}
		if eventTime.Valid {
			s.Event.EventTime = &eventTime.String
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

func (r *EventRepository) ListRegisteredBy(ctx context.Context, userID string) ([]*domain.Event, error) {
	query := `SELECT e.id, e.user_id, e.title, e.description, e.event_date, e.event_time,
	                 e.location, e.event_type, e.organizer, e.capacity, e.event_code,
	                 e.created_at, e.updated_at
			  FROM events e
			  JOIN event_registrations r ON r.event_id = e.id
			  WHERE r.user_id = $1
			  ORDER BY r.registered_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list registered events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan registered event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var e domain.Event
	var eventTime sql.NullString
	if err := row.Scan(
		&e.ID, &e.OwnerID, &e.Title, &e.Description, &e.EventDate, &eventTime,
		&e.Location, &e.EventType, &e.Organizer, &e.Capacity, &e.EventCode,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if eventTime.Valid {
		e.EventTime = &eventTime.String
	}
	return &e, nil
}
