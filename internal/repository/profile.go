package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/Henry-Iheonu/Events/internal/domain"
)

type ProfileRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewProfileRepo(db *dbpg.DB) *ProfileRepository {
	return &ProfileRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT id, user_id, full_name, profile_picture, phone_number, bio, location, interests
			  FROM profiles
			  WHERE user_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	var p domain.Profile
	if err = row.Scan(
		&p.ID, &p.UserID, &p.FullName, &p.ProfilePicture,
		&p.PhoneNumber, &p.Bio, &p.Location, &p.Interests,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("scan profile: %w", err)
	}

	return &p, nil
}

func (r *ProfileRepository) Update(ctx context.Context, p *domain.Profile) error {
	query := `UPDATE profiles
			  SET full_name = $2, profile_picture = $3, phone_number = $4,
			      bio = $5, location = $6, interests = $7
			  WHERE user_id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.UserID, p.FullName, p.ProfilePicture, p.PhoneNumber,
		p.Bio, p.Location, p.Interests,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update profile rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}

	return nil
}
