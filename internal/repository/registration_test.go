package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/Henry-Iheonu/Events/internal/domain"
)

// newTestDB connects to the database named by TEST_DATABASE_URL, applies the
// migrations and truncates all tables. Tests using it are skipped when the
// variable is unset.
func newTestDB(t *testing.T) *dbpg.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	migDB, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, goose.Up(migDB, "../../migrations"))
	require.NoError(t, migDB.Close())

	db, err := dbpg.New(dsn, nil, &dbpg.Options{MaxOpenConns: 20, MaxIdleConns: 5})
	require.NoError(t, err)
	t.Cleanup(func() { db.Master.Close() })

	_, err = db.Master.Exec(`TRUNCATE event_registrations, events, profiles, users CASCADE`)
	require.NoError(t, err)

	return db
}

func createTestEvent(t *testing.T, db *dbpg.DB, capacity int) *domain.Event {
	t.Helper()

	code := "#" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:domain.EventCodeLength]
	now := time.Now().UTC()
	event := &domain.Event{
		ID:          uuid.New().String(),
		Title:       "Go Meetup",
		Description: "Monthly meetup",
		EventDate:   now.AddDate(0, 1, 0),
		Location:    "Lagos",
		EventType:   "Meetup",
		Organizer:   "GoLagos",
		Capacity:    capacity,
		EventCode:   code,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, NewEventRepo(db).Create(context.Background(), event))
	return event
}

func createTestUser(t *testing.T, db *dbpg.DB, username string) *domain.User {
	t.Helper()

	user := &domain.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		CreatedAt:    time.Now().UTC(),
	}
	profile := &domain.Profile{ID: uuid.New().String(), UserID: user.ID}
	require.NoError(t, NewUserRepo(db).Create(context.Background(), user, profile))
	return user
}

func newRegistration(eventID string, userID *string, email string) *domain.Registration {
	return &domain.Registration{
		ID:                     uuid.New().String(),
		UserID:                 userID,
		EventID:                eventID,
		FullName:               "Ada Obi",
		Email:                  email,
		PhoneNumber:            "+2348012345678",
		PreferredContactMethod: domain.ContactMethodEmail,
		City:                   "Lagos",
		EventAttendanceMode:    domain.AttendanceModeInPerson,
		EmergencyContact:       "+2348098765432",
		RegisteredAt:           time.Now().UTC(),
	}
}

func TestRegistrationRepo_ConcurrentLastSlots(t *testing.T) {
	db := newTestDB(t)
	repo := NewRegistrationRepo(db)

	capacity := 5
	event := createTestEvent(t, db, capacity)

	// 100 goroutines fight for 5 slots; the row lock must let exactly
	// `capacity` of them commit.
	attempts := 100
	var created, full, other int32

	var wg sync.WaitGroup
	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func(n int) {
			defer wg.Done()

			reg := newRegistration(event.ID, nil, fmt.Sprintf("gopher%d@example.com", n))
			switch err := repo.Create(context.Background(), reg); {
			case err == nil:
				atomic.AddInt32(&created, 1)
			case errors.Is(err, domain.ErrCapacityReached):
				atomic.AddInt32(&full, 1)
			default:
				t.Logf("attempt %d: unexpected error: %v", n, err)
				atomic.AddInt32(&other, 1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(capacity), created)
	assert.Equal(t, int32(attempts-capacity), full)
	assert.Equal(t, int32(0), other)

	count, err := repo.CountByEvent(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, capacity, count)
}

func TestRegistrationRepo_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewRegistrationRepo(db)

	event := createTestEvent(t, db, 10)

	require.NoError(t, repo.Create(context.Background(), newRegistration(event.ID, nil, "ada@example.com")))

	err := repo.Create(context.Background(), newRegistration(event.ID, nil, "ada@example.com"))
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
}

func TestRegistrationRepo_DuplicateUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewRegistrationRepo(db)

	event := createTestEvent(t, db, 10)
	user := createTestUser(t, db, "ada")

	require.NoError(t, repo.Create(context.Background(), newRegistration(event.ID, &user.ID, "ada@example.com")))

	// Same user under a different email still violates (event_id, user_id).
	err := repo.Create(context.Background(), newRegistration(event.ID, &user.ID, "ada.work@example.com"))
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
}

func TestRegistrationRepo_NilUserNotDeduplicated(t *testing.T) {
	db := newTestDB(t)
	repo := NewRegistrationRepo(db)

	event := createTestEvent(t, db, 10)

	// The (event_id, user_id) index is partial: anonymous registrations
	// must not collide with each other.
	require.NoError(t, repo.Create(context.Background(), newRegistration(event.ID, nil, "first@example.com")))
	require.NoError(t, repo.Create(context.Background(), newRegistration(event.ID, nil, "second@example.com")))

	count, err := repo.CountByEvent(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRegistrationRepo_Create_EventNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewRegistrationRepo(db)

	err := repo.Create(context.Background(), newRegistration(uuid.New().String(), nil, "ada@example.com"))
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventRepo_DeleteCascadesRegistrations(t *testing.T) {
	db := newTestDB(t)
	eventRepo := NewEventRepo(db)
	regRepo := NewRegistrationRepo(db)

	event := createTestEvent(t, db, 10)
	require.NoError(t, regRepo.Create(context.Background(), newRegistration(event.ID, nil, "ada@example.com")))
	require.NoError(t, regRepo.Create(context.Background(), newRegistration(event.ID, nil, "obi@example.com")))

	require.NoError(t, eventRepo.Delete(context.Background(), event.ID))

	var count int
	err := db.Master.QueryRow(`SELECT COUNT(*) FROM event_registrations WHERE event_id = $1`, event.ID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
