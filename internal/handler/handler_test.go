package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/Henry-Iheonu/Events/internal/domain"
	"github.com/Henry-Iheonu/Events/internal/handler/dto"
	hmocks "github.com/Henry-Iheonu/Events/internal/handler/mocks"
	"github.com/Henry-Iheonu/Events/internal/middleware"
	"github.com/Henry-Iheonu/Events/internal/router"
	"github.com/Henry-Iheonu/Events/internal/token"
)

const testUserID = "7f9c7a9a-6d2e-4d32-9a6e-0f58c1f2b7a1"

type testMocks struct {
	event        *hmocks.MockEventSvc
	registration *hmocks.MockRegistrationSvc
	account      *hmocks.MockAccountSvc
	profile      *hmocks.MockProfileSvc
}

func setupRouter(t *testing.T) (testMocks, http.Handler) {
	t.Helper()

	m := testMocks{
		event:        hmocks.NewMockEventSvc(t),
		registration: hmocks.NewMockRegistrationSvc(t),
		account:      hmocks.NewMockAccountSvc(t),
		profile:      hmocks.NewMockProfileSvc(t),
	}

	h := NewHandler(m.event, m.registration, m.account, m.profile)

	// Stub auth: every request on protected routes acts as testUserID.
	auth := func(c *ginext.Context) {
		c.Set(middleware.UserIDKey, testUserID)
		c.Next()
	}

	return m, router.InitRouter("test", h, auth)
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Accounts ---

func TestHandler_Signup_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.account.EXPECT().Signup(mock.Anything, mock.Anything).Return(&domain.User{ID: testUserID, Username: "ada"}, nil)

	w := doJSON(t, r, http.MethodPost, "/register", dto.SignupRequest{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "correct horse",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "User created successfully", resp.Message)
}

func TestHandler_Signup_MissingFields(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/register", map[string]string{"username": "ada"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Signup_DuplicateEmail(t *testing.T) {
	m, r := setupRouter(t)

	m.account.EXPECT().Signup(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := doJSON(t, r, http.MethodPost, "/register", dto.SignupRequest{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "correct horse",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Login_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.account.EXPECT().Login(mock.Anything, "ada", "correct horse").
		Return(token.Pair{Access: "acc", Refresh: "ref"}, nil)

	w := doJSON(t, r, http.MethodPost, "/token", dto.LoginRequest{Username: "ada", Password: "correct horse"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TokenPairResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "acc", resp.Access)
	assert.Equal(t, "ref", resp.Refresh)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	m, r := setupRouter(t)

	m.account.EXPECT().Login(mock.Anything, "ada", "wrong").
		Return(token.Pair{}, domain.ErrInvalidCredentials)

	w := doJSON(t, r, http.MethodPost, "/login", dto.LoginRequest{Username: "ada", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Refresh_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.account.EXPECT().Refresh(mock.Anything, "old-refresh").
		Return(token.Pair{Access: "acc2", Refresh: "ref2"}, nil)

	w := doJSON(t, r, http.MethodPost, "/token/refresh", dto.RefreshRequest{Refresh: "old-refresh"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Refresh_Invalid(t *testing.T) {
	m, r := setupRouter(t)

	m.account.EXPECT().Refresh(mock.Anything, "bogus").
		Return(token.Pair{}, token.ErrInvalidToken)

	w := doJSON(t, r, http.MethodPost, "/token/refresh", dto.RefreshRequest{Refresh: "bogus"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	event := &domain.Event{
		ID:        uuid.New().String(),
		Title:     "Go Meetup",
		EventDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		Capacity:  50,
		EventCode: "#ABCDEFGHIJKLMNOPQRS",
		CreatedAt: time.Now(),
	}

	m.event.EXPECT().Create(mock.Anything, testUserID, mock.Anything).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/events", dto.CreateEventRequest{
		Title:     "Go Meetup",
		Date:      "2026-10-01",
		Location:  "Lagos",
		EventType: "Meetup",
		Organizer: "GoLagos",
		Capacity:  50,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Go Meetup", resp.Title)
	assert.Equal(t, "2026-10-01", resp.Date)
	assert.Equal(t, "#ABCDEFGHIJKLMNOPQRS", resp.EventCode)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/events", dto.CreateEventRequest{
		Title:     "Go Meetup",
		Date:      "01-10-2026",
		Location:  "Lagos",
		EventType: "Meetup",
		Organizer: "GoLagos",
		Capacity:  50,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_ZeroCapacity(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/events", map[string]any{
		"title":      "Go Meetup",
		"date":       "2026-10-01",
		"location":   "Lagos",
		"event_type": "Meetup",
		"organizer":  "GoLagos",
		"capacity":   0,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	event := &domain.Event{ID: eventID, Title: "Go Meetup", EventDate: time.Now(), CreatedAt: time.Now()}

	m.event.EXPECT().GetByID(mock.Anything, eventID).Return(event, nil)

	w := doJSON(t, r, http.MethodGet, "/events/"+eventID, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetEvent_BadID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/events/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.event.EXPECT().GetByID(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/events/"+eventID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListEvents_Success(t *testing.T) {
	m, r := setupRouter(t)

	events := []*domain.Event{
		{ID: uuid.New().String(), Title: "A", EventDate: time.Now(), CreatedAt: time.Now()},
		{ID: uuid.New().String(), Title: "B", EventDate: time.Now(), CreatedAt: time.Now()},
	}
	m.event.EXPECT().List(mock.Anything).Return(events, nil)

	w := doJSON(t, r, http.MethodGet, "/events", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_UpdateEvent_Partial(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	event := &domain.Event{ID: eventID, Title: "Renamed", EventDate: time.Now(), CreatedAt: time.Now()}

	m.event.EXPECT().Update(mock.Anything, eventID, mock.Anything).Return(event, nil)

	w := doJSON(t, r, http.MethodPatch, "/events/"+eventID, map[string]string{"title": "Renamed"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Renamed", resp.Title)
}

func TestHandler_UpdateEvent_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	eventID := uuid.New().String()
	w := doJSON(t, r, http.MethodPut, "/events/"+eventID, map[string]string{"date": "soon"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.event.EXPECT().Delete(mock.Anything, eventID).Return(nil)

	w := doJSON(t, r, http.MethodDelete, "/events/"+eventID, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_DeleteEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.event.EXPECT().Delete(mock.Anything, eventID).Return(domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodDelete, "/events/"+eventID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_MyEvents_Success(t *testing.T) {
	m, r := setupRouter(t)

	stats := []*domain.EventStats{
		{
			Event:              domain.Event{ID: uuid.New().String(), Title: "Mine", Capacity: 50, EventDate: time.Now(), CreatedAt: time.Now()},
			RegistrationCount:  25,
			ProgressPercentage: 50,
		},
	}
	m.event.EXPECT().ListMine(mock.Anything, testUserID).Return(stats, nil)

	w := doJSON(t, r, http.MethodGet, "/my-events", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventStatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 25, resp[0].RegistrationCount)
	assert.Equal(t, 50.0, resp[0].ProgressPercentage)
}

// --- Registrations ---

func validRegisterBody() dto.RegisterForEventRequest {
	return dto.RegisterForEventRequest{
		FullName:               "Ada Obi",
		Email:                  "ada@example.com",
		PhoneNumber:            "+2348012345678",
		PreferredContactMethod: "Email",
		City:                   "Lagos",
		EventAttendanceMode:    "In-Person",
		EmergencyContact:       "+2348098765432",
	}
}

func TestHandler_RegisterForEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := testUserID
	reg := &domain.Registration{
		ID:           uuid.New().String(),
		UserID:       &userID,
		EventID:      eventID,
		FullName:     "Ada Obi",
		Email:        "ada@example.com",
		RegisteredAt: time.Now(),
	}

	m.registration.EXPECT().Register(mock.Anything, eventID, testUserID, mock.Anything).Return(reg, nil)

	w := doJSON(t, r, http.MethodPost, "/events/"+eventID+"/register", validRegisterBody())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, eventID, resp.EventID)
	assert.Equal(t, "ada@example.com", resp.Email)
}

func TestHandler_RegisterForEvent_MissingFields(t *testing.T) {
	_, r := setupRouter(t)

	eventID := uuid.New().String()
	w := doJSON(t, r, http.MethodPost, "/events/"+eventID+"/register", map[string]string{"full_name": "Ada"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RegisterForEvent_CapacityReached(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.registration.EXPECT().Register(mock.Anything, eventID, testUserID, mock.Anything).
		Return(nil, domain.ErrCapacityReached)

	w := doJSON(t, r, http.MethodPost, "/events/"+eventID+"/register", validRegisterBody())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RegisterForEvent_Duplicate(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.registration.EXPECT().Register(mock.Anything, eventID, testUserID, mock.Anything).
		Return(nil, domain.ErrAlreadyRegistered)

	w := doJSON(t, r, http.MethodPost, "/events/"+eventID+"/register", validRegisterBody())

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "already registered")
}

func TestHandler_UnregisterFromEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.registration.EXPECT().Unregister(mock.Anything, eventID, testUserID).Return(nil)

	w := doJSON(t, r, http.MethodDelete, "/events/"+eventID+"/register", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_UnregisterFromEvent_NotRegistered(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.registration.EXPECT().Unregister(mock.Anything, eventID, testUserID).
		Return(domain.ErrRegistrationNotFound)

	w := doJSON(t, r, http.MethodDelete, "/events/"+eventID+"/register", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListRegistrations_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	regs := []*domain.Registration{
		{ID: uuid.New().String(), EventID: eventID, FullName: "Ada Obi", RegisteredAt: time.Now()},
	}
	m.registration.EXPECT().ListForEvent(mock.Anything, eventID).Return(regs, nil)

	w := doJSON(t, r, http.MethodGet, "/events/"+eventID+"/registrations", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_RegistrationCount_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.registration.EXPECT().CountForEvent(mock.Anything, eventID).Return(42, nil)

	w := doJSON(t, r, http.MethodGet, "/events/"+eventID+"/registration_count", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RegistrationCountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 42, resp.RegistrationCount)
}

func TestHandler_RegistrationCount_EventNotFound(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.registration.EXPECT().CountForEvent(mock.Anything, eventID).Return(0, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/events/"+eventID+"/registration_count", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Profile ---

func TestHandler_GetProfile_Success(t *testing.T) {
	m, r := setupRouter(t)

	details := &domain.ProfileDetails{
		Profile:          domain.Profile{ID: uuid.New().String(), UserID: testUserID, FullName: "Ada Obi"},
		Username:         "ada",
		Email:            "ada@example.com",
		CreatedEvents:    []*domain.Event{{ID: uuid.New().String(), Title: "Mine", EventDate: time.Now(), CreatedAt: time.Now()}},
		RegisteredEvents: []*domain.Event{},
	}
	m.profile.EXPECT().Get(mock.Anything, testUserID).Return(details, nil)

	w := doJSON(t, r, http.MethodGet, "/profile", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ProfileDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ada", resp.Username)
	assert.Len(t, resp.CreatedEvents, 1)
	assert.Empty(t, resp.RegisteredEvents)
}

func TestHandler_UpdateProfile_Success(t *testing.T) {
	m, r := setupRouter(t)

	profile := &domain.Profile{ID: uuid.New().String(), UserID: testUserID, FullName: "Ada Obi", Bio: "Senior Gopher"}
	m.profile.EXPECT().Update(mock.Anything, testUserID, mock.Anything).Return(profile, nil)

	w := doJSON(t, r, http.MethodPut, "/profile", map[string]string{"bio": "Senior Gopher"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Senior Gopher", resp.Bio)
}

func TestHandler_GetProfile_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.profile.EXPECT().Get(mock.Anything, testUserID).Return(nil, domain.ErrProfileNotFound)

	w := doJSON(t, r, http.MethodGet, "/profile", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_HealthCheck(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
