package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/Henry-Iheonu/Events/internal/domain"
	"github.com/Henry-Iheonu/Events/internal/handler/dto"
	"github.com/Henry-Iheonu/Events/internal/middleware"
	"github.com/Henry-Iheonu/Events/internal/token"
)

const dateLayout = "2006-01-02"

type EventSvc interface {
	Create(ctx context.Context, ownerID string, input domain.CreateEventInput) (*domain.Event, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	Update(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
	ListMine(ctx context.Context, ownerID string) ([]*domain.EventStats, error)
}

type RegistrationSvc interface {
	Register(ctx context.Context, eventID, userID string, input domain.RegisterInput) (*domain.Registration, error)
	Unregister(ctx context.Context, eventID, userID string) error
	ListForEvent(ctx context.Context, eventID string) ([]*domain.Registration, error)
	CountForEvent(ctx context.Context, eventID string) (int, error)
}

type AccountSvc interface {
	Signup(ctx context.Context, input domain.SignupInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (token.Pair, error)
	Refresh(ctx context.Context, refreshToken string) (token.Pair, error)
}

type ProfileSvc interface {
	Get(ctx context.Context, userID string) (*domain.ProfileDetails, error)
	Update(ctx context.Context, userID string, input domain.UpdateProfileInput) (*domain.Profile, error)
}

type Handler struct {
	eventService        EventSvc
	registrationService RegistrationSvc
	accountService      AccountSvc
	profileService      ProfileSvc
}

func NewHandler(
	eventService EventSvc,
	registrationService RegistrationSvc,
	accountService AccountSvc,
	profileService ProfileSvc,
) *Handler {
	return &Handler{
		eventService:        eventService,
		registrationService: registrationService,
		accountService:      accountService,
		profileService:      profileService,
	}
}

// Accounts

func (h *Handler) Signup(c *ginext.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.SignupInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Bio:         req.Bio,
		Location:    req.Location,
		Interests:   req.Interests,
	}

	if _, err := h.accountService.Signup(c.Request.Context(), input); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "User created successfully"})
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	pair, err := h.accountService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTokenPairResponse(pair))
}

func (h *Handler) Refresh(c *ginext.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	pair, err := h.accountService.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTokenPairResponse(pair))
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	input := domain.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   date,
		EventTime:   req.Time,
		Location:    req.Location,
		EventType:   req.EventType,
		Organizer:   req.Organizer,
		Capacity:    req.Capacity,
	}

	event, err := h.eventService.Create(c.Request.Context(), middleware.UserID(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
		EventTime:   req.Time,
		Location:    req.Location,
		EventType:   req.EventType,
		Organizer:   req.Organizer,
		Capacity:    req.Capacity,
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		input.EventDate = &date
	}

	event, err := h.eventService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) MyEvents(c *ginext.Context) {
	stats, err := h.eventService.ListMine(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventStatsResponse, 0, len(stats))
	for _, s := range stats {
		resp = append(resp, dto.ToEventStatsResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

// Registrations

func (h *Handler) RegisterForEvent(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.RegisterForEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.RegisterInput{
		FullName:               req.FullName,
		Email:                  req.Email,
		PhoneNumber:            req.PhoneNumber,
		PreferredContactMethod: domain.ContactMethod(req.PreferredContactMethod),
		City:                   req.City,
		EventAttendanceMode:    domain.AttendanceMode(req.EventAttendanceMode),
		EmergencyContact:       req.EmergencyContact,
	}

	reg, err := h.registrationService.Register(c.Request.Context(), eventID, middleware.UserID(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRegistrationResponse(reg))
}

func (h *Handler) UnregisterFromEvent(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	if err := h.registrationService.Unregister(c.Request.Context(), eventID, middleware.UserID(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListRegistrations(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	regs, err := h.registrationService.ListForEvent(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RegistrationResponse, 0, len(regs))
	for _, r := range regs {
		resp = append(resp, dto.ToRegistrationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) RegistrationCount(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	count, err := h.registrationService.CountForEvent(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RegistrationCountResponse{RegistrationCount: count})
}

// Profile

func (h *Handler) GetProfile(c *ginext.Context) {
	details, err := h.profileService.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileDetailsResponse(details))
}

func (h *Handler) UpdateProfile(c *ginext.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateProfileInput{
		FullName:       req.FullName,
		ProfilePicture: req.ProfilePicture,
		PhoneNumber:    req.PhoneNumber,
		Bio:            req.Bio,
		Location:       req.Location,
		Interests:      req.Interests,
	}

	profile, err := h.profileService.Update(c.Request.Context(), middleware.UserID(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrRegistrationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCapacityReached),
		errors.Is(err, domain.ErrAlreadyRegistered):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, token.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
