package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Signup(c *ginext.Context)
	Login(c *ginext.Context)
	Refresh(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	MyEvents(c *ginext.Context)
	RegisterForEvent(c *ginext.Context)
	UnregisterFromEvent(c *ginext.Context)
	ListRegistrations(c *ginext.Context)
	RegistrationCount(c *ginext.Context)
	GetProfile(c *ginext.Context)
	UpdateProfile(c *ginext.Context)
}

// InitRouter wires the route table. Reads on events and the registration
// count are public; every mutating route sits behind the auth middleware.
func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	// Auth & accounts
	router.POST("/token", h.Login)
	router.POST("/token/refresh", h.Refresh)
	router.POST("/login", h.Login)
	router.POST("/register", h.Signup)

	// Public event reads
	router.GET("/events", h.ListEvents)
	router.GET("/events/:id", h.GetEvent)
	router.GET("/events/:id/registration_count", h.RegistrationCount)

	authed := router.Group("/", auth)
	{
		authed.POST("/events", h.CreateEvent)
		authed.PUT("/events/:id", h.UpdateEvent)
		authed.PATCH("/events/:id", h.UpdateEvent)
		authed.DELETE("/events/:id", h.DeleteEvent)
		authed.GET("/my-events", h.MyEvents)

		authed.POST("/events/:id/register", h.RegisterForEvent)
		authed.DELETE("/events/:id/register", h.UnregisterFromEvent)
		authed.GET("/events/:id/registrations", h.ListRegistrations)

		authed.GET("/profile", h.GetProfile)
		authed.PUT("/profile", h.UpdateProfile)
		authed.PATCH("/profile", h.UpdateProfile)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
