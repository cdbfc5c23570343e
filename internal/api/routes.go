package api

import (
	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/agency-cockpit/configs"
	"github.com/maheshrc27/agency-cockpit/internal/api/handlers"
	"github.com/maheshrc27/agency-cockpit/internal/api/middleware"
)

type Handlers struct {
	Accounts  *handlers.AccountHandler
	Posts     *handlers.PostHandler
	Auth      *handlers.AuthHandler
	Platforms *handlers.PlatformHandler
	Session   *middleware.SessionMiddleware
}

// RegisterRoutes mounts the agency view under /agency and the client view
// under /client. Token routes depend on cfg.TokenMode.
func RegisterRoutes(app *fiber.App, cfg config.Config, h Handlers) {
	agency := app.Group("/agency")
	agency.Get("/dashboard", h.Accounts.Dashboard)
	agency.Get("/accounts", h.Accounts.ListAccounts)
	agency.Post("/accounts", h.Accounts.CreateAccount)
	agency.Get("/posts", h.Posts.ListPosts)
	agency.Post("/posts", h.Posts.SchedulePost)

	client := app.Group("/client")
	client.Post("/login", h.Auth.Login)
	client.Post("/logout", h.Auth.Logout)

	me := client.Group("/me", h.Session.RequireSession())
	me.Get("/", h.Auth.Me)
	me.Get("/posts", h.Posts.ListOwnPosts)
	me.Delete("/tokens/:platform", h.Platforms.Disconnect)

	switch cfg.TokenMode {
	case config.TokenModeOAuth:
		me.Get("/connect/facebook", h.Platforms.ConnectFacebook)
		app.Get("/auth/facebook/callback", h.Platforms.FacebookCallback)
	case config.TokenModeManual:
		me.Put("/tokens/:platform", h.Platforms.SetToken)
	}
}
