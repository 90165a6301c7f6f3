package campaign

import (
	"github.com/forumkit/massinvite/internal/webserver/session"
	"github.com/gofiber/fiber/v2"
)

// List shows all campaigns with their secrets, validity windows and usage.
func (a *Controller) List(c *fiber.Ctx) error {
	campaigns, err := a.repository.List()
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("campaign/list", fiber.Map{
		"Title":     "Mass invite",
		"Campaigns": campaigns,
		"Messages":  session.Pop(c, a.config.SessionSecret, a.config.SessionTimeout),
	}, "layout")
}
