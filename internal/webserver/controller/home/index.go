package home

import (
	"time"

	"github.com/forumkit/massinvite/internal/webserver/session"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	SessionSecret  []byte
	SessionTimeout time.Duration
}

type Controller struct {
	config Config
}

func NewController(cfg Config) *Controller {
	return &Controller{config: cfg}
}

// Index renders the landing page, surfacing (and thereby consuming) any
// transient messages queued by a previous request.
func (h *Controller) Index(c *fiber.Ctx) error {
	return c.Render("home/index", fiber.Map{
		"Title":    "Welcome",
		"Messages": session.Pop(c, h.config.SessionSecret, h.config.SessionTimeout),
	}, "layout")
}
