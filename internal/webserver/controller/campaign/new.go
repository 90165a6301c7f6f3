package campaign

import (
	"github.com/forumkit/massinvite/internal/webserver/model"
	"github.com/gofiber/fiber/v2"
)

// New renders the campaign creation form. The shown secret is a preview; the
// stored secret is generated server-side on submission.
func (a *Controller) New(c *fiber.Ctx) error {
	return c.Render("campaign/new", fiber.Map{
		"Title":    "Create mass invite campaign",
		"Secret":   model.GenerateSecret(),
		"Campaign": model.Campaign{},
		"Errors":   map[string]string{},
	}, "layout")
}
