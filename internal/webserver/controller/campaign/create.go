package campaign

import (
	"strconv"
	"time"

	"github.com/forumkit/massinvite/internal/webserver/model"
	"github.com/forumkit/massinvite/internal/webserver/session"
	"github.com/gofiber/fiber/v2"
)

// Format used by HTML datetime-local inputs.
const datetimeLocal = "2006-01-02T15:04"

// Create gathers the campaign form and persists a new campaign with a freshly
// generated secret.
func (a *Controller) Create(c *fiber.Ctx) error {
	campaign := model.Campaign{
		Name:   c.FormValue("name"),
		Secret: model.GenerateSecret(),
		Active: c.FormValue("active") != "",
	}

	errs := map[string]string{}

	if campaign.Name == "" {
		errs["name"] = "Name cannot be empty"
	}

	if value := c.FormValue("not-before"); value != "" {
		parsed, err := time.Parse(datetimeLocal, value)
		if err != nil {
			errs["not-before"] = "Incorrect start date"
		} else {
			campaign.NotBefore = &parsed
		}
	}

	if value := c.FormValue("not-after"); value != "" {
		parsed, err := time.Parse(datetimeLocal, value)
		if err != nil {
			errs["not-after"] = "Incorrect end date"
		} else {
			campaign.NotAfter = &parsed
		}
	}

	if campaign.NotBefore != nil && campaign.NotAfter != nil && campaign.NotAfter.Before(*campaign.NotBefore) {
		errs["not-after"] = "End date cannot be before start date"
	}

	if value := c.FormValue("maximum-uses"); value != "" {
		parsed, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			errs["maximum-uses"] = "Maximum uses must be a non-negative number"
		} else {
			maximumUses := uint(parsed)
			campaign.MaximumUses = &maximumUses
		}
	}

	if len(errs) > 0 {
		return c.Render("campaign/new", fiber.Map{
			"Title":    "Create mass invite campaign",
			"Secret":   campaign.Secret,
			"Campaign": campaign,
			"Errors":   errs,
		}, "layout")
	}

	if err := a.repository.Create(&campaign); err != nil {
		return fiber.ErrInternalServerError
	}

	if err := session.Push(c, a.config.SessionSecret, a.config.SessionTimeout, session.KindSuccess, "Campaign created successfully"); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect("/settings/massinvite")
}
