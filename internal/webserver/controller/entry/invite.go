package entry

import (
	"time"

	"github.com/forumkit/massinvite/internal/webserver/model"
	"github.com/forumkit/massinvite/internal/webserver/session"
	"github.com/gofiber/fiber/v2"
)

// Invite processes an invite link visit. A well-formed code belonging to an
// eligible campaign is stashed in the visitor's session and the visitor is
// sent to the registration form, so the code survives until the form is
// submitted. A malformed code is treated as if no code was given.
func (e *Controller) Invite(c *fiber.Ctx) error {
	code := c.Params("code")
	if !model.SecretPattern.MatchString(code) {
		return c.Redirect("/")
	}

	campaign, err := e.campaigns.FindBySecret(code)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	if campaign == nil || !campaign.CanRegister(time.Now().UTC()) {
		if err := session.Push(c, e.config.SessionSecret, e.config.SessionTimeout, session.KindError, invalidOrExpiredMessage); err != nil {
			return fiber.ErrInternalServerError
		}
		return c.Redirect("/")
	}

	sess := session.Read(c, e.config.SessionSecret)
	sess.Code = code
	if err := session.Write(c, e.config.SessionSecret, sess, e.config.SessionTimeout); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect("/entry/register")
}
