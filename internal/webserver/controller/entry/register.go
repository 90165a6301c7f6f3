package entry

import (
	"strings"
	"time"

	"github.com/forumkit/massinvite/internal/webserver/model"
	"github.com/forumkit/massinvite/internal/webserver/session"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RegisterForm renders the registration form, but only to visitors who can
// present a valid invitation code. Anyone else is bounced to the front page
// with an explanatory message, never shown a bare form.
func (e *Controller) RegisterForm(c *fiber.Ctx) error {
	code := e.resolveCode(c)
	if code == "" {
		return e.reject(c, inviteRequiredMessage)
	}

	campaign, err := e.campaigns.FindBySecret(code)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if campaign == nil || !campaign.CanRegister(time.Now().UTC()) {
		return e.reject(c, invalidOrExpiredMessage)
	}

	return c.Render("entry/register", fiber.Map{
		"Title":             "Register",
		"Code":              code,
		"User":              model.User{},
		"Errors":            map[string]string{},
		"UsernamePattern":   model.UsernamePattern,
		"MinPasswordLength": e.config.MinPasswordLength,
		"Messages":          session.Pop(c, e.config.SessionSecret, e.config.SessionTimeout),
	}, "layout")
}

// Register creates an account under the invitation code carried by the form.
// The campaign is resolved once here and that same resolution is handed to
// the redemption step, so a code cannot validate against one campaign and
// redeem against another.
func (e *Controller) Register(c *fiber.Ctx) error {
	code := e.resolveCode(c)
	if code == "" {
		return e.reject(c, inviteRequiredMessage)
	}

	campaign, err := e.campaigns.FindBySecret(code)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	// Re-validated on submission so a campaign revoked between the invite
	// link visit and the form submit no longer admits the visitor.
	if campaign == nil || !campaign.CanRegister(time.Now().UTC()) {
		return e.reject(c, invalidOrExpiredMessage)
	}

	user := model.User{
		Uuid:     uuid.NewString(),
		Name:     c.FormValue("name"),
		Username: strings.ToLower(c.FormValue("username")),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}

	errs := user.Validate(e.config.MinPasswordLength)
	errs = user.ConfirmPassword(c.FormValue("confirm-password"), e.config.MinPasswordLength, errs)

	if exist, _ := e.users.FindByEmail(user.Email); exist != nil {
		errs["email"] = "A user with this email address already exists"
	}

	if exist, _ := e.users.FindByUsername(user.Username); exist != nil {
		errs["username"] = "A user with this username already exists"
	}

	if len(errs) > 0 {
		return c.Render("entry/register", fiber.Map{
			"Title":             "Register",
			"Code":              code,
			"User":              user,
			"Errors":            errs,
			"UsernamePattern":   model.UsernamePattern,
			"MinPasswordLength": e.config.MinPasswordLength,
		}, "layout")
	}

	user.Password = model.Hash(user.Password)
	if err := e.users.Create(&user); err != nil {
		return fiber.ErrInternalServerError
	}

	// The account exists at this point; a redemption failure must fail the
	// whole request rather than leave the registration half recorded.
	if err := e.campaigns.Redeem(user.ID, campaign.ID); err != nil {
		return fiber.ErrInternalServerError
	}

	sess := session.Read(c, e.config.SessionSecret)
	sess.Code = ""
	sess.Messages = append(sess.Messages, session.Message{
		Kind: session.KindSuccess,
		Text: "Account created successfully. You can sign in now.",
	})
	if err := session.Write(c, e.config.SessionSecret, sess, e.config.SessionTimeout); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect("/")
}

// resolveCode recovers the invitation code for the current request, trying in
// order: the submitted form field, the session stash, and finally the last
// non-empty path segment of the request URL when it looks like a code.
func (e *Controller) resolveCode(c *fiber.Ctx) string {
	if code := c.FormValue("invite-code"); code != "" {
		return code
	}

	if code := session.Read(c, e.config.SessionSecret).Code; code != "" {
		return code
	}

	segments := strings.Split(c.Path(), "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] == "" {
			continue
		}
		if model.SecretPattern.MatchString(segments[i]) {
			return segments[i]
		}
		break
	}

	return ""
}

// reject queues the given error message, drops any stashed code (it has just
// proven useless) and sends the visitor back to the front page.
func (e *Controller) reject(c *fiber.Ctx, message string) error {
	sess := session.Read(c, e.config.SessionSecret)
	sess.Code = ""
	sess.Messages = append(sess.Messages, session.Message{Kind: session.KindError, Text: message})
	if err := session.Write(c, e.config.SessionSecret, sess, e.config.SessionTimeout); err != nil {
		return fiber.ErrInternalServerError
	}
	return c.Redirect("/")
}
