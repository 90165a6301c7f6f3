package entry

import (
	"time"

	"github.com/forumkit/massinvite/internal/webserver/model"
)

const (
	invalidOrExpiredMessage = "The invitation code you entered is invalid or expired."
	inviteRequiredMessage   = "You need to be invited to register on this site."
)

type campaignsRepository interface {
	FindBySecret(secret string) (*model.Campaign, error)
	Redeem(userID, campaignID uint) error
}

type usersRepository interface {
	Create(user *model.User) error
	FindByEmail(email string) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
}

type Config struct {
	SessionSecret     []byte
	SessionTimeout    time.Duration
	MinPasswordLength int
}

type Controller struct {
	campaigns campaignsRepository
	users     usersRepository
	config    Config
}

func NewController(campaigns campaignsRepository, users usersRepository, cfg Config) *Controller {
	return &Controller{
		campaigns: campaigns,
		users:     users,
		config:    cfg,
	}
}
