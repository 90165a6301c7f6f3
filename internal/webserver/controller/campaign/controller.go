package campaign

import (
	"time"

	"github.com/forumkit/massinvite/internal/webserver/model"
)

type campaignsRepository interface {
	Create(campaign *model.Campaign) error
	List() ([]model.Campaign, error)
}

type Config struct {
	SessionSecret  []byte
	SessionTimeout time.Duration
}

type Controller struct {
	repository campaignsRepository
	config     Config
}

func NewController(repository campaignsRepository, cfg Config) *Controller {
	return &Controller{
		repository: repository,
		config:     cfg,
	}
}
