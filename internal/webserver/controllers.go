package webserver

import (
	"github.com/forumkit/massinvite/internal/webserver/controller/campaign"
	"github.com/forumkit/massinvite/internal/webserver/controller/entry"
	"github.com/forumkit/massinvite/internal/webserver/controller/home"
	"github.com/forumkit/massinvite/internal/webserver/model"
	"gorm.io/gorm"
)

type Controllers struct {
	Entry     *entry.Controller
	Campaigns *campaign.Controller
	Home      *home.Controller
}

func SetupControllers(cfg Config, db *gorm.DB) Controllers {
	campaignsRepository := &model.CampaignRepository{DB: db}
	usersRepository := &model.UserRepository{DB: db}

	entryCfg := entry.Config{
		SessionSecret:     cfg.SessionSecret,
		SessionTimeout:    cfg.SessionTimeout,
		MinPasswordLength: cfg.MinPasswordLength,
	}

	campaignCfg := campaign.Config{
		SessionSecret:  cfg.SessionSecret,
		SessionTimeout: cfg.SessionTimeout,
	}

	homeCfg := home.Config{
		SessionSecret:  cfg.SessionSecret,
		SessionTimeout: cfg.SessionTimeout,
	}

	return Controllers{
		Entry:     entry.NewController(campaignsRepository, usersRepository, entryCfg),
		Campaigns: campaign.NewController(campaignsRepository, campaignCfg),
		Home:      home.NewController(homeCfg),
	}
}
