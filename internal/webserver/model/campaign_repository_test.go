package model_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/forumkit/massinvite/internal/webserver/infrastructure"
	"github.com/forumkit/massinvite/internal/webserver/model"
	"github.com/google/uuid"
)

func TestFindBySecret(t *testing.T) {
	db := infrastructure.Connect(":memory:")
	repository := &model.CampaignRepository{DB: db}

	campaign := model.Campaign{
		Name:   "Launch",
		Secret: model.GenerateSecret(),
		Active: true,
	}
	if err := repository.Create(&campaign); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	t.Run("An existing secret resolves to its campaign", func(t *testing.T) {
		found, err := repository.FindBySecret(campaign.Secret)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if found == nil {
			t.Fatal("Expected a campaign, got none")
		}
		if found.ID != campaign.ID {
			t.Errorf("Expected campaign %d, got %d", campaign.ID, found.ID)
		}
	})

	t.Run("An unknown secret is reported as not found", func(t *testing.T) {
		found, err := repository.FindBySecret(model.GenerateSecret())
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if found != nil {
			t.Errorf("Expected no campaign, got %d", found.ID)
		}
	})

	t.Run("Colliding secrets are reported as not found", func(t *testing.T) {
		// The unique index makes collisions impossible in normal operation,
		// so it is dropped here to exercise the lookup's own guard.
		if err := db.Migrator().DropIndex(&model.Campaign{}, "Secret"); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		colliding := model.GenerateSecret()
		for i := 0; i < 2; i++ {
			if err := repository.Create(&model.Campaign{Name: "Colliding", Secret: colliding, Active: true}); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
		}

		found, err := repository.FindBySecret(colliding)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if found != nil {
			t.Errorf("Expected no campaign for a colliding secret, got %d", found.ID)
		}
	})
}

func TestIncrementUses(t *testing.T) {
	db := infrastructure.Connect(":memory:")
	repository := &model.CampaignRepository{DB: db}

	campaign := model.Campaign{Name: "Launch", Secret: model.GenerateSecret(), Active: true}
	if err := repository.Create(&campaign); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	t.Run("Concurrent increments are all counted", func(t *testing.T) {
		const attempts = 20

		var wg sync.WaitGroup
		wg.Add(attempts)
		for i := 0; i < attempts; i++ {
			go func() {
				defer wg.Done()
				if err := repository.IncrementUses(campaign.ID); err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
			}()
		}
		wg.Wait()

		var stored model.Campaign
		if err := db.First(&stored, campaign.ID).Error; err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if stored.Uses != attempts {
			t.Errorf("Expected %d uses, got %d", attempts, stored.Uses)
		}
	})
}

func TestRedeem(t *testing.T) {
	db := infrastructure.Connect(":memory:")
	campaigns := &model.CampaignRepository{DB: db}
	users := &model.UserRepository{DB: db}

	campaign := model.Campaign{Name: "Launch", Secret: model.GenerateSecret(), Active: true}
	if err := campaigns.Create(&campaign); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	user := model.User{
		Uuid:     uuid.NewString(),
		Name:     "Invited user",
		Username: "invited",
		Email:    "invited@example.com",
		Password: model.Hash("password"),
	}
	if err := users.Create(&user); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	t.Run("Redeeming links the account and counts the use", func(t *testing.T) {
		if err := campaigns.Redeem(user.ID, campaign.ID); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		stored, err := users.FindByEmail(user.Email)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if stored.CampaignID == nil || *stored.CampaignID != campaign.ID {
			t.Errorf("Expected user linked to campaign %d, got %v", campaign.ID, stored.CampaignID)
		}

		var storedCampaign model.Campaign
		if err := db.First(&storedCampaign, campaign.ID).Error; err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if storedCampaign.Uses != 1 {
			t.Errorf("Expected 1 use, got %d", storedCampaign.Uses)
		}
	})

	t.Run("An account can only be linked once", func(t *testing.T) {
		err := campaigns.Redeem(user.ID, campaign.ID)
		if !errors.Is(err, model.ErrAlreadyLinked) {
			t.Fatalf("Expected ErrAlreadyLinked, got %v", err)
		}

		var storedCampaign model.Campaign
		if err := db.First(&storedCampaign, campaign.ID).Error; err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if storedCampaign.Uses != 1 {
			t.Errorf("Expected the use counter to stay at 1, got %d", storedCampaign.Uses)
		}
	})
}
