package model

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

// ErrAlreadyLinked is returned by Redeem when the account already carries a
// campaign back-reference, which is only ever set once.
var ErrAlreadyLinked = errors.New("account is already linked to a campaign")

type CampaignRepository struct {
	DB *gorm.DB
}

func (r *CampaignRepository) Create(campaign *Campaign) error {
	if result := r.DB.Create(campaign); result.Error != nil {
		log.Printf("error creating campaign: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (r *CampaignRepository) List() ([]Campaign, error) {
	var campaigns []Campaign

	result := r.DB.Order("created_at DESC").Find(&campaigns)
	if result.Error != nil {
		log.Printf("error listing campaigns: %s\n", result.Error)
		return nil, result.Error
	}
	return campaigns, nil
}

// FindBySecret returns the campaign matching the given secret, or nil if no
// campaign matches. More than one match means a secret collision, which is
// also reported as not found rather than picking a winner.
func (r *CampaignRepository) FindBySecret(secret string) (*Campaign, error) {
	var campaigns []Campaign

	result := r.DB.Where("secret = ?", secret).Limit(2).Find(&campaigns)
	if result.Error != nil {
		log.Printf("error looking up campaign by secret: %s\n", result.Error)
		return nil, result.Error
	}
	if len(campaigns) != 1 {
		return nil, nil
	}
	return &campaigns[0], nil
}

// IncrementUses adds one to the campaign's use counter with a single UPDATE,
// so concurrent redemptions of the same campaign cannot lose increments.
func (r *CampaignRepository) IncrementUses(campaignID uint) error {
	if err := incrementUses(r.DB, campaignID); err != nil {
		log.Printf("error incrementing campaign uses: %s\n", err)
		return err
	}
	return nil
}

// Redeem links a freshly created user to the campaign and increments the
// campaign's use counter in one transaction. The link is guarded so it can
// only be set while the user has no campaign yet.
func (r *CampaignRepository) Redeem(userID, campaignID uint) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		link := tx.Model(&User{}).
			Where("id = ? AND campaign_id IS NULL", userID).
			Update("campaign_id", campaignID)
		if link.Error != nil {
			return link.Error
		}
		if link.RowsAffected == 0 {
			return ErrAlreadyLinked
		}

		return incrementUses(tx, campaignID)
	})
	if err != nil {
		log.Printf("error redeeming campaign %d for user %d: %s\n", campaignID, userID, err)
	}
	return err
}

func incrementUses(db *gorm.DB, campaignID uint) error {
	result := db.Model(&Campaign{}).
		Where("id = ?", campaignID).
		UpdateColumn("uses", gorm.Expr("uses + 1"))
	return result.Error
}
