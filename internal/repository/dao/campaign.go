package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrCampaignClosed   = errors.New("campaign closed")
	ErrSpinCapReached   = errors.New("spin cap reached")
)

type Campaign struct {
	ID                  uint      `gorm:"primaryKey"`
	ShopID              string    `gorm:"index;not null"`
	Name                string    `gorm:"not null"`
	Status              string    `gorm:"not null;default:'active'"`
	StartDate           time.Time `gorm:"not null"`
	EndDate             time.Time `gorm:"not null"`
	SpinsLimit          int       `gorm:"not null"`
	SpinCount           int       `gorm:"not null;default:0"`
	// No column default here: gorm omits zero-valued fields that carry a
	// default tag on create, which would silently turn false into true.
	// The create handler owns the default instead.
	RequireVerification bool      `gorm:"not null"`
	Prizes              []Prize   `gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE"`
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"not null"`
}

// Prize rows keep their table order in Position; the selector walks them in
// that order when building cumulative weights.
type Prize struct {
	ID         uint    `gorm:"primaryKey"`
	CampaignID uint    `gorm:"index;not null"`
	Label      string  `gorm:"not null"`
	Kind       string  `gorm:"not null"`
	Value      float64 `gorm:"not null;default:0"`
	Weight     float64 `gorm:"not null;default:0"`
	Position   int     `gorm:"not null;default:0"`
}

type CampaignDAO struct {
	db *gorm.DB
}

func NewCampaignDAO(db *gorm.DB) *CampaignDAO {
	return &CampaignDAO{
		db: db,
	}
}

func (d *CampaignDAO) Insert(ctx context.Context, campaign Campaign) (Campaign, error) {
	result := d.db.WithContext(ctx).Create(&campaign)
	if result.Error != nil {
		return Campaign{}, result.Error
	}

	return campaign, nil
}

func (d *CampaignDAO) FindByID(ctx context.Context, id uint) (Campaign, error) {
	var campaign Campaign

	result := d.db.WithContext(ctx).
		Preload("Prizes", func(db *gorm.DB) *gorm.DB {
			return db.Order("prizes.position ASC, prizes.id ASC")
		}).
		First(&campaign, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Campaign{}, ErrCampaignNotFound
		}

		return Campaign{}, result.Error
	}

	return campaign, nil
}

func (d *CampaignDAO) FindByShopID(ctx context.Context, shopID string) ([]Campaign, error) {
	var campaigns []Campaign

	result := d.db.WithContext(ctx).
		Preload("Prizes", func(db *gorm.DB) *gorm.DB {
			return db.Order("prizes.position ASC, prizes.id ASC")
		}).
		Where("shop_id = ?", shopID).
		Order("created_at DESC").
		Find(&campaigns)
	if result.Error != nil {
		return nil, result.Error
	}

	return campaigns, nil
}

// Update replaces the campaign row and, when prizes is non-nil, its whole
// prize table, inside one transaction.
func (d *CampaignDAO) Update(ctx context.Context, campaign Campaign, prizes []Prize) (Campaign, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Campaign{}).Where("id = ?", campaign.ID).Updates(map[string]interface{}{
			"shop_id":              campaign.ShopID,
			"name":                 campaign.Name,
			"status":               campaign.Status,
			"start_date":           campaign.StartDate,
			"end_date":             campaign.EndDate,
			"spins_limit":          campaign.SpinsLimit,
			"require_verification": campaign.RequireVerification,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCampaignNotFound
		}

		if prizes == nil {
			return nil
		}

		if err := tx.Where("campaign_id = ?", campaign.ID).Delete(&Prize{}).Error; err != nil {
			return err
		}
		for i := range prizes {
			prizes[i].ID = 0
			prizes[i].CampaignID = campaign.ID
			prizes[i].Position = i
		}
		if len(prizes) > 0 {
			if err := tx.Create(&prizes).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return Campaign{}, err
	}

	return d.FindByID(ctx, campaign.ID)
}

func (d *CampaignDAO) UpdateStatus(ctx context.Context, id uint, status string) error {
	result := d.db.WithContext(ctx).Model(&Campaign{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCampaignNotFound
	}

	return nil
}

// Delete removes the campaign and its prizes. Prizes never outlive their
// campaign.
func (d *CampaignDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("campaign_id = ?", id).Delete(&Prize{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Campaign{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCampaignNotFound
		}

		return nil
	})
}

// ReserveSpinSlot claims one spin slot with a single conditional UPDATE, so
// two concurrent spins can never overshoot the cap. Returns the
// post-increment count. A spins_limit of zero means uncapped. A zero-row
// update is disambiguated with a follow-up read into NotFound, Closed or
// CapReached.
func (d *CampaignDAO) ReserveSpinSlot(ctx context.Context, id uint, now time.Time) (int, error) {
	var count int

	result := d.db.WithContext(ctx).Raw(
		`UPDATE campaigns
		 SET spin_count = spin_count + 1, updated_at = ?
		 WHERE id = ?
		   AND status = 'active'
		   AND ? BETWEEN start_date AND end_date
		   AND (spins_limit = 0 OR spin_count < spins_limit)
		 RETURNING spin_count`,
		now, id, now,
	).Scan(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected > 0 {
		return count, nil
	}

	var campaign Campaign
	if err := d.db.WithContext(ctx).First(&campaign, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrCampaignNotFound
		}

		return 0, err
	}

	if campaign.Status != "active" || now.Before(campaign.StartDate) || now.After(campaign.EndDate) {
		return 0, ErrCampaignClosed
	}

	return 0, ErrSpinCapReached
}
