package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrChallengeNotFound = errors.New("no active challenge for identity")

// Challenge stores the bcrypt hash of a one-time code, never the code itself.
type Challenge struct {
	ID        uint      `gorm:"primaryKey"`
	Identity  string    `gorm:"uniqueIndex;not null"`
	CodeHash  string    `gorm:"not null"`
	Attempts  int       `gorm:"not null;default:0"`
	Consumed  bool      `gorm:"not null;default:false"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

type ChallengeDAO struct {
	db *gorm.DB
}

func NewChallengeDAO(db *gorm.DB) *ChallengeDAO {
	return &ChallengeDAO{
		db: db,
	}
}

// Replace installs a fresh challenge for the identity, invalidating any prior
// pending one. Delete-then-insert inside a transaction keeps the unique index
// on identity as the single-active-challenge guarantee.
func (d *ChallengeDAO) Replace(ctx context.Context, challenge Challenge) (Challenge, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("identity = ?", challenge.Identity).Delete(&Challenge{}).Error; err != nil {
			return err
		}

		return tx.Create(&challenge).Error
	})
	if err != nil {
		return Challenge{}, err
	}

	return challenge, nil
}

func (d *ChallengeDAO) FindByIdentity(ctx context.Context, identity string) (Challenge, error) {
	var challenge Challenge

	result := d.db.WithContext(ctx).First(&challenge, "identity = ?", identity)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Challenge{}, ErrChallengeNotFound
		}

		return Challenge{}, result.Error
	}

	return challenge, nil
}

// Consume marks the challenge used. The conditional update makes consumption
// single-use: a second caller sees zero rows and gets ErrChallengeNotFound.
func (d *ChallengeDAO) Consume(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Model(&Challenge{}).
		Where("id = ? AND consumed = false", id).
		Update("consumed", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrChallengeNotFound
	}

	return nil
}

func (d *ChallengeDAO) IncrementAttempts(ctx context.Context, id uint) (int, error) {
	var attempts int

	result := d.db.WithContext(ctx).Raw(
		`UPDATE challenges SET attempts = attempts + 1 WHERE id = ? RETURNING attempts`, id,
	).Scan(&attempts)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, ErrChallengeNotFound
	}

	return attempts, nil
}

func (d *ChallengeDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Delete(&Challenge{}, id).Error
}
