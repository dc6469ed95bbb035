package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var ErrAlreadyParticipated = errors.New("identity already participated in campaign")

// Participation is one ledger row. The composite unique index is the
// anti-double-claim guarantee: concurrent inserts for the same pair resolve
// in the database, exactly one succeeds.
type Participation struct {
	ID         uint      `gorm:"primaryKey"`
	CampaignID uint      `gorm:"not null;uniqueIndex:idx_participations_campaign_identity"`
	Identity   string    `gorm:"not null;uniqueIndex:idx_participations_campaign_identity"`
	PrizeID    uint      `gorm:"not null"`
	PrizeLabel string    `gorm:"not null"`
	Code       *string   // nil for no-win outcomes
	CreatedAt  time.Time `gorm:"not null"`
}

type ParticipationDAO struct {
	db *gorm.DB
}

func NewParticipationDAO(db *gorm.DB) *ParticipationDAO {
	return &ParticipationDAO{
		db: db,
	}
}

func (d *ParticipationDAO) Insert(ctx context.Context, participation Participation) (Participation, error) {
	result := d.db.WithContext(ctx).Create(&participation)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Participation{}, ErrAlreadyParticipated
		}

		return Participation{}, result.Error
	}

	return participation, nil
}

func (d *ParticipationDAO) Exists(ctx context.Context, campaignID uint, identity string) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Participation{}).
		Where("campaign_id = ? AND identity = ?", campaignID, identity).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

type participationTotals struct {
	TotalSpins int64
	TotalCodes int64
}

// Totals returns spins and issued codes since the cutoff. A no-win spin has
// a NULL code, so COUNT(code) is also the win count.
func (d *ParticipationDAO) Totals(ctx context.Context, campaignID uint, since time.Time) (int64, int64, error) {
	var totals participationTotals

	result := d.db.WithContext(ctx).Model(&Participation{}).
		Select("COUNT(*) AS total_spins, COUNT(code) AS total_codes").
		Where("campaign_id = ? AND created_at >= ?", campaignID, since).
		Scan(&totals)
	if result.Error != nil {
		return 0, 0, result.Error
	}

	return totals.TotalSpins, totals.TotalCodes, nil
}

type dayCountRow struct {
	Day   time.Time
	Count int64
}

func (d *ParticipationDAO) SpinsByDay(ctx context.Context, campaignID uint, since time.Time) (map[string]int64, error) {
	var rows []dayCountRow

	result := d.db.WithContext(ctx).Model(&Participation{}).
		Select("date_trunc('day', created_at) AS day, COUNT(*) AS count").
		Where("campaign_id = ? AND created_at >= ?", campaignID, since).
		Group("day").
		Order("day ASC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	byDay := make(map[string]int64, len(rows))
	for _, row := range rows {
		byDay[row.Day.Format("2006-01-02")] = row.Count
	}

	return byDay, nil
}

type PrizeCountRow struct {
	PrizeID    uint
	PrizeLabel string
	Count      int64
}

// CountsByPrize honors the same cutoff as Totals and SpinsByDay so one
// analytics payload never mixes windowed and all-time aggregates.
func (d *ParticipationDAO) CountsByPrize(ctx context.Context, campaignID uint, since time.Time) ([]PrizeCountRow, error) {
	var rows []PrizeCountRow

	result := d.db.WithContext(ctx).Model(&Participation{}).
		Select("prize_id, prize_label, COUNT(*) AS count").
		Where("campaign_id = ? AND created_at >= ?", campaignID, since).
		Group("prize_id, prize_label").
		Order("count DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

type shopTotalsRow struct {
	TotalCampaigns int64
	TotalSpins     int64
	TotalCodes     int64
}

func (d *ParticipationDAO) ShopTotals(ctx context.Context, shopID string) (int64, int64, int64, error) {
	var totals shopTotalsRow

	result := d.db.WithContext(ctx).
		Table("campaigns").
		Select(`COUNT(DISTINCT campaigns.id) AS total_campaigns,
			COUNT(participations.id) AS total_spins,
			COUNT(participations.code) AS total_codes`).
		Joins("LEFT JOIN participations ON participations.campaign_id = campaigns.id").
		Where("campaigns.shop_id = ?", shopID).
		Scan(&totals)
	if result.Error != nil {
		return 0, 0, 0, result.Error
	}

	return totals.TotalCampaigns, totals.TotalSpins, totals.TotalCodes, nil
}
