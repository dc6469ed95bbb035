package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spintowin/spinwheel-api/internal/domain"
	"github.com/spintowin/spinwheel-api/internal/repository/dao"
)

var ErrAlreadyParticipated = dao.ErrAlreadyParticipated

type ParticipationDAO interface {
	Insert(ctx context.Context, participation dao.Participation) (dao.Participation, error)
	Exists(ctx context.Context, campaignID uint, identity string) (bool, error)
	Totals(ctx context.Context, campaignID uint, since time.Time) (int64, int64, error)
	SpinsByDay(ctx context.Context, campaignID uint, since time.Time) (map[string]int64, error)
	CountsByPrize(ctx context.Context, campaignID uint, since time.Time) ([]dao.PrizeCountRow, error)
	ShopTotals(ctx context.Context, shopID string) (int64, int64, int64, error)
}

type ParticipationRepository struct {
	dao ParticipationDAO
}

func NewParticipationRepository(dao ParticipationDAO) *ParticipationRepository {
	return &ParticipationRepository{
		dao: dao,
	}
}

// Record writes one ledger row. The code travels with the row so issuance
// and recording are a single atomic insert.
func (r *ParticipationRepository) Record(ctx context.Context, record domain.ParticipationRecord) (domain.ParticipationRecord, error) {
	var code *string
	if record.Code != "" {
		code = &record.Code
	}

	created, err := r.dao.Insert(ctx, dao.Participation{
		CampaignID: record.CampaignID,
		Identity:   record.Identity,
		PrizeID:    record.PrizeID,
		PrizeLabel: record.PrizeLabel,
		Code:       code,
	})
	if err != nil {
		return domain.ParticipationRecord{}, err
	}

	return r.daoToDomain(created), nil
}

func (r *ParticipationRepository) HasParticipated(ctx context.Context, campaignID uint, identity string) (bool, error) {
	exists, err := r.dao.Exists(ctx, campaignID, identity)
	if err != nil {
		return false, fmt.Errorf("r.dao.Exists -> %w", err)
	}

	return exists, nil
}

func (r *ParticipationRepository) CampaignTotals(ctx context.Context, campaignID uint, since time.Time) (int64, int64, error) {
	return r.dao.Totals(ctx, campaignID, since)
}

func (r *ParticipationRepository) SpinsByDay(ctx context.Context, campaignID uint, since time.Time) ([]domain.DayCount, error) {
	byDay, err := r.dao.SpinsByDay(ctx, campaignID, since)
	if err != nil {
		return nil, fmt.Errorf("r.dao.SpinsByDay -> %w", err)
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	counts := make([]domain.DayCount, 0, len(days))
	for _, day := range days {
		counts = append(counts, domain.DayCount{Day: day, Count: byDay[day]})
	}

	return counts, nil
}

func (r *ParticipationRepository) CountsByPrize(ctx context.Context, campaignID uint, since time.Time) ([]domain.PrizeCount, error) {
	rows, err := r.dao.CountsByPrize(ctx, campaignID, since)
	if err != nil {
		return nil, fmt.Errorf("r.dao.CountsByPrize -> %w", err)
	}

	counts := make([]domain.PrizeCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, domain.PrizeCount{
			PrizeID:    row.PrizeID,
			PrizeLabel: row.PrizeLabel,
			Count:      row.Count,
		})
	}

	return counts, nil
}

func (r *ParticipationRepository) ShopTotals(ctx context.Context, shopID string) (int64, int64, int64, error) {
	return r.dao.ShopTotals(ctx, shopID)
}

func (r *ParticipationRepository) daoToDomain(p dao.Participation) domain.ParticipationRecord {
	record := domain.ParticipationRecord{
		ID:         p.ID,
		CampaignID: p.CampaignID,
		Identity:   p.Identity,
		PrizeID:    p.PrizeID,
		PrizeLabel: p.PrizeLabel,
		CreatedAt:  p.CreatedAt,
	}
	if p.Code != nil {
		record.Code = *p.Code
	}

	return record
}
