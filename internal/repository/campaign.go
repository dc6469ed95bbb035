package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/spintowin/spinwheel-api/internal/domain"
	"github.com/spintowin/spinwheel-api/internal/repository/dao"
)

var (
	ErrCampaignNotFound = dao.ErrCampaignNotFound
	ErrCampaignClosed   = dao.ErrCampaignClosed
	ErrSpinCapReached   = dao.ErrSpinCapReached
)

type CampaignDAO interface {
	Insert(ctx context.Context, campaign dao.Campaign) (dao.Campaign, error)
	FindByID(ctx context.Context, id uint) (dao.Campaign, error)
	FindByShopID(ctx context.Context, shopID string) ([]dao.Campaign, error)
	Update(ctx context.Context, campaign dao.Campaign, prizes []dao.Prize) (dao.Campaign, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
	ReserveSpinSlot(ctx context.Context, id uint, now time.Time) (int, error)
}

type CampaignRepository struct {
	dao CampaignDAO
}

func NewCampaignRepository(dao CampaignDAO) *CampaignRepository {
	return &CampaignRepository{
		dao: dao,
	}
}

func (r *CampaignRepository) Create(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(campaign))
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *CampaignRepository) FindByID(ctx context.Context, id uint) (domain.Campaign, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Campaign{}, err
	}

	return r.daoToDomain(found), nil
}

func (r *CampaignRepository) FindByShopID(ctx context.Context, shopID string) ([]domain.Campaign, error) {
	found, err := r.dao.FindByShopID(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByShopID -> %w", err)
	}

	campaigns := make([]domain.Campaign, 0, len(found))
	for _, c := range found {
		campaigns = append(campaigns, r.daoToDomain(c))
	}

	return campaigns, nil
}

func (r *CampaignRepository) Update(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	daoCampaign := r.domainToDao(campaign)

	updated, err := r.dao.Update(ctx, daoCampaign, daoCampaign.Prizes)
	if err != nil {
		return domain.Campaign{}, err
	}

	return r.daoToDomain(updated), nil
}

func (r *CampaignRepository) UpdateStatus(ctx context.Context, id uint, status domain.CampaignStatus) error {
	return r.dao.UpdateStatus(ctx, id, string(status))
}

func (r *CampaignRepository) Delete(ctx context.Context, id uint) error {
	return r.dao.Delete(ctx, id)
}

func (r *CampaignRepository) ReserveSpinSlot(ctx context.Context, id uint, now time.Time) (int, error) {
	return r.dao.ReserveSpinSlot(ctx, id, now)
}

func (r *CampaignRepository) domainToDao(c domain.Campaign) dao.Campaign {
	prizes := make([]dao.Prize, len(c.Prizes))
	for i, p := range c.Prizes {
		prizes[i] = dao.Prize{
			ID:         p.ID,
			CampaignID: c.ID,
			Label:      p.Label,
			Kind:       string(p.Kind),
			Value:      p.Value,
			Weight:     p.Weight,
			Position:   i,
		}
	}

	return dao.Campaign{
		ID:                  c.ID,
		ShopID:              c.ShopID,
		Name:                c.Name,
		Status:              string(c.Status),
		StartDate:           c.StartDate,
		EndDate:             c.EndDate,
		SpinsLimit:          c.SpinsLimit,
		SpinCount:           c.SpinCount,
		RequireVerification: c.RequireVerification,
		Prizes:              prizes,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func (r *CampaignRepository) daoToDomain(c dao.Campaign) domain.Campaign {
	prizes := make([]domain.Prize, len(c.Prizes))
	for i, p := range c.Prizes {
		prizes[i] = domain.Prize{
			ID:     p.ID,
			Label:  p.Label,
			Kind:   domain.PrizeKind(p.Kind),
			Value:  p.Value,
			Weight: p.Weight,
		}
	}

	return domain.Campaign{
		ID:                  c.ID,
		ShopID:              c.ShopID,
		Name:                c.Name,
		Status:              domain.CampaignStatus(c.Status),
		StartDate:           c.StartDate,
		EndDate:             c.EndDate,
		SpinsLimit:          c.SpinsLimit,
		SpinCount:           c.SpinCount,
		RequireVerification: c.RequireVerification,
		Prizes:              prizes,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}
