package service

import (
	"context"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/spintowin/spinwheel-api/internal/domain"
	"github.com/spintowin/spinwheel-api/internal/repository"
)

var (
	ErrCampaignNotFound  = repository.ErrCampaignNotFound
	ErrInvalidDates      = errors.New("campaign start date must be before end date")
	ErrInvalidSpinsLimit = errors.New("campaign spins limit must not be negative")
	ErrInvalidPrizeKind  = errors.New("unknown prize kind")
	ErrNegativeWeight    = errors.New("prize weight must not be negative")
	ErrInvalidStatus     = errors.New("unknown campaign status")
)

const campaignCacheSize = 256

type CampaignRepository interface {
	Create(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error)
	FindByID(ctx context.Context, id uint) (domain.Campaign, error)
	FindByShopID(ctx context.Context, shopID string) ([]domain.Campaign, error)
	Update(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error)
	UpdateStatus(ctx context.Context, id uint, status domain.CampaignStatus) error
	Delete(ctx context.Context, id uint) error
}

type CampaignService struct {
	repo  CampaignRepository
	cache *lru.Cache
}

func NewCampaignService(repo CampaignRepository) *CampaignService {
	// lru.New only fails on a non-positive size.
	cache, _ := lru.New(campaignCacheSize)

	return &CampaignService{
		repo:  repo,
		cache: cache,
	}
}

// ValidateCampaign enforces the save-time invariants: date ordering, a
// non-negative cap, known prize kinds, non-negative weights and at least one
// prize with positive weight. A table that could never produce an outcome is
// a configuration defect and is rejected here, not discovered at spin time.
func ValidateCampaign(campaign domain.Campaign) error {
	if !campaign.StartDate.Before(campaign.EndDate) {
		return ErrInvalidDates
	}
	if campaign.SpinsLimit < 0 {
		return ErrInvalidSpinsLimit
	}

	switch campaign.Status {
	case domain.CampaignStatusActive, domain.CampaignStatusInactive,
		domain.CampaignStatusScheduled, domain.CampaignStatusEnded:
	default:
		return ErrInvalidStatus
	}

	for _, prize := range campaign.Prizes {
		switch prize.Kind {
		case domain.PrizeKindPercentage, domain.PrizeKindFixedAmount,
			domain.PrizeKindFreeShipping, domain.PrizeKindNoWin:
		default:
			return fmt.Errorf("%w: %q", ErrInvalidPrizeKind, prize.Kind)
		}
		if prize.Weight < 0 {
			return fmt.Errorf("%w: %q", ErrNegativeWeight, prize.Label)
		}
	}

	if campaign.TotalWeight() <= 0 {
		return ErrNoEligiblePrizes
	}

	return nil
}

func (s *CampaignService) CreateCampaign(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	if err := ValidateCampaign(campaign); err != nil {
		return domain.Campaign{}, err
	}

	created, err := s.repo.Create(ctx, campaign)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *CampaignService) GetCampaign(ctx context.Context, id uint) (domain.Campaign, error) {
	campaign, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return domain.Campaign{}, ErrCampaignNotFound
		}

		return domain.Campaign{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return campaign, nil
}

// GetWheel serves the widget-facing view of a campaign through an LRU cache.
// Spin-time decisions never read this cache; it only feeds the rendering
// layer, so brief staleness is acceptable and admin writes invalidate it.
func (s *CampaignService) GetWheel(ctx context.Context, id uint) (domain.Campaign, error) {
	if cached, ok := s.cache.Get(id); ok {
		return cached.(domain.Campaign), nil
	}

	campaign, err := s.GetCampaign(ctx, id)
	if err != nil {
		return domain.Campaign{}, err
	}

	s.cache.Add(id, campaign)

	return campaign, nil
}

func (s *CampaignService) ListCampaigns(ctx context.Context, shopID string) ([]domain.Campaign, error) {
	campaigns, err := s.repo.FindByShopID(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByShopID -> %w", err)
	}

	return campaigns, nil
}

// UpdateCampaign applies partial changes: the handler merges the request
// into the stored campaign before calling here, so validation always sees
// the complete post-merge state.
func (s *CampaignService) UpdateCampaign(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	if err := ValidateCampaign(campaign); err != nil {
		return domain.Campaign{}, err
	}

	updated, err := s.repo.Update(ctx, campaign)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return domain.Campaign{}, ErrCampaignNotFound
		}

		return domain.Campaign{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	s.cache.Remove(campaign.ID)

	return updated, nil
}

func (s *CampaignService) SetStatus(ctx context.Context, id uint, status domain.CampaignStatus) error {
	switch status {
	case domain.CampaignStatusActive, domain.CampaignStatusInactive,
		domain.CampaignStatusScheduled, domain.CampaignStatusEnded:
	default:
		return ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return ErrCampaignNotFound
		}

		return fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}

	s.cache.Remove(id)

	return nil
}

func (s *CampaignService) DeleteCampaign(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return ErrCampaignNotFound
		}

		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	s.cache.Remove(id)

	return nil
}
