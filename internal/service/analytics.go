package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spintowin/spinwheel-api/internal/domain"
	"github.com/spintowin/spinwheel-api/internal/repository"
)

type AnalyticsLedger interface {
	CampaignTotals(ctx context.Context, campaignID uint, since time.Time) (int64, int64, error)
	SpinsByDay(ctx context.Context, campaignID uint, since time.Time) ([]domain.DayCount, error)
	CountsByPrize(ctx context.Context, campaignID uint, since time.Time) ([]domain.PrizeCount, error)
	ShopTotals(ctx context.Context, shopID string) (int64, int64, int64, error)
}

type AnalyticsCampaignRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Campaign, error)
}

// AnalyticsService is a read-only aggregation over the participation ledger.
// Nothing here feeds back into spin-time decisions.
type AnalyticsService struct {
	ledger    AnalyticsLedger
	campaigns AnalyticsCampaignRepository
	now       func() time.Time
}

func NewAnalyticsService(ledger AnalyticsLedger, campaigns AnalyticsCampaignRepository) *AnalyticsService {
	return &AnalyticsService{
		ledger:    ledger,
		campaigns: campaigns,
		now:       time.Now,
	}
}

func (s *AnalyticsService) CampaignAnalytics(ctx context.Context, campaignID uint, days int) (domain.CampaignAnalytics, error) {
	if _, err := s.campaigns.FindByID(ctx, campaignID); err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return domain.CampaignAnalytics{}, ErrCampaignNotFound
		}

		return domain.CampaignAnalytics{}, fmt.Errorf("s.campaigns.FindByID -> %w", err)
	}

	if days <= 0 {
		days = 30
	}
	since := s.now().AddDate(0, 0, -days)

	totalSpins, totalCodes, err := s.ledger.CampaignTotals(ctx, campaignID, since)
	if err != nil {
		return domain.CampaignAnalytics{}, fmt.Errorf("s.ledger.CampaignTotals -> %w", err)
	}

	byDay, err := s.ledger.SpinsByDay(ctx, campaignID, since)
	if err != nil {
		return domain.CampaignAnalytics{}, fmt.Errorf("s.ledger.SpinsByDay -> %w", err)
	}

	byPrize, err := s.ledger.CountsByPrize(ctx, campaignID, since)
	if err != nil {
		return domain.CampaignAnalytics{}, fmt.Errorf("s.ledger.CountsByPrize -> %w", err)
	}

	return domain.CampaignAnalytics{
		CampaignID:     campaignID,
		TotalSpins:     totalSpins,
		TotalWins:      totalCodes,
		TotalCodes:     totalCodes,
		ConversionRate: conversionRate(totalCodes, totalSpins),
		SpinsByDay:     byDay,
		CountsByPrize:  byPrize,
	}, nil
}

func (s *AnalyticsService) ShopAnalytics(ctx context.Context, shopID string) (domain.ShopAnalytics, error) {
	campaigns, spins, codes, err := s.ledger.ShopTotals(ctx, shopID)
	if err != nil {
		return domain.ShopAnalytics{}, fmt.Errorf("s.ledger.ShopTotals -> %w", err)
	}

	return domain.ShopAnalytics{
		ShopID:         shopID,
		TotalCampaigns: campaigns,
		TotalSpins:     spins,
		TotalCodes:     codes,
		ConversionRate: conversionRate(codes, spins),
	}, nil
}

func conversionRate(codes, spins int64) float64 {
	if spins == 0 {
		return 0
	}

	return float64(codes) / float64(spins) * 100
}
