package domain

import "time"

type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusInactive  CampaignStatus = "inactive"
	CampaignStatusScheduled CampaignStatus = "scheduled"
	CampaignStatusEnded     CampaignStatus = "ended"
)

type PrizeKind string

const (
	PrizeKindPercentage   PrizeKind = "percentage-discount"
	PrizeKindFixedAmount  PrizeKind = "fixed-amount"
	PrizeKindFreeShipping PrizeKind = "free-shipping"
	PrizeKindNoWin        PrizeKind = "no-win"
)

type Campaign struct {
	ID                  uint           `json:"id"`
	ShopID              string         `json:"shop_id"`
	Name                string         `json:"name"`
	Status              CampaignStatus `json:"status"`
	StartDate           time.Time      `json:"start_date"`
	EndDate             time.Time      `json:"end_date"`
	SpinsLimit          int            `json:"spins_limit"`
	SpinCount           int            `json:"spin_count"`
	RequireVerification bool           `json:"require_verification"`
	Prizes              []Prize        `json:"prizes"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// Prize is one weighted outcome on a campaign's wheel. Weights are relative
// probability mass, compared only within one campaign's table.
type Prize struct {
	ID     uint      `json:"id"`
	Label  string    `json:"label"`
	Kind   PrizeKind `json:"kind"`
	Value  float64   `json:"value"`
	Weight float64   `json:"weight"`
}

// IsOpen reports whether the campaign accepts spins at the given instant.
// Status wins for inactive campaigns; the time window is evaluated live.
func (c *Campaign) IsOpen(now time.Time) bool {
	if c.Status != CampaignStatusActive {
		return false
	}
	if now.Before(c.StartDate) || now.After(c.EndDate) {
		return false
	}

	return true
}

// TotalWeight sums the campaign's prize weights.
func (c *Campaign) TotalWeight() float64 {
	var total float64
	for _, p := range c.Prizes {
		total += p.Weight
	}

	return total
}
