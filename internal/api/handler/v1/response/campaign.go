package response

import (
	"time"

	"github.com/spintowin/spinwheel-api/internal/domain"
)

// CampaignResponse is the admin-facing view and includes prize weights,
// unlike WheelResponse.
type CampaignResponse struct {
	ID                  uint            `json:"id"`
	ShopID              string          `json:"shopId"`
	Name                string          `json:"name"`
	Status              string          `json:"status"`
	StartDate           time.Time       `json:"startDate"`
	EndDate             time.Time       `json:"endDate"`
	SpinsLimit          int             `json:"spinsLimit"`
	SpinCount           int             `json:"spinCount"`
	RequireVerification bool            `json:"requireVerification"`
	Prizes              []PrizeResponse `json:"prizes"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

type PrizeResponse struct {
	ID     uint    `json:"id"`
	Label  string  `json:"label"`
	Kind   string  `json:"kind"`
	Value  float64 `json:"value"`
	Weight float64 `json:"weight"`
}

func NewCampaignResponse(campaign domain.Campaign) CampaignResponse {
	prizes := make([]PrizeResponse, 0, len(campaign.Prizes))
	for _, prize := range campaign.Prizes {
		prizes = append(prizes, PrizeResponse{
			ID:     prize.ID,
			Label:  prize.Label,
			Kind:   string(prize.Kind),
			Value:  prize.Value,
			Weight: prize.Weight,
		})
	}

	return CampaignResponse{
		ID:                  campaign.ID,
		ShopID:              campaign.ShopID,
		Name:                campaign.Name,
		Status:              string(campaign.Status),
		StartDate:           campaign.StartDate,
		EndDate:             campaign.EndDate,
		SpinsLimit:          campaign.SpinsLimit,
		SpinCount:           campaign.SpinCount,
		RequireVerification: campaign.RequireVerification,
		Prizes:              prizes,
		CreatedAt:           campaign.CreatedAt,
		UpdatedAt:           campaign.UpdatedAt,
	}
}

func NewCampaignsResponse(campaigns []domain.Campaign) []CampaignResponse {
	resp := make([]CampaignResponse, 0, len(campaigns))
	for _, campaign := range campaigns {
		resp = append(resp, NewCampaignResponse(campaign))
	}

	return resp
}
