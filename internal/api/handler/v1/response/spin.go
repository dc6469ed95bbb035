package response

import "github.com/spintowin/spinwheel-api/internal/domain"

type SpinResponse struct {
	PrizeLabel string  `json:"prizeLabel"`
	PrizeKind  string  `json:"prizeKind"`
	PrizeValue float64 `json:"prizeValue"`
	Code       *string `json:"code"`
}

func NewSpinResponse(result domain.SpinResult) SpinResponse {
	resp := SpinResponse{
		PrizeLabel: result.Prize.Label,
		PrizeKind:  string(result.Prize.Kind),
		PrizeValue: result.Prize.Value,
	}
	if result.Code != "" {
		resp.Code = &result.Code
	}

	return resp
}

type VerifyResponse struct {
	Token string `json:"token"`
}

// WheelResponse is the widget-facing view of a campaign. Weights never
// leave the trusted side.
type WheelResponse struct {
	CampaignID          uint         `json:"campaignId"`
	Name                string       `json:"name"`
	RequireVerification bool         `json:"requireVerification"`
	Prizes              []WheelPrize `json:"prizes"`
}

type WheelPrize struct {
	Label string  `json:"label"`
	Kind  string  `json:"kind"`
	Value float64 `json:"value"`
}

func NewWheelResponse(campaign domain.Campaign) WheelResponse {
	prizes := make([]WheelPrize, len(campaign.Prizes))
	for i, p := range campaign.Prizes {
		prizes[i] = WheelPrize{
			Label: p.Label,
			Kind:  string(p.Kind),
			Value: p.Value,
		}
	}

	return WheelResponse{
		CampaignID:          campaign.ID,
		Name:                campaign.Name,
		RequireVerification: campaign.RequireVerification,
		Prizes:              prizes,
	}
}
