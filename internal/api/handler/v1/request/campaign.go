package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

const dateLayout = "2006-01-02"

type PrizeInput struct {
	Label  string  `json:"label"`
	Kind   string  `json:"kind"`
	Value  float64 `json:"value"`
	Weight float64 `json:"weight"`
}

func (p PrizeInput) Validate() error {
	return validation.ValidateStruct(
		&p,
		validation.Field(&p.Label, validation.Required, validation.Length(1, 100)),
		validation.Field(&p.Kind, validation.Required,
			validation.In("percentage-discount", "fixed-amount", "free-shipping", "no-win")),
		validation.Field(&p.Weight, validation.Min(0.0)),
	)
}

type CreateCampaignRequest struct {
	ShopID              string       `json:"shopId" binding:"required"`
	Name                string       `json:"name" binding:"required"`
	Status              string       `json:"status"`
	StartDate           string       `json:"startDate" binding:"required" format:"YYYY-MM-DD"`
	EndDate             string       `json:"endDate" binding:"required" format:"YYYY-MM-DD"`
	SpinsLimit          int          `json:"spinsLimit" binding:"required"`
	RequireVerification *bool        `json:"requireVerification"`
	Prizes              []PrizeInput `json:"prizes" binding:"required"`
}

func (req *CreateCampaignRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ShopID, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Status,
			validation.In("active", "inactive", "scheduled", "ended")),
		validation.Field(&req.StartDate, validation.Required, validation.Date(dateLayout)),
		validation.Field(&req.EndDate, validation.Required, validation.Date(dateLayout)),
		validation.Field(&req.SpinsLimit, validation.Required, validation.Min(1)),
		validation.Field(&req.Prizes, validation.Required, validation.Length(1, 50)),
	)
}

// UpdateCampaignRequest carries partial fields; nil pointers leave the
// stored value untouched.
type UpdateCampaignRequest struct {
	Name                *string      `json:"name"`
	Status              *string      `json:"status"`
	StartDate           *string      `json:"startDate" format:"YYYY-MM-DD"`
	EndDate             *string      `json:"endDate" format:"YYYY-MM-DD"`
	SpinsLimit          *int         `json:"spinsLimit"`
	RequireVerification *bool        `json:"requireVerification"`
	Prizes              []PrizeInput `json:"prizes"`
}

func (req *UpdateCampaignRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(2, 100)),
		validation.Field(&req.Status,
			validation.In("active", "inactive", "scheduled", "ended")),
		validation.Field(&req.StartDate, validation.Date(dateLayout)),
		validation.Field(&req.EndDate, validation.Date(dateLayout)),
		validation.Field(&req.SpinsLimit, validation.Min(1)),
	)
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (req *SetStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required,
			validation.In("active", "inactive", "scheduled", "ended")),
	)
}
