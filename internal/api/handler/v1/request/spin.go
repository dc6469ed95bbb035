package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
)

var emailPattern = regexp2.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`, regexp2.None)

func validEmail(value interface{}) error {
	email, _ := value.(string)

	ok, err := emailPattern.MatchString(email)
	if err != nil || !ok {
		return errors.New("must be a valid email address")
	}

	return nil
}

type ChallengeRequest struct {
	Email string `json:"email" binding:"required"`
}

func (req *ChallengeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, validation.Length(3, 254), validation.By(validEmail)),
	)
}

type VerifyRequest struct {
	Email string `json:"email" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

func (req *VerifyRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, validation.Length(3, 254), validation.By(validEmail)),
		validation.Field(&req.Code, validation.Required, validation.Length(6, 6)),
	)
}

type SpinRequest struct {
	CampaignID uint   `json:"campaignId" binding:"required"`
	Email      string `json:"email" binding:"required"`
}

func (req *SpinRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CampaignID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Email, validation.Required, validation.Length(3, 254), validation.By(validEmail)),
	)
}
