package domain

import "time"

// ParticipationRecord is the ledger row proving an identity has spun a
// campaign. At most one record exists per (campaign, identity) pair; records
// are created on a successful spin and never mutated.
type ParticipationRecord struct {
	ID         uint      `json:"id"`
	CampaignID uint      `json:"campaign_id"`
	Identity   string    `json:"identity"`
	PrizeID    uint      `json:"prize_id"`
	PrizeLabel string    `json:"prize_label"`
	Code       string    `json:"code,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// SpinResult is the outcome of one completed spin.
type SpinResult struct {
	Prize Prize
	Code  string
}
