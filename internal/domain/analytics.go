package domain

// CampaignAnalytics aggregates a campaign's participation ledger for the
// admin dashboard. All fields are derived; nothing here feeds back into
// spin-time decisions.
type CampaignAnalytics struct {
	CampaignID     uint         `json:"campaign_id"`
	TotalSpins     int64        `json:"total_spins"`
	TotalWins      int64        `json:"total_wins"`
	TotalCodes     int64        `json:"total_codes"`
	ConversionRate float64      `json:"conversion_rate"`
	SpinsByDay     []DayCount   `json:"spins_by_day"`
	CountsByPrize  []PrizeCount `json:"counts_by_prize"`
}

type DayCount struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

type PrizeCount struct {
	PrizeID    uint   `json:"prize_id"`
	PrizeLabel string `json:"prize_label"`
	Count      int64  `json:"count"`
}

// ShopAnalytics rolls up every campaign belonging to one shop.
type ShopAnalytics struct {
	ShopID         string  `json:"shop_id"`
	TotalCampaigns int64   `json:"total_campaigns"`
	TotalSpins     int64   `json:"total_spins"`
	TotalCodes     int64   `json:"total_codes"`
	ConversionRate float64 `json:"conversion_rate"`
}
