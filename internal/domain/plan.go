package domain

// Plan is a subscription tier shown to merchants. Billing happens elsewhere;
// the API only serves the catalogue.
type Plan struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	PriceCents   int      `json:"price_cents"`
	Period       string   `json:"period"`
	SpinsPerMo   int      `json:"spins_per_month"`
	MaxCampaigns int      `json:"max_campaigns"`
	Features     []string `json:"features"`
	Badge        string   `json:"badge,omitempty"`
}
