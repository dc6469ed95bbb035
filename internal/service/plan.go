package service

import "github.com/spintowin/spinwheel-api/internal/domain"

// PlanService serves the subscription tier catalogue. Tiers are static;
// billing is handled outside this service.
type PlanService struct {
	plans []domain.Plan
}

func NewPlanService() *PlanService {
	return &PlanService{
		plans: []domain.Plan{
			{
				ID:           "free",
				Name:         "Free",
				Description:  "Get started with a single campaign",
				PriceCents:   0,
				Period:       "month",
				SpinsPerMo:   500,
				MaxCampaigns: 1,
				Features: []string{
					"1 active campaign",
					"500 spins per month",
					"Email verification",
					"Basic analytics",
				},
			},
			{
				ID:           "pro",
				Name:         "Pro",
				Description:  "For growing stores",
				PriceCents:   2900,
				Period:       "month",
				SpinsPerMo:   10000,
				MaxCampaigns: 10,
				Badge:        "Popular",
				Features: []string{
					"10 active campaigns",
					"10,000 spins per month",
					"Custom prize tables",
					"Daily analytics breakdown",
				},
			},
			{
				ID:           "enterprise",
				Name:         "Enterprise",
				Description:  "Unlimited scale for large merchants",
				PriceCents:   9900,
				Period:       "month",
				SpinsPerMo:   0,
				MaxCampaigns: 0,
				Features: []string{
					"Unlimited campaigns",
					"Unlimited spins",
					"Priority support",
					"Shop-wide analytics",
				},
			},
		},
	}
}

func (s *PlanService) ListPlans() []domain.Plan {
	return s.plans
}
