package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spintowin/spinwheel-api/internal/domain"
	"github.com/spintowin/spinwheel-api/internal/metrics"
	"github.com/spintowin/spinwheel-api/internal/notifier"
	"github.com/spintowin/spinwheel-api/internal/pkg/draw"
	"github.com/spintowin/spinwheel-api/internal/pkg/promocode"
	"github.com/spintowin/spinwheel-api/internal/repository"
)

var (
	ErrCampaignClosed       = repository.ErrCampaignClosed
	ErrSpinCapReached       = repository.ErrSpinCapReached
	ErrAlreadyParticipated  = repository.ErrAlreadyParticipated
	ErrNoEligiblePrizes     = draw.ErrNoEligiblePrizes
	ErrVerificationRequired = errors.New("identity verification required for this campaign")
)

// NormalizeIdentity canonicalizes the participant key so the ledger's
// uniqueness constraint cannot be sidestepped by case or whitespace.
func NormalizeIdentity(identity string) string {
	return strings.ToLower(strings.TrimSpace(identity))
}

type SpinCampaignRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Campaign, error)
	ReserveSpinSlot(ctx context.Context, id uint, now time.Time) (int, error)
}

type ParticipationLedger interface {
	HasParticipated(ctx context.Context, campaignID uint, identity string) (bool, error)
	Record(ctx context.Context, record domain.ParticipationRecord) (domain.ParticipationRecord, error)
}

type SpinService struct {
	campaigns  SpinCampaignRepository
	ledger     ParticipationLedger
	notifier   notifier.Notifier
	source     draw.Source
	codeLength int
	now        func() time.Time
}

func NewSpinService(campaigns SpinCampaignRepository, ledger ParticipationLedger, n notifier.Notifier, codeLength int) *SpinService {
	return &SpinService{
		campaigns:  campaigns,
		ledger:     ledger,
		notifier:   n,
		source:     draw.CryptoSource{},
		codeLength: codeLength,
		now:        time.Now,
	}
}

// Spin runs the whole flow: open check, gate check, ledger check, slot
// reservation, prize draw, code issuance and the atomic ledger write.
// verifiedIdentity is the identity proven by the OTP step, empty when the
// caller presented no token.
func (s *SpinService) Spin(ctx context.Context, campaignID uint, identity, verifiedIdentity string) (domain.SpinResult, error) {
	identity = NormalizeIdentity(identity)

	campaign, err := s.campaigns.FindByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return domain.SpinResult{}, ErrCampaignNotFound
		}

		return domain.SpinResult{}, fmt.Errorf("s.campaigns.FindByID -> %w", err)
	}

	// Fail fast on the read; the conditional UPDATE in ReserveSpinSlot
	// remains the authoritative check if the campaign closes in between.
	if !campaign.IsOpen(s.now()) {
		metrics.SpinsTotal.WithLabelValues("campaign_closed").Inc()
		return domain.SpinResult{}, ErrCampaignClosed
	}

	if campaign.RequireVerification && NormalizeIdentity(verifiedIdentity) != identity {
		metrics.SpinsTotal.WithLabelValues("verification_required").Inc()
		return domain.SpinResult{}, ErrVerificationRequired
	}

	// Checked before the slot reservation so a repeat visitor is told they
	// already played even when the campaign has since hit its cap. The
	// strict once-only guarantee is the ledger insert below; this read just
	// routes the common case without burning a slot.
	participated, err := s.ledger.HasParticipated(ctx, campaignID, identity)
	if err != nil {
		return domain.SpinResult{}, fmt.Errorf("s.ledger.HasParticipated -> %w", err)
	}
	if participated {
		metrics.SpinsTotal.WithLabelValues("already_participated").Inc()
		return domain.SpinResult{}, ErrAlreadyParticipated
	}

	if _, err = s.campaigns.ReserveSpinSlot(ctx, campaignID, s.now()); err != nil {
		switch {
		case errors.Is(err, repository.ErrCampaignNotFound):
			return domain.SpinResult{}, ErrCampaignNotFound
		case errors.Is(err, repository.ErrCampaignClosed):
			metrics.SpinsTotal.WithLabelValues("campaign_closed").Inc()
			return domain.SpinResult{}, ErrCampaignClosed
		case errors.Is(err, repository.ErrSpinCapReached):
			metrics.SpinsTotal.WithLabelValues("cap_reached").Inc()
			return domain.SpinResult{}, ErrSpinCapReached
		}

		return domain.SpinResult{}, fmt.Errorf("s.campaigns.ReserveSpinSlot -> %w", err)
	}

	prize, err := draw.Select(campaign.Prizes, s.source)
	if err != nil {
		if errors.Is(err, draw.ErrNoEligiblePrizes) {
			metrics.SpinsTotal.WithLabelValues("no_eligible_prizes").Inc()
			return domain.SpinResult{}, ErrNoEligiblePrizes
		}

		return domain.SpinResult{}, fmt.Errorf("draw.Select -> %w", err)
	}

	var code string
	if prize.Kind != domain.PrizeKindNoWin {
		if code, err = promocode.Generate(s.codeLength); err != nil {
			return domain.SpinResult{}, fmt.Errorf("promocode.Generate -> %w", err)
		}
		code = promocode.Prefix + code
	}

	_, err = s.ledger.Record(ctx, domain.ParticipationRecord{
		CampaignID: campaignID,
		Identity:   identity,
		PrizeID:    prize.ID,
		PrizeLabel: prize.Label,
		Code:       code,
	})
	if err != nil {
		// A concurrent spin for the same identity won the insert race.
		if errors.Is(err, repository.ErrAlreadyParticipated) {
			metrics.SpinsTotal.WithLabelValues("already_participated").Inc()
			return domain.SpinResult{}, ErrAlreadyParticipated
		}

		return domain.SpinResult{}, fmt.Errorf("s.ledger.Record -> %w", err)
	}

	metrics.SpinsTotal.WithLabelValues("success").Inc()
	if code != "" {
		metrics.CodesIssuedTotal.Inc()

		// Outcome is durable before any outbound I/O; delivery failure
		// never loses the claim.
		if err = s.notifier.Send(ctx, identity, fmt.Sprintf("You won %s! Your code: %s", prize.Label, code)); err != nil {
			zap.L().Warn("failed to deliver redemption code",
				zap.String("identity", identity),
				zap.Uint("campaign_id", campaignID),
				zap.Error(err),
			)
		}
	}

	return domain.SpinResult{Prize: prize, Code: code}, nil
}
