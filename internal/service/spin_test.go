package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spintowin/spinwheel-api/internal/domain"
	"github.com/spintowin/spinwheel-api/internal/repository"
)

// stubCampaignRepo mimics the slot reservation semantics of the real DAO:
// the open check and the cap check happen under one lock, standing in for
// the conditional UPDATE.
type stubCampaignRepo struct {
	mu       sync.Mutex
	campaign domain.Campaign
}

func (r *stubCampaignRepo) FindByID(_ context.Context, id uint) (domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id != r.campaign.ID {
		return domain.Campaign{}, repository.ErrCampaignNotFound
	}

	return r.campaign, nil
}

func (r *stubCampaignRepo) ReserveSpinSlot(_ context.Context, id uint, now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id != r.campaign.ID {
		return 0, repository.ErrCampaignNotFound
	}
	if !r.campaign.IsOpen(now) {
		return 0, repository.ErrCampaignClosed
	}
	if r.campaign.SpinsLimit > 0 && r.campaign.SpinCount >= r.campaign.SpinsLimit {
		return 0, repository.ErrSpinCapReached
	}

	r.campaign.SpinCount++

	return r.campaign.SpinCount, nil
}

// stubLedger enforces one record per (campaign, identity) the way the
// database unique index does.
type stubLedger struct {
	mu      sync.Mutex
	records map[string]domain.ParticipationRecord
}

func newStubLedger() *stubLedger {
	return &stubLedger{records: make(map[string]domain.ParticipationRecord)}
}

func ledgerKey(campaignID uint, identity string) string {
	return fmt.Sprintf("%d/%s", campaignID, identity)
}

func (l *stubLedger) HasParticipated(_ context.Context, campaignID uint, identity string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, ok := l.records[ledgerKey(campaignID, identity)]

	return ok, nil
}

func (l *stubLedger) Record(_ context.Context, record domain.ParticipationRecord) (domain.ParticipationRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := ledgerKey(record.CampaignID, record.Identity)
	if _, ok := l.records[key]; ok {
		return domain.ParticipationRecord{}, repository.ErrAlreadyParticipated
	}

	l.records[key] = record

	return record, nil
}

type stubNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *stubNotifier) Send(_ context.Context, _, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.messages = append(n.messages, message)

	return nil
}

func (n *stubNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return len(n.messages)
}

func openCampaign() domain.Campaign {
	now := time.Now()

	return domain.Campaign{
		ID:         1,
		ShopID:     "shop-1",
		Name:       "Summer Sale",
		Status:     domain.CampaignStatusActive,
		StartDate:  now.Add(-24 * time.Hour),
		EndDate:    now.Add(24 * time.Hour),
		SpinsLimit: 100,
		Prizes: []domain.Prize{
			{ID: 1, Label: "10% off", Kind: domain.PrizeKindPercentage, Value: 10, Weight: 50},
			{ID: 2, Label: "Free shipping", Kind: domain.PrizeKindFreeShipping, Weight: 50},
		},
	}
}

func newSpinFixture(campaign domain.Campaign) (*SpinService, *stubCampaignRepo, *stubLedger, *stubNotifier) {
	repo := &stubCampaignRepo{campaign: campaign}
	ledger := newStubLedger()
	n := &stubNotifier{}

	return NewSpinService(repo, ledger, n, 10), repo, ledger, n
}

func TestSpin_Success(t *testing.T) {
	svc, _, ledger, n := newSpinFixture(openCampaign())

	result, err := svc.Spin(context.Background(), 1, "alice@example.com", "")

	require.NoError(t, err)
	assert.NotZero(t, result.Prize.ID)
	assert.Regexp(t, `^SPIN-[A-Z2-9]{10}$`, result.Code)

	participated, err := ledger.HasParticipated(context.Background(), 1, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, participated)
	assert.Equal(t, 1, n.count())
}

func TestSpin_OneRedemptionPerIdentity(t *testing.T) {
	svc, _, _, _ := newSpinFixture(openCampaign())

	_, err := svc.Spin(context.Background(), 1, "alice@example.com", "")
	require.NoError(t, err)

	// Case and whitespace variants collapse onto the same ledger key.
	_, err = svc.Spin(context.Background(), 1, "  ALICE@Example.com ", "")
	assert.ErrorIs(t, err, ErrAlreadyParticipated)

	// A different identity still gets its spin.
	_, err = svc.Spin(context.Background(), 1, "bob@example.com", "")
	assert.NoError(t, err)
}

func TestSpin_CampaignNotFound(t *testing.T) {
	svc, _, _, _ := newSpinFixture(openCampaign())

	_, err := svc.Spin(context.Background(), 42, "alice@example.com", "")

	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestSpin_CampaignClosed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *domain.Campaign)
	}{
		{
			name:   "inactive status",
			mutate: func(c *domain.Campaign) { c.Status = domain.CampaignStatusInactive },
		},
		{
			name:   "scheduled status",
			mutate: func(c *domain.Campaign) { c.Status = domain.CampaignStatusScheduled },
		},
		{
			name: "window not yet open",
			mutate: func(c *domain.Campaign) {
				c.StartDate = time.Now().Add(time.Hour)
				c.EndDate = time.Now().Add(48 * time.Hour)
			},
		},
		{
			name: "window already over",
			mutate: func(c *domain.Campaign) {
				c.StartDate = time.Now().Add(-48 * time.Hour)
				c.EndDate = time.Now().Add(-time.Hour)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			campaign := openCampaign()
			tt.mutate(&campaign)
			svc, repo, _, _ := newSpinFixture(campaign)

			_, err := svc.Spin(context.Background(), 1, "alice@example.com", "")

			assert.ErrorIs(t, err, ErrCampaignClosed)
			// The closed check fails on the read, never touching a slot.
			assert.Zero(t, repo.campaign.SpinCount)
		})
	}
}

// A closed campaign reports closed even to unverified callers; the open
// check runs before the verification gate.
func TestSpin_ClosedBeforeVerificationGate(t *testing.T) {
	campaign := openCampaign()
	campaign.Status = domain.CampaignStatusEnded
	campaign.RequireVerification = true
	svc, _, _, _ := newSpinFixture(campaign)

	_, err := svc.Spin(context.Background(), 1, "alice@example.com", "")

	assert.ErrorIs(t, err, ErrCampaignClosed)
}

func TestSpin_VerificationGate(t *testing.T) {
	campaign := openCampaign()
	campaign.RequireVerification = true
	svc, _, _, _ := newSpinFixture(campaign)

	_, err := svc.Spin(context.Background(), 1, "alice@example.com", "")
	assert.ErrorIs(t, err, ErrVerificationRequired)

	// A token proving a different identity does not pass the gate.
	_, err = svc.Spin(context.Background(), 1, "alice@example.com", "mallory@example.com")
	assert.ErrorIs(t, err, ErrVerificationRequired)

	// The proven identity matches after normalization.
	_, err = svc.Spin(context.Background(), 1, "alice@example.com", " Alice@Example.COM ")
	assert.NoError(t, err)
}

func TestSpin_NoWinIssuesNoCode(t *testing.T) {
	campaign := openCampaign()
	campaign.Prizes = []domain.Prize{
		{ID: 9, Label: "Better luck next time", Kind: domain.PrizeKindNoWin, Weight: 1},
	}
	svc, _, ledger, n := newSpinFixture(campaign)

	result, err := svc.Spin(context.Background(), 1, "alice@example.com", "")

	require.NoError(t, err)
	assert.Empty(t, result.Code)
	assert.Equal(t, 0, n.count())

	// The no-win spin is still on the ledger, so no second try.
	participated, err := ledger.HasParticipated(context.Background(), 1, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, participated)
}

func TestSpin_CapUnderConcurrency(t *testing.T) {
	const spinCap = 3
	const contenders = 20

	campaign := openCampaign()
	campaign.SpinsLimit = spinCap
	svc, repo, _, _ := newSpinFixture(campaign)

	var wg sync.WaitGroup
	errs := make([]error, contenders)
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			identity := fmt.Sprintf("user%d@example.com", i)
			_, errs[i] = svc.Spin(context.Background(), 1, identity, "")
		}(i)
	}
	wg.Wait()

	var successes, capHits int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, ErrSpinCapReached):
			capHits++
		}
	}

	assert.Equal(t, spinCap, successes)
	assert.Equal(t, contenders-spinCap, capHits)
	assert.Equal(t, spinCap, repo.campaign.SpinCount)
}

// A repeat visitor on a cap-exhausted campaign hears "already played", not
// "cap reached"; only genuinely new identities get the cap error.
func TestSpin_SingleSlotScenario(t *testing.T) {
	campaign := openCampaign()
	campaign.SpinsLimit = 1
	campaign.Prizes = []domain.Prize{
		{ID: 1, Label: "10% OFF", Kind: domain.PrizeKindPercentage, Value: 10, Weight: 100},
	}
	svc, _, _, _ := newSpinFixture(campaign)

	result, err := svc.Spin(context.Background(), 1, "alice@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, "10% OFF", result.Prize.Label)
	assert.NotEmpty(t, result.Code)

	_, err = svc.Spin(context.Background(), 1, "alice@example.com", "")
	assert.ErrorIs(t, err, ErrAlreadyParticipated)

	_, err = svc.Spin(context.Background(), 1, "bob@example.com", "")
	assert.ErrorIs(t, err, ErrSpinCapReached)
}

func TestSpin_UnlimitedCampaign(t *testing.T) {
	campaign := openCampaign()
	campaign.SpinsLimit = 0
	svc, _, _, _ := newSpinFixture(campaign)

	for i := 0; i < 50; i++ {
		_, err := svc.Spin(context.Background(), 1, fmt.Sprintf("user%d@example.com", i), "")
		require.NoError(t, err)
	}
}

func TestNormalizeIdentity(t *testing.T) {
	assert.Equal(t, "alice@example.com", NormalizeIdentity("  Alice@Example.COM "))
	assert.Equal(t, "bob@example.com", NormalizeIdentity("bob@example.com"))
}
