package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spintowin/spinwheel-api/internal/domain"
	"github.com/spintowin/spinwheel-api/internal/metrics"
	"github.com/spintowin/spinwheel-api/internal/notifier"
	"github.com/spintowin/spinwheel-api/internal/pkg/jwthelper"
	"github.com/spintowin/spinwheel-api/internal/repository"
)

var (
	ErrChallengeExpired  = errors.New("verification code expired")
	ErrCodeMismatch      = errors.New("verification code does not match")
	ErrNoActiveChallenge = errors.New("no active verification challenge")
)

const challengeCodeDigits = 6

type ChallengeRepository interface {
	Replace(ctx context.Context, challenge domain.VerificationChallenge) (domain.VerificationChallenge, error)
	FindByIdentity(ctx context.Context, identity string) (domain.VerificationChallenge, error)
	Consume(ctx context.Context, id uint) error
	IncrementAttempts(ctx context.Context, id uint) (int, error)
	Delete(ctx context.Context, id uint) error
}

type VerificationService struct {
	repo        ChallengeRepository
	notifier    notifier.Notifier
	signingKey  []byte
	ttl         time.Duration
	tokenTTL    time.Duration
	maxAttempts int
	now         func() time.Time
}

func NewVerificationService(repo ChallengeRepository, n notifier.Notifier, signingKey []byte, ttl, tokenTTL time.Duration, maxAttempts int) *VerificationService {
	return &VerificationService{
		repo:        repo,
		notifier:    n,
		signingKey:  signingKey,
		ttl:         ttl,
		tokenTTL:    tokenTTL,
		maxAttempts: maxAttempts,
		now:         time.Now,
	}
}

// IssueChallenge creates a fresh 6-digit code for the identity, replacing
// any pending challenge, and dispatches it through the notifier. Only the
// bcrypt hash is stored. The code is persisted before the send is attempted.
func (s *VerificationService) IssueChallenge(ctx context.Context, identity string) (string, error) {
	identity = NormalizeIdentity(identity)

	code, err := generateNumericCode(challengeCodeDigits)
	if err != nil {
		return "", fmt.Errorf("generateNumericCode -> %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	_, err = s.repo.Replace(ctx, domain.VerificationChallenge{
		Identity:  identity,
		CodeHash:  string(hash),
		ExpiresAt: s.now().Add(s.ttl),
	})
	if err != nil {
		return "", fmt.Errorf("s.repo.Replace -> %w", err)
	}

	metrics.ChallengesIssuedTotal.Inc()

	if err = s.notifier.Send(ctx, identity, fmt.Sprintf("Your verification code is %s", code)); err != nil {
		zap.L().Warn("failed to deliver verification code",
			zap.String("identity", identity),
			zap.Error(err),
		)
	}

	return code, nil
}

// Verify checks the submitted code against the stored challenge. On success
// the challenge is consumed (single use, enforced by a conditional update)
// and a short-lived token proving the verified identity is returned. Expiry
// is evaluated here against the stored timestamp, not by a background sweep.
func (s *VerificationService) Verify(ctx context.Context, identity, submittedCode string) (string, error) {
	identity = NormalizeIdentity(identity)

	challenge, err := s.repo.FindByIdentity(ctx, identity)
	if err != nil {
		if errors.Is(err, repository.ErrChallengeNotFound) {
			metrics.ChallengeVerificationsTotal.WithLabelValues("no_challenge").Inc()
			return "", ErrNoActiveChallenge
		}

		return "", fmt.Errorf("s.repo.FindByIdentity -> %w", err)
	}

	if challenge.Consumed {
		metrics.ChallengeVerificationsTotal.WithLabelValues("no_challenge").Inc()
		return "", ErrNoActiveChallenge
	}

	if challenge.Expired(s.now()) {
		metrics.ChallengeVerificationsTotal.WithLabelValues("expired").Inc()
		return "", ErrChallengeExpired
	}

	if bcrypt.CompareHashAndPassword([]byte(challenge.CodeHash), []byte(submittedCode)) != nil {
		attempts, attemptErr := s.repo.IncrementAttempts(ctx, challenge.ID)
		if attemptErr == nil && attempts >= s.maxAttempts {
			// Too many wrong guesses burns the challenge entirely.
			if delErr := s.repo.Delete(ctx, challenge.ID); delErr != nil {
				zap.L().Warn("failed to invalidate exhausted challenge",
					zap.String("identity", identity),
					zap.Error(delErr),
				)
			}
		}

		metrics.ChallengeVerificationsTotal.WithLabelValues("mismatch").Inc()
		return "", ErrCodeMismatch
	}

	if err = s.repo.Consume(ctx, challenge.ID); err != nil {
		// Lost the consume race; the code is single use.
		if errors.Is(err, repository.ErrChallengeNotFound) {
			metrics.ChallengeVerificationsTotal.WithLabelValues("no_challenge").Inc()
			return "", ErrNoActiveChallenge
		}

		return "", fmt.Errorf("s.repo.Consume -> %w", err)
	}

	token, err := jwthelper.GenerateToken(s.signingKey, identity, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("jwthelper.GenerateToken -> %w", err)
	}

	metrics.ChallengeVerificationsTotal.WithLabelValues("ok").Inc()

	return token, nil
}

func generateNumericCode(digits int) (string, error) {
	max := big.NewInt(1)
	for i := 0; i < digits; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", digits, n), nil
}
