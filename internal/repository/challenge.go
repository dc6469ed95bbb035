package repository

import (
	"context"
	"fmt"

	"github.com/spintowin/spinwheel-api/internal/domain"
	"github.com/spintowin/spinwheel-api/internal/repository/dao"
)

var ErrChallengeNotFound = dao.ErrChallengeNotFound

type ChallengeDAO interface {
	Replace(ctx context.Context, challenge dao.Challenge) (dao.Challenge, error)
	FindByIdentity(ctx context.Context, identity string) (dao.Challenge, error)
	Consume(ctx context.Context, id uint) error
	IncrementAttempts(ctx context.Context, id uint) (int, error)
	Delete(ctx context.Context, id uint) error
}

type ChallengeRepository struct {
	dao ChallengeDAO
}

func NewChallengeRepository(dao ChallengeDAO) *ChallengeRepository {
	return &ChallengeRepository{
		dao: dao,
	}
}

func (r *ChallengeRepository) Replace(ctx context.Context, challenge domain.VerificationChallenge) (domain.VerificationChallenge, error) {
	created, err := r.dao.Replace(ctx, dao.Challenge{
		Identity:  challenge.Identity,
		CodeHash:  challenge.CodeHash,
		ExpiresAt: challenge.ExpiresAt,
	})
	if err != nil {
		return domain.VerificationChallenge{}, fmt.Errorf("r.dao.Replace -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ChallengeRepository) FindByIdentity(ctx context.Context, identity string) (domain.VerificationChallenge, error) {
	found, err := r.dao.FindByIdentity(ctx, identity)
	if err != nil {
		return domain.VerificationChallenge{}, err
	}

	return r.daoToDomain(found), nil
}

func (r *ChallengeRepository) Consume(ctx context.Context, id uint) error {
	return r.dao.Consume(ctx, id)
}

func (r *ChallengeRepository) IncrementAttempts(ctx context.Context, id uint) (int, error) {
	return r.dao.IncrementAttempts(ctx, id)
}

func (r *ChallengeRepository) Delete(ctx context.Context, id uint) error {
	return r.dao.Delete(ctx, id)
}

func (r *ChallengeRepository) daoToDomain(c dao.Challenge) domain.VerificationChallenge {
	return domain.VerificationChallenge{
		ID:        c.ID,
		Identity:  c.Identity,
		CodeHash:  c.CodeHash,
		Attempts:  c.Attempts,
		Consumed:  c.Consumed,
		ExpiresAt: c.ExpiresAt,
		CreatedAt: c.CreatedAt,
	}
}
