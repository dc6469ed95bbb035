package domain

import "time"

// VerificationChallenge is a short-lived one-time code gating a spin.
// One active challenge per identity; issuing a new one replaces it.
// Expiry is evaluated lazily at verification time.
type VerificationChallenge struct {
	ID        uint
	Identity  string
	CodeHash  string
	Attempts  int
	Consumed  bool
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (c *VerificationChallenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
