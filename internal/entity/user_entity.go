package entity

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionTier string

const (
	SubscriptionTierFree    SubscriptionTier = "free"
	SubscriptionTierBasic   SubscriptionTier = "basic"
	SubscriptionTierPremium SubscriptionTier = "premium"
)

type User struct {
	Id               uuid.UUID
	Email            string
	PasswordHash     string
	Name             string
	School           *string
	SubscriptionTier SubscriptionTier
	// At most one active refresh token per user. Overwritten on every
	// login/refresh, cleared on logout.
	RefreshToken  *string
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
