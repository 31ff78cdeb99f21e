// FILE: internal/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserProfileResponse struct {
	Id               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	School           *string   `json:"school"`
	SubscriptionTier string    `json:"subscriptionTier"`
	EmailVerified    bool      `json:"emailVerified"`
	CreatedAt        time.Time `json:"createdAt"`
}

// UpdateProfileRequest carries a partial update; nil fields are untouched.
type UpdateProfileRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1"`
	School *string `json:"school"`
}

type TierLimitsResponse struct {
	GenerationsPerMonth int `json:"generationsPerMonth"`
	MaxDocuments        int `json:"maxDocuments"`
	MaxProjects         int `json:"maxProjects"`
}

type UsageEntryResponse struct {
	Action string `json:"action"`
	Month  string `json:"month"`
	Count  int    `json:"count"`
}

type UsageSummaryResponse struct {
	SubscriptionTier string               `json:"subscriptionTier"`
	Limits           TierLimitsResponse   `json:"limits"`
	Usage            []UsageEntryResponse `json:"usage"`
}
