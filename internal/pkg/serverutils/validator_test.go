package serverutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type registerPayload struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Name     string `validate:"required"`
}

func TestValidateRequest_Valid(t *testing.T) {
	err := ValidateRequest(registerPayload{
		Email:    "teacher@example.com",
		Password: "long-enough-password",
		Name:     "Teacher",
	})
	assert.NoError(t, err)
}

func TestValidateRequest_JoinsAllFailures(t *testing.T) {
	err := ValidateRequest(registerPayload{
		Email:    "not-an-email",
		Password: "short",
	})
	assert.Error(t, err)

	appErr, ok := err.(*AppError)
	assert.True(t, ok)
	assert.Equal(t, 400, appErr.Code)
	assert.Contains(t, appErr.Message, "Email must be a valid email address")
	assert.Contains(t, appErr.Message, "Password must be at least 8 characters")
	assert.Contains(t, appErr.Message, "Name is required")
}

func TestValidateRequest_RequiredOnly(t *testing.T) {
	err := ValidateRequest(registerPayload{})
	assert.Error(t, err)

	appErr := err.(*AppError)
	assert.Contains(t, appErr.Message, "Email is required")
	assert.NotContains(t, appErr.Message, "must be a valid email")
}
