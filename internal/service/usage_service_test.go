// FILE: internal/service/usage_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2026-01", MonthKey(time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-12", MonthKey(time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)))
	// single digit months are zero padded
	assert.Equal(t, "2027-03", MonthKey(time.Date(2027, 3, 31, 23, 59, 59, 0, time.UTC)))
}
