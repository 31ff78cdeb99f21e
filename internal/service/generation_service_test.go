// FILE: internal/service/generation_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCollectSourceText_NoDocuments(t *testing.T) {
	svc := &generationService{}

	// No document ids means no lookup and an empty prompt source.
	text, ids, err := svc.collectSourceText(context.Background(), nil, uuid.New(), nil)
	assert.NoError(t, err)
	assert.Equal(t, "", text)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}
