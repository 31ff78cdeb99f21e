package model

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerationContentColumnType(t *testing.T) {
	field, ok := reflect.TypeOf(Generation{}).FieldByName("Content")
	assert.True(t, ok)

	// jsonb normalizes object key order on write; content rendering depends
	// on reading back exactly the bytes that were stored.
	tag := field.Tag.Get("gorm")
	assert.Contains(t, tag, "type:json;")
	assert.NotContains(t, tag, "jsonb")
}
