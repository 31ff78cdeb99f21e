package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hel", Truncate("hello", 3))
	assert.Equal(t, "", Truncate("hello", 0))
}

func TestTruncate_DoesNotSplitRunes(t *testing.T) {
	got := Truncate(strings.Repeat("é", 5), 3)
	assert.Equal(t, "ééé", got)
	assert.True(t, utf8.ValidString(got))
}
