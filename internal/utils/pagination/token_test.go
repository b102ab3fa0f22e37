package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLimitOffsetDefaults(t *testing.T) {
	limit, offset, err := ParseLimitOffset("", "")
	assert.NoError(t, err, "Empty parameters should not return an error")
	assert.Equal(t, DefaultLimit, limit, "Empty limit should fall back to default")
	assert.Equal(t, 0, offset, "Empty offset should fall back to zero")
}

func TestParseLimitOffsetExplicit(t *testing.T) {
	limit, offset, err := ParseLimitOffset("50", "120")
	assert.NoError(t, err)
	assert.Equal(t, 50, limit)
	assert.Equal(t, 120, offset)
}

func TestParseLimitOffsetCapsLimit(t *testing.T) {
	limit, _, err := ParseLimitOffset("5000", "0")
	assert.NoError(t, err)
	assert.Equal(t, MaxLimit, limit, "Oversized limit should be capped")
}

func TestParseLimitOffsetRejectsMalformed(t *testing.T) {
	_, _, err := ParseLimitOffset("abc", "")
	assert.Error(t, err, "Non-numeric limit should be rejected")

	_, _, err = ParseLimitOffset("10", "-5")
	assert.Error(t, err, "Negative offset should be rejected")

	_, _, err = ParseLimitOffset("0", "")
	assert.Error(t, err, "Zero limit should be rejected")
}
