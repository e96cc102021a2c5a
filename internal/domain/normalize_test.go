package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, NormalizeName("Anna Ivanova"), NormalizeName("anna   ivanova"))
	assert.Equal(t, NormalizeName("Anna Ivanova"), NormalizeName("  ANNA\tIvanova "))
	assert.NotEqual(t, NormalizeName("Anna Ivanova"), NormalizeName("Anna I. Ivanova"))
}

func TestParseDecision(t *testing.T) {
	tests := []struct {
		raw  string
		want DecisionStatus
	}{
		{"approved", StatusApproved},
		{"  Approved ", StatusApproved},
		{"APPROVE", StatusApproved},
		{"ok", StatusApproved},
		{"rejected", StatusRejected},
		{"Declined", StatusRejected},
		{"pending", StatusPending},
		{"", ""},
		{"maybe", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseDecision(tt.raw), "raw=%q", tt.raw)
	}
}

func TestDecisionTerminal(t *testing.T) {
	assert.True(t, StatusApproved.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, DecisionStatus("").Terminal())
}

func TestToUSDate(t *testing.T) {
	assert.Equal(t, "01/10/2026", ToUSDate("10.01.2026"))
	assert.Equal(t, "05/17/1994", ToUSDate("17/05/1994"))
	assert.Equal(t, "garbage", ToUSDate("garbage"))
}
