package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zopudigital/content-service/internal/domain"
)

func TestCompare(t *testing.T) {
	// 20 users on a per-user tool at R$80/seat vs the Standard plan.
	c, err := Compare(20, 8000)
	require.NoError(t, err)

	assert.Equal(t, "standard", c.Plan.ID)
	assert.Equal(t, int64(160000), c.CompetitorCents)
	assert.Equal(t, int64(160000-49900), c.MonthlySavingsCents)
	assert.Equal(t, int64(160000-49900)*12, c.AnnualSavingsCents)
	assert.False(t, c.CompetitorIsCheaper)
}

func TestCompare_PicksSmallestFittingPlan(t *testing.T) {
	tests := []struct {
		users int
		plan  string
	}{
		{1, "basic"},
		{5, "basic"},
		{6, "standard"},
		{50, "standard"},
		{51, "professional"},
		{250, "enterprise"},
	}

	for _, tt := range tests {
		c, err := Compare(tt.users, 5000)
		require.NoError(t, err)
		assert.Equal(t, tt.plan, c.Plan.ID, "users=%d", tt.users)
	}
}

func TestCompare_CompetitorCheaperForTinyTeams(t *testing.T) {
	// 1 user at R$50/seat is cheaper than the Basic flat rate.
	c, err := Compare(1, 5000)
	require.NoError(t, err)

	assert.True(t, c.CompetitorIsCheaper)
	assert.Negative(t, c.MonthlySavingsCents)
}

func TestCompare_OutOfRange(t *testing.T) {
	_, err := Compare(0, 5000)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = Compare(251, 5000)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = Compare(-3, 5000)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
