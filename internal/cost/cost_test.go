package cost

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomix/internal/config"
	"gomix/internal/history"
)

func designEntry() history.Entry {
	return history.Entry{
		Grade:     "M 25",
		Cement:    354.9,
		Water:     177.4,
		FineAgg:   732.7,
		CoarseAgg: 1195.4,
		Admixture: 7.1,
	}
}

func sampleRates() Rates {
	return Rates{
		CementPerBag:                 decimal.NewFromInt(400),
		WaterPerCubicMetre:           decimal.NewFromInt(50),
		FineAggregatePerCubicMetre:   decimal.NewFromInt(1500),
		CoarseAggregatePerCubicMetre: decimal.NewFromInt(1200),
		AdmixturePerKg:               decimal.NewFromInt(250),
		FlyAshPerKg:                  decimal.NewFromInt(8),
	}
}

func lineAmount(t *testing.T, b *Breakdown, material string) decimal.Decimal {
	t.Helper()
	for _, l := range b.Lines {
		if l.Material == material {
			return l.Amount
		}
	}
	t.Fatalf("no %s line in breakdown", material)
	return decimal.Zero
}

func TestEstimate(t *testing.T) {
	b, err := Estimate(designEntry(), sampleRates())
	require.NoError(t, err)

	require.Len(t, b.Lines, 5)

	// Cement: 354.9 kg at 400 per 50 kg bag = 354.9 * 8.
	assert.True(t, lineAmount(t, b, "Cement").Equal(decimal.RequireFromString("2839.2")))
	// Water: 177.4 L at 50 per m3.
	assert.True(t, lineAmount(t, b, "Water").Equal(decimal.RequireFromString("8.87")))
	// Aggregates are quoted per m3 and divided down to per kg.
	assert.True(t, lineAmount(t, b, "Fine Aggregate").Equal(decimal.RequireFromString("1099.05")))
	assert.True(t, lineAmount(t, b, "Coarse Aggregate").Equal(decimal.RequireFromString("1434.48")))
	assert.True(t, lineAmount(t, b, "Chemical Admixture").Equal(decimal.RequireFromString("1775")))

	assert.True(t, b.Total.Equal(decimal.RequireFromString("7156.6")),
		"total = %s", b.Total)
}

func TestEstimateShares(t *testing.T) {
	b, err := Estimate(designEntry(), sampleRates())
	require.NoError(t, err)

	sum := decimal.Zero
	for _, l := range b.Lines {
		sum = sum.Add(l.Share)
	}
	assert.InDelta(t, 100, sum.InexactFloat64(), 1e-6)

	cement := b.Lines[0]
	require.Equal(t, "Cement", cement.Material)
	assert.InDelta(t, 39.6724, cement.Share.InexactFloat64(), 1e-3)
}

func TestEstimateFlyAsh(t *testing.T) {
	e := designEntry()
	e.Cement = 341.0
	e.FlyAsh = 113.7

	b, err := Estimate(e, sampleRates())
	require.NoError(t, err)

	require.Len(t, b.Lines, 6)
	assert.True(t, lineAmount(t, b, "Fly Ash").Equal(decimal.RequireFromString("909.6")))
}

func TestEstimateZeroRates(t *testing.T) {
	b, err := Estimate(designEntry(), Rates{})
	require.NoError(t, err)

	assert.True(t, b.Total.IsZero())
	for _, l := range b.Lines {
		assert.True(t, l.Amount.IsZero())
		assert.True(t, l.Share.IsZero())
	}
}

func TestEstimateNegativeRate(t *testing.T) {
	rates := sampleRates()
	rates.WaterPerCubicMetre = decimal.NewFromInt(-1)

	_, err := Estimate(designEntry(), rates)

	assert.Error(t, err)
}

func TestRatesFromConfig(t *testing.T) {
	rates := RatesFromConfig(config.RatesConfig{
		CementPerBag:                 400,
		WaterPerCubicMetre:           50,
		FineAggregatePerCubicMetre:   1500,
		CoarseAggregatePerCubicMetre: 1200,
		AdmixturePerKg:               250,
		FlyAshPerKg:                  8,
	})

	assert.True(t, rates.CementPerBag.Equal(decimal.NewFromInt(400)))
	assert.True(t, rates.FlyAshPerKg.Equal(decimal.NewFromInt(8)))
}
