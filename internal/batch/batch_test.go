package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func TestCalculate(t *testing.T) {
	res, err := Calculate(Input{BatchSize: 2, SafetyFactor: 10, Batches: 3}, designEntry())

	require.NoError(t, err)
	// scale = 2 × 1.10 = 2.2
	assert.InDelta(t, 780.78, res.PerBatch.Cement, 1e-9)
	assert.InDelta(t, 390.28, res.PerBatch.Water, 1e-9)
	assert.InDelta(t, 1611.94, res.PerBatch.FineAggregate, 1e-9)
	assert.InDelta(t, 2629.88, res.PerBatch.CoarseAggregate, 1e-9)
	assert.InDelta(t, 15.62, res.PerBatch.Admixture, 1e-9)
	assert.Zero(t, res.PerBatch.FlyAsh)

	assert.InDelta(t, 2342.34, res.Total.Cement, 1e-9)
	assert.InDelta(t, 1170.84, res.Total.Water, 1e-9)

	assert.InDelta(t, 15.6156, res.PerBatch.CementBags(), 1e-9)
	assert.InDelta(t, 46.8468, res.Total.CementBags(), 1e-9)
}

func TestCalculateUnitBatch(t *testing.T) {
	res, err := Calculate(Input{BatchSize: 1, SafetyFactor: 0, Batches: 1}, designEntry())

	require.NoError(t, err)
	assert.Equal(t, res.PerBatch, res.Total)
	assert.InDelta(t, 354.9, res.PerBatch.Cement, 1e-9)
}

func TestCalculateFlyAshDesign(t *testing.T) {
	e := designEntry()
	e.Cement = 341.0
	e.FlyAsh = 113.7

	res, err := Calculate(Input{BatchSize: 1, SafetyFactor: 10, Batches: 2}, e)

	require.NoError(t, err)
	assert.InDelta(t, 125.07, res.PerBatch.FlyAsh, 1e-9)
	assert.InDelta(t, 250.14, res.Total.FlyAsh, 1e-9)
}

func TestCalculateValidation(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{"zero batch size", Input{BatchSize: 0, SafetyFactor: 10, Batches: 1}},
		{"negative batch size", Input{BatchSize: -2, SafetyFactor: 10, Batches: 1}},
		{"negative safety factor", Input{BatchSize: 1, SafetyFactor: -1, Batches: 1}},
		{"zero batches", Input{BatchSize: 1, SafetyFactor: 10, Batches: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Calculate(tt.in, designEntry())
			assert.Error(t, err)
		})
	}
}
