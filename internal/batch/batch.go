// Package batch scales a designed mix to job-site batch quantities.
package batch

import (
	"gomix/internal/errors"
	"gomix/internal/history"
	"gomix/internal/mix"
)

// Input sizes the batching run.
type Input struct {
	BatchSize    float64 // m³ of concrete per batch
	SafetyFactor float64 // extra material, percent
	Batches      int
}

// Quantities is one set of scaled material masses (kg, water in litres).
type Quantities struct {
	Cement          float64
	FlyAsh          float64
	Water           float64
	FineAggregate   float64
	CoarseAggregate float64
	Admixture       float64
}

// CementBags is the cement demand in standard 50 kg bags.
func (q Quantities) CementBags() float64 {
	return q.Cement / mix.CementBagSize
}

// Result holds the per-batch and whole-run quantities.
type Result struct {
	PerBatch Quantities
	Total    Quantities
}

// Calculate scales the per-m³ quantities of a stored design by batch
// volume, safety factor and batch count.
func Calculate(in Input, design history.Entry) (Result, error) {
	if in.BatchSize <= 0 {
		return Result{}, errors.InvalidParameter("batch size", in.BatchSize)
	}
	if in.SafetyFactor < 0 {
		return Result{}, errors.InvalidParameter("safety factor", in.SafetyFactor)
	}
	if in.Batches <= 0 {
		return Result{}, errors.InvalidParameter("number of batches", in.Batches)
	}

	scale := in.BatchSize * (1 + in.SafetyFactor/100)
	per := Quantities{
		Cement:          design.Cement * scale,
		FlyAsh:          design.FlyAsh * scale,
		Water:           design.Water * scale,
		FineAggregate:   design.FineAgg * scale,
		CoarseAggregate: design.CoarseAgg * scale,
		Admixture:       design.Admixture * scale,
	}

	n := float64(in.Batches)
	total := Quantities{
		Cement:          per.Cement * n,
		FlyAsh:          per.FlyAsh * n,
		Water:           per.Water * n,
		FineAggregate:   per.FineAggregate * n,
		CoarseAggregate: per.CoarseAggregate * n,
		Admixture:       per.Admixture * n,
	}

	return Result{PerBatch: per, Total: total}, nil
}
