package mix

import (
	"fmt"

	"go.uber.org/zap"

	"gomix/internal/errors"
)

// Engine runs the proportioning pipeline and memoizes complete designs.
// The cache belongs to the engine instance; create one per session and
// discard it with the session.
type Engine struct {
	cache *Cache
	log   *zap.Logger
}

// New returns an engine with an empty cache. A nil logger disables stage
// logging.
func New(log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{cache: NewCache(), log: log}
}

// CachedDesigns reports how many distinct designs the engine has memoized.
func (e *Engine) CachedDesigns() int {
	return e.cache.Len()
}

// ComputeMixDesign validates the inputs and runs the full pipeline,
// returning the memoized result when identical inputs have been designed
// before. The returned Result is shared and must not be mutated.
func (e *Engine) ComputeMixDesign(in Inputs) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	key := in.Fingerprint()
	result, hit, err := e.cache.GetOrCompute(key, func() (*Result, error) {
		return e.design(in)
	})
	if err != nil {
		return nil, err
	}
	e.log.Debug("mix design served",
		zap.String("fingerprint", key),
		zap.Bool("cache_hit", hit))
	return result, nil
}

// design runs the pipeline once: strength, ratio and water demand first,
// then cementitious sizing, aggregate proportioning, unit-volume composition
// and moisture correction. Advisory conditions become warnings on the
// result; everything else fails outright.
func (e *Engine) design(in Inputs) (*Result, error) {
	target, err := TargetStrength(in.Grade)
	if err != nil {
		return nil, err
	}
	ratio, err := WaterCementRatio(in.Exposure)
	if err != nil {
		return nil, err
	}
	water, err := WaterContent(in.SlumpMM, in.NominalSizeMM, in.Shape, in.Admixture)
	if err != nil {
		return nil, err
	}
	e.log.Debug("pipeline heads",
		zap.Float64("target_strength", target),
		zap.Float64("water_cement_ratio", ratio),
		zap.Float64("water_content", water))

	var (
		cement float64
		blend  *FlyAshBlend
	)
	if in.UseFlyAsh {
		b, err := FlyAshCementContent(in.Exposure, ratio, water)
		if err != nil {
			// TypeFlyAshInfeasible passes through untouched; the caller
			// decides whether to fall back to a plain design.
			return nil, err
		}
		blend = &b
		cement = b.CementContent
	} else {
		cement, err = CementContent(in.Exposure, ratio, water)
		if err != nil {
			return nil, err
		}
	}
	if cement <= 0 {
		return nil, errors.InvalidCementContent(cement)
	}

	coarseFrac, fineFrac, err := AggregateVolumes(in.Zone, in.NominalSizeMM, ratio, in.Pumpable)
	if err != nil {
		return nil, err
	}

	var warnings []Warning
	if coarseFrac < 0 || coarseFrac > 1 {
		warnings = append(warnings, Warning{
			Code:    WarnAggregateFraction,
			Message: fmt.Sprintf("coarse aggregate volume fraction %.3f is outside [0,1]", coarseFrac),
		})
	}

	var flyAshMass float64
	if blend != nil {
		flyAshMass = blend.FlyAshContent
	}
	comp := UnitVolume(in, cement, flyAshMass, water, coarseFrac, fineFrac)
	moisture := CorrectWater(in, water, comp.CoarseMass, comp.FineMass)
	if moisture.CorrectedWater < 0 {
		warnings = append(warnings, Warning{
			Code:    WarnNegativeWater,
			Message: fmt.Sprintf("corrected water content %.3f L is negative", moisture.CorrectedWater),
		})
	}

	return &Result{
		Grade:            in.GradeDesignation(),
		TargetStrength:   target,
		WaterCementRatio: ratio,
		WaterContent:     water,
		CementContent:    cement,
		FlyAsh:           blend,
		CoarseFraction:   coarseFrac,
		FineFraction:     fineFrac,
		Composition:      comp,
		Moisture:         moisture,
		Warnings:         warnings,
	}, nil
}
