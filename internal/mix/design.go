package mix

import (
	"gomix/internal/errors"
	"gomix/internal/iscode"
)

const (
	// Slump adjustment: water demand grows 3% per 25 mm of slump beyond the
	// 50 mm covered by IS 10262:2009 Table 2.
	slumpBaselineMM = 50.0
	slumpStepMM     = 25.0
	slumpStepRate   = 0.03

	// Aggregate proportioning: Table 3 is stated for a water-cement ratio of
	// 0.50 and corrected by 0.01 per 0.05 of ratio away from it. Pumpable
	// mixes reduce the coarse fraction by 10%.
	ratioPivot      = 0.50
	ratioStep       = 0.05
	ratioCorrection = 0.01
	pumpFactor      = 0.90
)

// TargetStrength returns the target mean compressive strength (MPa) for a
// grade numeral: f'ck = fck + 1.65σ per IS 10262:2009 clause 3.2.1.2.
func TargetStrength(grade int) (float64, error) {
	if grade <= 0 {
		return 0, errors.InvalidParameter("grade numeral", grade)
	}
	return float64(grade) + 1.65*iscode.StandardDeviation(grade), nil
}

// WaterCementRatio returns the governing free water-cement ratio for an
// exposure condition, the IS 456:2000 Table 5 maximum.
func WaterCementRatio(exp iscode.Exposure) (float64, error) {
	req, err := iscode.DurabilityRequirement(exp)
	if err != nil {
		return 0, err
	}
	return req.MaxWaterCementRatio, nil
}

// WaterContent estimates the free water demand (litres/m³) for the target
// slump, aggregate size and shape, and admixture class. Adjustments apply in
// order baseline → shape → slump → admixture, each on the value as it stands.
func WaterContent(slumpMM float64, nominalSizeMM int, shape iscode.Shape, adx iscode.Admixture) (float64, error) {
	water, err := iscode.MaxWaterContent(nominalSizeMM)
	if err != nil {
		return 0, err
	}
	water += shape.WaterAdjustment()
	if slumpMM > slumpBaselineMM {
		steps := (slumpMM - slumpBaselineMM) / slumpStepMM
		water += slumpStepRate * steps * water
	}
	return water * adx.WaterFactor(), nil
}

// CementContent sizes the cement for a plain mix: water content over the
// governing ratio, raised to the exposure's minimum content when the
// division lands below it. No upper bound is enforced.
func CementContent(exp iscode.Exposure, ratio, water float64) (float64, error) {
	req, err := iscode.DurabilityRequirement(exp)
	if err != nil {
		return 0, err
	}
	if ratio <= 0 {
		return 0, errors.InvalidCementContent(ratio)
	}
	content := water / ratio
	if content < req.MinCementContent {
		content = req.MinCementContent
	}
	return content, nil
}

const (
	// Fly-ash blending: the gross cementitious mass is the plain baseline
	// inflated by 10%; replacement fractions are searched from 25% down in
	// 5% steps; the net cement may not drop below 270 kg/m³.
	flyAshInflation    = 1.10
	replacementStep    = 0.05
	maxReplacementStep = 5
	minBlendedCement   = 270.0
)

// FlyAshBlend is the outcome of the fly-ash replacement search. Masses are
// kg/m³; CementSaved is measured against the plain-cement baseline;
// RevisedRatio is water over the gross cementitious mass. ReplacementPct is
// the reported percentage, one 5% step above the fraction that sized the
// masses.
type FlyAshBlend struct {
	CementContent  float64 `json:"cement_content"`
	FlyAshContent  float64 `json:"fly_ash_content"`
	CementSaved    float64 `json:"cement_saved"`
	RevisedRatio   float64 `json:"revised_ratio"`
	ReplacementPct int     `json:"replacement_pct"`
}

// FlyAshCementContent sizes a cement + fly-ash blend for the given exposure,
// ratio and water demand. Returns a TypeFlyAshInfeasible error when no
// replacement fraction keeps the net cement at or above the blended floor;
// callers then fall back to the plain design.
func FlyAshCementContent(exp iscode.Exposure, ratio, water float64) (FlyAshBlend, error) {
	baseline, err := CementContent(exp, ratio, water)
	if err != nil {
		return FlyAshBlend{}, err
	}
	return blendCementitious(baseline, water)
}

// blendCementitious runs the bounded replacement search: fractions 0.25,
// 0.20, 0.15, 0.10, 0.05 against the inflated gross mass, stopping at the
// first whose net cement meets the floor. The reported percentage is one 5%
// step above the fraction that sized the masses.
func blendCementitious(baseline, water float64) (FlyAshBlend, error) {
	gross := baseline * flyAshInflation
	revised := water / gross
	for step := maxReplacementStep; step >= 1; step-- {
		frac := replacementStep * float64(step)
		flyAsh := gross * frac
		net := gross - flyAsh
		if net >= minBlendedCement {
			return FlyAshBlend{
				CementContent:  net,
				FlyAshContent:  flyAsh,
				CementSaved:    baseline - net,
				RevisedRatio:   revised,
				ReplacementPct: 5 * (step + 1),
			}, nil
		}
	}
	return FlyAshBlend{}, errors.FlyAshInfeasible(gross)
}

// AggregateVolumes derives the coarse and fine aggregate volume fractions
// for a zone, nominal size, water-cement ratio and pumpability. The fine
// fraction is the complement of the coarse fraction; no clamping is applied,
// so extreme ratios can push the pair outside [0,1] (surfaced as a warning
// by the pipeline, not here).
func AggregateVolumes(zone iscode.Zone, nominalSizeMM int, ratio float64, pumpable bool) (coarse, fine float64, err error) {
	coarse, err = iscode.CoarseAggregateVolume(nominalSizeMM, zone)
	if err != nil {
		return 0, 0, err
	}
	switch {
	case ratio > ratioPivot:
		coarse -= ratioCorrection * ((ratio - ratioPivot) / ratioStep)
	case ratio < ratioPivot:
		coarse += ratioCorrection * ((ratioPivot - ratio) / ratioStep)
	}
	if pumpable {
		coarse *= pumpFactor
	}
	return coarse, 1 - coarse, nil
}
