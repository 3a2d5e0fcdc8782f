package mix

import "fmt"

// WarningCode identifies an advisory data-quality condition.
type WarningCode string

const (
	// WarnAggregateFraction flags a coarse-aggregate volume fraction pushed
	// outside [0,1] by an extreme ratio correction.
	WarnAggregateFraction WarningCode = "AGGREGATE_FRACTION_RANGE"

	// WarnNegativeWater flags a corrected water content below zero from
	// extreme surface-moisture inputs.
	WarnNegativeWater WarningCode = "NEGATIVE_CORRECTED_WATER"
)

// Warning is advisory: the value it describes is still returned unchanged.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}

// Result is the complete mix design for one cubic metre of concrete.
// Instances are shared by the cache and must not be mutated.
type Result struct {
	Grade            string  `json:"grade"`
	TargetStrength   float64 `json:"target_strength"`    // MPa
	WaterCementRatio float64 `json:"water_cement_ratio"` // governing table ratio
	WaterContent     float64 `json:"water_content"`      // litres/m³ before correction
	CementContent    float64 `json:"cement_content"`     // kg/m³, net of any fly ash

	// FlyAsh is set only for blended designs.
	FlyAsh *FlyAshBlend `json:"fly_ash,omitempty"`

	CoarseFraction float64 `json:"coarse_aggregate_fraction"`
	FineFraction   float64 `json:"fine_aggregate_fraction"`

	Composition Composition        `json:"composition"`
	Moisture    MoistureCorrection `json:"moisture_correction"`

	Warnings []Warning `json:"warnings,omitempty"`
}

// EffectiveRatio is the water-cement ratio governing the final mix: the
// revised blend ratio when fly ash is used, the table ratio otherwise.
func (r *Result) EffectiveRatio() float64 {
	if r.FlyAsh != nil {
		return r.FlyAsh.RevisedRatio
	}
	return r.WaterCementRatio
}

// Proportions is the classic by-weight statement of a mix, normalized to one
// part cement. FlyAsh is zero for plain designs.
type Proportions struct {
	Cement float64
	FlyAsh float64
	Fine   float64
	Coarse float64
	Water  float64
}

// ProportionsByWeight normalizes the designed masses to one part cement,
// with the water part taken after moisture correction.
func (r *Result) ProportionsByWeight() Proportions {
	p := Proportions{
		Cement: 1,
		Fine:   r.Composition.FineMass / r.CementContent,
		Coarse: r.Composition.CoarseMass / r.CementContent,
		Water:  r.Moisture.CorrectedWater / r.CementContent,
	}
	if r.FlyAsh != nil {
		p.FlyAsh = r.FlyAsh.FlyAshContent / r.CementContent
	}
	return p
}

// String renders the proportions in the conventional colon form, e.g.
// "1.00 : 2.06 : 3.37 : 0.54" for cement : fine : coarse : water.
func (p Proportions) String() string {
	if p.FlyAsh > 0 {
		return fmt.Sprintf("%.2f : %.2f : %.2f : %.2f : %.2f", p.Cement, p.FlyAsh, p.Fine, p.Coarse, p.Water)
	}
	return fmt.Sprintf("%.2f : %.2f : %.2f : %.2f", p.Cement, p.Fine, p.Coarse, p.Water)
}

// CementBagSize is the standard cement bag in kg.
const CementBagSize = 50.0

// CementBags returns the cement demand in standard 50 kg bags per m³.
func (r *Result) CementBags() float64 {
	return r.CementContent / CementBagSize
}

// HasWarning reports whether the result carries a warning with the code.
func (r *Result) HasWarning(code WarningCode) bool {
	for _, w := range r.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}
