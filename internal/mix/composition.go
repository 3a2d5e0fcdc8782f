package mix

// Chemical admixture dosage, fixed at 2% of the total cementitious mass.
const admixtureDosage = 0.02

// Composition is the absolute breakdown of one cubic metre of concrete:
// component volumes in m³ and the masses derived from them in kg.
type Composition struct {
	CementVolume    float64 `json:"cement_volume"`
	FlyAshVolume    float64 `json:"fly_ash_volume,omitempty"`
	WaterVolume     float64 `json:"water_volume"`
	AdmixtureVolume float64 `json:"admixture_volume"`
	AggregateVolume float64 `json:"aggregate_volume"` // void-free all-in aggregate

	AdmixtureMass float64 `json:"admixture_mass"`
	CoarseMass    float64 `json:"coarse_aggregate_mass"`
	FineMass      float64 `json:"fine_aggregate_mass"`
}

// UnitVolume converts the cementitious, water and aggregate proportions into
// the absolute composition of one cubic metre. Masses in kg/m³ become
// volumes through specific gravity; whatever volume the paste does not
// occupy is all-in aggregate, split by the coarse/fine fractions.
func UnitVolume(in Inputs, cement, flyAsh, water, coarseFrac, fineFrac float64) Composition {
	c := Composition{
		CementVolume: cement / in.CementSG * 0.001,
		WaterVolume:  water * 0.001,
	}
	if flyAsh > 0 {
		c.FlyAshVolume = flyAsh / in.FlyAshSG * 0.001
	}
	c.AdmixtureMass = admixtureDosage * (cement + flyAsh)
	c.AdmixtureVolume = c.AdmixtureMass / in.AdmixtureSG * 0.001
	c.AggregateVolume = 1 - (c.CementVolume + c.FlyAshVolume + c.WaterVolume + c.AdmixtureVolume)
	c.CoarseMass = c.AggregateVolume * coarseFrac * in.CoarseSG * 1000
	c.FineMass = c.AggregateVolume * fineFrac * in.FineSG * 1000
	return c
}

// MoistureCorrection holds the free-water adjustments from aggregate
// moisture state, all in litres per m³. Absorption raises the water demand
// (dry aggregate draws water from the paste); surface moisture lowers it
// (wet aggregate brings water of its own).
type MoistureCorrection struct {
	AbsorptionCoarse      float64 `json:"absorption_coarse"`
	AbsorptionFine        float64 `json:"absorption_fine"`
	SurfaceMoistureCoarse float64 `json:"surface_moisture_coarse"`
	SurfaceMoistureFine   float64 `json:"surface_moisture_fine"`
	CorrectedWater        float64 `json:"corrected_water"`
}

// CorrectWater adjusts the free water content for the moisture state of both
// aggregates. No floor is applied: a negative corrected value is returned
// as-is and flagged by the pipeline.
func CorrectWater(in Inputs, water, coarseMass, fineMass float64) MoistureCorrection {
	mc := MoistureCorrection{
		AbsorptionCoarse:      coarseMass * in.AbsorptionCoarse * 0.01,
		AbsorptionFine:        fineMass * in.AbsorptionFine * 0.01,
		SurfaceMoistureCoarse: coarseMass * in.SurfaceMoistureCoarse * 0.01,
		SurfaceMoistureFine:   fineMass * in.SurfaceMoistureFine * 0.01,
	}
	mc.CorrectedWater = water +
		mc.AbsorptionCoarse + mc.AbsorptionFine -
		mc.SurfaceMoistureCoarse - mc.SurfaceMoistureFine
	return mc
}
