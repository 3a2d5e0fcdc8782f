package mix

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomix/internal/errors"
	"gomix/internal/iscode"
)

// scenarioInputs is the worked M25 example: moderate exposure, 20 mm crushed
// angular aggregate, 100 mm slump, plasticizer, Zone-II sand, not pumped.
func scenarioInputs() Inputs {
	return Inputs{
		Grade:            25,
		Exposure:         iscode.ExposureModerate,
		NominalSizeMM:    20,
		SlumpMM:          100,
		Shape:            iscode.ShapeCrushedAngular,
		Zone:             iscode.ZoneII,
		Admixture:        iscode.AdmixturePlasticizer,
		Pumpable:         false,
		UseFlyAsh:        false,
		CementSG:         3.15,
		CoarseSG:         2.74,
		FineSG:           2.74,
		AdmixtureSG:      1.145,
		AbsorptionCoarse: 0.5,
		AbsorptionFine:   1.0,
	}
}

func TestComputeMixDesignScenario(t *testing.T) {
	e := New(nil)
	r, err := e.ComputeMixDesign(scenarioInputs())
	require.NoError(t, err)

	assert.Equal(t, "M 25", r.Grade)
	assert.InDelta(t, 31.6, r.TargetStrength, 1e-9)
	assert.Equal(t, 0.50, r.WaterCementRatio)
	assert.InDelta(t, 177.444, r.WaterContent, 1e-9)
	assert.InDelta(t, 354.888, r.CementContent, 1e-9)
	assert.Nil(t, r.FlyAsh)
	assert.Equal(t, 0.62, r.CoarseFraction)
	assert.Equal(t, 0.38, r.FineFraction)
	assert.InDelta(t, 1195.44, r.Composition.CoarseMass, 0.01)
	assert.InDelta(t, 732.69, r.Composition.FineMass, 0.01)
	assert.InDelta(t, 7.09776, r.Composition.AdmixtureMass, 1e-9)
	assert.InDelta(t, 190.748, r.Moisture.CorrectedWater, 1e-3)
	assert.Empty(t, r.Warnings)

	t.Logf("M25 design: cement %.1f kg, water %.1f L, CA %.1f kg, FA %.1f kg",
		r.CementContent, r.Moisture.CorrectedWater, r.Composition.CoarseMass, r.Composition.FineMass)
}

func TestComputeMixDesignProportions(t *testing.T) {
	e := New(nil)
	r, err := e.ComputeMixDesign(scenarioInputs())
	require.NoError(t, err)

	p := r.ProportionsByWeight()
	assert.Equal(t, 1.0, p.Cement)
	assert.InDelta(t, 732.69/354.888, p.Fine, 1e-3)
	assert.InDelta(t, 1195.44/354.888, p.Coarse, 1e-3)
	assert.InDelta(t, 190.748/354.888, p.Water, 1e-3)
	assert.Equal(t, 0.0, p.FlyAsh)

	assert.InDelta(t, 354.888/50, r.CementBags(), 1e-9)
}

func TestComputeMixDesignFlyAsh(t *testing.T) {
	in := scenarioInputs()
	in.Exposure = iscode.ExposureSevere
	in.UseFlyAsh = true
	in.FlyAshSG = 2.2

	e := New(nil)
	r, err := e.ComputeMixDesign(in)
	require.NoError(t, err)
	require.NotNil(t, r.FlyAsh)

	// Severe tightens the ratio to 0.45; water stays at 177.444.
	baseline := 177.444 / 0.45
	gross := baseline * 1.10
	assert.InDelta(t, gross*0.75, r.CementContent, 1e-6)
	assert.InDelta(t, gross*0.25, r.FlyAsh.FlyAshContent, 1e-6)
	assert.InDelta(t, baseline-gross*0.75, r.FlyAsh.CementSaved, 1e-6)
	assert.InDelta(t, 177.444/gross, r.FlyAsh.RevisedRatio, 1e-9)
	assert.Equal(t, 30, r.FlyAsh.ReplacementPct)
	assert.GreaterOrEqual(t, r.CementContent, 270.0)

	// Dosage covers the whole cementitious mass, fly ash included.
	assert.InDelta(t, 0.02*(r.CementContent+r.FlyAsh.FlyAshContent), r.Composition.AdmixtureMass, 1e-9)
	assert.InDelta(t, r.FlyAsh.FlyAshContent/2.2*0.001, r.Composition.FlyAshVolume, 1e-9)

	// The governing table ratio is reported alongside the revised one.
	assert.Equal(t, 0.45, r.WaterCementRatio)
	assert.Equal(t, r.FlyAsh.RevisedRatio, r.EffectiveRatio())
}

func TestComputeMixDesignCacheHit(t *testing.T) {
	e := New(nil)
	first, err := e.ComputeMixDesign(scenarioInputs())
	require.NoError(t, err)
	second, err := e.ComputeMixDesign(scenarioInputs())
	require.NoError(t, err)

	// Identical inputs come back from the cache, not a recomputation.
	assert.Same(t, first, second)
	assert.Equal(t, 1, e.CachedDesigns())
}

func TestCacheGetOrComputeOnce(t *testing.T) {
	c := NewCache()
	calls := 0
	compute := func() (*Result, error) {
		calls++
		return &Result{Grade: "M 25"}, nil
	}

	for i := 0; i < 5; i++ {
		_, hit, err := c.GetOrCompute("k", compute)
		require.NoError(t, err)
		assert.Equal(t, i > 0, hit, "call %d", i)
	}
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, c.Len())
}

func TestCacheGetOrComputeConcurrent(t *testing.T) {
	c := NewCache()
	var mu sync.Mutex
	calls := 0

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := c.GetOrCompute("k", func() (*Result, error) {
				mu.Lock()
				calls++
				mu.Unlock()
				return &Result{}, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, calls)
}

func TestCacheErrorsNotStored(t *testing.T) {
	c := NewCache()
	_, _, err := c.GetOrCompute("k", func() (*Result, error) {
		return nil, errors.InvalidParameter("grade numeral", 0)
	})
	require.Error(t, err)
	assert.Equal(t, 0, c.Len())

	// A later successful computation under the same key still runs.
	r, hit, err := c.GetOrCompute("k", func() (*Result, error) {
		return &Result{}, nil
	})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NotNil(t, r)
}

func TestFingerprintCoversEveryInput(t *testing.T) {
	mutations := []struct {
		name   string
		mutate func(*Inputs)
	}{
		{"grade", func(in *Inputs) { in.Grade = 30 }},
		{"exposure", func(in *Inputs) { in.Exposure = iscode.ExposureSevere }},
		{"nominal size", func(in *Inputs) { in.NominalSizeMM = 40 }},
		{"slump", func(in *Inputs) { in.SlumpMM = 75 }},
		{"shape", func(in *Inputs) { in.Shape = iscode.ShapeGravel }},
		{"zone", func(in *Inputs) { in.Zone = iscode.ZoneIII }},
		{"admixture", func(in *Inputs) { in.Admixture = iscode.AdmixtureSuperplasticizer }},
		{"pumpable", func(in *Inputs) { in.Pumpable = true }},
		{"fly ash", func(in *Inputs) { in.UseFlyAsh = true }},
		{"cement sg", func(in *Inputs) { in.CementSG = 3.10 }},
		{"coarse sg", func(in *Inputs) { in.CoarseSG = 2.70 }},
		{"fine sg", func(in *Inputs) { in.FineSG = 2.65 }},
		{"admixture sg", func(in *Inputs) { in.AdmixtureSG = 1.2 }},
		{"fly ash sg", func(in *Inputs) { in.FlyAshSG = 2.2 }},
		{"absorption coarse", func(in *Inputs) { in.AbsorptionCoarse = 0.75 }},
		{"absorption fine", func(in *Inputs) { in.AbsorptionFine = 1.25 }},
		{"surface moisture coarse", func(in *Inputs) { in.SurfaceMoistureCoarse = 2 }},
		{"surface moisture fine", func(in *Inputs) { in.SurfaceMoistureFine = 2 }},
	}

	ref := scenarioInputs().Fingerprint()
	assert.Equal(t, ref, scenarioInputs().Fingerprint(), "fingerprint is stable")
	for _, m := range mutations {
		in := scenarioInputs()
		m.mutate(&in)
		assert.NotEqual(t, ref, in.Fingerprint(), "changing %s must change the fingerprint", m.name)
	}
}

func TestComputeMixDesignDistinguishesMoisture(t *testing.T) {
	e := New(nil)
	dry, err := e.ComputeMixDesign(scenarioInputs())
	require.NoError(t, err)

	wet := scenarioInputs()
	wet.SurfaceMoistureCoarse = 2
	wet.SurfaceMoistureFine = 2
	r, err := e.ComputeMixDesign(wet)
	require.NoError(t, err)

	assert.NotSame(t, dry, r)
	assert.Less(t, r.Moisture.CorrectedWater, dry.Moisture.CorrectedWater)
	assert.Equal(t, 2, e.CachedDesigns())
}

func TestComputeMixDesignInvalidSize(t *testing.T) {
	in := scenarioInputs()
	in.NominalSizeMM = 15

	e := New(nil)
	_, err := e.ComputeMixDesign(in)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInvalidParameter))

	// Both consuming stages reject the size on their own.
	_, werr := WaterContent(100, 15, iscode.ShapeCrushedAngular, iscode.AdmixtureNone)
	assert.True(t, errors.IsType(werr, errors.TypeInvalidParameter))
	_, _, aerr := AggregateVolumes(iscode.ZoneII, 15, 0.5, false)
	assert.True(t, errors.IsType(aerr, errors.TypeInvalidParameter))
}

func TestComputeMixDesignValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Inputs)
	}{
		{"zero grade", func(in *Inputs) { in.Grade = 0 }},
		{"negative slump", func(in *Inputs) { in.SlumpMM = -10 }},
		{"zero cement sg", func(in *Inputs) { in.CementSG = 0 }},
		{"zero coarse sg", func(in *Inputs) { in.CoarseSG = 0 }},
		{"zero fine sg", func(in *Inputs) { in.FineSG = 0 }},
		{"zero admixture sg", func(in *Inputs) { in.AdmixtureSG = 0 }},
		{"fly ash without sg", func(in *Inputs) { in.UseFlyAsh = true; in.FlyAshSG = 0 }},
		{"absorption above 100", func(in *Inputs) { in.AbsorptionCoarse = 120 }},
		{"negative surface moisture", func(in *Inputs) { in.SurfaceMoistureFine = -1 }},
	}
	e := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := scenarioInputs()
			tt.mutate(&in)
			_, err := e.ComputeMixDesign(in)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.TypeInvalidParameter))
		})
	}
}

func TestComputeMixDesignNegativeWaterWarning(t *testing.T) {
	in := scenarioInputs()
	in.AbsorptionCoarse, in.AbsorptionFine = 0, 0
	in.SurfaceMoistureCoarse, in.SurfaceMoistureFine = 50, 50

	e := New(nil)
	r, err := e.ComputeMixDesign(in)
	require.NoError(t, err)
	assert.Less(t, r.Moisture.CorrectedWater, 0.0)
	assert.True(t, r.HasWarning(WarnNegativeWater))
	assert.False(t, r.HasWarning(WarnAggregateFraction))
}

func TestComputeMixDesignUnknownExposure(t *testing.T) {
	in := scenarioInputs()
	in.Exposure = iscode.Exposure("Coastal")

	e := New(nil)
	_, err := e.ComputeMixDesign(in)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInvalidParameter))
}
