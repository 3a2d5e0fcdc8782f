package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomix/internal/mix"
	"gomix/internal/thermal"
)

func sampleResult() *mix.Result {
	return &mix.Result{
		Grade:         "M 25",
		CementContent: 354.888,
		Composition: mix.Composition{
			FineMass:      732.742,
			CoarseMass:    1195.418,
			AdmixtureMass: 7.098,
		},
		Moisture: mix.MoistureCorrection{CorrectedWater: 190.748},
	}
}

func TestFromResult(t *testing.T) {
	d := FromResult(sampleResult())

	assert.Equal(t, "M 25", d.Grade)
	assert.InDelta(t, 354.888, d.Cement, 1e-9)
	assert.InDelta(t, 190.748, d.Water, 1e-9)
	assert.InDelta(t, 732.742, d.FineAggregate, 1e-9)
	assert.InDelta(t, 1195.418, d.CoarseAggregate, 1e-9)
	assert.InDelta(t, 7.098, d.Admixture, 1e-9)
	assert.Zero(t, d.FlyAsh)
}

func TestFromResultFlyAsh(t *testing.T) {
	r := sampleResult()
	r.FlyAsh = &mix.FlyAshBlend{CementContent: 300, FlyAshContent: 90}
	r.CementContent = 300

	d := FromResult(r)

	assert.InDelta(t, 300, d.Cement, 1e-9)
	assert.InDelta(t, 90, d.FlyAsh, 1e-9)
}

func TestDrawASCIIComposition(t *testing.T) {
	out := DrawASCIIComposition(FromResult(sampleResult()))

	assert.Contains(t, out, "MIX COMPOSITION M 25")
	assert.Contains(t, out, "Cement")
	assert.Contains(t, out, "Coarse Aggregate")
	assert.Contains(t, out, "Total mass")
	assert.NotContains(t, out, "Fly Ash")

	// The heaviest material fills the full bar width.
	assert.Contains(t, out, strings.Repeat("█", 34))
	assert.NotContains(t, out, strings.Repeat("█", 35))
}

func TestDrawASCIICompositionFlyAsh(t *testing.T) {
	d := FromResult(sampleResult())
	d.FlyAsh = 90

	out := DrawASCIIComposition(d)

	assert.Contains(t, out, "Fly Ash")
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("MIX DESIGN", []string{"Cement: 354.9 kg", "Water: 190.7 L"})

	assert.Contains(t, out, "╔")
	assert.Contains(t, out, "╚")
	assert.Contains(t, out, "MIX DESIGN")
	assert.Contains(t, out, "Cement: 354.9 kg")

	// Top border, title, separator, two lines, bottom border.
	assert.Equal(t, 6, strings.Count(out, "\n"))
}

func TestDrawEvaporationChart(t *testing.T) {
	out := DrawEvaporationChart(thermal.Input{ConcreteTemp: 35, Humidity: 40}, 10, 40, 5)

	assert.Contains(t, out, "Evaporation kg/m2/h")
	assert.Contains(t, out, "┤")
}

func TestDrawEvaporationChartBadRange(t *testing.T) {
	out := DrawEvaporationChart(thermal.Input{ConcreteTemp: 35, Humidity: 40}, 40, 10, 5)

	assert.Empty(t, out)
}

func TestExportCompositionChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts", "mix.png")

	err := ExportCompositionChart(FromResult(sampleResult()), path)

	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestExportCompositionChartDefaultsToPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mix")

	err := ExportCompositionChart(FromResult(sampleResult()), path)

	require.NoError(t, err)
	_, err = os.Stat(path + ".png")
	require.NoError(t, err)
}

func TestExportEvaporationChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evap.svg")

	err := ExportEvaporationChart(thermal.Input{ConcreteTemp: 35, Humidity: 40}, 10, 40, 5, path)

	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestExportEvaporationChartBadRange(t *testing.T) {
	err := ExportEvaporationChart(thermal.Input{ConcreteTemp: 35, Humidity: 40}, 40, 10, 5, "evap.png")

	assert.Error(t, err)
}
