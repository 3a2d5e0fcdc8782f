package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"gomix/internal/errors"
	"gomix/internal/history"
	"gomix/internal/iscode"
	"gomix/internal/mix"
)

func sampleInputs() mix.Inputs {
	return mix.Inputs{
		Grade:            25,
		Exposure:         iscode.ExposureModerate,
		NominalSizeMM:    20,
		SlumpMM:          100,
		Shape:            iscode.ShapeCrushedAngular,
		Zone:             iscode.ZoneII,
		Admixture:        iscode.AdmixturePlasticizer,
		CementSG:         3.15,
		CoarseSG:         2.74,
		FineSG:           2.74,
		AdmixtureSG:      1.145,
		AbsorptionCoarse: 0.5,
		AbsorptionFine:   1.0,
	}
}

func sampleResult() *mix.Result {
	return &mix.Result{
		Grade:            "M 25",
		TargetStrength:   31.6,
		WaterCementRatio: 0.5,
		WaterContent:     177.444,
		CementContent:    354.888,
		CoarseFraction:   0.62,
		FineFraction:     0.38,
		Composition: mix.Composition{
			CementVolume:    0.1126628571,
			WaterVolume:     0.177444,
			AdmixtureVolume: 0.006198917,
			AggregateVolume: 0.7036942259,
			AdmixtureMass:   7.09776,
			CoarseMass:      1195.4357,
			FineMass:        732.6864,
		},
		Moisture: mix.MoistureCorrection{
			AbsorptionCoarse: 5.9771785,
			AbsorptionFine:   7.326864,
			CorrectedWater:   190.7480425,
		},
	}
}

func TestInputRows(t *testing.T) {
	rows := inputRows(sampleInputs())

	require.Len(t, rows, 17)
	assert.Equal(t, row{"Grade Designation", "M 25"}, rows[0])
	assert.Equal(t, row{"Mineral Admixture", "None"}, rows[1])
	assert.Equal(t, row{"Nominal Size", "20 mm"}, rows[2])
	assert.Equal(t, row{"Workability", "100 mm slump"}, rows[3])
	assert.Equal(t, row{"Exposure Condition", "Moderate"}, rows[4])
	assert.Equal(t, row{"Pump Concrete", "No"}, rows[5])
}

func TestInputRowsFlyAsh(t *testing.T) {
	in := sampleInputs()
	in.UseFlyAsh = true
	in.FlyAshSG = 2.2

	rows := inputRows(in)

	require.Len(t, rows, 18)
	assert.Equal(t, row{"Mineral Admixture", "Fly Ash"}, rows[1])
	assert.Equal(t, row{"Fly Ash SG", "2.200"}, rows[17])
}

func TestResultSections(t *testing.T) {
	secs := resultSections(sampleResult())

	require.Len(t, secs, 4)
	assert.Equal(t, "Trial Mix", secs[0].title)
	assert.Equal(t, "Volumes", secs[1].title)
	assert.Equal(t, "Free Water Content", secs[2].title)
	assert.Equal(t, "Final Data", secs[3].title)

	assert.Equal(t, row{"Target Strength", "31.600 MPa"}, secs[0].rows[0])
	assert.Equal(t, row{"Water Cement Ratio", "0.500"}, secs[0].rows[1])
	assert.Equal(t, row{"Cement", "354.888 kg/m3"}, secs[0].rows[2])
	assert.Equal(t, row{"Proportion of Volume of C.A", "0.620"}, secs[1].rows[2])
	assert.Equal(t, row{"Water content after correction", "190.748 Lit"}, secs[3].rows[0])
	assert.Equal(t, row{"Mix proportions by weight", "1.00 : 2.06 : 3.37 : 0.54"}, secs[3].rows[1])
	assert.Equal(t, row{"Cement, 50 kg bags", "7.1"}, secs[3].rows[2])
}

func TestResultSectionsFlyAsh(t *testing.T) {
	r := sampleResult()
	r.FlyAsh = &mix.FlyAshBlend{
		CementContent:  341.0,
		FlyAshContent:  113.667,
		CementSaved:    72.333,
		RevisedRatio:   0.39,
		ReplacementPct: 30,
	}
	r.CementContent = 341.0
	r.Composition.FlyAshVolume = 0.0516667

	secs := resultSections(r)

	assert.Equal(t, row{"Fly Ash", "113.667 kg/m3"}, secs[0].rows[1])
	assert.Equal(t, row{"Water Cement Ratio", "0.390"}, secs[0].rows[2])
	assert.Equal(t, row{"Percentage of Fly Ash", "30 %"}, secs[1].rows[1])
	assert.Equal(t, row{"Cement saved", "72.333 kg/m3"}, secs[3].rows[1])
}

func TestSaveLoadDesign(t *testing.T) {
	path := filepath.Join(t.TempDir(), "design.json")

	require.NoError(t, SaveDesign(path, sampleInputs(), sampleResult()))

	d, err := LoadDesign(path)
	require.NoError(t, err)
	assert.Equal(t, sampleInputs(), d.Inputs)
	assert.Equal(t, sampleResult(), d.Results)
	assert.NotEmpty(t, d.Date)
}

func TestLoadDesignWithoutResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "design.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"inputs":{}}`), 0644))

	_, err := LoadDesign(path)

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeStorage))
}

func TestLoadDesignMissingFile(t *testing.T) {
	_, err := LoadDesign(filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeStorage))
}

func TestPDFReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")

	require.NoError(t, PDFReport(path, sampleInputs(), sampleResult()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 1000)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "design.xlsx")

	require.NoError(t, Workbook(path, sampleInputs(), sampleResult()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(inputSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Parameter", v)

	v, err = f.GetCellValue(inputSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Grade Designation", v)
	v, err = f.GetCellValue(inputSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "M 25", v)

	v, err = f.GetCellValue(resultsSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Trial Mix", v)
	v, err = f.GetCellValue(resultsSheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "Target Strength : 31.600 MPa", v)
}

func TestHistoryWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.xlsx")

	entries := []history.Entry{
		{
			ID: 1, Date: "2026-01-15 09:30", Grade: "M 25", Strength: 31.6,
			WCRatio: 0.5, Cement: 354.9, Water: 177.4, FineAgg: 732.7,
			CoarseAgg: 1195.4, Admixture: 7.1,
		},
		{
			ID: 2, Date: "2026-01-16 14:00", Grade: "M 30", Strength: 38.25,
			WCRatio: 0.45, Cement: 341.0, Water: 177.4, FineAgg: 710.0,
			CoarseAgg: 1180.0, Admixture: 9.1, FlyAsh: 113.7, CementSaved: 72.3,
		},
	}
	require.NoError(t, HistoryWorkbook(path, entries))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(historySheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, "Cement Saved (kg)", rows[0][10])
	assert.Equal(t, "M 25", rows[1][1])
	assert.Equal(t, "31.6", rows[1][2])
	assert.Equal(t, "", rows[1][5])
	assert.Equal(t, "113.7", rows[2][5])
	assert.Equal(t, "72.3", rows[2][10])
}
