// Package export renders finished mix designs to PDF reports, Excel
// workbooks and JSON design files.
package export

import (
	"fmt"
	"strconv"

	"gomix/internal/mix"
)

// row is one label/value line of a report section.
type row struct {
	label string
	value string
}

// section groups report rows under a heading.
type section struct {
	title string
	rows  []row
}

func f3(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func f1(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// inputRows flattens the design parameters into report rows, in the order
// the input form presents them.
func inputRows(in mix.Inputs) []row {
	mineral := "None"
	if in.UseFlyAsh {
		mineral = "Fly Ash"
	}
	pump := "No"
	if in.Pumpable {
		pump = "Yes"
	}

	rows := []row{
		{"Grade Designation", in.GradeDesignation()},
		{"Mineral Admixture", mineral},
		{"Nominal Size", fmt.Sprintf("%d mm", in.NominalSizeMM)},
		{"Workability", fmt.Sprintf("%g mm slump", in.SlumpMM)},
		{"Exposure Condition", string(in.Exposure)},
		{"Pump Concrete", pump},
		{"Aggregate Type", string(in.Shape)},
		{"Chemical Admixture", string(in.Admixture)},
		{"Cement SG", f3(in.CementSG)},
		{"Coarse Aggregate SG", f3(in.CoarseSG)},
		{"Fine Aggregate SG", f3(in.FineSG)},
		{"Chemical Admixture SG", f3(in.AdmixtureSG)},
		{"Coarse Aggregate Water Absorption", fmt.Sprintf("%g %%", in.AbsorptionCoarse)},
		{"Fine Aggregate Water Absorption", fmt.Sprintf("%g %%", in.AbsorptionFine)},
		{"Fine Aggregate Zone", string(in.Zone)},
		{"Coarse Aggregate Surface Moisture", fmt.Sprintf("%g %%", in.SurfaceMoistureCoarse)},
		{"Fine Aggregate Surface Moisture", fmt.Sprintf("%g %%", in.SurfaceMoistureFine)},
	}
	if in.UseFlyAsh {
		rows = append(rows, row{"Fly Ash SG", f3(in.FlyAshSG)})
	}
	return rows
}

// resultSections lays the calculated design out the way the result panes
// present it. Units are written in ASCII for PDF and spreadsheet safety.
func resultSections(r *mix.Result) []section {
	c := r.Composition

	trial := section{title: "Trial Mix"}
	trial.rows = append(trial.rows, row{"Target Strength", f3(r.TargetStrength) + " MPa"})
	if r.FlyAsh != nil {
		trial.rows = append(trial.rows, row{"Fly Ash", f3(r.FlyAsh.FlyAshContent) + " kg/m3"})
	}
	trial.rows = append(trial.rows,
		row{"Water Cement Ratio", f3(r.EffectiveRatio())},
		row{"Cement", f3(r.CementContent) + " kg/m3"},
		row{"Water", f3(r.WaterContent) + " Lit"},
		row{"Fine Aggregate", f3(c.FineMass) + " kg"},
		row{"Coarse Aggregate", f3(c.CoarseMass) + " kg"},
		row{"Chemical Admixture", f3(c.AdmixtureMass) + " kg/m3"},
	)

	volumes := section{title: "Volumes"}
	volumes.rows = append(volumes.rows, row{"Volume of Cement", f3(c.CementVolume) + " m3"})
	if r.FlyAsh != nil {
		volumes.rows = append(volumes.rows,
			row{"Percentage of Fly Ash", fmt.Sprintf("%d %%", r.FlyAsh.ReplacementPct)},
			row{"Volume of Fly Ash", f3(c.FlyAshVolume) + " m3"},
		)
	}
	volumes.rows = append(volumes.rows,
		row{"Volume of Water", f3(c.WaterVolume) + " m3"},
		row{"Proportion of Volume of C.A", f3(r.CoarseFraction)},
		row{"Proportion of Volume of F.A", f3(r.FineFraction)},
		row{"Volume of All in Aggregate", f3(c.AggregateVolume) + " m3"},
		row{"Volume of Chemical Admixture", f3(c.AdmixtureVolume) + " m3"},
	)

	water := section{
		title: "Free Water Content",
		rows: []row{
			{"Water absorption, coarse aggregate", f3(r.Moisture.AbsorptionCoarse) + " Lit"},
			{"Water absorption, fine aggregate", f3(r.Moisture.AbsorptionFine) + " Lit"},
			{"Surface moisture, coarse aggregate", f3(r.Moisture.SurfaceMoistureCoarse) + " Lit"},
			{"Surface moisture, fine aggregate", f3(r.Moisture.SurfaceMoistureFine) + " Lit"},
		},
	}

	final := section{title: "Final Data"}
	final.rows = append(final.rows, row{"Water content after correction", f3(r.Moisture.CorrectedWater) + " Lit"})
	if r.FlyAsh != nil {
		final.rows = append(final.rows, row{"Cement saved", f3(r.FlyAsh.CementSaved) + " kg/m3"})
	}
	final.rows = append(final.rows,
		row{"Mix proportions by weight", r.ProportionsByWeight().String()},
		row{"Cement, 50 kg bags", f1(r.CementBags())},
	)
	if r.FlyAsh != nil {
		final.rows = append(final.rows, row{"Fly Ash, 50 kg units", f1(r.FlyAsh.FlyAshContent / mix.CementBagSize)})
	}
	final.rows = append(final.rows,
		row{"Fine Aggregate, 50 kg units", f1(c.FineMass / mix.CementBagSize)},
		row{"Coarse Aggregate, 50 kg units", f1(c.CoarseMass / mix.CementBagSize)},
	)

	return []section{trial, volumes, water, final}
}
