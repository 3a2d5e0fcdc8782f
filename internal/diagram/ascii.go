package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"gomix/internal/mix"
	"gomix/internal/thermal"
)

// CompositionData holds the per-m³ quantities drawn in composition
// diagrams. Masses are kg; water is litres.
type CompositionData struct {
	Grade string

	Cement          float64
	FlyAsh          float64 // 0 for plain designs
	Water           float64
	FineAggregate   float64
	CoarseAggregate float64
	Admixture       float64
}

// FromResult extracts the drawable quantities of a finished design.
func FromResult(r *mix.Result) CompositionData {
	d := CompositionData{
		Grade:           r.Grade,
		Cement:          r.CementContent,
		Water:           r.Moisture.CorrectedWater,
		FineAggregate:   r.Composition.FineMass,
		CoarseAggregate: r.Composition.CoarseMass,
		Admixture:       r.Composition.AdmixtureMass,
	}
	if r.FlyAsh != nil {
		d.FlyAsh = r.FlyAsh.FlyAshContent
	}
	return d
}

type bar struct {
	label string
	value float64
	unit  string
}

// bars lists the drawable quantities in display order, skipping fly ash for
// plain designs.
func (d CompositionData) bars() []bar {
	out := []bar{{"Cement", d.Cement, "kg"}}
	if d.FlyAsh > 0 {
		out = append(out, bar{"Fly Ash", d.FlyAsh, "kg"})
	}
	out = append(out,
		bar{"Water", d.Water, "L"},
		bar{"Fine Aggregate", d.FineAggregate, "kg"},
		bar{"Coarse Aggregate", d.CoarseAggregate, "kg"},
		bar{"Chemical Admixture", d.Admixture, "kg"},
	)
	return out
}

// DrawASCIIComposition renders the per-m³ composition as horizontal mass
// bars for the terminal.
func DrawASCIIComposition(data CompositionData) string {
	var sb strings.Builder

	barChars := 34

	maxMass := 0.0
	for _, b := range data.bars() {
		maxMass = max(maxMass, b.value)
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  MIX COMPOSITION %s (per m³)\n", data.Grade))
	sb.WriteString("  ─────────────────────────────\n")

	for _, b := range data.bars() {
		barLen := 0
		if maxMass > 0 {
			barLen = int(b.value / maxMass * float64(barChars))
		}
		sb.WriteString(fmt.Sprintf("  %-18s %9.1f %-2s │%s\n",
			b.label, b.value, b.unit, strings.Repeat("█", barLen)))
	}

	total := data.Cement + data.FlyAsh + data.Water +
		data.FineAggregate + data.CoarseAggregate + data.Admixture
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  Total mass ≈ %.1f kg/m³\n", total))

	return sb.String()
}

// DrawEvaporationChart renders the evaporation rate across a range of
// ambient temperatures as a terminal line chart. Returns "" when the range
// is invalid.
func DrawEvaporationChart(in thermal.Input, from, to, step float64) string {
	rates := thermal.EvaporationCurve(in, from, to, step)
	if rates == nil {
		return ""
	}

	graph := asciigraph.Plot(rates,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf(
			"Evaporation kg/m2/h over ambient %.0f..%.0f C (concrete %.0f C, RH %.0f%%)",
			from, to, in.ConcreteTemp, in.Humidity)),
	)

	return "\n" + graph + "\n"
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
