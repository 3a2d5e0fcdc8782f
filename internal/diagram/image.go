package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"gomix/internal/errors"
	"gomix/internal/thermal"
)

// ExportCompositionChart exports the per-m³ composition as a bar chart.
// The image format follows the file extension (.png, .svg, .pdf);
// anything else gets ".png" appended.
func ExportCompositionChart(data CompositionData, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Mix Composition %s", data.Grade)
	p.Y.Label.Text = "Mass (kg/m3)"
	p.Add(plotter.NewGrid())

	bars := data.bars()
	values := make(plotter.Values, len(bars))
	labels := make([]string, len(bars))
	for i, b := range bars {
		values[i] = b.value
		labels[i] = b.label
	}

	chart, err := plotter.NewBarChart(values, vg.Points(32))
	if err != nil {
		return err
	}
	chart.LineStyle.Width = vg.Length(0)
	chart.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	p.Add(chart)
	p.NominalX(labels...)

	return savePlot(p, filename)
}

// ExportEvaporationChart exports the evaporation rate over a range of
// ambient temperatures as a line chart, with the moderate and high risk
// thresholds drawn as dashed reference lines.
func ExportEvaporationChart(in thermal.Input, from, to, step float64, filename string) error {
	rates := thermal.EvaporationCurve(in, from, to, step)
	if rates == nil {
		return errors.Newf(errors.TypeInvalidParameter,
			"invalid ambient range %.1f..%.1f step %.1f", from, to, step)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Evaporation Rate (concrete %.0f C, humidity %.0f%%)",
		in.ConcreteTemp, in.Humidity)
	p.X.Label.Text = "Ambient Temperature (C)"
	p.Y.Label.Text = "Evaporation (kg/m2/h)"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(rates))
	for i, r := range rates {
		pts[i].X = from + float64(i)*step
		pts[i].Y = r
	}

	curve, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	curve.LineStyle.Width = vg.Points(2)
	curve.LineStyle.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	p.Add(curve)
	p.Legend.Add("evaporation", curve)

	thresholds := []struct {
		value float64
		name  string
		color color.RGBA
	}{
		{0.5, "moderate risk", color.RGBA{R: 255, G: 165, B: 0, A: 255}},
		{1.0, "high risk", color.RGBA{R: 220, G: 20, B: 60, A: 255}},
	}
	for _, th := range thresholds {
		line, err := plotter.NewLine(plotter.XYs{
			{X: from, Y: th.value},
			{X: to, Y: th.value},
		})
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1)
		line.LineStyle.Color = th.color
		line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
		p.Add(line)
		p.Legend.Add(th.name, line)
	}
	p.Legend.Top = true

	return savePlot(p, filename)
}

// savePlot writes the plot at 8x6 inches, creating the parent directory
// when needed.
func savePlot(p *plot.Plot, filename string) error {
	width := 8 * vg.Inch
	height := 6 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
