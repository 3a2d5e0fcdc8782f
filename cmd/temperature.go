package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gomix/internal/diagram"
	"gomix/internal/thermal"
)

var (
	tempConcrete float64
	tempAmbient  float64
	tempHumidity float64

	// Chart options
	tempChart     bool
	tempChartFrom float64
	tempChartTo   float64
	tempChartStep float64
	tempPlotFile  string
)

var temperatureCmd = &cobra.Command{
	Use:   "temperature",
	Short: "Check temperature effects on setting, strength and evaporation",
	Long: `Estimate how placement temperature and humidity affect setting time,
strength development and the surface evaporation rate, with the plastic
shrinkage cracking risk and counter-measures for hot or cold weather.

Examples:
  # Hot weather placement
  gomix temperature --concrete 38 --ambient 42 --humidity 20

  # Evaporation chart across ambient temperatures
  gomix temperature --concrete 30 --humidity 40 --chart`,
	Run: runTemperature,
}

func init() {
	rootCmd.AddCommand(temperatureCmd)

	temperatureCmd.Flags().Float64VarP(&tempConcrete, "concrete", "c", 20.0, "Concrete temperature (°C)")
	temperatureCmd.Flags().Float64VarP(&tempAmbient, "ambient", "a", 25.0, "Ambient temperature (°C)")
	temperatureCmd.Flags().Float64Var(&tempHumidity, "humidity", 65.0, "Relative humidity (%)")

	// Chart options
	temperatureCmd.Flags().BoolVar(&tempChart, "chart", false, "Draw the evaporation rate chart in the terminal")
	temperatureCmd.Flags().Float64Var(&tempChartFrom, "chart-from", 10, "Chart range start, ambient °C")
	temperatureCmd.Flags().Float64Var(&tempChartTo, "chart-to", 45, "Chart range end, ambient °C")
	temperatureCmd.Flags().Float64Var(&tempChartStep, "chart-step", 1, "Chart sampling step, °C")
	temperatureCmd.Flags().StringVarP(&tempPlotFile, "plot", "o", "", "Export evaporation chart to file (png, svg, pdf)")
}

func runTemperature(cmd *cobra.Command, args []string) {
	in := thermal.Input{
		ConcreteTemp: tempConcrete,
		AmbientTemp:  tempAmbient,
		Humidity:     tempHumidity,
	}

	eff, err := thermal.Calculate(in)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          TEMPERATURE EFFECTS ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("PLACEMENT CONDITIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Concrete Temperature:\t%.1f °C\n", in.ConcreteTemp)
	fmt.Fprintf(w, "  Ambient Temperature:\t%.1f °C\n", in.AmbientTemp)
	fmt.Fprintf(w, "  Relative Humidity:\t%.1f %%\n", in.Humidity)
	w.Flush()
	fmt.Println()

	setting := "as at ambient temperature"
	switch {
	case eff.SettingTimeFactor < 1:
		setting = "sets faster"
	case eff.SettingTimeFactor > 1:
		setting = "sets slower"
	}

	fmt.Println("PREDICTED EFFECTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Setting Time Factor:\t%.2f (%s)\n", eff.SettingTimeFactor, setting)
	fmt.Fprintf(w, "  Expected Strength:\t%.0f%% of design strength\n", eff.StrengthFactor*100)
	fmt.Fprintf(w, "  Evaporation Rate:\t%.3f kg/m²/h\n", eff.EvaporationRate)
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  PLASTIC SHRINKAGE RISK: %-15s\n", eff.Risk)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()

	if len(eff.Recommendations) > 0 {
		fmt.Println("RECOMMENDATIONS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		for _, rec := range eff.Recommendations {
			fmt.Printf("  • %s\n", rec)
		}
		fmt.Println()
	}

	if tempChart {
		chart := diagram.DrawEvaporationChart(in, tempChartFrom, tempChartTo, tempChartStep)
		if chart == "" {
			fmt.Println("Error: invalid chart range")
			return
		}
		fmt.Println(chart)
	}

	if tempPlotFile != "" {
		err := diagram.ExportEvaporationChart(in, tempChartFrom, tempChartTo, tempChartStep, tempPlotFile)
		if err != nil {
			fmt.Printf("Error exporting chart: %v\n", err)
			return
		}
		fmt.Printf("  Evaporation chart written to: %s\n", tempPlotFile)
		fmt.Println()
	}
}
