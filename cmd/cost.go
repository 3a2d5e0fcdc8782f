package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"gomix/internal/config"
	"gomix/internal/cost"
)

var (
	costID         int
	costCementRate float64
	costWaterRate  float64
	costFineRate   float64
	costCoarseRate float64
	costAdmixRate  float64
	costFlyAshRate float64
)

var costCmd = &cobra.Command{
	Use:   "cost",
	Short: "Estimate material costs for a stored mix design",
	Long: `Estimate the per-m³ material cost of a stored mix design.

Rates follow the usual quoting units: cement per 50 kg bag, water and
aggregates per m³, chemical admixture and fly ash per kg. Rates not
given on the command line come from the standing configuration.

The design is taken from the mix history: the latest entry by default,
or a specific one with --id.

Examples:
  gomix cost --cement-rate 400 --water-rate 50 --fine-rate 1500 --coarse-rate 1200

  # Price an older design
  gomix cost --id 2 --cement-rate 400`,
	Run: runCost,
}

func init() {
	rootCmd.AddCommand(costCmd)

	r := config.Get().Rates

	costCmd.Flags().IntVar(&costID, "id", 0, "History entry to price (default latest)")
	costCmd.Flags().Float64Var(&costCementRate, "cement-rate", r.CementPerBag, "Cement rate per 50 kg bag")
	costCmd.Flags().Float64Var(&costWaterRate, "water-rate", r.WaterPerCubicMetre, "Water rate per m³")
	costCmd.Flags().Float64Var(&costFineRate, "fine-rate", r.FineAggregatePerCubicMetre, "Fine aggregate rate per m³")
	costCmd.Flags().Float64Var(&costCoarseRate, "coarse-rate", r.CoarseAggregatePerCubicMetre, "Coarse aggregate rate per m³")
	costCmd.Flags().Float64Var(&costAdmixRate, "admixture-rate", r.AdmixturePerKg, "Chemical admixture rate per kg")
	costCmd.Flags().Float64Var(&costFlyAshRate, "fly-ash-rate", r.FlyAshPerKg, "Fly ash rate per kg")
}

func runCost(cmd *cobra.Command, args []string) {
	design, err := designForCalc(costID)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	rates := cost.RatesFromConfig(config.Get().Rates)
	overrides := []struct {
		flag  string
		dst   *decimal.Decimal
		value float64
	}{
		{"cement-rate", &rates.CementPerBag, costCementRate},
		{"water-rate", &rates.WaterPerCubicMetre, costWaterRate},
		{"fine-rate", &rates.FineAggregatePerCubicMetre, costFineRate},
		{"coarse-rate", &rates.CoarseAggregatePerCubicMetre, costCoarseRate},
		{"admixture-rate", &rates.AdmixturePerKg, costAdmixRate},
		{"fly-ash-rate", &rates.FlyAshPerKg, costFlyAshRate},
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.flag) {
			*o.dst = decimal.NewFromFloat(o.value)
		}
	}

	breakdown, err := cost.Estimate(design, rates)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          MATERIAL COST ESTIMATE (per m³)")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Design #%d  %s  (%s)\n", design.ID, design.Grade, design.Date)
	fmt.Println()

	fmt.Println("COST BREAKDOWN:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Material\tQuantity\tRate\tAmount\tShare\n")
	fmt.Fprintf(w, "  ────────\t────────\t────\t──────\t─────\n")
	for _, line := range breakdown.Lines {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s%%\n",
			line.Material,
			line.Quantity.StringFixed(2),
			line.Rate.StringFixed(2),
			line.Amount.StringFixed(2),
			line.Share.StringFixed(1))
	}
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  TOTAL COST PER m³ = %s\n", breakdown.Total.StringFixed(2))
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()

	if breakdown.Total.IsZero() {
		fmt.Println("  All rates are zero. Set rates with flags or in the")
		fmt.Println("  configuration file to get a priced estimate.")
		fmt.Println()
	}
}
