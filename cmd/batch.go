package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gomix/internal/batch"
)

var (
	batchSize   float64
	batchSafety float64
	batchCount  int
	batchID     int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Scale a stored mix design to batch quantities",
	Long: `Scale a stored mix design to per-batch and total material
quantities, with a safety factor covering handling and wastage.

The design is taken from the mix history: the latest entry by default,
or a specific one with --id.

Examples:
  # Three 2 m³ batches with the default 10% safety factor
  gomix batch --size 2 --batches 3

  # Batch an older design
  gomix batch --id 4 --size 0.5`,
	Run: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().Float64VarP(&batchSize, "size", "s", 1.0, "Batch size (m³)")
	batchCmd.Flags().Float64Var(&batchSafety, "safety", 10.0, "Safety factor (%)")
	batchCmd.Flags().IntVarP(&batchCount, "batches", "n", 1, "Number of batches")
	batchCmd.Flags().IntVar(&batchID, "id", 0, "History entry to batch (default latest)")
}

func runBatch(cmd *cobra.Command, args []string) {
	design, err := designForCalc(batchID)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	result, err := batch.Calculate(batch.Input{
		BatchSize:    batchSize,
		SafetyFactor: batchSafety,
		Batches:      batchCount,
	}, design)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          BATCH QUANTITIES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Design #%d  %s  (%s)\n", design.ID, design.Grade, design.Date)
	fmt.Println()

	printBatchQuantities(
		fmt.Sprintf("PER BATCH (%.2f m³, %g%% safety factor)", batchSize, batchSafety),
		result.PerBatch)
	printBatchQuantities(
		fmt.Sprintf("TOTAL FOR %d BATCH(ES)", batchCount),
		result.Total)

	fmt.Println("  Notes:")
	fmt.Printf("    • All quantities include the %g%% safety factor\n", batchSafety)
	fmt.Println("    • Adjust water for aggregate moisture at the mixer")
	fmt.Println()
}

func printBatchQuantities(title string, q batch.Quantities) {
	fmt.Println(title + ":")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Cement:\t%.2f kg\n", q.Cement)
	if q.FlyAsh > 0 {
		fmt.Fprintf(w, "  Fly Ash:\t%.2f kg\n", q.FlyAsh)
	}
	fmt.Fprintf(w, "  Water:\t%.2f Lit\n", q.Water)
	fmt.Fprintf(w, "  Fine Aggregate:\t%.2f kg\n", q.FineAggregate)
	fmt.Fprintf(w, "  Coarse Aggregate:\t%.2f kg\n", q.CoarseAggregate)
	fmt.Fprintf(w, "  Chemical Admixture:\t%.2f kg\n", q.Admixture)
	fmt.Fprintf(w, "  Cement Bags (50 kg):\t%.1f\n", q.CementBags())
	w.Flush()
	fmt.Println()
}
