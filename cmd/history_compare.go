package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var historyCompareCmd = &cobra.Command{
	Use:   "compare <first-id> <second-id>",
	Short: "Compare two stored mix designs side by side",
	Long: `Compare two stored mix designs. Differences are reported as the
second design's values minus the first's.

Example:
  gomix history compare 1 3`,
	Args: cobra.ExactArgs(2),
	Run:  runHistoryCompare,
}

func init() {
	historyCmd.AddCommand(historyCompareCmd)
}

func runHistoryCompare(cmd *cobra.Command, args []string) {
	first, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("Error: invalid design id %q\n", args[0])
		return
	}
	second, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Printf("Error: invalid design id %q\n", args[1])
		return
	}

	c, err := historyStore().Compare(first, second)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	d := c.Delta()

	fmt.Println()
	fmt.Printf("COMPARING MIX DESIGN #%d (%s) WITH #%d (%s):\n",
		c.First.ID, c.First.Grade, c.Second.ID, c.Second.Grade)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Quantity\t#%d\t#%d\tDifference\n", c.First.ID, c.Second.ID)
	fmt.Fprintf(w, "  ────────\t───\t───\t──────────\n")
	fmt.Fprintf(w, "  Target Strength (MPa)\t%.2f\t%.2f\t%+.2f\n", c.First.Strength, c.Second.Strength, d.Strength)
	fmt.Fprintf(w, "  Water-Cement Ratio\t%.3f\t%.3f\t%+.3f\n", c.First.WCRatio, c.Second.WCRatio, d.WCRatio)
	fmt.Fprintf(w, "  Cement (kg/m³)\t%.1f\t%.1f\t%+.1f\n", c.First.Cement, c.Second.Cement, d.Cement)
	fmt.Fprintf(w, "  Water (Lit)\t%.1f\t%.1f\t%+.1f\n", c.First.Water, c.Second.Water, d.Water)
	fmt.Fprintf(w, "  Fine Aggregate (kg/m³)\t%.1f\t%.1f\t%+.1f\n", c.First.FineAgg, c.Second.FineAgg, d.FineAgg)
	fmt.Fprintf(w, "  Coarse Aggregate (kg/m³)\t%.1f\t%.1f\t%+.1f\n", c.First.CoarseAgg, c.Second.CoarseAgg, d.CoarseAgg)
	w.Flush()
	fmt.Println()
}
