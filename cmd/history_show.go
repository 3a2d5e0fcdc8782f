package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gomix/internal/mix"
)

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one stored mix design in full",
	Args:  cobra.ExactArgs(1),
	Run:   runHistoryShow,
}

func init() {
	historyCmd.AddCommand(historyShowCmd)
}

func runHistoryShow(cmd *cobra.Command, args []string) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("Error: invalid design id %q\n", args[0])
		return
	}

	e, err := historyStore().Get(id)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Printf("MIX DESIGN #%d  (%s)\n", e.ID, e.Date)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Grade:\t%s\n", e.Grade)
	fmt.Fprintf(w, "  Target Strength:\t%.3f MPa\n", e.Strength)
	fmt.Fprintf(w, "  Water-Cement Ratio:\t%.3f\n", e.WCRatio)
	fmt.Fprintf(w, "  Cement:\t%.3f kg/m³\n", e.Cement)
	if e.FlyAsh > 0 {
		fmt.Fprintf(w, "  Fly Ash:\t%.3f kg/m³\n", e.FlyAsh)
		fmt.Fprintf(w, "  Cement Saved:\t%.3f kg/m³\n", e.CementSaved)
	}
	fmt.Fprintf(w, "  Water:\t%.3f Lit\n", e.Water)
	fmt.Fprintf(w, "  Fine Aggregate:\t%.3f kg/m³\n", e.FineAgg)
	fmt.Fprintf(w, "  Coarse Aggregate:\t%.3f kg/m³\n", e.CoarseAgg)
	fmt.Fprintf(w, "  Chemical Admixture:\t%.3f kg/m³\n", e.Admixture)
	fmt.Fprintf(w, "  Cement, 50 kg bags:\t%.1f\n", e.Cement/mix.CementBagSize)
	w.Flush()
	fmt.Println()
}
