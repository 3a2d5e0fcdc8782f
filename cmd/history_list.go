package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored mix designs",
	Run:   runHistoryList,
}

func init() {
	historyCmd.AddCommand(historyListCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) {
	store := historyStore()
	entries, err := store.Load()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(entries) == 0 {
		fmt.Println("No mix designs in history.")
		return
	}

	fmt.Println()
	fmt.Println("MIX DESIGN HISTORY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  ID\tDate\tGrade\tStrength\tW/C\tCement\tWater\tFly Ash\n")
	fmt.Fprintf(w, "  ──\t────\t─────\t────────\t───\t──────\t─────\t───────\n")
	for _, e := range entries {
		flyAsh := "-"
		if e.FlyAsh > 0 {
			flyAsh = fmt.Sprintf("%.1f", e.FlyAsh)
		}
		fmt.Fprintf(w, "  %d\t%s\t%s\t%.2f\t%.2f\t%.1f\t%.1f\t%s\n",
			e.ID, e.Date, e.Grade, e.Strength, e.WCRatio, e.Cement, e.Water, flyAsh)
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  %d design(s). History file: %s\n", len(entries), store.Path())
	fmt.Println()
}
