package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gomix/internal/export"
)

var historyExportFile string

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the mix history to an Excel workbook",
	Run:   runHistoryExport,
}

func init() {
	historyCmd.AddCommand(historyExportCmd)

	historyExportCmd.Flags().StringVarP(&historyExportFile, "output", "o", "mix_history.xlsx", "Output workbook file")
}

func runHistoryExport(cmd *cobra.Command, args []string) {
	entries, err := historyStore().Load()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(entries) == 0 {
		fmt.Println("No mix designs in history.")
		return
	}

	if err := export.HistoryWorkbook(historyExportFile, entries); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Mix history (%d designs) exported to: %s\n", len(entries), historyExportFile)
}
