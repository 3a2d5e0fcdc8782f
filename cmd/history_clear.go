package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyClearYes bool

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the mix history file",
	Run:   runHistoryClear,
}

func init() {
	historyCmd.AddCommand(historyClearCmd)

	historyClearCmd.Flags().BoolVar(&historyClearYes, "yes", false, "Confirm deletion without prompting")
}

func runHistoryClear(cmd *cobra.Command, args []string) {
	store := historyStore()

	if !historyClearYes {
		fmt.Printf("This deletes the mix history at %s.\n", store.Path())
		fmt.Println("Re-run with --yes to confirm.")
		return
	}

	if err := store.Clear(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println("Mix history cleared.")
}
