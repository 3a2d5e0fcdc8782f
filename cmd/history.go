package cmd

import (
	"github.com/spf13/cobra"

	"gomix/internal/config"
	"gomix/internal/errors"
	"gomix/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse and manage stored mix designs",
	Long: `Browse the mix design history. Every calculated design is recorded
in a JSON file (default ~/.gomix/mix_history.json, overridable with the
GOMIX_HISTORY environment variable).

Subcommands:
  list     - List all stored mix designs
  show     - Show one stored design in full
  compare  - Compare two stored designs side by side
  export   - Export the history to an Excel workbook
  clear    - Delete the history file`,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

// historyStore opens the history at the configured location.
func historyStore() *history.Store {
	return history.NewStore(config.Get().History.Path)
}

// designForCalc returns the stored design a calculator works from: the
// entry with the given id, or the most recent one when id is 0.
func designForCalc(id int) (history.Entry, error) {
	store := historyStore()
	if id > 0 {
		return store.Get(id)
	}
	entries, err := store.Load()
	if err != nil {
		return history.Entry{}, err
	}
	if len(entries) == 0 {
		return history.Entry{}, errors.New(errors.TypeStorage,
			"no mix designs in history; run 'gomix design' first")
	}
	return entries[len(entries)-1], nil
}
