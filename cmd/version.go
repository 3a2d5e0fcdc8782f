package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gomix/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gomix",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gomix v%s\n", version.Version)
		fmt.Println("Concrete Mix Design Tool")
		fmt.Println("Based on IS 10262:2009 and IS 456:2000")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
