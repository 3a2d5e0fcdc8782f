package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gomix/internal/config"
	"gomix/internal/logging"
	"gomix/internal/version"
)

var (
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "gomix",
	Short: "Concrete Mix Design Tool",
	Long: `gomix - Go Concrete Mix Designer

A CLI tool for concrete mix proportioning based on
IS 10262:2009 with the durability limits of IS 456:2000.

This tool helps civil engineers perform:
  - Complete mix designs for plain and fly-ash blended concrete
  - Aggregate proportioning and free-water correction
  - Batch quantity and material cost calculations
  - Temperature effect checks for hot and cold weather placement
  - Mix history tracking with comparison and Excel export

All proportioning follows IS 10262:2009 provisions.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initConfig()
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gomix v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Concrete Mix Designer                                ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for concrete mix proportioning based on")
		fmt.Println("  IS 10262:2009 and the durability limits of IS 456:2000.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Mix design for plain and fly-ash blended concrete")
		fmt.Println("    • Batch quantities with safety factor")
		fmt.Println("    • Material cost estimates")
		fmt.Println("    • Temperature effects for hot and cold weather placement")
		fmt.Println("    • Mix history with comparison and Excel export")
		fmt.Println()
		fmt.Println("  Use 'gomix --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig loads the configuration before any command runs. An explicit
// --config path wins over the GOMIX_CONFIG environment variable.
func initConfig() {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err == nil {
			config.Set(cfg)
		}
	} else {
		cfg, err = config.LoadEnv()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load configuration: %v\n", err)
		cfg = config.Default()
		config.Set(cfg)
	}

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not initialize logging: %v\n", err)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (default ~/.gomix/config.json)")
}
