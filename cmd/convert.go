package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gomix/internal/units"
)

var (
	convertQuantity string
	convertValue    float64
	convertToMetric bool
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert design quantities between metric and imperial units",
	Long: `Convert a value between the metric and imperial units used in a
mix design. Supported quantities:

  length    m   <-> ft
  volume    m3  <-> ft3
  mass      kg  <-> lb
  pressure  MPa <-> psi

Examples:
  # 354.9 kg to pounds
  gomix convert --quantity mass --value 354.9

  # 1000 psi to MPa
  gomix convert --quantity pressure --value 1000 --to-metric`,
	Run: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertQuantity, "quantity", "q", "", "Quantity kind (length, volume, mass, pressure) [required]")
	convertCmd.Flags().Float64VarP(&convertValue, "value", "n", 0, "Value to convert [required]")
	convertCmd.Flags().BoolVar(&convertToMetric, "to-metric", false, "Convert imperial to metric instead of metric to imperial")

	convertCmd.MarkFlagRequired("quantity")
	convertCmd.MarkFlagRequired("value")
}

func runConvert(cmd *cobra.Command, args []string) {
	q, err := units.ParseQuantity(convertQuantity)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	metricUnit, imperialUnit := units.Labels(q)

	if convertToMetric {
		out, err := units.ToMetric(q, convertValue)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("%g %s = %.4f %s\n", convertValue, imperialUnit, out, metricUnit)
		return
	}

	out, err := units.ToImperial(q, convertValue)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("%g %s = %.4f %s\n", convertValue, metricUnit, out, imperialUnit)
}
