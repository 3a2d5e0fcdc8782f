package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gomix/internal/config"
	"gomix/internal/diagram"
	"gomix/internal/errors"
	"gomix/internal/export"
	"gomix/internal/history"
	"gomix/internal/iscode"
	"gomix/internal/logging"
	"gomix/internal/mix"
)

var (
	// Mix parameters
	designGrade     string
	designExposure  string
	designSize      int
	designSlump     float64
	designShape     string
	designZone      string
	designAdmixture string
	designPump      bool
	designFlyAsh    bool

	// Material properties
	designCementSG    float64
	designCoarseSG    float64
	designFineSG      float64
	designAdmixtureSG float64
	designFlyAshSG    float64

	// Aggregate moisture state
	designAbsorptionCoarse float64
	designAbsorptionFine   float64
	designMoistureCoarse   float64
	designMoistureFine     float64

	// Input/output options
	designFrom        string
	designJSON        bool
	designSave        string
	designPDF         string
	designXLSX        string
	designShowDiagram bool
	designPlotFile    string
	designNoHistory   bool
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Calculate a complete concrete mix design",
	Long: `Calculate a complete mix design for one cubic metre of concrete:
target strength, water-cement ratio, water demand, cementitious content,
aggregate proportioning and moisture-corrected free water.

The procedure follows IS 10262:2009 with the exposure limits of
IS 456:2000 Table 5. With --fly-ash the cementitious content is split
between cement and fly ash, falling back to a plain design when no
replacement fraction keeps enough cement.

Examples:
  # M25 mix for moderate exposure, 20 mm aggregate, 100 mm slump
  gomix design --grade M25 --exposure Moderate

  # Fly-ash blended pump concrete with a composition chart
  gomix design --grade M30 --exposure Severe --fly-ash --pump --plot mix.png

  # Recompute a saved design file and export the report
  gomix design --from m25.json --pdf m25.pdf`,
	Run: runDesign,
}

func init() {
	rootCmd.AddCommand(designCmd)

	m := config.Get().Materials

	// Mix parameters
	designCmd.Flags().StringVarP(&designGrade, "grade", "g", "M25", "Concrete grade designation, e.g. M25")
	designCmd.Flags().StringVarP(&designExposure, "exposure", "e", "Mild", "Exposure condition (Mild, Moderate, Severe, Very-Severe, Extreme)")
	designCmd.Flags().IntVar(&designSize, "size", 20, "Nominal maximum aggregate size (10, 20 or 40 mm)")
	designCmd.Flags().Float64Var(&designSlump, "slump", 100, "Target slump (mm)")
	designCmd.Flags().StringVar(&designShape, "shape", "Sub-Angular", "Coarse aggregate shape (Crushed-Angular, Sub-Angular, Gravel, Rounded-Gravel)")
	designCmd.Flags().StringVar(&designZone, "zone", "Zone-I", "Fine aggregate grading zone (I to IV)")
	designCmd.Flags().StringVar(&designAdmixture, "admixture", "Plasticizer", "Chemical admixture (None, Plasticizer, Superplasticizer)")
	designCmd.Flags().BoolVar(&designPump, "pump", false, "Design for pumped concrete")
	designCmd.Flags().BoolVar(&designFlyAsh, "fly-ash", false, "Blend the cementitious content with fly ash")

	// Material properties
	designCmd.Flags().Float64Var(&designCementSG, "cement-sg", m.CementSG, "Cement specific gravity")
	designCmd.Flags().Float64Var(&designCoarseSG, "coarse-sg", m.CoarseAggregateSG, "Coarse aggregate specific gravity")
	designCmd.Flags().Float64Var(&designFineSG, "fine-sg", m.FineAggregateSG, "Fine aggregate specific gravity")
	designCmd.Flags().Float64Var(&designAdmixtureSG, "admixture-sg", m.AdmixtureSG, "Chemical admixture specific gravity")
	designCmd.Flags().Float64Var(&designFlyAshSG, "fly-ash-sg", m.FlyAshSG, "Fly ash specific gravity")

	// Aggregate moisture state
	designCmd.Flags().Float64Var(&designAbsorptionCoarse, "absorption-coarse", m.AbsorptionCoarse, "Coarse aggregate water absorption (%)")
	designCmd.Flags().Float64Var(&designAbsorptionFine, "absorption-fine", m.AbsorptionFine, "Fine aggregate water absorption (%)")
	designCmd.Flags().Float64Var(&designMoistureCoarse, "moisture-coarse", m.SurfaceMoistureCoarse, "Coarse aggregate surface moisture (%)")
	designCmd.Flags().Float64Var(&designMoistureFine, "moisture-fine", m.SurfaceMoistureFine, "Fine aggregate surface moisture (%)")

	// Input/output options
	designCmd.Flags().StringVar(&designFrom, "from", "", "Load parameters from a saved design file")
	designCmd.Flags().BoolVar(&designJSON, "json", false, "Print the result as JSON")
	designCmd.Flags().StringVar(&designSave, "save", "", "Save the design to a JSON file")
	designCmd.Flags().StringVar(&designPDF, "pdf", "", "Export a PDF report")
	designCmd.Flags().StringVar(&designXLSX, "xlsx", "", "Export an Excel workbook")
	designCmd.Flags().BoolVar(&designShowDiagram, "diagram", false, "Show ASCII composition diagram")
	designCmd.Flags().StringVarP(&designPlotFile, "plot", "o", "", "Export composition chart to file (png, svg, pdf)")
	designCmd.Flags().BoolVar(&designNoHistory, "no-history", false, "Do not record the design in the mix history")
}

func runDesign(cmd *cobra.Command, args []string) {
	in, err := designInputs(cmd)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	engine := mix.New(logging.Logger)
	result, err := engine.ComputeMixDesign(in)
	if err != nil && errors.IsType(err, errors.TypeFlyAshInfeasible) {
		fmt.Println()
		fmt.Printf("  Note: %v\n", err)
		fmt.Println("  Falling back to a plain cement design.")
		in.UseFlyAsh = false
		result, err = engine.ComputeMixDesign(in)
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if designJSON {
		out := struct {
			Inputs  mix.Inputs  `json:"inputs"`
			Results *mix.Result `json:"results"`
		}{in, result}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println(string(data))
	} else {
		printDesign(in, result)
	}

	if !designNoHistory {
		store := history.NewStore(config.Get().History.Path)
		entry, err := store.Append(history.FromResult(result))
		if err != nil {
			fmt.Printf("Warning: could not record mix history: %v\n", err)
		} else if !designJSON {
			fmt.Printf("  Recorded in mix history as #%d.\n", entry.ID)
		}
	}

	if designSave != "" {
		if err := export.SaveDesign(designSave, in, result); err != nil {
			fmt.Printf("Error saving design: %v\n", err)
		} else if !designJSON {
			fmt.Printf("  Design saved to: %s\n", designSave)
		}
	}
	if designPDF != "" {
		if err := export.PDFReport(designPDF, in, result); err != nil {
			fmt.Printf("Error exporting PDF: %v\n", err)
		} else if !designJSON {
			fmt.Printf("  PDF report written to: %s\n", designPDF)
		}
	}
	if designXLSX != "" {
		if err := export.Workbook(designXLSX, in, result); err != nil {
			fmt.Printf("Error exporting workbook: %v\n", err)
		} else if !designJSON {
			fmt.Printf("  Excel workbook written to: %s\n", designXLSX)
		}
	}
	if designPlotFile != "" {
		if err := diagram.ExportCompositionChart(diagram.FromResult(result), designPlotFile); err != nil {
			fmt.Printf("Error exporting chart: %v\n", err)
		} else if !designJSON {
			fmt.Printf("  Composition chart written to: %s\n", designPlotFile)
		}
	}
	if !designJSON {
		fmt.Println()
	}
}

// designInputs assembles the design parameters from a saved file or the
// command line. Material properties not given on the command line come from
// the standing configuration.
func designInputs(cmd *cobra.Command) (mix.Inputs, error) {
	if designFrom != "" {
		d, err := export.LoadDesign(designFrom)
		if err != nil {
			return mix.Inputs{}, err
		}
		return d.Inputs, nil
	}

	grade, err := iscode.ParseGrade(designGrade)
	if err != nil {
		return mix.Inputs{}, err
	}
	exposure, err := iscode.ParseExposure(designExposure)
	if err != nil {
		return mix.Inputs{}, err
	}
	shape, err := iscode.ParseShape(designShape)
	if err != nil {
		return mix.Inputs{}, err
	}
	zone, err := iscode.ParseZone(designZone)
	if err != nil {
		return mix.Inputs{}, err
	}
	admixture, err := iscode.ParseAdmixture(designAdmixture)
	if err != nil {
		return mix.Inputs{}, err
	}

	m := config.Get().Materials
	materialDefaults := []struct {
		flag  string
		dst   *float64
		value float64
	}{
		{"cement-sg", &designCementSG, m.CementSG},
		{"coarse-sg", &designCoarseSG, m.CoarseAggregateSG},
		{"fine-sg", &designFineSG, m.FineAggregateSG},
		{"admixture-sg", &designAdmixtureSG, m.AdmixtureSG},
		{"fly-ash-sg", &designFlyAshSG, m.FlyAshSG},
		{"absorption-coarse", &designAbsorptionCoarse, m.AbsorptionCoarse},
		{"absorption-fine", &designAbsorptionFine, m.AbsorptionFine},
		{"moisture-coarse", &designMoistureCoarse, m.SurfaceMoistureCoarse},
		{"moisture-fine", &designMoistureFine, m.SurfaceMoistureFine},
	}
	for _, d := range materialDefaults {
		if !cmd.Flags().Changed(d.flag) {
			*d.dst = d.value
		}
	}

	return mix.Inputs{
		Grade:                 grade,
		Exposure:              exposure,
		NominalSizeMM:         designSize,
		SlumpMM:               designSlump,
		Shape:                 shape,
		Zone:                  zone,
		Admixture:             admixture,
		Pumpable:              designPump,
		UseFlyAsh:             designFlyAsh,
		CementSG:              designCementSG,
		CoarseSG:              designCoarseSG,
		FineSG:                designFineSG,
		AdmixtureSG:           designAdmixtureSG,
		FlyAshSG:              designFlyAshSG,
		AbsorptionCoarse:      designAbsorptionCoarse,
		AbsorptionFine:        designAbsorptionFine,
		SurfaceMoistureCoarse: designMoistureCoarse,
		SurfaceMoistureFine:   designMoistureFine,
	}, nil
}

func printDesign(in mix.Inputs, r *mix.Result) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          CONCRETE MIX DESIGN - IS 10262:2009")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	mineral := "None"
	if in.UseFlyAsh {
		mineral = "Fly Ash"
	}
	pump := "No"
	if in.Pumpable {
		pump = "Yes"
	}

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Grade Designation:\t%s\n", r.Grade)
	fmt.Fprintf(w, "  Exposure Condition:\t%s\n", in.Exposure)
	fmt.Fprintf(w, "  Nominal Aggregate Size:\t%d mm\n", in.NominalSizeMM)
	fmt.Fprintf(w, "  Target Slump:\t%g mm\n", in.SlumpMM)
	fmt.Fprintf(w, "  Aggregate Shape:\t%s\n", in.Shape)
	fmt.Fprintf(w, "  Fine Aggregate Zone:\t%s\n", in.Zone)
	fmt.Fprintf(w, "  Chemical Admixture:\t%s\n", in.Admixture)
	fmt.Fprintf(w, "  Mineral Admixture:\t%s\n", mineral)
	fmt.Fprintf(w, "  Pump Concrete:\t%s\n", pump)
	w.Flush()
	fmt.Println()

	fmt.Println("TRIAL MIX:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Target Mean Strength:\t%.3f MPa\n", r.TargetStrength)
	fmt.Fprintf(w, "  Water-Cement Ratio:\t%.3f\n", r.EffectiveRatio())
	fmt.Fprintf(w, "  Cement Content:\t%.3f kg/m³\n", r.CementContent)
	if r.FlyAsh != nil {
		fmt.Fprintf(w, "  Fly Ash Content:\t%.3f kg/m³ (%d%% replacement)\n",
			r.FlyAsh.FlyAshContent, r.FlyAsh.ReplacementPct)
		fmt.Fprintf(w, "  Cement Saved:\t%.3f kg/m³\n", r.FlyAsh.CementSaved)
	}
	fmt.Fprintf(w, "  Water Content:\t%.3f Lit\n", r.WaterContent)
	fmt.Fprintf(w, "  Fine Aggregate:\t%.3f kg\n", r.Composition.FineMass)
	fmt.Fprintf(w, "  Coarse Aggregate:\t%.3f kg\n", r.Composition.CoarseMass)
	fmt.Fprintf(w, "  Chemical Admixture:\t%.3f kg/m³\n", r.Composition.AdmixtureMass)
	w.Flush()
	fmt.Println()

	fmt.Println("VOLUMES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Volume of Cement:\t%.6f m³\n", r.Composition.CementVolume)
	if r.FlyAsh != nil {
		fmt.Fprintf(w, "  Volume of Fly Ash:\t%.6f m³\n", r.Composition.FlyAshVolume)
	}
	fmt.Fprintf(w, "  Volume of Water:\t%.6f m³\n", r.Composition.WaterVolume)
	fmt.Fprintf(w, "  Volume of Admixture:\t%.6f m³\n", r.Composition.AdmixtureVolume)
	fmt.Fprintf(w, "  Volume of All-in Aggregate:\t%.6f m³\n", r.Composition.AggregateVolume)
	fmt.Fprintf(w, "  Coarse Aggregate Fraction:\t%.3f\n", r.CoarseFraction)
	fmt.Fprintf(w, "  Fine Aggregate Fraction:\t%.3f\n", r.FineFraction)
	w.Flush()
	fmt.Println()

	fmt.Println("FREE WATER CONTENT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Absorption, coarse aggregate:\t%.3f Lit\n", r.Moisture.AbsorptionCoarse)
	fmt.Fprintf(w, "  Absorption, fine aggregate:\t%.3f Lit\n", r.Moisture.AbsorptionFine)
	fmt.Fprintf(w, "  Surface moisture, coarse aggregate:\t%.3f Lit\n", r.Moisture.SurfaceMoistureCoarse)
	fmt.Fprintf(w, "  Surface moisture, fine aggregate:\t%.3f Lit\n", r.Moisture.SurfaceMoistureFine)
	fmt.Fprintf(w, "  Water after correction:\t%.3f Lit\n", r.Moisture.CorrectedWater)
	w.Flush()
	fmt.Println()

	if len(r.Warnings) > 0 {
		fmt.Println("WARNINGS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		for _, warn := range r.Warnings {
			fmt.Printf("  ! %s\n", warn.Message)
		}
		fmt.Println()
	}

	lines := []string{
		fmt.Sprintf("Proportions by weight: %s", r.ProportionsByWeight().String()),
		fmt.Sprintf("Corrected water:       %.3f Lit", r.Moisture.CorrectedWater),
		fmt.Sprintf("Cement, 50 kg bags:    %.1f", r.CementBags()),
	}
	fmt.Println(diagram.DrawSummaryBox("FINAL MIX (per m3)", lines))

	if designShowDiagram {
		fmt.Println(diagram.DrawASCIIComposition(diagram.FromResult(r)))
	}
}
