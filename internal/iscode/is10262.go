package iscode

import (
	"fmt"
	"strconv"
	"strings"

	"gomix/internal/errors"
)

// StdDevClass groups concrete grades by their assumed standard deviation
// IS 10262:2009 Table 1 (also IS 456:2000 Table 8)
type StdDevClass string

const (
	StdDevLow  StdDevClass = "Low"  // M10, M15
	StdDevMid  StdDevClass = "Mid"  // M20, M25
	StdDevHigh StdDevClass = "High" // M30 and above
)

// Assumed standard deviation (MPa) per class
var standardDeviations = map[StdDevClass]float64{
	StdDevLow:  3.5,
	StdDevMid:  4.0,
	StdDevHigh: 5.0,
}

// GradeClass returns the standard-deviation class for a grade numeral.
func GradeClass(grade int) StdDevClass {
	switch grade {
	case 10, 15:
		return StdDevLow
	case 20, 25:
		return StdDevMid
	default:
		return StdDevHigh
	}
}

// StandardDeviation returns the assumed standard deviation (MPa) for a grade
// numeral per IS 10262:2009 Table 1.
func StandardDeviation(grade int) float64 {
	return standardDeviations[GradeClass(grade)]
}

// ParseGrade resolves a grade designation ("M 25", "M25" or a bare numeral)
// into its grade number. The numeral must be a positive integer.
func ParseGrade(s string) (int, error) {
	t := strings.TrimSpace(s)
	upper := strings.ToUpper(t)
	if strings.HasPrefix(upper, "M") {
		t = strings.TrimSpace(upper[1:])
		t = strings.TrimPrefix(t, "-")
		t = strings.TrimSpace(t)
	}
	grade, err := strconv.Atoi(t)
	if err != nil || grade <= 0 {
		return 0, errors.InvalidParameter("grade designation", s)
	}
	return grade, nil
}

// GradeDesignation formats a grade numeral in the conventional "M 25" form.
func GradeDesignation(grade int) string {
	return fmt.Sprintf("M %d", grade)
}

// IS 10262:2009 Table 2 - Maximum Water Content per Cubic Metre of Concrete
// (angular aggregate, 25 to 50 mm slump), keyed by nominal maximum aggregate
// size in mm
var maxWaterContents = map[int]float64{
	10: 208,
	20: 186,
	40: 165,
}

// MaxWaterContent returns the baseline water content (litres/m³) for a
// nominal maximum aggregate size per IS 10262:2009 Table 2.
func MaxWaterContent(nominalSizeMM int) (float64, error) {
	w, ok := maxWaterContents[nominalSizeMM]
	if !ok {
		return 0, errors.InvalidParameter("nominal aggregate size", nominalSizeMM)
	}
	return w, nil
}

// NominalSizes lists the aggregate sizes covered by Table 2 and Table 3.
func NominalSizes() []int {
	return []int{10, 20, 40}
}

// Zone is the fine-aggregate grading zone per IS 383.
type Zone string

const (
	ZoneI   Zone = "Zone-I"
	ZoneII  Zone = "Zone-II"
	ZoneIII Zone = "Zone-III"
	ZoneIV  Zone = "Zone-IV"
)

// Table 3 columns run from Zone-IV (coarsest sand) to Zone-I (finest)
var zoneIndexes = map[Zone]int{
	ZoneIV:  0,
	ZoneIII: 1,
	ZoneII:  2,
	ZoneI:   3,
}

// ParseZone resolves a fine-aggregate zone label ("Zone-II", "zone ii", "II",
// "2").
func ParseZone(s string) (Zone, error) {
	t := normalizeLabel(s)
	t = strings.TrimPrefix(t, "zone")
	t = strings.TrimSpace(t)
	switch t {
	case "i", "1":
		return ZoneI, nil
	case "ii", "2":
		return ZoneII, nil
	case "iii", "3":
		return ZoneIII, nil
	case "iv", "4":
		return ZoneIV, nil
	}
	return "", errors.InvalidParameter("fine-aggregate zone", s)
}

// IS 10262:2009 Table 3 - Volume of Coarse Aggregate per Unit Volume of
// Total Aggregate for a water-cement ratio of 0.50, keyed by nominal size.
// Columns follow the zone index order Zone-IV, Zone-III, Zone-II, Zone-I.
var coarseAggregateVolumes = map[int][4]float64{
	10: {0.50, 0.48, 0.46, 0.44},
	20: {0.66, 0.64, 0.62, 0.60},
	40: {0.75, 0.73, 0.71, 0.69},
}

// CoarseAggregateVolume returns the baseline coarse-aggregate volume fraction
// for a nominal size and fine-aggregate zone per IS 10262:2009 Table 3.
func CoarseAggregateVolume(nominalSizeMM int, zone Zone) (float64, error) {
	row, ok := coarseAggregateVolumes[nominalSizeMM]
	if !ok {
		return 0, errors.InvalidParameter("nominal aggregate size", nominalSizeMM)
	}
	idx, ok := zoneIndexes[zone]
	if !ok {
		return 0, errors.InvalidParameter("fine-aggregate zone", string(zone))
	}
	return row[idx], nil
}

// Shape is the coarse-aggregate particle shape classification used by the
// water-content adjustments of IS 10262:2009 Table 2.
type Shape string

const (
	ShapeCrushedAngular Shape = "Crushed Angular"
	ShapeSubAngular     Shape = "Sub-Angular"
	ShapeGravel         Shape = "Gravel"
	ShapeRoundedGravel  Shape = "Rounded Gravel"
)

// WaterAdjustment returns the litres/m³ correction applied to the Table 2
// baseline for this aggregate shape. Table 2 assumes angular aggregate, so
// rounder shapes demand less water.
func (s Shape) WaterAdjustment() float64 {
	switch s {
	case ShapeSubAngular:
		return -10
	case ShapeGravel:
		return -20
	case ShapeRoundedGravel:
		return -25
	default:
		return 0
	}
}

// ParseShape resolves an aggregate shape label. Labels are matched whole
// after normalization: "rounded gravel" and "gravel" are distinct classes,
// never substring-matched.
func ParseShape(s string) (Shape, error) {
	switch normalizeLabel(s) {
	case "crushed angular", "angular", "crushed":
		return ShapeCrushedAngular, nil
	case "sub angular", "subangular":
		return ShapeSubAngular, nil
	case "gravel":
		return ShapeGravel, nil
	case "rounded gravel", "rounded":
		return ShapeRoundedGravel, nil
	}
	return "", errors.InvalidParameter("aggregate shape", s)
}

// Admixture is the chemical admixture class used by the water-content
// reduction notes of IS 10262:2009.
type Admixture string

const (
	AdmixtureNone             Admixture = "None"
	AdmixturePlasticizer      Admixture = "Plasticizer"
	AdmixtureSuperplasticizer Admixture = "Superplasticizer"
)

// WaterFactor returns the multiplier applied to water content when this
// admixture class is used: plasticizers save about 10% water and
// superplasticizers about 20%.
func (a Admixture) WaterFactor() float64 {
	switch a {
	case AdmixturePlasticizer:
		return 0.9
	case AdmixtureSuperplasticizer:
		return 0.8
	default:
		return 1.0
	}
}

// ParseAdmixture resolves a chemical admixture label.
func ParseAdmixture(s string) (Admixture, error) {
	switch normalizeLabel(s) {
	case "", "none", "no admixture":
		return AdmixtureNone, nil
	case "plasticizer":
		return AdmixturePlasticizer, nil
	case "superplasticizer", "super plasticizer":
		return AdmixtureSuperplasticizer, nil
	}
	return "", errors.InvalidParameter("chemical admixture", s)
}
