// Package iscode provides the lookup tables and domain vocabulary from
// IS 456:2000 and IS 10262:2009 used for concrete mix proportioning.
package iscode

import (
	"strings"

	"gomix/internal/errors"
)

// Exposure is an environmental exposure condition per IS 456:2000.
type Exposure string

const (
	ExposureMild       Exposure = "Mild"
	ExposureModerate   Exposure = "Moderate"
	ExposureSevere     Exposure = "Severe"
	ExposureVerySevere Exposure = "Very severe"
	ExposureExtreme    Exposure = "Extreme"
)

// ExposureRequirement holds the durability limits for one exposure condition
// IS 456:2000 Table 5 (reinforced concrete)
type ExposureRequirement struct {
	MinCementContent    float64 // kg/m³
	MaxWaterCementRatio float64
}

// IS 456:2000 Table 5 - Minimum Cement Content and Maximum Free Water-Cement
// Ratio for reinforced concrete under different exposures
var exposureRequirements = map[Exposure]ExposureRequirement{
	ExposureMild:       {MinCementContent: 300, MaxWaterCementRatio: 0.55},
	ExposureModerate:   {MinCementContent: 300, MaxWaterCementRatio: 0.50},
	ExposureSevere:     {MinCementContent: 320, MaxWaterCementRatio: 0.45},
	ExposureVerySevere: {MinCementContent: 340, MaxWaterCementRatio: 0.45},
	ExposureExtreme:    {MinCementContent: 360, MaxWaterCementRatio: 0.40},
}

// DurabilityRequirement returns the IS 456 Table 5 limits for an exposure
// condition.
func DurabilityRequirement(exp Exposure) (ExposureRequirement, error) {
	req, ok := exposureRequirements[exp]
	if !ok {
		return ExposureRequirement{}, errors.InvalidParameter("exposure condition", string(exp))
	}
	return req, nil
}

// Exposures lists the recognized exposure conditions from mild to extreme.
func Exposures() []Exposure {
	return []Exposure{
		ExposureMild,
		ExposureModerate,
		ExposureSevere,
		ExposureVerySevere,
		ExposureExtreme,
	}
}

// ParseExposure resolves a case-insensitive exposure label.
func ParseExposure(s string) (Exposure, error) {
	switch normalizeLabel(s) {
	case "mild":
		return ExposureMild, nil
	case "moderate":
		return ExposureModerate, nil
	case "severe":
		return ExposureSevere, nil
	case "very severe":
		return ExposureVerySevere, nil
	case "extreme":
		return ExposureExtreme, nil
	}
	return "", errors.InvalidParameter("exposure condition", s)
}

// normalizeLabel lowercases a label and collapses hyphens and repeated
// whitespace so that "Very-Severe" and "very  severe" resolve alike.
func normalizeLabel(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", " ")
	return strings.Join(strings.Fields(s), " ")
}
