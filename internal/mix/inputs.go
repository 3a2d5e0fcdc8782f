// Package mix implements the concrete mix proportioning procedure of
// IS 10262:2009 with the durability limits of IS 456:2000: target strength,
// water-cement ratio, water demand, cementitious content (plain or blended
// with fly ash), aggregate proportioning, unit-volume composition and
// moisture correction, with memoization of complete designs.
package mix

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"gomix/internal/errors"
	"gomix/internal/iscode"
)

// Inputs is the immutable set of design parameters for one mix.
type Inputs struct {
	Grade         int              `json:"grade"`
	Exposure      iscode.Exposure  `json:"exposure"`
	NominalSizeMM int              `json:"nominal_size_mm"`
	SlumpMM       float64          `json:"slump_mm"`
	Shape         iscode.Shape     `json:"aggregate_shape"`
	Zone          iscode.Zone      `json:"fine_aggregate_zone"`
	Admixture     iscode.Admixture `json:"chemical_admixture"`
	Pumpable      bool             `json:"pumpable"`
	UseFlyAsh     bool             `json:"use_fly_ash"`

	// Specific gravities. FlyAshSG is consulted only when UseFlyAsh is set.
	CementSG    float64 `json:"cement_sg"`
	CoarseSG    float64 `json:"coarse_aggregate_sg"`
	FineSG      float64 `json:"fine_aggregate_sg"`
	AdmixtureSG float64 `json:"admixture_sg"`
	FlyAshSG    float64 `json:"fly_ash_sg,omitempty"`

	// Aggregate moisture state, percent of aggregate mass.
	AbsorptionCoarse      float64 `json:"absorption_coarse_pct"`
	AbsorptionFine        float64 `json:"absorption_fine_pct"`
	SurfaceMoistureCoarse float64 `json:"surface_moisture_coarse_pct"`
	SurfaceMoistureFine   float64 `json:"surface_moisture_fine_pct"`
}

// GradeDesignation returns the conventional grade label, e.g. "M 25".
func (in Inputs) GradeDesignation() string {
	return iscode.GradeDesignation(in.Grade)
}

// Validate checks field ranges before the pipeline runs. Enumerated fields
// are checked again at their table lookups; this catches the numeric ones.
func (in Inputs) Validate() error {
	if in.Grade <= 0 {
		return errors.InvalidParameter("grade numeral", in.Grade)
	}
	if in.SlumpMM < 0 {
		return errors.InvalidParameter("target slump", in.SlumpMM)
	}
	if in.CementSG <= 0 {
		return errors.InvalidParameter("cement specific gravity", in.CementSG)
	}
	if in.CoarseSG <= 0 {
		return errors.InvalidParameter("coarse aggregate specific gravity", in.CoarseSG)
	}
	if in.FineSG <= 0 {
		return errors.InvalidParameter("fine aggregate specific gravity", in.FineSG)
	}
	if in.AdmixtureSG <= 0 {
		return errors.InvalidParameter("admixture specific gravity", in.AdmixtureSG)
	}
	if in.UseFlyAsh && in.FlyAshSG <= 0 {
		return errors.InvalidParameter("fly ash specific gravity", in.FlyAshSG)
	}
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"coarse aggregate water absorption", in.AbsorptionCoarse},
		{"fine aggregate water absorption", in.AbsorptionFine},
		{"coarse aggregate surface moisture", in.SurfaceMoistureCoarse},
		{"fine aggregate surface moisture", in.SurfaceMoistureFine},
	} {
		if p.value < 0 || p.value > 100 {
			return errors.InvalidParameter(p.name, p.value)
		}
	}
	return nil
}

// fingerprintNamespace salts the digest so other stable IDs in the process
// cannot collide with design fingerprints.
const fingerprintNamespace = "mix-design"

// Fingerprint returns a stable identifier covering every field the pipeline
// consumes. Two Inputs values produce the same fingerprint iff every field
// is identical, so a cached result can never be served for changed inputs.
func (in Inputs) Fingerprint() string {
	parts := []string{
		strconv.Itoa(in.Grade),
		string(in.Exposure),
		strconv.Itoa(in.NominalSizeMM),
		formatFloat(in.SlumpMM),
		string(in.Shape),
		string(in.Zone),
		string(in.Admixture),
		strconv.FormatBool(in.Pumpable),
		strconv.FormatBool(in.UseFlyAsh),
		formatFloat(in.CementSG),
		formatFloat(in.CoarseSG),
		formatFloat(in.FineSG),
		formatFloat(in.AdmixtureSG),
		formatFloat(in.FlyAshSG),
		formatFloat(in.AbsorptionCoarse),
		formatFloat(in.AbsorptionFine),
		formatFloat(in.SurfaceMoistureCoarse),
		formatFloat(in.SurfaceMoistureFine),
	}

	h := sha256.New()
	h.Write([]byte(fingerprintNamespace))
	for _, p := range parts {
		h.Write([]byte{0})
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// formatFloat encodes a float exactly, so fingerprints distinguish any two
// values that the formulas would distinguish.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
