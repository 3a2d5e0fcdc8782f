// Package thermal estimates how placement temperature and humidity affect
// setting time, strength development and plastic-shrinkage risk.
package thermal

import (
	"math"

	"gomix/internal/errors"
)

// Input is one placement condition.
type Input struct {
	ConcreteTemp float64 // °C
	AmbientTemp  float64 // °C
	Humidity     float64 // relative humidity, percent
}

// RiskLevel bands the evaporation rate.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

// Effects is the predicted impact of a placement condition.
type Effects struct {
	// SettingTimeFactor scales the expected setting time: below 1 sets
	// faster than at ambient, above 1 slower.
	SettingTimeFactor float64

	// StrengthFactor is the expected fraction of design strength.
	StrengthFactor float64

	// EvaporationRate is the estimated surface evaporation in kg/m²/h.
	EvaporationRate float64

	// Risk bands the evaporation rate for plastic-shrinkage cracking.
	Risk RiskLevel

	// Recommendations lists counter-measures; empty when none are needed.
	Recommendations []string
}

// Calculate evaluates the temperature effects for one placement condition.
func Calculate(in Input) (Effects, error) {
	if in.Humidity < 0 || in.Humidity > 100 {
		return Effects{}, errors.InvalidParameter("relative humidity", in.Humidity)
	}

	diff := in.ConcreteTemp - in.AmbientTemp

	// Setting accelerates 5% per degree above ambient, retards 5% per
	// degree below.
	setting := 1.0
	if diff > 0 {
		setting = 1.0 - diff*0.05
	} else {
		setting = 1.0 + math.Abs(diff)*0.05
	}

	// Strength loses 2% per degree outside the 10-32 °C placement window.
	strength := 1.0
	if in.ConcreteTemp > 32 {
		strength -= (in.ConcreteTemp - 32) * 0.02
	} else if in.ConcreteTemp < 10 {
		strength -= (10 - in.ConcreteTemp) * 0.02
	}

	evap := 0.1 * (1 + diff*0.05) * (1 - in.Humidity/100)

	risk := RiskLow
	switch {
	case evap > 1.0:
		risk = RiskHigh
	case evap > 0.5:
		risk = RiskModerate
	}

	return Effects{
		SettingTimeFactor: setting,
		StrengthFactor:    strength,
		EvaporationRate:   evap,
		Risk:              risk,
		Recommendations:   recommendations(in, evap),
	}, nil
}

func recommendations(in Input, evap float64) []string {
	var recs []string

	if in.ConcreteTemp > 32 {
		recs = append(recs,
			"Use ice or chilled water to reduce concrete temperature",
			"Consider night placement",
			"Protect from direct sunlight",
		)
	}
	if in.ConcreteTemp < 10 {
		recs = append(recs,
			"Use hot water in the mix",
			"Protect concrete from cold weather",
			"Consider using accelerating admixtures",
		)
	}
	if evap > 1.0 {
		recs = append(recs,
			"Apply evaporation retarder",
			"Use wind breaks",
			"Fog spray during finishing",
		)
	}
	if in.Humidity < 40 {
		recs = append(recs,
			"Increase curing duration",
			"Use curing compounds",
		)
	}

	return recs
}

// EvaporationCurve samples the evaporation rate across a range of ambient
// temperatures with concrete temperature and humidity held fixed. Used for
// the terminal chart.
func EvaporationCurve(in Input, from, to, step float64) []float64 {
	if step <= 0 || to < from {
		return nil
	}

	var rates []float64
	for t := from; t <= to+1e-9; t += step {
		cond := in
		cond.AmbientTemp = t
		eff, err := Calculate(cond)
		if err != nil {
			return nil
		}
		rates = append(rates, eff.EvaporationRate)
	}
	return rates
}
