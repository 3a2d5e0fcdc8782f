// Package cost estimates the material cost of one cubic metre of a designed
// mix from unit rates, with exact decimal arithmetic.
package cost

import (
	"github.com/shopspring/decimal"

	"gomix/internal/config"
	"gomix/internal/errors"
	"gomix/internal/history"
)

var (
	bagSize       = decimal.NewFromInt(50)
	litresPerCube = decimal.NewFromInt(1000)
	hundred       = decimal.NewFromInt(100)
)

// Rates are the unit prices the estimate is built from. Cement is priced
// per 50 kg bag, water and aggregates per m³, admixture and fly ash per kg.
// A zero rate prices the material at nothing.
type Rates struct {
	CementPerBag                 decimal.Decimal
	WaterPerCubicMetre           decimal.Decimal
	FineAggregatePerCubicMetre   decimal.Decimal
	CoarseAggregatePerCubicMetre decimal.Decimal
	AdmixturePerKg               decimal.Decimal
	FlyAshPerKg                  decimal.Decimal
}

// RatesFromConfig converts standing configuration rates to decimals.
func RatesFromConfig(rc config.RatesConfig) Rates {
	return Rates{
		CementPerBag:                 decimal.NewFromFloat(rc.CementPerBag),
		WaterPerCubicMetre:           decimal.NewFromFloat(rc.WaterPerCubicMetre),
		FineAggregatePerCubicMetre:   decimal.NewFromFloat(rc.FineAggregatePerCubicMetre),
		CoarseAggregatePerCubicMetre: decimal.NewFromFloat(rc.CoarseAggregatePerCubicMetre),
		AdmixturePerKg:               decimal.NewFromFloat(rc.AdmixturePerKg),
		FlyAshPerKg:                  decimal.NewFromFloat(rc.FlyAshPerKg),
	}
}

// Line is one material's contribution to the estimate.
type Line struct {
	// Material is the display name
	Material string `json:"material"`

	// Quantity is the per-m³ amount (kg, litres for water)
	Quantity decimal.Decimal `json:"quantity"`

	// Rate is the unit price as entered
	Rate decimal.Decimal `json:"rate"`

	// Amount is the line cost
	Amount decimal.Decimal `json:"amount"`

	// Share is the percentage of the total
	Share decimal.Decimal `json:"share"`
}

// Breakdown is the per-material cost analysis for one cubic metre.
type Breakdown struct {
	Lines []Line          `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// Estimate prices a stored design. Aggregate rates are quoted per m³ and
// divided down to per-kg; cement per bag becomes per kg through the 50 kg
// bag size.
func Estimate(design history.Entry, rates Rates) (*Breakdown, error) {
	for _, r := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"cement rate", rates.CementPerBag},
		{"water rate", rates.WaterPerCubicMetre},
		{"fine aggregate rate", rates.FineAggregatePerCubicMetre},
		{"coarse aggregate rate", rates.CoarseAggregatePerCubicMetre},
		{"admixture rate", rates.AdmixturePerKg},
		{"fly ash rate", rates.FlyAshPerKg},
	} {
		if r.value.IsNegative() {
			return nil, errors.InvalidParameter(r.name, r.value.String())
		}
	}

	b := &Breakdown{}
	b.add("Cement", design.Cement, rates.CementPerBag, rates.CementPerBag.Div(bagSize))
	b.add("Water", design.Water, rates.WaterPerCubicMetre, rates.WaterPerCubicMetre.Div(litresPerCube))
	b.add("Fine Aggregate", design.FineAgg, rates.FineAggregatePerCubicMetre, rates.FineAggregatePerCubicMetre.Div(litresPerCube))
	b.add("Coarse Aggregate", design.CoarseAgg, rates.CoarseAggregatePerCubicMetre, rates.CoarseAggregatePerCubicMetre.Div(litresPerCube))
	b.add("Chemical Admixture", design.Admixture, rates.AdmixturePerKg, rates.AdmixturePerKg)
	if design.FlyAsh > 0 {
		b.add("Fly Ash", design.FlyAsh, rates.FlyAshPerKg, rates.FlyAshPerKg)
	}

	if b.Total.IsPositive() {
		for i := range b.Lines {
			b.Lines[i].Share = b.Lines[i].Amount.Div(b.Total).Mul(hundred)
		}
	}
	return b, nil
}

// add appends a line priced at perUnit and grows the total. The quoted rate
// is kept for display.
func (b *Breakdown) add(material string, quantity float64, quoted, perUnit decimal.Decimal) {
	q := decimal.NewFromFloat(quantity)
	amount := q.Mul(perUnit)
	b.Lines = append(b.Lines, Line{
		Material: material,
		Quantity: q,
		Rate:     quoted,
		Amount:   amount,
	})
	b.Total = b.Total.Add(amount)
}
