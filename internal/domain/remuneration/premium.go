// Package remuneration derives the base pay that the benefit calculators
// share: contractual salary plus averaged variable pay plus the effective
// risk premium.
package remuneration

import (
	"math"

	"folha/internal/domain/tables"
)

// UnhealthyGrade is the insalubridade percentage grade.
type UnhealthyGrade int

const (
	UnhealthyNone    UnhealthyGrade = 0
	UnhealthyMinimum UnhealthyGrade = 10
	UnhealthyMedium  UnhealthyGrade = 20
	UnhealthyMaximum UnhealthyGrade = 40
)

// UnhealthyBasis selects the wage the insalubridade grade applies to.
type UnhealthyBasis int

const (
	BasisMinimumWage UnhealthyBasis = iota
	BasisGrossSalary
)

// Premium carries both risk premiums and the one that legally applies.
type Premium struct {
	Hazard    float64 `json:"periculosidade"`
	Unhealthy float64 `json:"insalubridade"`
	Effective float64 `json:"adicionalEfetivo"`
}

// ComputeRiskPremium resolves periculosidade and insalubridade for base.
// The two benefits are mutually exclusive in law; the higher one applies.
// Keeping both flags off simultaneously is the caller's invariant, not
// enforced here.
func ComputeRiskPremium(base float64, hazardous bool, grade UnhealthyGrade, basis UnhealthyBasis) Premium {
	var p Premium
	if base <= 0 {
		return p
	}
	if hazardous {
		p.Hazard = base * tables.HazardPremiumRate
	}
	if grade > 0 {
		reference := tables.MinimumWage
		if basis == BasisGrossSalary {
			reference = base
		}
		p.Unhealthy = reference * float64(grade) / 100
	}
	p.Effective = math.Max(p.Hazard, p.Unhealthy)
	return p
}
