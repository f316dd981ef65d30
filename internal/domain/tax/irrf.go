package tax

import (
	"fmt"
	"math"

	"folha/internal/domain/money"
	"folha/internal/domain/tables"
)

// ComputeWithholding applies the official cumulative-bracket-with-deduction
// IRRF method: the dependent deduction shrinks the taxable base, the lowest
// tier whose upper limit covers the base supplies rate and deduction, and
// the tax floors at zero. Tax values are display-final, rounded to cents.
func ComputeWithholding(base float64, dependents int) Result {
	taxable := base - float64(dependents)*tables.DependentDeduction
	if taxable < 0 {
		taxable = 0
	}

	for _, tier := range tables.WithholdingTiers {
		if taxable > tier.UpperLimit {
			continue
		}
		value := math.Max(0, taxable*tier.Rate-tier.Deduction)
		result := Result{
			Value: money.Round2(value),
			Base:  money.Round4(taxable),
		}
		if tier.Rate > 0 {
			result.Breakdown = []TierDetail{{
				Range:   withholdingRangeLabel(tier),
				Taxable: money.Round4(taxable),
				Rate:    tier.Rate,
				Value:   money.Round2(value),
			}}
		}
		return result
	}

	// Unreachable while the last tier is unbounded.
	return Result{Base: money.Round4(taxable)}
}

func withholdingRangeLabel(tier tables.WithholdingTier) string {
	if math.IsInf(tier.UpperLimit, 1) {
		return fmt.Sprintf("Acima da última faixa (%.1f%%, dedução %s)",
			tier.Rate*100, money.FormatBRL(tier.Deduction))
	}
	return fmt.Sprintf("Até %s (%.1f%%, dedução %s)",
		money.FormatBRL(tier.UpperLimit), tier.Rate*100, money.FormatBRL(tier.Deduction))
}
