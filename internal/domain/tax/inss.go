package tax

import (
	"fmt"
	"math"

	"folha/internal/domain/money"
	"folha/internal/domain/tables"
)

// ComputeContribution walks the progressive INSS table over base and
// returns the capped contribution with a per-tier breakdown. The ceiling
// clamps the final sum, not individual tiers. A non-positive base yields
// a zero result with an empty breakdown.
func ComputeContribution(base float64) Result {
	if base <= 0 {
		return Result{}
	}

	var (
		total     float64
		breakdown []TierDetail
		previous  float64
	)
	remaining := base
	for i, tier := range tables.ContributionTiers {
		slice := math.Min(remaining, tier.UpperLimit-previous)
		if slice <= 0 {
			break
		}
		value := slice * tier.Rate
		breakdown = append(breakdown, TierDetail{
			Range:   contributionRangeLabel(i, previous, tier),
			Taxable: money.Round4(slice),
			Rate:    tier.Rate,
			Value:   money.Round4(value),
		})
		total += value
		remaining -= slice
		previous = tier.UpperLimit
	}

	if total > tables.ContributionCeiling {
		total = tables.ContributionCeiling
	}
	return Result{
		Value:     money.Round4(total),
		Base:      money.Round4(base),
		Breakdown: breakdown,
	}
}

func contributionRangeLabel(index int, lower float64, tier tables.ContributionTier) string {
	if index == 0 {
		return fmt.Sprintf("Até %s (%.1f%%)", money.FormatBRL(tier.UpperLimit), tier.Rate*100)
	}
	return fmt.Sprintf("De %s até %s (%.1f%%)",
		money.FormatBRL(lower), money.FormatBRL(tier.UpperLimit), tier.Rate*100)
}
