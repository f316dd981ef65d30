package tax

import "testing"

func TestComputeContributionFirstTierOnly(t *testing.T) {
	result := ComputeContribution(1500)
	if result.Value != 112.5 {
		t.Fatalf("expected 112.5, got %v", result.Value)
	}
	if len(result.Breakdown) != 1 {
		t.Fatalf("expected a single tier, got %d", len(result.Breakdown))
	}
	if result.Breakdown[0].Taxable != 1500 || result.Breakdown[0].Rate != 0.075 {
		t.Fatalf("unexpected first tier: %+v", result.Breakdown[0])
	}
}

func TestComputeContributionWalksThreeTiers(t *testing.T) {
	result := ComputeContribution(3000)
	if result.Value != 253.4136 {
		t.Fatalf("expected 253.4136, got %v", result.Value)
	}
	if len(result.Breakdown) != 3 {
		t.Fatalf("expected three tiers, got %d", len(result.Breakdown))
	}
	if result.Breakdown[0].Value != 113.85 {
		t.Fatalf("first tier value = %v", result.Breakdown[0].Value)
	}
	if result.Breakdown[1].Value != 114.8292 {
		t.Fatalf("second tier value = %v", result.Breakdown[1].Value)
	}
	if result.Breakdown[2].Value != 24.7344 {
		t.Fatalf("third tier value = %v", result.Breakdown[2].Value)
	}
}

func TestComputeContributionAt4000(t *testing.T) {
	result := ComputeContribution(4000)
	if result.Value != 373.4136 {
		t.Fatalf("expected 373.4136, got %v", result.Value)
	}
}

func TestComputeContributionCeilingClampsSum(t *testing.T) {
	result := ComputeContribution(10000)
	if result.Value != 908.85 {
		t.Fatalf("expected ceiling 908.85, got %v", result.Value)
	}
	// The clamp applies to the sum only; the breakdown keeps the raw walk.
	var sum float64
	for _, tier := range result.Breakdown {
		sum += tier.Value
	}
	if sum <= result.Value {
		t.Fatalf("breakdown sum %v should exceed the clamped total %v", sum, result.Value)
	}
}

func TestComputeContributionNonPositiveBase(t *testing.T) {
	if result := ComputeContribution(0); result.Value != 0 || len(result.Breakdown) != 0 {
		t.Fatalf("zero base should be empty, got %+v", result)
	}
	if result := ComputeContribution(-500); result.Value != 0 || len(result.Breakdown) != 0 {
		t.Fatalf("negative base should be empty, got %+v", result)
	}
}

func TestComputeContributionMonotonic(t *testing.T) {
	previous := 0.0
	for base := 100.0; base <= 12000; base += 100 {
		value := ComputeContribution(base).Value
		if value < previous {
			t.Fatalf("contribution decreased at base %.0f: %v < %v", base, value, previous)
		}
		previous = value
	}
}

func TestComputeWithholdingExemptBand(t *testing.T) {
	result := ComputeWithholding(2000, 0)
	if result.Value != 0 {
		t.Fatalf("expected exemption, got %v", result.Value)
	}
	if len(result.Breakdown) != 0 {
		t.Fatalf("exempt band should carry no breakdown, got %+v", result.Breakdown)
	}
	if result.Base != 2000 {
		t.Fatalf("expected base 2000, got %v", result.Base)
	}
}

func TestComputeWithholdingWithDependent(t *testing.T) {
	// 4000 gross minus its contribution, one dependent.
	result := ComputeWithholding(4000-373.4136, 1)
	if result.Value != 121.39 {
		t.Fatalf("expected 121.39, got %v", result.Value)
	}
	if result.Base != 3436.9964 {
		t.Fatalf("expected taxable base 3436.9964, got %v", result.Base)
	}
	if len(result.Breakdown) != 1 || result.Breakdown[0].Rate != 0.15 {
		t.Fatalf("expected single 15%% tier, got %+v", result.Breakdown)
	}
}

func TestComputeWithholdingDependentsFloorBaseAtZero(t *testing.T) {
	result := ComputeWithholding(100, 5)
	if result.Value != 0 || result.Base != 0 {
		t.Fatalf("expected zeroed result, got %+v", result)
	}
}

func TestComputeWithholdingTopTier(t *testing.T) {
	result := ComputeWithholding(10000, 0)
	if result.Value != 1841.27 {
		t.Fatalf("expected 1841.27, got %v", result.Value)
	}
	if len(result.Breakdown) != 1 || result.Breakdown[0].Rate != 0.275 {
		t.Fatalf("expected the open tier, got %+v", result.Breakdown)
	}
}
