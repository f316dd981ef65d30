package benefits

import "testing"

func TestContributionEffectiveRate(t *testing.T) {
	result := Contribution(ContributionInput{GrossSalary: 3000})

	if result.INSS.Value != 253.4136 {
		t.Fatalf("INSS = %v", result.INSS.Value)
	}
	if result.EffectiveRate != 0.0845 {
		t.Fatalf("effective rate = %v", result.EffectiveRate)
	}
	if result.Net != 2746.5864 {
		t.Fatalf("net = %v", result.Net)
	}
	// One trail line per consumed tier plus the total line.
	if result.Trail.Len() != 4 {
		t.Fatalf("trail length = %d", result.Trail.Len())
	}
}

func TestContributionRequiresSalary(t *testing.T) {
	result := Contribution(ContributionInput{})
	if result.Message == "" || result.INSS.Value != 0 {
		t.Fatalf("expected zero result, got %+v", result)
	}
}
