package remuneration

import "testing"

func TestComputeRiskPremiumHazard(t *testing.T) {
	p := ComputeRiskPremium(2000, true, UnhealthyNone, BasisMinimumWage)
	if p.Hazard != 600 {
		t.Fatalf("expected 30%% hazard premium, got %v", p.Hazard)
	}
	if p.Effective != 600 {
		t.Fatalf("expected hazard to apply, got %v", p.Effective)
	}
}

func TestComputeRiskPremiumUnhealthyOnMinimumWage(t *testing.T) {
	p := ComputeRiskPremium(5000, false, UnhealthyMedium, BasisMinimumWage)
	if p.Unhealthy != 303.6 {
		t.Fatalf("expected 20%% of the minimum wage, got %v", p.Unhealthy)
	}
	if p.Effective != 303.6 {
		t.Fatalf("expected unhealthy to apply, got %v", p.Effective)
	}
}

func TestComputeRiskPremiumUnhealthyOnGrossSalary(t *testing.T) {
	p := ComputeRiskPremium(2000, false, UnhealthyMaximum, BasisGrossSalary)
	if p.Unhealthy != 800 {
		t.Fatalf("expected 40%% of the salary, got %v", p.Unhealthy)
	}
}

func TestComputeRiskPremiumHigherOneWins(t *testing.T) {
	p := ComputeRiskPremium(2000, true, UnhealthyMinimum, BasisMinimumWage)
	if p.Hazard != 600 || p.Unhealthy != 151.8 {
		t.Fatalf("unexpected premiums: %+v", p)
	}
	if p.Effective != 600 {
		t.Fatalf("expected the higher premium, got %v", p.Effective)
	}
}

func TestComputeRiskPremiumZeroBase(t *testing.T) {
	p := ComputeRiskPremium(0, true, UnhealthyMaximum, BasisGrossSalary)
	if p.Effective != 0 {
		t.Fatalf("expected no premium on zero base, got %+v", p)
	}
}

func TestComposeBase(t *testing.T) {
	base, premium := ComposeBase(Pay{
		GrossSalary:     2000,
		OvertimeAverage: 300,
		NightAverage:    100,
		Hazardous:       true,
	})
	if premium.Effective != 600 {
		t.Fatalf("expected hazard premium 600, got %v", premium.Effective)
	}
	if base != 3000 {
		t.Fatalf("expected base 3000, got %v", base)
	}
}

func TestComposeBaseZeroSalary(t *testing.T) {
	base, premium := ComposeBase(Pay{OvertimeAverage: 500})
	if base != 0 || premium.Effective != 0 {
		t.Fatalf("expected zero base, got %v / %+v", base, premium)
	}
}
