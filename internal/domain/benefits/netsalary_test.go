package benefits

import "testing"

func TestNetSalaryWithOvertimeAndVoucher(t *testing.T) {
	result := NetSalary(NetSalaryInput{
		GrossSalary:      3000,
		MonthlyHours:     220,
		OvertimeHours:    10,
		TransportVoucher: 200,
	})

	if result.Overtime != 204.5455 {
		t.Fatalf("overtime = %v", result.Overtime)
	}
	if result.TaxableGross != 3204.5455 {
		t.Fatalf("taxable gross = %v", result.TaxableGross)
	}
	if result.INSS.Value != 277.9591 {
		t.Fatalf("INSS = %v", result.INSS.Value)
	}
	if result.IRRF.Value != 44.83 {
		t.Fatalf("IRRF = %v", result.IRRF.Value)
	}
	// The requested 200 exceeds the 6% cap of 180.
	if result.TransportVoucher != 180 {
		t.Fatalf("voucher = %v", result.TransportVoucher)
	}
	if result.Net != 2701.7564 {
		t.Fatalf("net = %v", result.Net)
	}
}

func TestNetSalaryFamilyAllowance(t *testing.T) {
	result := NetSalary(NetSalaryInput{
		GrossSalary:  1800,
		MonthlyHours: 220,
		Children:     2,
	})

	if result.FamilyAllowance != 130 {
		t.Fatalf("allowance = %v", result.FamilyAllowance)
	}
	if result.INSS.Value != 139.23 {
		t.Fatalf("INSS = %v", result.INSS.Value)
	}
	if result.Net != 1790.77 {
		t.Fatalf("net = %v", result.Net)
	}
}

func TestNetSalaryAllowanceDeniedAboveLimit(t *testing.T) {
	result := NetSalary(NetSalaryInput{
		GrossSalary:  2500,
		MonthlyHours: 220,
		Children:     1,
	})
	if result.FamilyAllowance != 0 {
		t.Fatalf("expected no allowance above the limit, got %v", result.FamilyAllowance)
	}
}

func TestNetSalaryHazardRaisesHourlyRate(t *testing.T) {
	with := NetSalary(NetSalaryInput{
		GrossSalary:   2000,
		MonthlyHours:  220,
		OvertimeHours: 10,
		Hazardous:     true,
	})
	without := NetSalary(NetSalaryInput{
		GrossSalary:   2000,
		MonthlyHours:  220,
		OvertimeHours: 10,
	})
	if with.RiskPremium.Effective != 600 {
		t.Fatalf("expected hazard premium, got %+v", with.RiskPremium)
	}
	if with.Overtime <= without.Overtime {
		t.Fatalf("overtime should price off the premium-inclusive rate: %v vs %v",
			with.Overtime, without.Overtime)
	}
}

func TestNetSalaryRequiresSalaryAndHours(t *testing.T) {
	if result := NetSalary(NetSalaryInput{MonthlyHours: 220}); result.Message == "" || result.Net != 0 {
		t.Fatalf("expected zero result for missing salary, got %+v", result)
	}
	if result := NetSalary(NetSalaryInput{GrossSalary: 3000}); result.Message == "" {
		t.Fatal("expected message for missing monthly hours")
	}
}
