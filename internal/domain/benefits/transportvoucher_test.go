package benefits

import (
	"strings"
	"testing"
)

func TestTransportVoucherCapReached(t *testing.T) {
	result := TransportVoucher(TransportVoucherInput{
		GrossSalary: 2000,
		DailyCost:   10,
		WorkDays:    22,
	})

	if result.MonthlyCost != 220 {
		t.Fatalf("monthly cost = %v", result.MonthlyCost)
	}
	// The 6% cap of 120 undercuts the 220 monthly cost.
	if result.EmployeeDiscount != 120 {
		t.Fatalf("employee discount = %v", result.EmployeeDiscount)
	}
	if result.EmployerCost != 100 {
		t.Fatalf("employer cost = %v", result.EmployerCost)
	}
	if !strings.Contains(result.Message, "teto") {
		t.Fatalf("unexpected message: %q", result.Message)
	}
}

func TestTransportVoucherBelowCap(t *testing.T) {
	result := TransportVoucher(TransportVoucherInput{
		GrossSalary: 5000,
		DailyCost:   10,
		WorkDays:    22,
	})

	if result.EmployeeDiscount != 220 {
		t.Fatalf("employee discount = %v", result.EmployeeDiscount)
	}
	if result.EmployerCost != 0 {
		t.Fatalf("employer cost = %v", result.EmployerCost)
	}
}

func TestTransportVoucherRejectsInvalidInput(t *testing.T) {
	if result := TransportVoucher(TransportVoucherInput{DailyCost: 10, WorkDays: 22}); result.Message == "" {
		t.Fatal("expected message for missing salary")
	}
	if result := TransportVoucher(TransportVoucherInput{GrossSalary: 2000}); result.MonthlyCost != 0 {
		t.Fatalf("expected zero result, got %+v", result)
	}
}
