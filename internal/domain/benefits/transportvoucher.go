package benefits

import (
	"fmt"
	"math"

	"folha/internal/domain/money"
	"folha/internal/domain/tables"
)

type TransportVoucherInput struct {
	GrossSalary float64 `json:"salarioBruto"`
	DailyCost   float64 `json:"custoDiario"`
	WorkDays    int     `json:"diasTrabalho"`
}

type TransportVoucherResult struct {
	MonthlyCost      float64 `json:"custoMensalTotal"`
	EmployeeDiscount float64 `json:"descontoRealEmpregado"`
	EmployerCost     float64 `json:"valorBeneficioEmpregador"`
	Message          string  `json:"mensagem,omitempty"`
	Trail            *Trail  `json:"memoriaCalculo,omitempty"`
}

// TransportVoucher splits the monthly commuting cost: the employee pays at
// most 6% of the contractual salary, the employer covers the remainder.
func TransportVoucher(in TransportVoucherInput) TransportVoucherResult {
	if in.GrossSalary <= 0 {
		return TransportVoucherResult{Message: "Informe um salário bruto maior que zero."}
	}
	if in.DailyCost <= 0 || in.WorkDays <= 0 {
		return TransportVoucherResult{Message: "Informe o custo diário e os dias de trabalho."}
	}

	trail := NewTrail()
	monthly := in.DailyCost * float64(in.WorkDays)
	trail.Add("custoMensalTotal", fmt.Sprintf("%s × %d dias = %s",
		money.FormatBRL(in.DailyCost), in.WorkDays, money.FormatBRL(monthly)))

	legalCap := in.GrossSalary * tables.TransportVoucherRate
	discount := math.Min(monthly, legalCap)
	trail.Add("descontoRealEmpregado", fmt.Sprintf("Menor entre %s e 6%% do salário (%s) = %s",
		money.FormatBRL(monthly), money.FormatBRL(legalCap), money.FormatBRL(discount)))

	employer := monthly - discount
	trail.Add("valorBeneficioEmpregador", fmt.Sprintf("%s − %s = %s",
		money.FormatBRL(monthly), money.FormatBRL(discount), money.FormatBRL(employer)))

	message := "O desconto do empregado atinge o teto de 6% do salário."
	if monthly <= legalCap {
		message = "O custo mensal fica abaixo do teto de 6%; o empregado paga o custo integral."
	}

	return TransportVoucherResult{
		MonthlyCost:      money.Round4(monthly),
		EmployeeDiscount: money.Round4(discount),
		EmployerCost:     money.Round4(employer),
		Message:          message,
		Trail:            trail,
	}
}
