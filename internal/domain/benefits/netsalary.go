package benefits

import (
	"fmt"
	"math"

	"folha/internal/domain/money"
	"folha/internal/domain/remuneration"
	"folha/internal/domain/tables"
	"folha/internal/domain/tax"
)

type NetSalaryInput struct {
	GrossSalary      float64                     `json:"salarioBruto"`
	MonthlyHours     float64                     `json:"horasMensais"`
	OvertimeHours    float64                     `json:"horasExtras"`
	OvertimePercent  float64                     `json:"percentualHorasExtras"`
	NightHours       float64                     `json:"horasNoturnas"`
	Hazardous        bool                        `json:"periculosidade"`
	UnhealthyGrade   remuneration.UnhealthyGrade `json:"grauInsalubridade"`
	UnhealthyBasis   remuneration.UnhealthyBasis `json:"baseInsalubridade"`
	Children         int                         `json:"filhos"`
	Dependents       int                         `json:"dependentes"`
	TransportVoucher float64                     `json:"descontoValeTransporte"`
	OtherDiscounts   float64                     `json:"outrosDescontos"`
}

type NetSalaryResult struct {
	TaxableGross     float64              `json:"salarioTributavel"`
	Overtime         float64              `json:"valorHorasExtras"`
	NightPremium     float64              `json:"adicionalNoturno"`
	RiskPremium      remuneration.Premium `json:"adicionalRisco"`
	FamilyAllowance  float64              `json:"salarioFamilia"`
	TotalEarnings    float64              `json:"totalProventos"`
	INSS             tax.Result           `json:"descontoINSS"`
	IRRF             tax.Result           `json:"descontoIRRF"`
	TransportVoucher float64              `json:"descontoValeTransporte"`
	OtherDiscounts   float64              `json:"outrosDescontos"`
	Net              float64              `json:"valorLiquido"`
	Message          string               `json:"mensagem,omitempty"`
	Trail            *Trail               `json:"memoriaCalculo,omitempty"`
}

// NetSalary computes the monthly paycheck: salary plus overtime, risk and
// night premiums and family allowance, minus INSS, IRRF, the capped
// transport-voucher deduction and flat discounts. The net floors at zero.
func NetSalary(in NetSalaryInput) NetSalaryResult {
	if in.GrossSalary <= 0 {
		return NetSalaryResult{Message: "Informe um salário bruto maior que zero."}
	}
	if in.MonthlyHours <= 0 {
		return NetSalaryResult{Message: "Informe a jornada mensal de horas."}
	}

	trail := NewTrail()
	premium := remuneration.ComputeRiskPremium(in.GrossSalary, in.Hazardous, in.UnhealthyGrade, in.UnhealthyBasis)
	if premium.Effective > 0 {
		trail.Add("adicionalRisco", fmt.Sprintf("Adicional aplicado (maior entre periculosidade e insalubridade): %s",
			money.FormatBRL(premium.Effective)))
	}

	hourly := (in.GrossSalary + premium.Effective) / in.MonthlyHours

	overtimePercent := in.OvertimePercent
	if overtimePercent <= 0 {
		overtimePercent = 50
	}
	var overtime float64
	if in.OvertimeHours > 0 {
		overtime = hourly * (1 + overtimePercent/100) * in.OvertimeHours
		trail.Add("valorHorasExtras", fmt.Sprintf("%.1f h × %s × %.0f%% = %s",
			in.OvertimeHours, money.FormatBRL(hourly), 100+overtimePercent, money.FormatBRL(overtime)))
	}

	var night float64
	if in.NightHours > 0 {
		night = hourly * tables.NightShiftRate * in.NightHours
		trail.Add("adicionalNoturno", fmt.Sprintf("%.1f h × %s × 20%% = %s",
			in.NightHours, money.FormatBRL(hourly), money.FormatBRL(night)))
	}

	taxable := in.GrossSalary + premium.Effective + overtime + night

	var allowance float64
	if in.Children > 0 && taxable <= tables.FamilyAllowanceLimit {
		allowance = tables.FamilyAllowanceAmount * float64(in.Children)
		trail.Add("salarioFamilia", fmt.Sprintf("%d filho(s) × %s = %s",
			in.Children, money.FormatBRL(tables.FamilyAllowanceAmount), money.FormatBRL(allowance)))
	}

	inss := tax.ComputeContribution(taxable)
	irrf := tax.ComputeWithholding(taxable-inss.Value, in.Dependents)
	trail.Add("descontoINSS", fmt.Sprintf("INSS sobre %s = %s",
		money.FormatBRL(taxable), money.FormatBRL(inss.Value)))
	trail.Add("descontoIRRF", fmt.Sprintf("IRRF sobre %s = %s",
		money.FormatBRL(taxable-inss.Value), money.FormatBRL(irrf.Value)))

	voucher := math.Min(in.TransportVoucher, in.GrossSalary*tables.TransportVoucherRate)
	if voucher < 0 {
		voucher = 0
	}
	if voucher > 0 {
		trail.Add("descontoValeTransporte", fmt.Sprintf("Menor entre %s e 6%% do salário (%s) = %s",
			money.FormatBRL(in.TransportVoucher),
			money.FormatBRL(in.GrossSalary*tables.TransportVoucherRate),
			money.FormatBRL(voucher)))
	}

	total := taxable + allowance
	net := math.Max(0, total-inss.Value-irrf.Value-voucher-in.OtherDiscounts)
	trail.Add("valorLiquido", fmt.Sprintf("%s − %s − %s − %s − %s = %s",
		money.FormatBRL(total), money.FormatBRL(inss.Value), money.FormatBRL(irrf.Value),
		money.FormatBRL(voucher), money.FormatBRL(in.OtherDiscounts), money.FormatBRL(net)))

	return NetSalaryResult{
		TaxableGross:     money.Round4(taxable),
		Overtime:         money.Round4(overtime),
		NightPremium:     money.Round4(night),
		RiskPremium:      premium,
		FamilyAllowance:  money.Round4(allowance),
		TotalEarnings:    money.Round4(total),
		INSS:             inss,
		IRRF:             irrf,
		TransportVoucher: money.Round4(voucher),
		OtherDiscounts:   money.Round4(in.OtherDiscounts),
		Net:              money.Round4(net),
		Message:          "Salário líquido calculado com sucesso.",
		Trail:            trail,
	}
}
