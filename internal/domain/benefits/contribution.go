package benefits

import (
	"fmt"

	"folha/internal/domain/money"
	"folha/internal/domain/tax"
)

type ContributionInput struct {
	GrossSalary float64 `json:"salarioBruto"`
}

type ContributionResult struct {
	INSS          tax.Result `json:"descontoINSS"`
	EffectiveRate float64    `json:"aliquotaEfetiva"`
	Net           float64    `json:"salarioAposINSS"`
	Message       string     `json:"mensagem,omitempty"`
	Trail         *Trail     `json:"memoriaCalculo,omitempty"`
}

// Contribution wraps the progressive INSS walk with an effective-rate
// narrative, one trail line per consumed tier.
func Contribution(in ContributionInput) ContributionResult {
	if in.GrossSalary <= 0 {
		return ContributionResult{Message: "Informe um salário bruto maior que zero."}
	}

	inss := tax.ComputeContribution(in.GrossSalary)
	trail := NewTrail()
	for i, tier := range inss.Breakdown {
		trail.Add(fmt.Sprintf("faixa%d", i+1), fmt.Sprintf("%s: %s × %.1f%% = %s",
			tier.Range, money.FormatBRL(tier.Taxable), tier.Rate*100, money.FormatBRL(tier.Value)))
	}
	trail.Add("descontoINSS", fmt.Sprintf("Contribuição total (limitada ao teto): %s",
		money.FormatBRL(inss.Value)))

	effective := inss.Value / in.GrossSalary
	return ContributionResult{
		INSS:          inss,
		EffectiveRate: money.Round4(effective),
		Net:           money.Round4(in.GrossSalary - inss.Value),
		Message: fmt.Sprintf("Alíquota efetiva de %.2f%% sobre o salário bruto.",
			effective*100),
		Trail: trail,
	}
}
