package benefits

import (
	"fmt"

	"folha/internal/domain/money"
	"folha/internal/domain/remuneration"
	"folha/internal/domain/tables"
	"folha/internal/domain/tax"
)

type VacationInput struct {
	remuneration.Pay
	Days              int  `json:"diasFerias"`
	Dependents        int  `json:"dependentes"`
	CashOut           bool `json:"abonoPecuniario"`
	AdvanceThirteenth bool `json:"adiantarDecimoTerceiro"`
}

type VacationResult struct {
	BaseRemuneration    float64    `json:"baseRemuneracao"`
	VacationValue       float64    `json:"valorFerias"`
	ConstitutionalThird float64    `json:"tercoConstitucional"`
	CashOutValue        float64    `json:"valorAbono"`
	ThirteenthAdvance   float64    `json:"adiantamentoDecimoTerceiro"`
	TotalEarnings       float64    `json:"totalProventos"`
	INSS                tax.Result `json:"descontoINSS"`
	IRRF                tax.Result `json:"descontoIRRF"`
	Net                 float64    `json:"valorLiquido"`
	Message             string     `json:"mensagem,omitempty"`
	Trail               *Trail     `json:"memoriaCalculo,omitempty"`
}

// Vacation computes vacation pay: base/30 per requested day plus the
// constitutional third. The optional cash-out converts days/3 to cash at
// the plain daily rate and the optional 13th advance pays out six prorated
// months; neither enters the INSS/IRRF base.
func Vacation(in VacationInput) VacationResult {
	base, premium := remuneration.ComposeBase(in.Pay)
	if base <= 0 {
		return VacationResult{Message: "Informe um salário bruto maior que zero."}
	}
	if in.Days <= 0 || in.Days > 30 {
		return VacationResult{Message: "Informe de 1 a 30 dias de férias."}
	}

	trail := NewTrail()
	daily := base / 30
	vacationValue := daily * float64(in.Days)
	third := vacationValue * tables.ConstitutionalThird
	trail.Add("ferias", fmt.Sprintf("%s ÷ 30 × %d dias = %s",
		money.FormatBRL(base), in.Days, money.FormatBRL(vacationValue)))
	trail.Add("tercoConstitucional", fmt.Sprintf("1/3 de %s = %s",
		money.FormatBRL(vacationValue), money.FormatBRL(third)))

	var cashOut float64
	if in.CashOut {
		cashOutDays := in.Days / 3
		cashOut = daily * float64(cashOutDays)
		trail.Add("abonoPecuniario", fmt.Sprintf("%d dias vendidos × %s = %s",
			cashOutDays, money.FormatBRL(daily), money.FormatBRL(cashOut)))
	}

	var advance float64
	if in.AdvanceThirteenth {
		advance = money.Prorate(base, 6)
		trail.Add("adiantamentoDecimoTerceiro", fmt.Sprintf("6/12 de %s = %s",
			money.FormatBRL(base), money.FormatBRL(advance)))
	}

	// Contributions apply to vacation + third only, not to the cash-out
	// or the 13th advance.
	taxable := vacationValue + third
	inss := tax.ComputeContribution(taxable)
	irrf := tax.ComputeWithholding(taxable-inss.Value, in.Dependents)
	trail.Add("descontoINSS", fmt.Sprintf("INSS sobre %s = %s",
		money.FormatBRL(taxable), money.FormatBRL(inss.Value)))
	trail.Add("descontoIRRF", fmt.Sprintf("IRRF sobre %s (%d dependente(s)) = %s",
		money.FormatBRL(taxable-inss.Value), in.Dependents, money.FormatBRL(irrf.Value)))

	total := taxable + cashOut + advance
	net := total - inss.Value - irrf.Value
	trail.Add("valorLiquido", fmt.Sprintf("%s − %s − %s = %s",
		money.FormatBRL(total), money.FormatBRL(inss.Value),
		money.FormatBRL(irrf.Value), money.FormatBRL(net)))

	return VacationResult{
		BaseRemuneration:    money.Round4(base),
		VacationValue:       money.Round4(vacationValue),
		ConstitutionalThird: money.Round4(third),
		CashOutValue:        money.Round4(cashOut),
		ThirteenthAdvance:   money.Round4(advance),
		TotalEarnings:       money.Round4(total),
		INSS:                inss,
		IRRF:                irrf,
		Net:                 money.Round4(net),
		Message:             vacationMessage(premium),
		Trail:               trail,
	}
}

func vacationMessage(premium remuneration.Premium) string {
	if premium.Effective > 0 {
		return fmt.Sprintf("Férias calculadas sobre a remuneração com adicional de %s.",
			money.FormatBRL(premium.Effective))
	}
	return "Férias calculadas com sucesso."
}
