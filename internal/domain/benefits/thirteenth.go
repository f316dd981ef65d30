package benefits

import (
	"fmt"
	"math"

	"folha/internal/domain/money"
	"folha/internal/domain/remuneration"
	"folha/internal/domain/tax"
)

type ThirteenthInput struct {
	remuneration.Pay
	MonthsWorked    int     `json:"mesesTrabalhados"`
	Dependents      int     `json:"dependentes"`
	AdvanceReceived float64 `json:"adiantamentoRecebido"`
}

type ThirteenthResult struct {
	BaseRemuneration float64    `json:"baseRemuneracao"`
	Gross            float64    `json:"valorBruto"`
	INSS             tax.Result `json:"descontoINSS"`
	IRRF             tax.Result `json:"descontoIRRF"`
	AdvanceReceived  float64    `json:"adiantamentoRecebido"`
	Net              float64    `json:"valorLiquido"`
	Message          string     `json:"mensagem,omitempty"`
	Trail            *Trail     `json:"memoriaCalculo,omitempty"`
}

// Thirteenth prorates the base remuneration over months worked, withholds
// INSS and IRRF on the gross, and nets out any advance already paid,
// flooring at zero.
func Thirteenth(in ThirteenthInput) ThirteenthResult {
	base, _ := remuneration.ComposeBase(in.Pay)
	if base <= 0 {
		return ThirteenthResult{Message: "Informe um salário bruto maior que zero."}
	}
	if in.MonthsWorked < 1 || in.MonthsWorked > 12 {
		return ThirteenthResult{Message: "Informe de 1 a 12 meses trabalhados."}
	}

	trail := NewTrail()
	gross := money.Prorate(base, in.MonthsWorked)
	trail.Add("valorBruto", fmt.Sprintf("%s ÷ 12 × %d meses = %s",
		money.FormatBRL(base), in.MonthsWorked, money.FormatBRL(gross)))

	inss := tax.ComputeContribution(gross)
	irrf := tax.ComputeWithholding(gross-inss.Value, in.Dependents)
	trail.Add("descontoINSS", fmt.Sprintf("INSS sobre %s = %s",
		money.FormatBRL(gross), money.FormatBRL(inss.Value)))
	trail.Add("descontoIRRF", fmt.Sprintf("IRRF sobre %s = %s",
		money.FormatBRL(gross-inss.Value), money.FormatBRL(irrf.Value)))

	net := math.Max(0, gross-inss.Value-irrf.Value-in.AdvanceReceived)
	if in.AdvanceReceived > 0 {
		trail.Add("adiantamentoRecebido", fmt.Sprintf("Primeira parcela já recebida: %s",
			money.FormatBRL(in.AdvanceReceived)))
	}
	trail.Add("valorLiquido", fmt.Sprintf("%s − %s − %s − %s = %s",
		money.FormatBRL(gross), money.FormatBRL(inss.Value), money.FormatBRL(irrf.Value),
		money.FormatBRL(in.AdvanceReceived), money.FormatBRL(net)))

	return ThirteenthResult{
		BaseRemuneration: money.Round4(base),
		Gross:            money.Round4(gross),
		INSS:             inss,
		IRRF:             irrf,
		AdvanceReceived:  money.Round4(in.AdvanceReceived),
		Net:              money.Round4(net),
		Message:          "Décimo terceiro calculado com sucesso.",
		Trail:            trail,
	}
}
