package benefits

import (
	"fmt"
	"math"

	"folha/internal/domain/money"
	"folha/internal/domain/params"
	"folha/internal/domain/tables"
)

type UnemploymentInput struct {
	LastSalaries  []float64 `json:"ultimosSalarios"`
	MonthsWorked  int       `json:"mesesTrabalhados"`
	RequestNumber int       `json:"numeroSolicitacao"`
}

type UnemploymentResult struct {
	Eligible      bool    `json:"elegivel"`
	AverageSalary float64 `json:"mediaSalarial"`
	Installments  int     `json:"parcelas"`
	Installment   float64 `json:"valorParcela"`
	Total         float64 `json:"valorTotal"`
	Message       string  `json:"mensagem,omitempty"`
	Trail         *Trail  `json:"memoriaCalculo,omitempty"`
}

// Unemployment resolves seguro-desemprego: the average of the last
// salaries picks a value tier (addend plus rate on the excess over the
// tier floor, bounded by the cap and the minimum wage) and the request
// number with months worked picks the installment count. A request that
// matches no rule yields an explicit not-eligible result.
func Unemployment(in UnemploymentInput, p params.Unemployment) UnemploymentResult {
	if len(in.LastSalaries) == 0 {
		return UnemploymentResult{Message: "Informe os últimos salários recebidos."}
	}
	var sum float64
	for _, salary := range in.LastSalaries {
		if salary <= 0 {
			return UnemploymentResult{Message: "Salários informados devem ser maiores que zero."}
		}
		sum += salary
	}
	average := sum / float64(len(in.LastSalaries))

	request := in.RequestNumber
	if request > 3 {
		request = 3
	}
	installments := 0
	for _, rule := range p.InstallmentRules {
		if rule.Request == request && in.MonthsWorked >= rule.MinMonths {
			installments = rule.Installments
			break
		}
	}
	if installments == 0 {
		return UnemploymentResult{
			AverageSalary: money.Round4(average),
			Message: fmt.Sprintf(
				"Não elegível: %d meses trabalhados não dão direito a parcelas na %dª solicitação.",
				in.MonthsWorked, in.RequestNumber),
		}
	}

	trail := NewTrail()
	trail.Add("mediaSalarial", fmt.Sprintf("Média de %d salário(s) = %s",
		len(in.LastSalaries), money.FormatBRL(average)))

	value := p.Cap
	lower := 0.0
	for _, tier := range p.ValueTiers {
		if tier.UpperLimit <= 0 || average <= tier.UpperLimit {
			value = tier.Addend + tier.Rate*(average-lower)
			break
		}
		lower = tier.UpperLimit
	}
	if value > p.Cap {
		value = p.Cap
	}
	value = math.Max(value, tables.MinimumWage)
	trail.Add("valorParcela", fmt.Sprintf("Parcela apurada pela faixa da média salarial: %s",
		money.FormatBRL(value)))
	trail.Add("parcelas", fmt.Sprintf("%dª solicitação com %d meses trabalhados: %d parcela(s)",
		in.RequestNumber, in.MonthsWorked, installments))

	return UnemploymentResult{
		Eligible:      true,
		AverageSalary: money.Round4(average),
		Installments:  installments,
		Installment:   money.Round4(value),
		Total:         money.Round4(value * float64(installments)),
		Message:       "Elegível ao seguro-desemprego.",
		Trail:         trail,
	}
}
