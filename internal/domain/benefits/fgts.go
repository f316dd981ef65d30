package benefits

import (
	"fmt"

	"folha/internal/domain/money"
	"folha/internal/domain/params"
	"folha/internal/domain/tables"
)

const (
	FGTSWithdrawalNone        = "nenhum"
	FGTSWithdrawalBirthday    = "aniversario"
	FGTSWithdrawalTermination = "rescisao"
)

type FGTSInput struct {
	GrossSalary float64 `json:"salarioBruto"`
	Balance     float64 `json:"saldoTotal"`
	Withdrawal  string  `json:"modalidadeSaque"`
}

type FGTSResult struct {
	MonthlyDeposit  float64 `json:"depositoMensal"`
	AnnualDeposit   float64 `json:"depositoAnual"`
	WithdrawalValue float64 `json:"valorSaque"`
	Message         string  `json:"mensagem,omitempty"`
	Trail           *Trail  `json:"memoriaCalculo,omitempty"`
}

// FGTS computes the monthly employer deposit and, when requested, the
// withdrawal: the birthday modality takes a balance-tiered percentage plus
// a fixed addend, termination releases the full balance.
func FGTS(in FGTSInput, p params.FGTS) FGTSResult {
	if in.GrossSalary <= 0 && in.Balance <= 0 {
		return FGTSResult{Message: "Informe o salário bruto ou o saldo da conta do FGTS."}
	}

	trail := NewTrail()
	var deposit float64
	if in.GrossSalary > 0 {
		deposit = in.GrossSalary * tables.FGTSDepositRate
		trail.Add("depositoMensal", fmt.Sprintf("8%% de %s = %s",
			money.FormatBRL(in.GrossSalary), money.FormatBRL(deposit)))
	}

	var withdrawal float64
	message := "FGTS calculado com sucesso."
	switch in.Withdrawal {
	case FGTSWithdrawalBirthday:
		tier, ok := birthdayTier(in.Balance, p.BirthdayTiers)
		if !ok {
			return FGTSResult{
				MonthlyDeposit: money.Round4(deposit),
				AnnualDeposit:  money.Round4(deposit * 12),
				Message:        "Saldo não se enquadra em nenhuma faixa do saque-aniversário.",
				Trail:          trail,
			}
		}
		withdrawal = in.Balance*tier.Rate + tier.Addend
		trail.Add("valorSaque", fmt.Sprintf("%.0f%% de %s + %s = %s",
			tier.Rate*100, money.FormatBRL(in.Balance),
			money.FormatBRL(tier.Addend), money.FormatBRL(withdrawal)))
		message = "Saque-aniversário calculado com sucesso."
	case FGTSWithdrawalTermination:
		withdrawal = in.Balance
		trail.Add("valorSaque", fmt.Sprintf("Saque integral do saldo: %s",
			money.FormatBRL(in.Balance)))
		message = "Saque por rescisão libera o saldo integral."
	}

	return FGTSResult{
		MonthlyDeposit:  money.Round4(deposit),
		AnnualDeposit:   money.Round4(deposit * 12),
		WithdrawalValue: money.Round4(withdrawal),
		Message:         message,
		Trail:           trail,
	}
}

func birthdayTier(balance float64, tiers []params.FGTSWithdrawalTier) (params.FGTSWithdrawalTier, bool) {
	if balance <= 0 {
		return params.FGTSWithdrawalTier{}, false
	}
	for _, tier := range tiers {
		if tier.UpperLimit <= 0 || balance <= tier.UpperLimit {
			return tier, true
		}
	}
	return params.FGTSWithdrawalTier{}, false
}
