package benefits

import (
	"fmt"
	"math"

	"folha/internal/domain/money"
	"folha/internal/domain/tables"
)

type AnnualTaxInput struct {
	AnnualIncome       float64 `json:"rendimentosAnuais"`
	INSSPaid           float64 `json:"inssPago"`
	TaxWithheld        float64 `json:"irrfRetido"`
	Dependents         int     `json:"dependentes"`
	DeductibleExpenses float64 `json:"despesasDedutiveis"`
}

type AnnualTaxResult struct {
	TaxableBase float64 `json:"baseCalculoAnual"`
	TaxDue      float64 `json:"impostoDevido"`
	TaxWithheld float64 `json:"irrfRetido"`
	// Balance is signed: positive means tax owed, negative means refund.
	Balance float64 `json:"saldoAjuste"`
	Message string  `json:"mensagem,omitempty"`
	Trail   *Trail  `json:"memoriaCalculo,omitempty"`
}

// AnnualTax runs the yearly IRRF adjustment: deductions shrink the annual
// income, the annualized withholding table (monthly limits and deductions
// times twelve) prices the tax due, and the balance against what was
// withheld is the one signed figure the engine produces.
func AnnualTax(in AnnualTaxInput) AnnualTaxResult {
	if in.AnnualIncome <= 0 {
		return AnnualTaxResult{Message: "Informe os rendimentos tributáveis do ano."}
	}

	trail := NewTrail()
	dependentDeduction := float64(in.Dependents) * tables.DependentDeduction * 12
	taxable := in.AnnualIncome - in.INSSPaid - dependentDeduction - in.DeductibleExpenses
	if taxable < 0 {
		taxable = 0
	}
	trail.Add("baseCalculoAnual", fmt.Sprintf("%s − %s (INSS) − %s (dependentes) − %s (despesas) = %s",
		money.FormatBRL(in.AnnualIncome), money.FormatBRL(in.INSSPaid),
		money.FormatBRL(dependentDeduction), money.FormatBRL(in.DeductibleExpenses),
		money.FormatBRL(taxable)))

	var due float64
	for _, tier := range tables.WithholdingTiers {
		upper := tier.UpperLimit * 12
		if taxable > upper {
			continue
		}
		due = math.Max(0, taxable*tier.Rate-tier.Deduction*12)
		trail.Add("impostoDevido", fmt.Sprintf("%s × %.1f%% − %s = %s",
			money.FormatBRL(taxable), tier.Rate*100,
			money.FormatBRL(tier.Deduction*12), money.FormatBRL(due)))
		break
	}

	balance := due - in.TaxWithheld
	message := "Ajuste anual sem saldo: imposto devido igual ao retido."
	if balance > 0 {
		message = fmt.Sprintf("Imposto a pagar no ajuste anual: %s.", money.FormatBRL(balance))
	} else if balance < 0 {
		message = fmt.Sprintf("Restituição no ajuste anual: %s.", money.FormatBRL(-balance))
	}
	trail.Add("saldoAjuste", fmt.Sprintf("%s (devido) − %s (retido) = %s",
		money.FormatBRL(due), money.FormatBRL(in.TaxWithheld), money.FormatBRL(balance)))

	return AnnualTaxResult{
		TaxableBase: money.Round4(taxable),
		TaxDue:      money.Round2(due),
		TaxWithheld: money.Round4(in.TaxWithheld),
		Balance:     money.Round2(balance),
		Message:     message,
		Trail:       trail,
	}
}
