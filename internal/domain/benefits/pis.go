package benefits

import (
	"fmt"
	"time"

	"folha/internal/domain/money"
	"folha/internal/domain/params"
	"folha/internal/domain/tables"
)

type PISInput struct {
	RegistrationDate time.Time `json:"dataCadastro"`
	ReferenceDate    time.Time `json:"dataReferencia"`
	AverageSalary    float64   `json:"mediaSalarial"`
	MonthsWorked     int       `json:"mesesTrabalhados"`
	WorkedDays       int       `json:"diasTrabalhados"`
}

type PISResult struct {
	Eligible bool    `json:"elegivel"`
	Value    float64 `json:"valorAbono"`
	Message  string  `json:"mensagem,omitempty"`
	Trail    *Trail  `json:"memoriaCalculo,omitempty"`
}

// PIS checks abono salarial eligibility and prorates the minimum wage over
// months worked in the base year. Ineligibility is a result, not an error.
func PIS(in PISInput, p params.PIS) PISResult {
	if in.RegistrationDate.IsZero() {
		return PISResult{Message: "Informe a data de cadastro no PIS/PASEP."}
	}
	reference := in.ReferenceDate
	if reference.IsZero() {
		reference = time.Now()
	}

	registeredYears := int(reference.Sub(in.RegistrationDate).Hours() / 24 / 365.25)
	if registeredYears < p.MinRegistrationYears {
		return PISResult{Message: fmt.Sprintf(
			"Não elegível: cadastro no PIS/PASEP há menos de %d anos.", p.MinRegistrationYears)}
	}
	ceiling := tables.MinimumWage * p.MaxWageMultiple
	if in.AverageSalary > ceiling {
		return PISResult{Message: fmt.Sprintf(
			"Não elegível: média salarial acima de %s.", money.FormatBRL(ceiling))}
	}
	if in.WorkedDays < p.MinWorkedDays {
		return PISResult{Message: fmt.Sprintf(
			"Não elegível: menos de %d dias trabalhados no ano-base.", p.MinWorkedDays)}
	}
	if in.MonthsWorked < 1 || in.MonthsWorked > 12 {
		return PISResult{Message: "Informe de 1 a 12 meses trabalhados no ano-base."}
	}

	trail := NewTrail()
	value := money.Prorate(tables.MinimumWage, in.MonthsWorked)
	trail.Add("valorAbono", fmt.Sprintf("%s ÷ 12 × %d meses = %s",
		money.FormatBRL(tables.MinimumWage), in.MonthsWorked, money.FormatBRL(value)))

	return PISResult{
		Eligible: true,
		Value:    money.Round4(value),
		Message:  "Elegível ao abono salarial.",
		Trail:    trail,
	}
}
