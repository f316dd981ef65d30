package severance

import (
	"fmt"
	"math"
	"time"

	"folha/internal/domain/money"
	"folha/internal/domain/remuneration"
	"folha/internal/domain/tables"
	"folha/internal/domain/tax"
)

const maxNoticeYears = 20

// Compute runs the full rescisão: context derivation, variant-specific
// earning assembly and the deduction block. Invalid or inverted dates
// yield an all-zero result with a message, never an error.
func Compute(in Input) Result {
	if in.AdmissionDate.IsZero() || in.DismissalDate.IsZero() {
		return emptyResult("Informe as datas de admissão e demissão.")
	}
	if !in.AdmissionDate.Before(in.DismissalDate) {
		return emptyResult("A data de admissão deve ser anterior à data de demissão.")
	}

	base, _ := remuneration.ComposeBase(in.Pay)
	if base <= 0 {
		return emptyResult("Informe um salário bruto maior que zero.")
	}

	ctx := deriveContext(base, in)
	earnings := assembleEarnings(base, ctx, in)
	result := Result{
		Context:  ctx,
		Earnings: earnings,
	}
	applyDeductions(&result, base, in)

	result.TotalEarnings = money.Round4(result.Earnings.Total())
	result.TotalDeductions = money.Round4(result.Deductions.Total())
	result.Net = money.Round4(math.Max(0, result.TotalEarnings-result.TotalDeductions))
	result.Message = fmt.Sprintf("Rescisão por %s calculada com sucesso.", in.Reason)
	return result
}

// deriveContext projects the termination date. The statutory whole-day
// calendar difference is approximated with a 365.25-day year; downstream
// figures assume this approximation.
func deriveContext(base float64, in Input) Context {
	elapsed := in.DismissalDate.Sub(in.AdmissionDate)
	years := int(math.Floor(elapsed.Hours() / 24 / 365.25))

	noticeDays := 0
	if in.NoticeIndemnified && employerNotice(in.Reason) {
		noticeDays = 30 + min(years, maxNoticeYears)*3
	}

	projected := in.DismissalDate
	if noticeDays > 0 {
		projected = in.DismissalDate.AddDate(0, 0, noticeDays)
	}

	return Context{
		BaseRemuneration: money.Round4(base),
		AdmissionDate:    in.AdmissionDate,
		DismissalDate:    in.DismissalDate,
		ProjectedEndDate: projected,
		YearsWorked:      years,
		NoticeDays:       noticeDays,
	}
}

// employerNotice reports whether the variant carries employer-paid
// indemnified notice.
func employerNotice(reason Reason) bool {
	return reason == ReasonWithoutCause || reason == ReasonMutualAgreement
}

func assembleEarnings(base float64, ctx Context, in Input) *Lines {
	lines := NewLines()

	balanceDays := in.DismissalDate.Day()
	balance := base / 30 * float64(balanceDays)
	addBalance := func() {
		lines.Add("saldoSalario", money.Round4(balance),
			fmt.Sprintf("%s ÷ 30 × %d dias trabalhados no mês = %s",
				money.FormatBRL(base), balanceDays, money.FormatBRL(balance)))
	}

	noticePay := base / 30 * float64(ctx.NoticeDays)

	thirteenthMonths := int(ctx.ProjectedEndDate.Month())
	thirteenth := money.Prorate(base, thirteenthMonths)
	addThirteenth := func() {
		lines.Add("decimoTerceiroProporcional", money.Round4(thirteenth),
			fmt.Sprintf("%s ÷ 12 × %d meses (projeção) = %s",
				money.FormatBRL(base), thirteenthMonths, money.FormatBRL(thirteenth)))
	}

	accrualMonths := vacationAccrualMonths(in.AdmissionDate, ctx.ProjectedEndDate)
	vacation := money.Prorate(base, accrualMonths)
	vacationWithThird := vacation * (1 + tables.ConstitutionalThird)
	addVacation := func() {
		lines.Add("feriasProporcionais", money.Round4(vacationWithThird),
			fmt.Sprintf("%s ÷ 12 × %d meses + 1/3 = %s",
				money.FormatBRL(base), accrualMonths, money.FormatBRL(vacationWithThird)))
	}

	addOverdue := func() {
		if !in.OverdueVacation {
			return
		}
		overdue := base * (1 + tables.ConstitutionalThird)
		lines.Add("feriasVencidas", money.Round4(overdue),
			fmt.Sprintf("Férias vencidas: %s + 1/3 = %s",
				money.FormatBRL(base), money.FormatBRL(overdue)))
	}

	switch in.Reason {
	case ReasonWithoutCause:
		addBalance()
		if ctx.NoticeDays > 0 {
			lines.Add("avisoPrevioIndenizado", money.Round4(noticePay),
				fmt.Sprintf("%s ÷ 30 × %d dias de aviso = %s",
					money.FormatBRL(base), ctx.NoticeDays, money.FormatBRL(noticePay)))
		}
		addThirteenth()
		addVacation()
		addOverdue()
		penalty := in.FGTSBalance * 0.40
		if penalty > 0 {
			lines.Add("multaFGTS", money.Round4(penalty),
				fmt.Sprintf("40%% de %s = %s",
					money.FormatBRL(in.FGTSBalance), money.FormatBRL(penalty)))
		}
	case ReasonByEmployee:
		addBalance()
		addThirteenth()
		addVacation()
		addOverdue()
	case ReasonForCause:
		// Earnings collapse to the salary balance plus any overdue
		// vacation; everything else is forfeited.
		addBalance()
		addOverdue()
	case ReasonMutualAgreement:
		addBalance()
		if ctx.NoticeDays > 0 {
			half := noticePay / 2
			lines.Add("avisoPrevioIndenizado", money.Round4(half),
				fmt.Sprintf("Metade do aviso de %d dias = %s",
					ctx.NoticeDays, money.FormatBRL(half)))
		}
		addThirteenth()
		addVacation()
		addOverdue()
		penalty := in.FGTSBalance * 0.20
		if penalty > 0 {
			lines.Add("multaFGTS", money.Round4(penalty),
				fmt.Sprintf("20%% de %s = %s",
					money.FormatBRL(in.FGTSBalance), money.FormatBRL(penalty)))
		}
	case ReasonContractEnd:
		addBalance()
		addThirteenth()
		addVacation()
		addOverdue()
	}

	return lines
}

// vacationAccrualMonths counts accrual months since the last admission
// anniversary, wrapped to 1..12 (a wrap of zero means a full period is
// due).
func vacationAccrualMonths(admission, projectedEnd time.Time) int {
	months := (int(projectedEnd.Month()) - int(admission.Month()) + 12) % 12
	if months == 0 {
		months = 12
	}
	return months
}

func applyDeductions(result *Result, base float64, in Input) {
	deductions := NewLines()

	// Tier-walked independently for the 13th-proportional and the salary
	// balance, matching the exclusive taxation of each verba.
	if thirteenth, ok := result.Earnings.Get("decimoTerceiroProporcional"); ok {
		result.INSSThirteenth = tax.ComputeContribution(thirteenth.Amount)
		if result.INSSThirteenth.Value > 0 {
			deductions.Add("inssDecimoTerceiro", result.INSSThirteenth.Value,
				fmt.Sprintf("INSS sobre o 13º proporcional de %s",
					money.FormatBRL(thirteenth.Amount)))
		}
	}

	var noticePaid float64
	if notice, ok := result.Earnings.Get("avisoPrevioIndenizado"); ok {
		noticePaid = notice.Amount
	}

	if balance, ok := result.Earnings.Get("saldoSalario"); ok {
		result.INSSBalance = tax.ComputeContribution(balance.Amount)
		if result.INSSBalance.Value > 0 {
			deductions.Add("inssSaldoSalario", result.INSSBalance.Value,
				fmt.Sprintf("INSS sobre o saldo de salário de %s",
					money.FormatBRL(balance.Amount)))
		}
		irrfBase := balance.Amount + noticePaid - result.INSSBalance.Value
		result.IRRF = tax.ComputeWithholding(irrfBase, in.Dependents)
		if result.IRRF.Value > 0 {
			deductions.Add("irrf", result.IRRF.Value,
				fmt.Sprintf("IRRF sobre %s", money.FormatBRL(irrfBase)))
		}
	}

	// The unfulfilled notice owed by the employee is a deduction line,
	// never a negative earning.
	if in.Reason == ReasonByEmployee && !in.NoticeWorked {
		deductions.Add("avisoPrevioNaoCumprido", money.Round4(base),
			fmt.Sprintf("Aviso prévio não cumprido: uma remuneração (%s)",
				money.FormatBRL(base)))
	}

	voucher := math.Min(in.TransportVoucher, in.GrossSalary*tables.TransportVoucherRate)
	if voucher > 0 {
		deductions.Add("valeTransporte", money.Round4(voucher),
			fmt.Sprintf("Vale-transporte limitado a 6%% do salário: %s",
				money.FormatBRL(voucher)))
	}
	if in.MealVoucher > 0 {
		deductions.Add("valeRefeicao", money.Round4(in.MealVoucher),
			fmt.Sprintf("Vale-refeição: %s", money.FormatBRL(in.MealVoucher)))
	}
	if in.HealthPlan > 0 {
		deductions.Add("planoSaude", money.Round4(in.HealthPlan),
			fmt.Sprintf("Plano de saúde: %s", money.FormatBRL(in.HealthPlan)))
	}
	if in.Advances > 0 {
		deductions.Add("adiantamentos", money.Round4(in.Advances),
			fmt.Sprintf("Adiantamentos: %s", money.FormatBRL(in.Advances)))
	}

	result.Deductions = deductions
}
