package benefits

import (
	"fmt"

	"folha/internal/domain/money"
	"folha/internal/domain/params"
)

type OvertimeInput struct {
	GrossSalary  float64 `json:"salarioBruto"`
	MonthlyHours float64 `json:"horasMensais"`
	Hours50      float64 `json:"horas50"`
	Hours100     float64 `json:"horas100"`
	IncludeDSR   bool    `json:"incluirDSR"`
}

type OvertimeResult struct {
	HourlyRate float64 `json:"valorHora"`
	Value50    float64 `json:"valorHoras50"`
	Value100   float64 `json:"valorHoras100"`
	DSR        float64 `json:"reflexoDSR"`
	Total      float64 `json:"valorTotal"`
	Message    string  `json:"mensagem,omitempty"`
	Trail      *Trail  `json:"memoriaCalculo,omitempty"`
}

// Overtime prices the 50% and 100% hour buckets off the contractual hourly
// rate and optionally adds the weekly-rest (DSR) reflex using the
// configured work/rest day split.
func Overtime(in OvertimeInput, p params.Overtime) OvertimeResult {
	if in.GrossSalary <= 0 {
		return OvertimeResult{Message: "Informe um salário bruto maior que zero."}
	}
	hours := in.MonthlyHours
	if hours <= 0 {
		hours = p.MonthlyHours
	}
	if hours <= 0 {
		return OvertimeResult{Message: "Informe a jornada mensal de horas."}
	}
	if in.Hours50 <= 0 && in.Hours100 <= 0 {
		return OvertimeResult{Message: "Informe a quantidade de horas extras."}
	}

	trail := NewTrail()
	hourly := in.GrossSalary / hours
	trail.Add("valorHora", fmt.Sprintf("%s ÷ %.0f h = %s",
		money.FormatBRL(in.GrossSalary), hours, money.FormatBRL(hourly)))

	var value50, value100 float64
	if in.Hours50 > 0 {
		value50 = hourly * 1.5 * in.Hours50
		trail.Add("valorHoras50", fmt.Sprintf("%.1f h × %s × 150%% = %s",
			in.Hours50, money.FormatBRL(hourly), money.FormatBRL(value50)))
	}
	if in.Hours100 > 0 {
		value100 = hourly * 2 * in.Hours100
		trail.Add("valorHoras100", fmt.Sprintf("%.1f h × %s × 200%% = %s",
			in.Hours100, money.FormatBRL(hourly), money.FormatBRL(value100)))
	}

	var dsr float64
	if in.IncludeDSR && p.WorkDays > 0 && p.RestDays > 0 {
		dsr = (value50 + value100) / float64(p.WorkDays) * float64(p.RestDays)
		trail.Add("reflexoDSR", fmt.Sprintf("%s ÷ %d dias úteis × %d dias de descanso = %s",
			money.FormatBRL(value50+value100), p.WorkDays, p.RestDays, money.FormatBRL(dsr)))
	}

	total := value50 + value100 + dsr
	trail.Add("valorTotal", fmt.Sprintf("Total de horas extras: %s", money.FormatBRL(total)))

	return OvertimeResult{
		HourlyRate: money.Round4(hourly),
		Value50:    money.Round4(value50),
		Value100:   money.Round4(value100),
		DSR:        money.Round4(dsr),
		Total:      money.Round4(total),
		Message:    "Horas extras calculadas com sucesso.",
		Trail:      trail,
	}
}
