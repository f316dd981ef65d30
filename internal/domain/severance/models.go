package severance

import (
	"bytes"
	"encoding/json"
	"time"

	"folha/internal/domain/remuneration"
	"folha/internal/domain/tax"
)

type Input struct {
	remuneration.Pay
	AdmissionDate     time.Time `json:"dataAdmissao"`
	DismissalDate     time.Time `json:"dataDemissao"`
	Reason            Reason    `json:"motivo"`
	NoticeIndemnified bool      `json:"avisoPrevioIndenizado"`
	NoticeWorked      bool      `json:"avisoPrevioCumprido"`
	OverdueVacation   bool      `json:"feriasVencidas"`
	FGTSBalance       float64   `json:"saldoFGTS"`
	Dependents        int       `json:"dependentes"`
	TransportVoucher  float64   `json:"descontoValeTransporte"`
	MealVoucher       float64   `json:"descontoValeRefeicao"`
	HealthPlan        float64   `json:"descontoPlanoSaude"`
	Advances          float64   `json:"adiantamentos"`
}

// Context is derived once per computation and discarded after. The
// projected end date, not the raw dismissal date, drives the
// months-this-year and vacation-accrual arithmetic when notice is
// indemnified.
type Context struct {
	BaseRemuneration float64   `json:"baseRemuneracao"`
	AdmissionDate    time.Time `json:"dataAdmissao"`
	DismissalDate    time.Time `json:"dataDemissao"`
	ProjectedEndDate time.Time `json:"dataProjetada"`
	YearsWorked      int       `json:"anosTrabalhados"`
	NoticeDays       int       `json:"diasAvisoPrevio"`
}

// Line is one earning or deduction with its audit explanation.
type Line struct {
	Amount      float64 `json:"valor"`
	Explanation string  `json:"descricao"`
}

// Lines is an insertion-ordered name → Line map; order drives display and
// is preserved by MarshalJSON. Each variant builds its own, never shared.
type Lines struct {
	keys    []string
	entries map[string]Line
}

func NewLines() *Lines {
	return &Lines{entries: make(map[string]Line)}
}

func (l *Lines) Add(key string, amount float64, explanation string) {
	if _, exists := l.entries[key]; !exists {
		l.keys = append(l.keys, key)
	}
	l.entries[key] = Line{Amount: amount, Explanation: explanation}
}

func (l *Lines) Get(key string) (Line, bool) {
	line, ok := l.entries[key]
	return line, ok
}

func (l *Lines) Keys() []string {
	out := make([]string, len(l.keys))
	copy(out, l.keys)
	return out
}

func (l *Lines) Len() int {
	return len(l.keys)
}

// Total sums every line amount.
func (l *Lines) Total() float64 {
	var total float64
	for _, key := range l.keys {
		total += l.entries[key].Amount
	}
	return total
}

func (l *Lines) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range l.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(l.entries[key])
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type Result struct {
	Context         Context    `json:"contexto"`
	Earnings        *Lines     `json:"proventos"`
	Deductions      *Lines     `json:"descontos"`
	INSSThirteenth  tax.Result `json:"inssDecimoTerceiro"`
	INSSBalance     tax.Result `json:"inssSaldoSalario"`
	IRRF            tax.Result `json:"descontoIRRF"`
	TotalEarnings   float64    `json:"totalProventos"`
	TotalDeductions float64    `json:"totalDescontos"`
	Net             float64    `json:"valorLiquido"`
	Message         string     `json:"mensagem,omitempty"`
}

func emptyResult(message string) Result {
	return Result{
		Earnings:   NewLines(),
		Deductions: NewLines(),
		Message:    message,
	}
}
