package reportshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"folha/internal/domain/benefits"
	"folha/internal/domain/severance"
	"folha/internal/reports"
	"folha/internal/transport/http/api"
	"folha/internal/transport/http/middleware"
	"folha/internal/transport/http/shared"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/relatorios", func(r chi.Router) {
		r.Post("/ferias", h.handleVacationReport)
		r.Post("/rescisao", h.handleSeveranceReport)
	})
}

func (h *Handler) handleVacationReport(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var in benefits.VacationInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	result := benefits.Vacation(in)

	report := reports.Report{
		Title: "Demonstrativo de Férias",
		Items: []reports.Item{
			{Label: "Férias", Value: result.VacationValue},
			{Label: "Terço constitucional", Value: result.ConstitutionalThird},
			{Label: "Abono pecuniário", Value: result.CashOutValue},
			{Label: "Adiantamento do 13º", Value: result.ThirteenthAdvance},
			{Label: "Total de proventos", Value: result.TotalEarnings},
			{Label: "Desconto INSS", Value: result.INSS.Value},
			{Label: "Desconto IRRF", Value: result.IRRF.Value},
			{Label: "Valor líquido", Value: result.Net},
		},
		Trail:   trailLines(result.Trail),
		Message: result.Message,
	}
	writePDF(w, r, "ferias.pdf", report)
}

type severancePayload struct {
	severance.Input
	AdmissionDate string `json:"dataAdmissao"`
	DismissalDate string `json:"dataDemissao"`
}

func (h *Handler) handleSeveranceReport(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload severancePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	admission, errAdmission := shared.ParseDate(payload.AdmissionDate)
	dismissal, errDismissal := shared.ParseDate(payload.DismissalDate)
	if errAdmission != nil || errDismissal != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_date", "dates must be valid", requestID)
		return
	}
	in := payload.Input
	in.AdmissionDate = admission
	in.DismissalDate = dismissal
	result := severance.Compute(in)

	report := reports.Report{
		Title:   "Demonstrativo de Rescisão",
		Message: result.Message,
	}
	for _, key := range result.Earnings.Keys() {
		line, _ := result.Earnings.Get(key)
		report.Items = append(report.Items, reports.Item{Label: "Provento: " + key, Value: line.Amount})
		report.Trail = append(report.Trail, reports.TrailLine{Key: key, Text: line.Explanation})
	}
	for _, key := range result.Deductions.Keys() {
		line, _ := result.Deductions.Get(key)
		report.Items = append(report.Items, reports.Item{Label: "Desconto: " + key, Value: line.Amount})
		report.Trail = append(report.Trail, reports.TrailLine{Key: key, Text: line.Explanation})
	}
	report.Items = append(report.Items,
		reports.Item{Label: "Total de proventos", Value: result.TotalEarnings},
		reports.Item{Label: "Total de descontos", Value: result.TotalDeductions},
		reports.Item{Label: "Valor líquido", Value: result.Net},
	)
	writePDF(w, r, "rescisao.pdf", report)
}

func trailLines(trail *benefits.Trail) []reports.TrailLine {
	if trail == nil {
		return nil
	}
	lines := make([]reports.TrailLine, 0, trail.Len())
	for _, key := range trail.Keys() {
		text, _ := trail.Get(key)
		lines = append(lines, reports.TrailLine{Key: key, Text: text})
	}
	return lines
}

func writePDF(w http.ResponseWriter, r *http.Request, filename string, report reports.Report) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := reports.Write(w, report); err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed",
			"failed to render report", middleware.GetRequestID(r.Context()))
	}
}
