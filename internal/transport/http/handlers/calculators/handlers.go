package calchandler

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"

	"folha/internal/domain/benefits"
	"folha/internal/domain/params"
	"folha/internal/domain/severance"
	"folha/internal/domain/tables"
	"folha/internal/transport/http/api"
	"folha/internal/transport/http/middleware"
	"folha/internal/transport/http/shared"
)

type Handler struct {
	Params params.Document
}

func NewHandler(p params.Document) *Handler {
	return &Handler{Params: p}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/calculadoras", func(r chi.Router) {
		r.Post("/ferias", h.handleVacation)
		r.Post("/decimo-terceiro", h.handleThirteenth)
		r.Post("/salario-liquido", h.handleNetSalary)
		r.Post("/fgts", h.handleFGTS)
		r.Post("/pis", h.handlePIS)
		r.Post("/seguro-desemprego", h.handleUnemployment)
		r.Post("/horas-extras", h.handleOvertime)
		r.Post("/inss", h.handleContribution)
		r.Post("/vale-transporte", h.handleTransportVoucher)
		r.Post("/irpf", h.handleAnnualTax)
		r.Post("/rescisao", h.handleSeverance)
		r.Get("/tabelas", h.handleTables)
	})
}

func decode(w http.ResponseWriter, r *http.Request, payload any) bool {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload",
			"invalid request payload", middleware.GetRequestID(r.Context()))
		return false
	}
	return true
}

func (h *Handler) handleVacation(w http.ResponseWriter, r *http.Request) {
	var in benefits.VacationInput
	if !decode(w, r, &in) {
		return
	}
	api.Success(w, benefits.Vacation(in), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleThirteenth(w http.ResponseWriter, r *http.Request) {
	var in benefits.ThirteenthInput
	if !decode(w, r, &in) {
		return
	}
	api.Success(w, benefits.Thirteenth(in), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleNetSalary(w http.ResponseWriter, r *http.Request) {
	var in benefits.NetSalaryInput
	if !decode(w, r, &in) {
		return
	}
	api.Success(w, benefits.NetSalary(in), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleFGTS(w http.ResponseWriter, r *http.Request) {
	var in benefits.FGTSInput
	if !decode(w, r, &in) {
		return
	}
	api.Success(w, benefits.FGTS(in, h.Params.FGTS), middleware.GetRequestID(r.Context()))
}

type pisPayload struct {
	RegistrationDate string  `json:"dataCadastro"`
	ReferenceDate    string  `json:"dataReferencia"`
	AverageSalary    float64 `json:"mediaSalarial"`
	MonthsWorked     int     `json:"mesesTrabalhados"`
	WorkedDays       int     `json:"diasTrabalhados"`
}

func (h *Handler) handlePIS(w http.ResponseWriter, r *http.Request) {
	var payload pisPayload
	if !decode(w, r, &payload) {
		return
	}
	registration, err := shared.ParseDate(payload.RegistrationDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_date",
			"dataCadastro must be a valid date", middleware.GetRequestID(r.Context()))
		return
	}
	reference, err := shared.ParseDate(payload.ReferenceDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_date",
			"dataReferencia must be a valid date", middleware.GetRequestID(r.Context()))
		return
	}
	result := benefits.PIS(benefits.PISInput{
		RegistrationDate: registration,
		ReferenceDate:    reference,
		AverageSalary:    payload.AverageSalary,
		MonthsWorked:     payload.MonthsWorked,
		WorkedDays:       payload.WorkedDays,
	}, h.Params.PIS)
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUnemployment(w http.ResponseWriter, r *http.Request) {
	var in benefits.UnemploymentInput
	if !decode(w, r, &in) {
		return
	}
	api.Success(w, benefits.Unemployment(in, h.Params.Unemployment), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleOvertime(w http.ResponseWriter, r *http.Request) {
	var in benefits.OvertimeInput
	if !decode(w, r, &in) {
		return
	}
	api.Success(w, benefits.Overtime(in, h.Params.Overtime), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleContribution(w http.ResponseWriter, r *http.Request) {
	var in benefits.ContributionInput
	if !decode(w, r, &in) {
		return
	}
	api.Success(w, benefits.Contribution(in), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleTransportVoucher(w http.ResponseWriter, r *http.Request) {
	var in benefits.TransportVoucherInput
	if !decode(w, r, &in) {
		return
	}
	api.Success(w, benefits.TransportVoucher(in), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAnnualTax(w http.ResponseWriter, r *http.Request) {
	var in benefits.AnnualTaxInput
	if !decode(w, r, &in) {
		return
	}
	api.Success(w, benefits.AnnualTax(in), middleware.GetRequestID(r.Context()))
}

type severancePayload struct {
	severance.Input
	AdmissionDate string `json:"dataAdmissao"`
	DismissalDate string `json:"dataDemissao"`
}

func (h *Handler) handleSeverance(w http.ResponseWriter, r *http.Request) {
	var payload severancePayload
	if !decode(w, r, &payload) {
		return
	}
	admission, err := shared.ParseDate(payload.AdmissionDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_date",
			"dataAdmissao must be a valid date", middleware.GetRequestID(r.Context()))
		return
	}
	dismissal, err := shared.ParseDate(payload.DismissalDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_date",
			"dataDemissao must be a valid date", middleware.GetRequestID(r.Context()))
		return
	}
	in := payload.Input
	in.AdmissionDate = admission
	in.DismissalDate = dismissal
	api.Success(w, severance.Compute(in), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleTables(w http.ResponseWriter, r *http.Request) {
	inssTiers := make([]map[string]any, 0, len(tables.ContributionTiers))
	for _, tier := range tables.ContributionTiers {
		inssTiers = append(inssTiers, map[string]any{
			"limite": tier.UpperLimit, "aliquota": tier.Rate,
		})
	}
	irrfTiers := make([]map[string]any, 0, len(tables.WithholdingTiers))
	for _, tier := range tables.WithholdingTiers {
		entry := map[string]any{"aliquota": tier.Rate, "deducao": tier.Deduction}
		// The open last tier has no finite limit to report.
		if !math.IsInf(tier.UpperLimit, 1) {
			entry["limite"] = tier.UpperLimit
		}
		irrfTiers = append(irrfTiers, entry)
	}
	data := map[string]any{
		"inss": map[string]any{
			"faixas": inssTiers,
			"teto":   tables.ContributionCeiling,
		},
		"irrf": map[string]any{
			"faixas":            irrfTiers,
			"deducaoDependente": tables.DependentDeduction,
		},
		"salarioMinimo": tables.MinimumWage,
		"salarioFamilia": map[string]any{
			"valor":  tables.FamilyAllowanceAmount,
			"limite": tables.FamilyAllowanceLimit,
		},
		"parametros": h.Params,
	}
	api.Success(w, data, middleware.GetRequestID(r.Context()))
}
