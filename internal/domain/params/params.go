// Package params models the externally supplied parameter tables of the
// table-driven calculators. The engine hardcodes only the core INSS/IRRF
// tables; everything here arrives as a JSON document, with the current-year
// values embedded as the default. The loaded document is read-only.
package params

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

//go:embed defaults.json
var defaultsJSON []byte

// FGTSWithdrawalTier is one row of the birthday-withdrawal schedule.
// An UpperLimit of zero marks the open last row.
type FGTSWithdrawalTier struct {
	UpperLimit float64 `json:"limiteSaldo"`
	Rate       float64 `json:"aliquota"`
	Addend     float64 `json:"parcelaAdicional"`
}

type FGTS struct {
	BirthdayTiers []FGTSWithdrawalTier `json:"saqueAniversario"`
}

type PIS struct {
	MinRegistrationYears int     `json:"anosMinimosCadastro"`
	MaxWageMultiple      float64 `json:"tetoSalariosMinimos"`
	MinWorkedDays        int     `json:"diasMinimosTrabalhados"`
}

// UnemploymentTier computes Addend + Rate × (average − lower bound of the
// tier); bounds chain like the contribution table. Zero UpperLimit is open.
type UnemploymentTier struct {
	UpperLimit float64 `json:"limiteMedia"`
	Rate       float64 `json:"aliquota"`
	Addend     float64 `json:"parcelaFixa"`
}

// InstallmentRule grants Installments parcels when the request number
// matches and the employee worked at least MinMonths. Rows are ordered,
// first match wins.
type InstallmentRule struct {
	Request      int `json:"solicitacao"`
	MinMonths    int `json:"mesesMinimos"`
	Installments int `json:"parcelas"`
}

type Unemployment struct {
	ValueTiers       []UnemploymentTier `json:"faixasValor"`
	Cap              float64            `json:"tetoParcela"`
	InstallmentRules []InstallmentRule  `json:"regrasParcelas"`
}

type Overtime struct {
	MonthlyHours float64 `json:"horasMensais"`
	WorkDays     int     `json:"diasUteis"`
	RestDays     int     `json:"diasDescanso"`
}

// Document bundles every table-driven calculator's parameters.
type Document struct {
	FGTS         FGTS         `json:"fgts"`
	PIS          PIS          `json:"pis"`
	Unemployment Unemployment `json:"seguroDesemprego"`
	Overtime     Overtime     `json:"horasExtras"`
}

// Default decodes the embedded current-year document.
func Default() Document {
	var doc Document
	// The embedded document is validated by tests; a decode failure here
	// is a build defect.
	if err := json.Unmarshal(defaultsJSON, &doc); err != nil {
		panic(fmt.Sprintf("params: embedded defaults invalid: %v", err))
	}
	return doc
}

// LoadFile reads a parameter document from disk, for table updates without
// a rebuild.
func LoadFile(path string) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("params: read %s: %w", path, err)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, fmt.Errorf("params: decode %s: %w", path, err)
	}
	return doc, nil
}
