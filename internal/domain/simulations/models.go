package simulations

import (
	"encoding/json"
	"time"
)

// Simulation is one saved calculator run: the calculator's name, the raw
// input the caller posted and the result the engine produced.
type Simulation struct {
	ID         string          `json:"id"`
	UserID     string          `json:"-"`
	Calculator string          `json:"calculadora"`
	Input      json.RawMessage `json:"entrada"`
	Result     json.RawMessage `json:"resultado"`
	CreatedAt  time.Time       `json:"criadoEm"`
}

// Calculators lists the valid calculator names a simulation may reference.
var Calculators = []string{
	"ferias",
	"decimo-terceiro",
	"salario-liquido",
	"fgts",
	"pis",
	"seguro-desemprego",
	"horas-extras",
	"inss",
	"vale-transporte",
	"irpf",
	"rescisao",
}

func ValidCalculator(name string) bool {
	for _, candidate := range Calculators {
		if candidate == name {
			return true
		}
	}
	return false
}
