package tax

// TierDetail records one consumed bracket of a progressive walk, in tier
// order. It feeds the memória de cálculo and must be reproducible.
type TierDetail struct {
	Range   string  `json:"faixa"`
	Taxable float64 `json:"baseFaixa"`
	Rate    float64 `json:"aliquota"`
	Value   float64 `json:"valorFaixa"`
}

// Result is an immutable tax computation outcome, produced fresh per call.
type Result struct {
	Value     float64      `json:"value"`
	Base      float64      `json:"base"`
	Breakdown []TierDetail `json:"faixas,omitempty"`
}
