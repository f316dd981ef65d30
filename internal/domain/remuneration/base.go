package remuneration

// Pay is the common remuneration slice of a calculator's input: the
// contractual salary, the averages of variable pay, and the risk-premium
// selectors.
type Pay struct {
	GrossSalary     float64        `json:"salarioBruto"`
	OvertimeAverage float64        `json:"mediaHorasExtras"`
	NightAverage    float64        `json:"mediaAdicionalNoturno"`
	Hazardous       bool           `json:"periculosidade"`
	UnhealthyGrade  UnhealthyGrade `json:"grauInsalubridade"`
	UnhealthyBasis  UnhealthyBasis `json:"baseInsalubridade"`
}

// ComposeBase builds the base remuneration every benefit computes over:
// salary + averaged overtime + averaged night premium + effective risk
// premium. Returns the base and the resolved premium for the audit trail.
func ComposeBase(pay Pay) (float64, Premium) {
	if pay.GrossSalary <= 0 {
		return 0, Premium{}
	}
	premium := ComputeRiskPremium(pay.GrossSalary, pay.Hazardous, pay.UnhealthyGrade, pay.UnhealthyBasis)
	base := pay.GrossSalary + pay.OvertimeAverage + pay.NightAverage + premium.Effective
	return base, premium
}
