// Package severance implements the rescisão orchestrator: it derives a
// base remuneration, projects the termination date against notice-period
// rules, and assembles a variant-specific set of earnings and deductions
// per termination reason.
package severance

import (
	"encoding/json"
	"fmt"
)

// Reason is the termination-reason variant. Variants are mutually
// exclusive; the orchestrator switches exhaustively over them.
type Reason int

const (
	ReasonWithoutCause Reason = iota
	ReasonByEmployee
	ReasonForCause
	ReasonMutualAgreement
	ReasonContractEnd
)

var reasonNames = map[Reason]string{
	ReasonWithoutCause:    "sem_justa_causa",
	ReasonByEmployee:      "pedido_demissao",
	ReasonForCause:        "justa_causa",
	ReasonMutualAgreement: "acordo_mutuo",
	ReasonContractEnd:     "termino_contrato",
}

func (r Reason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return fmt.Sprintf("motivo(%d)", int(r))
}

// ParseReason maps the wire name to a Reason; unknown names are an error
// rather than a silent fall-through.
func ParseReason(name string) (Reason, error) {
	for reason, candidate := range reasonNames {
		if candidate == name {
			return reason, nil
		}
	}
	return 0, fmt.Errorf("severance: unknown termination reason %q", name)
}

func (r Reason) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Reason) UnmarshalJSON(raw []byte) error {
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return err
	}
	parsed, err := ParseReason(name)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
