// Package benefits implements the per-benefit calculators: each derives a
// base remuneration, composes the core tax and proration utilities, and
// returns a result record with a memória de cálculo. Every function is
// pure; invalid input yields a zero result with a message, never an error.
package benefits

import (
	"bytes"
	"encoding/json"
)

// Trail is the memória de cálculo: an insertion-ordered key → explanation
// map. Order is significant for display and is preserved by MarshalJSON.
type Trail struct {
	keys    []string
	entries map[string]string
}

func NewTrail() *Trail {
	return &Trail{entries: make(map[string]string)}
}

// Add appends an explanation line. Re-adding a key overwrites the text
// but keeps the original position.
func (t *Trail) Add(key, explanation string) {
	if _, exists := t.entries[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.entries[key] = explanation
}

func (t *Trail) Get(key string) (string, bool) {
	value, ok := t.entries[key]
	return value, ok
}

func (t *Trail) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

func (t *Trail) Len() int {
	return len(t.keys)
}

func (t *Trail) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(t.entries[key])
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
