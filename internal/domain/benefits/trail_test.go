package benefits

import (
	"encoding/json"
	"testing"
)

func TestTrailPreservesInsertionOrder(t *testing.T) {
	trail := NewTrail()
	trail.Add("zebra", "last alphabetically, first added")
	trail.Add("abacaxi", "first alphabetically")
	trail.Add("meio", "middle")

	keys := trail.Keys()
	if len(keys) != 3 || keys[0] != "zebra" || keys[1] != "abacaxi" || keys[2] != "meio" {
		t.Fatalf("unexpected key order: %v", keys)
	}
}

func TestTrailReAddKeepsPosition(t *testing.T) {
	trail := NewTrail()
	trail.Add("a", "one")
	trail.Add("b", "two")
	trail.Add("a", "updated")

	if trail.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", trail.Len())
	}
	if keys := trail.Keys(); keys[0] != "a" {
		t.Fatalf("re-add moved the key: %v", keys)
	}
	if value, _ := trail.Get("a"); value != "updated" {
		t.Fatalf("expected overwritten text, got %q", value)
	}
}

func TestTrailMarshalJSONKeepsOrder(t *testing.T) {
	trail := NewTrail()
	trail.Add("valorBruto", "b")
	trail.Add("descontoINSS", "i")
	trail.Add("valorLiquido", "l")

	raw, err := json.Marshal(trail)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	want := `{"valorBruto":"b","descontoINSS":"i","valorLiquido":"l"}`
	if string(raw) != want {
		t.Fatalf("unexpected JSON: %s", raw)
	}
}
