package reports

import (
	"bytes"
	"testing"
)

func TestWriteProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, Report{
		Title: "Demonstrativo de Férias",
		Items: []Item{
			{Label: "Total de proventos", Value: 4000},
			{Label: "Valor líquido", Value: 3505.2},
		},
		Trail: []TrailLine{
			{Key: "ferias", Text: "R$ 3.000,00 ÷ 30 × 30 dias = R$ 3.000,00"},
		},
		Message: "Férias calculadas com sucesso.",
	})
	if err != nil {
		t.Fatalf("write error: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected PDF bytes")
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("unexpected leading bytes: %q", buf.Bytes()[:8])
	}
}

func TestWriteEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Report{Title: "Relatório"}); err != nil {
		t.Fatalf("write error: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected PDF bytes")
	}
}
