package params

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultDecodesEmbeddedTables(t *testing.T) {
	doc := Default()

	if len(doc.FGTS.BirthdayTiers) != 7 {
		t.Fatalf("expected 7 birthday tiers, got %d", len(doc.FGTS.BirthdayTiers))
	}
	last := doc.FGTS.BirthdayTiers[len(doc.FGTS.BirthdayTiers)-1]
	if last.UpperLimit != 0 || last.Rate != 0.05 || last.Addend != 2900 {
		t.Fatalf("unexpected open last tier: %+v", last)
	}

	if doc.PIS.MinRegistrationYears != 5 || doc.PIS.MaxWageMultiple != 2 || doc.PIS.MinWorkedDays != 30 {
		t.Fatalf("unexpected PIS parameters: %+v", doc.PIS)
	}

	if doc.Unemployment.Cap != 2313.74 {
		t.Fatalf("unexpected installment cap: %v", doc.Unemployment.Cap)
	}
	if len(doc.Unemployment.ValueTiers) != 2 || len(doc.Unemployment.InstallmentRules) != 8 {
		t.Fatalf("unexpected unemployment tables: %+v", doc.Unemployment)
	}

	if doc.Overtime.MonthlyHours != 220 || doc.Overtime.WorkDays != 25 || doc.Overtime.RestDays != 5 {
		t.Fatalf("unexpected overtime defaults: %+v", doc.Overtime)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.json")
	payload := `{"horasExtras":{"horasMensais":200,"diasUteis":22,"diasDescanso":8}}`
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	doc, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if doc.Overtime.MonthlyHours != 200 || doc.Overtime.WorkDays != 22 {
		t.Fatalf("unexpected document: %+v", doc.Overtime)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFileInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected decode error")
	}
}
