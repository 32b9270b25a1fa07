package factors

import (
	"os"
	"path/filepath"
	"testing"

	"ecotrack/core/types"
)

func writeCatalogFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing catalog file: %v", err)
	}
	return path
}

func TestLoadFileHCL(t *testing.T) {
	path := writeCatalogFile(t, "factors.hcl", `
version = "2025.2"

category "transport" {
  factor "car_petrol" {
    value = 0.18
    unit  = "km"
  }

  factor "scooter_electric" {
    value = 0.026
  }
}

category "energy" {
  factor "electricity_global_avg" {
    value = 0.233
    unit  = "kWh"
  }
}
`)

	table, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if table.Version() != "2025.2" {
		t.Errorf("expected version 2025.2, got %s", table.Version())
	}
	if table.Source() != SourceFile {
		t.Errorf("expected file source, got %s", table.Source())
	}
	if table.Len() != 3 {
		t.Errorf("expected 3 entries, got %d", table.Len())
	}

	f, ok := table.Lookup(types.CategoryTransport, "car_petrol")
	if !ok || f.Value != 0.18 {
		t.Errorf("expected overridden car_petrol 0.18, got %+v ok=%v", f, ok)
	}
	f, ok = table.Lookup(types.CategoryTransport, "scooter_electric")
	if !ok || f.Unit != "" {
		t.Errorf("expected scooter_electric with empty unit, got %+v ok=%v", f, ok)
	}
}

func TestLoadFileJSON(t *testing.T) {
	path := writeCatalogFile(t, "factors.json", `{
  "version": "2025.2",
  "category": {
    "food": {
      "factor": {
        "beef": {"value": 26.5, "unit": "kg"}
      }
    }
  }
}`)

	table, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	f, ok := table.Lookup(types.CategoryFood, "beef")
	if !ok || f.Value != 26.5 {
		t.Errorf("expected beef 26.5, got %+v ok=%v", f, ok)
	}
}

func TestLoadFileDefaultsVersion(t *testing.T) {
	path := writeCatalogFile(t, "factors.hcl", `
category "waste" {
  factor "municipal_waste" {
    value = 0.6
  }
}
`)

	table, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if table.Version() != DefaultVersion {
		t.Errorf("missing version must fall back to %s, got %s", DefaultVersion, table.Version())
	}
}

func TestLoadFileRejectsMalformed(t *testing.T) {
	path := writeCatalogFile(t, "factors.hcl", `category "transport" {`)

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected parse error, got nil")
	}
}

func TestLoadOrDefault(t *testing.T) {
	table, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("empty path: %v", err)
	}
	if table.Source() != SourceEmbedded {
		t.Error("empty path must yield the embedded catalog")
	}

	table, err = LoadOrDefault(filepath.Join(t.TempDir(), "missing.hcl"))
	if err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if table.Source() != SourceEmbedded {
		t.Error("missing file must yield the embedded catalog")
	}

	broken := writeCatalogFile(t, "factors.hcl", `category {{`)
	if _, err := LoadOrDefault(broken); err == nil {
		t.Error("present but broken catalog must fail")
	}
}
