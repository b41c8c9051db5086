package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

const jsonData = `{
  "packages": [
    {
      "id": "home-basic",
      "name": "Home Basic",
      "category": "Residential",
      "pricing": {
        "listed": 1990,
        "currency": "ILS",
        "installation": {"included": true},
        "addons": [
          {"id": "alarm-basic-addon", "name": "Alarm", "price": 1200, "optional": false}
        ]
      },
      "cameras": {"min": 2, "max": 4, "default": 2, "types": ["IP", "4MP"], "ai_level": "basic"},
      "recorder": {"channels": 4},
      "storage": {"size": "1TB"}
    }
  ]
}`

const yamlData = `packages:
  - id: office-pro
    name: Office Pro
    category: Commercial
    pricing:
      listed: 8490
      currency: ILS
      installation:
        included: false
      maintenance:
        annual: 1500
        optional: true
    cameras:
      min: 4
      max: 16
      default: 8
      types: ["IP", "4K", "Color Night"]
      ai_level: advanced
    recorder:
      channels: 16
    storage:
      size: 4TB
    backup_power:
      included: true
      model: "APC 1000VA"
`

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadJSON verifies JSON package files
func TestLoadJSON(t *testing.T) {
	pkgs, err := Load(writeFile(t, "packages.json", jsonData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pkgs) != 1 {
		t.Fatalf("expected 1 package, got %d", len(pkgs))
	}

	pkg := pkgs[0]
	if pkg.ID != "home-basic" {
		t.Errorf("unexpected id %q", pkg.ID)
	}
	if !pkg.Pricing.Listed.Equal(decimal.NewFromInt(1990)) {
		t.Errorf("expected listed price 1990, got %s", pkg.Pricing.Listed)
	}
	if len(pkg.Pricing.Addons) != 1 || !pkg.Pricing.Addons[0].Price.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("addons not loaded: %+v", pkg.Pricing.Addons)
	}
}

// TestLoadYAML verifies YAML package files
func TestLoadYAML(t *testing.T) {
	pkgs, err := Load(writeFile(t, "packages.yaml", yamlData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pkgs) != 1 {
		t.Fatalf("expected 1 package, got %d", len(pkgs))
	}

	pkg := pkgs[0]
	if pkg.ID != "office-pro" {
		t.Errorf("unexpected id %q", pkg.ID)
	}
	if !pkg.Pricing.Listed.Equal(decimal.NewFromInt(8490)) {
		t.Errorf("expected listed price 8490, got %s", pkg.Pricing.Listed)
	}
	if pkg.BackupPower == nil || !pkg.BackupPower.Included {
		t.Error("backup power not loaded")
	}
	if pkg.Pricing.Maintenance == nil || !pkg.Pricing.Maintenance.Optional {
		t.Error("maintenance not loaded")
	}
}

// TestLoadErrors verifies input validation
func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
	}{
		{"unsupported extension", "packages.toml", "whatever"},
		{"empty package list", "packages.json", `{"packages": []}`},
		{"missing id", "packages.json", `{"packages": [{"name": "No ID"}]}`},
		{"malformed json", "packages.json", `{"packages": [`},
		{"malformed yaml", "packages.yaml", "packages:\n  - id: [broken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeFile(t, tt.file, tt.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

// TestLoadMissingFile verifies the read error path
func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected an error")
	}
}
