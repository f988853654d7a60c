package vtcore

import "testing"

func TestParseConfigYAMLOverlaysDefaults(t *testing.T) {
	doc := []byte("hostname: example.com\nport: 5900\nrows: 40\n")
	cfg, err := ParseConfig(doc, nil)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Hostname != "example.com" || cfg.Port != 5900 {
		t.Fatalf("cfg = %+v, hostname/port not overlaid", cfg)
	}
	if cfg.Rows != 40 {
		t.Fatalf("cfg.Rows = %d, want 40", cfg.Rows)
	}
	if cfg.Columns != DefaultConfig().Columns {
		t.Fatalf("cfg.Columns = %d, want default %d", cfg.Columns, DefaultConfig().Columns)
	}
}

func TestParseConfigInvalidYAMLReturnsError(t *testing.T) {
	_, err := ParseConfig([]byte("rows: [this is not an int"), nil)
	if err == nil {
		t.Fatalf("expected an error for malformed YAML")
	}
}

func TestParseConfigMapLeavesRowsAtDefault(t *testing.T) {
	cfg := ParseConfigMap(map[string]string{"rows": "not-applicable"}, nil)
	// ParseConfigMap doesn't read "rows" (only ParseConfig's YAML path
	// does), so Rows keeps its default value.
	if cfg.Rows != DefaultConfig().Rows {
		t.Fatalf("cfg.Rows = %d, want default", cfg.Rows)
	}
}

func TestParseConfigMapReadsKnownFields(t *testing.T) {
	cfg := ParseConfigMap(map[string]string{
		"hostname":     "h",
		"port":         "22",
		"read-only":    "true",
		"disable-copy": "true",
	}, nil)
	if cfg.Hostname != "h" || cfg.Port != 22 || !cfg.ReadOnly || !cfg.DisableCopy {
		t.Fatalf("cfg = %+v, fields not applied", cfg)
	}
}
