package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validConfig = `
app:
  name: BizPulse
  environment: development
  port: 8080
  base_url: http://localhost:8080
catalog:
  source: file
  path: data/locations.yaml
theme:
  primary: "#0f766e"
rate_limit:
  enabled: true
  requests_per_second: 5
  burst: 10
features:
  enable_metrics: true
`

func TestLoadResolvesCatalogPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(validConfig), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Catalog.Path != filepath.Join(dir, "data", "locations.yaml") {
		t.Fatalf("unexpected catalog path %q", cfg.Catalog.Path)
	}
	if !cfg.Features.EnableMetrics || cfg.RateLimit.Burst != 10 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	palette := cfg.Palette()
	if palette.Primary != "#0f766e" {
		t.Fatalf("expected configured primary, got %s", palette.Primary)
	}
	if palette.Surface == "" {
		t.Fatalf("expected default surface")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParseDefaultsToStaticCatalog(t *testing.T) {
	cfg, err := Parse([]byte("app:\n  name: BizPulse\n  port: 8080\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Catalog.Source != CatalogSourceStatic {
		t.Fatalf("expected static catalog, got %q", cfg.Catalog.Source)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{name: "missing name", yaml: "app:\n  port: 8080\n", wantErr: "app name is required"},
		{name: "missing port", yaml: "app:\n  name: x\n", wantErr: "app port is required"},
		{name: "bad port", yaml: "app:\n  name: x\n  port: 70000\n", wantErr: "out of range"},
		{name: "file without path", yaml: "app:\n  name: x\n  port: 1\ncatalog:\n  source: file\n", wantErr: "catalog path is required"},
		{name: "unknown source", yaml: "app:\n  name: x\n  port: 1\ncatalog:\n  source: postgres\n", wantErr: "unsupported catalog source"},
		{name: "bad color", yaml: "app:\n  name: x\n  port: 1\ntheme:\n  primary: blue\n", wantErr: "theme primary"},
		{name: "bad rate", yaml: "app:\n  name: x\n  port: 1\nrate_limit:\n  enabled: true\n  burst: 1\n", wantErr: "requests_per_second"},
		{name: "reload on static", yaml: "app:\n  name: x\n  port: 1\ncatalog:\n  reload_cron: \"*/5 * * * *\"\n", wantErr: "requires the file source"},
		{name: "bad reload cron", yaml: "app:\n  name: x\n  port: 1\ncatalog:\n  source: file\n  path: a.yaml\n  reload_cron: \"every minute\"\n", wantErr: "reload_cron"},
		{name: "bad burst", yaml: "app:\n  name: x\n  port: 1\nrate_limit:\n  enabled: true\n  requests_per_second: 1\n", wantErr: "burst"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse([]byte(test.yaml))
			if err == nil {
				t.Fatalf("expected error containing %q", test.wantErr)
			}
			if !strings.Contains(err.Error(), test.wantErr) {
				t.Fatalf("expected error containing %q, got %v", test.wantErr, err)
			}
		})
	}
}

func TestParseAcceptsReloadCron(t *testing.T) {
	cfg, err := Parse([]byte("app:\n  name: x\n  port: 1\ncatalog:\n  source: file\n  path: a.yaml\n  reload_cron: \"*/5 * * * *\"\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Catalog.ReloadCron != "*/5 * * * *" {
		t.Fatalf("unexpected reload cron %q", cfg.Catalog.ReloadCron)
	}
}
