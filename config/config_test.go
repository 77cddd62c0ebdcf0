package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Company.Name != "Ornek OSGB" {
		t.Errorf("expected default company Ornek OSGB, got %s", cfg.Company.Name)
	}
	if cfg.Site.HomeProvince != 16 {
		t.Errorf("expected default home province 16, got %d", cfg.Site.HomeProvince)
	}
	if cfg.Site.Year != 2026 {
		t.Errorf("expected default year 2026, got %d", cfg.Site.Year)
	}
	if !cfg.IncludeDistricts() {
		t.Error("expected district pages enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing company name",
			modify:  func(c *Config) { c.Company.Name = "" },
			wantErr: true,
		},
		{
			name:    "missing home province",
			modify:  func(c *Config) { c.Site.HomeProvince = 0 },
			wantErr: true,
		},
		{
			name:    "missing base url",
			modify:  func(c *Config) { c.Site.BaseURL = "" },
			wantErr: true,
		},
		{
			name:    "relative base url",
			modify:  func(c *Config) { c.Site.BaseURL = "ornek.example" },
			wantErr: true,
		},
		{
			name:    "trailing slash base url",
			modify:  func(c *Config) { c.Site.BaseURL = "https://ornek.example/" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
company:
  name: "Bursa Guven OSGB"
  phone: "0224 000 00 00"
  domain: "bursaguven.example"
site:
  home_province: 16
  base_url: "https://bursaguven.example"
  services: [isyeri-hekimi, risk-analizi]
nats:
  url: "nats://localhost:4222"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Company.Name != "Bursa Guven OSGB" {
		t.Errorf("expected company Bursa Guven OSGB, got %s", cfg.Company.Name)
	}
	if len(cfg.Site.Services) != 2 {
		t.Errorf("expected 2 services, got %d", len(cfg.Site.Services))
	}
	if cfg.NATS.URL != "nats://localhost:4222" {
		t.Errorf("expected nats url, got %s", cfg.NATS.URL)
	}
	// Unset fields keep their defaults.
	if cfg.Site.Year != 2026 {
		t.Errorf("expected default year 2026, got %d", cfg.Site.Year)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	districts := false
	other := &Config{
		Company: Company{Name: "Yeni OSGB", Domain: "yeni.example"},
		Site: SiteConfig{
			HomeProvince: 34,
			Services:     []string{"isg-egitimi"},
			Districts:    &districts,
		},
		Metrics: MetricsConfig{Addr: ":9402"},
	}

	base.Merge(other)

	if base.Company.Name != "Yeni OSGB" {
		t.Errorf("expected merged company name, got %s", base.Company.Name)
	}
	if base.Site.HomeProvince != 34 {
		t.Errorf("expected merged home province 34, got %d", base.Site.HomeProvince)
	}
	if base.Site.BaseURL != "https://ornek-osgb.example" {
		t.Errorf("expected base url to keep default, got %s", base.Site.BaseURL)
	}
	if base.IncludeDistricts() {
		t.Error("expected districts disabled after merge")
	}
	if base.Metrics.Addr != ":9402" {
		t.Errorf("expected metrics addr :9402, got %s", base.Metrics.Addr)
	}

	base.Merge(nil) // no-op
	if base.Company.Name != "Yeni OSGB" {
		t.Error("merge with nil should not change config")
	}
}

func TestEnsureUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	loader := NewLoader(nil)
	if err := loader.EnsureUserConfig(); err != nil {
		t.Fatalf("EnsureUserConfig() error = %v", err)
	}

	path := filepath.Join(home, UserConfigDir, UserConfigFile)
	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("load created config: %v", err)
	}
	if cfg.Company.Name != "Ornek OSGB" {
		t.Errorf("expected default company in created config, got %s", cfg.Company.Name)
	}

	// A second call must not touch the existing file.
	cfg.Company.Name = "Degisen OSGB"
	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}
	if err := loader.EnsureUserConfig(); err != nil {
		t.Fatalf("EnsureUserConfig() second call error = %v", err)
	}
	again, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("reload config: %v", err)
	}
	if again.Company.Name != "Degisen OSGB" {
		t.Errorf("EnsureUserConfig overwrote existing config: %s", again.Company.Name)
	}
}

func TestSaveAndReloadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "sitegen.yaml")

	cfg := DefaultConfig()
	cfg.Company.Name = "Kayit OSGB"
	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if loaded.Company.Name != "Kayit OSGB" {
		t.Errorf("expected Kayit OSGB after reload, got %s", loaded.Company.Name)
	}
}
