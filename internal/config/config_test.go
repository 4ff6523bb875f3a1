package config

import "testing"

func validConfig() Config {
	return Config{
		HTTP:     HTTPConfig{Port: 8080},
		Database: DatabaseConfig{Addrs: []string{"localhost:6379"}},
		Catalog:  CatalogConfig{Path: "./data/catalog.xml"},
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := validConfig()
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}

	cfg.HTTP.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for out-of-range port")
	}
}

func TestValidate_MissingAddrs(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Addrs = nil
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing database addrs")
	}
}

func TestValidate_MissingCatalogPath(t *testing.T) {
	cfg := validConfig()
	cfg.Catalog.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing catalog path")
	}
}

func TestValidate_PurityPenaltyAboveOne(t *testing.T) {
	cfg := validConfig()
	cfg.Search.PurityPenalty = 1.5
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for purity penalty above 1")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 || cfg.HTTP.WriteTimeoutSec != 10 || cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("http defaults not applied: %+v", cfg.HTTP)
	}
	if cfg.Catalog.KeyPrefix != "suggest:product:" {
		t.Errorf("key prefix default = %q", cfg.Catalog.KeyPrefix)
	}
	if cfg.Catalog.IndexName != "suggest:product:idx" {
		t.Errorf("index name default = %q", cfg.Catalog.IndexName)
	}
	if cfg.Search.OverfetchMultiplier != 5 || cfg.Search.PurityWindow != 10 || cfg.Search.PurityPenalty != 0.3 {
		t.Errorf("search defaults not applied: %+v", cfg.Search)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := validConfig()
	cfg.Search = SearchConfig{OverfetchMultiplier: 2, PurityWindow: 4, PurityPenalty: 0.5}
	cfg.ApplyDefaults()

	if cfg.Search.OverfetchMultiplier != 2 || cfg.Search.PurityWindow != 4 || cfg.Search.PurityPenalty != 0.5 {
		t.Errorf("explicit search tuning overwritten: %+v", cfg.Search)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("SUGGEST_TEST_ADDR", "redis:6379")

	in := []byte("addr: ${SUGGEST_TEST_ADDR}\npath: ${SUGGEST_TEST_MISSING:-./fallback.xml}\nempty: ${SUGGEST_TEST_MISSING}")
	got := string(expandEnvVars(in))
	want := "addr: redis:6379\npath: ./fallback.xml\nempty: "
	if got != want {
		t.Errorf("expandEnvVars:\ngot:  %q\nwant: %q", got, want)
	}
}
