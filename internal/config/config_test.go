package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadConfigDefaults(t *testing.T) {
	// run from an empty dir so no stray config.json is picked up
	wd, _ := os.Getwd()
	defer os.Chdir(wd)
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}

	c, err := LoadConfig(viper.New(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.WindowSize != 20 || c.CodonUsageAA != "L" || c.Kind != "DNA" || !c.Color || c.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestLoadConfigFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cfg.json")
	body := `{"input_fasta": "in.fasta", "window_size": 4, "codon_usage_aa": "k", "ordered_proteins": true, "color": false}`
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadConfig(viper.New(), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.InputFasta != "in.fasta" || c.WindowSize != 4 || c.CodonUsageAA != "K" || !c.OrderedProteins || c.Color {
		t.Fatalf("unexpected config: %+v", c)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SEQAN_WINDOW_SIZE", "7")
	t.Setenv("SEQAN_LOG_LEVEL", "debug")
	wd, _ := os.Getwd()
	defer os.Chdir(wd)
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	c, err := LoadConfig(viper.New(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.WindowSize != 7 || c.LogLevel != "debug" {
		t.Fatalf("expected env overrides, got %+v", c)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(viper.New(), filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for explicit missing file")
	}

	p := filepath.Join(t.TempDir(), "bad.json")
	_ = os.WriteFile(p, []byte(`{"window_size": 0}`), 0o644)
	if _, err := LoadConfig(viper.New(), p); err == nil {
		t.Fatalf("expected error for zero window size")
	}
}
