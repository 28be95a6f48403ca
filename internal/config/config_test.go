package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFrom(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "full config",
			content: "no_color: true\n" +
				"history_dsn: \"probe:secret@tcp(127.0.0.1:3306)/forensics\"\n" +
				"formats: [canonical, oid]\n",
			check: func(t *testing.T, cfg *Config) {
				if !cfg.NoColor {
					t.Error("NoColor = false, want true")
				}
				if cfg.HistoryDSN == "" {
					t.Error("HistoryDSN not loaded")
				}
				if len(cfg.Formats) != 2 || cfg.Formats[0] != "canonical" || cfg.Formats[1] != "oid" {
					t.Errorf("Formats = %v", cfg.Formats)
				}
			},
		},
		{
			name:    "empty file uses defaults",
			content: "",
			check: func(t *testing.T, cfg *Config) {
				if cfg.NoColor || cfg.HistoryDSN != "" || len(cfg.Formats) != 0 {
					t.Errorf("unexpected non-defaults: %+v", cfg)
				}
			},
		},
		{
			name:    "unknown format rejected",
			content: "formats: [canonical, base64]\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml rejected",
			content: "formats: [unterminated\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			cfg, err := LoadFrom(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadFrom() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoadFrom_Missing(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), FileName))
	if !os.IsNotExist(err) {
		t.Errorf("LoadFrom() error = %v, want IsNotExist", err)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvHistoryDSN, "env:dsn@tcp(localhost:3306)/override")

	cfg := &Config{HistoryDSN: "file-dsn"}
	cfg.ApplyEnv()
	if cfg.HistoryDSN != "env:dsn@tcp(localhost:3306)/override" {
		t.Errorf("HistoryDSN = %q, env should win over the file", cfg.HistoryDSN)
	}
}
