package app

import (
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ecosim.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("ecosim", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParse(t *testing.T) {
	file := writeConfig(t, `
addr: ":9090"
seed: 7
scheduler: banded
log_level: debug
plants: 12
`)

	tests := []struct {
		name     string
		args     []string
		wantErr  string
		validate func(*testing.T, *Config)
	}{
		{
			name: "defaults",
			validate: func(t *testing.T, c *Config) {
				if c.Addr != ":8080" || c.Scheduler != "sequential" || c.LogLevel != "info" {
					t.Errorf("unexpected defaults %+v", c)
				}
			},
		},
		{
			name: "file values",
			args: []string{"-config", file},
			validate: func(t *testing.T, c *Config) {
				if c.Addr != ":9090" || c.Seed != 7 || c.Scheduler != "banded" || c.Plants != 12 {
					t.Errorf("file not applied: %+v", c)
				}
				if c.Herbivores != NewConfig().Herbivores {
					t.Errorf("unset file key should keep default, got %d", c.Herbivores)
				}
				if c.File != file {
					t.Errorf("File = %q", c.File)
				}
			},
		},
		{
			name: "flags override file",
			args: []string{"-seed", "99", "-config", file, "-scheduler", "sequential"},
			validate: func(t *testing.T, c *Config) {
				if c.Seed != 99 || c.Scheduler != "sequential" {
					t.Errorf("flags did not win: %+v", c)
				}
				if c.Addr != ":9090" {
					t.Errorf("file value lost: addr %q", c.Addr)
				}
			},
		},
		{
			name:    "missing file",
			args:    []string{"-config", filepath.Join(t.TempDir(), "nope.yaml")},
			wantErr: "read config",
		},
		{
			name:    "bad scheduler",
			args:    []string{"-scheduler", "parallel"},
			wantErr: "unknown scheduler",
		},
		{
			name:    "bad level",
			args:    []string{"-log-level", "loud"},
			wantErr: "log level",
		},
		{
			name:    "negative population",
			args:    []string{"-carnivores", "-1"},
			wantErr: "negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConfig()
			err := c.Parse(newFlagSet(), tt.args)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.validate(t, c)
		})
	}
}

func TestLoadFileRejectsBadYAML(t *testing.T) {
	c := NewConfig()
	err := c.LoadFile(writeConfig(t, "addr: [unterminated"))
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("error = %v", err)
	}
}

func TestSimOptions(t *testing.T) {
	c := NewConfig()
	c.Seed = 5
	c.Scheduler = "banded"
	c.Plants = 3
	opts := c.SimOptions()
	if opts["seed"] != "5" || opts["scheduler"] != "banded" || opts["plants"] != "3" {
		t.Fatalf("options = %v", opts)
	}

	c.Seed = 0
	if c.EffectiveSeed() == 0 {
		t.Fatal("zero seed should be replaced")
	}
}

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	c := NewConfig()
	c.LogLevel = "warn"
	log := c.Logger(&buf)
	log.Info("hidden")
	log.Warn("shown", "k", 1)
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") || !strings.Contains(out, "k=1") {
		t.Fatalf("log output %q", out)
	}
}
