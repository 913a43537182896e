package app

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{
		"-sim", "briansbrain",
		"-seed", "7",
		"-set", "cell_size=30",
		"-set", "automation.automation_interval=0.25",
		"-set", "sim.density=0.5",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Sim != "briansbrain" || cfg.Seed != 7 || cfg.TPS != 60 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if got := cfg.Settings.Section(SectionView)["cell_size"]; got != "30" {
		t.Fatalf("view.cell_size = %q", got)
	}
	if got := cfg.Settings.Section(SectionAutomation)["automation_interval"]; got != "0.25" {
		t.Fatalf("automation interval = %q", got)
	}
	if got := cfg.Settings.Section(SectionSim)["density"]; got != "0.5" {
		t.Fatalf("sim density = %q", got)
	}
}

func TestBindRejectsMalformedSet(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	NewConfig().Bind(fs)
	if err := fs.Parse([]string{"-set", "cell_size"}); err == nil {
		t.Fatalf("expected an error for a setting without a value")
	}
}

func TestReadSections(t *testing.T) {
	doc := `{"view": {"cell_size": 20, "shape": "circle", "wrap_x": true, "fade": 0.5}, "sim": {"density": 0.3}}`
	s, err := ReadSections(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	view := s.Section(SectionView)
	want := map[string]string{"cell_size": "20", "shape": "circle", "wrap_x": "true", "fade": "0.5"}
	for k, v := range want {
		if view[k] != v {
			t.Errorf("view[%q] = %q, want %q", k, view[k], v)
		}
	}
	if s.Section(SectionSim)["density"] != "0.3" {
		t.Errorf("sim density = %q", s.Section(SectionSim)["density"])
	}

	if _, err := ReadSections(strings.NewReader(`{"view": 3}`)); !errors.Is(err, ErrBadSection) {
		t.Fatalf("err = %v, want ErrBadSection", err)
	}
	if _, err := ReadSections(strings.NewReader(`{`)); err == nil {
		t.Fatalf("truncated document accepted")
	}
}

func TestLoadKeepsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cellgrid.json")
	if err := os.WriteFile(path, []byte(`{"view": {"cell_size": 20, "shape": "circle"}}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg := NewConfig()
	cfg.ConfigPath = path
	cfg.Settings.Set(SectionView, "cell_size", "12")
	if err := cfg.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	view := cfg.Settings.Section(SectionView)
	if view["cell_size"] != "12" || view["shape"] != "circle" {
		t.Fatalf("view = %v", view)
	}

	missing := NewConfig()
	missing.ConfigPath = filepath.Join(t.TempDir(), "absent.json")
	if err := missing.Load(); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not-exist", err)
	}
}

func TestLogger(t *testing.T) {
	cfg := NewConfig()
	if cfg.Logger(os.Stderr) != nil {
		t.Fatalf("logger without -debug")
	}
	var sb strings.Builder
	cfg.Debug = true
	cfg.Logger(&sb).Debug("hello", "k", 1)
	if !strings.Contains(sb.String(), "msg=hello") {
		t.Fatalf("log output = %q", sb.String())
	}
}
