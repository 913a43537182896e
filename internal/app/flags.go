package app

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Config represents the command-line parameters shared by the hosts.
type Config struct {
	Sim        string
	TPS        int
	Seed       int64
	PanelWidth int
	ConfigPath string
	Debug      bool

	// Settings hold key=value overrides from -set, by section.
	Settings Sections
}

// Sections groups flag-style settings: "view" feeds gridview.FromMap,
// "automation" feeds gridview.AutomationFromMap and "sim" the simulation
// factory.
type Sections map[string]map[string]string

// Section names understood by the hosts.
const (
	SectionView       = "view"
	SectionAutomation = "automation"
	SectionSim        = "sim"
)

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", TPS: 60, Seed: 42, PanelWidth: 240, Settings: Sections{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation driving the cells (empty for none)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.PanelWidth, "panel", c.PanelWidth, "width of the parameter panel, 0 hides it")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "JSON settings file")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "log debug records to stderr")
	fs.Func("set", "override a setting as section.key=value (repeatable)", c.parseSet)
}

func (c *Config) parseSet(s string) error {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("setting %q: want section.key=value", s)
	}
	section, name, ok := strings.Cut(key, ".")
	if !ok {
		section, name = SectionView, key
	}
	c.Settings.Set(section, name, value)
	return nil
}

// Set stores value under section and key.
func (s Sections) Set(section, key, value string) {
	m := s[section]
	if m == nil {
		m = map[string]string{}
		s[section] = m
	}
	m[key] = value
}

// Section returns the settings of one section; nil when absent.
func (s Sections) Section(name string) map[string]string { return s[name] }

// Load reads ConfigPath, if set, underneath the -set overrides.
func (c *Config) Load() error {
	if c.ConfigPath == "" {
		return nil
	}
	f, err := os.Open(c.ConfigPath)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	fromFile, err := ReadSections(f)
	if err != nil {
		return fmt.Errorf("config %s: %w", c.ConfigPath, err)
	}
	for section, values := range c.Settings {
		for k, v := range values {
			fromFile.Set(section, k, v)
		}
	}
	c.Settings = fromFile
	return nil
}

// ErrBadSection is returned when a top-level JSON value is not an object.
var ErrBadSection = errors.New("section is not an object")

// ReadSections decodes a JSON document of the form
// {"view": {"cell_size": 20, "shape": "circle"}, ...} into flag-style
// strings.
func ReadSections(r io.Reader) (Sections, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}
	out := Sections{}
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		var values map[string]any
		if err := json.Unmarshal(raw[name], &values); err != nil {
			return nil, fmt.Errorf("%s: %w", name, ErrBadSection)
		}
		for k, v := range values {
			out.Set(name, k, settingString(v))
		}
	}
	return out, nil
}

func settingString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}

// Logger returns the slog logger the hosts install: text records on w at
// debug level with -debug, nil otherwise.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	if !c.Debug {
		return nil
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
