package app

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"ecosim/internal/sims/ecosystem"
)

// Config represents the command-line and file parameters shared by the
// ecosim binaries.
type Config struct {
	File string `yaml:"-"`

	Addr      string `yaml:"addr"`
	Seed      int64  `yaml:"seed"`
	Scheduler string `yaml:"scheduler"`
	LogLevel  string `yaml:"log_level"`

	Plants     int `yaml:"plants"`
	Herbivores int `yaml:"herbivores"`
	Carnivores int `yaml:"carnivores"`

	Scale          int `yaml:"scale"`
	TPS            int `yaml:"tps"`
	StepsPerSecond int `yaml:"steps_per_second"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	initial := ecosystem.DefaultConfig().Initial
	return &Config{
		Addr:           ":8080",
		Scheduler:      string(ecosystem.SchedulerSequential),
		LogLevel:       "info",
		Plants:         initial.Plants,
		Herbivores:     initial.Herbivores,
		Carnivores:     initial.Carnivores,
		Scale:          32,
		TPS:            60,
		StepsPerSecond: 4,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "YAML config file; flags override its values")
	fs.StringVar(&c.Addr, "addr", c.Addr, "HTTP listen address")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "RNG seed (0 picks one from the clock)")
	fs.StringVar(&c.Scheduler, "scheduler", c.Scheduler, "tick scheduler: sequential or banded")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.IntVar(&c.Plants, "plants", c.Plants, "initial plants for viewer resets")
	fs.IntVar(&c.Herbivores, "herbivores", c.Herbivores, "initial herbivores for viewer resets")
	fs.IntVar(&c.Carnivores, "carnivores", c.Carnivores, "initial carnivores for viewer resets")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "viewer frames per second")
	fs.IntVar(&c.StepsPerSecond, "steps-per-second", c.StepsPerSecond, "simulation ticks per second in the viewer")
}

// Parse reads args into c. When -config names a file, its values are applied
// first and any flag given explicitly on the command line wins.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	pre := flag.NewFlagSet(fs.Name(), flag.ContinueOnError)
	pre.SetOutput(io.Discard)
	probe := *c
	probe.Bind(pre)
	_ = pre.Parse(args)

	if probe.File != "" {
		if err := c.LoadFile(probe.File); err != nil {
			return err
		}
		c.File = probe.File
	}

	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	return c.Validate()
}

// LoadFile overlays the YAML document at path onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate reports settings no binary can run with.
func (c *Config) Validate() error {
	if _, err := ecosystem.ParseScheduler(c.Scheduler); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Plants < 0 || c.Herbivores < 0 || c.Carnivores < 0 {
		return fmt.Errorf("invalid config: negative initial population")
	}
	return nil
}

// EffectiveSeed returns the configured seed, or one derived from the clock
// when none was given.
func (c *Config) EffectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// SimOptions renders the simulation settings as flag-style key/value pairs
// for ecosystem.FromMap and the sim registry.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"seed":       strconv.FormatInt(c.EffectiveSeed(), 10),
		"scheduler":  c.Scheduler,
		"plants":     strconv.Itoa(c.Plants),
		"herbivores": strconv.Itoa(c.Herbivores),
		"carnivores": strconv.Itoa(c.Carnivores),
	}
}

// Logger builds the process logger writing text records to w.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}
