package sched

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config mirrors a YAML scheduling plan.
type Config struct {
	Capacity  int            `yaml:"capacity"`   // 16 (by default)
	LogLevel  string         `yaml:"log_level"`  // info (by default)
	LogFormat string         `yaml:"log_format"` // text (by default)
	Regions   []RegionConfig `yaml:"regions"`
}

// RegionConfig describes one region and the tasks queued in it.
type RegionConfig struct {
	Priority   int          `yaml:"priority"`
	PriorityFn string       `yaml:"priority_fn"` // name from PriorityNames
	Order      string       `yaml:"order"`       // min | max, defaults to the function's own mode
	Discipline string       `yaml:"discipline"`  // skew | leftist, skew by default
	Tasks      []TaskConfig `yaml:"tasks"`
}

// TaskConfig is a task as written in the plan. Time and type are given by
// name; unknown names fall back like any other out of range attribute.
type TaskConfig struct {
	ID          int    `yaml:"id"`
	Temperature int    `yaml:"temperature"`
	Moisture    int    `yaml:"moisture"`
	Time        string `yaml:"time"`
	Type        string `yaml:"type"`
}

func defaultConfig() Config {
	return Config{
		Capacity:  16,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads a YAML plan and overrides defaults; an empty path or a missing
// file yields the defaults only.
func Load(path string) (Config, error) {
	if path == "" {
		return defaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return defaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML plan on top of the defaults.
func Parse(data []byte) (Config, error) {
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	// sanity clamps
	if cfg.Capacity <= 0 {
		cfg.Capacity = 16
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	return cfg, nil
}

// Build creates a scheduler populated with the plan's regions.
func (c Config) Build(opts ...Option) (*Scheduler, error) {
	s := New(c.Capacity, opts...)
	for i, rc := range c.Regions {
		r, err := rc.region()
		if err != nil {
			return nil, fmt.Errorf("region %d: %w", i, err)
		}
		if !s.Insert(r) {
			return nil, fmt.Errorf("region %d: scheduler capacity %d exceeded", i, c.Capacity)
		}
	}
	return s, nil
}

func (rc RegionConfig) region() (*Region, error) {
	p, ok := LookupPriority(rc.PriorityFn)
	if !ok {
		return nil, fmt.Errorf("unknown priority function %q (have %v)", rc.PriorityFn, PriorityNames())
	}
	mode := p.Mode
	if rc.Order != "" {
		m, err := ParseOrderMode(rc.Order)
		if err != nil {
			return nil, err
		}
		mode = m
	}
	discipline := Skew
	if rc.Discipline != "" {
		d, err := ParseDiscipline(rc.Discipline)
		if err != nil {
			return nil, err
		}
		discipline = d
	}

	r := NewRegion(p.Fn, mode, discipline, rc.Priority)
	for _, tc := range rc.Tasks {
		r.Insert(tc.task())
	}
	return r, nil
}

func (tc TaskConfig) task() Task {
	tod, plant := -1, -1
	if v, err := ParseTimeOfDay(tc.Time); err == nil {
		tod = int(v)
	}
	if v, err := ParsePlantType(tc.Type); err == nil {
		plant = int(v)
	}
	return NewTask(tc.ID, tc.Temperature, tc.Moisture, tod, plant)
}
