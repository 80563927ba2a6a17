package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so yaml values like "500ms" parse.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

type Config struct {
	Paths   PathsConfig   `yaml:"paths"`
	Watch   WatchConfig   `yaml:"watch"`
	Janitor JanitorConfig `yaml:"janitor"`
	Logging LoggingConfig `yaml:"logging"`
}

// PathsConfig pins the three directories a run touches. The defaults are
// the historical hard-coded paths, so a config file is only needed on
// hosts that deviate from them.
type PathsConfig struct {
	LiveBaseDir string `yaml:"liveBaseDir"`
	SpoolADir   string `yaml:"spoolADir"`
	SpoolBDir   string `yaml:"spoolBDir"`
}

type WatchConfig struct {
	Mode            string   `yaml:"mode"`            // "auto", "poll", "fsnotify"
	PollInterval    Duration `yaml:"pollInterval"`    // e.g. 5s
	DebounceWindow  Duration `yaml:"debounceWindow"`  // e.g. 500ms
	StabilityWindow Duration `yaml:"stabilityWindow"` // e.g. 200ms
}

type JanitorConfig struct {
	Schedule string   `yaml:"schedule"` // cron spec, e.g. "@hourly"
	MaxAge   Duration `yaml:"maxAge"`   // snapshots older than this are debris
}

type LoggingConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn", "error"
}

// Default returns the drop-in configuration matching the historical
// deployment: live files and spools under the classic monitoring prefix.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			LiveBaseDir: "/usr/local/nagios/var",
			SpoolADir:   "/usr/local/nagios/var/nagfluxspool/perfdata",
			SpoolBDir:   "/usr/local/nagios/var/spool/perfdata",
		},
		Watch: WatchConfig{
			Mode:            "auto",
			PollInterval:    Duration(5 * time.Second),
			DebounceWindow:  Duration(500 * time.Millisecond),
			StabilityWindow: Duration(200 * time.Millisecond),
		},
		Janitor: JanitorConfig{
			Schedule: "@hourly",
			MaxAge:   Duration(time.Hour),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
