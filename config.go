package vtcore

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the environment/configuration options spec.md §6
// describes for a connection profile: display geometry, scrollback
// depth, color scheme, recording, and clipboard/paste policy. It is
// marshalled with yaml.v3 so the same struct loads from a YAML
// connection profile or from a flat string map (as a VNC/RDP-style
// gateway typically receives connection parameters).
type Config struct {
	Hostname   string `yaml:"hostname"`
	Port       int    `yaml:"port"`
	ReadOnly   bool   `yaml:"read-only"`

	Rows       int `yaml:"rows"`
	Columns    int `yaml:"columns"`
	Scrollback int `yaml:"scrollback"`

	ColorScheme string `yaml:"color-scheme"`
	Font        string `yaml:"font-name"`
	FontSize    int    `yaml:"font-size"`

	DisableCopy  bool `yaml:"disable-copy"`
	DisablePaste bool `yaml:"disable-paste"`

	RecordingPath        string `yaml:"recording-path"`
	RecordingName         string `yaml:"recording-name"`
	CreateRecordingPath  bool   `yaml:"create-recording-path"`

	ClipboardEncoding string `yaml:"clipboard-encoding"`
}

// DefaultConfig returns the documented defaults applied when a value is
// missing or out of range, matching spec.md §6.
func DefaultConfig() Config {
	return Config{
		Rows:              24,
		Columns:           80,
		Scrollback:        1000,
		ColorScheme:       SchemeGrayBlack,
		FontSize:          12,
		ClipboardEncoding: "UTF-8",
		RecordingName:     "recording",
	}
}

// ParseConfig builds a Config from a YAML connection profile document,
// starting from DefaultConfig and overlaying whatever the document
// specifies.
func ParseConfig(doc []byte, log Logger) (Config, error) {
	if log == nil {
		log = NewNopLogger()
	}
	cfg := DefaultConfig()
	if len(doc) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(doc, &cfg); err != nil {
		return DefaultConfig(), newError(ErrConfiguration, "failed to parse configuration", err)
	}
	cfg.normalize(log)
	return cfg, nil
}

// ParseConfigMap builds a Config from a flat string map, the shape a
// VNC/RDP-style gateway typically hands connection parameters in.
func ParseConfigMap(params map[string]string, log Logger) Config {
	if log == nil {
		log = NewNopLogger()
	}
	cfg := DefaultConfig()

	if v, ok := params["hostname"]; ok {
		cfg.Hostname = v
	}
	if v, ok := params["port"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Port = n
		} else {
			log.Warn("invalid port, using default", "value", v)
		}
	}
	if v, ok := params["read-only"]; ok {
		cfg.ReadOnly = v == "true"
	}
	if v, ok := params["color-scheme"]; ok {
		cfg.ColorScheme = v
	}
	if v, ok := params["font-name"]; ok {
		cfg.Font = v
	}
	if v, ok := params["font-size"]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.FontSize = n
		}
	}
	if v, ok := params["disable-copy"]; ok {
		cfg.DisableCopy = v == "true"
	}
	if v, ok := params["disable-paste"]; ok {
		cfg.DisablePaste = v == "true"
	}
	if v, ok := params["recording-path"]; ok {
		cfg.RecordingPath = v
	}
	if v, ok := params["recording-name"]; ok {
		cfg.RecordingName = v
	}
	if v, ok := params["create-recording-path"]; ok {
		cfg.CreateRecordingPath = v == "true"
	}
	if v, ok := params["clipboard-encoding"]; ok {
		cfg.ClipboardEncoding = v
	}

	cfg.normalize(log)
	return cfg
}

// normalize reverts out-of-range geometry/scrollback values to their
// documented defaults, logging a warning for each, per spec.md §6's
// error policy for configuration.
func (c *Config) normalize(log Logger) {
	defaults := DefaultConfig()
	if c.Rows <= 0 || c.Rows > MaxRowCapacity {
		log.Warn("invalid rows, using default", "value", c.Rows)
		c.Rows = defaults.Rows
	}
	if c.Columns <= 0 || c.Columns > MaxRowCapacity {
		log.Warn("invalid columns, using default", "value", c.Columns)
		c.Columns = defaults.Columns
	}
	if c.Scrollback < 0 {
		log.Warn("invalid scrollback, using default", "value", c.Scrollback)
		c.Scrollback = defaults.Scrollback
	}
}
