package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"
	"time"
)

//go:embed config_template.toml
var configTemplateContent string

// Default values.
const (
	DefaultToolURL        = "https://download.sysinternals.com/files/SDelete.zip"
	DefaultArchiveName    = "SDelete.zip"
	DefaultToolDirName    = "SDelete"
	DefaultExecutableName = "sdelete.exe"
	DefaultReportName     = "last-run.yaml"
	DefaultPasses         = 1
	DefaultLogLevel       = "info"
)

// Config file and directory names.
const (
	AppDirName     = "freewipe"    // Directory under the user config home
	ConfigFileName = "config.toml" // Config file name
	LogsDirName    = "logs"        // Log directory under the tool directory
	LogFileName    = "freewipe.log"
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string     `toml:"-"`
	Tool     ToolConfig   `toml:"tool"`
	Report   ReportConfig `toml:"report"`
	Log      LogConfig    `toml:"log"`
	Wipe     WipeConfig   `toml:"wipe"`
	Fetch    FetchConfig  `toml:"fetch"`
	UI       UIConfig     `toml:"ui"`
}

// ToolConfig holds settings for the SDelete download from [tool] section.
// Empty paths are resolved against the home directory.
type ToolConfig struct {
	URL         string `toml:"url,omitempty"`          // Archive download URL
	Dir         string `toml:"dir,omitempty"`          // Extraction directory (default: <home>/SDelete)
	Archive     string `toml:"archive,omitempty"`      // Archive path (default: <home>/SDelete.zip)
	Executable  string `toml:"executable,omitempty"`   // Executable name inside Dir (default: sdelete.exe)
	KeepArchive bool   `toml:"keep_archive,omitempty"` // Keep the archive after extraction
}

// WipeConfig holds settings for the wipe loop from [wipe] section.
type WipeConfig struct {
	Drives []string `toml:"drives,omitempty"` // Restrict to these drive letters (empty = all)
	Passes int      `toml:"passes,omitempty"` // Overwrite passes passed as -p
}

// FetchConfig holds settings for the download from [fetch] section.
type FetchConfig struct {
	Timeout Duration `toml:"timeout,omitempty"` // 0 = no timeout
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
}

// UIConfig holds console settings from [ui] section.
type UIConfig struct {
	Pause   *bool `toml:"pause,omitempty"` // Wait for Enter before exiting (default: true)
	NoColor bool  `toml:"no_color,omitempty"`
}

// ReportConfig holds run report settings from [report] section.
type ReportConfig struct {
	Enabled *bool  `toml:"enabled,omitempty"` // Write a report (default: true)
	Path    string `toml:"path,omitempty"`    // Report path (default: <tool dir>/last-run.yaml)
}

// Duration is a time.Duration that reads and writes as a string ("30s").
type Duration time.Duration

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", string(b), err)
	}
	*d = Duration(v)
	return nil
}

// MarshalText renders the duration as a string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// NewDefaultConfig returns a new Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Tool: ToolConfig{
			URL:        DefaultToolURL,
			Executable: DefaultExecutableName,
		},
		Wipe: WipeConfig{
			Passes: DefaultPasses,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// PauseEnabled reports whether the final keypress prompt is shown.
func (c *Config) PauseEnabled() bool {
	return c.UI.Pause == nil || *c.UI.Pause
}

// ReportEnabled reports whether a run report is written.
func (c *Config) ReportEnabled() bool {
	return c.Report.Enabled == nil || *c.Report.Enabled
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Wipe.Passes < 1 {
		return fmt.Errorf("[wipe] passes = %d: %w", c.Wipe.Passes, ErrInvalidPasses)
	}
	for _, d := range c.Wipe.Drives {
		if _, err := ParseDriveLetter(d); err != nil {
			return fmt.Errorf("[wipe] drives: %w", err)
		}
	}
	return nil
}

// ToolPaths holds the resolved filesystem locations of the SDelete tool.
type ToolPaths struct {
	Archive    string // Downloaded zip
	Dir        string // Extraction directory
	Executable string // Path to sdelete.exe inside Dir
	Report     string // Run report path
	LogsDir    string // Log directory
}

// ResolveToolPaths computes tool paths from the config, defaulting to
// <home>/SDelete.zip and <home>/SDelete.
func ResolveToolPaths(cfg *Config, home string) ToolPaths {
	dir := cfg.Tool.Dir
	if dir == "" {
		dir = filepath.Join(home, DefaultToolDirName)
	}
	archive := cfg.Tool.Archive
	if archive == "" {
		archive = filepath.Join(home, DefaultArchiveName)
	}
	exe := cfg.Tool.Executable
	if exe == "" {
		exe = DefaultExecutableName
	}
	report := cfg.Report.Path
	if report == "" {
		report = filepath.Join(dir, DefaultReportName)
	}
	return ToolPaths{
		Archive:    archive,
		Dir:        dir,
		Executable: filepath.Join(dir, exe),
		Report:     report,
		LogsDir:    filepath.Join(dir, LogsDirName),
	}
}

// GlobalAppDir returns the application config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalAppDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// templateData holds all data for rendering the config template.
type templateData struct {
	URL      string
	Exe      string
	LogLevel string
	Passes   int
}

// RenderConfigTemplate renders the commented config template with the values of cfg.
func RenderConfigTemplate(cfg *Config) string {
	data := templateData{
		URL:      cfg.Tool.URL,
		Exe:      cfg.Tool.Executable,
		Passes:   cfg.Wipe.Passes,
		LogLevel: cfg.Log.Level,
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}
	return buf.String()
}
