package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// Test data
	SpreadsheetPath string `yaml:"spreadsheet"`

	// Page under test
	BaseURL        string `yaml:"base_url"`
	InputName      string `yaml:"input_name"`
	OutputSelector string `yaml:"output_selector"`
	Headless       bool   `yaml:"headless"`
	WindowWidth    int    `yaml:"window_width"`
	WindowHeight   int    `yaml:"window_height"`

	// Output settings
	ResultsDir     string `yaml:"results_dir"`
	ResultsFile    string `yaml:"results_file"`
	ScreenshotsDir string `yaml:"screenshots_dir"`

	// Execution settings
	CaseTimeout   time.Duration `yaml:"case_timeout"`
	Retries       int           `yaml:"retries"`
	FieldTimeout  time.Duration `yaml:"field_timeout"`
	OutputTimeout time.Duration `yaml:"output_timeout"`
	SetupSettle   time.Duration `yaml:"setup_settle"`
	ClearSettle   time.Duration `yaml:"clear_settle"`

	// Command flags
	Flags Flags `yaml:"-"`
}

// Flags holds command-line flags
type Flags struct {
	SpreadsheetPath string
	BaseURL         string
	ResultsDir      string
	Filter          string
	Prefix          string
	CaseID          string
	Categories      []string
	Headed          bool
	Retries         int // negative means "not set"
	Timeout         time.Duration
	StrictNegative  bool
	OpenFailures    bool
	ByCategory      bool
	Verbose         bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		SpreadsheetPath: DefaultSpreadsheetPath,
		BaseURL:         DefaultBaseURL,
		InputName:       DefaultInputName,
		OutputSelector:  DefaultOutputSelector,
		Headless:        true,
		WindowWidth:     DefaultWindowWidth,
		WindowHeight:    DefaultWindowHeight,
		ResultsDir:      DefaultResultsDir,
		ResultsFile:     DefaultResultsFile,
		ScreenshotsDir:  DefaultScreenshotsDir,
		CaseTimeout:     DefaultCaseTimeout,
		Retries:         DefaultRetries,
		FieldTimeout:    DefaultFieldTimeout,
		OutputTimeout:   DefaultOutputTimeout,
		SetupSettle:     DefaultSetupSettle,
		ClearSettle:     DefaultClearSettle,
		Flags:           Flags{Retries: -1},
	}
	if os.Getenv("CI") != "" {
		cfg.Retries = DefaultCIRetries
	}
	return cfg
}

// Load builds the configuration from defaults, .env, the optional YAML file and the environment
func Load(configFile string) (*Config, error) {
	// .env is optional, the environment may already carry everything
	_ = godotenv.Load()

	cfg := New()
	if configFile == "" {
		configFile = DefaultConfigFile
	}
	if err := cfg.loadFile(configFile); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SHEETRUN_FILE"); v != "" {
		c.SpreadsheetPath = v
	}
	if v := os.Getenv("SHEETRUN_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("SHEETRUN_RESULTS_DIR"); v != "" {
		c.ResultsDir = v
	}
	if v := os.Getenv("SHEETRUN_HEADLESS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Headless = b
		}
	}
}

// ApplyFlags copies flag overrides into the config
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.SpreadsheetPath != "" {
		c.SpreadsheetPath = flags.SpreadsheetPath
	}
	if flags.BaseURL != "" {
		c.BaseURL = flags.BaseURL
	}
	if flags.ResultsDir != "" {
		c.ResultsDir = flags.ResultsDir
	}
	if flags.Headed {
		c.Headless = false
	}
	if flags.Retries >= 0 {
		c.Retries = flags.Retries
	}
	if flags.Timeout > 0 {
		c.CaseTimeout = flags.Timeout
	}
}

// GetOutputPath returns the absolute path of the results JSON file.
// Resolved to an absolute path so run, list and failures always agree regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ResultsDir, c.ResultsFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetScreenshotsDir returns the directory diagnostic screenshots are written to
func (c *Config) GetScreenshotsDir() string {
	return filepath.Join(c.ResultsDir, c.ScreenshotsDir)
}
