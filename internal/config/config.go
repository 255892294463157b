package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is read when no --config flag is given; a missing file is not an error
const DefaultConfigPath = "ppw.yaml"

// Config holds everything the pipeline reads at construction time
type Config struct {
	Compiler CompilerConfig `yaml:"compiler"`
	History  HistoryConfig  `yaml:"history"`
	Publish  PublishConfig  `yaml:"publish"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// CompilerConfig describes how the external compiler is launched
type CompilerConfig struct {
	Runtime         string        `yaml:"runtime"`
	Jar             string        `yaml:"jar"`
	BuiltinSource   string        `yaml:"builtin_source"`
	LanguageOut     string        `yaml:"language_out"`
	ResolveBuiltins bool          `yaml:"resolve_builtins"`
	Timeout         time.Duration `yaml:"timeout"`
	NodeBinary      string        `yaml:"node_binary"`
}

// HistoryConfig enables the run history database when Path is set
type HistoryConfig struct {
	Path string `yaml:"path"`
}

// PublishConfig enables artifact upload when Endpoint is set
type PublishConfig struct {
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// LoggingConfig controls console output
type LoggingConfig struct {
	Verbose    bool `yaml:"verbose"`
	Timestamps bool `yaml:"timestamps"`
}

// Enabled reports whether artifacts should be uploaded
func (p PublishConfig) Enabled() bool {
	return strings.TrimSpace(p.Endpoint) != ""
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Compiler: CompilerConfig{
			Runtime:     "java",
			Jar:         "closure-compiler.jar",
			LanguageOut: "ECMASCRIPT_2015",
			NodeBinary:  "node",
		},
		Publish: PublishConfig{
			Region: "us-east-1",
			Bucket: "ppw-artifacts",
			UseSSL: true,
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies .env and
// environment overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	_ = godotenv.Load()
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	setString(&c.Compiler.Runtime, "PPW_RUNTIME")
	setString(&c.Compiler.Jar, "PPW_JAR")
	setString(&c.Compiler.BuiltinSource, "PPW_NODE_SOURCE")
	setString(&c.Compiler.LanguageOut, "PPW_LANGUAGE_OUT")
	setString(&c.Compiler.NodeBinary, "PPW_NODE")
	setString(&c.History.Path, "PPW_HISTORY_DB")
	setString(&c.Publish.Endpoint, "PPW_PUBLISH_ENDPOINT")
	setString(&c.Publish.Region, "PPW_PUBLISH_REGION")
	setString(&c.Publish.AccessKey, "PPW_PUBLISH_ACCESS_KEY")
	setString(&c.Publish.SecretKey, "PPW_PUBLISH_SECRET_KEY")
	setString(&c.Publish.Bucket, "PPW_PUBLISH_BUCKET")

	return errors.Join(
		setBool(&c.Compiler.ResolveBuiltins, "PPW_RESOLVE_BUILTINS"),
		setDuration(&c.Compiler.Timeout, "PPW_TIMEOUT"),
		setBool(&c.Publish.UseSSL, "PPW_PUBLISH_USE_SSL"),
	)
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	b, err := ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: expected a boolean", key, v)
	}
	*dst = b
	return nil
}

func setDuration(dst *time.Duration, key string) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: expected a duration such as 90s", key, v)
	}
	*dst = d
	return nil
}

// ParseBool accepts strconv booleans, including t/f, case-insensitively.
func ParseBool(s string) (bool, error) {
	return strconv.ParseBool(strings.ToLower(strings.TrimSpace(s)))
}

// Validate checks that the compiler can be launched at all
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Compiler.Runtime) == "" {
		return fmt.Errorf("compiler runtime is required")
	}
	if strings.TrimSpace(c.Compiler.Jar) == "" {
		return fmt.Errorf("compiler jar is required")
	}
	if strings.TrimSpace(c.Compiler.LanguageOut) == "" {
		return fmt.Errorf("output language level is required")
	}
	if c.Compiler.Timeout < 0 {
		return fmt.Errorf("compiler timeout must not be negative")
	}
	return nil
}
