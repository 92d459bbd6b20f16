package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ConfigDirName is the dot-directory under the project root that holds
// archlint's configuration and run history.
const ConfigDirName = ".archlint"

// Config represents the complete archlint configuration (v1 schema)
type Config struct {
	Version int `json:"version" mapstructure:"version"`

	// RequiredDirs lists project-relative directories that must exist.
	RequiredDirs []string `json:"requiredDirs" mapstructure:"requiredDirs"`

	// RequiredFiles lists project-relative files that must exist.
	RequiredFiles []string `json:"requiredFiles" mapstructure:"requiredFiles"`

	TestMirror TestMirrorConfig `json:"testMirror" mapstructure:"testMirror"`
	Modules    ModulesConfig    `json:"modules" mapstructure:"modules"`
	Logging    LoggingConfig    `json:"logging" mapstructure:"logging"`
}

// TestMirrorConfig configures the test-structure mirror check.
type TestMirrorConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	SrcDir  string `json:"srcDir" mapstructure:"srcDir"`
	TestDir string `json:"testDir" mapstructure:"testDir"`
}

// ModulesConfig configures module discovery for the circular-dependency
// check. An empty Dir disables the check entirely.
type ModulesConfig struct {
	Dir              string   `json:"dir" mapstructure:"dir"`
	Extensions       []string `json:"extensions" mapstructure:"extensions"`
	MaxFileSizeBytes int64    `json:"maxFileSizeBytes" mapstructure:"maxFileSizeBytes"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultExtensions is the fixed set of source-like file extensions
// considered by the module scanner. Everything else (config, data,
// binaries) is ignored.
var DefaultExtensions = []string{".py", ".ts", ".js", ".java", ".kt", ".go"}

// DefaultConfig returns the default validation rules.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		RequiredDirs: []string{
			"docs/adr",
			"tests/unit",
			"tests/integration",
		},
		RequiredFiles: []string{},
		TestMirror: TestMirrorConfig{
			Enabled: false,
			SrcDir:  "src/modules",
			TestDir: "tests/unit/modules",
		},
		Modules: ModulesConfig{
			Dir:              "",
			Extensions:       DefaultExtensions,
			MaxFileSizeBytes: 1000000,
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// LoadConfig loads configuration from <projectRoot>/.archlint/config.json.
// A missing config file is not an error: defaults apply.
func LoadConfig(projectRoot string) (*Config, error) {
	v := newViper()
	v.SetConfigName("config")
	v.AddConfigPath(filepath.Join(projectRoot, ConfigDirName))

	return readConfig(v)
}

// LoadConfigFile loads configuration from an explicit file path.
// Unlike LoadConfig, a missing file here is an error: the caller asked
// for that specific file.
func LoadConfigFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	return unmarshalConfig(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("json")

	def := DefaultConfig()
	v.SetDefault("version", def.Version)
	v.SetDefault("requiredDirs", def.RequiredDirs)
	v.SetDefault("requiredFiles", def.RequiredFiles)
	v.SetDefault("testMirror.enabled", def.TestMirror.Enabled)
	v.SetDefault("testMirror.srcDir", def.TestMirror.SrcDir)
	v.SetDefault("testMirror.testDir", def.TestMirror.TestDir)
	v.SetDefault("modules.dir", def.Modules.Dir)
	v.SetDefault("modules.extensions", def.Modules.Extensions)
	v.SetDefault("modules.maxFileSizeBytes", def.Modules.MaxFileSizeBytes)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.level", def.Logging.Level)

	return v
}

func readConfig(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return unmarshalConfig(v)
}

func unmarshalConfig(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the configuration to <projectRoot>/.archlint/config.json
func (c *Config) Save(projectRoot string) error {
	configPath := filepath.Join(projectRoot, ConfigDirName, "config.json")

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != 1 {
		return &ConfigError{Field: "version", Message: "unsupported config version"}
	}
	if c.TestMirror.Enabled {
		if c.TestMirror.SrcDir == "" {
			return &ConfigError{Field: "testMirror.srcDir", Message: "must not be empty when the mirror check is enabled"}
		}
		if c.TestMirror.TestDir == "" {
			return &ConfigError{Field: "testMirror.testDir", Message: "must not be empty when the mirror check is enabled"}
		}
	}
	if len(c.Modules.Extensions) == 0 {
		c.Modules.Extensions = DefaultExtensions
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
