package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-sdkstore/internal/assets"
	"github.com/alnah/go-sdkstore/internal/fileutil"
	"github.com/alnah/go-sdkstore/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config value")
)

// Field limits.
const (
	MaxAppLength   = 128  // Android package names are capped well below this
	MaxPathLength  = 4096 // PATH_MAX on Linux
	MaxBufferSize  = 1 << 20
	DefaultBuffer  = 1024
	DefaultAppName = "go-sdkstore"
)

// Default certificate placement.
const (
	DefaultCertificateName = "modio.crt"
	DefaultCertificateDir  = "Certificates"
)

// Config holds all configuration for storage resolution and materialization.
type Config struct {
	App         string            `yaml:"app"`
	Storage     StorageConfig     `yaml:"storage"`
	Assets      AssetsConfig      `yaml:"assets"`
	Certificate CertificateConfig `yaml:"certificate"`
	Copy        CopyConfig        `yaml:"copy"`
	Log         LogConfig         `yaml:"log"`
}

// StorageConfig overrides the host storage roots.
type StorageConfig struct {
	InternalRoot       string `yaml:"internalRoot"`       // Empty = platform default
	ExternalRoot       string `yaml:"externalRoot"`       // Empty = platform default
	UseExternalForMods bool   `yaml:"useExternalForMods"` // Host preference for mod storage
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded bundle only
}

// CertificateConfig places the bundled trust certificate.
type CertificateConfig struct {
	Name string `yaml:"name"` // Bundle asset name
	Dir  string `yaml:"dir"`  // Directory under the internal root
}

// CopyConfig tunes the stream copy.
type CopyConfig struct {
	BufferSize int `yaml:"bufferSize"` // 0 = default
}

// LogConfig selects the diagnostic output.
type LogConfig struct {
	Debug bool `yaml:"debug"`
	JSON  bool `yaml:"json"`
}

// Validate checks field values. Called automatically by LoadConfig, but
// available for consumers who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("app", c.App, MaxAppLength); err != nil {
		return err
	}
	if fileutil.IsFilePath(c.App) {
		return fmt.Errorf("%w: app: %q must not contain path separators", ErrInvalidField, c.App)
	}

	for field, root := range map[string]string{
		"storage.internalRoot": c.Storage.InternalRoot,
		"storage.externalRoot": c.Storage.ExternalRoot,
		"assets.basePath":      c.Assets.BasePath,
	} {
		if err := validateFieldLength(field, root, MaxPathLength); err != nil {
			return err
		}
	}
	if c.Storage.InternalRoot != "" && !filepath.IsAbs(c.Storage.InternalRoot) {
		return fmt.Errorf("%w: storage.internalRoot: %q is not absolute", ErrInvalidField, c.Storage.InternalRoot)
	}
	if c.Storage.ExternalRoot != "" && !filepath.IsAbs(c.Storage.ExternalRoot) {
		return fmt.Errorf("%w: storage.externalRoot: %q is not absolute", ErrInvalidField, c.Storage.ExternalRoot)
	}

	if c.Certificate.Name != "" {
		if err := assets.ValidateAssetName(c.Certificate.Name); err != nil {
			return fmt.Errorf("%w: certificate.name: %v", ErrInvalidField, err)
		}
	}
	if err := validateRelativeDir("certificate.dir", c.Certificate.Dir); err != nil {
		return err
	}

	if c.Copy.BufferSize < 0 || c.Copy.BufferSize > MaxBufferSize {
		return fmt.Errorf("%w: copy.bufferSize: must be between 0 and %d, got %d",
			ErrInvalidField, MaxBufferSize, c.Copy.BufferSize)
	}

	return nil
}

// validateRelativeDir accepts a relative directory that stays below its root.
func validateRelativeDir(field, dir string) error {
	if dir == "" {
		return nil
	}
	if err := validateFieldLength(field, dir, MaxPathLength); err != nil {
		return err
	}
	if filepath.IsAbs(dir) {
		return fmt.Errorf("%w: %s: %q must be relative", ErrInvalidField, field, dir)
	}
	clean := filepath.Clean(dir)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s: %q escapes the storage root", ErrInvalidField, field, dir)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		App:         DefaultAppName,
		Storage:     StorageConfig{UseExternalForMods: true},
		Certificate: CertificateConfig{Name: DefaultCertificateName, Dir: DefaultCertificateDir},
		Copy:        CopyConfig{BufferSize: DefaultBuffer},
	}
}

// WithDefaults fills zero-valued fields from DefaultConfig.
// Booleans are left untouched since false is a meaningful choice.
func (c *Config) WithDefaults() *Config {
	d := DefaultConfig()
	out := *c
	if out.App == "" {
		out.App = d.App
	}
	if out.Certificate.Name == "" {
		out.Certificate.Name = d.Certificate.Name
	}
	if out.Certificate.Dir == "" {
		out.Certificate.Dir = d.Certificate.Dir
	}
	if out.Copy.BufferSize == 0 {
		out.Copy.BufferSize = d.Copy.BufferSize
	}
	return &out
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	f, err := os.Open(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	defer f.Close()

	// Start from defaults so omitted booleans keep their default value.
	cfg := DefaultConfig()
	if err := yamlutil.DecodeStrict(f, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg.WithDefaults(), nil
}

// SearchPaths lists the files tried for a config name, in lookup order:
// .yaml then .yml, in the working directory then ~/.config/go-sdkstore/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, DefaultAppName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
