// Package config loads go_casenc settings from file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	configData Config
	v          = viper.New()
	bindings   = map[string]*pflag.Flag{}
)

// Config holds all configuration settings.
type Config struct {
	// Server configuration
	Server struct {
		Host string
		Port int
	}
	// Keys are the cascade keys used for login forms.
	Keys struct {
		First  string
		Second string
		Third  string
	}
	// Logging configuration
	Log struct {
		Level  string
		Format string
	}
}

const defaultConfig = `# go_casenc configuration file
server:
  host: localhost
  port: 1600

# strEnc keys embedded in the login page script.
keys:
  first: "1"
  second: "2"
  third: "3"

log:
  level: info
  format: human
`

// Initialize sets up the configuration system. An empty cfgFile searches the
// default locations and creates $HOME/.go_casenc/config.yaml if missing.
func Initialize(cfgFile string) error {
	v = viper.New()
	configData = Config{}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("error binding flag %s: %w", key, err)
		}
	}

	setDefaults()

	// Environment variables
	v.SetEnvPrefix("CASENC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.go_casenc")
		v.AddConfigPath("/etc/go_casenc/")

		if err := ensureConfig(); err != nil {
			return fmt.Errorf("error creating config file: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// It's okay if we can't find a config file, we'll use defaults
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(&configData); err != nil {
		return fmt.Errorf("unable to decode into config struct: %w", err)
	}

	return nil
}

// setDefaults sets default values for all configuration options.
func setDefaults() {
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 1600)

	v.SetDefault("keys.first", "1")
	v.SetDefault("keys.second", "2")
	v.SetDefault("keys.third", "3")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "human")
}

// ensureConfig creates a default config file if none exists.
func ensureConfig() error {
	home, err := os.UserHomeDir()
	if err != nil {
		// No home directory: run on defaults.
		return nil
	}

	dir := filepath.Join(home, ".go_casenc")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	configFile := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := os.WriteFile(configFile, []byte(defaultConfig), 0o644); err != nil {
			return err
		}
	}

	return nil
}

// BindFlag lets a command line flag override the configuration key.
func BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("no flag to bind for %s", key)
	}

	bindings[key] = flag

	return v.BindPFlag(key, flag)
}

// Get returns the current configuration.
func Get() *Config {
	return &configData
}

// GetViper returns the viper instance.
func GetViper() *viper.Viper {
	return v
}

// CascadeKeys returns the configured keys in cascade order.
func (c *Config) CascadeKeys() []string {
	return []string{c.Keys.First, c.Keys.Second, c.Keys.Third}
}

// Address returns host:port of the encode service.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
