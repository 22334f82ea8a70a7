package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/optihub-labs/optihub/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"

	// RegistryFileName is the manifest file name inside the home directory.
	RegistryFileName = "registry.toml"
)

// Dir returns the path to the Opti Hub config directory (~/.optihub/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.optihub/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// RegistryPath returns the manifest path, checking (in order):
//  1. OPTIHUB_REGISTRY env var
//  2. config key "registry"
//  3. ./registry.toml if present in the working directory
//  4. ~/.optihub/registry.toml
func RegistryPath() string {
	if v := os.Getenv(branding.EnvVar("REGISTRY")); v != "" {
		return v
	}
	if v := Get("registry"); v != "" {
		return v
	}
	if _, err := os.Stat(RegistryFileName); err == nil {
		return RegistryFileName
	}
	return HomeRegistryPath()
}

// HomeRegistryPath returns the synced registry location in the home
// directory (~/.optihub/registry.toml).
func HomeRegistryPath() string {
	return filepath.Join(Dir(), RegistryFileName)
}

// RegistryURL returns the upstream registry URL, checking (in order):
//  1. OPTIHUB_REGISTRY_URL env var
//  2. config key "registry_url"
//  3. branding.RegistryURL() (from branding.yaml)
func RegistryURL() string {
	if v := os.Getenv(branding.EnvVar("REGISTRY_URL")); v != "" {
		return v
	}
	if v := Get("registry_url"); v != "" {
		return v
	}
	return branding.RegistryURL()
}
