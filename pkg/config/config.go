package config

import (
	"fmt"
	"os"
	"path/filepath"

	"artclip/pkg/errors"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTheme      = "default"
	DefaultDateFormat = "Jan 2, 2006 3:04 PM"
	DefaultCacheDays  = 7
)

// localAccountName is the implicit account used when none is configured.
const localAccountName = "local"

// Account identifies who owns fetched articles. The ID travels with the
// internal clipboard format, so it must stay stable across invocations.
type Account struct {
	Name    string `yaml:"name"`
	ID      string `yaml:"id"`
	Default bool   `yaml:"default,omitempty"`
}

// Config holds the complete artclip configuration.
type Config struct {
	Theme         ThemeConfig  `yaml:"theme"`
	Export        ExportConfig `yaml:"export"`
	Cache         CacheConfig  `yaml:"cache"`
	Accounts      []Account    `yaml:"accounts,omitempty"`
	ActiveAccount string       `yaml:"active_account,omitempty"`
}

type ThemeConfig struct {
	Name string `yaml:"name"`
	// Dir holds user-provided theme templates; built-in themes are used
	// when empty or the named theme is not present in the directory.
	Dir string `yaml:"dir,omitempty"`
}

type ExportConfig struct {
	DateFormat string `yaml:"date_format"`
}

type CacheConfig struct {
	Path string `yaml:"path,omitempty"`
	Days int    `yaml:"days"`
}

// Load reads the config file, applies environment overrides, and fills
// defaults. A missing config file is not an error.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, errors.NewWithError(errors.ExitCodeConfig, "failed to get config path", err)
	}
	return loadFromPath(configPath)
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "artclip", "config.yaml"), nil
}

// DefaultCachePath returns the article cache location under the user
// cache directory.
func DefaultCachePath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return filepath.Join(cacheDir, "artclip", "articles.db")
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to create config directory", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to marshal config", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to write config file", err)
	}

	return nil
}

// GetAccount returns an account by name.
func (c *Config) GetAccount(name string) (*Account, error) {
	for i := range c.Accounts {
		if c.Accounts[i].Name == name {
			return &c.Accounts[i], nil
		}
	}
	return nil, fmt.Errorf("account '%s' not found", name)
}

// AddAccount adds a new account, generating a stable ID when none is
// given.
func (c *Config) AddAccount(account Account) error {
	if _, err := c.GetAccount(account.Name); err == nil {
		return fmt.Errorf("account '%s' already exists", account.Name)
	}

	if account.ID == "" {
		account.ID = accountID(account.Name)
	}
	c.Accounts = append(c.Accounts, account)
	return nil
}

// RemoveAccount removes an account by name.
func (c *Config) RemoveAccount(name string) error {
	if c.ActiveAccount == name {
		return fmt.Errorf("cannot remove active account '%s'", name)
	}

	for i, a := range c.Accounts {
		if a.Name == name {
			c.Accounts = append(c.Accounts[:i], c.Accounts[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("account '%s' not found", name)
}

// SetActiveAccount sets the active account, or clears it when name is
// empty.
func (c *Config) SetActiveAccount(name string) error {
	if name == "" {
		c.ActiveAccount = ""
		return nil
	}

	if _, err := c.GetAccount(name); err != nil {
		return err
	}

	c.ActiveAccount = name
	return nil
}

// ResolveAccount returns the account articles should be attributed to:
// the active account, else the default-flagged one, else an implicit
// "local" account with a deterministic ID.
func (c *Config) ResolveAccount() Account {
	if c.ActiveAccount != "" {
		if a, err := c.GetAccount(c.ActiveAccount); err == nil {
			return *a
		}
	}
	for _, a := range c.Accounts {
		if a.Default {
			return a
		}
	}
	return Account{Name: localAccountName, ID: accountID(localAccountName)}
}

// IsAccountActive returns true if the given account is active.
func (c *Config) IsAccountActive(name string) bool {
	return c.ActiveAccount == name
}

// accountID derives a stable UUID from an account name, so the same
// name always maps to the same identifier on any machine.
func accountID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("artclip:account:"+name)).String()
}

func loadFromPath(configPath string) (*Config, error) {
	cfg := &Config{}

	if err := loadConfigFile(configPath, cfg); err != nil {
		return nil, err
	}

	applyEnvironmentOverrides(cfg)
	applyDefaults(cfg)

	return cfg, nil
}

// loadConfigFile reads and parses the config file from the given path.
func loadConfigFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		// File doesn't exist, that's okay - defaults apply.
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to read config file", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to parse config file", err)
	}

	return nil
}

// applyEnvironmentOverrides applies environment variable overrides to
// the config.
func applyEnvironmentOverrides(cfg *Config) {
	if theme := os.Getenv("ARTCLIP_THEME"); theme != "" {
		cfg.Theme.Name = theme
	}
	if dir := os.Getenv("ARTCLIP_THEME_DIR"); dir != "" {
		cfg.Theme.Dir = dir
	}
	if format := os.Getenv("ARTCLIP_DATE_FORMAT"); format != "" {
		cfg.Export.DateFormat = format
	}
	if account := os.Getenv("ARTCLIP_ACCOUNT"); account != "" {
		cfg.ActiveAccount = account
	}
	if path := os.Getenv("ARTCLIP_CACHE_PATH"); path != "" {
		cfg.Cache.Path = path
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Theme.Name == "" {
		cfg.Theme.Name = DefaultTheme
	}
	if cfg.Export.DateFormat == "" {
		cfg.Export.DateFormat = DefaultDateFormat
	}
	if cfg.Cache.Path == "" {
		cfg.Cache.Path = DefaultCachePath()
	}
	if cfg.Cache.Days <= 0 {
		cfg.Cache.Days = DefaultCacheDays
	}
}
